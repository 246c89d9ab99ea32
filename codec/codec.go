package codec

// Replacement is U+FFFD REPLACEMENT CHARACTER, substituted for malformed
// input under the lenient policy.
const Replacement rune = 0xFFFD

// MaxCodePoint is the highest valid Unicode code point.
const MaxCodePoint rune = 0x10FFFF

const (
	surrMin     rune = 0xD800 // first high surrogate
	surrHighMax rune = 0xDBFF // last high surrogate
	surrLowMin  rune = 0xDC00 // first low surrogate
	surrMax     rune = 0xDFFF // last low surrogate
)

// ValidChar reports whether r is a valid code point for encoding purposes:
// within 0..MaxCodePoint and outside the surrogate range.
func ValidChar(r rune) bool {
	if r >= surrMin && r <= surrMax {
		return false
	}
	if r < 0 || r > MaxCodePoint {
		return false
	}
	return true
}

// IsHighSurrogate reports whether the UTF-16 unit u is in 0xD800..0xDBFF.
func IsHighSurrogate(u uint16) bool {
	return rune(u) >= surrMin && rune(u) <= surrHighMax
}

// IsLowSurrogate reports whether the UTF-16 unit u is in 0xDC00..0xDFFF.
func IsLowSurrogate(u uint16) bool {
	return rune(u) >= surrLowMin && rune(u) <= surrMax
}

// DecodeChar decodes one UTF-8 encoded character from p starting at pos and
// returns the code point together with the number of bytes consumed.
//
// Malformed input never fails: a stray continuation byte or impossible lead
// byte consumes one byte, a sequence cut off by the end of p consumes the
// remaining bytes, a bad continuation byte consumes only the lead, and a
// well-formed sequence whose value is overlong, a surrogate, or above
// U+10FFFF consumes the whole sequence. Each case yields Replacement.
//
// pos must be a valid index into p; an out-of-range pos panics, as it
// indicates a programming error rather than bad input.
func DecodeChar(p []byte, pos int) (cp rune, size int) {
	lead := p[pos]
	switch {
	case lead < 0x80:
		return rune(lead), 1
	case lead < 0xC0:
		// continuation byte in lead position
		return Replacement, 1
	case lead < 0xE0:
		return decodeMulti(p, pos, 2, rune(lead&0x1F), 0x80)
	case lead < 0xF0:
		return decodeMulti(p, pos, 3, rune(lead&0x0F), 0x800)
	case lead < 0xF8:
		return decodeMulti(p, pos, 4, rune(lead&0x07), 0x10000)
	default:
		return Replacement, 1
	}
}

// decodeMulti decodes the continuation bytes of an n-byte sequence whose lead
// contributed the bits in cp. min is the smallest code point an n-byte
// sequence may legally encode.
func decodeMulti(p []byte, pos, n int, cp rune, min rune) (rune, int) {
	if pos+n > len(p) {
		// truncated at end of input; consume what remains
		return Replacement, len(p) - pos
	}
	for i := 1; i < n; i++ {
		b := p[pos+i]
		if b < 0x80 || b > 0xBF {
			return Replacement, 1
		}
		cp = cp<<6 | rune(b&0x3F)
	}
	if cp < min || cp > MaxCodePoint || (cp >= surrMin && cp <= surrMax) {
		return Replacement, n
	}
	return cp, n
}

// AppendChar appends the UTF-8 encoding of cp to dst and returns the extended
// slice. Surrogate-range and out-of-range code points are forced to
// Replacement before encoding, so this function never fails.
func AppendChar(dst []byte, cp rune) []byte {
	if !ValidChar(cp) {
		cp = Replacement
	}
	switch {
	case cp < 0x80:
		return append(dst, byte(cp))
	case cp < 0x800:
		return append(dst, 0xC0|byte(cp>>6), 0x80|byte(cp&0x3F))
	case cp < 0x10000:
		return append(dst, 0xE0|byte(cp>>12), 0x80|byte(cp>>6&0x3F), 0x80|byte(cp&0x3F))
	default:
		return append(dst,
			0xF0|byte(cp>>18),
			0x80|byte(cp>>12&0x3F),
			0x80|byte(cp>>6&0x3F),
			0x80|byte(cp&0x3F))
	}
}

// CharLen returns the number of bytes AppendChar will emit for cp.
func CharLen(cp rune) int {
	if !ValidChar(cp) {
		cp = Replacement
	}
	switch {
	case cp < 0x80:
		return 1
	case cp < 0x800:
		return 2
	case cp < 0x10000:
		return 3
	default:
		return 4
	}
}

// ComposeSurrogates combines UTF-16 units into one code point, returning the
// code point and the number of units consumed.
//
// A non-surrogate hi passes through verbatim. A high surrogate followed by a
// valid low surrogate (haveLo true) composes to a supplementary-plane code
// point. A lone high surrogate, a high surrogate with an invalid follower,
// and a lone low surrogate each yield Replacement consuming one unit.
func ComposeSurrogates(hi, lo uint16, haveLo bool) (cp rune, units int) {
	h := rune(hi)
	if h < surrMin || h > surrMax {
		return h, 1
	}
	if h <= surrHighMax && haveLo && IsLowSurrogate(lo) {
		return 0x10000 + (h-surrMin)<<10 + (rune(lo) - surrLowMin), 2
	}
	return Replacement, 1
}

// DecomposeChar splits cp into UTF-16 units, returning the units and how many
// are meaningful (1 or 2). BMP code points map to one unit with surrogates
// replaced; supplementary-plane code points map to a high/low pair;
// out-of-range values map to one Replacement unit.
func DecomposeChar(cp rune) (hi, lo uint16, units int) {
	if !ValidChar(cp) {
		return uint16(Replacement), 0, 1
	}
	if cp <= 0xFFFF {
		return uint16(cp), 0, 1
	}
	cp -= 0x10000
	return uint16(surrMin + cp>>10), uint16(surrLowMin + cp&0x3FF), 2
}
