package transcode

import (
	"github.com/wippyai/utf8-stream/codec"
	"github.com/wippyai/utf8-stream/errors"
)

// UTF8ToUTF32 decodes a UTF-8 byte sequence into code points under the
// lenient policy. The result is never longer than len(p).
func UTF8ToUTF32(p []byte) []rune {
	out := make([]rune, 0, len(p))
	for pos := 0; pos < len(p); {
		cp, size := codec.DecodeChar(p, pos)
		out = append(out, cp)
		pos += size
	}
	return out
}

// UTF32ToUTF8 encodes code points as UTF-8 bytes. Invalid code points are
// replaced by U+FFFD; this function never fails.
func UTF32ToUTF8(cps []rune) []byte {
	out := make([]byte, 0, len(cps)*2)
	for _, cp := range cps {
		out = codec.AppendChar(out, cp)
	}
	return out
}

// UTF8ToUTF16 decodes a UTF-8 byte sequence into UTF-16 units under the
// lenient policy, emitting surrogate pairs for supplementary-plane characters.
func UTF8ToUTF16(p []byte) []uint16 {
	out := make([]uint16, 0, len(p))
	for pos := 0; pos < len(p); {
		cp, size := codec.DecodeChar(p, pos)
		hi, lo, units := codec.DecomposeChar(cp)
		out = append(out, hi)
		if units == 2 {
			out = append(out, lo)
		}
		pos += size
	}
	return out
}

// UTF16ToUTF8 encodes UTF-16 units as UTF-8 bytes under the lenient policy.
// Lone surrogates are replaced by U+FFFD; this function never fails.
func UTF16ToUTF8(units []uint16) []byte {
	out := make([]byte, 0, len(units)*3)
	for i := 0; i < len(units); {
		var lo uint16
		haveLo := i+1 < len(units)
		if haveLo {
			lo = units[i+1]
		}
		cp, n := codec.ComposeSurrogates(units[i], lo, haveLo)
		out = codec.AppendChar(out, cp)
		i += n
	}
	return out
}

// UTF16ToUTF32 decodes UTF-16 units into code points under the lenient
// policy, composing surrogate pairs and replacing lone surrogates.
func UTF16ToUTF32(units []uint16) []rune {
	out := make([]rune, 0, len(units))
	for i := 0; i < len(units); {
		var lo uint16
		haveLo := i+1 < len(units)
		if haveLo {
			lo = units[i+1]
		}
		cp, n := codec.ComposeSurrogates(units[i], lo, haveLo)
		out = append(out, cp)
		i += n
	}
	return out
}

// UTF32ToUTF16 encodes code points as UTF-16 units. Surrogate-range and
// out-of-range code points are replaced by U+FFFD; this function never fails.
func UTF32ToUTF16(cps []rune) []uint16 {
	out := make([]uint16, 0, len(cps))
	for _, cp := range cps {
		hi, lo, units := codec.DecomposeChar(cp)
		out = append(out, hi)
		if units == 2 {
			out = append(out, lo)
		}
	}
	return out
}

// UTF8ToUTF32Strict decodes a UTF-8 byte sequence into code points, enforcing
// well-formedness: minimal-length encoding, valid continuation bytes, no
// encoded surrogates, and no values above U+10FFFF. On the first violation it
// returns a *errors.Error identifying the malformed byte region and no
// partial output.
func UTF8ToUTF32Strict(p []byte) ([]rune, error) {
	out := make([]rune, 0, len(p))
	for pos := 0; pos < len(p); {
		cp, size, err := decodeStrict(p, pos)
		if err != nil {
			return nil, err
		}
		out = append(out, cp)
		pos += size
	}
	return out, nil
}

// decodeStrict decodes one character at pos, reporting the exact violation.
func decodeStrict(p []byte, pos int) (rune, int, error) {
	lead := p[pos]
	var n int
	var cp, min rune
	switch {
	case lead < 0x80:
		return rune(lead), 1, nil
	case lead < 0xC0:
		return 0, 0, errors.InvalidLeadByte(pos, lead)
	case lead < 0xE0:
		n, cp, min = 2, rune(lead&0x1F), 0x80
	case lead < 0xF0:
		n, cp, min = 3, rune(lead&0x0F), 0x800
	case lead < 0xF8:
		n, cp, min = 4, rune(lead&0x07), 0x10000
	default:
		return 0, 0, errors.InvalidLeadByte(pos, lead)
	}
	if pos+n > len(p) {
		return 0, 0, errors.Truncated(pos, n, len(p)-pos)
	}
	for i := 1; i < n; i++ {
		b := p[pos+i]
		if b < 0x80 || b > 0xBF {
			return 0, 0, errors.InvalidContinuation(pos, i+1, b)
		}
		cp = cp<<6 | rune(b&0x3F)
	}
	switch {
	case cp < min:
		return 0, 0, errors.Overlong(pos, n, cp)
	case cp >= 0xD800 && cp <= 0xDFFF:
		return 0, 0, errors.EncodedSurrogate(pos, n, cp)
	case cp > codec.MaxCodePoint:
		return 0, 0, errors.OutOfRange(pos, n, cp)
	}
	return cp, n, nil
}
