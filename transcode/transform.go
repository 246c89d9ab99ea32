package transcode

import (
	"golang.org/x/text/transform"

	"github.com/wippyai/utf8-stream/codec"
)

// Sanitizer is a transform.Transformer that rewrites arbitrary bytes to
// well-formed UTF-8 under the lenient policy: malformed sequences become
// U+FFFD, well-formed input passes through unchanged.
//
// It carries no state, so the zero value is ready to use and a single value
// may be shared across transform chains.
type Sanitizer struct{}

var _ transform.Transformer = Sanitizer{}

// Transform implements transform.Transformer.
func (Sanitizer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		need := leadSize(src[nSrc])
		if nSrc+need > len(src) && !atEOF {
			// sequence may continue in the next chunk
			return nDst, nSrc, transform.ErrShortSrc
		}
		cp, size := codec.DecodeChar(src, nSrc)
		if nDst+codec.CharLen(cp) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst = len(codec.AppendChar(dst[:nDst], cp))
		nSrc += size
	}
	return nDst, nSrc, nil
}

// Reset implements transform.Transformer. Sanitizer is stateless.
func (Sanitizer) Reset() {}

// leadSize returns the sequence length the lead byte b announces, or 1 for
// bytes that cannot start a sequence.
func leadSize(b byte) int {
	switch {
	case b < 0xC0:
		return 1
	case b < 0xE0:
		return 2
	case b < 0xF0:
		return 3
	case b < 0xF8:
		return 4
	default:
		return 1
	}
}
