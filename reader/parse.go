package reader

import (
	"strconv"

	"github.com/wippyai/utf8-stream/errors"
	"github.com/wippyai/utf8-stream/transcode"
)

// Typed extraction reads the next word and interprets it. The token is
// consumed from the stream regardless of parse outcome, so a failed parse
// never corrupts reader state; the caller can keep reading.

// ReadInt reads the next word as a signed decimal integer.
func (r *Reader) ReadInt() (int64, error) {
	tok := r.ReadWord()
	if tok == "" {
		return 0, errors.EmptyToken("int64")
	}
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, errors.ParseFailed(tok, "int64", err)
	}
	return v, nil
}

// ReadUint reads the next word as an unsigned decimal integer.
func (r *Reader) ReadUint() (uint64, error) {
	tok := r.ReadWord()
	if tok == "" {
		return 0, errors.EmptyToken("uint64")
	}
	v, err := strconv.ParseUint(tok, 10, 64)
	if err != nil {
		return 0, errors.ParseFailed(tok, "uint64", err)
	}
	return v, nil
}

// ReadFloat reads the next word as a floating-point number.
func (r *Reader) ReadFloat() (float64, error) {
	tok := r.ReadWord()
	if tok == "" {
		return 0, errors.EmptyToken("float64")
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, errors.ParseFailed(tok, "float64", err)
	}
	return v, nil
}

// ReadRune reads the next word and returns its first code point, decoded
// leniently. The rest of the word is still consumed.
func (r *Reader) ReadRune() (rune, error) {
	tok := r.ReadWord()
	if tok == "" {
		return 0, errors.EmptyToken("rune")
	}
	cps := transcode.UTF8ToUTF32([]byte(tok))
	return cps[0], nil
}
