package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseDecode  Phase = "decode"  // byte sequence to code points
	PhaseEncode  Phase = "encode"  // code points to byte sequence
	PhaseRead    Phase = "read"    // stream tokenization
	PhaseParse   Phase = "parse"   // typed extraction from a token
	PhaseConsole Phase = "console" // host console configuration
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidUTF8   Kind = "invalid_utf8"
	KindInvalidUTF16  Kind = "invalid_utf16"
	KindOverlong      Kind = "overlong"
	KindSurrogate     Kind = "surrogate"
	KindOutOfRange    Kind = "out_of_range"
	KindTruncated     Kind = "truncated"
	KindParseFailed   Kind = "parse_failed"
	KindNotATerminal  Kind = "not_a_terminal"
	KindCodePage      Kind = "code_page"
	KindSourceFailure Kind = "source_failure"
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Token  string
	Offset int // byte offset of the offending region, -1 when not applicable
	Length int // length of the offending region in bytes
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Offset >= 0 {
		if e.Length > 1 {
			fmt.Fprintf(&b, " at bytes %d..%d", e.Offset, e.Offset+e.Length-1)
		} else {
			fmt.Fprintf(&b, " at byte %d", e.Offset)
		}
	}

	if e.Token != "" {
		fmt.Fprintf(&b, " in token %q", e.Token)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New starts building an error with the given phase and kind
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase:  phase,
			Kind:   kind,
			Offset: -1,
		},
	}
}

// Region sets the offending byte region
func (b *Builder) Region(offset, length int) *Builder {
	b.err.Offset = offset
	b.err.Length = length
	return b
}

// Token sets the token the error was raised for
func (b *Builder) Token(tok string) *Builder {
	b.err.Token = tok
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// InvalidLeadByte creates an error for a byte that cannot start a UTF-8 sequence
func InvalidLeadByte(offset int, lead byte) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindInvalidUTF8,
		Offset: offset,
		Length: 1,
		Detail: fmt.Sprintf("byte 0x%02X cannot start a UTF-8 sequence", lead),
	}
}

// InvalidContinuation creates an error for a continuation byte outside 0x80..0xBF
func InvalidContinuation(offset, length int, got byte) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindInvalidUTF8,
		Offset: offset,
		Length: length,
		Detail: fmt.Sprintf("continuation byte 0x%02X outside 0x80..0xBF", got),
	}
}

// Truncated creates an error for a multi-byte sequence cut off by end of input
func Truncated(offset, need, have int) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindTruncated,
		Offset: offset,
		Length: have,
		Detail: fmt.Sprintf("sequence needs %d bytes, %d remain", need, have),
	}
}

// Overlong creates an error for a non-minimal-length encoding
func Overlong(offset, length int, cp rune) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindOverlong,
		Offset: offset,
		Length: length,
		Detail: fmt.Sprintf("%d-byte sequence encodes U+%04X, which fits in fewer bytes", length, cp),
	}
}

// EncodedSurrogate creates an error for a UTF-8 sequence encoding a surrogate value
func EncodedSurrogate(offset, length int, cp rune) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindSurrogate,
		Offset: offset,
		Length: length,
		Detail: fmt.Sprintf("sequence encodes surrogate U+%04X", cp),
	}
}

// OutOfRange creates an error for a decoded value above U+10FFFF
func OutOfRange(offset, length int, cp rune) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindOutOfRange,
		Offset: offset,
		Length: length,
		Detail: fmt.Sprintf("sequence decodes to U+%X, above U+10FFFF", cp),
	}
}

// ParseFailed creates an error for a token that could not be interpreted as the
// requested type. The token has already been consumed from the stream.
func ParseFailed(token, targetType string, cause error) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindParseFailed,
		Offset: -1,
		Token:  token,
		Detail: fmt.Sprintf("cannot interpret token as %s", targetType),
		Cause:  cause,
	}
}

// EmptyToken creates an error for typed extraction at end of input
func EmptyToken(targetType string) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindParseFailed,
		Offset: -1,
		Detail: fmt.Sprintf("no token available for %s", targetType),
	}
}

// CodePage creates an error for a failed console code page call
func CodePage(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseConsole,
		Kind:   KindCodePage,
		Offset: -1,
		Detail: detail,
		Cause:  cause,
	}
}

// SourceFailure wraps a non-EOF error from the byte source
func SourceFailure(cause error) *Error {
	return &Error{
		Phase:  PhaseRead,
		Kind:   KindSourceFailure,
		Offset: -1,
		Detail: "byte source failed",
		Cause:  cause,
	}
}
