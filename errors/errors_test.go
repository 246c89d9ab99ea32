package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "region error",
			err: &Error{
				Phase:  PhaseDecode,
				Kind:   KindOverlong,
				Offset: 4,
				Length: 2,
				Detail: "2-byte sequence encodes U+0000",
			},
			contains: []string{"[decode]", "overlong", "bytes 4..5", "U+0000"},
		},
		{
			name: "single byte region",
			err: &Error{
				Phase:  PhaseDecode,
				Kind:   KindInvalidUTF8,
				Offset: 0,
				Length: 1,
			},
			contains: []string{"[decode]", "invalid_utf8", "byte 0"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase:  PhaseRead,
				Kind:   KindSourceFailure,
				Offset: -1,
			},
			contains: []string{"[read]", "source_failure"},
		},
		{
			name: "token error with cause",
			err: &Error{
				Phase:  PhaseParse,
				Kind:   KindParseFailed,
				Offset: -1,
				Token:  "12x",
				Detail: "cannot interpret token as int64",
				Cause:  errors.New("invalid syntax"),
			},
			contains: []string{"[parse]", "parse_failed", `"12x"`, "int64", "caused by", "invalid syntax"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase:  PhaseParse,
		Kind:   KindParseFailed,
		Offset: -1,
		Cause:  cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	// Test with errors.Unwrap
	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase:  PhaseDecode,
		Kind:   KindSurrogate,
		Offset: 3,
		Length: 3,
	}

	// Same phase and kind
	if !err.Is(&Error{Phase: PhaseDecode, Kind: KindSurrogate}) {
		t.Error("Is should match same phase and kind")
	}

	// Different phase
	if err.Is(&Error{Phase: PhaseEncode, Kind: KindSurrogate}) {
		t.Error("Is should not match different phase")
	}

	// Different kind
	if err.Is(&Error{Phase: PhaseDecode, Kind: KindOverlong}) {
		t.Error("Is should not match different kind")
	}

	// Test with errors.Is
	target := &Error{Phase: PhaseDecode, Kind: KindSurrogate}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseDecode, KindTruncated).
		Region(10, 2).
		Token("partial").
		Cause(cause).
		Detail("sequence needs %d bytes, %d remain", 3, 2).
		Build()

	if err.Phase != PhaseDecode {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseDecode)
	}
	if err.Kind != KindTruncated {
		t.Errorf("Kind = %v, want %v", err.Kind, KindTruncated)
	}
	if err.Offset != 10 || err.Length != 2 {
		t.Errorf("Region = (%d, %d), want (10, 2)", err.Offset, err.Length)
	}
	if err.Token != "partial" {
		t.Errorf("Token = %q, want 'partial'", err.Token)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "sequence needs 3 bytes, 2 remain" {
		t.Errorf("Detail = %v", err.Detail)
	}
}

func TestBuilder_DefaultOffset(t *testing.T) {
	err := New(PhaseRead, KindSourceFailure).Build()
	if err.Offset != -1 {
		t.Errorf("Offset = %d, want -1 for errors without a byte region", err.Offset)
	}
	if strings.Contains(err.Error(), "at byte") {
		t.Errorf("message %q should not mention a byte region", err.Error())
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("InvalidLeadByte", func(t *testing.T) {
		err := InvalidLeadByte(7, 0xFF)
		if err.Kind != KindInvalidUTF8 {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidUTF8)
		}
		if err.Offset != 7 || err.Length != 1 {
			t.Errorf("Region = (%d, %d), want (7, 1)", err.Offset, err.Length)
		}
		if !strings.Contains(err.Detail, "0xFF") {
			t.Errorf("Detail = %v, should name the byte", err.Detail)
		}
	})

	t.Run("InvalidContinuation", func(t *testing.T) {
		err := InvalidContinuation(2, 2, 0x41)
		if err.Kind != KindInvalidUTF8 {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidUTF8)
		}
		if !strings.Contains(err.Detail, "0x41") {
			t.Errorf("Detail = %v, should name the byte", err.Detail)
		}
	})

	t.Run("Truncated", func(t *testing.T) {
		err := Truncated(5, 4, 1)
		if err.Kind != KindTruncated {
			t.Errorf("Kind = %v, want %v", err.Kind, KindTruncated)
		}
		if !strings.Contains(err.Detail, "4") || !strings.Contains(err.Detail, "1") {
			t.Errorf("Detail = %v, should contain byte counts", err.Detail)
		}
	})

	t.Run("Overlong", func(t *testing.T) {
		err := Overlong(0, 2, 0x00)
		if err.Kind != KindOverlong {
			t.Errorf("Kind = %v, want %v", err.Kind, KindOverlong)
		}
	})

	t.Run("EncodedSurrogate", func(t *testing.T) {
		err := EncodedSurrogate(0, 3, 0xD800)
		if err.Kind != KindSurrogate {
			t.Errorf("Kind = %v, want %v", err.Kind, KindSurrogate)
		}
		if !strings.Contains(err.Detail, "D800") {
			t.Errorf("Detail = %v, should name the surrogate", err.Detail)
		}
	})

	t.Run("OutOfRange", func(t *testing.T) {
		err := OutOfRange(0, 4, 0x110000)
		if err.Kind != KindOutOfRange {
			t.Errorf("Kind = %v, want %v", err.Kind, KindOutOfRange)
		}
	})

	t.Run("ParseFailed", func(t *testing.T) {
		cause := errors.New("invalid syntax")
		err := ParseFailed("12x", "int64", cause)
		if err.Kind != KindParseFailed {
			t.Errorf("Kind = %v, want %v", err.Kind, KindParseFailed)
		}
		if err.Token != "12x" {
			t.Errorf("Token = %q, want '12x'", err.Token)
		}
		if !errors.Is(err, &Error{Phase: PhaseParse, Kind: KindParseFailed}) {
			t.Error("errors.Is should match parse failures")
		}
	})

	t.Run("EmptyToken", func(t *testing.T) {
		err := EmptyToken("float64")
		if err.Kind != KindParseFailed {
			t.Errorf("Kind = %v, want %v", err.Kind, KindParseFailed)
		}
	})

	t.Run("CodePage", func(t *testing.T) {
		cause := errors.New("access denied")
		err := CodePage("set input code page", cause)
		if err.Phase != PhaseConsole || err.Kind != KindCodePage {
			t.Errorf("Phase=%v Kind=%v", err.Phase, err.Kind)
		}
		if !errors.Is(err, cause) {
			t.Error("cause should be reachable via errors.Is")
		}
	})

	t.Run("SourceFailure", func(t *testing.T) {
		cause := errors.New("pipe closed")
		err := SourceFailure(cause)
		if err.Phase != PhaseRead || err.Kind != KindSourceFailure {
			t.Errorf("Phase=%v Kind=%v", err.Phase, err.Kind)
		}
	})
}
