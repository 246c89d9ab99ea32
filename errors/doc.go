// Package errors provides structured error types for the utf8-stream library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes rich context: the offending byte region
// for strict decoding failures, the consumed token for parse failures, and a
// cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindOverlong).
//		Region(12, 2).
//		Detail("2-byte sequence encodes U+0000").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Overlong(12, 2, 0x00)
//	err := errors.ParseFailed("abc", "int64", cause)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
