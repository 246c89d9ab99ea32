// Package utf8stream provides incremental Unicode text I/O for console
// applications.
//
// The library converts text between the three Unicode encoding forms (UTF-8,
// UTF-16 with surrogate pairs, and UTF-32 code points) and reads input
// incrementally from a byte stream without assuming line-buffered delivery.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	utf8stream/          Root package with ByteSource and ByteSink interfaces
//	├── codec/           Per-character encode/decode primitives
//	├── transcode/       Whole-sequence conversion between the three forms
//	├── reader/          Buffered incremental reader with word/line tokenization
//	├── console/         Process-wide stdin/stdout wiring and code page setup
//	└── errors/          Structured error types for strict decoding and parsing
//
// # Quick Start
//
// Read whitespace-delimited words from standard input:
//
//	in := console.Stdin()
//	for {
//	    word := in.ReadWord()
//	    if word == "" {
//	        break
//	    }
//	    fmt.Println(word)
//	}
//
// Convert between encoding forms:
//
//	units := transcode.UTF8ToUTF16([]byte("\U0001F600"))  // surrogate pair
//	cps, err := transcode.UTF8ToUTF32Strict(input)        // validating path
//
// # Replacement Policy
//
// All reader-facing and generic conversion paths are lenient: malformed input
// units are locally replaced by U+FFFD and processing continues, so console
// input never hard-fails on stray bytes. A separate strict UTF-8 decoding path
// rejects overlong sequences, encoded surrogates, and truncated sequences with
// a structured error naming the offending byte region, for callers that need a
// well-formedness guarantee rather than best-effort display.
//
// # Thread Safety
//
// The codec and transcode packages are stateless and safe for concurrent use.
// A reader.Reader owns its buffer exclusively and is NOT thread-safe; use one
// reader per logical input stream, accessed from one goroutine at a time.
package utf8stream
