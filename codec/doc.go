// Package codec provides per-character Unicode encode/decode primitives.
//
// Functions here operate at single-character granularity: one UTF-8 byte
// sequence, one UTF-16 unit or surrogate pair, one code point. Whole-sequence
// conversion is built on top of these in the transcode package.
//
// All functions are pure and stateless; they are safe for concurrent use.
//
// The primitives follow the lenient replacement policy: malformed input is
// replaced by U+FFFD rather than reported, and encoding never fails. Strict
// validation lives in transcode.UTF8ToUTF32Strict.
package codec
