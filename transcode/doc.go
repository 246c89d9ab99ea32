// Package transcode converts whole sequences between the three Unicode
// encoding forms: UTF-8 bytes, UTF-16 units, and UTF-32 code points.
//
// One function exists per ordered pair of forms, six directions total. All
// six are lenient: malformed input units are locally repaired with U+FFFD and
// conversion always succeeds. A seventh function, UTF8ToUTF32Strict, rejects
// malformed input instead, failing on the first violation with a structured
// error naming the offending byte region and producing no partial output.
//
// Sanitizer adapts the lenient UTF-8 policy to the golang.org/x/text
// transform.Transformer interface, so it composes with transform.Reader and
// transform.Writer chains.
//
// All functions and Sanitizer values are stateless between calls and safe for
// concurrent use.
package transcode
