// Package reader presents byte-stream input as words, lines, and multi-line
// blocks without requiring the whole input up front.
//
// A Reader pulls bytes from a ByteSource into a growing backing buffer and
// advances a cursor over it. Refills happen on demand in chunks of up to 1024
// bytes, stopping early at a line feed, so the reader behaves correctly
// against interactive consoles that deliver input line by line as well as
// pipes and files that deliver it in arbitrary chunks.
//
// Tokenization happens once, in bytes; the UTF16/UTF32 variants transcode the
// byte result under the lenient replacement policy.
//
// Running out of input mid-token is not an error: the token is terminated at
// end-of-input. A Reader is NOT safe for concurrent use; use one reader per
// logical input stream, accessed from one goroutine at a time.
package reader
