package utf8stream

import "io"

// ByteSource supplies raw input one byte at a time. A source reports
// exhaustion by returning io.EOF; the reader treats any other error the same
// way, terminating the current token at the bytes read so far.
//
// bufio.Reader, bytes.Reader, and strings.Reader all satisfy this interface.
type ByteSource interface {
	io.ByteReader
}

// ByteSink accepts a contiguous byte sequence for writing. The library's only
// contract with a sink is "write these bytes verbatim"; buffering and flushing
// are the sink's concern.
type ByteSink interface {
	io.Writer
}
