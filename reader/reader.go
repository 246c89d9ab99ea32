package reader

import (
	"io"

	utf8stream "github.com/wippyai/utf8-stream"
	"github.com/wippyai/utf8-stream/errors"
	"github.com/wippyai/utf8-stream/transcode"
)

// DefaultChunkSize is the refill size: up to this many bytes are pulled from
// the source per refill, or fewer if a line feed arrives first.
const DefaultChunkSize = 1024

// eof marks end-of-input in the byte-level state machine.
const eof = -1

// Reader is an incremental tokenizer over a byte source.
//
// Bytes before the cursor are logically consumed and never re-decoded; bytes
// from the cursor onward are pending. Refilling is append-only.
type Reader struct {
	src       utf8stream.ByteSource
	buf       []byte
	pos       int
	chunkSize int
	err       *errors.Error
}

// NewReader returns a Reader over src with the default chunk size.
func NewReader(src utf8stream.ByteSource) *Reader {
	return NewReaderSize(src, DefaultChunkSize)
}

// NewReaderSize returns a Reader with an explicit refill chunk size.
// chunkSize must be at least 1.
func NewReaderSize(src utf8stream.ByteSource, chunkSize int) *Reader {
	if chunkSize < 1 {
		chunkSize = 1
	}
	return &Reader{src: src, chunkSize: chunkSize}
}

// Reset discards the buffer and cursor so the reader can be reused against a
// fresh logical stream on the same source.
func (r *Reader) Reset() {
	r.buf = nil
	r.pos = 0
	r.err = nil
}

// Err returns the first non-exhaustion failure reported by the byte source,
// or nil. Source failures terminate input like end-of-input does; Err lets a
// caller distinguish the two after the fact.
func (r *Reader) Err() error {
	if r.err == nil {
		return nil
	}
	return r.err
}

// fill pulls one chunk from the source: up to chunkSize bytes, one byte at a
// time, stopping early at a line feed or source exhaustion. It reports
// whether any bytes were obtained.
func (r *Reader) fill() bool {
	n := 0
	for i := 0; i < r.chunkSize; i++ {
		b, err := r.src.ReadByte()
		if err != nil {
			if err != io.EOF && r.err == nil {
				r.err = errors.SourceFailure(err)
			}
			break
		}
		r.buf = append(r.buf, b)
		n++
		if b == '\n' {
			break
		}
	}
	return n > 0
}

// nextByte returns the byte at the cursor and advances it, refilling on
// demand. It returns eof once the source is exhausted.
func (r *Reader) nextByte() int {
	if r.pos >= len(r.buf) {
		if !r.fill() || r.pos >= len(r.buf) {
			return eof
		}
	}
	b := r.buf[r.pos]
	r.pos++
	return int(b)
}

func isSpace(ch int) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' ||
		ch == '\r' || ch == '\f' || ch == '\v'
}

// ReadWord skips leading whitespace, then returns the next run of
// non-whitespace bytes. The whitespace byte that terminates the word stays
// pending unless it is a line feed, which is swallowed so the next
// line-oriented read does not see a dangling newline. At end-of-input the
// result is empty.
func (r *Reader) ReadWord() string {
	ch := r.nextByte()
	for ch != eof && isSpace(ch) {
		ch = r.nextByte()
	}
	if ch == eof {
		return ""
	}
	r.pos--

	word := getBuf()
	defer putBuf(word)
	for {
		ch = r.nextByte()
		if ch == eof {
			break
		}
		if isSpace(ch) {
			if ch != '\n' {
				r.pos--
			}
			break
		}
		*word = append(*word, byte(ch))
	}
	return string(*word)
}

// ReadLine returns the next line without its terminating line feed; carriage
// returns are dropped. ok is false once the input is exhausted and no bytes
// were read, so a final unterminated line is still returned with ok true.
func (r *Reader) ReadLine() (line string, ok bool) {
	buf := getBuf()
	defer putBuf(buf)
	read := false
	for {
		ch := r.nextByte()
		if ch == eof {
			break
		}
		read = true
		if ch == '\n' {
			break
		}
		if ch != '\r' {
			*buf = append(*buf, byte(ch))
		}
	}
	return string(*buf), read
}

// ReadLines collects lines until a terminating condition, in read order.
//
// A line ends at a line feed, at the user-specified stopByte, or at
// end-of-input; carriage returns are dropped. When stopOnEmptyLine is set an
// empty line stops collection before being recorded. When the terminator is
// stopByte or end-of-input, the line so far is recorded and collection stops
// immediately after. A negative stopByte disables the byte trigger.
func (r *Reader) ReadLines(stopOnEmptyLine bool, stopByte int) []string {
	var lines []string
	line := getBuf()
	defer putBuf(line)
	for {
		ch := r.nextByte()
		if ch == '\r' {
			continue
		}
		if ch == '\n' || ch == stopByte || ch == eof {
			if stopOnEmptyLine && len(*line) == 0 {
				break
			}
			lines = append(lines, string(*line))
			*line = (*line)[:0]
			if ch == stopByte || ch == eof {
				break
			}
			continue
		}
		*line = append(*line, byte(ch))
	}
	return lines
}

// ReadWordUTF16 is ReadWord transcoded to UTF-16 units.
func (r *Reader) ReadWordUTF16() []uint16 {
	return transcode.UTF8ToUTF16([]byte(r.ReadWord()))
}

// ReadWordUTF32 is ReadWord transcoded to code points.
func (r *Reader) ReadWordUTF32() []rune {
	return transcode.UTF8ToUTF32([]byte(r.ReadWord()))
}

// ReadLineUTF16 is ReadLine transcoded to UTF-16 units.
func (r *Reader) ReadLineUTF16() ([]uint16, bool) {
	line, ok := r.ReadLine()
	return transcode.UTF8ToUTF16([]byte(line)), ok
}

// ReadLineUTF32 is ReadLine transcoded to code points.
func (r *Reader) ReadLineUTF32() ([]rune, bool) {
	line, ok := r.ReadLine()
	return transcode.UTF8ToUTF32([]byte(line)), ok
}

// ReadLinesUTF16 is ReadLines transcoded to UTF-16 units.
func (r *Reader) ReadLinesUTF16(stopOnEmptyLine bool, stopByte int) [][]uint16 {
	lines := r.ReadLines(stopOnEmptyLine, stopByte)
	out := make([][]uint16, len(lines))
	for i, line := range lines {
		out[i] = transcode.UTF8ToUTF16([]byte(line))
	}
	return out
}

// ReadLinesUTF32 is ReadLines transcoded to code points.
func (r *Reader) ReadLinesUTF32(stopOnEmptyLine bool, stopByte int) [][]rune {
	lines := r.ReadLines(stopOnEmptyLine, stopByte)
	out := make([][]rune, len(lines))
	for i, line := range lines {
		out[i] = transcode.UTF8ToUTF32([]byte(line))
	}
	return out
}
