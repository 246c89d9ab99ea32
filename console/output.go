package console

import (
	"io"
	"strconv"

	"go.uber.org/multierr"

	utf8stream "github.com/wippyai/utf8-stream"
	"github.com/wippyai/utf8-stream/codec"
	"github.com/wippyai/utf8-stream/transcode"
)

// Output writes values to a byte sink as UTF-8. UTF-16 and UTF-32 inputs are
// transcoded under the lenient policy, so writing never fails on bad code
// points, only on sink errors.
//
// An Output is NOT safe for concurrent use.
type Output struct {
	sink      utf8stream.ByteSink
	flusher   flusher
	autoFlush bool
}

type flusher interface {
	Flush() error
}

// NewOutput returns an Output over sink. If sink implements Flush (as
// bufio.Writer does), Flush and auto-flush use it; otherwise flushing is a
// no-op.
func NewOutput(sink utf8stream.ByteSink) *Output {
	o := &Output{sink: sink}
	if f, ok := sink.(flusher); ok {
		o.flusher = f
	}
	return o
}

// SetAutoFlush makes every write flush the sink, for prompt-style output.
func (o *Output) SetAutoFlush(autoFlush bool) {
	o.autoFlush = autoFlush
}

// Flush flushes the sink if it supports flushing.
func (o *Output) Flush() error {
	if o.flusher == nil {
		return nil
	}
	return o.flusher.Flush()
}

func (o *Output) write(p []byte) error {
	if _, err := o.sink.Write(p); err != nil {
		return err
	}
	if o.autoFlush {
		return o.Flush()
	}
	return nil
}

// WriteString writes s verbatim.
func (o *Output) WriteString(s string) error {
	return o.write([]byte(s))
}

// WriteUTF16 writes the UTF-16 unit sequence as UTF-8.
func (o *Output) WriteUTF16(units []uint16) error {
	return o.write(transcode.UTF16ToUTF8(units))
}

// WriteUTF32 writes the code point sequence as UTF-8.
func (o *Output) WriteUTF32(cps []rune) error {
	return o.write(transcode.UTF32ToUTF8(cps))
}

// WriteRune writes one code point as UTF-8.
func (o *Output) WriteRune(cp rune) error {
	return o.write(codec.AppendChar(nil, cp))
}

// WriteInt writes v in decimal.
func (o *Output) WriteInt(v int64) error {
	return o.write(strconv.AppendInt(nil, v, 10))
}

// WriteFloat writes v in the shortest decimal form that round-trips.
func (o *Output) WriteFloat(v float64) error {
	return o.write(strconv.AppendFloat(nil, v, 'g', -1, 64))
}

// WriteLines writes lines separated by line feeds; no separator before the
// first line and none after the last.
func (o *Output) WriteLines(lines []string) error {
	for i, line := range lines {
		if i > 0 {
			if err := o.write([]byte{'\n'}); err != nil {
				return err
			}
		}
		if err := o.WriteString(line); err != nil {
			return err
		}
	}
	return nil
}

// Println writes s followed by a line feed and flushes.
func (o *Output) Println(s string) error {
	if err := o.WriteString(s + "\n"); err != nil {
		return err
	}
	return o.Flush()
}

// Close flushes the sink and closes it if it implements io.Closer; flush and
// close failures are both reported.
func (o *Output) Close() error {
	err := o.Flush()
	if c, ok := o.sink.(io.Closer); ok {
		err = multierr.Append(err, c.Close())
	}
	return err
}
