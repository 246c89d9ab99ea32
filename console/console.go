package console

import (
	"bufio"
	"os"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/utf8-stream/reader"
)

var (
	stdinOnce sync.Once
	stdin     *reader.Reader

	stdoutOnce sync.Once
	stdout     *Output
)

var (
	stdinIsTerminal  int32 = -1 // -1 = unchecked, 0 = no, 1 = yes
	stdoutIsTerminal int32 = -1
)

func isTerminal(fd int, cached *int32) bool {
	if v := atomic.LoadInt32(cached); v >= 0 {
		return v == 1
	}
	result := term.IsTerminal(fd)
	if result {
		atomic.StoreInt32(cached, 1)
	} else {
		atomic.StoreInt32(cached, 0)
	}
	return result
}

// Stdin returns the process-wide reader over standard input, created on
// first use. The reader is single-goroutine; callers sharing it across
// goroutines must serialize access themselves.
func Stdin() *reader.Reader {
	stdinOnce.Do(func() {
		stdin = reader.NewReader(bufio.NewReader(os.Stdin))
		Logger().Debug("stdin reader initialized",
			zap.Bool("terminal", isTerminal(int(os.Stdin.Fd()), &stdinIsTerminal)))
	})
	return stdin
}

// Stdout returns the process-wide writer over standard output, created on
// first use. Auto-flush is enabled when stdout is a terminal, so interactive
// prompts appear immediately; piped output stays buffered.
func Stdout() *Output {
	stdoutOnce.Do(func() {
		stdout = NewOutput(bufio.NewWriter(os.Stdout))
		if isTerminal(int(os.Stdout.Fd()), &stdoutIsTerminal) {
			stdout.SetAutoFlush(true)
		}
	})
	return stdout
}

// StdinIsTerminal reports whether standard input is attached to a terminal
// rather than a pipe or file.
func StdinIsTerminal() bool {
	return isTerminal(int(os.Stdin.Fd()), &stdinIsTerminal)
}
