package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/wippyai/utf8-stream/console"
	"github.com/wippyai/utf8-stream/transcode"
)

func main() {
	var (
		mode        = pflag.String("mode", "words", "Tokenization mode: words, lines, block")
		form        = pflag.String("form", "text", "Output form: text, utf8, utf16, utf32")
		stopOnEmpty = pflag.Bool("stop-on-empty", false, "Stop block collection at an empty line")
		stopByte    = pflag.Int("stop-byte", -1, "Stop block collection at this byte value")
		strict      = pflag.Bool("strict", false, "Validate each token as well-formed UTF-8")
		interactive = pflag.BoolP("interactive", "i", false, "Interactive inspector TUI")
		verbose     = pflag.BoolP("verbose", "v", false, "Enable debug logging")
	)
	pflag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		console.SetLogger(logger)
	}

	if *interactive {
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*mode, *form, *stopOnEmpty, *stopByte, *strict); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(mode, form string, stopOnEmpty bool, stopByte int, strict bool) error {
	restore, err := console.EnableUTF8()
	if err != nil {
		return err
	}
	defer restore()

	in := console.Stdin()
	out := console.Stdout()
	defer out.Close()

	emit := func(token string) error {
		if strict {
			if _, err := transcode.UTF8ToUTF32Strict([]byte(token)); err != nil {
				return err
			}
		}
		switch form {
		case "text":
			return out.Println(token)
		case "utf8":
			return out.Println(fmt.Sprintf("% X", []byte(token)))
		case "utf16":
			return out.Println(fmt.Sprintf("%04X", transcode.UTF8ToUTF16([]byte(token))))
		case "utf32":
			return out.Println(fmt.Sprintf("%U", transcode.UTF8ToUTF32([]byte(token))))
		default:
			return fmt.Errorf("unknown form %q", form)
		}
	}

	switch mode {
	case "words":
		for {
			word := in.ReadWord()
			if word == "" {
				return in.Err()
			}
			if err := emit(word); err != nil {
				return err
			}
		}
	case "lines":
		for {
			line, ok := in.ReadLine()
			if !ok {
				return in.Err()
			}
			if err := emit(line); err != nil {
				return err
			}
		}
	case "block":
		for _, line := range in.ReadLines(stopOnEmpty, stopByte) {
			if err := emit(line); err != nil {
				return err
			}
		}
		return in.Err()
	default:
		return fmt.Errorf("unknown mode %q", mode)
	}
}
