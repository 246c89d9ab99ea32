//go:build windows

package console

import (
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sys/windows"

	"github.com/wippyai/utf8-stream/errors"
)

const utf8CodePage = 65001

// EnableUTF8 switches the console's input and output code pages to UTF-8 and
// returns a restore function that puts the previous code pages back. Defer
// the restore function so the console is returned to its prior state on
// every exit path:
//
//	restore, err := console.EnableUTF8()
//	if err != nil {
//	    return err
//	}
//	defer restore()
func EnableUTF8() (restore func() error, err error) {
	oldIn, err := windows.GetConsoleCP()
	if err != nil {
		return nil, errors.CodePage("query input code page", err)
	}
	oldOut, err := windows.GetConsoleOutputCP()
	if err != nil {
		return nil, errors.CodePage("query output code page", err)
	}

	if oldIn != utf8CodePage {
		if err := windows.SetConsoleCP(utf8CodePage); err != nil {
			return nil, errors.CodePage("set input code page", err)
		}
	}
	if oldOut != utf8CodePage {
		if err := windows.SetConsoleOutputCP(utf8CodePage); err != nil {
			// put the input code page back before failing
			if rerr := windows.SetConsoleCP(oldIn); rerr != nil {
				err = multierr.Append(err, rerr)
			}
			return nil, errors.CodePage("set output code page", err)
		}
	}

	Logger().Debug("console code pages switched to UTF-8",
		zap.Uint32("previous_input", oldIn),
		zap.Uint32("previous_output", oldOut))

	return func() error {
		var rerr error
		if oldIn != utf8CodePage {
			if err := windows.SetConsoleCP(oldIn); err != nil {
				rerr = multierr.Append(rerr, errors.CodePage("restore input code page", err))
			}
		}
		if oldOut != utf8CodePage {
			if err := windows.SetConsoleOutputCP(oldOut); err != nil {
				rerr = multierr.Append(rerr, errors.CodePage("restore output code page", err))
			}
		}
		return rerr
	}, nil
}
