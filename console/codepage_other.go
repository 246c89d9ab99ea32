//go:build !windows

package console

// EnableUTF8 is a no-op on platforms without console code pages; terminals
// there speak UTF-8 natively. The returned restore function does nothing.
func EnableUTF8() (restore func() error, err error) {
	return func() error { return nil }, nil
}
