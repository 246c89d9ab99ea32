// Package console wires the library to the process's standard streams.
//
// Stdin and Stdout return process-wide reader and writer singletons,
// initialized lazily on first use. EnableUTF8 switches the host console's
// active code page to UTF-8 for the life of the process and hands back a
// restore function for deferred release; on platforms without console code
// pages it is a no-op.
//
// The package logger is a no-op by default; install one with SetLogger.
package console
