// Package dos provides the operating system services a .COM program can
// reach through software interrupts: the INT 21h function dispatcher
// (character and string console I/O, process termination) and the legacy
// INT 20h terminate entry.
//
// The console is an io.Reader/io.Writer pair, so programs can be run
// against buffers in tests and against the process standard streams in
// the command line tool.
package dos
