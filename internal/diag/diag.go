// SPDX-License-Identifier: Unlicense OR MIT

// Package diag writes diagnostic lines for the windowing, GPU and font
// facades. Lines go to the process diagnostic stream (stderr) by default.
package diag

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Logger writes one line per diagnostic. Error tags such as
// "[GLFW ERROR]" are tinted when the destination is a terminal.
type Logger struct {
	l    *log.Logger
	tint *color.Color
}

var (
	stderrOnce sync.Once
	stderr     *Logger
)

// New returns a Logger writing to w.
func New(w io.Writer) *Logger {
	lg := &Logger{l: log.New(w, "", 0)}
	if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		lg.tint = color.New(color.FgRed, color.Bold)
		lg.tint.EnableColor()
	}
	return lg
}

// Stderr returns the shared Logger for os.Stderr.
func Stderr() *Logger {
	stderrOnce.Do(func() {
		stderr = New(os.Stderr)
	})
	return stderr
}

// Or returns l, or the stderr Logger if l is nil.
func Or(l *Logger) *Logger {
	if l != nil {
		return l
	}
	return Stderr()
}

// Printf writes an untagged line.
func (l *Logger) Printf(format string, args ...interface{}) {
	l.l.Printf(format, args...)
}

// Errorf writes a line prefixed by "[<system> ERROR] ".
func (l *Logger) Errorf(system, format string, args ...interface{}) {
	tag := "[" + system + " ERROR]"
	if l.tint != nil {
		tag = l.tint.Sprint(tag)
	}
	l.l.Print(tag + " " + fmt.Sprintf(format, args...))
}
