// Package clierr carries process exit codes alongside CLI error messages.
package clierr

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Exit codes.
const (
	// CodeUsage covers missing or invalid arguments, configuration and I/O failures.
	CodeUsage = 1
	// CodeResolve covers repository paths and refs that cannot be resolved.
	CodeResolve = 2
)

// Error is a fatal CLI error with the status the process should exit with.
type Error struct {
	Code    int
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Usage creates an error that exits with CodeUsage.
func Usage(format string, args ...any) *Error {
	return &Error{Code: CodeUsage, Message: fmt.Sprintf(format, args...)}
}

// Resolve wraps err so the process exits with CodeResolve.
func Resolve(err error) *Error {
	return &Error{Code: CodeResolve, Message: err.Error(), Err: err}
}

// Wrap attaches code to err, keeping its message.
func Wrap(err error, code int) *Error {
	return &Error{Code: code, Message: err.Error(), Err: err}
}

// CodeOf returns the exit status for err: 0 for nil, the carried code for
// an *Error, CodeUsage otherwise.
func CodeOf(err error) int {
	if err == nil {
		return 0
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUsage
}

// Fprint writes "Error: <message>" to w. The label is coloured only when w is
// a terminal and NO_COLOR is unset.
func Fprint(w io.Writer, err error) {
	if err == nil {
		return
	}
	label := "Error:"
	if isTerminal(w) {
		c := color.New(color.FgRed, color.Bold)
		c.EnableColor()
		label = c.Sprint(label)
	}
	fmt.Fprintf(w, "%s %s\n", label, err.Error())
}

func isTerminal(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
