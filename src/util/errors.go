// Package util holds small pieces of supporting infrastructure shared by
// the front end and the core compiler: a generic stack, a diagnostic
// collector, and the external-toolchain invocation (Assemble).
package util

import "fmt"

// Diagnostic is a single positioned error, the shape spec.md §6/§7 requires
// for parser and lexer diagnostics: "{line}:{column} {message}".
type Diagnostic struct {
	Line    int
	Column  int
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%d:%d %s", d.Line, d.Column, d.Message)
}

// ErrorList accumulates diagnostics during a single parse. It replaces the
// teacher's channel-backed util.Perror: spec.md §5 mandates synchronous,
// single-threaded execution, so there is no concurrent producer to guard
// against and no need for the teacher's Stop/Flush lifecycle.
type ErrorList struct {
	diags []Diagnostic
}

// Append records a new diagnostic at the given position.
func (e *ErrorList) Append(line, col int, format string, args ...interface{}) {
	e.diags = append(e.diags, Diagnostic{
		Line:    line,
		Column:  col,
		Message: fmt.Sprintf(format, args...),
	})
}

// Errors returns the diagnostics recorded so far, in the order appended.
func (e *ErrorList) Errors() []Diagnostic {
	return e.diags
}

// Len reports how many diagnostics have been recorded.
func (e *ErrorList) Len() int {
	return len(e.diags)
}
