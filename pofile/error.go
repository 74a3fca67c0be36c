package pofile

import "fmt"

// SyntaxError describes a lexical or grammar error in PO source text.
// Line is the 1-based source line the error was detected on.
//
// Both Tokenize and Parse report the first error they encounter and stop;
// there is no error recovery or accumulation.
type SyntaxError struct {
	Line   int
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

func syntaxErrorf(line int, format string, args ...any) *SyntaxError {
	return &SyntaxError{Line: line, Reason: fmt.Sprintf(format, args...)}
}
