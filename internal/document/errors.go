package document

import "fmt"

// ProcessingError represents a failure to read, parse, render or write a document.
type ProcessingError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ProcessingError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Message, e.Path, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Message, e.Path)
}

func (e *ProcessingError) Unwrap() error {
	return e.Cause
}
