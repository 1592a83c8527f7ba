package patch

import "fmt"

// ExitError carries a non-zero exit code out of a command whose summary has
// already been printed.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}
