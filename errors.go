// errors.go
package gmodbuild

import (
	"errors"
	"fmt"
	"os/exec"
)

// Error wraps an error with the operation and path that failed.
type Error struct {
	Op   string // Operation that failed
	Path string // Path if applicable
	Err  error  // Underlying error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ExitCode maps an error from Run to the process exit code: a delegated
// child-process failure keeps the child's own exit code, any other error is
// 1, nil is 0.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code > 0 {
			return code
		}
	}
	return 1
}
