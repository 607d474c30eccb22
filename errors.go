package gocmip6

import (
	"fmt"

	"github.com/pkg/errors"
)

// NumArgs is the number of positional arguments a run needs.
const NumArgs = 3

// ErrArgumentCount is returned when fewer than NumArgs arguments are given.
var ErrArgumentCount = errors.New("need variable_id, experiment_id and source_id")

// CheckArgs returns an error wrapping ErrArgumentCount if args is too short.
func CheckArgs(args []string) error {
	if len(args) < NumArgs {
		return errors.Wrapf(ErrArgumentCount, "got %d of %d arguments", len(args), NumArgs)
	}
	return nil
}

// FileWriteError reports a parameter file that could not be written.
type FileWriteError struct {
	Path string
	Err  error
}

func (e *FileWriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *FileWriteError) Unwrap() error { return e.Err }

// InvalidParamsError reports a parameter file that could not be loaded.
type InvalidParamsError struct {
	Path   string
	Reason string
	Err    error
}

func (e *InvalidParamsError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s %s", e.Path, e.Reason)
}

func (e *InvalidParamsError) Unwrap() error { return e.Err }
