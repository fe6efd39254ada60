package cli

import (
	"github.com/roach88/taskline/internal/store"
	"github.com/roach88/taskline/internal/task"
)

// Error codes reported in CLI output.
const (
	ErrCodeGeneric    = "E001" // Generic/unknown error
	ErrCodeValidation = "E002" // Rejected input (empty description, negative estimate)
	ErrCodeNotFound   = "E003" // Unknown task id
	ErrCodeCorrupt    = "E004" // Tasks file unreadable
	ErrCodeJournal    = "E005" // Journal unavailable
	ErrCodeConfig     = "E006" // Config file unreadable
)

// reportError prints err through the formatter and converts it into an
// ExitError so main can map it to a process exit code. Validation and
// not-found errors are request failures (exit 1); everything else is a
// command error (exit 2).
func reportError(f *OutputFormatter, err error) error {
	code := ErrCodeGeneric
	exit := ExitCommandError

	switch {
	case task.IsValidationError(err):
		code, exit = ErrCodeValidation, ExitFailure
	case task.IsNotFoundError(err):
		code, exit = ErrCodeNotFound, ExitFailure
	case store.IsDataCorruption(err):
		code = ErrCodeCorrupt
	}

	_ = f.Error(code, err.Error(), nil)
	return WrapExitError(exit, code, err)
}
