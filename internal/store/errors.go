package store

import (
	"errors"
	"fmt"
)

// DataCorruptionError reports a tasks file whose content could not be
// decoded. The file is left untouched so the user can inspect or repair it.
type DataCorruptionError struct {
	Path string
	Err  error
}

func (e *DataCorruptionError) Error() string {
	return fmt.Sprintf("tasks file %s is corrupt: %v", e.Path, e.Err)
}

func (e *DataCorruptionError) Unwrap() error {
	return e.Err
}

// IsDataCorruption reports whether err is (or wraps) a DataCorruptionError.
func IsDataCorruption(err error) bool {
	var dce *DataCorruptionError
	return errors.As(err, &dce)
}
