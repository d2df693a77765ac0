package store

import (
	"errors"
	"fmt"
)

// FormatError reports a backing file whose content is present but not a
// valid database document. It is distinct from plain IO failures, which
// are returned as wrapped os errors.
type FormatError struct {
	Path string
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: invalid database document: %v", e.Path, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// IsFormatError returns true if the error is a FormatError.
// Uses errors.As to handle wrapped errors.
func IsFormatError(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}
