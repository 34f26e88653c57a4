package sources

import (
	"errors"
	"fmt"
)

// ErrInvalidFormat indicates that the source file has an invalid or corrupted format.
type ErrInvalidFormat struct {
	Source  string // Source adapter name
	Path    string // File path
	Details string // What was wrong
	Err     error  // Underlying error, if any
}

func (e *ErrInvalidFormat) Error() string {
	msg := fmt.Sprintf("%s: invalid format for %q", e.Source, e.Path)
	if e.Details != "" {
		msg += ": " + e.Details
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ErrInvalidFormat) Unwrap() error {
	return e.Err
}

// ErrPermissionDenied indicates a file access permission issue.
type ErrPermissionDenied struct {
	Path string
	Op   string // Operation that failed (read, stat, etc.)
	Err  error  // Underlying error
}

func (e *ErrPermissionDenied) Error() string {
	msg := fmt.Sprintf("permission denied: cannot %s %q", e.Op, e.Path)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ErrPermissionDenied) Unwrap() error {
	return e.Err
}

// ErrFileNotFound indicates the specified file does not exist.
type ErrFileNotFound struct {
	Path string
}

func (e *ErrFileNotFound) Error() string {
	return fmt.Sprintf("file not found: %q", e.Path)
}

// ErrMissingName indicates that an item carrying a TOTP secret has no name.
type ErrMissingName struct {
	Source string // Source adapter name
	Index  int    // Position of the item in the export
}

func (e *ErrMissingName) Error() string {
	return fmt.Sprintf("%s: item %d has a TOTP secret but no name", e.Source, e.Index)
}

// IsFormatError returns true if the error is a format error.
func IsFormatError(err error) bool {
	var formatErr *ErrInvalidFormat
	return errors.As(err, &formatErr)
}

// IsNotFound returns true if the error is a not found error.
func IsNotFound(err error) bool {
	var notFoundErr *ErrFileNotFound
	return errors.As(err, &notFoundErr)
}

// IsPermissionDenied returns true if the error is a permission error.
func IsPermissionDenied(err error) bool {
	var permErr *ErrPermissionDenied
	return errors.As(err, &permErr)
}

// IsMissingName returns true if the error reports an unnamed TOTP item.
func IsMissingName(err error) bool {
	var nameErr *ErrMissingName
	return errors.As(err, &nameErr)
}
