// Package winerr defines the error values shared by the native Windows packages.
package winerr

import (
	"errors"
	"fmt"
	"syscall"
)

// ErrUnsupported indicates the native Windows API is not available on this platform.
var ErrUnsupported = errors.New("winsim: native Windows API is only available on Windows")

// OSError reports an operation the OS refused, with the numeric error code it returned.
type OSError struct {
	Op   string
	Code syscall.Errno
	// Err is the underlying cause when it carries no errno.
	Err error
}

// Error formats the failing operation and the OS code.
func (e *OSError) Error() string {
	if e.Code == 0 {
		if e.Err != nil {
			return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
		}
		return fmt.Sprintf("%s failed", e.Op)
	}
	return fmt.Sprintf("%s failed: %v (code %d)", e.Op, e.Code, uint32(e.Code))
}

// Unwrap exposes the errno so errors.Is works against syscall.Errno values.
func (e *OSError) Unwrap() error {
	if e.Code == 0 {
		return e.Err
	}
	return e.Code
}

// New builds an OSError for op from an error returned by a native call.
// Errors that do not carry an errno keep code zero and are kept as Err.
func New(op string, err error) *OSError {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return &OSError{Op: op, Code: errno}
	}
	return &OSError{Op: op, Err: err}
}

// Code returns the OS error code carried by err, or zero when there is none.
func Code(err error) uint32 {
	var osErr *OSError
	if errors.As(err, &osErr) {
		return uint32(osErr.Code)
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return uint32(errno)
	}
	return 0
}
