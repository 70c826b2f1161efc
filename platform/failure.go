package platform

import (
	"errors"
	"syscall"

	"github.com/aligator/gofatfs/checkpoint"
)

// These errors may occur while operating on files and directories.
var (
	ErrOpenDirectory = errors.New("could not open the directory")
	ErrReadDirectory = errors.New("could not read the directory")
	ErrQueryFile     = errors.New("could not query the file")
	ErrOpenFile      = errors.New("could not open the file")
	ErrModifyFile    = errors.New("could not modify the file")
	ErrClosed        = errors.New("the handle is already closed")
)

// FileOperationFailure is returned when a file system call fails.
// The native error code stays reachable:
//
//	errors.Is(err, syscall.ENOENT)
type FileOperationFailure struct {
	Op   string
	Path string
	Err  error
}

func (e *FileOperationFailure) Error() string {
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *FileOperationFailure) Unwrap() error {
	return e.Err
}

// Errno returns the native error code of the failure, if there is one.
func (e *FileOperationFailure) Errno() (syscall.Errno, bool) {
	return checkpoint.Errno(e.Err)
}
