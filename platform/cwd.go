package platform

import (
	"os"
	"syscall"

	"github.com/aligator/gofatfs/checkpoint"
	"github.com/aligator/gofatfs/internal/utf16x"
)

var getwd = os.Getwd

// Getwd16 writes the current working directory as NUL terminated UTF-16 into buf and returns
// its length without the terminator.
// syscall.EINVAL is returned for an empty buf, syscall.ERANGE if the directory does not fit.
func Getwd16(buf []uint16) (int, error) {
	if len(buf) == 0 {
		return 0, syscall.EINVAL
	}

	cwd, err := getwd()
	if err != nil {
		return 0, checkpoint.From(err)
	}

	units := utf16x.FromString(cwd)
	if len(buf) < len(units)+1 {
		return 0, syscall.ERANGE
	}
	return utf16x.CopyTerminated(buf, units)
}
