package platform

import (
	"runtime"
	"strings"

	"github.com/aligator/gofatfs/internal/utf16x"
)

// IsAbsolutePOSIX reports whether path is absolute on a POSIX system.
// Besides a leading '/' a path may start with a device root like "fat:/" or "sd:/".
// There has to be a device name in front of the ":/" and no second ":/" after it.
func IsAbsolutePOSIX(path string) bool {
	if strings.HasPrefix(path, "/") {
		return true
	}

	idx := strings.Index(path, ":/")
	return idx > 0 && !strings.Contains(path[idx+2:], ":/")
}

// IsAbsoluteWindows reports whether path starts with '\' or a drive letter.
func IsAbsoluteWindows(path string) bool {
	return strings.HasPrefix(path, `\`) || (len(path) > 1 && path[1] == ':')
}

// IsAbsolute reports whether path is absolute on the running system.
func IsAbsolute(path string) bool {
	if runtime.GOOS == "windows" {
		return IsAbsoluteWindows(path)
	}
	return IsAbsolutePOSIX(path)
}

// IsAbsoluteUTF16 is IsAbsolute for a UTF-16 path, optionally NUL terminated.
func IsAbsoluteUTF16(path []uint16) bool {
	return IsAbsolute(utf16x.ToString(path))
}

// GetRootNameLength returns the length of the root name of path, up to and including the
// first ':', or 0 if there is none: "sd:/data" has the root name "sd:".
func GetRootNameLength(path string) int {
	return strings.IndexByte(path, ':') + 1
}

// deviceRoots are the roots of the storage devices of handheld targets.
var deviceRoots = []string{"fat:/", "sd:/"}

// IsRoot reports whether path names a file system root.
func IsRoot(path string) bool {
	if path == "/" {
		return true
	}
	for _, r := range deviceRoots {
		if path == r {
			return true
		}
	}
	return false
}
