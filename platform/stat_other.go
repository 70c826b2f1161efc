//go:build !unix

package platform

import "io/fs"

func rawStatOf(fs.FileInfo) (StatSource, bool) {
	return nil, false
}
