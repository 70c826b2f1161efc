package platform

import (
	"io/fs"
	"strings"
)

// NodeCategory is a bit set describing what a directory entry refers to.
// A symbolic link which could be followed carries the category of its target as well.
type NodeCategory uint32

const (
	Empty     NodeCategory = 0
	Directory NodeCategory = 1 << (iota - 1)
	Link
	Regular
	Character
	Block
	FIFO
	Socket
	MountPoint
	Invalid

	SymbolicLink = Link
)

var categoryNames = []struct {
	c    NodeCategory
	name string
}{
	{Directory, "directory"},
	{Link, "link"},
	{Regular, "regular"},
	{Character, "character"},
	{Block, "block"},
	{FIFO, "fifo"},
	{Socket, "socket"},
	{MountPoint, "mountpoint"},
	{Invalid, "invalid"},
}

// Has reports whether all bits of o are set in c.
func (c NodeCategory) Has(o NodeCategory) bool {
	return c&o == o
}

func (c NodeCategory) String() string {
	if c == Empty {
		return "empty"
	}

	var names []string
	for _, n := range categoryNames {
		if c&n.c != 0 {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, "|")
}

// FileType is the file type part of a stat mode.
type FileType int

const (
	TypeUnknown FileType = iota
	TypeDirectory
	TypeSymlink
	TypeRegular
	TypeCharDevice
	TypeBlockDevice
	TypeFIFO
	TypeSocket
)

// StatSource provides the file type of a node, usually taken from a stat call.
//
// Generated mock using mockgen:
//
//	mockgen -source=category.go -destination=category_mock_test.go -package platform
type StatSource interface {
	FileType() FileType
}

// ModeStat is a StatSource for the portable fs.FileMode.
type ModeStat fs.FileMode

func (m ModeStat) FileType() FileType {
	mode := fs.FileMode(m)
	switch {
	case mode&fs.ModeDir != 0:
		return TypeDirectory
	case mode&fs.ModeSymlink != 0:
		return TypeSymlink
	case mode&fs.ModeNamedPipe != 0:
		return TypeFIFO
	case mode&fs.ModeSocket != 0:
		return TypeSocket
	case mode&fs.ModeCharDevice != 0:
		return TypeCharDevice
	case mode&fs.ModeDevice != 0:
		return TypeBlockDevice
	case mode.Type() == 0:
		return TypeRegular
	}
	return TypeUnknown
}

// ClassifyNode maps the file type of s to its category.
// The types are tested in the order directory, link, regular, character device, block device,
// FIFO and socket. Empty is returned if none of them matches.
func ClassifyNode(s StatSource) NodeCategory {
	switch s.FileType() {
	case TypeDirectory:
		return Directory
	case TypeSymlink:
		return Link
	case TypeRegular:
		return Regular
	case TypeCharDevice:
		return Character
	case TypeBlockDevice:
		return Block
	case TypeFIFO:
		return FIFO
	case TypeSocket:
		return Socket
	}
	return Empty
}

// statOf prefers the native stat mode of fi and falls back to its portable mode.
func statOf(fi fs.FileInfo) StatSource {
	if s, ok := rawStatOf(fi); ok {
		return s
	}
	return ModeStat(fi.Mode())
}
