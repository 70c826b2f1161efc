// File model contains decoded views of raw directory entry slots.

package gofatfs

import (
	"bytes"
	"encoding/binary"
)

// EntryHeader is a short name entry decoded field by field.
type EntryHeader struct {
	Name            [AliasEntryLength]byte
	Attribute       byte
	CaseInfo        byte
	CreateTimeTenth byte
	CreateTime      uint16
	CreateDate      uint16
	LastAccessDate  uint16
	FirstClusterHI  uint16
	WriteTime       uint16
	WriteDate       uint16
	FirstClusterLO  uint16
	FileSize        uint32
}

// LongFilenameEntry is a long name entry decoded field by field.
type LongFilenameEntry struct {
	Sequence  byte
	First     [5]uint16
	Attribute byte
	EntryType byte
	Checksum  byte
	Second    [6]uint16
	Zero      [2]byte
	Third     [2]uint16
}

// ExtendedEntryHeader is a short name entry together with the long name stored in front of it.
type ExtendedEntryHeader struct {
	EntryHeader
	ExtendedName string
}

// Header decodes e as a short name entry.
func (e *EntryData) Header() EntryHeader {
	var h EntryHeader
	// The struct has exactly EntryLength bytes, reading cannot fail.
	_ = binary.Read(bytes.NewReader(e[:]), binary.LittleEndian, &h)
	return h
}

// LongFilename decodes e as a long name entry.
func (e *EntryData) LongFilename() LongFilenameEntry {
	var l LongFilenameEntry
	_ = binary.Read(bytes.NewReader(e[:]), binary.LittleEndian, &l)
	return l
}

// Data encodes h into a raw slot.
func (h EntryHeader) Data() EntryData {
	var buf bytes.Buffer
	buf.Grow(EntryLength)
	_ = binary.Write(&buf, binary.LittleEndian, h)

	var e EntryData
	copy(e[:], buf.Bytes())
	return e
}

// Cluster returns the first cluster.
func (h EntryHeader) Cluster() uint32 {
	return uint32(h.FirstClusterHI)<<16 | uint32(h.FirstClusterLO)
}
