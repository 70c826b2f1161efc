package gofatfs

import (
	"os"
	"time"
)

// FileInfo returns an os.FileInfo view of the entry.
func (h *ExtendedEntryHeader) FileInfo() os.FileInfo {
	return entryHeaderFileInfo{*h}
}

// FileInfo returns an os.FileInfo view of a short name entry without a long name.
func (e *EntryData) FileInfo() os.FileInfo {
	return entryHeaderFileInfo{ExtendedEntryHeader{EntryHeader: e.Header()}}
}

type entryHeaderFileInfo struct {
	entry ExtendedEntryHeader
}

// Name returns the long name if there is one, the alias honoring the case info otherwise.
func (e entryHeaderFileInfo) Name() string {
	if e.entry.ExtendedName != "" {
		return e.entry.ExtendedName
	}
	data := e.entry.Data()
	return data.GenerateAlias()
}

func (e entryHeaderFileInfo) Size() int64 {
	return int64(e.entry.FileSize)
}

func (e entryHeaderFileInfo) Mode() os.FileMode {
	perm := os.FileMode(0o666)
	if e.entry.Attribute&AttrReadOnly != 0 {
		perm = 0o444
	}
	if e.IsDir() {
		return os.ModeDir | perm | 0o111
	}
	return perm
}

// ModTime combines the write date and time in UTC.
// An invalid write date results in time.Time{}.
func (e entryHeaderFileInfo) ModTime() time.Time {
	writeDate := ParseDate(e.entry.WriteDate)
	writeTime := ParseTime(e.entry.WriteTime)

	// A zero writeTime is a valid midnight, only the date tells about validity.
	if writeDate.IsZero() {
		return time.Time{}
	}

	return time.Date(writeDate.Year(), writeDate.Month(), writeDate.Day(), writeTime.Hour(), writeTime.Minute(), writeTime.Second(), 0, time.UTC)
}

func (e entryHeaderFileInfo) IsDir() bool {
	return e.entry.Attribute&AttrDirectory == AttrDirectory
}

func (e entryHeaderFileInfo) Sys() interface{} {
	return e.entry
}
