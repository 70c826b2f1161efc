package gofatfs

import (
	"encoding/binary"
	"strings"
	"time"
	"unicode"
)

// Byte offsets inside of a 32 byte directory entry.
const (
	OffsetName        = 0
	OffsetExtension   = 8
	OffsetAttribute   = 11
	OffsetCaseInfo    = 12
	OffsetCTimeTenth  = 13
	OffsetCTime       = 14
	OffsetCDate       = 16
	OffsetADate       = 18
	OffsetClusterHigh = 20
	OffsetMTime       = 22
	OffsetMDate       = 24
	OffsetCluster     = 26
	OffsetFileSize    = 28

	EntryLength = 32
)

// Markers in the first byte of an entry.
const (
	// End marks the first unused entry of a directory.
	End = 0x00
	// Free marks a deleted entry.
	Free = 0xE5
	// freeEscape stands in for a leading 0xE5 of an alias.
	freeEscape = 0x05
)

// Attribute bits.
const (
	AttrReadOnly  = 0x01
	AttrHidden    = 0x02
	AttrSystem    = 0x04
	AttrVolumeID  = 0x08
	AttrDirectory = 0x10
	AttrArchive   = 0x20
	AttrLongName  = AttrReadOnly | AttrHidden | AttrSystem | AttrVolumeID
)

// Case info bits, which let an alias stand for a lower case long name without a long name entry.
const (
	CaseLowerBasename  = 0x08
	CaseLowerExtension = 0x10
)

// EntryData is one raw directory entry slot as it is stored on a FAT medium.
type EntryData [EntryLength]byte

func (e *EntryData) uint16At(off int) uint16 {
	return binary.LittleEndian.Uint16(e[off:])
}

func (e *EntryData) putUint16At(off int, v uint16) {
	binary.LittleEndian.PutUint16(e[off:], v)
}

// IsFree reports whether the slot holds a deleted entry.
func (e *EntryData) IsFree() bool {
	return e[OffsetName] == Free
}

// IsEnd reports whether the slot and all following ones are unused.
func (e *EntryData) IsEnd() bool {
	return e[OffsetName] == End
}

// IsLongName reports whether the slot holds a part of a long name.
func (e *EntryData) IsLongName() bool {
	return e[OffsetAttribute]&0x3F == AttrLongName
}

// Attribute returns the attribute bits.
func (e *EntryData) Attribute() byte {
	return e[OffsetAttribute]
}

// IsDirectory reports whether the entry is a directory.
func (e *EntryData) IsDirectory() bool {
	return !e.IsLongName() && e[OffsetAttribute]&AttrDirectory != 0
}

// SetDirectoryAttribute marks the entry as a directory, clearing all other attributes.
func (e *EntryData) SetDirectoryAttribute() {
	e[OffsetAttribute] = AttrDirectory
}

// Clear zeroes the whole entry.
func (e *EntryData) Clear() {
	*e = EntryData{}
}

// ClearAlias fills the name field with spaces.
func (e *EntryData) ClearAlias() {
	for i := OffsetName; i < OffsetName+AliasEntryLength; i++ {
		e[i] = ' '
	}
}

// SetDot turns the name field into "." or, for dotDot, "..".
func (e *EntryData) SetDot(dotDot bool) {
	e.ClearAlias()
	e[OffsetName] = '.'
	if dotDot {
		e[OffsetName+1] = '.'
	}
}

// SetupRoot initializes the entry as the "." entry of a directory starting at cluster.
func (e *EntryData) SetupRoot(cluster uint32) {
	e.Clear()
	e.SetDot(false)
	e.SetDirectoryAttribute()
	e.WriteCluster(cluster)
}

// Cluster returns the first cluster of the entry.
func (e *EntryData) Cluster() uint32 {
	return uint32(e.uint16At(OffsetClusterHigh))<<16 | uint32(e.uint16At(OffsetCluster))
}

// WriteCluster stores the first cluster of the entry.
func (e *EntryData) WriteCluster(c uint32) {
	e.putUint16At(OffsetCluster, uint16(c))
	e.putUint16At(OffsetClusterHigh, uint16(c>>16))
}

// FileSize returns the size of the file in bytes.
func (e *EntryData) FileSize() uint32 {
	return binary.LittleEndian.Uint32(e[OffsetFileSize:])
}

// WriteFileSize stores the size of the file in bytes.
func (e *EntryData) WriteFileSize(size uint32) {
	binary.LittleEndian.PutUint32(e[OffsetFileSize:], size)
}

// AliasBytes returns the raw 11 byte name field.
func (e *EntryData) AliasBytes() [AliasEntryLength]byte {
	var name [AliasEntryLength]byte
	copy(name[:], e[OffsetName:OffsetName+AliasEntryLength])
	return name
}

// Alias returns the stored alias in upper case, ignoring the case info bits.
func (e *EntryData) Alias() Alias {
	name := e.AliasBytes()
	if name[0] == freeEscape {
		name[0] = Free
	}
	return Alias{
		Base: strings.TrimRight(string(name[:MaxAliasMainPartLength]), " "),
		Ext:  strings.TrimRight(string(name[MaxAliasMainPartLength:]), " "),
	}
}

// Checksum returns the alias checksum of the name field.
func (e *EntryData) Checksum() byte {
	return GenerateAliasChecksum(e.AliasBytes())
}

// WriteAlias stores an alias given as "BASE.EXT" or "BASE" in code page bytes.
// Anything beyond 8 base or 3 extension bytes is dropped.
func (e *EntryData) WriteAlias(alias string) {
	base, ext, _ := strings.Cut(alias, ".")
	if len(base) > MaxAliasMainPartLength {
		base = base[:MaxAliasMainPartLength]
	}
	e.ClearAlias()
	copy(e[OffsetName:OffsetName+MaxAliasMainPartLength], base)
	copy(e[OffsetExtension:OffsetExtension+MaxAliasExtensionLength], ext)
	if e[OffsetName] == Free {
		e[OffsetName] = freeEscape
	}
}

// GenerateAlias returns the alias for display: "NAME.EXT", "NAME", "." or "..".
// The base and the extension are lower-cased when the matching case info bit is set.
// Free and end slots have no alias.
func (e *EntryData) GenerateAlias() string {
	if e.IsFree() || e.IsEnd() {
		return ""
	}
	if e[OffsetName] == '.' {
		if e[OffsetName+1] == '.' {
			return ".."
		}
		return "."
	}

	a := e.Alias()
	caseInfo := e[OffsetCaseInfo]
	res := make([]byte, 0, AliasEntryLength+1)
	res = appendCased(res, a.Base, caseInfo&CaseLowerBasename != 0)
	if a.Ext != "" {
		res = append(res, '.')
		res = appendCased(res, a.Ext, caseInfo&CaseLowerExtension != 0)
	}
	return decodeAlias(CodePage(), res)
}

func appendCased(dst []byte, s string, lower bool) []byte {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if lower && 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		dst = append(dst, c)
	}
	return dst
}

// FindAlias compares name case-insensitively with the alias of the entry.
// At most n characters are compared, and never more than the alias has,
// so a prefix of the alias which is at least n characters long matches too.
func (e *EntryData) FindAlias(name string, n int) bool {
	alias := []rune(e.GenerateAlias())
	if n > len(alias) {
		n = len(alias)
	}

	given := []rune(name)
	for i := 0; i < n; i++ {
		if i >= len(given) || unicode.ToUpper(given[i]) != unicode.ToUpper(alias[i]) {
			return false
		}
	}
	return true
}

// WriteCDateTime stores the current time as creation time.
func (e *EntryData) WriteCDateTime() {
	date, tm := FetchCurrentDateTime()
	e.putUint16At(OffsetCTime, tm)
	e.putUint16At(OffsetCDate, date)
}

// WriteDateTime stores the current time as creation and modification time and
// the current date as access date.
func (e *EntryData) WriteDateTime() {
	date, tm := FetchCurrentDateTime()
	for _, off := range []int{OffsetCDate, OffsetMDate, OffsetADate} {
		e.putUint16At(off, date)
	}
	for _, off := range []int{OffsetCTime, OffsetMTime} {
		e.putUint16At(off, tm)
	}
}

// ModTime returns the modification time in local time.
func (e *EntryData) ModTime() time.Time {
	return ConvertFATDateTime(e.uint16At(OffsetMDate), e.uint16At(OffsetMTime))
}
