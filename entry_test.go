package gofatfs

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func entryWithAlias(alias string, caseInfo byte) *EntryData {
	e := &EntryData{}
	e.WriteAlias(alias)
	e[OffsetCaseInfo] = caseInfo
	return e
}

func TestEntryData_GenerateAlias(t *testing.T) {
	tests := []struct {
		name  string
		entry *EntryData
		want  string
	}{
		{
			name:  "base and extension",
			entry: entryWithAlias("README.TXT", 0),
			want:  "README.TXT",
		},
		{
			name:  "no extension",
			entry: entryWithAlias("MAKEFILE", 0),
			want:  "MAKEFILE",
		},
		{
			name:  "lower case base",
			entry: entryWithAlias("README.TXT", CaseLowerBasename),
			want:  "readme.TXT",
		},
		{
			name:  "lower case extension",
			entry: entryWithAlias("README.TXT", CaseLowerExtension),
			want:  "README.txt",
		},
		{
			name:  "lower case both",
			entry: entryWithAlias("FILENA~1.TXT", CaseLowerBasename|CaseLowerExtension),
			want:  "filena~1.txt",
		},
		{
			name:  "escaped leading 0xE5",
			entry: entryWithAlias("\xe5ABC.TXT", 0),
			want:  "σABC.TXT",
		},
		{
			name: "dot",
			entry: func() *EntryData {
				e := &EntryData{}
				e.SetDot(false)
				return e
			}(),
			want: ".",
		},
		{
			name: "dot dot",
			entry: func() *EntryData {
				e := &EntryData{}
				e.SetDot(true)
				return e
			}(),
			want: "..",
		},
		{
			name:  "free slot",
			entry: &EntryData{OffsetName: Free, 1: 'A', 2: 'B'},
			want:  "",
		},
		{
			name:  "end of directory",
			entry: &EntryData{},
			want:  "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entry.GenerateAlias(); got != tt.want {
				t.Errorf("EntryData.GenerateAlias() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEntryData_WriteAlias(t *testing.T) {
	e := entryWithAlias("README.TXT", 0)
	assert.Equal(t, [AliasEntryLength]byte{'R', 'E', 'A', 'D', 'M', 'E', ' ', ' ', 'T', 'X', 'T'}, e.AliasBytes())
	assert.Equal(t, Alias{Base: "README", Ext: "TXT"}, e.Alias())
	assert.Equal(t, byte(0x73), e.Checksum())

	e.WriteAlias("TOOLONGNAME.TEXT")
	assert.Equal(t, Alias{Base: "TOOLONGN", Ext: "TEX"}, e.Alias())

	e.WriteAlias("\xe5X")
	assert.Equal(t, byte(freeEscape), e[OffsetName])
	assert.False(t, e.IsFree())
	assert.Equal(t, Alias{Base: "\xe5X"}, e.Alias())
}

func TestEntryData_Markers(t *testing.T) {
	var e EntryData
	assert.True(t, e.IsEnd())
	assert.False(t, e.IsFree())

	e[OffsetName] = Free
	assert.True(t, e.IsFree())
	assert.False(t, e.IsEnd())

	tests := []struct {
		name     string
		attr     byte
		longName bool
		dir      bool
	}{
		{name: "regular file", attr: AttrArchive},
		{name: "directory", attr: AttrDirectory, dir: true},
		{name: "long name", attr: AttrLongName, longName: true},
		{name: "long name with reserved bits", attr: 0xC0 | AttrLongName, longName: true},
		{name: "volume label", attr: AttrVolumeID | AttrArchive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := EntryData{OffsetAttribute: tt.attr}
			if got := e.IsLongName(); got != tt.longName {
				t.Errorf("EntryData.IsLongName() = %v, want %v", got, tt.longName)
			}
			if got := e.IsDirectory(); got != tt.dir {
				t.Errorf("EntryData.IsDirectory() = %v, want %v", got, tt.dir)
			}
		})
	}
}

func TestEntryData_SetupRoot(t *testing.T) {
	e := EntryData{}
	for i := range e {
		e[i] = 0xAA
	}
	e.SetupRoot(0x00120034)

	assert.Equal(t, ".", e.GenerateAlias())
	assert.True(t, e.IsDirectory())
	assert.Equal(t, byte(AttrDirectory), e.Attribute())
	assert.Equal(t, uint32(0x00120034), e.Cluster())
	assert.Equal(t, []byte{0x12, 0x00}, e[OffsetClusterHigh:OffsetClusterHigh+2])
	assert.Equal(t, []byte{0x34, 0x00}, e[OffsetCluster:OffsetCluster+2])
	assert.Zero(t, e.FileSize())
}

func TestEntryData_FileSize(t *testing.T) {
	var e EntryData
	e.WriteFileSize(0xDEADBEEF)
	assert.Equal(t, uint32(0xDEADBEEF), e.FileSize())
	assert.Equal(t, []byte{0xEF, 0xBE, 0xAD, 0xDE}, e[OffsetFileSize:])
}

func TestEntryData_FindAlias(t *testing.T) {
	e := entryWithAlias("README.TXT", 0)

	tests := []struct {
		name  string
		given string
		n     int
		want  bool
	}{
		{name: "exact", given: "README.TXT", n: 10, want: true},
		{name: "case insensitive", given: "readme.txt", n: 10, want: true},
		{name: "prefix", given: "READ", n: 4, want: true},
		{name: "n beyond the alias", given: "readme.txt", n: 64, want: true},
		{name: "mismatch", given: "READX", n: 5, want: false},
		{name: "given too short", given: "RE", n: 4, want: false},
		{name: "nothing compared", given: "", n: 0, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.FindAlias(tt.given, tt.n); got != tt.want {
				t.Errorf("EntryData.FindAlias(%q, %d) = %v, want %v", tt.given, tt.n, got, tt.want)
			}
		})
	}
}

func TestEntryData_WriteDateTime(t *testing.T) {
	stubNow(t, time.Date(2015, 6, 26, 17, 21, 7, 0, time.Local))

	var e EntryData
	e.WriteDateTime()
	for _, off := range []int{OffsetCDate, OffsetMDate, OffsetADate} {
		assert.Equal(t, uint16(18138), binary.LittleEndian.Uint16(e[off:]), "date at %d", off)
	}
	for _, off := range []int{OffsetCTime, OffsetMTime} {
		assert.Equal(t, uint16(35491), binary.LittleEndian.Uint16(e[off:]), "time at %d", off)
	}
	assert.True(t, e.ModTime().Equal(time.Date(2015, 6, 26, 17, 21, 6, 0, time.Local)))

	var c EntryData
	c.WriteCDateTime()
	assert.Equal(t, uint16(18138), binary.LittleEndian.Uint16(c[OffsetCDate:]))
	assert.Equal(t, uint16(35491), binary.LittleEndian.Uint16(c[OffsetCTime:]))
	assert.Zero(t, binary.LittleEndian.Uint16(c[OffsetMDate:]))
}

func TestEntryData_Header(t *testing.T) {
	e := entryWithAlias("HELLO.TXT", CaseLowerExtension)
	e[OffsetAttribute] = AttrArchive
	e.WriteCluster(0x00030002)
	e.WriteFileSize(9)

	h := e.Header()
	assert.Equal(t, byte(AttrArchive), h.Attribute)
	assert.Equal(t, byte(CaseLowerExtension), h.CaseInfo)
	assert.Equal(t, uint16(3), h.FirstClusterHI)
	assert.Equal(t, uint16(2), h.FirstClusterLO)
	assert.Equal(t, uint32(0x00030002), h.Cluster())
	assert.Equal(t, uint32(9), h.FileSize)
	assert.Equal(t, *e, h.Data())
}
