package gofatfs

import (
	"os"
	"reflect"
	"testing"
	"time"
)

// header builds a decoded short name entry with the given alias, attributes and case info.
func header(alias string, attr, caseInfo byte) ExtendedEntryHeader {
	var e EntryData
	e.WriteAlias(alias)
	e[OffsetAttribute] = attr
	e[OffsetCaseInfo] = caseInfo
	return ExtendedEntryHeader{EntryHeader: e.Header()}
}

func withWriteStamp(h ExtendedEntryHeader, date, tm uint16) ExtendedEntryHeader {
	h.WriteDate = date
	h.WriteTime = tm
	return h
}

func Test_entryHeaderFileInfo_Name(t *testing.T) {
	dot := EntryData{}
	dot.SetDot(true)

	tests := []struct {
		name  string
		entry ExtendedEntryHeader
		want  string
	}{
		{
			name:  "alias with extension",
			entry: header("README.TXT", 0, 0),
			want:  "README.TXT",
		},
		{
			name:  "alias without extension",
			entry: header("MAKEFILE", 0, 0),
			want:  "MAKEFILE",
		},
		{
			name:  "lower case base",
			entry: header("README.TXT", 0, CaseLowerBasename),
			want:  "readme.TXT",
		},
		{
			name:  "lower case base and extension",
			entry: header("README.TXT", 0, CaseLowerBasename|CaseLowerExtension),
			want:  "readme.txt",
		},
		{
			name:  "code page byte",
			entry: header("\x8eBC.TXT", 0, 0),
			want:  "ÄBC.TXT",
		},
		{
			name:  "escaped leading free marker",
			entry: header("\xe5ABC.TXT", 0, 0),
			want:  "σABC.TXT",
		},
		{
			name:  "dot dot entry",
			entry: ExtendedEntryHeader{EntryHeader: dot.Header()},
			want:  "..",
		},
		{
			name: "long name wins over the alias",
			entry: ExtendedEntryHeader{
				EntryHeader:  header("MYLONG~1.DOC", 0, CaseLowerBasename).EntryHeader,
				ExtendedName: "My Long Document.docx",
			},
			want: "My Long Document.docx",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entry.FileInfo().Name(); got != tt.want {
				t.Errorf("entryHeaderFileInfo.Name() = %q, want %q", got, tt.want)
			}
		})
	}
}

func Test_entryHeaderFileInfo_Mode(t *testing.T) {
	tests := []struct {
		name  string
		attr  byte
		want  os.FileMode
		isDir bool
	}{
		{name: "regular file", attr: AttrArchive, want: 0o666},
		{name: "read only file", attr: AttrReadOnly | AttrArchive, want: 0o444},
		{name: "hidden system file", attr: AttrHidden | AttrSystem, want: 0o666},
		{name: "directory", attr: AttrDirectory, want: os.ModeDir | 0o777, isDir: true},
		{name: "read only directory", attr: AttrDirectory | AttrReadOnly, want: os.ModeDir | 0o555, isDir: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := header("ENTRY", tt.attr, 0)
			fi := h.FileInfo()
			if got := fi.Mode(); got != tt.want {
				t.Errorf("entryHeaderFileInfo.Mode() = %v, want %v", got, tt.want)
			}
			if got := fi.IsDir(); got != tt.isDir {
				t.Errorf("entryHeaderFileInfo.IsDir() = %v, want %v", got, tt.isDir)
			}
		})
	}
}

func Test_entryHeaderFileInfo_ModTime(t *testing.T) {
	tests := []struct {
		name string
		date uint16
		tm   uint16
		want time.Time
	}{
		{
			name: "date and time",
			date: 20890,
			tm:   41936,
			want: time.Date(2020, 12, 26, 20, 30, 32, 0, time.UTC),
		},
		{
			name: "midnight",
			date: 20890,
			tm:   0,
			want: time.Date(2020, 12, 26, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "odd seconds are not stored",
			date: 20890,
			tm:   PackTime(time.Date(2000, 1, 1, 20, 30, 33, 0, time.UTC)),
			want: time.Date(2020, 12, 26, 20, 30, 32, 0, time.UTC),
		},
		{
			name: "time beyond the day is clamped",
			date: 20890,
			tm:   0xFFFF,
			want: time.Date(2020, 12, 26, 23, 59, 59, 0, time.UTC),
		},
		{
			name: "unset stamp",
			want: time.Time{},
		},
		{
			name: "month 0",
			date: 40<<9 | 26,
			tm:   41936,
			want: time.Time{},
		},
		{
			name: "day 0",
			date: 40<<9 | 12<<5,
			tm:   41936,
			want: time.Time{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := withWriteStamp(header("STAMP", 0, 0), tt.date, tt.tm)
			fi := h.FileInfo()
			if got := fi.ModTime(); !got.Equal(tt.want) {
				t.Errorf("entryHeaderFileInfo.ModTime() = %v, want %v", got, tt.want)
			}
		})
	}
}

// An invalid stamp is reported as zero by FileInfo but normalized by ConvertFATDateTime.
func Test_entryHeaderFileInfo_ModTimeInvalidDate(t *testing.T) {
	var e EntryData
	e.WriteAlias("STAMP")
	e.putUint16At(OffsetMDate, 40<<9|26)

	if got := e.FileInfo().ModTime(); !got.IsZero() {
		t.Errorf("EntryData.FileInfo().ModTime() = %v, want zero time", got)
	}
	want := time.Date(2019, 12, 26, 0, 0, 0, 0, time.Local)
	if got := e.ModTime(); !got.Equal(want) {
		t.Errorf("EntryData.ModTime() = %v, want %v", got, want)
	}
}

func Test_entryHeaderFileInfo_SizeAndSys(t *testing.T) {
	h := header("DATA.BIN", AttrArchive, 0)
	h.FileSize = 0xFFFFFFFF
	h.ExtendedName = "data.bin"

	fi := h.FileInfo()
	if got := fi.Size(); got != 0xFFFFFFFF {
		t.Errorf("entryHeaderFileInfo.Size() = %v, want %v", got, int64(0xFFFFFFFF))
	}
	if got := fi.Sys(); !reflect.DeepEqual(got, h) {
		t.Errorf("entryHeaderFileInfo.Sys() = %v, want %v", got, h)
	}
}

func TestEntryData_FileInfo(t *testing.T) {
	var e EntryData
	e.WriteAlias("HELLO.TXT")
	e[OffsetCaseInfo] = CaseLowerExtension
	e[OffsetAttribute] = AttrReadOnly
	e.WriteFileSize(42)
	e.putUint16At(OffsetMDate, 20890)
	e.putUint16At(OffsetMTime, 41936)

	fi := e.FileInfo()
	if fi.Name() != "HELLO.txt" {
		t.Errorf("EntryData.FileInfo().Name() = %v, want %v", fi.Name(), "HELLO.txt")
	}
	if fi.Size() != 42 {
		t.Errorf("EntryData.FileInfo().Size() = %v, want %v", fi.Size(), 42)
	}
	if fi.Mode() != 0o444 {
		t.Errorf("EntryData.FileInfo().Mode() = %v, want %v", fi.Mode(), os.FileMode(0o444))
	}
	if want := time.Date(2020, 12, 26, 20, 30, 32, 0, time.UTC); !fi.ModTime().Equal(want) {
		t.Errorf("EntryData.FileInfo().ModTime() = %v, want %v", fi.ModTime(), want)
	}
}
