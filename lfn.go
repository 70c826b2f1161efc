package gofatfs

import (
	"errors"
	"fmt"

	"github.com/aligator/gofatfs/internal/utf16x"
)

// Long name entry layout.
const (
	OffsetOrdinal      = 0
	OffsetLFNType      = 12
	OffsetLFNChecksum  = 13
	OffsetLFNCluster   = 26
	LastLongEntry      = 0x40
	LongNameEntryChars = 13

	// MaxLongNameLength includes the terminating NUL.
	MaxLongNameLength = 256
)

// lfnRuns are the three ranges of little-endian UTF-16 code units inside of a long name entry,
// 13 units in total.
var lfnRuns = [3]struct{ off, n int }{{1, 5}, {14, 6}, {28, 2}}

// lfnUnits returns the 13 code units a long name entry holds.
func (e *EntryData) lfnUnits() []uint16 {
	units := make([]uint16, 0, LongNameEntryChars)
	for _, r := range lfnRuns {
		// Runs have an even length, decoding cannot fail.
		part, _ := utf16x.DecodeLE(e[r.off : r.off+2*r.n])
		units = append(units, part...)
	}
	return units
}

// putLFNUnits stores exactly 13 code units into a long name entry.
func (e *EntryData) putLFNUnits(units []uint16) {
	for _, r := range lfnRuns {
		_, _ = utf16x.EncodeLE(e[r.off:r.off+2*r.n], units[:r.n])
		units = units[r.n:]
	}
}

// These errors may occur while building or reading long names.
var (
	ErrLongNameTooLong  = errors.New("long name exceeds 255 characters")
	ErrLongNameEmpty    = errors.New("long name is empty")
	ErrLongNameSequence = errors.New("long name entries are out of sequence")
	ErrLongNameChecksum = errors.New("long name entry checksum does not match its alias")
)

// FetchLongNameOffset returns the index of the first character an entry with the given ordinal holds.
func FetchLongNameOffset(ordinal byte) int {
	return (int(ordinal&^LastLongEntry) - 1) * LongNameEntryChars
}

// CopyLFN copies the characters held by the long name entry e to their position in dst.
// Characters beyond the 255th or beyond dst are dropped.
func (e *EntryData) CopyLFN(dst []uint16) {
	pos := FetchLongNameOffset(e[OffsetOrdinal])
	if pos < 0 {
		return
	}
	for i, u := range e.lfnUnits() {
		if p := pos + i; p < MaxLongNameLength-1 && p < len(dst) {
			dst[p] = u
		}
	}
}

// Ordinal returns the sequence number of a long name entry without the LastLongEntry flag.
func (e *EntryData) Ordinal() byte {
	return e[OffsetOrdinal] &^ LastLongEntry
}

// LFNChecksum returns the alias checksum a long name entry refers to.
func (e *EntryData) LFNChecksum() byte {
	return e[OffsetLFNChecksum]
}

// NewLongNameEntries builds the long name entries for longName which belong to alias.
// They are returned in the order they are stored in, in front of the alias entry:
// the entry holding the end of the name, flagged with LastLongEntry, comes first.
func NewLongNameEntries(longName string, alias Alias) ([]EntryData, error) {
	units := utf16x.FromString(longName)
	switch {
	case len(units) == 0:
		return nil, ErrLongNameEmpty
	case len(units) > MaxLongNameLength-1:
		return nil, fmt.Errorf("%w: %d characters", ErrLongNameTooLong, len(units))
	}

	count := (len(units) + LongNameEntryChars - 1) / LongNameEntryChars
	// The name is NUL terminated unless it fills the last entry completely,
	// the rest is padded with 0xFFFF.
	padded := make([]uint16, count*LongNameEntryChars)
	for i := range padded {
		padded[i] = 0xFFFF
	}
	copy(padded, units)
	if len(units) < len(padded) {
		padded[len(units)] = 0
	}

	checksum := alias.Checksum()
	entries := make([]EntryData, count)
	for i := range entries {
		ordinal := count - i
		e := &entries[i]
		e[OffsetOrdinal] = byte(ordinal)
		if i == 0 {
			e[OffsetOrdinal] |= LastLongEntry
		}
		e[OffsetAttribute] = AttrLongName
		e[OffsetLFNChecksum] = checksum
		start := (ordinal - 1) * LongNameEntryChars
		e.putLFNUnits(padded[start : start+LongNameEntryChars])
	}
	return entries, nil
}

// LongName reassembles a long name from its entries, in stored order, and checks that they
// form a complete sequence belonging to alias.
func LongName(entries []EntryData, alias *EntryData) (string, error) {
	if len(entries) == 0 {
		return "", ErrLongNameEmpty
	}

	checksum := alias.Checksum()
	buf := make([]uint16, MaxLongNameLength)
	for i := range entries {
		e := &entries[i]
		want := byte(len(entries) - i)
		if !e.IsLongName() || e.Ordinal() != want || (i == 0) != (e[OffsetOrdinal]&LastLongEntry != 0) {
			return "", ErrLongNameSequence
		}
		if e.LFNChecksum() != checksum {
			return "", ErrLongNameChecksum
		}
		e.CopyLFN(buf)
	}
	return utf16x.ToString(buf), nil
}
