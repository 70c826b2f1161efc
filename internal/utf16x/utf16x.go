// Package utf16x converts between Go strings and the UTF-16 forms used by
// long file names: plain code units ([]uint16, NUL terminated or not) and
// little-endian byte slots inside directory entries.
package utf16x

import (
	"encoding/binary"
	"errors"
	"unicode/utf16"
)

var (
	errOddLength = errors.New("UTF-16 byte length must be a multiple of 2")
	errShortDst  = errors.New("short destination buffer")
)

// Len returns the number of code units in s before the first NUL.
func Len(s []uint16) int {
	for i, c := range s {
		if c == 0 {
			return i
		}
	}
	return len(s)
}

// ToString decodes s up to the first NUL. Unpaired surrogates become U+FFFD.
func ToString(s []uint16) string {
	return string(utf16.Decode(s[:Len(s)]))
}

// FromString encodes s as UTF-16 code units without a terminator.
func FromString(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// FromStringTerminated encodes s and appends a NUL terminator.
func FromStringTerminated(s string) []uint16 {
	return append(FromString(s), 0)
}

// CopyTerminated writes s plus a NUL terminator into dst and returns the number of
// code units written without the terminator.
func CopyTerminated(dst []uint16, s []uint16) (int, error) {
	n := Len(s)
	if len(dst) < n+1 {
		return 0, errShortDst
	}
	copy(dst, s[:n])
	dst[n] = 0
	return n, nil
}

// DecodeLE reads little-endian code units from src.
func DecodeLE(src []byte) ([]uint16, error) {
	if len(src)%2 != 0 {
		return nil, errOddLength
	}
	units := make([]uint16, len(src)/2)
	for i := range units {
		units[i] = binary.LittleEndian.Uint16(src[2*i:])
	}
	return units, nil
}

// EncodeLE writes units little-endian into dst and returns the number of bytes written.
func EncodeLE(dst []byte, units []uint16) (int, error) {
	if len(dst) < 2*len(units) {
		return 0, errShortDst
	}
	for i, u := range units {
		binary.LittleEndian.PutUint16(dst[2*i:], u)
	}
	return 2 * len(units), nil
}
