package gofatfs

import (
	"math/bits"
	"strconv"
	"strings"
	"unicode"

	"github.com/aligator/gofatfs/internal/utf16x"
)

const (
	// MaxAliasMainPartLength is the length of the base name of an alias.
	MaxAliasMainPartLength = 8
	// MaxAliasExtensionLength is the length of the extension of an alias.
	MaxAliasExtensionLength = 3
	// AliasEntryLength is the length of the name field of a directory entry.
	AliasEntryLength = MaxAliasMainPartLength + MaxAliasExtensionLength

	// IllegalAliasCharacters may appear in long names but not in aliases.
	IllegalAliasCharacters = "\"*+,/:;<=>?[\\]|"

	// maxNumericTailValue is the largest k whose tail fits into a base.
	maxNumericTailValue = 9999999
)

// Alias is the short 8.3 name of a long file name.
//
// Base and Ext hold code page bytes, exactly as they are stored in a directory entry.
// Lossy reports that the long name could not be represented exactly,
// in which case a long name entry has to accompany the alias.
type Alias struct {
	Base  string
	Ext   string
	Lossy bool
}

// Name returns the alias as "BASE.EXT" or "BASE" in code page bytes.
func (a Alias) Name() string {
	if a.Ext == "" {
		return a.Base
	}
	return a.Base + "." + a.Ext
}

// String returns Name decoded with the active code page.
func (a Alias) String() string {
	return decodeAlias(CodePage(), []byte(a.Name()))
}

// Bytes returns the space padded name field of a directory entry holding a.
func (a Alias) Bytes() [AliasEntryLength]byte {
	var b [AliasEntryLength]byte
	for i := range b {
		b[i] = ' '
	}
	copy(b[:MaxAliasMainPartLength], a.Base)
	copy(b[MaxAliasMainPartLength:], a.Ext)
	return b
}

// Checksum is the checksum long name entries of a carry.
func (a Alias) Checksum() byte {
	return GenerateAliasChecksum(a.Bytes())
}

// WithNumericTail returns a copy of a whose base ends with "~k".
func (a Alias) WithNumericTail(k int) Alias {
	a.Base = WriteNumericTail(a.Base, k)
	return a
}

// ConvertToAlias converts a long file name into its alias.
//
// Leading periods and spaces are dropped, characters are upper-cased and encoded with
// the active code page and characters which are not allowed in an alias are replaced by '_'.
// The base ends at the first period and is cut after 8 characters,
// the extension starts after the last period and is cut after 3.
// Every such modification, and a case change, sets Lossy.
// ConvertToAlias never fails. The result may be empty if the name consists of periods only.
func ConvertToAlias(longName string) Alias {
	if i := strings.IndexByte(longName, 0); i >= 0 {
		longName = longName[:i]
	}
	c := aliasConverter{cm: CodePage()}
	return c.convert([]rune(longName))
}

// ConvertToAliasUTF16 is ConvertToAlias for a UTF-16 long name, optionally NUL terminated.
func ConvertToAliasUTF16(longName []uint16) Alias {
	return ConvertToAlias(utf16x.ToString(longName))
}

type charmapEncoder interface {
	EncodeRune(r rune) (b byte, ok bool)
}

type aliasConverter struct {
	cm    charmapEncoder
	lossy bool
}

func (c *aliasConverter) convert(name []rune) Alias {
	n := len(name)

	offset := 0
	for offset < n && name[offset] == '.' {
		offset++
	}
	c.lossy = offset != 0

	base := make([]byte, 0, MaxAliasMainPartLength)
	i := offset
	for ; len(base) < MaxAliasMainPartLength && i < n && name[i] != '.'; i++ {
		base = c.put(base, name[i])
	}
	if i < n && name[i] != '.' {
		// More than 8 characters in the base.
		c.lossy = true
	}

	var ext []byte
	extPos := lastIndexRune(name, '.')
	if extPos >= offset {
		if lastIndexRune(name[:extPos], '.') >= 0 {
			// More than one period.
			c.lossy = true
		}

		ext = make([]byte, 0, MaxAliasExtensionLength)
		i = extPos + 1
		for ; len(ext) < MaxAliasExtensionLength && i < n; i++ {
			ext = c.put(ext, name[i])
		}
		if i != n {
			// More than 3 characters in the extension.
			c.lossy = true
		}
	}

	return Alias{Base: string(base), Ext: string(ext), Lossy: c.lossy}
}

// put appends the alias form of r to dst.
func (c *aliasConverter) put(dst []byte, r rune) []byte {
	upper, ok := c.cm.EncodeRune(unicode.ToUpper(r))
	if orig, origOk := c.cm.EncodeRune(r); orig != upper || origOk != ok {
		c.lossy = true
	}
	if ok && upper == ' ' {
		c.lossy = true
		return dst
	}
	if !ok || strings.IndexByte(IllegalAliasCharacters, upper) >= 0 {
		// See Microsoft FAT specification, section 7.4.
		upper = '_'
		c.lossy = true
	}
	return append(dst, upper)
}

func lastIndexRune(s []rune, r rune) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == r {
			return i
		}
	}
	return -1
}

// WriteNumericTail replaces the end of an alias base with '~' and the decimal digits of k,
// so that the tail ends at the 8th character: "FILENAME" and 1 become "FILENA~1".
// A base which is too short for that gets the tail appended: "AB" and 1 become "AB~1".
// For k < 1 only the '~' is written, k above 9999999 is clamped to 9999999 so the base
// never grows beyond 8 characters.
//
// Choosing k, by probing which aliases exist already, is up to the caller. See AliasTable.
func WriteNumericTail(base string, k int) string {
	if k > maxNumericTailValue {
		k = maxNumericTailValue
	}
	tail := "~"
	if k > 0 {
		tail += strconv.Itoa(k)
	}

	keep := MaxAliasMainPartLength - len(tail)
	if keep > len(base) {
		keep = len(base)
	}
	if keep < 0 {
		keep = 0
	}
	return base[:keep] + tail
}

// GenerateAliasChecksum computes the checksum of the 11 byte name field of a directory entry,
// which every long name entry belonging to it repeats:
// the sum is rotated right by one bit before each byte is added.
func GenerateAliasChecksum(name [AliasEntryLength]byte) byte {
	var sum byte
	for _, b := range name {
		sum = bits.RotateLeft8(sum, -1) + b
	}
	return sum
}
