package gofatfs

import (
	"errors"

	"github.com/armon/go-radix"
)

// MaxNumericTail is the highest k tried by AliasTable.Unique.
const MaxNumericTail = 999999

// ErrAliasExhausted is returned if every numeric tail of an alias is in use.
var ErrAliasExhausted = errors.New("no free numeric tail for the alias")

// AliasTable keeps track of the aliases used inside of one directory.
// Keys are the 11 byte name fields, so "FILENA~1.TXT" and "FILENA~1" are different aliases.
// An AliasTable is not safe for concurrent use.
type AliasTable struct {
	tree *radix.Tree
}

// NewAliasTable returns an empty AliasTable.
func NewAliasTable() *AliasTable {
	return &AliasTable{tree: radix.New()}
}

func aliasKey(name [AliasEntryLength]byte) string {
	return string(name[:])
}

// Len returns the number of aliases in use.
func (t *AliasTable) Len() int {
	return t.tree.Len()
}

// Contains reports whether a is in use.
func (t *AliasTable) Contains(a Alias) bool {
	_, ok := t.tree.Get(aliasKey(a.Bytes()))
	return ok
}

// Add marks a as used. It returns false if it was used already.
func (t *AliasTable) Add(a Alias) bool {
	_, updated := t.tree.Insert(aliasKey(a.Bytes()), a)
	return !updated
}

// AddEntry marks the alias stored in e as used. Free slots, dot entries and long name
// entries are ignored.
func (t *AliasTable) AddEntry(e *EntryData) bool {
	if e.IsFree() || e.IsEnd() || e.IsLongName() || e[OffsetName] == '.' {
		return false
	}
	return t.Add(e.Alias())
}

// Unique returns an unused variant of a and marks it as used.
// A lossless alias is taken as is if it is free. Otherwise numeric tails 1 to MaxNumericTail
// are tried in order.
func (t *AliasTable) Unique(a Alias) (Alias, error) {
	if !a.Lossy && t.Add(a) {
		return a, nil
	}
	for k := 1; k <= MaxNumericTail; k++ {
		candidate := a.WithNumericTail(k)
		if t.Add(candidate) {
			return candidate, nil
		}
	}
	return Alias{}, ErrAliasExhausted
}
