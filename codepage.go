package gofatfs

import (
	"fmt"
	"strings"
	"sync/atomic"

	"golang.org/x/text/encoding/charmap"
)

// DefaultCodePage is the OEM code page aliases are encoded with unless SetCodePage selects another one.
var DefaultCodePage = charmap.CodePage437

var activeCodePage atomic.Pointer[charmap.Charmap]

var codePages = map[string]*charmap.Charmap{
	"437":  charmap.CodePage437,
	"850":  charmap.CodePage850,
	"852":  charmap.CodePage852,
	"855":  charmap.CodePage855,
	"858":  charmap.CodePage858,
	"860":  charmap.CodePage860,
	"862":  charmap.CodePage862,
	"863":  charmap.CodePage863,
	"865":  charmap.CodePage865,
	"866":  charmap.CodePage866,
	"1250": charmap.Windows1250,
	"1251": charmap.Windows1251,
	"1252": charmap.Windows1252,
}

// SetCodePage selects the code page used to convert long names into aliases and back.
// nil restores DefaultCodePage.
func SetCodePage(cm *charmap.Charmap) {
	activeCodePage.Store(cm)
}

// CodePage returns the active code page.
func CodePage() *charmap.Charmap {
	if cm := activeCodePage.Load(); cm != nil {
		return cm
	}
	return DefaultCodePage
}

// LookupCodePage resolves a code page by its number, e.g. "437" or "cp850".
func LookupCodePage(name string) (*charmap.Charmap, error) {
	key := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), "cp")
	if cm, ok := codePages[key]; ok {
		return cm, nil
	}
	return nil, fmt.Errorf("unsupported code page %q", name)
}

// decodeAlias turns code page bytes into a string.
func decodeAlias(cm *charmap.Charmap, raw []byte) string {
	var b strings.Builder
	for _, c := range raw {
		b.WriteRune(cm.DecodeByte(c))
	}
	return b.String()
}
