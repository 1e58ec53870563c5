// Package input turns a raw terminal byte stream into typed keyboard,
// mouse, resize, and signal events: UTF-8 decoding (C8), an escape-
// sequence trie built from a terminfo description (C9), a three-protocol
// mouse parser (C10), and the pipeline that drives all three (C11).
package input

// Mods is a 3-bit set of keyboard modifiers.
type Mods uint8

const (
	ModShift Mods = 1 << iota
	ModAlt
	ModCtrl
)

func (m Mods) Shift() bool { return m&ModShift != 0 }
func (m Mods) Alt() bool   { return m&ModAlt != 0 }
func (m Mods) Ctrl() bool  { return m&ModCtrl != 0 }

// NamedKey enumerates the keys with no natural Unicode representation.
type NamedKey int

const (
	NamedNone NamedKey = iota
	Esc
	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12
	Backspace
	Tab
	Enter
	Insert
	Delete
	Home
	End
	PageUp
	PageDown
	Up
	Down
	Left
	Right
)

// KeyKind tags which of Key's three representations is meaningful.
type KeyKind int

const (
	// KeyRune: a decoded UTF-8 codepoint, carried in Buf[:Len].
	KeyRune KeyKind = iota
	// KeyNamed: one of the NamedKey constants.
	KeyNamed
	// KeyInvalid: a malformed byte sequence, carried in Buf[:Len] as the
	// raw bytes the decoder consumed.
	KeyInvalid
)

// Key is the tagged key-identity half of a Key input event; Mods travels
// alongside it on the Event, not inside Key itself.
type Key struct {
	Kind  KeyKind
	Named NamedKey
	Buf   [4]byte
	Len   int
}

// RuneKey builds a KeyRune Key from a decoded codepoint's raw UTF-8 bytes.
func RuneKey(buf [4]byte, n int) Key {
	return Key{Kind: KeyRune, Buf: buf, Len: n}
}

// NamedKeyValue builds a KeyNamed Key.
func NamedKeyValue(n NamedKey) Key {
	return Key{Kind: KeyNamed, Named: n}
}

// InvalidKey builds a KeyInvalid Key carrying the malformed raw bytes.
func InvalidKey(buf [4]byte, n int) Key {
	return Key{Kind: KeyInvalid, Buf: buf, Len: n}
}

// Rune decodes the codepoint carried by a KeyRune Key.
func (k Key) Rune() rune {
	if k.Kind != KeyRune {
		return 0
	}
	r, _ := decodeRune(k.Buf[:k.Len])
	return r
}

func decodeRune(b []byte) (rune, int) {
	switch {
	case len(b) == 1:
		return rune(b[0]), 1
	case len(b) == 2:
		return rune(b[0]&0x1F)<<6 | rune(b[1]&0x3F), 2
	case len(b) == 3:
		return rune(b[0]&0x0F)<<12 | rune(b[1]&0x3F)<<6 | rune(b[2]&0x3F), 3
	case len(b) == 4:
		return rune(b[0]&0x07)<<18 | rune(b[1]&0x3F)<<12 | rune(b[2]&0x3F)<<6 | rune(b[3]&0x3F), 4
	}
	return 0, 0
}
