package input

import (
	"fmt"

	"zgo.at/tvis/terminfo"
)

// Sentinel NamedKey values used as trie leaf payloads to signal a handoff
// to the mouse parser rather than a real key. They are never surfaced on
// an emitted Event.
const (
	mouseMagicNormal NamedKey = -1
	mouseMagicSGR    NamedKey = -2
)

type trieNode struct {
	b          byte
	sibling    int
	child      int
	hasPayload bool
	key        Key
	mods       Mods
}

// Trie is the flat, index-linked escape-sequence trie described in
// SPEC_FULL.md C9: siblings form a linked list via the sibling field,
// children descend via child, and -1 is the null terminator for both.
// It is built once per terminal description.
type Trie struct {
	nodes []trieNode
	root  int
}

func newTrie() *Trie {
	return &Trie{root: -1}
}

func (t *Trie) findSibling(head int, b byte) int {
	for head != -1 {
		if t.nodes[head].b == b {
			return head
		}
		head = t.nodes[head].sibling
	}
	return -1
}

func (t *Trie) addKeyBytes(seq []byte, key Key, mods Mods) {
	if len(seq) == 0 {
		return
	}
	parent := -1
	for _, b := range seq {
		var head int
		if parent == -1 {
			head = t.root
		} else {
			head = t.nodes[parent].child
		}
		idx := t.findSibling(head, b)
		if idx == -1 {
			idx = len(t.nodes)
			t.nodes = append(t.nodes, trieNode{b: b, sibling: head, child: -1})
			if parent == -1 {
				t.root = idx
			} else {
				t.nodes[parent].child = idx
			}
		}
		parent = idx
	}
	t.nodes[parent].hasPayload = true
	t.nodes[parent].key = key
	t.nodes[parent].mods = mods
}

// TrieResult is the outcome of feeding one byte to a trieWalker.
type TrieResult int

const (
	TrieNo TrieResult = iota
	TrieMaybe
	TrieFound
	TrieMouseNormal
	TrieMouseSGR
)

// trieWalker holds the in-progress match position within a Trie.
type trieWalker struct {
	t    *Trie
	head int
}

func (t *Trie) walker() *trieWalker {
	return &trieWalker{t: t, head: t.root}
}

func (w *trieWalker) reset() { w.head = w.t.root }

func (w *trieWalker) step(b byte) (TrieResult, Key, Mods) {
	idx := w.t.findSibling(w.head, b)
	if idx == -1 {
		return TrieNo, Key{}, 0
	}
	n := w.t.nodes[idx]
	w.head = n.child
	if n.child != -1 {
		return TrieMaybe, Key{}, 0
	}
	switch n.key.Named {
	case mouseMagicNormal:
		return TrieMouseNormal, Key{}, 0
	case mouseMagicSGR:
		return TrieMouseSGR, Key{}, 0
	}
	return TrieFound, n.key, n.mods
}

type keyCapEntry struct {
	cap   string
	named NamedKey
}

var predefinedKeyCaps = []keyCapEntry{
	{"kcuu1", Up}, {"kcud1", Down}, {"kcub1", Left}, {"kcuf1", Right},
	{"khome", Home}, {"kend", End}, {"kpp", PageUp}, {"knp", PageDown},
	{"kich1", Insert}, {"kdch1", Delete}, {"kbs", Backspace},
	{"kf1", F1}, {"kf2", F2}, {"kf3", F3}, {"kf4", F4}, {"kf5", F5},
	{"kf6", F6}, {"kf7", F7}, {"kf8", F8}, {"kf9", F9}, {"kf10", F10},
	{"kf11", F11}, {"kf12", F12},
}

// xterm's modifier-digit CSI-letter variants for the arrow/home/end keys
// and its tilde-number variants for page/insert/delete. Digit N encodes
// modifiers as N-1 (bit 0 shift, bit 1 alt, bit 2 ctrl); valid N is 2-8.
var xtermCSILetter = map[NamedKey]byte{
	Up: 'A', Down: 'B', Right: 'C', Left: 'D', Home: 'H', End: 'F',
}
var xtermTildeNum = map[NamedKey]int{
	Home: 1, Insert: 2, Delete: 3, End: 4, PageUp: 5, PageDown: 6,
}

// BuildTrie constructs the escape-sequence trie for a terminal
// description: one entry per predefined key capability present in desc
// (with its leading ESC byte stripped, since the pipeline matches ESC
// outside the trie), xterm's modifier-digit CSI variants for keys that
// commonly carry them, and the two mouse-protocol handoff markers.
func BuildTrie(desc *terminfo.Description) *Trie {
	t := newTrie()
	for _, e := range predefinedKeyCaps {
		id, ok := terminfo.StringID(e.cap)
		if !ok {
			continue
		}
		seq := desc.LookupStr(id)
		if len(seq) == 0 {
			continue
		}
		if seq[0] == 0x1b {
			seq = seq[1:]
		}
		t.addKeyBytes(seq, NamedKeyValue(e.named), 0)
	}

	for named, letter := range xtermCSILetter {
		for n := 2; n <= 8; n++ {
			seq := []byte(fmt.Sprintf("[1;%d%c", n, letter))
			t.addKeyBytes(seq, NamedKeyValue(named), xtermDigitMods(n))
		}
	}
	for named, num := range xtermTildeNum {
		for n := 2; n <= 8; n++ {
			seq := []byte(fmt.Sprintf("[%d;%d~", num, n))
			t.addKeyBytes(seq, NamedKeyValue(named), xtermDigitMods(n))
		}
	}

	t.addKeyBytes([]byte("[M"), NamedKeyValue(mouseMagicNormal), 0)
	t.addKeyBytes([]byte("[<"), NamedKeyValue(mouseMagicSGR), 0)
	return t
}

func xtermDigitMods(digit int) Mods {
	bits := digit - 1
	var m Mods
	if bits&1 != 0 {
		m |= ModShift
	}
	if bits&2 != 0 {
		m |= ModAlt
	}
	if bits&4 != 0 {
		m |= ModCtrl
	}
	return m
}
