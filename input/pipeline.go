package input

import "zgo.at/tvis/terminfo"

type pipelineState int

const (
	stInit pipelineState = iota
	stEsc
	stTrie
	stMouse
)

// Pipeline is the top-level state machine described in SPEC_FULL.md C11:
// it drives the UTF-8 decoder, the escape-sequence trie, and the mouse
// parser off a single incoming byte stream and emits Events. A lone ESC
// with nothing following within the caller's idle window is resolved by
// calling Timeout; a byte arriving right after ESC that the trie doesn't
// recognize is folded into an Alt-modified key instead.
type Pipeline struct {
	trie   *Trie
	walker *trieWalker
	state  pipelineState
	utf8   UTF8Decoder
	mouse  *mouseParser
	bs     byte // plain Backspace on the wire
	cbs    byte // Ctrl+Backspace on the wire
}

// NewPipeline builds the trie for desc and returns a ready Pipeline. The
// description's kbs capability decides which of {0x08, 0x7f} is plain
// Backspace and which is Ctrl+Backspace; terminals disagree on this, and
// kbs records which one this terminal actually sends.
func NewPipeline(desc *terminfo.Description) *Pipeline {
	t := BuildTrie(desc)
	bs, cbs := byte(0x08), byte(0x7f)
	if kbs := desc.LookupStr(terminfo.CapKeyBackspace); len(kbs) == 1 && kbs[0] == 0x7f {
		bs, cbs = 0x7f, 0x08
	}
	return &Pipeline{trie: t, walker: t.walker(), bs: bs, cbs: cbs}
}

// Feed consumes one input byte and returns zero or more Events. Most
// bytes produce at most one event; bytes in the middle of a multi-byte
// UTF-8 sequence, an in-progress trie walk, or an in-progress mouse
// report produce none.
func (p *Pipeline) Feed(b byte) []Event {
	switch p.state {
	case stInit:
		if b == 0x1b {
			p.state = stEsc
			return nil
		}
		return p.feedPlain(b)

	case stEsc:
		if b == 0x1b {
			return []Event{keyEvent(NamedKeyValue(Esc), 0)}
		}
		return p.feedTrie(b, true)

	case stTrie:
		return p.feedTrie(b, false)

	case stMouse:
		return p.feedMouse(b)
	}
	return nil
}

// Timeout resolves a lone ESC that has no follow-up byte within the
// caller's idle window (SPEC_FULL.md calls for roughly 10ms). It is a
// no-op in any other state.
func (p *Pipeline) Timeout() []Event {
	if p.state != stEsc {
		return nil
	}
	p.state = stInit
	return []Event{keyEvent(NamedKeyValue(Esc), 0)}
}

func (p *Pipeline) feedTrie(b byte, afterBareEsc bool) []Event {
	res, key, mods := p.walker.step(b)
	switch res {
	case TrieFound:
		p.state = stInit
		p.walker.reset()
		return []Event{keyEvent(key, mods)}
	case TrieMaybe:
		p.state = stTrie
		return nil
	case TrieMouseNormal:
		p.state = stMouse
		p.mouse = newMouseParser(MouseX10)
		return nil
	case TrieMouseSGR:
		p.state = stMouse
		p.mouse = newMouseParser(MouseSGR)
		return nil
	case TrieNo:
		p.state = stInit
		p.walker.reset()
		if !afterBareEsc {
			// A dead middle-of-sequence byte: the partial escape sequence
			// is unrecoverable, drop it silently.
			return nil
		}
		evs := p.feedPlain(b)
		for i := range evs {
			if evs[i].Kind == KeyEvent {
				evs[i].Mods |= ModAlt
			}
		}
		return evs
	}
	return nil
}

func (p *Pipeline) feedMouse(b byte) []Event {
	switch p.mouse.step(b) {
	case MouseWait:
		return nil
	case MouseDone:
		ev, ok := p.mouse.event()
		p.state = stInit
		p.mouse = nil
		if !ok {
			return nil
		}
		return []Event{ev}
	case MouseBad:
		p.state = stInit
		p.mouse = nil
		return nil
	}
	return nil
}

func (p *Pipeline) feedPlain(b byte) []Event {
	switch b {
	case 0x09:
		return []Event{keyEvent(NamedKeyValue(Tab), 0)}
	case 0x0d, 0x0a:
		return []Event{keyEvent(NamedKeyValue(Enter), 0)}
	case p.bs:
		return []Event{keyEvent(NamedKeyValue(Backspace), 0)}
	case p.cbs:
		return []Event{keyEvent(NamedKeyValue(Backspace), ModCtrl)}
	case 0x00:
		return []Event{keyEvent(RuneKey([4]byte{' '}, 1), ModCtrl)}
	}
	if b < 0x20 {
		letter := b + 'a' - 1
		return []Event{keyEvent(RuneKey([4]byte{letter}, 1), ModCtrl)}
	}

	outcome, buf, n := p.utf8.Step(b)
	switch outcome {
	case UTF8Wait:
		return nil
	case UTF8Ok:
		return []Event{keyEvent(RuneKey(buf, n), 0)}
	case UTF8Err:
		return []Event{keyEvent(InvalidKey(buf, n), 0)}
	}
	return nil
}

// FeedURXVTReport decodes a complete urxvt-1015 mouse report
// ("<cb>;<col>;<row>M" with no protocol-distinguishing introducer byte,
// so it cannot be autodetected by the trie the way SGR and X10 are).
// Hosts that have negotiated urxvt mode out of band call this directly
// once they've stripped the leading "\x1b[" themselves.
func (p *Pipeline) FeedURXVTReport(report []byte) (Event, bool) {
	mp := newMouseParser(MouseURXVT)
	for _, b := range report {
		if mp.step(b) == MouseDone {
			return mp.event()
		}
	}
	return Event{}, false
}
