package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"zgo.at/tvis/terminfo"
)

func testPipeline(t *testing.T) *Pipeline {
	t.Helper()
	desc := terminfo.Current()
	return NewPipeline(desc)
}

func feedAll(p *Pipeline, b []byte) []Event {
	var evs []Event
	for _, c := range b {
		evs = append(evs, p.Feed(c)...)
	}
	return evs
}

func TestPipelineBareEscViaTimeout(t *testing.T) {
	p := testPipeline(t)
	evs := feedAll(p, []byte{0x1b})
	assert.Empty(t, evs)
	evs = p.Timeout()
	assert.Equal(t, []Event{keyEvent(NamedKeyValue(Esc), 0)}, evs)
}

func TestPipelineDoubleEscEmitsFirstImmediately(t *testing.T) {
	p := testPipeline(t)
	feedAll(p, []byte{0x1b})
	evs := feedAll(p, []byte{0x1b})
	assert.Equal(t, []Event{keyEvent(NamedKeyValue(Esc), 0)}, evs)
}

func TestPipelineAltLetterFromEscPrefix(t *testing.T) {
	p := testPipeline(t)
	feedAll(p, []byte{0x1b})
	evs := feedAll(p, []byte("x"))
	assert.Len(t, evs, 1)
	assert.Equal(t, KeyEvent, evs[0].Kind)
	assert.True(t, evs[0].Mods.Alt())
	assert.Equal(t, 'x', evs[0].Key.Rune())
}

func TestPipelinePlainKeyNoEsc(t *testing.T) {
	p := testPipeline(t)
	evs := feedAll(p, []byte("a"))
	assert.Len(t, evs, 1)
	assert.Equal(t, 'a', evs[0].Key.Rune())
	assert.False(t, evs[0].Mods.Alt())
}

func TestPipelineCtrlLetter(t *testing.T) {
	p := testPipeline(t)
	evs := feedAll(p, []byte{0x01})
	assert.Len(t, evs, 1)
	assert.True(t, evs[0].Mods.Ctrl())
	assert.Equal(t, 'a', evs[0].Key.Rune())
}

func TestPipelineBackspaceFollowsKbsCapability(t *testing.T) {
	desc := terminfo.NewBuilder("ansi").SetStr(terminfo.CapKeyBackspace, []byte{0x7f}).Build()
	p := NewPipeline(desc)

	evs := feedAll(p, []byte{0x7f})
	assert.Len(t, evs, 1)
	assert.Equal(t, NamedKeyValue(Backspace), evs[0].Key)
	assert.False(t, evs[0].Mods.Ctrl())

	evs = feedAll(p, []byte{0x08})
	assert.Len(t, evs, 1)
	assert.Equal(t, NamedKeyValue(Backspace), evs[0].Key)
	assert.True(t, evs[0].Mods.Ctrl())
}

func TestPipelineBackspaceDefaultsWhenKbsAbsent(t *testing.T) {
	desc := terminfo.NewBuilder("ansi").Build()
	p := NewPipeline(desc)

	evs := feedAll(p, []byte{0x08})
	assert.Len(t, evs, 1)
	assert.Equal(t, NamedKeyValue(Backspace), evs[0].Key)
	assert.False(t, evs[0].Mods.Ctrl())

	evs = feedAll(p, []byte{0x7f})
	assert.Len(t, evs, 1)
	assert.Equal(t, NamedKeyValue(Backspace), evs[0].Key)
	assert.True(t, evs[0].Mods.Ctrl())
}

func TestPipelineEscThenRecognizedSequence(t *testing.T) {
	p := testPipeline(t)
	// xterm's modifier-digit form for shift+Up: ESC [ 1 ; 2 A
	evs := feedAll(p, []byte{0x1b, '[', '1', ';', '2', 'A'})
	assert.Len(t, evs, 1)
	assert.Equal(t, KeyEvent, evs[0].Kind)
	assert.Equal(t, Up, evs[0].Key.Named)
	assert.True(t, evs[0].Mods.Shift())
}

func TestPipelineEscThenUnrecognizedSequenceDropped(t *testing.T) {
	p := testPipeline(t)
	// ESC [ z is not a sequence the trie knows: dropped, not surfaced.
	evs := feedAll(p, []byte{0x1b, '[', 'z'})
	assert.Empty(t, evs)
}

func TestPipelineX10MouseReport(t *testing.T) {
	p := testPipeline(t)
	evs := feedAll(p, append([]byte{0x1b, '['}, 'M', 32, 37, 42))
	assert.Len(t, evs, 1)
	assert.Equal(t, MouseEvent, evs[0].Kind)
	assert.Equal(t, 4, evs[0].Col)
	assert.Equal(t, 9, evs[0].Row)
}

func TestPipelineSGRMouseReport(t *testing.T) {
	p := testPipeline(t)
	seq := append([]byte{0x1b, '[', '<'}, []byte("0;3;4M")...)
	evs := feedAll(p, seq)
	assert.Len(t, evs, 1)
	assert.Equal(t, MouseEvent, evs[0].Kind)
	assert.Equal(t, Press, evs[0].Motion)
	assert.Equal(t, 2, evs[0].Col)
	assert.Equal(t, 3, evs[0].Row)
}

func TestPipelineURXVTReportViaExplicitCall(t *testing.T) {
	p := testPipeline(t)
	ev, ok := p.FeedURXVTReport([]byte("0;3;4M"))
	assert.True(t, ok)
	assert.Equal(t, 2, ev.Col)
}

func TestPipelineSignalTranslation(t *testing.T) {
	p := testPipeline(t)
	assert.Equal(t, Event{Kind: Repaint}, p.Signal(SigResize))
	assert.Equal(t, Event{Kind: Interrupt}, p.Signal(SigInterrupt))
	assert.Equal(t, Event{Kind: Break}, p.Signal(SigTerminate))
	assert.Equal(t, Event{Kind: Break}, p.Signal(SigQuit))
}
