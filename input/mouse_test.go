package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func feedMouse(p *mouseParser, b []byte) mouseStepResult {
	var r mouseStepResult
	for _, c := range b {
		r = p.step(c)
	}
	return r
}

func TestX10LeftPressDecoding(t *testing.T) {
	p := newMouseParser(MouseX10)
	// button byte 32+0=32 (left, no mods), col 4 -> 33+4=37, row 9 -> 33+9=42
	r := feedMouse(p, []byte{32, 37, 42})
	assert.Equal(t, MouseDone, r)
	ev, ok := p.event()
	assert.True(t, ok)
	assert.Equal(t, MouseEvent, ev.Kind)
	assert.Equal(t, Press, ev.Motion)
	assert.Equal(t, ButtonLeft, ev.Button)
	assert.Equal(t, 4, ev.Col)
	assert.Equal(t, 9, ev.Row)
}

func TestSGRPressAndRelease(t *testing.T) {
	p := newMouseParser(MouseSGR)
	r := feedMouse(p, []byte("0;12;7M"))
	assert.Equal(t, MouseDone, r)
	ev, ok := p.event()
	assert.True(t, ok)
	assert.Equal(t, Press, ev.Motion)
	assert.Equal(t, ButtonLeft, ev.Button)
	assert.Equal(t, 11, ev.Col)
	assert.Equal(t, 6, ev.Row)

	p2 := newMouseParser(MouseSGR)
	feedMouse(p2, []byte("0;12;7m"))
	ev2, ok := p2.event()
	assert.True(t, ok)
	assert.Equal(t, Release, ev2.Motion)
}

func TestSGRWheelAndMods(t *testing.T) {
	p := newMouseParser(MouseSGR)
	// cb=96 (wheel up, bits 5+6 set) | 4 (shift) = 100
	feedMouse(p, []byte("100;1;1M"))
	ev, ok := p.event()
	assert.True(t, ok)
	assert.Equal(t, MouseWheelEvent, ev.Kind)
	assert.Equal(t, WheelUp, ev.Wheel)
	assert.True(t, ev.Mods.Shift())
}

func TestURXVTReleaseByLowBits(t *testing.T) {
	p := newMouseParser(MouseURXVT)
	feedMouse(p, []byte("3;4;4M"))
	ev, ok := p.event()
	assert.True(t, ok)
	assert.Equal(t, MouseEvent, ev.Kind)
	assert.Equal(t, Release, ev.Motion)
}

func TestMalformedSGRReportRejected(t *testing.T) {
	p := newMouseParser(MouseSGR)
	feedMouse(p, []byte("0;12M")) // missing row field
	_, ok := p.event()
	assert.False(t, ok)
}
