package tvis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"zgo.at/tvis/terminfo"
)

// ansiDesc builds a literal description with the handful of string
// capabilities color.go and cursor.go consult, using plain ANSI/ECMA-48
// sequences so expected output stays fixed regardless of the host
// terminal Current() would otherwise pick up.
func ansiDesc(t *testing.T) *terminfo.Description {
	t.Helper()
	set := func(b *terminfo.Builder, cap, val string) *terminfo.Builder {
		id, ok := terminfo.StringID(cap)
		require.True(t, ok, cap)
		return b.SetStr(id, []byte(val))
	}
	b := terminfo.NewBuilder("ansi-test")
	b = set(b, "sgr0", "\x1b[0m")
	b = set(b, "bold", "\x1b[1m")
	b = set(b, "dim", "\x1b[2m")
	b = set(b, "sitm", "\x1b[3m")
	b = set(b, "smul", "\x1b[4m")
	b = set(b, "rev", "\x1b[7m")
	b = set(b, "invis", "\x1b[8m")
	b = set(b, "setaf", "\x1b[3%p1%dm")
	b = set(b, "setab", "\x1b[4%p1%dm")
	b = set(b, "el", "\x1b[K")
	b = set(b, "clear", "\x1b[H\x1b[2J")
	b = set(b, "cnorm", "\x1b[?25h")
	b = set(b, "civis", "\x1b[?25l")
	b = set(b, "cup", "\x1b[%i%p1%d;%p2%dH")
	b = set(b, "cuu", "\x1b[%p1%dA")
	b = set(b, "cuu1", "\x1b[A")
	b = set(b, "cud", "\x1b[%p1%dB")
	b = set(b, "cud1", "\x1b[B")
	b = set(b, "cub", "\x1b[%p1%dD")
	b = set(b, "cub1", "\x1b[D")
	b = set(b, "cuf", "\x1b[%p1%dC")
	b = set(b, "cuf1", "\x1b[C")
	return b.Build()
}

func withAnsiDesc(t *testing.T) {
	t.Helper()
	old := termDesc
	termDesc = ansiDesc(t)
	t.Cleanup(func() { termDesc = old })
}

func TestColorAttributes(t *testing.T) {
	withAnsiDesc(t)
	oldWant := WantColor
	WantColor = true
	t.Cleanup(func() { WantColor = oldWant })

	assert.Equal(t, "\x1b[1m", Bold.String())
	assert.Equal(t, "\x1b[1m\x1b[4m", (Bold | Underline).String())
	assert.Equal(t, "\x1b[0m", Reset.String())
}

func TestColorDisabledReturnsEmpty(t *testing.T) {
	withAnsiDesc(t)
	oldWant := WantColor
	WantColor = false
	t.Cleanup(func() { WantColor = oldWant })

	assert.Equal(t, "", Bold.String())
	assert.Equal(t, "Hello", Colorize("Hello", Bold))
}

func TestColor16Foreground(t *testing.T) {
	withAnsiDesc(t)
	oldWant := WantColor
	WantColor = true
	t.Cleanup(func() { WantColor = oldWant })

	assert.Equal(t, "\x1b[31m", Red.String())
}

func TestColor256AndBackground(t *testing.T) {
	withAnsiDesc(t)
	oldWant := WantColor
	WantColor = true
	t.Cleanup(func() { WantColor = oldWant })

	c := Color256(56) | Color256(99).Bg()
	assert.Equal(t, "\x1b[356m\x1b[499m", c.String())
}

func TestColorHexTrueColor(t *testing.T) {
	withAnsiDesc(t)
	oldWant := WantColor
	WantColor = true
	t.Cleanup(func() { WantColor = oldWant })

	c := ColorHex("#678") | ColorHex("#abc").Bg()
	assert.Equal(t, "\x1b[38;2;102;119;136m\x1b[48;2;170;187;204m", c.String())
}

func TestColorHexParseError(t *testing.T) {
	WantColor = true
	c := ColorHex("nope")
	assert.NotEqual(t, Color(0), c&ColorError)
	assert.Equal(t, "", c.String())
	assert.Equal(t, "(tvis.Color ERROR invalid hex color)Hello", Colorize("Hello", c))
}

func TestDeColorStripsSGR(t *testing.T) {
	assert.Equal(t, "Hello", DeColor("\x1b[1;31mHello\x1b[0m"))
}

func TestColorBrightenSixteen(t *testing.T) {
	assert.Equal(t, Black.Brighten(1)&maskFg>>ColorOffsetFg, Color(8))
}
