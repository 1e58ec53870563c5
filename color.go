package tvis

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"zgo.at/tvis/terminfo"
	"zgo.at/tvis/tparm"
)

/*
Color packs foreground, background, and attribute state into a single
uint64 so it can be passed around and combined with | like a flag set:

	                                     fg true, 256, 16 color mode ─┬──┐
	                                  bg true, 256, 16 color mode ─┬─┐│  │
	                                                               │ ││  │┌── error parsing hex color
	   ┌───── bg color ────────────┐ ┌───── fg color ────────────┐ │ ││  ││┌─ term attr
	   v                           v v                           v v vv  vvv         v
	0b 0000_0000 0000_0000 0000_0000 0000_0000 0000_0000 0000_0000 0000_0000 0000_0000

Unlike a fixed ANSI encoding, Color.String() resolves the actual escape
sequence to send by asking the active terminfo description for the
capability that draws each attribute, so output degrades gracefully on
terminals that lack color or a given attribute entirely.
*/
type Color uint64

const (
	ColorOffsetFg = 16
	ColorOffsetBg = 40
)

const (
	maskFg Color = (256*256*256 - 1) << ColorOffsetFg
	maskBg Color = maskFg << (ColorOffsetBg - ColorOffsetFg)
)

const (
	Reset Color = 0
	Bold  Color = 1 << (iota - 1)
	Dim
	Italic
	Underline
	Undercurl
	Overline
	Reverse
	Concealed
	StrikeOut
)

// ColorError signals ColorHex failed to parse its argument.
const ColorError Color = StrikeOut << 1

const (
	ColorMode16Fg Color = ColorError << (iota + 1)
	ColorMode256Fg
	ColorModeTrueFg

	ColorMode16Bg
	ColorMode256Bg
	ColorModeTrueBg
)

const (
	Black Color = (iota << ColorOffsetFg) | ColorMode16Fg
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

// Bg returns the background variant of a foreground color; a no-op if c
// is already a background color.
func (c Color) Bg() Color {
	if c&ColorMode16Fg != 0 {
		c ^= ColorMode16Fg | ColorMode16Bg
	} else if c&ColorMode256Fg != 0 {
		c ^= ColorMode256Fg | ColorMode256Bg
	} else if c&ColorModeTrueFg != 0 {
		c ^= ColorModeTrueFg | ColorModeTrueBg
	}
	return (c &^ maskFg) | (c & maskFg << 24)
}

// Brighten or darken (n negative) a color; see the teacher's original
// chart-walking logic for the 256-color case, which moves to the same
// column position in the next cube.
func (c Color) Brighten(n int) Color {
	if n == 0 {
		return c
	}
	mask, off := maskFg, ColorOffsetFg
	if c&ColorMode16Bg != 0 || c&ColorMode256Bg != 0 || c&ColorModeTrueBg != 0 {
		mask, off = maskBg, ColorOffsetBg
	}
	keep := c &^ mask
	cc := c & mask >> off

	switch {
	case c&ColorMode16Fg != 0 || c&ColorMode16Bg != 0:
		if n > 0 {
			cc |= 8
		} else {
			cc &^= 8
		}
	case c&ColorMode256Fg != 0 || c&ColorMode256Bg != 0:
		switch {
		case cc <= 15:
			if n > 0 {
				cc |= 8
			} else {
				cc &^= 8
			}
		case cc >= 232:
			cc = clamp(int(cc)+n, 232, 255)
		default:
			col := int(15+cc) % 6
			if col == 0 {
				col = 6
			}
			row := int(math.Ceil(float64(cc-15) / 36))
			if row == 0 {
				row = 1
			}
			max := 15 + (row*30 + ((row - 1) * 6)) + col
			min := max - 30
			cc = clamp(int(cc)+n*6, min, max)
		}
	case c&ColorModeTrueFg != 0 || c&ColorModeTrueBg != 0:
		or, og, ob := int(cc%256), int(cc>>8%256), int(cc>>16%256)
		r, g, b := or+n, og+n, ob+n
		switch {
		case r > 255:
			s := 255 - or
			r, g, b = 255, clampC(og+s, 0, 255), clampC(ob+s, 0, 255)
		case g > 255:
			s := 255 - og
			r, g, b = clampC(or+s, 0, 255), 255, clampC(ob+s, 0, 255)
		case b > 255:
			s := 255 - ob
			r, g, b = clampC(or+s, 0, 255), clampC(og+s, 0, 255), 255
		case r < 0:
			s := -r
			r, g, b = 0, clampC(og-s, 0, 255), clampC(ob-s, 0, 255)
		case g < 0:
			s := -g
			r, g, b = clampC(or-s, 0, 255), 0, clampC(ob-s, 0, 255)
		case b < 0:
			s := -b
			r, g, b = clampC(or-s, 0, 255), clampC(og-s, 0, 255), 0
		}
		cc = Color(r) + Color(g)<<8 + Color(b)<<16
	}
	return keep | (cc << off)
}

func clampC(c, min, max int) int { return int(clamp(c, min, max)) }
func clamp(c, min, max int) Color {
	if c < min {
		return Color(min)
	}
	if c > max {
		return Color(max)
	}
	return Color(c)
}

// termDesc is the active terminal description Color.String() resolves
// capabilities against.
var termDesc = terminfo.Current()

func capBytes(short string) []byte {
	id, ok := terminfo.StringID(short)
	if !ok {
		return nil
	}
	return termDesc.LookupStr(id)
}

func paramCap(short string, p int) []byte {
	raw := capBytes(short)
	if len(raw) == 0 {
		return nil
	}
	var buf bytes.Buffer
	if err := tparm.Tparm(&buf, raw, []tparm.Param{tparm.IntParam(int32(p))}, &tparm.Vars{}); err != nil {
		return nil
	}
	return buf.Bytes()
}

// String resolves c to the escape sequence(s) that apply it on the
// active terminal, or "" if WantColor is false or c carries the error
// flag. Overline and strikeout have no universally available terminfo
// capability and are dropped silently rather than guessing at an
// extension; undercurl degrades to plain underline.
func (c Color) String() string {
	if !WantColor || c&ColorError != 0 {
		return ""
	}
	if c == Reset {
		return string(capBytes("sgr0"))
	}

	var b strings.Builder
	if c&Bold != 0 {
		b.Write(capBytes("bold"))
	}
	if c&Dim != 0 {
		b.Write(capBytes("dim"))
	}
	if c&Italic != 0 {
		b.Write(capBytes("sitm"))
	}
	if c&Underline != 0 || c&Undercurl != 0 {
		b.Write(capBytes("smul"))
	}
	if c&Reverse != 0 {
		b.Write(capBytes("rev"))
	}
	if c&Concealed != 0 {
		b.Write(capBytes("invis"))
	}

	switch {
	case c&ColorMode16Fg != 0, c&ColorMode256Fg != 0:
		b.Write(paramCap("setaf", int(c&maskFg>>ColorOffsetFg)))
	case c&ColorModeTrueFg != 0:
		b.WriteString(trueColorSeq(c&maskFg>>ColorOffsetFg, "38"))
	}
	switch {
	case c&ColorMode16Bg != 0, c&ColorMode256Bg != 0:
		b.Write(paramCap("setab", int(c&maskBg>>ColorOffsetBg)))
	case c&ColorModeTrueBg != 0:
		b.WriteString(trueColorSeq(c&maskBg>>ColorOffsetBg, "48"))
	}
	return b.String()
}

// trueColorSeq emits a direct-color SGR sequence. setaf/setab's %p1 slot
// only ever carries an 8-bit index in terminfo, so 24-bit color has no
// capability to route through; this follows the de facto convention
// (38/48;2;r;g;b) that true-color terminals honor unconditionally,
// regardless of whether they declare the "RGB"/Tc extended capability.
func trueColorSeq(cc Color, kind string) string {
	r, g, b := cc%256, (cc>>8)%256, (cc>>16)%256
	return fmt.Sprintf("\x1b[%s;2;%d;%d;%dm", kind, r, g, b)
}

// Color256 creates a 256-mode color; 0-15 match the 16-color names, 16-231
// are a 6x6x6 cube, and 232-255 are a grayscale ramp.
func Color256(n uint8) Color { return Color(uint64(n)<<ColorOffsetFg) | ColorMode256Fg }

// ColorHex parses a "#rgb" or "#rrggbb" true color; the leading # is
// optional. Parse failures set the ColorError flag.
func ColorHex(h string) Color {
	h = strings.TrimPrefix(h, "#")
	if len(h) == 3 {
		h = string(h[0]) + string(h[0]) + string(h[1]) + string(h[1]) + string(h[2]) + string(h[2])
	}
	var rgb []byte
	n, err := fmt.Sscanf(strings.ToLower(h), "%x", &rgb)
	if err != nil || n != 1 || len(rgb) != 3 {
		return ColorError
	}
	return ColorModeTrueFg | Color((uint64(rgb[0])|uint64(rgb[1])<<8|uint64(rgb[2])<<16)<<ColorOffsetFg)
}

// Colorize wraps text in c's escape sequence and a trailing reset.
func Colorize(text string, c Color) string {
	if c == Reset {
		return text
	}
	if WantColor && c&ColorError != 0 {
		return "(tvis.Color ERROR invalid hex color)" + text
	}
	attrs := c.String()
	if attrs == "" {
		return text
	}
	return attrs + text + Reset.String()
}

// Colorf writes colorized output to Stdout if WantColor is true.
func Colorf(format string, c Color, a ...interface{}) { fmt.Fprintf(Stdout, Colorize(format, c), a...) }

// Colorln writes colorized output to Stdout if WantColor is true.
func Colorln(text string, c Color) { fmt.Fprintln(Stdout, Colorize(text, c)) }

// DeColor strips ANSI SGR escape sequences from text.
func DeColor(text string) string {
	for {
		i := strings.Index(text, "\x1b")
		if i == -1 {
			break
		}
		e := strings.IndexByte(text[i:], 'm')
		if e == -1 {
			break
		}
		text = text[:i] + text[i+e+1:]
	}
	return text
}
