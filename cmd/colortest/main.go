// Command colortest prints an overview of the colors and attributes tvis
// can produce on the current terminal.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"zgo.at/tvis"
)

var std = []tvis.Color{
	tvis.Black, tvis.Red, tvis.Green, tvis.Yellow, tvis.Blue, tvis.Magenta, tvis.Cyan, tvis.White,
	tvis.Black.Brighten(1), tvis.Red.Brighten(1), tvis.Green.Brighten(1), tvis.Yellow.Brighten(1),
	tvis.Blue.Brighten(1), tvis.Magenta.Brighten(1), tvis.Cyan.Brighten(1), tvis.White.Brighten(1),
}

func ranges(n ...int) []uint8 {
	var rng []uint8
	for j := 0; j < len(n); j += 2 {
		for i := n[j]; i <= n[j+1]; i++ {
			rng = append(rng, uint8(i))
		}
	}
	return rng
}

func main() {
	bg := pflag.Bool("bg", false, "set background color instead of foreground")
	brighten := pflag.String("brighten", "", "show the Brighten() ramp for a color (256-index or #hex)")
	pflag.Parse()

	tvis.WantColor = true

	if *brighten != "" {
		brightTest(*brighten)
		return
	}

	toBg := func(c tvis.Color) tvis.Color {
		if *bg {
			return c.Bg()
		}
		return c
	}

	fmt.Print("Attrs:  ")
	fmt.Print("Bold ", tvis.Colorize("11", tvis.Bold), " ")
	fmt.Print("Dim ", tvis.Colorize("22", tvis.Dim), " ")
	fmt.Print("Italic ", tvis.Colorize("33", tvis.Italic), " ")
	fmt.Print("Underline ", tvis.Colorize("44", tvis.Underline), " ")
	fmt.Print("Reverse ", tvis.Colorize("55", tvis.Reverse), " ")
	fmt.Print("Concealed ", tvis.Colorize("66", tvis.Concealed), "\n")

	fmt.Println("                       ┌ Regular ──────────────┐  ┌ Bright ─────────────┐")
	fmt.Print("Standard colors:       ")
	for i, c := range std {
		tvis.Colorf("%-3d", toBg(c), i)
	}

	fmt.Print("\nStandard colors (256): ")
	for i := uint8(0); i <= 16; i++ {
		tvis.Colorf("%-3d", toBg(tvis.Color256(i)), i)
	}

	fmt.Print("\n\n")
	for _, i := range ranges(16, 33, 52, 69, 88, 105, 124, 141, 160, 177, 196, 213) {
		if i > 16 && (i-16)%18 == 0 {
			fmt.Println("")
		}
		tvis.Colorf("%-4d", toBg(tvis.Color256(i)), i)
	}
	for _, i := range ranges(34, 51, 70, 87, 106, 123, 142, 159, 178, 195, 214, 231) {
		if i > 16 && (i-16)%18 == 0 {
			fmt.Println("")
		}
		tvis.Colorf("%-4d", toBg(tvis.Color256(i)), i)
	}

	fmt.Print("\nGrey-tones: ")
	for i := 232; i <= 255; i++ {
		if i == 244 {
			fmt.Print("\n            ")
		}
		tvis.Colorf("%-4d", toBg(tvis.Color256(uint8(i))), i)
	}
	fmt.Printf("\nRun '%s --bg' to set background instead of foreground.\n", tvis.Program())
	fmt.Printf("Run '%s --brighten [color]' to test the Brighten() method.\n", tvis.Program())
}

func brightTest(name string) {
	var c tvis.Color
	if name[0] == '#' {
		c = tvis.ColorHex(name)
		if c == tvis.ColorError {
			tvis.Fatalf("error parsing RGB")
		}
	} else {
		n, err := strconv.ParseUint(name, 10, 8)
		tvis.F(err)
		c = tvis.Color256(uint8(n))
	}
	c = c.Bg()

	br := make([]tvis.Color, 0, 32)
	for i := 0; ; i++ {
		b := c.Brighten(i)
		if i > 1 && b == br[len(br)-1] {
			break
		}
		br = append(br, b)
	}
	dr := make([]tvis.Color, 0, 32)
	for i := 0; ; i-- {
		b := c.Brighten(i)
		if i < -1 && b == dr[len(dr)-1] {
			break
		}
		dr = append(dr, b)
	}

	w, _, _ := tvis.TerminalSize(os.Stdout.Fd())
	if w <= 0 {
		w = 76
	}
	w -= 12

	fmt.Printf("Brighten: %s%s\n", pr(br, w), tvis.Reset)
	fmt.Printf("Darken:   %s%s\n", pr(dr, w), tvis.Reset)
}

func pr(t []tvis.Color, w int) string {
	pad := strings.Repeat(" ", 10)
	out := ""
	for i, c := range t {
		out += c.String() + " "
		if i > 0 && (i+1)%w == 0 {
			out += tvis.Reset.String() + "\n" + pad
		}
	}
	return out + tvis.Reset.String() +
		fmt.Sprintf("\n%s%s -> %s in %d steps", pad, cname(t[0]), cname(t[len(t)-1]), len(t)-1)
}

func cname(c tvis.Color) string {
	if c&tvis.ColorMode256Bg != 0 {
		return fmt.Sprintf("%d", int(c>>tvis.ColorOffsetBg))
	}
	c = c >> tvis.ColorOffsetBg
	return fmt.Sprintf("#%02x%02x%02x", int(c%256), int(c>>8%256), int(c>>16%256))
}
