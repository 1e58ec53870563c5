package tvis

import (
	"bytes"
	"fmt"
	"os"

	"golang.org/x/term"
	"zgo.at/tvis/terminfo"
	"zgo.at/tvis/tparm"
)

// WantColor indicates whether output should carry color/attribute escape
// sequences. It is derived once from the NO_COLOR convention, $TERM, and
// whether Stdout is an interactive terminal; override it directly if the
// program has its own --color flag.
var WantColor = func() bool {
	_, noColor := os.LookupEnv("NO_COLOR")
	return os.Getenv("TERM") != "dumb" && IsTerminal(os.Stdout.Fd()) && !noColor
}()

// IsTerminal reports whether fd refers to an interactive terminal.
var IsTerminal = func(fd uintptr) bool { return term.IsTerminal(int(fd)) }

// TerminalSize returns the dimensions of the terminal at fd.
var TerminalSize = func(fd uintptr) (width, height int, err error) { return term.GetSize(int(fd)) }

func sendCap(short string) { Stdout.Write(capBytes(short)) }

func sendParamCap(short string, params ...int) {
	raw := capBytes(short)
	if len(raw) == 0 {
		return
	}
	ps := make([]tparm.Param, len(params))
	for i, p := range params {
		ps[i] = tparm.IntParam(int32(p))
	}
	var buf bytes.Buffer
	if err := tparm.Tparm(&buf, raw, ps, &tparm.Vars{}); err != nil {
		return
	}
	Stdout.Write(buf.Bytes())
}

// EraseLine erases the entire current line and returns the cursor to its
// start.
func EraseLine() {
	sendCap("el")
	fmt.Fprint(Stdout, "\r")
}

// ReplaceLine erases the current line and writes a over it.
func ReplaceLine(a ...interface{}) {
	EraseLine()
	fmt.Fprint(Stdout, a...)
}

// ReplaceLinef erases the current line and writes a formatted string over
// it.
func ReplaceLinef(s string, a ...interface{}) {
	EraseLine()
	fmt.Fprintf(Stdout, s, a...)
}

// ClearScreen clears the screen and homes the cursor.
func ClearScreen() {
	sendCap("clear")
	CursorSet(1, 1)
}

// CursorSet moves the cursor to row, col (1-indexed).
func CursorSet(row, col int) {
	id := terminfo.CapCursorAddress
	raw := termDesc.LookupStr(id)
	if len(raw) == 0 {
		return
	}
	var buf bytes.Buffer
	// cursor_address takes row then column, both 0-indexed.
	params := []tparm.Param{tparm.IntParam(int32(row - 1)), tparm.IntParam(int32(col - 1))}
	if err := tparm.Tparm(&buf, raw, params, &tparm.Vars{}); err != nil {
		return
	}
	Stdout.Write(buf.Bytes())
}

// CursorShow sets cursor visibility.
func CursorShow(show bool) {
	if show {
		sendCap("cnorm")
	} else {
		sendCap("civis")
	}
}

// Direction is a screen-relative cursor movement direction.
type Direction int

const (
	_ Direction = iota
	Up
	Down
	MoveLeft
	MoveRight
)

// CursorMove moves the cursor n cells in a direction, using the
// terminal's dedicated parameterized capability when present (cuu/cud/
// cub/cuf) and falling back to n single-step moves otherwise.
func CursorMove(n int, dir Direction) {
	var multi, single string
	switch dir {
	case Up:
		multi, single = "cuu", "cuu1"
	case Down:
		multi, single = "cud", "cud1"
	case MoveLeft:
		multi, single = "cub", "cub1"
	case MoveRight:
		multi, single = "cuf", "cuf1"
	default:
		return
	}
	if len(capBytes(multi)) > 0 {
		sendParamCap(multi, n)
		return
	}
	raw := capBytes(single)
	if len(raw) == 0 {
		return
	}
	for i := 0; i < n; i++ {
		Stdout.Write(raw)
	}
}

// AltScreen enters ("ca") or leaves the terminal's alternate screen
// buffer.
func AltScreen(enter bool) {
	if enter {
		sendCap("smcup")
	} else {
		sendCap("rmcup")
	}
}
