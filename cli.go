// Package tvis turns a parsed terminfo description and the input package's
// event pipeline into a small terminal-UI toolkit: colors and cursor
// control driven by real terminal capabilities instead of hardcoded ANSI,
// plus the program-level I/O and logging conveniences a CLI built on top
// of it needs.
package tvis

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

var (
	Exit   func(int) = os.Exit
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = colorable.NewColorableStdout()
	Stderr io.Writer = colorable.NewColorableStderr()
)

// Log is the package logger. It writes human-readable, colorized output to
// Stderr when Stderr is an interactive terminal, and plain JSON lines
// otherwise (the conventional zerolog split between a dev console and a
// machine-readable production sink).
var Log = newLogger()

func newLogger() zerolog.Logger {
	if isatty.IsTerminal(os.Stderr.Fd()) {
		return zerolog.New(zerolog.ConsoleWriter{Out: Stderr, TimeFormat: "15:04:05"}).With().Timestamp().Logger()
	}
	return zerolog.New(Stderr).With().Timestamp().Logger()
}

// Program returns the program name from argv.
func Program() string {
	if len(os.Args) == 0 {
		return ""
	}
	return filepath.Base(os.Args[0])
}

// Errorf prints an error message to Stderr prefixed with the program name.
func Errorf(s interface{}, args ...interface{}) {
	prog := Program()
	if prog != "" {
		prog += ": "
	}
	switch ss := s.(type) {
	case string:
		Log.Error().Msg(prog + sprintfOrSelf(ss, args))
	case error:
		Log.Error().Err(ss).Msg(prog + "error")
	default:
		Log.Error().Interface("value", ss).Msg(prog + "error")
	}
}

func sprintfOrSelf(format string, args []interface{}) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}

// ExitCode is the exit code Fatalf and F use.
var ExitCode = 1

// Fatalf is like Errorf, but exits with ExitCode afterward.
func Fatalf(s interface{}, args ...interface{}) {
	Errorf(s, args...)
	Exit(ExitCode)
}

// F calls Fatalf(err) if err is non-nil; it is a no-op otherwise.
func F(err error) {
	if err != nil {
		Fatalf(err)
	}
}

// InputOrFile returns a reader over path, or Stdin if path is "" or "-".
func InputOrFile(path string) (io.ReadCloser, error) {
	if path != "" && path != "-" {
		fp, err := os.Open(path)
		if err != nil {
			return nil, &os.PathError{Op: "tvis.InputOrFile", Path: path, Err: err}
		}
		return fp, nil
	}
	return ioutil.NopCloser(Stdin), nil
}
