package tvis

import (
	"bytes"
	"os"
	"testing"
	"unsafe"
)

// TestExit records the exit code a program passed to Exit and aborts
// execution by panicking with itself, so test code further up the stack
// can recover it without the rest of the test goroutine running on.
type TestExit int

// Exit records c and panics with t so RunTest's caller can Recover it.
func (t *TestExit) Exit(c int) {
	*t = TestExit(c)
	panic(t)
}

// Want fails tt if the recorded exit code doesn't match c.
func (t *TestExit) Want(tt *testing.T, c int) {
	tt.Helper()
	if int(*t) != c {
		tt.Errorf("wrong exit: %d; want: %d", *t, c)
	}
}

// Recover absorbs a panic produced by this TestExit's Exit method;
// anything else (including a different TestExit) is re-panicked.
func (t *TestExit) Recover() {
	r := recover()
	if r == nil {
		return
	}
	exit, ok := r.(*TestExit)
	if !ok || unsafe.Pointer(t) != unsafe.Pointer(exit) {
		panic(r)
	}
}

// RunTest replaces Stdin, Stdout, Stderr, and Exit with in-memory
// equivalents for the duration of t, restoring them on cleanup.
func RunTest(t *testing.T) (exit *TestExit, in, out *bytes.Buffer) {
	in = new(bytes.Buffer)
	Stdin = in

	out = new(bytes.Buffer)
	Stdout = out
	Stderr = out

	exit = new(TestExit)
	*exit = -1
	Exit = exit.Exit

	t.Cleanup(func() {
		Exit = os.Exit
		Stdin = os.Stdin
		Stdout = os.Stdout
		Stderr = os.Stderr
	})

	return exit, in, out
}
