package tparm

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTputsPadCharAt19200Baud(t *testing.T) {
	var out bytes.Buffer
	zero := byte(0)
	err := Tputs(&out, []byte("\x1b[?5h$<2/>\x1b[?5l"), 1, 19200, &zero, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "\x1b[?5h\x00\x00\x00\x00\x1b[?5l", out.String())
}

func TestTputsPadCharAt50Baud(t *testing.T) {
	var out bytes.Buffer
	zero := byte(0)
	err := Tputs(&out, []byte("\x1b[?5h$<2/>\x1b[?5l"), 1, 50, &zero, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "\x1b[?5h\x1b[?5l", out.String())
}

func TestTputsSleepsWhenNoPadChar(t *testing.T) {
	var out bytes.Buffer
	var slept time.Duration
	err := Tputs(&out, []byte("$<10>"), 1, 19200, nil, nil, func(d time.Duration) { slept = d })
	require.NoError(t, err)
	assert.Equal(t, 10*time.Millisecond, slept)
}

func TestTputsStarMultipliesByLines(t *testing.T) {
	var out bytes.Buffer
	zero := byte(0)
	err := Tputs(&out, []byte("$<1*>"), 10, 19200, &zero, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 24, out.Len())
}

func TestTputsPassthroughWithoutMarker(t *testing.T) {
	var out bytes.Buffer
	zero := byte(0)
	err := Tputs(&out, []byte("no markers here"), 1, 9600, &zero, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "no markers here", out.String())
}
