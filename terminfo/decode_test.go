package terminfo

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func u16le(v uint16) []byte {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, v)
	return b
}

// buildBasic assembles a minimal, valid compiled description with one
// name, no booleans, one number, and one string capability, for use as a
// parse-roundtrip fixture.
func buildBasic(t *testing.T) []byte {
	t.Helper()
	name := []byte("xx|test terminal\x00")
	strTable := []byte("hello\x00")
	var buf []byte
	buf = append(buf, u16le(magicNumber)...)
	buf = append(buf, u16le(uint16(len(name)))...)
	buf = append(buf, u16le(0)...) // bools
	buf = append(buf, u16le(1)...) // nums
	buf = append(buf, u16le(1)...) // string offsets
	buf = append(buf, u16le(uint16(len(strTable)))...)
	buf = append(buf, name...)
	// name_sz(17) + bools(0) = 17, odd -> one pad byte before numbers
	buf = append(buf, 0)
	buf = append(buf, u16le(42)...) // one number
	buf = append(buf, u16le(0)...)  // one string offset -> 0
	buf = append(buf, strTable...)
	return buf
}

func TestParseBasic(t *testing.T) {
	d, err := Parse(buildBasic(t))
	require.NoError(t, err)
	assert.Equal(t, "xx", d.Name())
	assert.Equal(t, []string{"xx", "test terminal"}, d.Names())
	assert.Equal(t, uint16(42), d.LookupNum(0))
	assert.Equal(t, []byte("hello"), d.LookupStr(0))
}

func TestParseWrongMagic(t *testing.T) {
	data := buildBasic(t)
	binary.LittleEndian.PutUint16(data[0:2], 111)
	_, err := Parse(data)
	require.Error(t, err)
	assert.True(t, IsParse(err))
}

func TestParseZeroLengthName(t *testing.T) {
	var buf []byte
	buf = append(buf, u16le(magicNumber)...)
	buf = append(buf, u16le(0)...)
	buf = append(buf, u16le(0)...)
	buf = append(buf, u16le(0)...)
	buf = append(buf, u16le(0)...)
	buf = append(buf, u16le(0)...)
	_, err := Parse(buf)
	require.Error(t, err)
	assert.True(t, IsParse(err))
}

func TestStringOffsetSentinelsAreAbsent(t *testing.T) {
	name := []byte("xx\x00")
	var buf []byte
	buf = append(buf, u16le(magicNumber)...)
	buf = append(buf, u16le(uint16(len(name)))...)
	buf = append(buf, u16le(0)...)
	buf = append(buf, u16le(0)...)
	buf = append(buf, u16le(2)...)
	buf = append(buf, u16le(0)...)
	buf = append(buf, name...)
	// header(12) + name_sz(3) + bools(0) = 15, odd -> one pad byte
	buf = append(buf, 0)
	buf = append(buf, u16le(sentinelAbsent)...)
	buf = append(buf, u16le(sentinelCancelled)...)

	d, err := Parse(buf)
	require.NoError(t, err)
	assert.Equal(t, []byte{}, d.LookupStr(0))
	assert.Equal(t, []byte{}, d.LookupStr(1))
}

func TestStringOffsetOutOfRangeIsParseError(t *testing.T) {
	name := []byte("xx\x00")
	var buf []byte
	buf = append(buf, u16le(magicNumber)...)
	buf = append(buf, u16le(uint16(len(name)))...)
	buf = append(buf, u16le(0)...)
	buf = append(buf, u16le(0)...)
	buf = append(buf, u16le(1)...)
	buf = append(buf, u16le(0)...) // empty table
	buf = append(buf, name...)
	buf = append(buf, 0)           // pad byte: 12 + 3 bytes so far is odd
	buf = append(buf, u16le(5)...) // offset into an empty table
	_, err := Parse(buf)
	require.Error(t, err)
	assert.True(t, IsParse(err))
}

func TestSectionCountsBoundedByNamespaceSize(t *testing.T) {
	name := []byte("xx\x00")
	var buf []byte
	buf = append(buf, u16le(magicNumber)...)
	buf = append(buf, u16le(uint16(len(name)))...)
	buf = append(buf, u16le(0)...)
	buf = append(buf, u16le(NumNumbers+1)...) // too many numbers
	buf = append(buf, u16le(0)...)
	buf = append(buf, u16le(0)...)
	buf = append(buf, name...)
	_, err := Parse(buf)
	require.Error(t, err)
	assert.True(t, IsParse(err))
}

func TestCapabilityNamesAreUniquePerNamespace(t *testing.T) {
	for id, n := range boolNames {
		gotShort, ok := BooleanID(n.short)
		require.True(t, ok)
		assert.Equal(t, id, gotShort)
		gotLong, ok := BooleanID(n.long)
		require.True(t, ok)
		assert.Equal(t, id, gotLong)
	}
	for id, n := range numNames {
		gotShort, ok := NumberID(n.short)
		require.True(t, ok)
		assert.Equal(t, id, gotShort)
	}
	for id, n := range strNames {
		gotShort, ok := StringID(n.short)
		require.True(t, ok)
		assert.Equal(t, id, gotShort)
	}
}

func TestCurrentFallsBackToDumb(t *testing.T) {
	t.Setenv("TERM", "this-terminal-does-not-exist-anywhere")
	t.Setenv("TERMINFO", "")
	t.Setenv("TERMINFO_DIRS", "")
	d := Current()
	assert.Equal(t, "dumb", d.Name())
	colsID, _ := NumberID("cols")
	assert.Equal(t, uint16(80), d.LookupNum(colsID))
}
