package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func decodeAll(b []byte) (ok [][]byte, errs int) {
	var d UTF8Decoder
	for _, c := range b {
		outcome, buf, n := d.Step(c)
		switch outcome {
		case UTF8Ok:
			ok = append(ok, append([]byte(nil), buf[:n]...))
		case UTF8Err:
			errs++
		}
	}
	return
}

func TestUTF8RoundTrip(t *testing.T) {
	in := "héllo, 世界! \U0001F600"
	ok, errs := decodeAll([]byte(in))
	assert.Equal(t, 0, errs)
	var got []byte
	for _, b := range ok {
		got = append(got, b...)
	}
	assert.Equal(t, in, string(got))
}

func TestUTF8InvalidLeadByte(t *testing.T) {
	_, errs := decodeAll([]byte{0x80, 'a'})
	assert.Equal(t, 1, errs)
}

func TestUTF8OverlongRejected(t *testing.T) {
	// 0xC0 0x80 would be an overlong encoding of NUL; 0xC0 is an invalid
	// lead byte outright.
	_, errs := decodeAll([]byte{0xC0, 0x80})
	assert.GreaterOrEqual(t, errs, 1)
}

func TestUTF8SurrogateRejected(t *testing.T) {
	// 0xED 0xA0 0x80 would encode U+D800, a surrogate. 0xED 0xA0 is one
	// error (0xA0 is outside 0xED's allowed second-byte range); the
	// decoder then resets, and the stray continuation byte 0x80 is a
	// second error.
	_, errs := decodeAll([]byte{0xED, 0xA0, 0x80})
	assert.Equal(t, 2, errs)
}

func TestUTF8TruncatedSequenceThenRecovery(t *testing.T) {
	// 0xE2 0x82 is a truncated 3-byte sequence (missing the final byte);
	// 'x' that follows is outside the expected continuation range.
	_, errs := decodeAll([]byte{0xE2, 0x82, 'x'})
	assert.Equal(t, 1, errs)
}
