package terminfo

import (
	"encoding/binary"
	"io"
)

// alignedReader reads length-prefixed byte and 16-bit little-endian word
// runs from a monotonic byte source, tracking total bytes consumed so it
// can restore 2-byte alignment before each word run. All offsets in the
// compiled file are relative to the table in which they appear.
type alignedReader struct {
	r io.Reader
	n int // total bytes consumed so far
}

func newAlignedReader(r io.Reader) *alignedReader {
	return &alignedReader{r: r}
}

// readBytes returns the next n bytes, or an error if fewer are available.
func (a *alignedReader) readBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(a.r, buf); err != nil {
		return nil, err
	}
	a.n += n
	return buf, nil
}

// readWords reads a single pad byte iff the running count is odd, then
// reads 2n bytes and assembles n little-endian u16 words.
func (a *alignedReader) readWords(n int) ([]uint16, error) {
	if a.n%2 != 0 {
		if _, err := a.readBytes(1); err != nil {
			return nil, err
		}
	}
	raw, err := a.readBytes(n * 2)
	if err != nil {
		return nil, err
	}
	words := make([]uint16, n)
	for i := range words {
		words[i] = binary.LittleEndian.Uint16(raw[i*2:])
	}
	return words, nil
}
