package input

// UTF8Outcome is the result of feeding one byte to a UTF8Decoder.
type UTF8Outcome int

const (
	UTF8Wait UTF8Outcome = iota
	UTF8Ok
	UTF8Err
)

// UTF8Decoder is a byte-by-byte incremental UTF-8 validator/assembler. It
// rejects overlong encodings and surrogate codepoints the same way the
// standard UTF-8 tables do, and resets on every Ok/Err result.
type UTF8Decoder struct {
	buf       [4]byte
	n         int
	remaining int
	lo, hi    byte
}

// Step feeds one byte and returns Wait (need more), Ok (buf[:n] is a
// complete, valid codepoint), or Err (buf[:n] is the malformed run that
// was just consumed, including the offending byte).
func (d *UTF8Decoder) Step(b byte) (UTF8Outcome, [4]byte, int) {
	if d.n == 0 {
		return d.stepLead(b)
	}
	if b < d.lo || b > d.hi {
		buf := d.buf
		buf[d.n] = b
		n := d.n + 1
		d.reset()
		return UTF8Err, buf, n
	}
	d.buf[d.n] = b
	d.n++
	d.remaining--
	d.lo, d.hi = 0x80, 0xBF
	if d.remaining == 0 {
		buf := d.buf
		n := d.n
		d.reset()
		return UTF8Ok, buf, n
	}
	return UTF8Wait, [4]byte{}, 0
}

func (d *UTF8Decoder) stepLead(b byte) (UTF8Outcome, [4]byte, int) {
	switch {
	case b < 0x80:
		return UTF8Ok, [4]byte{b}, 1
	case b >= 0xC2 && b <= 0xDF:
		d.start(b, 1, 0x80, 0xBF)
	case b == 0xE0:
		d.start(b, 2, 0xA0, 0xBF)
	case b >= 0xE1 && b <= 0xEC:
		d.start(b, 2, 0x80, 0xBF)
	case b == 0xED:
		d.start(b, 2, 0x80, 0x9F)
	case b >= 0xEE && b <= 0xEF:
		d.start(b, 2, 0x80, 0xBF)
	case b == 0xF0:
		d.start(b, 3, 0x90, 0xBF)
	case b >= 0xF1 && b <= 0xF3:
		d.start(b, 3, 0x80, 0xBF)
	case b == 0xF4:
		d.start(b, 3, 0x80, 0x8F)
	default:
		return UTF8Err, [4]byte{b}, 1
	}
	return UTF8Wait, [4]byte{}, 0
}

func (d *UTF8Decoder) start(lead byte, remaining int, lo, hi byte) {
	d.buf[0] = lead
	d.n = 1
	d.remaining = remaining
	d.lo, d.hi = lo, hi
}

func (d *UTF8Decoder) reset() { *d = UTF8Decoder{} }
