package tparm

import (
	"bytes"
	"time"
)

type tputsState int

const (
	stNormal tputsState = iota
	stDollar
	stNumber
	stFinish
)

// padScanner is the four-state machine that recognizes $<N[.F][*][/]>
// delay markers in a VM-produced byte sequence. ms and frac accumulate
// the whole and single-digit fractional millisecond parts; star and
// slash record the optional multiply-by-lines and force-pad flags.
type padScanner struct {
	state       tputsState
	ms          int
	fracSeen    bool
	frac        int
	star, slash bool
	raw         []byte // bytes consumed so far for this candidate marker
}

func (p *padScanner) reset() { *p = padScanner{} }

// Sleep is injected so tests can avoid real delays; defaults to
// time.Sleep in Tputs.
type Sleep func(time.Duration)

// Tputs scans data (the output of a Tparm call) for padding markers and
// writes the result to out. lines is the affected-line count used by the
// '*' flag. baud is the terminal's line speed. padChar, if non-nil, is
// emitted repeatedly to simulate the delay; if nil, Tputs flushes out via
// flush (which may be nil) and calls sleep for the real delay instead.
func Tputs(out *bytes.Buffer, data []byte, lines, baud int, padChar *byte, flush func(), sleep Sleep) error {
	if sleep == nil {
		sleep = time.Sleep
	}
	var sc padScanner
	i := 0
	for i < len(data) {
		b := data[i]
		switch sc.state {
		case stNormal:
			if b == '$' {
				sc.state = stDollar
				sc.raw = append(sc.raw, b)
				i++
				continue
			}
			out.WriteByte(b)
			i++
		case stDollar:
			if b == '<' {
				sc.state = stNumber
				sc.raw = append(sc.raw, b)
				i++
				continue
			}
			out.Write(sc.raw)
			sc.reset()
			// reprocess b in Normal state
		case stNumber:
			switch {
			case b >= '0' && b <= '9':
				if sc.fracSeen {
					// only the first fractional digit is significant;
					// further digits are consumed but ignored.
					sc.raw = append(sc.raw, b)
					i++
					continue
				}
				sc.ms = sc.ms*10 + int(b-'0')
				sc.raw = append(sc.raw, b)
				i++
			case b == '.':
				sc.fracSeen = true
				sc.raw = append(sc.raw, b)
				i++
				if i < len(data) && data[i] >= '0' && data[i] <= '9' {
					sc.frac = int(data[i] - '0')
				}
			case b == '*' || b == '/' || b == '>':
				sc.state = stFinish
				// fall through to stFinish handling below without consuming i
			default:
				out.Write(sc.raw)
				sc.reset()
			}
		case stFinish:
			switch b {
			case '*':
				sc.star = true
				sc.raw = append(sc.raw, b)
				i++
			case '/':
				sc.slash = true
				sc.raw = append(sc.raw, b)
				i++
			case '>':
				i++
				multiplier := 1
				if sc.star {
					multiplier = lines
				}
				emitDelay(out, sc.ms, sc.frac, multiplier, baud, padChar, flush, sleep)
				sc.reset()
			default:
				out.Write(sc.raw)
				sc.reset()
			}
		}
	}
	if sc.state != stNormal {
		out.Write(sc.raw)
	}
	return nil
}

func emitDelay(out *bytes.Buffer, ms, frac, multiplier, baud int, padChar *byte, flush func(), sleep Sleep) {
	tenths := (10*ms + frac) * multiplier
	if padChar != nil {
		npad := (baud * tenths) / 80000
		for n := 0; n < npad; n++ {
			out.WriteByte(*padChar)
		}
		return
	}
	if flush != nil {
		flush()
	}
	sleep(time.Duration(tenths) * 100 * time.Microsecond)
}
