package terminfo

import (
	"os"
	"sync"
)

var (
	currentOnce sync.Once
	current     *Description
)

// Current returns the process-wide current description, lazily derived
// from $TERM on first use. If $TERM is unset or no matching entry is
// found, it falls back to an in-source 80x24 "dumb" literal. The result
// is cached; subsequent calls return the same value by reference. This
// is one of the two pieces of unavoidable global mutable state in the
// system (the other is a platform terminal-open flag, owned by the
// collaborating Terminal façade, not this package); both must be
// initialized exactly once and this uses sync.Once for that guarantee.
func Current() *Description {
	currentOnce.Do(func() {
		term := os.Getenv("TERM")
		if term != "" {
			if d, err := Find(term); err == nil {
				current = d
				return
			}
		}
		current = dumbDescription()
	})
	return current
}

func dumbDescription() *Description {
	b := NewBuilder("dumb", "80x24 dumb terminal fallback")

	amID, _ := BooleanID("am")
	b.SetBool(amID, true)

	colsID, _ := NumberID("cols")
	linesID, _ := NumberID("lines")
	b.SetNum(colsID, 80)
	b.SetNum(linesID, 24)

	belID, _ := StringID("bel")
	crID, _ := StringID("cr")
	cud1ID, _ := StringID("cud1")
	indID, _ := StringID("ind")
	b.SetStr(belID, []byte("\x07"))
	b.SetStr(crID, []byte("\r"))
	b.SetStr(cud1ID, []byte("\n"))
	b.SetStr(indID, []byte("\n"))

	return b.Build()
}
