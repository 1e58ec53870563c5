package terminfo

// Description holds a parsed (or literally constructed) terminfo entry.
// It is immutable once built.
type Description struct {
	names   []string
	bools   []bool
	nums    []uint16
	strings [][]byte
	ext     []ExtCap
}

// Names returns the description's aliases in their original order; the
// first is the canonical name.
func (d *Description) Names() []string { return d.names }

// Name returns the canonical (first) name.
func (d *Description) Name() string {
	if len(d.names) == 0 {
		return ""
	}
	return d.names[0]
}

// LookupBool returns the value of a predefined boolean capability; absent
// entries default to false.
func (d *Description) LookupBool(id int) bool {
	if id < 0 || id >= len(d.bools) {
		return false
	}
	return d.bools[id]
}

// LookupNum returns the value of a predefined numeric capability; absent
// entries, and the sentinel 0xFFFF, both mean "missing" and are returned
// as 0xFFFF so the caller has one thing to check.
func (d *Description) LookupNum(id int) uint16 {
	if id < 0 || id >= len(d.nums) {
		return sentinelAbsent
	}
	return d.nums[id]
}

var emptyStr = []byte{}

// LookupStr returns the value of a predefined string capability; absent
// entries default to an empty (non-nil) slice.
func (d *Description) LookupStr(id int) []byte {
	if id < 0 || id >= len(d.strings) || d.strings[id] == nil {
		return emptyStr
	}
	return d.strings[id]
}

// HasStr reports whether a predefined string capability is present at all
// (as opposed to present-but-empty, which cannot happen for parsed data
// but can for a literal built by hand).
func (d *Description) HasStr(id int) bool {
	return id >= 0 && id < len(d.strings) && d.strings[id] != nil
}

// LookupExtBool scans the extended capability list in reverse insertion
// order (so the last duplicate wins) for a boolean named name.
func (d *Description) LookupExtBool(name string) bool {
	for i := len(d.ext) - 1; i >= 0; i-- {
		if d.ext[i].Kind == ExtBool && d.ext[i].Name == name {
			return d.ext[i].Bool
		}
	}
	return false
}

// LookupExtNum is LookupExtBool for numeric extended capabilities; absent
// returns the 0xFFFF sentinel.
func (d *Description) LookupExtNum(name string) uint16 {
	for i := len(d.ext) - 1; i >= 0; i-- {
		if d.ext[i].Kind == ExtNumber && d.ext[i].Name == name {
			return d.ext[i].Num
		}
	}
	return sentinelAbsent
}

// LookupExtStr is LookupExtBool for string extended capabilities; absent
// returns an empty slice.
func (d *Description) LookupExtStr(name string) []byte {
	for i := len(d.ext) - 1; i >= 0; i-- {
		if d.ext[i].Kind == ExtString && d.ext[i].Name == name {
			return d.ext[i].Str
		}
	}
	return emptyStr
}

// ExtCaps returns the extended capability list in its original insertion
// order.
func (d *Description) ExtCaps() []ExtCap { return d.ext }

// truncateDefaults drops trailing default entries (false / 0xFFFF / empty)
// from a freshly parsed description, matching the invariant that a parsed
// description carries no trailing default padding.
func (d *Description) truncateDefaults() {
	for len(d.bools) > 0 && d.bools[len(d.bools)-1] == false {
		d.bools = d.bools[:len(d.bools)-1]
	}
	for len(d.nums) > 0 && d.nums[len(d.nums)-1] == sentinelAbsent {
		d.nums = d.nums[:len(d.nums)-1]
	}
	for len(d.strings) > 0 && len(d.strings[len(d.strings)-1]) == 0 {
		d.strings = d.strings[:len(d.strings)-1]
	}
}

type boolCap struct {
	id  int
	val bool
}
type numCap struct {
	id  int
	val uint16
}
type strCap struct {
	id  int
	val []byte
}

// Builder accumulates fields for a literal Description, produced
// atomically by Build. It accepts a list of names and any non-empty list
// is allowed (the richer of the two historical builder contracts this
// module draws from).
type Builder struct {
	names    []string
	boolCaps []boolCap
	numCaps  []numCap
	strCaps  []strCap
	ext      []ExtCap
}

// NewBuilder starts a literal description with the given names. names
// must be non-empty.
func NewBuilder(names ...string) *Builder {
	return &Builder{names: append([]string(nil), names...)}
}

// SetBool stages a boolean capability by predefined id.
func (b *Builder) SetBool(id int, val bool) *Builder {
	b.boolCaps = append(b.boolCaps, boolCap{id, val})
	return b
}

// SetNum stages a numeric capability by predefined id.
func (b *Builder) SetNum(id int, val uint16) *Builder {
	b.numCaps = append(b.numCaps, numCap{id, val})
	return b
}

// SetStr stages a string capability by predefined id.
func (b *Builder) SetStr(id int, val []byte) *Builder {
	b.strCaps = append(b.strCaps, strCap{id, val})
	return b
}

// AddExt appends an extended capability.
func (b *Builder) AddExt(c ExtCap) *Builder {
	b.ext = append(b.ext, c)
	return b
}

// Build produces an immutable Description whose vectors are exactly as
// long as needed to hold the highest id set, padded with defaults.
func (b *Builder) Build() *Description {
	d := &Description{names: append([]string(nil), b.names...)}
	for _, c := range b.boolCaps {
		d.growBools(c.id)
		d.bools[c.id] = c.val
	}
	for _, c := range b.numCaps {
		d.growNums(c.id)
		d.nums[c.id] = c.val
	}
	for _, c := range b.strCaps {
		d.growStrings(c.id)
		d.strings[c.id] = c.val
	}
	d.ext = append([]ExtCap(nil), b.ext...)
	return d
}

func (d *Description) growBools(id int) {
	for len(d.bools) <= id {
		d.bools = append(d.bools, false)
	}
}

func (d *Description) growNums(id int) {
	for len(d.nums) <= id {
		d.nums = append(d.nums, sentinelAbsent)
	}
}

func (d *Description) growStrings(id int) {
	for len(d.strings) <= id {
		d.strings = append(d.strings, nil)
	}
}
