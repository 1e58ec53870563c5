package tparm

// ParamKind tags the three states a VM parameter or stack value can hold.
type ParamKind int

const (
	KindAbsent ParamKind = iota
	KindInt
	KindStr
)

// Param is a tagged value: absent, a signed 32-bit integer, or a byte
// sequence. It is used both for the caller-supplied parameter array and
// for entries on the VM's stack.
type Param struct {
	Kind ParamKind
	Int  int32
	Str  []byte
}

// AbsentParam is the zero-value-equivalent absent parameter.
func AbsentParam() Param { return Param{Kind: KindAbsent} }

// IntParam wraps a signed integer.
func IntParam(v int32) Param { return Param{Kind: KindInt, Int: v} }

// StrParam wraps a byte sequence.
func StrParam(b []byte) Param { return Param{Kind: KindStr, Str: b} }

// Vars is the 52-slot variable store addressed by letters A-Z and a-z.
// It is supplied and owned by the caller, which allows state stashed by
// one capability (e.g. a toggle in a cursor-shape sequence) to persist
// across separate tparm calls. The zero value is a store with every
// variable unset.
type Vars struct {
	val [52]Param
	set [52]bool
}

// varIndex maps a variable letter to its slot: A-Z -> 0-25, a-z -> 26-51.
func varIndex(ch byte) (int, bool) {
	switch {
	case ch >= 'A' && ch <= 'Z':
		return int(ch - 'A'), true
	case ch >= 'a' && ch <= 'z':
		return int(ch-'a') + 26, true
	default:
		return 0, false
	}
}

// Get returns the current value of a variable and whether it has ever
// been set.
func (v *Vars) Get(ch byte) (Param, bool) {
	idx, ok := varIndex(ch)
	if !ok {
		return Param{}, false
	}
	return v.val[idx], v.set[idx]
}

// Set stores a value into a variable slot.
func (v *Vars) Set(ch byte, p Param) {
	idx, ok := varIndex(ch)
	if !ok {
		return
	}
	v.val[idx] = p
	v.set[idx] = true
}
