package tparm

import (
	"bytes"
	"strconv"
	"strings"
)

// formatFlags holds the parsed flag prefix of a conversion spec. zero and
// colon are recognized (consumed) but do not change output: zero-pad
// alignment is treated identically to space-pad for the width; colon only
// disambiguates a leading '-' or digit from being read as an operator and
// is otherwise discarded.
type formatFlags struct {
	alt   bool // '#'
	left  bool // '-'
	zero  bool // '0'
	space bool // ' '
	colon bool // ':'
}

// parseFormat attempts to parse a conversion spec starting at cap[i]
// (immediately after the '%'). On success it returns the parsed pieces
// and the index of the byte following the conversion character. On
// failure (no valid conversion character found) ok is false and i is
// unspecified; the caller must not have committed any side effects yet.
func parseFormat(cap []byte, i int) (flags formatFlags, width, prec int, conv byte, next int, ok bool) {
	prec = -1
	n := len(cap)
flagLoop:
	for i < n {
		switch cap[i] {
		case '#':
			flags.alt = true
		case '-':
			flags.left = true
		case '0':
			flags.zero = true
		case ' ':
			flags.space = true
		case ':':
			flags.colon = true
		default:
			break flagLoop
		}
		i++
	}
	start := i
	for i < n && cap[i] >= '0' && cap[i] <= '9' {
		i++
	}
	if i > start {
		width, _ = strconv.Atoi(string(cap[start:i]))
	}
	if i < n && cap[i] == '.' {
		i++
		start = i
		for i < n && cap[i] >= '0' && cap[i] <= '9' {
			i++
		}
		if i > start {
			prec, _ = strconv.Atoi(string(cap[start:i]))
		} else {
			prec = 0
		}
	}
	if i >= n {
		return formatFlags{}, 0, -1, 0, i, false
	}
	switch cap[i] {
	case 'c', 'd', 'o', 'x', 'X', 's':
		return flags, width, prec, cap[i], i + 1, true
	default:
		return formatFlags{}, 0, -1, 0, i, false
	}
}

// formatValue writes the converted value to out per the parsed spec.
func formatValue(out *bytes.Buffer, flags formatFlags, width, prec int, conv byte, v Param) error {
	switch conv {
	case 'c':
		if v.Kind != KindInt {
			return runErrorf("tparm: %%c requires an integer")
		}
		b := byte(v.Int)
		if b == 0 {
			b = 0x80
		}
		out.WriteByte(b)
		return nil
	case 's':
		if v.Kind != KindStr {
			return runErrorf("tparm: %%s requires a string")
		}
		s := v.Str
		if prec >= 0 && prec < len(s) {
			s = s[:prec]
		}
		writePadded(out, string(s), width, flags.left)
		return nil
	case 'd', 'o', 'x', 'X':
		if v.Kind != KindInt {
			return runErrorf("tparm: %%%c requires an integer", conv)
		}
		writePadded(out, formatInteger(conv, flags, prec, v.Int), width, flags.left)
		return nil
	}
	return stxErrorf("tparm: unknown format specifier %q", conv)
}

func formatInteger(conv byte, flags formatFlags, prec int, val int32) string {
	var sign string
	var magnitude uint64
	base := 10
	upper := false
	switch conv {
	case 'd':
		if val < 0 {
			sign = "-"
			magnitude = uint64(-int64(val))
		} else {
			magnitude = uint64(val)
		}
	case 'o':
		base = 8
		magnitude = uint64(uint32(val))
	case 'x':
		base = 16
		magnitude = uint64(uint32(val))
	case 'X':
		base = 16
		upper = true
		magnitude = uint64(uint32(val))
	}

	var digits string
	if prec == 0 && magnitude == 0 {
		digits = ""
	} else {
		digits = strconv.FormatUint(magnitude, base)
		if upper {
			digits = strings.ToUpper(digits)
		}
		if prec > 0 {
			target := prec
			if conv == 'o' && flags.alt && target > 0 {
				target--
			}
			for len(digits) < target {
				digits = "0" + digits
			}
		}
	}

	prefix := ""
	if flags.alt {
		switch conv {
		case 'o':
			if digits == "" || digits[0] != '0' {
				digits = "0" + digits
			}
		case 'x':
			prefix = "0x"
		case 'X':
			prefix = "0X"
		}
	}
	return sign + prefix + digits
}

func writePadded(out *bytes.Buffer, body string, width int, left bool) {
	pad := width - len(body)
	if pad <= 0 {
		out.WriteString(body)
		return
	}
	if left {
		out.WriteString(body)
		out.WriteString(strings.Repeat(" ", pad))
	} else {
		out.WriteString(strings.Repeat(" ", pad))
		out.WriteString(body)
	}
}
