package terminfo

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

const magicNumber = 282 // 0x011A

const (
	sentinelAbsent     = 0xFFFF
	sentinelCancelled  = 0xFFFE
)

// ExtCapKind distinguishes the three kinds of user-defined capability.
type ExtCapKind int

const (
	ExtBool ExtCapKind = iota
	ExtNumber
	ExtString
)

// ExtCap is one entry of a description's extended (user-defined)
// capability list. Order is preserved from the compiled file; on a
// duplicate name, callers must scan in reverse so the last entry wins.
type ExtCap struct {
	Name  string
	Kind  ExtCapKind
	Bool  bool
	Num   uint16
	Str   []byte
}

// Parse decodes a compiled terminfo description from data. It fails fast at
// the first inconsistency in the format; no partial description is ever
// returned alongside an error.
func Parse(data []byte) (*Description, error) {
	r := newAlignedReader(bytes.NewReader(data))

	header, err := r.readWords(6)
	if err != nil {
		return nil, ioError(err)
	}
	if header[0] != magicNumber {
		return nil, parseError("wrong magic number")
	}

	nameSz := int(header[1])
	if nameSz == 0 {
		return nil, parseError("zero-length name section")
	}
	nameBuf, err := r.readBytes(nameSz)
	if err != nil {
		return nil, ioError(err)
	}
	if nameBuf[nameSz-1] != 0 {
		return nil, parseError("name section is not null-terminated")
	}
	if !utf8.Valid(nameBuf[:nameSz-1]) {
		return nil, parseError("name section is not valid UTF-8")
	}
	names := strings.Split(string(nameBuf[:nameSz-1]), "|")
	if len(names) < 1 || names[0] == "" {
		return nil, parseError("too few items in name section")
	}

	boolsNum := int(header[2])
	if boolsNum > NumBools {
		return nil, parseError("too many boolean flags")
	}
	boolBuf, err := r.readBytes(boolsNum)
	if err != nil {
		return nil, ioError(err)
	}
	bools := make([]bool, boolsNum)
	for i, b := range boolBuf {
		bools[i] = b != 0
	}

	numsNum := int(header[3])
	if numsNum > NumNumbers {
		return nil, parseError("too many numbers")
	}
	numWords, err := r.readWords(numsNum)
	if err != nil {
		return nil, ioError(err)
	}
	nums := make([]uint16, numsNum)
	copy(nums, numWords)

	strsNum := int(header[4])
	strTableSz := int(header[5])
	if strsNum > NumStrings {
		return nil, parseError("too many strings")
	}
	offsets, err := r.readWords(strsNum)
	if err != nil {
		return nil, ioError(err)
	}
	strTable, err := r.readBytes(strTableSz)
	if err != nil {
		return nil, ioError(err)
	}
	strsOut, err := decodeOffsets(offsets, strTable)
	if err != nil {
		return nil, err
	}

	d := &Description{
		names:   names,
		bools:   bools,
		nums:    nums,
		strings: strsOut,
	}

	ext, err := parseExtended(r)
	if err != nil {
		return nil, err
	}
	d.ext = ext

	d.truncateDefaults()
	return d, nil
}

// decodeOffsets resolves a string-offset table against a single string
// table starting at origin 0. A sentinel offset (0xFFFF or 0xFFFE) means
// absent; any other offset that is not strictly less than the table
// length, or whose run contains no NUL before the table end, is a parse
// error.
func decodeOffsets(offsets []uint16, table []byte) ([][]byte, error) {
	out := make([][]byte, len(offsets))
	for i, off := range offsets {
		if off == sentinelAbsent || off == sentinelCancelled {
			out[i] = nil
			continue
		}
		pos := int(off)
		if pos >= len(table) {
			return nil, parseError("invalid string offset")
		}
		end := bytes.IndexByte(table[pos:], 0)
		if end < 0 {
			return nil, parseError("unterminated string")
		}
		out[i] = append([]byte(nil), table[pos:pos+end]...)
	}
	return out, nil
}

// parseExtended reads the optional extended/user-defined capability
// section, if any bytes remain in r's underlying source. It returns a nil
// slice (not an error) when there is nothing left to read.
func parseExtended(r *alignedReader) ([]ExtCap, error) {
	header, err := r.readWords(5)
	if err != nil {
		// No extended section present; EOF here is not an error.
		return nil, nil
	}
	numBools := int(header[0])
	numNums := int(header[1])
	numStrs := int(header[2])
	tableSize := int(header[4])

	extBoolBuf, err := r.readBytes(numBools)
	if err != nil {
		return nil, ioError(err)
	}
	extBools := make([]bool, numBools)
	for i, b := range extBoolBuf {
		extBools[i] = b != 0
	}

	extNums, err := r.readWords(numNums)
	if err != nil {
		return nil, ioError(err)
	}

	strOffsets, err := r.readWords(numStrs)
	if err != nil {
		return nil, ioError(err)
	}
	nameOffsets, err := r.readWords(numBools + numNums + numStrs)
	if err != nil {
		return nil, ioError(err)
	}
	table, err := r.readBytes(tableSize)
	if err != nil {
		return nil, ioError(err)
	}

	strVals, origin, err := readRunningOffsets(strOffsets, table, 0)
	if err != nil {
		return nil, err
	}
	nameVals, _, err := readRunningOffsets(nameOffsets, table, origin)
	if err != nil {
		return nil, err
	}
	for _, n := range nameVals {
		if !utf8.Valid(n) {
			return nil, parseError("extended capability name is not valid UTF-8")
		}
	}

	// Insertion order: all booleans, then all numbers, then all strings,
	// so a reverse scan finds the last duplicate first.
	caps := make([]ExtCap, 0, numBools+numNums+numStrs)
	for i := 0; i < numBools; i++ {
		caps = append(caps, ExtCap{Name: string(nameVals[i]), Kind: ExtBool, Bool: extBools[i]})
	}
	for i := 0; i < numNums; i++ {
		caps = append(caps, ExtCap{Name: string(nameVals[numBools+i]), Kind: ExtNumber, Num: extNums[i]})
	}
	for i := 0; i < numStrs; i++ {
		caps = append(caps, ExtCap{Name: string(nameVals[numBools+numNums+i]), Kind: ExtString, Str: strVals[i]})
	}
	return caps, nil
}

// readRunningOffsets decodes a set of offsets against table, all relative
// to startOrigin, and returns the decoded byte strings plus the new
// origin for a subsequent call (startOrigin plus the number of bytes
// consumed by this call, each string's length including its NUL).
func readRunningOffsets(offsets []uint16, table []byte, startOrigin int) ([][]byte, int, error) {
	out := make([][]byte, len(offsets))
	origin := startOrigin
	consumed := 0
	for i, off := range offsets {
		if off == sentinelAbsent || off == sentinelCancelled {
			out[i] = nil
			continue
		}
		pos := origin + int(off)
		if pos < 0 || pos >= len(table) {
			return nil, 0, parseError("invalid extended string offset")
		}
		end := bytes.IndexByte(table[pos:], 0)
		if end < 0 {
			return nil, 0, parseError("unterminated extended string")
		}
		out[i] = append([]byte(nil), table[pos:pos+end]...)
		consumed += end + 1
	}
	return out, origin + consumed, nil
}
