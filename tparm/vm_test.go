package tparm

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, cap string, params ...Param) string {
	t.Helper()
	var out bytes.Buffer
	vars := &Vars{}
	err := Tparm(&out, []byte(cap), params, vars)
	require.NoError(t, err)
	return out.String()
}

func TestNoPercentIsPassthrough(t *testing.T) {
	assert.Equal(t, "hello world", run(t, "hello world"))
}

func TestLiteralPercent(t *testing.T) {
	assert.Equal(t, "%", run(t, "%%"))
}

func TestPushParamAndFormat(t *testing.T) {
	assert.Equal(t, "42", run(t, "%p1%d", IntParam(42)))
	assert.Equal(t, "-7", run(t, "%p1%d", IntParam(-7)))
}

func TestScenario1SetBg256(t *testing.T) {
	assert.Equal(t, "\x1b[48;5;1m", run(t, "\x1b[48;5;%p1%dm", IntParam(1)))
}

func TestScenario2ConstantsOrder(t *testing.T) {
	assert.Equal(t, "21", run(t, "%{1}%{2}%d%d"))
}

func TestScenario3IncrementIsOneBased(t *testing.T) {
	got := run(t, "%p1%d%p2%d%p3%d%i%p1%d%p2%d%p3%d", IntParam(1), IntParam(2), IntParam(3))
	assert.Equal(t, "123233", got)
}

func TestScenario4ConditionalColor(t *testing.T) {
	cap := "\x1b[%?%p1%{8}%<%t3%p1%d%e%p1%{16}%<%t9%p1%{8}%-%d%e38;5;%p1%d%;m"
	assert.Equal(t, "\x1b[31m", run(t, cap, IntParam(1)))
	assert.Equal(t, "\x1b[90m", run(t, cap, IntParam(8)))
	assert.Equal(t, "\x1b[38;5;42m", run(t, cap, IntParam(42)))
}

func TestScenario5PrintfFlags(t *testing.T) {
	cap := "%p1%o%p1%#o%p2%6.4x%p2%#6.4X"
	assert.Equal(t, "17017  001b0X001B", run(t, cap, IntParam(15), IntParam(27)))
}

func TestDivisionAndModByZeroAreZeroNotError(t *testing.T) {
	assert.Equal(t, "0", run(t, "%p1%p2%/%d", IntParam(5), IntParam(0)))
	assert.Equal(t, "0", run(t, "%p1%p2%m%d", IntParam(5), IntParam(0)))
}

func TestPushParam0OrNonDigitIsSyntaxError(t *testing.T) {
	var out bytes.Buffer
	err := Tparm(&out, []byte("%p0%d"), []Param{IntParam(1)}, &Vars{})
	require.Error(t, err)
	assert.True(t, IsStx(err))

	out.Reset()
	err = Tparm(&out, []byte("%px"), nil, &Vars{})
	require.Error(t, err)
	assert.True(t, IsStx(err))
}

func TestConstantOutOfRangeIsSyntaxError(t *testing.T) {
	var out bytes.Buffer
	err := Tparm(&out, []byte("%{99999}%d"), nil, &Vars{})
	require.Error(t, err)
	assert.True(t, IsStx(err))
}

func TestUnsetVariableIsRuntimeError(t *testing.T) {
	var out bytes.Buffer
	err := Tparm(&out, []byte("%gA%d"), nil, &Vars{})
	require.Error(t, err)
	assert.True(t, IsRun(err))
}

func TestVariablePersistsAcrossCalls(t *testing.T) {
	vars := &Vars{}
	var out bytes.Buffer
	require.NoError(t, Tparm(&out, []byte("%p1%PA"), []Param{IntParam(9)}, vars))
	out.Reset()
	require.NoError(t, Tparm(&out, []byte("%gA%d"), nil, vars))
	assert.Equal(t, "9", out.String())
}

func TestStackUnderflowIsSyntaxError(t *testing.T) {
	var out bytes.Buffer
	err := Tparm(&out, []byte("%d"), nil, &Vars{})
	require.Error(t, err)
	assert.True(t, IsStx(err))
}

func TestUnterminatedConditionalIsSyntaxError(t *testing.T) {
	var out bytes.Buffer
	err := Tparm(&out, []byte("%?%p1%t"), []Param{IntParam(1)}, &Vars{})
	require.Error(t, err)
	assert.True(t, IsStx(err))
}
