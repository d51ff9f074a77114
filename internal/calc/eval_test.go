package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEval(t *testing.T) {
	cases := []struct {
		expr string
		want string
	}{
		{"0", "0"},
		{"-0", "0"},
		{"42", "42"},
		{"-42", "-42"},
		{"1 + 2", "3"},
		{"2 * 3 + 4 * 5", "26"},
		{"2 * (3 + 4) * 5", "70"},
		{"-(7 * 8) + 6", "-50"},
		{"10 - 4 - 3", "3"},
		{"- - 5", "5"},
		{"13206478842272655311 + 80250025245863872589", "93456504088136527900"},
		{"-48084066885301367633 * -30477676548372141302", "1465490637660506965476761506497325278166"},
		{"0 - -48084066885301367633", "48084066885301367633"},
		{"1 < 2", "true"},
		{"2 < 1", "false"},
		{"-5 == -5", "true"},
		{"-5 != -5", "false"},
		{"10 >= 11", "false"},
		{"10 <= 10", "true"},
		{"-10 > -11", "true"},
		{"(1 < 2) == (3 < 4)", "true"},
		{"(1 < 2) == (4 < 3)", "false"},
		{"(1 < 2) != (4 < 3)", "true"},
		{"(1 == 1) == (2 == 2)", "true"},
	}
	for _, tc := range cases {
		v, err := Eval(tc.expr)
		require.NoError(t, err, "expr %q", tc.expr)
		assert.Equal(t, tc.want, v.String(), "expr %q", tc.expr)
	}
}

func TestEvalValueKind(t *testing.T) {
	v, err := Eval("1 + 1")
	require.NoError(t, err)
	assert.Equal(t, "int", v.Kind())

	v, err = Eval("1 == 1")
	require.NoError(t, err)
	assert.Equal(t, "bool", v.Kind())
}

func TestEvalErrors(t *testing.T) {
	cases := []struct {
		expr    string
		wantMsg string
	}{
		{"", "expected integer"},
		{"1 +", "expected integer"},
		{"(1 + 2", "expected ')'"},
		{"1 + 2)", "unexpected ')'"},
		{"89i1o4", "unexpected character 'i'"},
		{"1 / 2", "unexpected character '/'"},
		{"1 = 2", "did you mean '=='"},
		{"1 ! 2", "did you mean '!='"},
		{"1 < 2 < 3", "chained comparison"},
		{"1 + (2 < 3)", "operand of '+' is a boolean"},
		{"-(2 < 3)", "operand of '-' is a boolean"},
		{"(1 < 2) * 3", "operand of '*' is a boolean"},
		{"(1 < 2) <= 3", "operand of '<=' is a boolean"},
		{"(1 < 2) == 3", "operands of '==' mix a boolean and an integer"},
		{"1 != (2 < 3)", "operands of '!=' mix a boolean and an integer"},
	}
	for _, tc := range cases {
		_, err := Eval(tc.expr)
		require.Error(t, err, "expr %q", tc.expr)
		assert.Contains(t, err.Error(), tc.wantMsg, "expr %q", tc.expr)
	}
}

func TestScanSpans(t *testing.T) {
	toks, err := ScanAll("12 + (3)")
	require.NoError(t, err)
	require.Len(t, toks, 6) // 12, +, (, 3, ), EOF

	assert.Equal(t, IntLit, toks[0].Kind)
	assert.Equal(t, uint32(0), toks[0].Start)
	assert.Equal(t, uint32(2), toks[0].End)
	assert.Equal(t, "12", toks[0].Text)

	assert.Equal(t, Plus, toks[1].Kind)
	assert.Equal(t, uint32(3), toks[1].Start)

	assert.Equal(t, RParen, toks[4].Kind)
	assert.Equal(t, EOF, toks[5].Kind)
	assert.Equal(t, uint32(8), toks[5].Start)
}
