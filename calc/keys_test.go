package calc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/calcpath/calc"
	"github.com/katalvlaran/calcpath/display"
)

// mustState builds a start State or fails the test.
func mustState(t *testing.T, d string) calc.State {
	t.Helper()
	s, err := calc.NewState(d)
	require.NoError(t, err)
	return s
}

// one applies op to display d and returns the single successor display,
// or "" with ok=false when the key does not apply.
func one(t *testing.T, op calc.Operation, d string) (string, bool) {
	t.Helper()
	next := op.Apply(mustState(t, d))
	if len(next) == 0 {
		return "", false
	}
	require.Len(t, next, 1, "%s on %q", op, d)
	return next[0].Display(), true
}

type keyCase struct {
	in   string
	want string // "" means no successor
}

func runKeyCases(t *testing.T, op calc.Operation, cases []keyCase) {
	t.Helper()
	for _, c := range cases {
		got, ok := one(t, op, c.in)
		if c.want == "" {
			assert.False(t, ok, "%s(%q) = %q; want no successor", op, c.in, got)
			continue
		}
		if assert.True(t, ok, "%s(%q) gave no successor; want %q", op, c.in, c.want) {
			assert.Equal(t, c.want, got, "%s(%q)", op, c.in)
		}
	}
}

func TestShift(t *testing.T) {
	runKeyCases(t, calc.Shift(), []keyCase{
		{"1", "0"}, {"-1", "0"}, {"11", "1"}, {"-11", "-1"}, {"1.1", "1"}, {"12.5", "12"},
	})
}

func TestRotate(t *testing.T) {
	runKeyCases(t, calc.RotateLeft(), []keyCase{
		{"1", "1"}, {"21", "12"}, {"1234", "2341"}, {"-1234", "-2341"}, {"102", "21"}, {"1.5", ""},
	})
	runKeyCases(t, calc.RotateRight(), []keyCase{
		{"1", "1"}, {"21", "12"}, {"1234", "4123"}, {"-1234", "-4123"}, {"1.5", "51"},
	})
}

func TestReverse(t *testing.T) {
	runKeyCases(t, calc.Reverse(), []keyCase{
		{"1", "1"}, {"-1", "-1"}, {"12", "21"}, {"-12", "-21"}, {"1.2", "2.1"},
		{"-1.2", "-2.1"}, {"-11.2", ""}, {"11.2", ""}, {"10", "1"},
	})
}

func TestReplace(t *testing.T) {
	runKeyCases(t, calc.Replace("4", "1"), []keyCase{{"414", "111"}})
	runKeyCases(t, calc.Replace("3", "1"), []keyCase{{"3.1", "1.1"}})
	runKeyCases(t, calc.Replace("23", "45"), []keyCase{{"23623", "45645"}})
	runKeyCases(t, calc.Replace("1", "45"), []keyCase{{"1.6", "45.6"}, {"1.1", ""}})
	runKeyCases(t, calc.Replace("1", "111"), []keyCase{{"111", ""}})
}

func TestAppend(t *testing.T) {
	runKeyCases(t, calc.Append(1), []keyCase{{"414", "4141"}, {"-2", "-21"}, {"0", "1"}})
	runKeyCases(t, calc.Append(0), []keyCase{{"3", "30"}})
	runKeyCases(t, calc.Append(7), []keyCase{{"3.1", ""}})
	runKeyCases(t, calc.Append(23), []keyCase{{"2362", "236223"}, {"23623", ""}})
}

func TestDigitSum(t *testing.T) {
	runKeyCases(t, calc.DigitSum(), []keyCase{{"34", "7"}, {"-34", "-7"}, {"3.4", ""}, {"999", "27"}})
}

func TestMirror(t *testing.T) {
	runKeyCases(t, calc.Mirror(), []keyCase{{"91", "9119"}, {"-34", "-3443"}, {"1.5", ""}, {"1234", ""}})
}

func TestInvert(t *testing.T) {
	runKeyCases(t, calc.Invert(), []keyCase{{"0", "9"}, {"12", "87"}, {"-12", "-87"}, {"1.5", "8.4"}, {"90", "9"}})
}

func TestArithmetic(t *testing.T) {
	runKeyCases(t, calc.Negate(), []keyCase{{"34", "-34"}, {"-34", "34"}, {"0", "0"}})
	runKeyCases(t, calc.Mult(-1), []keyCase{{"34", "-34"}})
	runKeyCases(t, calc.Mult(4), []keyCase{{"3.4", "13.6"}})
	runKeyCases(t, calc.Add(-1), []keyCase{{"34", "33"}})
	runKeyCases(t, calc.Add(4), []keyCase{{"3.4", "7.4"}})
	runKeyCases(t, calc.Sub(-1), []keyCase{{"34", "35"}})
	runKeyCases(t, calc.Sub(4), []keyCase{{"3.4", "-0.6"}})
	runKeyCases(t, calc.Div(10), []keyCase{{"34", "3.4"}})
	runKeyCases(t, calc.Div(-10), []keyCase{{"34", "-3.4"}})
	runKeyCases(t, calc.Div(7), []keyCase{{"7", "1"}, {"8", ""}, {"14", "2"}})
	runKeyCases(t, calc.Div(0), []keyCase{{"5", ""}})
	runKeyCases(t, calc.Pow(2), []keyCase{{"34", "1156"}, {"-1", "1"}, {"1.5", ""}, {"1000", ""}})
	runKeyCases(t, calc.Pow(3), []keyCase{{"-7", "-343"}})
}

func TestArithmetic_UsesModifier(t *testing.T) {
	s := mustState(t, "0")
	s = calc.IncrementModifier(1).Apply(s)[0]
	require.Equal(t, 1, s.Modifier())

	add := calc.Add(5)
	next := add.Apply(s)
	require.Len(t, next, 1)
	assert.Equal(t, "6", next[0].Display())
	assert.Equal(t, "+6", add.Label(next[0]))

	app := calc.Append(2)
	next = app.Apply(s)
	require.Len(t, next, 1)
	assert.Equal(t, "3", next[0].Display())
	assert.Equal(t, "3", app.Label(next[0]))
}

func TestIncrementModifier_RecordsHistory(t *testing.T) {
	s := mustState(t, "7")
	next := calc.IncrementModifier(2).Apply(s)
	require.Len(t, next, 1)
	assert.Equal(t, "7", next[0].Display())
	assert.Equal(t, 2, next[0].Modifier())
	assert.Equal(t, []string{"7", "7"}, next[0].History())
	assert.Equal(t, "[+]2", calc.IncrementModifier(2).Label(next[0]))
}

func TestHistory_GrowsByOnePerKey(t *testing.T) {
	s := mustState(t, "1")
	s = calc.Mult(9).Apply(s)[0]
	s = calc.Add(2).Apply(s)[0]
	assert.Equal(t, []string{"1", "9", "11"}, s.History())

	// History returns a copy
	h := s.History()
	h[0] = "x"
	assert.Equal(t, "1", s.History()[0])
}

func TestRecall(t *testing.T) {
	s := mustState(t, "1")
	s = calc.Append(2).Apply(s)[0] // 12, hist [1 12]
	s = calc.Negate().Apply(s)[0]   // -12, hist [1 12 -12]
	s = calc.Negate().Apply(s)[0]   // 12, hist [1 12 -12 12]
	s = calc.Append(3).Apply(s)[0] // 123, hist [... 123]
	require.Equal(t, "123", s.Display())

	rc := calc.Recall()
	next := rc.Apply(s)
	var got, labels []string
	for _, n := range next {
		got = append(got, n.Display())
		labels = append(labels, rc.Label(n))
		assert.Len(t, n.History(), len(s.History()), "recall must not extend history")
	}
	assert.Equal(t, []string{"1231", "12312", "123123"}, got)
	assert.Equal(t, []string{"S(1)", "S(12)", "S(123)"}, labels)
}

func TestRecall_Limits(t *testing.T) {
	rc := calc.Recall()
	assert.Empty(t, rc.Apply(mustState(t, "1.5")), "point in display")

	s := mustState(t, "-5")
	next := rc.Apply(s)
	assert.Empty(t, next, "negative history values are never pasted")

	s = mustState(t, "1234")
	next = rc.Apply(s)
	assert.Empty(t, next, "12341234 exceeds the width")

	for _, d := range []string{"1", "12", "123", "0"} {
		st := mustState(t, d)
		st = calc.Append(4).Apply(st)[0]
		for _, n := range rc.Apply(st) {
			assert.LessOrEqual(t, display.Width(n.Display()), display.MaxWidth)
			assert.False(t, display.HasPoint(st.Display()))
		}
	}
}

func TestRecallLabel(t *testing.T) {
	v, ok := calc.ParseRecallLabel(calc.RecallLabel("42"))
	require.True(t, ok)
	assert.Equal(t, "42", v)

	for _, bad := range []string{"S", "S()", "+5", "S(3", "STORE"} {
		_, ok := calc.ParseRecallLabel(bad)
		assert.False(t, ok, bad)
	}
}

// TestSuccessorsAreValid checks that no key ever produces a display that
// breaks the validation model.
func TestSuccessorsAreValid(t *testing.T) {
	ops := []calc.Operation{
		calc.Shift(), calc.RotateLeft(), calc.RotateRight(), calc.Reverse(),
		calc.Replace("1", "2"), calc.Replace(".", "9"), calc.Append(5), calc.DigitSum(),
		calc.Mirror(), calc.Invert(), calc.Negate(), calc.Add(3), calc.Sub(7),
		calc.Mult(3), calc.Div(3), calc.Pow(2), calc.IncrementModifier(1), calc.Recall(),
	}
	frontier := []calc.State{mustState(t, "3"), mustState(t, "-2.5"), mustState(t, "987")}
	for depth := 0; depth < 2; depth++ {
		var next []calc.State
		for _, s := range frontier {
			for _, op := range ops {
				for _, n := range op.Apply(s) {
					d := n.Display()
					norm, ok := display.Normalize(d)
					require.True(t, ok, "%s on %s produced invalid %q", op, s, d)
					require.Equal(t, d, norm, "%s on %s produced non-canonical %q", op, s, d)
					next = append(next, n)
				}
			}
		}
		frontier = next
	}
}

func TestSuccessorsDoNotAlias(t *testing.T) {
	s := mustState(t, "5")
	a := calc.Add(1).Apply(s)[0]
	b := calc.Add(2).Apply(s)[0]
	assert.Equal(t, []string{"5", "6"}, a.History())
	assert.Equal(t, []string{"5", "7"}, b.History())
	assert.Equal(t, []string{"5"}, s.History())
}

func TestKind(t *testing.T) {
	assert.Equal(t, calc.KindRecall, calc.Recall().Kind())
	assert.Equal(t, "rotate-left", calc.KindRotateLeft.String())
	assert.Equal(t, "kind(99)", calc.Kind(99).String())
}

func TestArithmetic_LabelsFoldSign(t *testing.T) {
	s := mustState(t, "5")
	cases := []struct {
		op   calc.Operation
		want string
		disp string
	}{
		{calc.Sub(-2), "+2", "7"},
		{calc.Add(-1), "-1", "4"},
		{calc.Add(2), "+2", "7"},
		{calc.Sub(2), "-2", "3"},
		{calc.Mult(-2), "*-2", "-10"},
	}
	for _, c := range cases {
		next := c.op.Apply(s)
		require.Len(t, next, 1, c.op.String())
		assert.Equal(t, c.disp, next[0].Display(), c.op.String())
		assert.Equal(t, c.want, c.op.Label(next[0]), c.op.String())
	}

	// a negative modifier turns +3 into -2
	s = calc.IncrementModifier(-5).Apply(s)[0]
	add := calc.Add(3)
	next := add.Apply(s)
	require.Len(t, next, 1)
	assert.Equal(t, "3", next[0].Display())
	assert.Equal(t, "-2", add.Label(next[0]))
}

func TestHistory_LongChain(t *testing.T) {
	s := mustState(t, "1")
	mid := s
	for i := 0; i < 1000; i++ {
		s = calc.Add(1).Apply(s)[0]
		if i == 499 {
			mid = s
		}
	}
	h := s.History()
	require.Len(t, h, 1001)
	assert.Equal(t, "1", h[0])
	assert.Equal(t, "501", h[500])
	assert.Equal(t, "1001", h[1000])
	assert.Equal(t, h[:501], mid.History())
}
