package calc_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/calcpath/calc"
)

func TestParse_Kinds(t *testing.T) {
	cases := map[string]calc.Kind{
		"<<":    calc.KindShift,
		"R":     calc.KindReverse,
		"M":     calc.KindMirror,
		"S":     calc.KindRecall,
		"I":     calc.KindInvert,
		"<":     calc.KindRotateLeft,
		">":     calc.KindRotateRight,
		"-":     calc.KindNegate,
		"+":     calc.KindDigitSum,
		"12=>3": calc.KindReplace,
		"[+]2":  calc.KindModifier,
		"+5":    calc.KindAdd,
		"-3":    calc.KindSub,
		"^2":    calc.KindPow,
		"*9":    calc.KindMult,
		"/7":    calc.KindDiv,
		"7":     calc.KindAppend,
		"00":    calc.KindAppend,
	}
	for tok, kind := range cases {
		op, err := calc.Parse(tok)
		require.NoError(t, err, tok)
		assert.Equal(t, kind, op.Kind(), tok)
	}
}

// TestParse_TokensRoundTrip checks that unmodified labels read back as the
// token they came from.
func TestParse_TokensRoundTrip(t *testing.T) {
	for _, tok := range []string{"<<", "R", "M", "I", "<", ">", "-", "+", "1=>2", "[+]3", "+5", "-3", "^2", "*9", "/7", "7"} {
		op, err := calc.Parse(tok)
		require.NoError(t, err, tok)
		assert.Equal(t, tok, op.Token())
		assert.Equal(t, tok, op.String())
	}
}

func TestParse_Errors(t *testing.T) {
	for _, tok := range []string{"", "X", "+x", "*", "[+]", "[+]a", "=>5", "12a", "^NaN", "/Inf"} {
		_, err := calc.Parse(tok)
		assert.True(t, errors.Is(err, calc.ErrBadToken), "Parse(%q) = %v", tok, err)
	}
}

func TestParseAll(t *testing.T) {
	ops, err := calc.ParseAll([]string{"*9", "+2"})
	require.NoError(t, err)
	require.Len(t, ops, 2)
	assert.Equal(t, calc.KindMult, ops[0].Kind())

	_, err = calc.ParseAll([]string{"*9", "??"})
	assert.ErrorIs(t, err, calc.ErrBadToken)
}

func TestNewState(t *testing.T) {
	s, err := calc.NewState(" 2.0 ")
	require.NoError(t, err)
	assert.Equal(t, "2", s.Display())
	assert.Equal(t, 0, s.Modifier())
	assert.Equal(t, []string{"2"}, s.History())
	_, recalled := s.Recalled()
	assert.False(t, recalled)

	for _, bad := range []string{"", "abc", "1.25", "1234567"} {
		_, err := calc.NewState(bad)
		assert.ErrorIs(t, err, calc.ErrBadDisplay, bad)
	}
}

func TestKeyFunc(t *testing.T) {
	a, _ := calc.NewState("5")
	b := calc.Add(0).Apply(a)[0] // same display, longer history

	assert.NotEqual(t, a.Key(), b.Key(), "exact key sees the history")

	plain := calc.KeyFunc([]calc.Operation{calc.Add(1)})
	assert.Equal(t, plain(a), plain(b), "history is irrelevant without recall")

	withRecall := calc.KeyFunc([]calc.Operation{calc.Add(1), calc.Recall()})
	assert.Equal(t, withRecall(a), withRecall(b), "duplicate history values collapse")

	c := calc.Add(1).Apply(a)[0]
	c = calc.Sub(1).Apply(c)[0] // 5 again, history [5 6 5]
	assert.NotEqual(t, withRecall(a), withRecall(c), "6 is now recallable")
	assert.Equal(t, plain(a), plain(c))
}
