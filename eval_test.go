package exprcalc_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exprcalc/exprcalc"
)

func TestEval(t *testing.T) {
	cases := []struct {
		name string
		src  string
		r    string
		dec  bool
	}{
		{"num", "1", "1", false},
		{"num-neg", "-42", "-42", false},
		{"num-dec", "1.5", "1.5", true},
		{"num-sci", "2e3", "2000", true},

		{"add", "1+2+3", "6", false},
		{"sub", "10 - 3 - 2", "5", false},
		{"mul", "4*5*6", "120", false},
		{"div-exact", "10/2", "5", false},
		{"div-promote", "5/2", "2.5", true},
		{"div-chain", "64/4/2", "8", false},
		{"alt-ops", "4×8÷2", "16", false},

		{"sub-before-add", "1 - 2 + 3", "2", false},
		{"div-before-mul", "2 * 6 / 3", "4", false},

		{"pow", "2^3", "8", false},
		{"pow-chain", "2^3^2", "64", false},
		{"pow-grouped-exp", "2^(3^2)", "512", false},
		{"pow-neg-base", "(-2)^3", "-8", false},

		{"neg-group", "-(1+2)", "-3", false},
		{"neg-neg", "-(-(7))", "7", false},
		{"mixed-promotes", "1 + 2.0", "3", true},
		{"group", "(1+2)*3", "9", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v, err := exprcalc.EvalString(c.src)
			require.NoError(t, err, "failed to evaluate %q", c.src)
			assert.Equal(t, c.r, v.String())
			assert.Equal(t, c.dec, v.IsDecimal(), "wrong tag for %q", c.src)
		})
	}
}

func TestEvalReadme(t *testing.T) {
	const src = " (((10 + 5) * -6) - -20.0 / -2 * 3 + -((5*2)^2) - (-5 * -2 * 5)) "
	v, err := exprcalc.EvalString(src)
	require.NoError(t, err)
	assert.Equal(t, "-270", v.String())
	assert.True(t, v.IsDecimal())
}

func TestEvalWhitespace(t *testing.T) {
	a, err := exprcalc.EvalString(" 10 -  3 -\t2 ")
	require.NoError(t, err)
	b, err := exprcalc.EvalString("10-3-2")
	require.NoError(t, err)
	assert.Equal(t, 0, a.Cmp(b))
	assert.Equal(t, a.String(), b.String())
}

func TestEvalErrors(t *testing.T) {
	t.Run("div-zero", func(t *testing.T) {
		_, err := exprcalc.EvalString("5 / 0")
		var dz *exprcalc.DivideByZeroError
		require.ErrorAs(t, err, &dz)
		assert.Equal(t, "5", dz.X.String())
	})
	t.Run("div-zero-chain", func(t *testing.T) {
		_, err := exprcalc.EvalString("8/4/0/2")
		var dz *exprcalc.DivideByZeroError
		require.ErrorAs(t, err, &dz)
		assert.Equal(t, "2", dz.X.String())
	})
	t.Run("domain-sqrt-neg", func(t *testing.T) {
		_, err := exprcalc.EvalString("(-1)^0.5")
		var de *exprcalc.DomainError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "^", de.Op)
	})
	t.Run("domain-zero-neg", func(t *testing.T) {
		_, err := exprcalc.EvalString("0^-1")
		var de *exprcalc.DomainError
		assert.ErrorAs(t, err, &de)
	})
	t.Run("error-in-operand", func(t *testing.T) {
		_, err := exprcalc.EvalString("1 + 2/0 + 3")
		var dz *exprcalc.DivideByZeroError
		assert.ErrorAs(t, err, &dz)
	})
}

func TestEvalPrec(t *testing.T) {
	v, err := exprcalc.EvalString("1/3", exprcalc.Prec(128))
	require.NoError(t, err)
	require.True(t, v.IsDecimal())
	assert.Equal(t, uint(128), v.Float().Prec())

	v, err = exprcalc.EvalString("1/3")
	require.NoError(t, err)
	assert.Equal(t, uint(exprcalc.DefaultPrec), v.Float().Prec())
}

// An expression and its rendering evaluate identically.
func TestEvalRendering(t *testing.T) {
	cases := []string{
		"10 - 3 - 2",
		"2 * 6 / 3",
		"2^3^2",
		"-(1+2)",
		" (((10 + 5) * -6) - -20.0 / -2 * 3 + -((5*2)^2) - (-5 * -2 * 5)) ",
	}
	for _, src := range cases {
		e, err := exprcalc.Parse(src)
		require.NoError(t, err, "failed to parse %q", src)
		a, err := e.Eval()
		require.NoError(t, err)
		b, err := exprcalc.EvalString(e.String())
		require.NoError(t, err, "failed to evaluate rendering %q", e)
		assert.Equal(t, a.String(), b.String(), "for %q rendered %q", src, e)
	}
}

// The printed form of a result is itself a literal that evaluates back to
// the same value with the same tag.
func TestResultRoundTrip(t *testing.T) {
	cases := []string{
		"1+2", "-42", "5/2", "10 - 3 - 2", "2^-2", "1.5e-2 * 4",
		// large magnitudes print with an exponent, which must stay a
		// valid literal
		"1e100", "-3.25e200 / 2", "2^200 * 1.0", "2^-200 * 1.0",
	}
	for _, src := range cases {
		v, err := exprcalc.EvalString(src)
		require.NoError(t, err, "failed to evaluate %q", src)
		w, err := exprcalc.EvalString(v.String())
		require.NoError(t, err, "%q printed as %q, which fails to evaluate", src, v)
		assert.Equal(t, 0, v.Cmp(w), "%q evaluates to %v, which reevaluates to %v", src, v, w)
		assert.Equal(t, v.IsDecimal(), w.IsDecimal(), "tag changed through printing %q", src)
	}
}

func Example() {
	v, err := exprcalc.EvalString(" (((10 + 5) * -6) - -20.0 / -2 * 3 + -((5*2)^2) - (-5 * -2 * 5)) ")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(v)
	// Output: -270
}

func BenchmarkEval(b *testing.B) {
	cases := []struct {
		name string
		src  string
	}{
		{"int-chain", "1+2+3+4+5+6+7+8"},
		{"promoting", "5/2 + 1.5 * 3"},
		{"nested", " (((10 + 5) * -6) - -20.0 / -2 * 3 + -((5*2)^2) - (-5 * -2 * 5)) "},
	}
	for _, c := range cases {
		b.Run(c.name, func(b *testing.B) {
			e, err := exprcalc.Parse(c.src)
			if err != nil {
				b.Fatal(err)
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				e.Eval()
			}
		})
	}
}
