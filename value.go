package exprcalc

import (
	"math/big"
	"strings"

	"github.com/zephyrtronium/bigfloat"
)

// DefaultPrec is the precision, in bits, of decimal arithmetic when no Prec
// option is given to Parse.
const DefaultPrec = 64

// maxIntExp is the largest exponent computed in exact integer arithmetic.
// Larger exponents go through the decimal path so that a pathological input
// cannot demand an enormous big.Int.
const maxIntExp = 1 << 20

// Value is the result of evaluating an expression: a tagged union over an
// exact integer representation and a decimal representation. The tag of a
// literal is fixed by its lexical form; a decimal point or exponent marker
// makes it decimal. Arithmetic promotes integers to decimal whenever a
// result cannot stay exact.
//
// The zero Value is not meaningful; Values come from evaluation.
type Value struct {
	i *big.Int
	f *big.Float
	// prec is the precision used when this value must promote to decimal.
	prec uint
}

func intValue(i *big.Int, prec uint) Value {
	return Value{i: i, prec: prec}
}

func decValue(f *big.Float) Value {
	return Value{f: f, prec: f.Prec()}
}

// IsInteger reports whether the value is integer-tagged.
func (v Value) IsInteger() bool { return v.i != nil }

// IsDecimal reports whether the value is decimal-tagged.
func (v Value) IsDecimal() bool { return v.f != nil }

// Int returns a copy of the value as an integer, or nil if the value is
// decimal-tagged.
func (v Value) Int() *big.Int {
	if v.i == nil {
		return nil
	}
	return new(big.Int).Set(v.i)
}

// Float returns a copy of the value as a float, converting integer-tagged
// values at the value's precision.
func (v Value) Float() *big.Float {
	return new(big.Float).SetPrec(v.prec).Set(v.fval())
}

// Cmp compares v and w numerically, ignoring tags. The result is -1, 0, or
// +1.
func (v Value) Cmp(w Value) int {
	if v.i != nil && w.i != nil {
		return v.i.Cmp(w.i)
	}
	return v.fval().Cmp(w.fval())
}

// String renders the value: integers without a fractional point, decimals
// with the fewest digits that reproduce the value exactly at its precision.
// The result is itself a valid literal.
func (v Value) String() string {
	if v.i != nil {
		return v.i.String()
	}
	s := v.f.Text('g', -1)
	// big.Float writes large magnitudes as "1e+100", but an exponent takes
	// no "+" sign in a literal
	if i := strings.IndexByte(s, '+'); i >= 0 {
		s = s[:i] + s[i+1:]
	}
	return s
}

// fval returns the value as a *big.Float without copying a decimal.
// Callers must not mutate the result.
func (v Value) fval() *big.Float {
	if v.f != nil {
		return v.f
	}
	return new(big.Float).SetPrec(v.prec).SetInt(v.i)
}

func (v Value) sign() int {
	if v.i != nil {
		return v.i.Sign()
	}
	return v.f.Sign()
}

// promotePrec is the precision of a result that involves both operands.
func promotePrec(v, w Value) uint {
	if v.prec > w.prec {
		return v.prec
	}
	return w.prec
}

// neg negates the value, preserving its tag.
func (v Value) neg() Value {
	if v.i != nil {
		return intValue(new(big.Int).Neg(v.i), v.prec)
	}
	f := new(big.Float).SetPrec(v.f.Prec()).Neg(v.f)
	return decValue(f)
}

func (v Value) add(w Value) Value {
	if v.i != nil && w.i != nil {
		return intValue(new(big.Int).Add(v.i, w.i), promotePrec(v, w))
	}
	return decValue(new(big.Float).SetPrec(promotePrec(v, w)).Add(v.fval(), w.fval()))
}

func (v Value) sub(w Value) Value {
	if v.i != nil && w.i != nil {
		return intValue(new(big.Int).Sub(v.i, w.i), promotePrec(v, w))
	}
	return decValue(new(big.Float).SetPrec(promotePrec(v, w)).Sub(v.fval(), w.fval()))
}

func (v Value) mul(w Value) Value {
	if v.i != nil && w.i != nil {
		return intValue(new(big.Int).Mul(v.i, w.i), promotePrec(v, w))
	}
	return decValue(new(big.Float).SetPrec(promotePrec(v, w)).Mul(v.fval(), w.fval()))
}

// quo divides v by w. Division by an exactly zero divisor is an error.
// Integer operands that divide evenly stay integer; otherwise the result is
// decimal.
func (v Value) quo(w Value) (Value, error) {
	if w.sign() == 0 {
		return Value{}, &DivideByZeroError{X: v}
	}
	if v.i != nil && w.i != nil {
		q, r := new(big.Int).QuoRem(v.i, w.i, new(big.Int))
		if r.Sign() == 0 {
			return intValue(q, promotePrec(v, w)), nil
		}
	}
	return decValue(new(big.Float).SetPrec(promotePrec(v, w)).Quo(v.fval(), w.fval())), nil
}

// pow raises v to the power w. The result is integer only when both
// operands are integer and the exponent is a non-negative integer; a
// negative or fractional exponent promotes to decimal. A negative base
// with an integral exponent is computed by parity; with a fractional
// exponent it has no real result and is a DomainError, as is a zero base
// with a negative exponent.
func (v Value) pow(w Value) (Value, error) {
	if v.i != nil && w.i != nil && w.i.Sign() >= 0 {
		if !w.i.IsInt64() || w.i.Int64() > maxIntExp {
			return v.powDecimal(w)
		}
		return intValue(new(big.Int).Exp(v.i, w.i, nil), promotePrec(v, w)), nil
	}
	return v.powDecimal(w)
}

func (v Value) powDecimal(w Value) (Value, error) {
	prec := promotePrec(v, w)
	base, exp := v.fval(), w.fval()
	if base.Sign() == 0 {
		switch {
		case exp.Sign() > 0:
			return decValue(new(big.Float).SetPrec(prec)), nil
		case exp.Sign() == 0:
			return decValue(new(big.Float).SetPrec(prec).SetInt64(1)), nil
		default:
			return Value{}, &DomainError{X: v, Op: "^"}
		}
	}
	if base.Signbit() {
		n, acc := exp.Int(nil)
		if !exp.IsInt() || acc != big.Exact {
			return Value{}, &DomainError{X: v, Op: "^"}
		}
		z := new(big.Float).SetPrec(prec)
		bigfloat.Pow(z, new(big.Float).SetPrec(prec).Abs(base), exp)
		if n.Bit(0) == 1 {
			z.Neg(z)
		}
		return decValue(z), nil
	}
	z := new(big.Float).SetPrec(prec)
	bigfloat.Pow(z, base, exp)
	return decValue(z), nil
}
