// SPDX-License-Identifier: MIT

package rational

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Fraction is an exact rational number num/den in lowest terms.
// The zero value is 0/1 once normalized; use Int(0) or New to build values.
type Fraction struct {
	num int64
	den int64
}

// New returns num/den reduced to lowest terms with a positive denominator.
func New(num, den int64) (Fraction, error) {
	if den == 0 {
		return Fraction{}, fmt.Errorf("%w: %d/0", ErrZeroDenominator, num)
	}

	return reduce(num, den), nil
}

// Int returns the integer n as a Fraction.
func Int(n int64) Fraction { return Fraction{num: n, den: 1} }

// reduce assumes den != 0.
func reduce(num, den int64) Fraction {
	if den < 0 {
		num, den = -num, -den
	}
	if num == 0 {
		return Fraction{num: 0, den: 1}
	}
	g := gcd64(abs64(num), den)

	return Fraction{num: num / g, den: den / g}
}

// Num returns the numerator (carries the sign).
func (f Fraction) Num() int64 { return f.norm().num }

// Den returns the positive denominator.
func (f Fraction) Den() int64 { return f.norm().den }

// norm maps the zero value Fraction{} to 0/1.
func (f Fraction) norm() Fraction {
	if f.den == 0 {
		return Fraction{num: 0, den: 1}
	}

	return f
}

// Add returns f + g.
func (f Fraction) Add(g Fraction) Fraction {
	f, g = f.norm(), g.norm()

	return reduce(f.num*g.den+g.num*f.den, f.den*g.den)
}

// Sub returns f - g.
func (f Fraction) Sub(g Fraction) Fraction {
	f, g = f.norm(), g.norm()

	return reduce(f.num*g.den-g.num*f.den, f.den*g.den)
}

// Mul returns f · g.
func (f Fraction) Mul(g Fraction) Fraction {
	f, g = f.norm(), g.norm()

	return reduce(f.num*g.num, f.den*g.den)
}

// Div returns f / g, or ErrZeroDenominator when g is zero.
func (f Fraction) Div(g Fraction) (Fraction, error) {
	f, g = f.norm(), g.norm()
	if g.num == 0 {
		return Fraction{}, fmt.Errorf("%w: division of %s by zero", ErrZeroDenominator, f)
	}

	return reduce(f.num*g.den, f.den*g.num), nil
}

// Neg returns -f.
func (f Fraction) Neg() Fraction {
	f = f.norm()

	return Fraction{num: -f.num, den: f.den}
}

// Sign returns -1, 0 or +1.
func (f Fraction) Sign() int {
	switch n := f.norm().num; {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

// Abs returns |f|.
func (f Fraction) Abs() Fraction {
	if f.Sign() < 0 {
		return f.Neg()
	}

	return f.norm()
}

// Cmp returns -1, 0 or +1 as f is less than, equal to or greater than g.
func (f Fraction) Cmp(g Fraction) int { return f.Sub(g).Sign() }

// IsZero reports whether f == 0.
func (f Fraction) IsZero() bool { return f.norm().num == 0 }

// IsInt reports whether the denominator is 1.
func (f Fraction) IsInt() bool { return f.norm().den == 1 }

// Equal reports exact equality. Both operands are canonical, so this is field-wise.
func (f Fraction) Equal(g Fraction) bool { return f.norm() == g.norm() }

// Float64 returns the nearest float64; for display only.
func (f Fraction) Float64() float64 {
	f = f.norm()

	return float64(f.num) / float64(f.den)
}

// String renders "n" for integers and "n/d" otherwise.
func (f Fraction) String() string {
	f = f.norm()
	if f.den == 1 {
		return strconv.FormatInt(f.num, 10)
	}

	return strconv.FormatInt(f.num, 10) + "/" + strconv.FormatInt(f.den, 10)
}

// MarshalJSON encodes the fraction as its String form, e.g. "4/5".
func (f Fraction) MarshalJSON() ([]byte, error) { return json.Marshal(f.String()) }

// Sum adds all fractions; the empty sum is 0.
func Sum(fs ...Fraction) Fraction {
	total := Int(0)
	for _, f := range fs {
		total = total.Add(f)
	}

	return total
}
