/*
Package fractions implements exact rational numbers over the integer
scalar types of package projgeom, for the measurement layers (cross
ratios, transforms) that need division without leaving exact arithmetic.

A Fraction is kept in canonical form: the denominator is non-negative and
co-prime with the numerator. The special values are total citizens of the
arithmetic rather than errors: 1/0 and -1/0 are the signed infinities and
0/0 is the indeterminate value, with the usual absorption rules (inf +
inf = inf, inf - inf = 0/0, inf * 0 = 0/0, x/0 = inf).

Multiplication and division reduce cross-wise before multiplying, which
keeps intermediate products small. Fractions are immutable values; every
operation returns a new value.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package fractions

import (
	"fmt"

	"github.com/npillmayer/projgeom"
)

// Fraction is an exact rational number in canonical form.
type Fraction[T projgeom.Scalar] struct {
	Num T
	Den T
}

// New creates a Fraction num/den and normalizes it: the denominator's
// sign moves to the numerator and common factors cancel. New(1, 0) is
// positive infinity, New(0, 0) the indeterminate value.
func New[T projgeom.Scalar](num, den T) Fraction[T] {
	return Fraction[T]{Num: num, Den: den}.normalize()
}

// From creates the Fraction num/1.
func From[T projgeom.Scalar](num T) Fraction[T] {
	return Fraction[T]{Num: num, Den: 1}
}

// Zero is the canonical zero, 0/1.
func Zero[T projgeom.Scalar]() Fraction[T] {
	return Fraction[T]{Num: 0, Den: 1}
}

func gcd[T projgeom.Scalar](a, b T) T {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// normalize1 moves the denominator's sign to the numerator.
func (f Fraction[T]) normalize1() Fraction[T] {
	if f.Den < 0 {
		f.Num, f.Den = -f.Num, -f.Den
	}
	return f
}

// normalize2 cancels the common factor of numerator and denominator.
func (f Fraction[T]) normalize2() (Fraction[T], T) {
	common := gcd(f.Num, f.Den)
	if common != 0 && common != 1 {
		f.Num /= common
		f.Den /= common
	}
	return f, common
}

func (f Fraction[T]) normalize() Fraction[T] {
	f, _ = f.normalize1().normalize2()
	return f
}

// IsInf is a predicate: is f one of the signed infinities?
func (f Fraction[T]) IsInf() bool {
	return f.Den == 0 && f.Num != 0
}

// IsNaN is a predicate: is f the indeterminate value 0/0?
func (f Fraction[T]) IsNaN() bool {
	return f.Den == 0 && f.Num == 0
}

// Sign returns -1, 0 or 1 according to the sign of f's numerator; in
// canonical form this is the sign of the fraction.
func (f Fraction[T]) Sign() int {
	switch {
	case f.Num > 0:
		return 1
	case f.Num < 0:
		return -1
	}
	return 0
}

// Neg returns -f.
func (f Fraction[T]) Neg() Fraction[T] {
	f.Num = -f.Num
	return f
}

// Reciprocal returns the reciprocal of f. The reciprocal of zero is positive
// infinity and vice versa.
func (f Fraction[T]) Reciprocal() Fraction[T] {
	f.Num, f.Den = f.Den, f.Num
	return f.normalize1()
}

// Cross returns the cross difference f.Num*g.Den - f.Den*g.Num, which
// vanishes exactly when f and g are the same ratio.
func (f Fraction[T]) Cross(g Fraction[T]) T {
	return f.Num*g.Den - f.Den*g.Num
}

// Mul returns f*g. Factors are cancelled cross-wise before multiplying,
// so the only overflow risk is in the magnitude of the result itself.
func (f Fraction[T]) Mul(g Fraction[T]) Fraction[T] {
	f.Num, g.Num = g.Num, f.Num
	f, _ = f.normalize2()
	g, _ = g.normalize2()
	return Fraction[T]{Num: f.Num * g.Num, Den: f.Den * g.Den}.normalize1()
}

// MulScalar returns f*c.
func (f Fraction[T]) MulScalar(c T) Fraction[T] {
	f.Num, c = c, f.Num
	f, _ = f.normalize2()
	f.Num *= c
	return f.normalize1()
}

// Div returns f/g. Dividing by zero yields an infinity, dividing two
// infinities the indeterminate value.
func (f Fraction[T]) Div(g Fraction[T]) Fraction[T] {
	f.Den, g.Num = g.Num, f.Den
	f = f.normalize()
	g, _ = g.normalize2()
	return Fraction[T]{Num: f.Num * g.Den, Den: f.Den * g.Num}.normalize1()
}

// DivScalar returns f/c.
func (f Fraction[T]) DivScalar(c T) Fraction[T] {
	f.Den, c = c, f.Den
	f = f.normalize()
	f.Den *= c
	return f.normalize1()
}

// Add returns f+g. Denominators are combined over their gcd, so that
// infinities survive addition with finite values.
func (f Fraction[T]) Add(g Fraction[T]) Fraction[T] {
	if f.Den == g.Den {
		h, _ := Fraction[T]{Num: f.Num + g.Num, Den: f.Den}.normalize2()
		return h
	}
	common := gcd(f.Den, g.Den)
	if common == 0 {
		return Fraction[T]{Num: g.Den*f.Num + f.Den*g.Num, Den: 0}.normalize()
	}
	l := f.Den / common
	r := g.Den / common
	return New(r*f.Num+l*g.Num, f.Den*r)
}

// Sub returns f-g.
func (f Fraction[T]) Sub(g Fraction[T]) Fraction[T] {
	return f.Add(g.Neg())
}

// AddScalar returns f+c.
func (f Fraction[T]) AddScalar(c T) Fraction[T] {
	return f.Add(From(c))
}

// SubScalar returns f-c.
func (f Fraction[T]) SubScalar(c T) Fraction[T] {
	return f.Add(From(-c))
}

// Equal compares two fractions as ratios. Canonical form makes this a
// component comparison for equal denominators; otherwise the comparison
// reduces cross-wise first to keep products small.
func (f Fraction[T]) Equal(g Fraction[T]) bool {
	return f.Cmp(g) == 0
}

// Less reports f < g under the ordering that places -1/0 below every
// finite fraction and 1/0 above.
func (f Fraction[T]) Less(g Fraction[T]) bool {
	return f.Cmp(g) < 0
}

// Cmp returns -1, 0 or 1 as f is less than, equal to or greater than g.
// Comparisons involving the indeterminate value 0/0 are not meaningful;
// callers test IsNaN first.
func (f Fraction[T]) Cmp(g Fraction[T]) int {
	if f.Den == g.Den {
		return cmpScalar(f.Num, g.Num)
	}
	f.Den, g.Num = g.Num, f.Den
	f, _ = f.normalize2()
	g, _ = g.normalize2()
	return cmpScalar(f.Num*g.Den, f.Den*g.Num)
}

func cmpScalar[T projgeom.Scalar](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (f Fraction[T]) String() string {
	if f.Den == 0 {
		switch {
		case f.Num > 0:
			return "inf"
		case f.Num < 0:
			return "-inf"
		}
		return "0/0"
	}
	if f.Den == 1 {
		return fmt.Sprintf("%v", f.Num)
	}
	return fmt.Sprintf("%v/%v", f.Num, f.Den)
}
