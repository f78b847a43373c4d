package poly

import (
	"errors"

	"github.com/jonathanmweiss/go-poly/field"
)

var (
	ErrPointsSizeMismatch = errors.New("points size mismatch")
	ErrNonUniqueXs        = errors.New("non-unique x values")
)

// Interpolate returns the unique polynomial of degree < len(xs) with
// p(xs[i]) = ys[i], following the Lagrange method
// https://en.wikipedia.org/wiki/Lagrange_polynomial
// It is O(n^2) in total:
// 1. Create m(x) = \prod_{0\le i \le n} m_i(x) = \prod_{0\le i \le n} (x - x_i)
// 2. For each i, create q_i(x) = m(x) / m_i(x) by synthetic division.
// 3. then from each q_i create l_i by multiplying q_i by y_i / q_i(x_i).
// 4. Finally, sum all l_i to get the polynomial.
func Interpolate[T any](f field.Field[T], xs, ys []T) (*Polynomial[T], error) {
	if err := validateInterpolationPoints(f, xs, ys); err != nil {
		return nil, err
	}

	if len(xs) == 0 {
		return Zero[T](f), nil
	}

	// O(n^2) total cost, since we are multiplying n polynomials of degree 1.
	m := ProductOfRoots[T](f, xs)

	sum := Zero[T](f)
	for i, x := range xs {
		qi := divByLinear(f, m, x) // O(n)

		// this is the denominator of l_i: \prod_{j \ne i} (x_i - x_j)
		s := qi.Eval(x)

		c, err := quoExact(f, ys[i], s)
		if err != nil {
			return nil, err
		}

		sum.AddInPlace(qi.ScalarMul(c))
	}

	return sum, nil
}

/*
divByLinear divides m by (x - root). This is quicker than the long division
method since the divisor is monic of degree 1, and the caller knows there is
no remainder.
*/
func divByLinear[T any](f field.Field[T], m *Polynomial[T], root T) *Polynomial[T] {
	if m.Degree() < 1 {
		return Zero[T](f)
	}

	qinner := make([]T, m.Degree())

	carry := f.Zero()
	for i := m.Degree(); i > 0; i-- {
		carry = f.Add(m.coeffs[i], f.Mul(carry, root))
		qinner[i-1] = carry
	}

	return wrap[T](f, qinner)
}

// Product multiplies a slice of polynomials. The empty product is 1.
func Product[T any](r field.Ring[T], polys []*Polynomial[T]) *Polynomial[T] {
	m := NewConstant(r, r.One())
	for _, mi := range polys {
		m = m.Mul(mi)
	}

	return m
}

// ProductOfRoots computes \prod (x - r_i) in O(n^2) without building the
// linear factors.
func ProductOfRoots[T any](r field.Ring[T], roots []T) *Polynomial[T] {
	coeffs := zeros(r, len(roots)+1)
	coeffs[0] = r.One()

	deg := 0
	for _, root := range roots {
		neg := r.Neg(root)
		for j := deg; j >= 0; j-- {
			// new[j+1] += old[j] * 1
			coeffs[j+1] = r.Add(coeffs[j+1], coeffs[j])
			// new[j]   *= (-r)
			coeffs[j] = r.Mul(coeffs[j], neg)
		}
		deg++
	}

	return wrap(r, coeffs)
}

func validateInterpolationPoints[T any](f field.Field[T], xs, ys []T) error {
	if len(xs) != len(ys) {
		return ErrPointsSizeMismatch
	}

	// T is not comparable in general, so no map here.
	for i := range xs {
		for j := i + 1; j < len(xs); j++ {
			if f.Equal(xs[i], xs[j]) {
				return ErrNonUniqueXs
			}
		}
	}

	return nil
}
