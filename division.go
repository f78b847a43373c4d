package poly

import (
	"errors"

	"github.com/jonathanmweiss/go-poly/field"
)

var (
	ErrDivisionByZero  = errors.New("division by the zero polynomial")
	ErrNotField        = errors.New("coefficient ring does not support division")
	ErrInexactDivision = errors.New("leading coefficient is not divisible by the divisor's leading coefficient")
)

func asField[T any](r field.Ring[T]) (field.Field[T], error) {
	f, ok := r.(field.Field[T])
	if !ok {
		return nil, ErrNotField
	}

	return f, nil
}

// quoExact returns a / b, or ErrInexactDivision when the ring truncates and
// b does not divide a.
func quoExact[T any](f field.Field[T], a, b T) (T, error) {
	if exact, ok := f.(field.ExactDivider[T]); ok && !exact.Divides(a, b) {
		var zero T
		return zero, ErrInexactDivision
	}

	return f.Quo(a, b), nil
}

// Div returns the quotient of p by q.
func (p *Polynomial[T]) Div(q *Polynomial[T]) (*Polynomial[T], error) {
	quo, _, err := p.LongDiv(q)

	return quo, err
}

// Rem returns p - (p/q)*q. Over floating point coefficients rounding can
// leave its degree at deg(q); LongDiv's remainder never does.
func (p *Polynomial[T]) Rem(q *Polynomial[T]) (*Polynomial[T], error) {
	quo, err := p.Div(q)
	if err != nil {
		return nil, err
	}

	return p.Sub(quo.Mul(q)), nil
}

// DivMod returns the quotient and the remainder of p by q, with the
// remainder defined as in Rem.
func (p *Polynomial[T]) DivMod(q *Polynomial[T]) (quo, rem *Polynomial[T], err error) {
	quo, err = p.Div(q)
	if err != nil {
		return nil, nil, err
	}

	return quo, p.Sub(quo.Mul(q)), nil
}

// LongDiv divides p by q, returning the quotient and the remainder left by
// the division loop.
//
// Follows Algorithm 2.5 (Polynomial division with remainder) in
// `Modern Computer Algebra` by Joachim von zur Gathen and Jürgen Gerhard:
// while deg(rem) >= deg(q), subtract t*x^(deg(rem)-deg(q))*q where t is the
// ratio of leading coefficients.
func (p *Polynomial[T]) LongDiv(q *Polynomial[T]) (quo, rem *Polynomial[T], err error) {
	f, err := asField(p.r)
	if err != nil {
		return nil, nil, err
	}

	if q.IsZero() {
		return nil, nil, ErrDivisionByZero
	}

	n, m := p.Degree(), q.Degree()
	if n < m {
		return Zero(p.r), p.Copy(), nil
	}

	lead := q.LeadCoeff()

	rem = p.Copy()
	qInner := zeros(p.r, n-m+1)

	for d := rem.Degree(); d >= m; d = rem.Degree() {
		t, err := quoExact(f, rem.coeffs[d], lead)
		if err != nil {
			return nil, nil, err
		}

		shift := d - m

		// rem -= t*x^shift * q. The top coefficient cancels by construction
		// and is cleared explicitly so rounding can't keep it alive.
		for j := 0; j < m; j++ {
			rem.coeffs[shift+j] = f.Sub(rem.coeffs[shift+j], f.Mul(t, q.coeffs[j]))
		}

		rem.coeffs[d] = f.Zero()
		rem.normalize()

		qInner[shift] = f.Add(qInner[shift], t)
	}

	return wrap(p.r, qInner), rem, nil
}
