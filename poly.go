package poly

import (
	"iter"

	"github.com/jonathanmweiss/go-poly/field"
)

/*
Polynomial is a dense univariate polynomial with coefficients in a ring.

Coefficients are ordered from lowest to highest degree
(e.g. [1, 2, 3] is 1 + 2x + 3x^2) and never carry trailing zeros, so the
zero polynomial has no coefficients at all.

A Polynomial owns its coefficients: constructors copy their input, and
every non in-place operation returns a fresh value. The in-place
operations (AddInPlace, SubInPlace, MulInPlace) are not safe for
concurrent use on the same receiver.
*/
type Polynomial[T any] struct {
	r      field.Ring[T]
	coeffs []T
}

// New copies coeffs into a polynomial over r.
func New[T any](r field.Ring[T], coeffs []T) *Polynomial[T] {
	inner := make([]T, len(coeffs))
	copy(inner, coeffs)

	return wrap(r, inner)
}

// NewConstant returns the constant polynomial c.
func NewConstant[T any](r field.Ring[T], c T) *Polynomial[T] {
	if field.IsZero(r, c) {
		return Zero(r)
	}

	return &Polynomial[T]{r: r, coeffs: []T{c}}
}

// FromSeq consumes seq, in ascending degree order, into a polynomial.
func FromSeq[T any](r field.Ring[T], seq iter.Seq[T]) *Polynomial[T] {
	var inner []T
	for c := range seq {
		inner = append(inner, c)
	}

	return wrap(r, inner)
}

// Zero returns the zero polynomial over r.
func Zero[T any](r field.Ring[T]) *Polynomial[T] {
	return &Polynomial[T]{r: r}
}

// Monomial returns c*x^degree.
func Monomial[T any](r field.Ring[T], c T, degree int) *Polynomial[T] {
	if degree < 0 {
		panic("negative monomial degree")
	}

	inner := zeros(r, degree+1)
	inner[degree] = c

	return wrap(r, inner)
}

// wrap takes ownership of inner.
func wrap[T any](r field.Ring[T], inner []T) *Polynomial[T] {
	p := &Polynomial[T]{r: r, coeffs: inner}
	p.normalize()

	return p
}

func zeros[T any](r field.Ring[T], n int) []T {
	inner := make([]T, n)
	for i := range inner {
		inner[i] = r.Zero()
	}

	return inner
}

// normalize removes trailing zero coefficients. Every constructor and every
// in-place operation ends with it.
func (p *Polynomial[T]) normalize() {
	i := len(p.coeffs) - 1
	for i >= 0 && field.IsZero(p.r, p.coeffs[i]) {
		i--
	}

	p.coeffs = p.coeffs[:i+1]
}

// grow extends the coefficient slice to n entries, padding with zeros.
func (p *Polynomial[T]) grow(n int) {
	if len(p.coeffs) >= n {
		return
	}

	tmp := zeros(p.r, n)
	copy(tmp, p.coeffs)
	p.coeffs = tmp
}

// Ring returns the coefficient ring.
func (p *Polynomial[T]) Ring() field.Ring[T] {
	return p.r
}

// Degree returns the index of the highest non-zero coefficient, or -1 for
// the zero polynomial.
func (p *Polynomial[T]) Degree() int {
	// no trailing zeros, so the last stored coefficient is the leading one.
	return len(p.coeffs) - 1
}

// Len is the number of stored coefficients, Degree()+1.
func (p *Polynomial[T]) Len() int {
	return len(p.coeffs)
}

func (p *Polynomial[T]) IsZero() bool {
	return len(p.coeffs) == 0
}

// Coefficient returns the coefficient of x^degree. Degrees outside the
// stored range, negative ones included, have coefficient zero.
func (p *Polynomial[T]) Coefficient(degree int) T {
	if degree < 0 || degree >= len(p.coeffs) {
		return p.r.Zero()
	}

	return p.coeffs[degree]
}

// LeadCoeff returns the coefficient of the highest degree term, zero for the
// zero polynomial.
func (p *Polynomial[T]) LeadCoeff() T {
	return p.Coefficient(p.Degree())
}

func (p *Polynomial[T]) Equal(q *Polynomial[T]) bool {
	d := p.Degree()
	if d != q.Degree() {
		return false
	}

	for ; d >= 0; d-- {
		if !p.r.Equal(p.Coefficient(d), q.Coefficient(d)) {
			return false
		}
	}

	return true
}

func (p *Polynomial[T]) NotEqual(q *Polynomial[T]) bool {
	return !p.Equal(q)
}

func (p *Polynomial[T]) Copy() *Polynomial[T] {
	innercopy := make([]T, len(p.coeffs))
	copy(innercopy, p.coeffs)

	return &Polynomial[T]{r: p.r, coeffs: innercopy}
}

// ToSlice returns a copy of the coefficients, lowest degree first.
func (p *Polynomial[T]) ToSlice() []T {
	list := make([]T, len(p.coeffs))
	copy(list, p.coeffs)

	return list
}

// Coefficients iterates over the stored coefficients in ascending degree
// order. The sequence can be ranged over any number of times. Values must
// not be modified through it.
func (p *Polynomial[T]) Coefficients() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, c := range p.coeffs {
			if !yield(c) {
				return
			}
		}
	}
}

// All iterates over (degree, coefficient) pairs in ascending degree order.
func (p *Polynomial[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, c := range p.coeffs {
			if !yield(i, c) {
				return
			}
		}
	}
}

func (p *Polynomial[T]) String() string {
	return Format(p)
}
