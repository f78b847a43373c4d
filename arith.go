package poly

import "github.com/jonathanmweiss/go-poly/field"

// Add returns p + q.
func (p *Polynomial[T]) Add(q *Polynomial[T]) *Polynomial[T] {
	r := p.r
	n := max(len(p.coeffs), len(q.coeffs))

	out := make([]T, n)
	for i := range out {
		out[i] = r.Add(p.Coefficient(i), q.Coefficient(i))
	}

	return wrap(r, out)
}

// Sub returns p - q.
func (p *Polynomial[T]) Sub(q *Polynomial[T]) *Polynomial[T] {
	r := p.r
	n := max(len(p.coeffs), len(q.coeffs))

	out := make([]T, n)
	for i := range out {
		out[i] = r.Sub(p.Coefficient(i), q.Coefficient(i))
	}

	return wrap(r, out)
}

// AddInPlace sets p = p + q and returns p.
func (p *Polynomial[T]) AddInPlace(q *Polynomial[T]) *Polynomial[T] {
	r := p.r
	p.grow(len(q.coeffs))

	for i := range p.coeffs {
		p.coeffs[i] = r.Add(p.coeffs[i], q.Coefficient(i))
	}

	p.normalize()

	return p
}

// SubInPlace sets p = p - q and returns p.
func (p *Polynomial[T]) SubInPlace(q *Polynomial[T]) *Polynomial[T] {
	r := p.r
	p.grow(len(q.coeffs))

	for i := range p.coeffs {
		p.coeffs[i] = r.Sub(p.coeffs[i], q.Coefficient(i))
	}

	p.normalize()

	return p
}

// Mul returns p * q using schoolbook convolution, O(n*m).
func (p *Polynomial[T]) Mul(q *Polynomial[T]) *Polynomial[T] {
	r := p.r
	if p.IsZero() || q.IsZero() {
		return Zero(r)
	}

	out := zeros(r, len(p.coeffs)+len(q.coeffs)-1)

	// out[i+j] += p[i] * q[j]
	for i, pi := range p.coeffs {
		if field.IsZero(r, pi) {
			continue
		}

		for j, qj := range q.coeffs {
			out[i+j] = r.Add(out[i+j], r.Mul(pi, qj))
		}
	}

	// a ring with zero divisors (e.g. Z/4Z) can still cancel the top term.
	return wrap(r, out)
}

// MulInPlace sets p = p * q and returns p.
func (p *Polynomial[T]) MulInPlace(q *Polynomial[T]) *Polynomial[T] {
	p.coeffs = p.Mul(q).coeffs

	return p
}

// Neg returns -p.
func (p *Polynomial[T]) Neg() *Polynomial[T] {
	out := make([]T, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = p.r.Neg(c)
	}

	return wrap(p.r, out)
}

// ScalarMul returns c * p.
func (p *Polynomial[T]) ScalarMul(c T) *Polynomial[T] {
	out := make([]T, len(p.coeffs))
	for i, pi := range p.coeffs {
		out[i] = p.r.Mul(c, pi)
	}

	return wrap(p.r, out)
}

// Derivative returns the formal derivative sum i*c_i*x^(i-1).
func (p *Polynomial[T]) Derivative() *Polynomial[T] {
	if len(p.coeffs) <= 1 {
		return Zero(p.r)
	}

	out := make([]T, len(p.coeffs)-1)
	for i := 1; i < len(p.coeffs); i++ {
		out[i-1] = timesInt(p.r, p.coeffs[i], i)
	}

	return wrap(p.r, out)
}

// timesInt computes a+a+...+a (k times) by doubling.
func timesInt[T any](r field.Ring[T], a T, k int) T {
	acc := r.Zero()
	for k > 0 {
		if k&1 == 1 {
			acc = r.Add(acc, a)
		}

		a = r.Add(a, a)
		k >>= 1
	}

	return acc
}

// Eval returns p(x) using Horner's rule.
func (p *Polynomial[T]) Eval(x T) T {
	r := p.r

	result := r.Zero()
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		result = r.Add(p.coeffs[i], r.Mul(result, x))
	}

	return result
}

// EvalMany evaluates p at every point of xs.
func (p *Polynomial[T]) EvalMany(xs []T) []T {
	values := make([]T, len(xs))
	for i, x := range xs {
		values[i] = p.Eval(x)
	}

	return values
}

// Compose returns p(q(x)).
//
// Each non-zero term c_i*x^i of p contributes c_i*q^i. Powers of q are built
// incrementally, so the cost is deg(p) multiplications by q, each bounded by
// O(deg(p)*deg(q)*deg(q)).
func (p *Polynomial[T]) Compose(q *Polynomial[T]) *Polynomial[T] {
	r := p.r
	composition := Zero(r)
	power := NewConstant(r, r.One())

	for i, c := range p.coeffs {
		if !field.IsZero(r, c) {
			composition.AddInPlace(power.ScalarMul(c))
		}

		if i < len(p.coeffs)-1 {
			power = power.Mul(q)
		}
	}

	return composition
}
