package poly

// Gcd returns the monic greatest common divisor of p and q using the
// Euclidean algorithm. The coefficient ring must be a field.
//
// Conventions:
//   - coprime inputs, including a non-zero constant operand, give 1;
//   - Gcd(0, q) is q made monic, and Gcd(0, 0) is 0.
func Gcd[T any](p, q *Polynomial[T]) (*Polynomial[T], error) {
	f, err := asField(p.r)
	if err != nil {
		return nil, err
	}

	first, second := p, q
	if first.Degree() < second.Degree() {
		first, second = second, first
	}

	if first.IsZero() {
		return Zero(p.r), nil
	}

	// deg(rem) < deg(second) holds for LongDiv even with rounding.
	for second.Degree() > 0 {
		_, rem, err := first.LongDiv(second)
		if err != nil {
			return nil, err
		}

		first, second = second, rem // gcd(A, B) = gcd(B, A mod B)
	}

	if !second.IsZero() {
		// a non-zero constant remainder: nothing in common.
		return NewConstant(p.r, f.One()), nil
	}

	return first.Monic()
}

// Monic divides every coefficient by the leading one. The zero polynomial
// is returned unchanged.
func (p *Polynomial[T]) Monic() (*Polynomial[T], error) {
	f, err := asField(p.r)
	if err != nil {
		return nil, err
	}

	if p.IsZero() {
		return Zero(p.r), nil
	}

	lead := p.LeadCoeff()

	out := make([]T, len(p.coeffs))
	for i, c := range p.coeffs {
		if out[i], err = quoExact(f, c, lead); err != nil {
			return nil, err
		}
	}

	return wrap(p.r, out), nil
}

// PartialExtendedEuclidean runs the extended Euclidean algorithm on a and b
// until the running remainder drops below stopDegree (or b reaches zero).
// It returns r, x, y such that a*x + b*y = r.
//
// With stopDegree 0 the result is a full (non-monic) gcd with its Bézout
// coefficients.
func PartialExtendedEuclidean[T any](a, b *Polynomial[T], stopDegree int) (gcd, x, y *Polynomial[T], err error) {
	if _, err := asField(a.r); err != nil {
		return nil, nil, nil, err
	}

	r := a.r
	// Work on local copies ensuring inputs aren't mutated.
	A := a.Copy()
	B := b.Copy()

	// Invariants:
	//   A = x0*a_orig + y0*b_orig
	//   B = x1*a_orig + y1*b_orig
	x0 := NewConstant(r, r.One())
	x1 := Zero(r)
	y0 := Zero(r)
	y1 := NewConstant(r, r.One())

	for A.Degree() >= stopDegree {
		// If B == 0, can't divide further.
		if B.IsZero() {
			break
		}

		// A = q*B + rem
		q, rem, err := A.LongDiv(B)
		if err != nil {
			return nil, nil, nil, err
		}

		A, B = B, rem

		// following Bézout's identity:
		// (x0, x1) = (x1, x0 - q*x1)
		x0, x1 = x1, x0.Sub(q.Mul(x1))
		// (y0, y1) = (y1, y0 - q*y1)
		y0, y1 = y1, y0.Sub(q.Mul(y1))
	}

	return A, x0, y0, nil
}

// ExtendedGcd returns the monic gcd g of a and b together with x, y such
// that a*x + b*y = g.
func ExtendedGcd[T any](a, b *Polynomial[T]) (g, x, y *Polynomial[T], err error) {
	if a.IsZero() {
		// the loop would stop right away with r = a.
		g, y, x, err = PartialExtendedEuclidean(b, a, 0)
	} else {
		g, x, y, err = PartialExtendedEuclidean(a, b, 0)
	}

	if err != nil || g.IsZero() {
		return g, x, y, err
	}

	f, _ := asField(a.r)

	inv, err := quoExact(f, f.One(), g.LeadCoeff())
	if err != nil {
		return nil, nil, nil, err
	}

	return g.ScalarMul(inv), x.ScalarMul(inv), y.ScalarMul(inv), nil
}
