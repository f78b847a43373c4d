package field

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// BLS12377 is the scalar field of the BLS12-377 curve, backed by gnark-crypto.
//
// fr.Element is a value type, so coefficients never alias each other.
type BLS12377 struct{}

// Elem returns v as a field element.
func (BLS12377) Elem(v int64) fr.Element {
	var e fr.Element
	e.SetInt64(v)

	return e
}

func (BLS12377) Zero() fr.Element { return fr.Element{} }

func (BLS12377) One() fr.Element {
	return fr.One()
}

func (BLS12377) Equal(a, b fr.Element) bool { return a.Equal(&b) }

// Add x + y
func (BLS12377) Add(a, b fr.Element) fr.Element {
	var c fr.Element
	c.Add(&a, &b)

	return c
}

// Sub x - y
func (BLS12377) Sub(a, b fr.Element) fr.Element {
	var c fr.Element
	c.Sub(&a, &b)

	return c
}

// Mul x * y
func (BLS12377) Mul(a, b fr.Element) fr.Element {
	var c fr.Element
	c.Mul(&a, &b)

	return c
}

func (BLS12377) Neg(a fr.Element) fr.Element {
	var c fr.Element
	c.Neg(&a)

	return c
}

// Quo returns a * b⁻¹. gnark-crypto defines 0⁻¹ = 0, so dividing by zero
// yields zero rather than a panic.
func (BLS12377) Quo(a, b fr.Element) fr.Element {
	var c fr.Element
	c.Inverse(&b)
	c.Mul(&a, &c)

	return c
}

// Sign treats the upper half of the field, (q-1)/2 < x < q, as negative.
func (BLS12377) Sign(a fr.Element) int {
	switch {
	case a.IsZero():
		return 0
	case a.LexicographicallyLargest():
		return -1
	default:
		return 1
	}
}

func (BLS12377) Parse(s string) (fr.Element, error) {
	var e fr.Element
	if _, err := e.SetString(s); err != nil {
		return fr.Element{}, fmt.Errorf("parsing bls12-377 element %q: %w", s, err)
	}

	return e, nil
}

func (f BLS12377) Text(a fr.Element) string {
	if f.Sign(a) < 0 {
		n := f.Neg(a)
		return "-" + n.Text(10)
	}

	return a.Text(10)
}
