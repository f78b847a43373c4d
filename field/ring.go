package field

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// Ring is the coefficient arithmetic a polynomial needs for addition,
// subtraction, multiplication, evaluation and composition.
//
// The ring value carries the operators, so T can be any type: a machine
// number, a *big.Rat, or a field element.
type Ring[T any] interface {
	Zero() T
	One() T
	Equal(a, b T) bool

	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
	Neg(a T) T
}

// Field adds division to Ring. Division-family polynomial operations
// (quotient, remainder, gcd, interpolation) require it.
type Field[T any] interface {
	Ring[T]

	// Quo returns a / b. Division by zero behaves the way the underlying
	// type does (panic, zero, Inf...).
	Quo(a, b T) T
}

// ExactDivider is implemented by rings whose Quo truncates. Divides
// reports whether a / b leaves no remainder.
type ExactDivider[T any] interface {
	Divides(a, b T) bool
}

// Ordered is implemented by rings whose elements have a sign.
// It is only used for rendering.
type Ordered[T any] interface {
	// Sign returns -1, 0 or +1.
	Sign(a T) int
}

// Parser converts elements from and to their textual form.
type Parser[T any] interface {
	Parse(s string) (T, error)
	Text(a T) string
}

// IsZero reports whether a is the additive identity of r.
func IsZero[T any](r Ring[T], a T) bool {
	return r.Equal(a, r.Zero())
}

var (
	_ Field[int64]      = Integers[int64]{}
	_ Field[float64]    = Reals[float64]{}
	_ Field[*big.Rat]   = Rationals{}
	_ Field[uint64]     = (*PrimeField)(nil)
	_ Field[fr.Element] = BLS12377{}

	_ ExactDivider[int64] = Integers[int64]{}
)
