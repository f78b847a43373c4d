package field

import (
	"errors"
	"fmt"
	"math/big"
)

// Rationals is the field Q over *big.Rat.
//
// Elements are treated as immutable: every operation allocates its result
// and never writes into an argument.
type Rationals struct{}

var errBadRational = errors.New("malformed rational")

// Rat is a convenience constructor for num/den.
func Rat(num, den int64) *big.Rat {
	return big.NewRat(num, den)
}

func (Rationals) Zero() *big.Rat { return new(big.Rat) }
func (Rationals) One() *big.Rat  { return big.NewRat(1, 1) }

// Equal treats a nil pointer as zero.
func (Rationals) Equal(a, b *big.Rat) bool {
	return orZero(a).Cmp(orZero(b)) == 0
}

func (Rationals) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(orZero(a), orZero(b)) }
func (Rationals) Sub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(orZero(a), orZero(b)) }
func (Rationals) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(orZero(a), orZero(b)) }
func (Rationals) Neg(a *big.Rat) *big.Rat    { return new(big.Rat).Neg(orZero(a)) }

// Quo panics if b is zero (math/big semantics).
func (Rationals) Quo(a, b *big.Rat) *big.Rat { return new(big.Rat).Quo(orZero(a), orZero(b)) }

func (Rationals) Sign(a *big.Rat) int { return orZero(a).Sign() }

// Parse accepts "3", "-2/3" or decimal notation such as "0.25".
func (Rationals) Parse(s string) (*big.Rat, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("%w: %q", errBadRational, s)
	}

	return r, nil
}

// Text renders integers without a denominator.
func (Rationals) Text(a *big.Rat) string {
	return orZero(a).RatString()
}

func orZero(a *big.Rat) *big.Rat {
	if a == nil {
		return new(big.Rat)
	}

	return a
}
