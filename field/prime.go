package field

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/tuneinsight/lattigo/v6/ring"
	"lukechampine.com/uint128"
)

// PrimeField is Z/pZ for a prime p < 2^63, with elements stored as uint64.
//
// Operations accept unreduced inputs and always return reduced values.
type PrimeField struct {
	prime     uint64
	generator uint64
	factors   []uint64
}

var (
	ErrPrimeTooLarge = errors.New("supporting up to 63-bit prime")
	ErrNotPrime      = errors.New("this package only support prime fields. please use a prime order")

	ErrNTooSmall     = errors.New("n must be at least 2")
	ErrNotPowerOfTwo = errors.New("n must be a power of two")
	ErrNotDivisible  = errors.New("n must divide p-1")
)

const maxBitUsage = 63

/*
NewPrimeField checks that prime is a prime that fits in 63 bits and computes
a generator of its multiplicative group.
*/
func NewPrimeField(prime uint64) (*PrimeField, error) {
	if prime > (1 << maxBitUsage) {
		return nil, ErrPrimeTooLarge
	}

	b := (&big.Int{}).SetUint64(prime)
	// ProbablyPrime is exact for 64-bit numbers (Baillie-PSW), one extra round is enough.
	if !b.ProbablyPrime(1) {
		return nil, ErrNotPrime
	}

	g, factors, err := primitiveRoot(prime)
	if err != nil {
		return nil, err
	}

	return &PrimeField{
		prime:     prime,
		generator: g,
		factors:   factors,
	}, nil
}

// ring.PrimitiveRoot starts its search at 3 and never terminates for p = 2.
func primitiveRoot(prime uint64) (uint64, []uint64, error) {
	switch prime {
	case 2:
		return 1, nil, nil
	case 3:
		return 2, []uint64{2}, nil
	}

	return ring.PrimitiveRoot(prime, nil)
}

func (f *PrimeField) Modulus() uint64 {
	return f.prime
}

// Generator returns a generator of the multiplicative group (Z/pZ)*.
func (f *PrimeField) Generator() uint64 {
	return f.generator
}

// Factors returns the distinct prime factors of p-1.
func (f *PrimeField) Factors() []uint64 {
	return f.factors
}

func (f *PrimeField) ElemSlice(vals []uint64) []uint64 {
	mod := f.prime
	for i, v := range vals {
		vals[i] = v % mod
	}

	return vals
}

func (f *PrimeField) Reduce(val uint64) uint64 {
	return val % f.prime
}

func (f *PrimeField) Zero() uint64 { return 0 }
func (f *PrimeField) One() uint64  { return 1 % f.prime }

func (f *PrimeField) Add(a, b uint64) uint64 {
	a, b = a%f.prime, b%f.prime

	tmp := a + b // can't overflow since adding two integers smaller than 2^63.
	if tmp >= f.prime {
		tmp -= f.prime
	}

	return tmp
}

func (f *PrimeField) Sub(a, b uint64) uint64 {
	a, b = a%f.prime, b%f.prime

	if a < b {
		return f.prime - (b - a)
	}

	return a - b
}

// Mul returns a * b (mod field prime).
func (f *PrimeField) Mul(a, b uint64) uint64 {
	if a == 0 || b == 0 {
		return 0
	}

	return fieldMul(a%f.prime, b%f.prime, f.prime)
}

// a, b < 2^63 so the product fits in 126 bits and Mul64 never overflows.
func fieldMul(a, b uint64, mod uint64) uint64 {
	_, rem := uint128.From64(a).Mul64(b).QuoRem64(mod)

	return rem
}

// https://en.wikipedia.org/wiki/Exponentiation_by_squaring
func (f *PrimeField) Pow(base, exp uint64) uint64 {
	mod := f.prime
	base %= mod

	x := uint64(1)
	for exp > 0 {
		if exp%2 == 1 { // If exponent is odd, multiply base with x
			x = fieldMul(x, base, mod)
		}

		base = fieldMul(base, base, mod) // Square the base
		exp /= 2                         // Halve the exponent
	}

	return x % mod
}

func (f *PrimeField) Inverse(e uint64) uint64 {
	// Fermat's little theorem: a^(p) = a (mod p)
	// thus:
	// a^(p-2)*a^p = a^(2p-2) = a^(p-1)^2 = 1*1=1 (mod p)
	// a^(p-2) is the inverse of a
	if e%f.prime == 0 {
		panic("zero has no inverse")
	}

	return f.Pow(e, f.prime-2)
}

// RootOfUnity returns a primitive n-th root of unity for a power of two n
// dividing p-1.
func (f *PrimeField) RootOfUnity(n uint64) (uint64, error) {
	if n < 2 {
		return 0, ErrNTooSmall
	}

	if !IsPowerOfTwo(n) {
		return 0, ErrNotPowerOfTwo
	}

	if (f.prime-1)%n != 0 {
		return 0, ErrNotDivisible
	}

	// g generates the whole group, so g^((p-1)/n) has order exactly n.
	return f.Pow(f.generator, (f.prime-1)/n), nil
}

func IsPowerOfTwo(n uint64) bool {
	// https://graphics.stanford.edu/~seander/bithacks.html#DetermineIfPowerOf2
	return n != 0 && (n&(n-1)) == 0
}

// Quo returns a * b^-1. Panics if b is zero.
func (f *PrimeField) Quo(a, b uint64) uint64 {
	return f.Mul(a, f.Inverse(b))
}

func (f *PrimeField) Neg(e uint64) uint64 {
	e %= f.prime
	if e == 0 {
		return 0
	}

	return (f.prime - e)
}

func (f *PrimeField) Equal(a, b uint64) bool {
	mod := f.prime
	return (a % mod) == (b % mod)
}

// Sign uses the symmetric representation (-p/2, p/2]: elements above p/2
// are negative, so p-1 is rendered as -1.
func (f *PrimeField) Sign(a uint64) int {
	a %= f.prime

	switch {
	case a == 0:
		return 0
	case a > f.prime/2:
		return -1
	default:
		return 1
	}
}

// Parse accepts decimal integers, negative values are mapped to p - |v|.
func (f *PrimeField) Parse(s string) (uint64, error) {
	neg := strings.HasPrefix(s, "-")

	v, err := strconv.ParseUint(strings.TrimPrefix(s, "-"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing element of F_%d: %w", f.prime, err)
	}

	if neg {
		return f.Neg(v), nil
	}

	return f.Reduce(v), nil
}

func (f *PrimeField) Text(a uint64) string {
	if f.Sign(a) < 0 {
		return "-" + strconv.FormatUint(f.Neg(a), 10)
	}

	return strconv.FormatUint(f.Reduce(a), 10)
}
