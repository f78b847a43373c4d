package field

import (
	"fmt"
	"strconv"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Integers is the ring of machine integers of type T.
//
// Quo truncates towards zero, so it is only an exact division when the
// divisor divides the dividend. Polynomial division reports the inexact
// case instead of looping.
type Integers[T constraints.Integer] struct{}

func (Integers[T]) Zero() T           { return 0 }
func (Integers[T]) One() T            { return 1 }
func (Integers[T]) Equal(a, b T) bool { return a == b }
func (Integers[T]) Add(a, b T) T      { return a + b }
func (Integers[T]) Sub(a, b T) T      { return a - b }
func (Integers[T]) Mul(a, b T) T      { return a * b }
func (Integers[T]) Neg(a T) T         { return -a }

// Quo panics on b == 0, like the built-in operator.
func (Integers[T]) Quo(a, b T) T { return a / b }

// Divides reports whether b is a non-zero exact divisor of a.
func (Integers[T]) Divides(a, b T) bool { return b != 0 && a%b == 0 }

func (Integers[T]) Sign(a T) int { return sign(a) }

// Parse rejects values that do not fit in T.
func (Integers[T]) Parse(s string) (T, error) {
	var zero T

	bits := bitSize(zero)
	if ^zero < 0 {
		v, err := strconv.ParseInt(s, 10, bits)
		if err != nil {
			return zero, err
		}

		return T(v), nil
	}

	v, err := strconv.ParseUint(s, 10, bits)
	if err != nil {
		return zero, err
	}

	return T(v), nil
}

func (Integers[T]) Text(a T) string { return fmt.Sprint(a) }

// Reals is the field of floating point numbers of type T.
// Results are subject to the usual rounding errors.
type Reals[T constraints.Float] struct{}

func (Reals[T]) Zero() T           { return 0 }
func (Reals[T]) One() T            { return 1 }
func (Reals[T]) Equal(a, b T) bool { return a == b }
func (Reals[T]) Add(a, b T) T      { return a + b }
func (Reals[T]) Sub(a, b T) T      { return a - b }
func (Reals[T]) Mul(a, b T) T      { return a * b }
func (Reals[T]) Neg(a T) T         { return -a }
func (Reals[T]) Quo(a, b T) T      { return a / b }
func (Reals[T]) Sign(a T) int      { return sign(a) }

func (Reals[T]) Parse(s string) (T, error) {
	v, err := strconv.ParseFloat(s, bitSize(T(0)))
	if err != nil {
		return 0, err
	}

	return T(v), nil
}

func (Reals[T]) Text(a T) string {
	// shortest form that round trips through T, not through float64.
	return strconv.FormatFloat(float64(a), 'g', -1, bitSize(a))
}

func bitSize[T constraints.Integer | constraints.Float](a T) int {
	return int(unsafe.Sizeof(a)) * 8
}

func sign[T constraints.Integer | constraints.Float](a T) int {
	switch {
	case a > 0:
		return 1
	case a < 0:
		return -1
	default:
		return 0
	}
}
