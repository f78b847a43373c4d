package poly

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathanmweiss/go-poly/field"
)

// Format renders p with terms in descending degree, e.g. 2*x^2-x+3.
//
// Zero terms are omitted, unit coefficients are elided on x and x^k, and a
// '+' separates positive terms. Signs come from the ring's field.Ordered
// implementation (all coefficients are positive otherwise) and coefficient
// text from field.Parser (fmt.Sprint otherwise). The zero polynomial is "0".
func Format[T any](p *Polynomial[T]) string {
	if p.IsZero() {
		return "0"
	}

	r := p.r
	text := textOf(r)
	sign := signOf(r)

	one := r.One()
	minusOne := r.Neg(one)
	// in unsigned rings -1 wraps around and is not rendered as such.
	hasMinusOne := sign(minusOne) < 0

	bldr := strings.Builder{}

	deg := p.Degree()
	for i := deg; i >= 0; i-- {
		c := p.coeffs[i]
		if field.IsZero(r, c) {
			continue
		}

		switch {
		case i > 0 && r.Equal(c, one):
			if i != deg {
				bldr.WriteString("+")
			}
		case i > 0 && hasMinusOne && r.Equal(c, minusOne):
			bldr.WriteString("-")
		default:
			if i != deg && sign(c) > 0 {
				bldr.WriteString("+")
			}

			bldr.WriteString(text(c))

			if i > 0 {
				bldr.WriteString("*")
			}
		}

		switch {
		case i > 1:
			bldr.WriteString("x^")
			bldr.WriteString(strconv.Itoa(i))
		case i == 1:
			bldr.WriteString("x")
		}
	}

	return bldr.String()
}

func textOf[T any](r field.Ring[T]) func(T) string {
	if prs, ok := r.(field.Parser[T]); ok {
		return prs.Text
	}

	return func(c T) string { return fmt.Sprint(c) }
}

func signOf[T any](r field.Ring[T]) func(T) int {
	if ord, ok := r.(field.Ordered[T]); ok {
		return ord.Sign
	}

	return func(c T) int {
		if field.IsZero(r, c) {
			return 0
		}

		return 1
	}
}
