package cli

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	poly "github.com/jonathanmweiss/go-poly"
	"github.com/jonathanmweiss/go-poly/field"
	log "github.com/sirupsen/logrus"
)

var (
	errUnknownRing      = errors.New("unknown ring")
	errUnknownOperation = errors.New("unknown operation")
	errArgCount         = errors.New("wrong number of arguments")
)

// Rings lists the coefficient domains accepted by --ring.
var Rings = []string{"int", "float", "rat", "mod", "bls12-377"}

// domain is a coefficient field whose elements can be read from and written
// to the command line.
type domain[T any] interface {
	field.Field[T]
	field.Parser[T]
}

// operation arities, keyed by subcommand name.
var arity = map[string]int{
	"format":      1,
	"add":         2,
	"sub":         2,
	"mul":         2,
	"div":         2,
	"rem":         2,
	"gcd":         2,
	"compose":     2,
	"eval":        2,
	"degree":      1,
	"deriv":       1,
	"interpolate": 2,
}

// Run performs op on args in the ring selected by cfg and writes the result
// to out.
func Run(cfg Config, op string, args []string, out io.Writer) error {
	n, ok := arity[op]
	if !ok {
		return fmt.Errorf("%w: %s", errUnknownOperation, op)
	}

	if len(args) != n {
		return fmt.Errorf("%w: %s takes %d, got %d", errArgCount, op, n, len(args))
	}

	log.WithFields(log.Fields{"ring": cfg.Ring, "op": op}).Debug("running")

	switch cfg.Ring {
	case "int":
		return runIn[int64](field.Integers[int64]{}, op, args, out)
	case "float":
		return runIn[float64](field.Reals[float64]{}, op, args, out)
	case "rat":
		return runIn[*big.Rat](field.Rationals{}, op, args, out)
	case "mod":
		f, err := field.NewPrimeField(cfg.Modulus)
		if err != nil {
			return fmt.Errorf("modulus %d: %w", cfg.Modulus, err)
		}

		return runIn[uint64](f, op, args, out)
	case "bls12-377":
		return runIn[fr.Element](field.BLS12377{}, op, args, out)
	default:
		return fmt.Errorf("%w: %q (want one of %s)", errUnknownRing, cfg.Ring, strings.Join(Rings, ", "))
	}
}

func runIn[T any](d domain[T], op string, args []string, out io.Writer) error {
	if op == "interpolate" {
		xs, err := parseList(d, args[0])
		if err != nil {
			return err
		}

		ys, err := parseList(d, args[1])
		if err != nil {
			return err
		}

		p, err := poly.Interpolate[T](d, xs, ys)
		if err != nil {
			return err
		}

		return writeLine(out, p)
	}

	p, err := parsePoly(d, args[0])
	if err != nil {
		return err
	}

	switch op {
	case "format":
		return writeLine(out, p)
	case "degree":
		return writeLine(out, p.Degree())
	case "deriv":
		return writeLine(out, p.Derivative())
	case "eval":
		x, err := d.Parse(strings.TrimSpace(args[1]))
		if err != nil {
			return err
		}

		return writeLine(out, d.Text(p.Eval(x)))
	}

	q, err := parsePoly(d, args[1])
	if err != nil {
		return err
	}

	var res *poly.Polynomial[T]

	switch op {
	case "add":
		res = p.Add(q)
	case "sub":
		res = p.Sub(q)
	case "mul":
		res = p.Mul(q)
	case "compose":
		res = p.Compose(q)
	case "div":
		res, err = p.Div(q)
	case "rem":
		res, err = p.Rem(q)
	case "gcd":
		res, err = poly.Gcd(p, q)
	default:
		return fmt.Errorf("%w: %s", errUnknownOperation, op)
	}

	if err != nil {
		return err
	}

	return writeLine(out, res)
}

// parsePoly reads ascending coefficients separated by commas. An empty list
// is the zero polynomial.
func parsePoly[T any](d domain[T], s string) (*poly.Polynomial[T], error) {
	coeffs, err := parseList(d, s)
	if err != nil {
		return nil, err
	}

	return poly.New[T](d, coeffs), nil
}

func parseList[T any](d domain[T], s string) ([]T, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	fields := strings.Split(s, ",")
	vals := make([]T, len(fields))

	for i, f := range fields {
		v, err := d.Parse(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("coefficient %d: %w", i, err)
		}

		vals[i] = v
	}

	return vals, nil
}

func writeLine(out io.Writer, v any) error {
	_, err := fmt.Fprintln(out, v)
	return err
}
