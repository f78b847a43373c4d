// Package gao implements a Reed-Solomon code over a prime field, decoded
// with Gao's algorithm ("A New Algorithm for Decoding Reed-Solomon Codes").
package gao

import (
	"errors"
	"fmt"

	poly "github.com/jonathanmweiss/go-poly"
	"github.com/jonathanmweiss/go-poly/field"
	log "github.com/sirupsen/logrus"
)

type Coder interface {
	EvaluationMap

	// redundancy value
	N() int

	// data size
	K() int

	// maximum number of errors that can be corrected.
	MaxErrors() int
}

type Decoder interface {
	Coder
	Decode(encodedData map[uint64]uint64) ([]uint64, error)
}

type Encoder interface {
	Coder
	Encode(data []uint64) (map[uint64]uint64, error)
}

type CodeParams struct {
	EvaluationMap
	n         int
	k         int
	maxErrors int
}

type Code struct {
	CodeParams
	// g0 polynomial from the Gao code, the locator of the evaluation points.
	g0 *poly.Polynomial[uint64]

	stopDegree int
}

func (c *CodeParams) N() int {
	return c.n
}

func (c *CodeParams) K() int {
	return c.k
}

func (c *CodeParams) MaxErrors() int {
	return c.maxErrors
}

var (
	ErrNSmallerThanK = errors.New("redundancy value `n` must be greater than or equal to data size `k`")
	ErrFieldTooSmall = errors.New("field has fewer than `n` distinct evaluation points")
	ErrUnsupportedN  = errors.New("evaluation map cannot produce `n` points")
)

// pointSupporter is implemented by evaluation maps that only work for some n.
type pointSupporter interface {
	Supports(n int) error
}

func NewCodeParameters(e EvaluationMap, n, k int) (CodeParams, error) {
	if n < k {
		return CodeParams{}, ErrNSmallerThanK
	}

	if uint64(n) >= e.PrimeField().Modulus() {
		return CodeParams{}, ErrFieldTooSmall
	}

	if s, ok := e.(pointSupporter); ok {
		if err := s.Supports(n); err != nil {
			return CodeParams{}, fmt.Errorf("%w: %w", ErrUnsupportedN, err)
		}
	}

	return CodeParams{
		EvaluationMap: e,
		n:             n,
		k:             k,
		maxErrors:     (n - k) / 2,
	}, nil
}

func NewCodeGao(c CodeParams) *Code {
	// create g0(x) = (x - x_1)(x - x_2)...(x - x_n)
	return &Code{
		CodeParams: c,
		g0:         c.EvaluationMap.GenerateLocatorPolynomial(c.N()),
		stopDegree: (c.N() + c.K()) / 2,
	}
}

func (gao *Code) Copy() *Code {
	return &Code{
		CodeParams: gao.CodeParams,
		g0:         gao.g0.Copy(),
		stopDegree: gao.stopDegree,
	}
}

var (
	ErrDataTooLarge         = errors.New("data too large")
	ErrDataElementsTooLarge = errors.New("data elements too large")
)

// Encode treats data as the coefficients of a polynomial of degree < k and
// returns its evaluations, keyed by evaluation point.
func (gao *Code) Encode(data []uint64) (map[uint64]uint64, error) {
	f := gao.PrimeField()

	q := f.Modulus()
	for _, d := range data {
		if d >= q {
			return nil, ErrDataElementsTooLarge
		}
	}

	// check data length.
	if len(data) > gao.K() {
		return nil, ErrDataTooLarge
	}

	// create polynomial from data and evaluate it at n points.
	p := poly.New[uint64](f, data)
	ys := gao.EvaluationMap.EvaluatePolynomial(p, gao.N())

	// create map of points.
	xs := gao.EvaluationMap.EvaluationPoints(gao.N())
	points := make(map[uint64]uint64, gao.N())

	for i, y := range ys {
		points[xs[i]] = y
	}

	return points, nil
}

var (
	ErrTooManyMissingPoints = errors.New("too many missing points")
	ErrTooManyPoints        = errors.New("too many evaluated points")
	ErrDecoding             = errors.New("decoding error")
)

// Decode recovers the k data symbols from received evaluations. Missing
// points count as errors; up to MaxErrors() of them can be corrected.
// The input map is not modified.
func (gao *Code) Decode(received map[uint64]uint64) ([]uint64, error) {
	xs, ys, err := gao.prepareDecoding(received)
	if err != nil {
		return nil, err
	}

	f := gao.PrimeField()

	g1, err := poly.Interpolate[uint64](f, xs, ys)
	if err != nil {
		return nil, err
	}

	g, _, v, err := poly.PartialExtendedEuclidean(gao.g0, g1, gao.stopDegree)
	if err != nil {
		return nil, err
	}

	data, r, err := g.DivMod(v)
	if err != nil {
		log.WithError(err).Debug("gao: dividing by the error locator failed")
		return nil, ErrDecoding
	}

	if !r.IsZero() || data.Degree() >= gao.K() {
		log.WithFields(log.Fields{
			"n":         gao.N(),
			"k":         gao.K(),
			"remainder": r.String(),
			"degree":    data.Degree(),
		}).Debug("gao: too many errors to decode")

		return nil, ErrDecoding
	}

	// data symbols that were zero at the top were trimmed by the polynomial.
	out := make([]uint64, gao.K())
	copy(out, data.ToSlice())

	return out, nil
}

/*
prepare the decoding process by filling in missing evaluated points with zeros.
*/
func (gao *Code) prepareDecoding(toDecode map[uint64]uint64) ([]uint64, []uint64, error) {
	if len(toDecode) > gao.N() {
		return nil, nil, ErrTooManyPoints
	}

	numMissing := 0

	xs := gao.EvaluationMap.EvaluationPoints(gao.N())
	ys := make([]uint64, gao.N())

	for i, x := range xs {
		y, ok := toDecode[x]
		if !ok {
			numMissing++
		}

		ys[i] = y // according to the order of the EvaluationMap's EvaluationPoints.
	}

	if numMissing > gao.MaxErrors() {
		log.WithField("missing", numMissing).Debug("gao: too many erasures")
		return nil, nil, ErrTooManyMissingPoints
	}

	return xs, ys, nil
}
