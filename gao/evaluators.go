package gao

import (
	"sync"

	poly "github.com/jonathanmweiss/go-poly"
	"github.com/jonathanmweiss/go-poly/field"
)

// EvaluationMap picks the n distinct points a codeword is evaluated at.
type EvaluationMap interface {
	// has access to a specific prime field.
	PrimeField() *field.PrimeField
	// returns the n evaluation points, in codeword order.
	EvaluationPoints(n int) (xs []uint64)
	// evaluates p at the n evaluation points.
	EvaluatePolynomial(p *poly.Polynomial[uint64], n int) (ys []uint64)

	// The locator polynomial for the evaluation points.
	// Namely, given the evaluation points x_1, ..., x_n, the locator polynomial is
	// L(x) = (x - x_1)(x - x_2)...(x - x_n)
	GenerateLocatorPolynomial(n int) *poly.Polynomial[uint64]
}

type evaluationCache struct {
	sync.Locker
	degreeToPoints map[int][]uint64
}

func newEvaluatorCache() *evaluationCache {
	return &evaluationCache{
		Locker:         &sync.Mutex{},
		degreeToPoints: make(map[int][]uint64),
	}
}

func (e *evaluationCache) storePoints(n int, points []uint64) {
	e.Lock()
	defer e.Unlock()

	if _, ok := e.degreeToPoints[n]; ok {
		return
	}

	e.degreeToPoints[n] = points
}

func (e *evaluationCache) loadPoints(n int) []uint64 {
	e.Lock()
	defer e.Unlock()

	if points, ok := e.degreeToPoints[n]; ok {
		return points
	}

	return nil
}

// evaluator holds what both evaluation maps share, only the choice of points differs.
type evaluator struct {
	cache  *evaluationCache
	f      *field.PrimeField
	points func(n int) []uint64
}

func (e *evaluator) PrimeField() *field.PrimeField {
	return e.f
}

func (e *evaluator) EvaluationPoints(n int) []uint64 {
	points := e.cache.loadPoints(n)
	if points != nil {
		return points
	}

	points = e.points(n)
	e.cache.storePoints(n, points)

	return points
}

func (e *evaluator) EvaluatePolynomial(p *poly.Polynomial[uint64], n int) []uint64 {
	return p.EvalMany(e.EvaluationPoints(n))
}

func (e *evaluator) GenerateLocatorPolynomial(n int) *poly.Polynomial[uint64] {
	return poly.ProductOfRoots[uint64](e.f, e.EvaluationPoints(n))
}

// SlowEvaluator evaluates at 1, 2, ..., n.
type SlowEvaluator struct {
	evaluator
}

func NewSlowEvaluator(f *field.PrimeField) *SlowEvaluator {
	return &SlowEvaluator{evaluator{
		f:     f,
		cache: newEvaluatorCache(),
		points: func(n int) []uint64 {
			points := make([]uint64, n)
			for i := range points {
				points[i] = uint64(i + 1)
			}

			return points
		},
	}}
}

// GeneratorEvaluator evaluates at g^0, g^1, ..., g^(n-1) where g generates
// the multiplicative group of the field, so any n < p gives distinct points.
type GeneratorEvaluator struct {
	evaluator
}

func NewGeneratorEvaluator(f *field.PrimeField) *GeneratorEvaluator {
	return &GeneratorEvaluator{evaluator{
		f:     f,
		cache: newEvaluatorCache(),
		points: func(n int) []uint64 {
			points := make([]uint64, n)

			x := f.One()
			for i := range points {
				points[i] = x
				x = f.Mul(x, f.Generator())
			}

			return points
		},
	}}
}
