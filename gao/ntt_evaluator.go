package gao

import (
	"sync"

	poly "github.com/jonathanmweiss/go-poly"
	"github.com/jonathanmweiss/go-poly/field"
)

// NttEvaluator evaluates at the n-th roots of unity w^0, ..., w^(n-1) using a
// number theoretic transform. n must be a power of two dividing p-1.
type NttEvaluator struct {
	evaluator

	mu sync.RWMutex
	// per stage twiddles, keyed by transform size.
	twiddles map[int][][]uint64
}

func NewNttEvaluator(f *field.PrimeField) *NttEvaluator {
	e := &NttEvaluator{twiddles: make(map[int][][]uint64)}

	e.evaluator = evaluator{
		f:     f,
		cache: newEvaluatorCache(),
		points: func(n int) []uint64 {
			w := e.root(n)

			points := make([]uint64, n)

			x := f.One()
			for i := range points {
				points[i] = x
				x = f.Mul(x, w)
			}

			return points
		},
	}

	return e
}

// Supports reports whether n roots of unity exist in the field.
func (e *NttEvaluator) Supports(n int) error {
	_, err := e.f.RootOfUnity(uint64(n))
	return err
}

func (e *NttEvaluator) root(n int) uint64 {
	w, err := e.f.RootOfUnity(uint64(n))
	if err != nil {
		panic(err) // NewCodeParameters rejects such n.
	}

	return w
}

// EvaluatePolynomial folds p modulo x^n - 1, which vanishes on every
// evaluation point, and transforms the result.
func (e *NttEvaluator) EvaluatePolynomial(p *poly.Polynomial[uint64], n int) []uint64 {
	a := make([]uint64, n)
	for i, c := range p.All() {
		a[i%n] = e.f.Add(a[i%n], c)
	}

	e.forward(a)

	return a
}

// GenerateLocatorPolynomial returns x^n - 1, the product of (x - w^i).
func (e *NttEvaluator) GenerateLocatorPolynomial(n int) *poly.Polynomial[uint64] {
	return poly.Monomial[uint64](e.f, e.f.One(), n).Sub(poly.NewConstant[uint64](e.f, e.f.One()))
}

func (e *NttEvaluator) stageTwiddles(n int) [][]uint64 {
	e.mu.RLock()
	if ts, ok := e.twiddles[n]; ok {
		e.mu.RUnlock()
		return ts
	}
	e.mu.RUnlock()

	// Build outside lock
	w := e.root(n)

	var ts [][]uint64

	// stages: m = 2,4,8,...,n, with stage root w^(n/m).
	for m := 2; m <= n; m <<= 1 {
		half := m >> 1
		wm := e.f.Pow(w, uint64(n/m))

		row := make([]uint64, half)

		x := uint64(1)
		for j := range row {
			row[j] = x
			x = e.f.Mul(x, wm)
		}

		ts = append(ts, row)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	// Another goroutine may have won the race, keep the first one.
	if existing, ok := e.twiddles[n]; ok {
		return existing
	}

	e.twiddles[n] = ts

	return ts
}

// forward replaces a, of power of two length n, with its evaluations at
// w^0, ..., w^(n-1) in natural order.
func (e *NttEvaluator) forward(a []uint64) {
	n := len(a)
	if n <= 1 {
		return
	}

	bitReverseInPlace(a)

	ts := e.stageTwiddles(n)

	for s, m := 0, 2; m <= n; s, m = s+1, m<<1 {
		half := m >> 1
		ws := ts[s]

		for k := 0; k < n; k += m {
			for j := 0; j < half; j++ {
				u := a[k+j]
				t := e.f.Mul(ws[j], a[k+j+half])
				a[k+j] = e.f.Add(u, t)
				a[k+j+half] = e.f.Sub(u, t)
			}
		}
	}
}

func bitReverseInPlace(xs []uint64) {
	n := len(xs)
	if n <= 1 {
		return
	}

	j := 0
	for i := 1; i < n-1; i++ {
		bit := n >> 1
		for j&bit != 0 {
			j &= ^bit
			bit >>= 1
		}

		j |= bit
		if i < j {
			xs[i], xs[j] = xs[j], xs[i]
		}
	}
}
