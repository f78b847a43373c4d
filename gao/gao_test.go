package gao

import (
	"math/rand"
	"testing"
	"time"

	"github.com/jonathanmweiss/go-poly/field"
	"github.com/stretchr/testify/assert"
)

type testCase struct {
	EvaluationMap
	n, k int
}

func makeTestSlice(k int) []uint64 {
	poly := make([]uint64, k)
	for i := 0; i < k; i++ {
		poly[i] = uint64(i + 1)
	}

	return poly
}

func makeTestCases(a *assert.Assertions) []testCase {
	f, err := field.NewPrimeField(65537)
	a.NoError(err)

	return []testCase{
		{NewSlowEvaluator(f), 18, 5},
		{NewGeneratorEvaluator(f), 16, 4},
		{NewGeneratorEvaluator(f), 9, 9}, // no redundancy, nothing to correct.
		{NewNttEvaluator(f), 16, 4},
		{NewNttEvaluator(f), 32, 11},
	}
}

func TestNoCorruptions(t *testing.T) {
	a := assert.New(t)

	for _, tc := range makeTestCases(a) {
		prms, err := NewCodeParameters(tc.EvaluationMap, tc.n, tc.k)
		a.NoError(err)

		gao := NewCodeGao(prms)

		encoded, err := gao.Encode(makeTestSlice(tc.k))
		a.NoError(err)
		a.Len(encoded, tc.n)

		// no corruptions
		decoded, err := gao.Decode(encoded)
		a.NoError(err)

		a.Equal(makeTestSlice(tc.k), decoded)
	}
}

func TestShortData(t *testing.T) {
	a := assert.New(t)

	for _, tc := range makeTestCases(a) {
		prms, err := NewCodeParameters(tc.EvaluationMap, tc.n, tc.k)
		a.NoError(err)

		gao := NewCodeGao(prms)

		// trailing zeros are not part of the polynomial but must come back.
		data := []uint64{7, 0, 3}
		encoded, err := gao.Encode(data)
		a.NoError(err)

		decoded, err := gao.Decode(encoded)
		a.NoError(err)

		want := make([]uint64, tc.k)
		copy(want, data)
		a.Equal(want, decoded)
	}
}

func TestErasures(t *testing.T) {
	a := assert.New(t)

	for _, tc := range makeTestCases(a) {
		prms, err := NewCodeParameters(tc.EvaluationMap, tc.n, tc.k)
		a.NoError(err)

		gao := NewCodeGao(prms)

		encoded, err := gao.Encode(makeTestSlice(tc.k))
		a.NoError(err)

		// add erasures
		shuffledXs := shuffle(prms.EvaluationPoints(prms.n))
		for i := 0; i < prms.MaxErrors(); i++ {
			delete(encoded, shuffledXs[i])
		}

		decoded, err := gao.Decode(encoded)
		a.NoError(err)

		a.Equal(makeTestSlice(tc.k), decoded)
	}
}

func shuffle(slc []uint64) []uint64 {
	rnd := rand.New(rand.NewSource(time.Now().Unix()))

	cpy := make([]uint64, len(slc))
	copy(cpy, slc)

	rnd.Shuffle(len(slc), func(i, j int) {
		cpy[i], cpy[j] = cpy[j], cpy[i]
	})

	return cpy
}

func TestCorruptions(t *testing.T) {
	a := assert.New(t)

	for _, tc := range makeTestCases(a) {
		prms, err := NewCodeParameters(tc.EvaluationMap, tc.n, tc.k)
		a.NoError(err)

		gao := NewCodeGao(prms)

		encoded, err := gao.Encode(makeTestSlice(tc.k))
		a.NoError(err)

		corrupted := make(map[uint64]uint64, len(encoded))
		for x, y := range encoded {
			corrupted[x] = y
		}

		// add corruptions, each one guaranteed to change the value.
		shuffledXs := shuffle(prms.EvaluationPoints(prms.n))
		for i := 0; i < prms.MaxErrors(); i++ {
			x := shuffledXs[i]
			corrupted[x] = prms.PrimeField().Add(corrupted[x], 1+rand.Uint64()%1000)
		}

		a.Len(corrupted, prms.N())

		decoded, err := gao.Decode(corrupted)
		a.NoError(err)

		a.Equal(makeTestSlice(tc.k), decoded)
	}
}

func TestErrors(t *testing.T) {
	a := assert.New(t)

	f, err := field.NewPrimeField(65537)
	a.NoError(err)

	_, err = NewCodeParameters(NewSlowEvaluator(f), 4, 5)
	a.ErrorIs(err, ErrNSmallerThanK)

	small, err := field.NewPrimeField(7)
	a.NoError(err)

	_, err = NewCodeParameters(NewSlowEvaluator(small), 7, 3)
	a.ErrorIs(err, ErrFieldTooSmall)

	prms, err := NewCodeParameters(NewSlowEvaluator(f), 10, 4)
	a.NoError(err)

	gao := NewCodeGao(prms)

	_, err = gao.Encode(makeTestSlice(5))
	a.ErrorIs(err, ErrDataTooLarge)

	_, err = gao.Encode([]uint64{65537})
	a.ErrorIs(err, ErrDataElementsTooLarge)

	encoded, err := gao.Encode(makeTestSlice(4))
	a.NoError(err)

	// more erasures than MaxErrors.
	xs := prms.EvaluationPoints(prms.N())
	for i := 0; i <= prms.MaxErrors(); i++ {
		delete(encoded, xs[i])
	}

	_, err = gao.Decode(encoded)
	a.ErrorIs(err, ErrTooManyMissingPoints)

	tooMany := make(map[uint64]uint64, prms.N()+1)
	for i := 0; i <= prms.N(); i++ {
		tooMany[uint64(i+100)] = 1
	}

	_, err = gao.Decode(tooMany)
	a.ErrorIs(err, ErrTooManyPoints)
}

func TestEvaluationPointsAreCached(t *testing.T) {
	a := assert.New(t)

	f, err := field.NewPrimeField(65537)
	a.NoError(err)

	e := NewGeneratorEvaluator(f)
	p1 := e.EvaluationPoints(8)
	p2 := e.EvaluationPoints(8)

	a.Equal(p1, p2)
	a.Same(&p1[0], &p2[0])
	a.Equal(uint64(1), p1[0])
	a.Equal(f.Generator(), p1[1])
}
