package vector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeUnitNorm(t *testing.T) {
	cases := [][]float64{
		{3, 4},
		{1, 1, 1, 1},
		{-2.5, 0.1, 7},
		{0.000001, 0},
	}

	for _, v := range cases {
		n := Normalize(v)
		assert.InDelta(t, 1.0, Norm(n), 1e-9)
		assert.Len(t, n, len(v))
	}
}

func TestNormalizeZeroVector(t *testing.T) {
	v := []float64{0, 0, 0}
	n := Normalize(v)
	assert.Equal(t, v, n)
	assert.Equal(t, 0.0, Norm(n))
}

func TestNormalizeKeepsDirection(t *testing.T) {
	n := Normalize([]float64{3, 4})
	assert.InDelta(t, 0.6, n[0], 1e-9)
	assert.InDelta(t, 0.8, n[1], 1e-9)
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	v := []float64{3, 4}
	Normalize(v)
	assert.Equal(t, []float64{3, 4}, v)
}

func TestDot(t *testing.T) {
	assert.Equal(t, 11.0, Dot([]float64{1, 2}, []float64{3, 4}))
	assert.Equal(t, 3.0, Dot([]float64{1, 2}, []float64{3}))
	assert.Equal(t, 0.0, Dot(nil, []float64{1}))
}

func TestNormMatchesMath(t *testing.T) {
	assert.InDelta(t, math.Sqrt(2), Norm([]float64{1, 1}), 1e-12)
}
