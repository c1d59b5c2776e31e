package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatVector(t *testing.T) {
	assert.Equal(t, "[]", formatVector(nil))
	assert.Equal(t, "[1.000000]", formatVector([]float64{1}))
	assert.Equal(t, "[0.500000,-0.250000,0.000000]", formatVector([]float64{0.5, -0.25, 0}))
}
