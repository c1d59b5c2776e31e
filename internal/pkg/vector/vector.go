// Package vector holds the small amount of embedding math the pipeline needs.
package vector

import "math"

// Normalize divides every component by the Euclidean norm so that cosine
// similarity and inner product coincide. The zero vector has no direction and
// is returned unchanged; a degenerate embedding must not crash ingestion.
func Normalize(v []float64) []float64 {
	norm := Norm(v)
	if norm == 0 {
		return v
	}
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = x / norm
	}
	return out
}

// Norm returns the Euclidean norm of v.
func Norm(v []float64) float64 {
	sum := 0.0
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// Dot returns the inner product of a and b over their shared prefix.
func Dot(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}
