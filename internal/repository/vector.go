package repository

import (
	"fmt"
	"strings"
)

// formatVector renders an embedding in pgvector's text format so it can be
// bound as a query parameter and cast with ::vector.
func formatVector(embedding []float64) string {
	if len(embedding) == 0 {
		return "[]"
	}
	parts := make([]string, 0, len(embedding))
	for _, v := range embedding {
		parts = append(parts, fmt.Sprintf("%.6f", v))
	}
	return "[" + strings.Join(parts, ",") + "]"
}
