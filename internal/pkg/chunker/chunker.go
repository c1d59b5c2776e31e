// Package chunker splits extracted document text into overlapping,
// size-bounded word windows ready for embedding.
package chunker

import (
	"strings"
)

const (
	// minTextLength is the cleaned-text length below which a document yields
	// no segments at all. This is a valid outcome, not an error.
	minTextLength = 20

	// minSegmentLength drops windows whose joined text is too short to carry
	// meaning (trailing slivers produced by the final window).
	minSegmentLength = 25
)

// Chunker produces deterministic word-window segments. The same input always
// yields the same sequence in the same order.
type Chunker struct {
	chunkSize int
	overlap   int
}

func New(chunkSize, overlap int) *Chunker {
	if chunkSize <= 0 {
		chunkSize = 300
	}
	if overlap < 0 || overlap >= chunkSize {
		overlap = 40
	}
	return &Chunker{chunkSize: chunkSize, overlap: overlap}
}

// Clean collapses all whitespace runs to single spaces, strips NUL bytes and
// trims the result.
func Clean(text string) string {
	text = strings.ReplaceAll(text, "\x00", "")
	return strings.Join(strings.Fields(text), " ")
}

// Chunk returns the ordered segments of text. Text shorter than the minimum
// threshold yields nil; text at or below the window size yields one segment;
// anything longer is split into overlapping windows, advancing by
// chunkSize−overlap words. The final window may be shorter than chunkSize.
func (c *Chunker) Chunk(text string) []string {
	cleaned := Clean(text)
	if len(cleaned) < minTextLength {
		return nil
	}

	words := strings.Split(cleaned, " ")
	if len(words) <= c.chunkSize {
		return []string{cleaned}
	}

	step := c.chunkSize - c.overlap
	var segments []string
	for i := 0; i < len(words); i += step {
		end := i + c.chunkSize
		if end > len(words) {
			end = len(words)
		}
		segment := strings.Join(words[i:end], " ")
		if len(segment) > minSegmentLength {
			segments = append(segments, segment)
		}
	}
	return segments
}
