package chunker

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func words(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("word%04d", i)
	}
	return strings.Join(parts, " ")
}

func TestCleanCollapsesWhitespace(t *testing.T) {
	in := "  hello\t\tworld\n\nagain\x00 there  "
	assert.Equal(t, "hello world again there", Clean(in))
}

func TestChunkShortTextYieldsNothing(t *testing.T) {
	c := New(300, 40)
	assert.Nil(t, c.Chunk("tiny text"))
	assert.Nil(t, c.Chunk("   \n\t  "))
	assert.Nil(t, c.Chunk(""))
}

func TestChunkSingleSegmentBelowWindowSize(t *testing.T) {
	c := New(300, 40)
	text := words(120)
	segments := c.Chunk(text)
	require.Len(t, segments, 1)
	assert.Equal(t, text, segments[0])
}

func TestChunkThousandWordsDefaultWindow(t *testing.T) {
	c := New(300, 40)
	segments := c.Chunk(words(1000))
	require.Len(t, segments, 4)

	for i, seg := range segments {
		count := len(strings.Fields(seg))
		assert.LessOrEqual(t, count, 300, "segment %d", i)
	}

	// Adjacent windows share the overlap except at the document boundary.
	for i := 0; i < len(segments)-1; i++ {
		cur := strings.Fields(segments[i])
		next := strings.Fields(segments[i+1])
		tail := cur[len(cur)-40:]
		head := next[:40]
		assert.Equal(t, tail, head, "windows %d and %d", i, i+1)
	}

	// Final window holds the remainder.
	last := strings.Fields(segments[3])
	assert.Len(t, last, 220)
}

func TestChunkDeterministic(t *testing.T) {
	c := New(300, 40)
	text := words(750)
	first := c.Chunk(text)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, c.Chunk(text))
	}
}

func TestChunkDropsTinyTrailingWindow(t *testing.T) {
	// Window 10/overlap 0 over 11 words: the second window is a two-letter
	// sliver under the 25 character floor and is dropped.
	text := strings.Repeat("alpha ", 10) + "ab"
	c := New(10, 0)
	segments := c.Chunk(text)
	require.Len(t, segments, 1)
	assert.Greater(t, len(segments[0]), 25)
}

func TestNewGuardsBadParameters(t *testing.T) {
	c := New(0, -1)
	segments := c.Chunk(words(1000))
	assert.Len(t, segments, 4) // falls back to 300/40
}
