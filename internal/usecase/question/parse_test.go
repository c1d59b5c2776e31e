package question

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStructuredAnswerPlainJSON(t *testing.T) {
	answer, ids, ok := parseStructuredAnswer(`{"answer": "It is 42.", "segment_ids": ["a", "b"]}`)
	require.True(t, ok)
	assert.Equal(t, "It is 42.", answer)
	assert.Equal(t, []string{"a", "b"}, ids)
}

func TestParseStructuredAnswerCodeFence(t *testing.T) {
	raw := "```json\n{\"answer\": \"Fenced.\", \"segment_ids\": []}\n```"
	answer, ids, ok := parseStructuredAnswer(raw)
	require.True(t, ok)
	assert.Equal(t, "Fenced.", answer)
	assert.Empty(t, ids)
}

func TestParseStructuredAnswerEmbeddedInProse(t *testing.T) {
	raw := `Sure! Here is the result: {"answer": "Embedded.", "segment_ids": ["x"]} Hope that helps.`
	answer, ids, ok := parseStructuredAnswer(raw)
	require.True(t, ok)
	assert.Equal(t, "Embedded.", answer)
	assert.Equal(t, []string{"x"}, ids)
}

func TestParseStructuredAnswerRejectsGarbage(t *testing.T) {
	for _, raw := range []string{
		"",
		"just some prose without json",
		`{"answer": "", "segment_ids": ["a"]}`,
		`{"segment_ids": ["a"]}`,
		`{"answer": `,
	} {
		_, _, ok := parseStructuredAnswer(raw)
		assert.False(t, ok, raw)
	}
}

func TestParseStructuredAnswerCoercesNumericIDs(t *testing.T) {
	answer, ids, ok := parseStructuredAnswer(`{"answer": "Mixed ids.", "segment_ids": [12, "seg-2", 3.5, true]}`)
	require.True(t, ok)
	assert.Equal(t, "Mixed ids.", answer)
	// numbers are stringified, non-scalar junk is dropped
	assert.Equal(t, []string{"12", "seg-2", "3.5"}, ids)
}

func TestParseStructuredAnswerTrimsWhitespace(t *testing.T) {
	answer, _, ok := parseStructuredAnswer("  {\"answer\": \"  spaced  \", \"segment_ids\": null}  ")
	require.True(t, ok)
	assert.Equal(t, "spaced", answer)
}
