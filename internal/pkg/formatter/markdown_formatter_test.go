package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docqa-backend/internal/entity"
)

func exportChat() *entity.Chat {
	return &entity.Chat{
		Title: "Research notes",
		Questions: []*entity.Question{
			{
				Query:  "What is the main finding?",
				Answer: "The main finding is X.",
				Sources: []*entity.Source{
					{FileName: "paper.pdf", Preview: "We conclude that X"},
				},
			},
			{
				Query:  "Any caveats?",
				Answer: "Information not found in the documents",
			},
		},
	}
}

func TestMarkdownFormat(t *testing.T) {
	out, err := NewMarkdownFormatter().Format(exportChat())
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, "# Research notes")
	assert.Contains(t, s, "## What is the main finding?")
	assert.Contains(t, s, "The main finding is X.")
	assert.Contains(t, s, "- `paper.pdf`: We conclude that X")
	assert.Contains(t, s, "## Any caveats?")
	assert.Equal(t, 1, strings.Count(s, "**Sources:**"))
}

func TestFactoryCreate(t *testing.T) {
	factory := NewFactory()

	for _, format := range []entity.ExportFormat{entity.FormatMarkdown, entity.FormatPDF, entity.FormatDOCX} {
		f, err := factory.Create(format)
		require.NoError(t, err)
		assert.NotEmpty(t, f.ContentType())
		assert.NotEmpty(t, f.FileExtension())
	}

	_, err := factory.Create(entity.ExportFormat("html"))
	assert.ErrorIs(t, err, entity.ErrUnsupportedFormat)
}

func TestTranscriptIncludesSources(t *testing.T) {
	text := transcript(exportChat())
	assert.Contains(t, text, "Q: What is the main finding?")
	assert.Contains(t, text, "A: The main finding is X.")
	assert.Contains(t, text, "paper.pdf: We conclude that X")
}
