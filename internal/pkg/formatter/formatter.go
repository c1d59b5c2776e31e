// Package formatter renders chat transcripts for download.
package formatter

import (
	"fmt"
	"strings"

	"docqa-backend/internal/entity"
)

type Formatter interface {
	Format(chat *entity.Chat) ([]byte, error)
	ContentType() string
	FileExtension() string
}

type Factory struct{}

func NewFactory() *Factory {
	return &Factory{}
}

func (f *Factory) Create(format entity.ExportFormat) (Formatter, error) {
	switch format {
	case entity.FormatMarkdown:
		return NewMarkdownFormatter(), nil
	case entity.FormatPDF:
		return NewPDFFormatter(), nil
	case entity.FormatDOCX:
		return NewDOCXFormatter(), nil
	default:
		return nil, fmt.Errorf("%w: %s", entity.ErrUnsupportedFormat, format)
	}
}

// transcript renders the chat as plain text for the PDF and DOCX formatters,
// which handle their own layout but share the textual content.
func transcript(chat *entity.Chat) string {
	var b strings.Builder
	for i, question := range chat.Questions {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "Q: %s\n\nA: %s", question.Query, question.Answer)
		if len(question.Sources) > 0 {
			b.WriteString("\n\nSources:")
			for _, source := range question.Sources {
				fmt.Fprintf(&b, "\n  - %s: %s", source.FileName, source.Preview)
			}
		}
	}
	return b.String()
}
