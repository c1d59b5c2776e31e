package formatter

import (
	"bytes"
	"fmt"

	"docqa-backend/internal/entity"
)

const (
	markdownContentType   = "text/markdown; charset=utf-8"
	markdownFileExtension = ".md"
)

type MarkdownFormatter struct{}

func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

func (mf *MarkdownFormatter) Format(chat *entity.Chat) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# %s\n", chat.Title)

	for _, question := range chat.Questions {
		fmt.Fprintf(&buf, "\n## %s\n\n%s\n", question.Query, question.Answer)
		if len(question.Sources) > 0 {
			buf.WriteString("\n**Sources:**\n\n")
			for _, source := range question.Sources {
				fmt.Fprintf(&buf, "- `%s`: %s\n", source.FileName, source.Preview)
			}
		}
	}

	return buf.Bytes(), nil
}

func (mf *MarkdownFormatter) ContentType() string {
	return markdownContentType
}

func (mf *MarkdownFormatter) FileExtension() string {
	return markdownFileExtension
}
