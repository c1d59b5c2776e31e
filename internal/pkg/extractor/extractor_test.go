package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docqa-backend/internal/entity"
)

func TestTypeOf(t *testing.T) {
	cases := []struct {
		contentType string
		filename    string
		want        entity.DocumentType
	}{
		{"application/pdf", "report.pdf", entity.DocumentTypePDF},
		{"text/plain", "notes.txt", entity.DocumentTypeText},
		{"text/markdown", "readme.md", entity.DocumentTypeMarkdown},
		{"text/plain", "readme.md", entity.DocumentTypeMarkdown},
		{"application/octet-stream", "paper.pdf", entity.DocumentTypePDF},
		{"application/octet-stream", "notes.TXT", entity.DocumentTypeText},
		{"application/octet-stream", "doc.markdown", entity.DocumentTypeMarkdown},
	}

	for _, tc := range cases {
		got, err := TypeOf(tc.contentType, tc.filename)
		require.NoError(t, err, tc.filename)
		assert.Equal(t, tc.want, got, tc.filename)
	}
}

func TestTypeOfRejectsUnknown(t *testing.T) {
	_, err := TypeOf("image/png", "cat.png")
	assert.ErrorIs(t, err, entity.ErrUnsupportedFileType)
}

func TestExtractPlainText(t *testing.T) {
	text, err := Extract(entity.DocumentTypeText, []byte("plain body"))
	require.NoError(t, err)
	assert.Equal(t, "plain body", text)

	text, err = Extract(entity.DocumentTypeMarkdown, []byte("# heading\n\nbody"))
	require.NoError(t, err)
	assert.Equal(t, "# heading\n\nbody", text)
}

func TestExtractRejectsUnknownType(t *testing.T) {
	_, err := Extract(entity.DocumentType("DOCX"), []byte("x"))
	assert.ErrorIs(t, err, entity.ErrUnsupportedFileType)
}

func TestExtractBrokenPDF(t *testing.T) {
	_, err := Extract(entity.DocumentTypePDF, []byte("not a pdf"))
	assert.Error(t, err)
}
