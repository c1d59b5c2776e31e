// Package extractor turns uploaded document bytes into plain text.
package extractor

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"docqa-backend/internal/entity"
)

// TypeOf infers the declared document type from the upload's content type and
// filename. Anything that is not PDF, plain text or markdown is rejected.
func TypeOf(contentType, filename string) (entity.DocumentType, error) {
	switch {
	case strings.Contains(contentType, "pdf"):
		return entity.DocumentTypePDF, nil
	case strings.Contains(contentType, "markdown"):
		return entity.DocumentTypeMarkdown, nil
	case strings.Contains(contentType, "text"):
		if strings.EqualFold(filepath.Ext(filename), ".md") {
			return entity.DocumentTypeMarkdown, nil
		}
		return entity.DocumentTypeText, nil
	}

	// Browsers frequently upload .md and .txt as application/octet-stream.
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return entity.DocumentTypePDF, nil
	case ".md", ".markdown":
		return entity.DocumentTypeMarkdown, nil
	case ".txt":
		return entity.DocumentTypeText, nil
	}

	return "", fmt.Errorf("%w: %s (%s)", entity.ErrUnsupportedFileType, filename, contentType)
}

// Extract returns the plain text of data according to the document type.
func Extract(docType entity.DocumentType, data []byte) (string, error) {
	switch docType {
	case entity.DocumentTypePDF:
		return extractPDF(data)
	case entity.DocumentTypeText, entity.DocumentTypeMarkdown:
		return string(data), nil
	default:
		return "", fmt.Errorf("%w: %s", entity.ErrUnsupportedFileType, docType)
	}
}

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	content, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}

	var sb strings.Builder
	if _, err := io.Copy(&sb, content); err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	return sb.String(), nil
}
