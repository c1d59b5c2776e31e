package entity

import (
	"fmt"
	"time"
)

type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

// DocumentType is the declared content type of an uploaded document.
type DocumentType string

const (
	DocumentTypePDF      DocumentType = "PDF"
	DocumentTypeText     DocumentType = "TEXT"
	DocumentTypeMarkdown DocumentType = "MARKDOWN"
)

func (dt DocumentType) Validate() error {
	switch dt {
	case DocumentTypePDF, DocumentTypeText, DocumentTypeMarkdown:
		return nil
	default:
		return fmt.Errorf("%w: document type %q", ErrUnsupportedFileType, string(dt))
	}
}

// ExportFormat selects the rendering of a chat transcript download.
type ExportFormat string

const (
	FormatMarkdown ExportFormat = "md"
	FormatPDF      ExportFormat = "pdf"
	FormatDOCX     ExportFormat = "docx"
)

type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      UserRole  `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type Chat struct {
	ID        string      `json:"id"`
	UserID    string      `json:"user_id"`
	Title     string      `json:"title"`
	CreatedAt time.Time   `json:"created_at"`
	Questions []*Question `json:"questions,omitempty"`
}

type Document struct {
	ID           string       `json:"id"`
	UserID       string       `json:"user_id"`
	FileName     string       `json:"file_name"`
	FileType     DocumentType `json:"file_type"`
	StoragePath  string       `json:"-"`
	SegmentCount int          `json:"segment_count"`
	CreatedAt    time.Time    `json:"created_at"`
}

// Segment is an immutable slice of a document's text with its embedding.
// Ordinals are unique and increasing within a document.
type Segment struct {
	ID         string    `json:"id"`
	DocumentID string    `json:"document_id"`
	Ordinal    int       `json:"ordinal"`
	Content    string    `json:"content"`
	Embedding  []float64 `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}

// RetrievedSegment is a segment returned by a nearest-neighbor query,
// annotated with its owning document's filename and the distance to the query.
type RetrievedSegment struct {
	Segment
	FileName string  `json:"file_name"`
	Distance float64 `json:"distance"`
}

type Question struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ChatID    string    `json:"chat_id"`
	Query     string    `json:"query"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"created_at"`
	Sources   []*Source `json:"sources,omitempty"`
}

// Source points at a segment the model claims it used for an answer.
type Source struct {
	DocumentID string `json:"document_id"`
	FileName   string `json:"file_name"`
	SegmentID  string `json:"segment_id"`
	Preview    string `json:"preview"`
}

type ModelStats struct {
	ModelName string `json:"model_name"`
	Usage     int64  `json:"usage"`
}
