package entity

import "errors"

// Domain errors
var (
	// Ownership / lookup errors. Not-found and forbidden are deliberately the
	// same error so a caller cannot probe for other users' resources.
	ErrUserNotFound     = errors.New("user not found")
	ErrChatNotFound     = errors.New("chat not found")
	ErrDocumentNotFound = errors.New("document not found")
	ErrQuestionNotFound = errors.New("question not found")

	// Validation errors
	ErrMissingField        = errors.New("required field is missing")
	ErrInvalidParameter    = errors.New("invalid parameter")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file too large")
	ErrUnsupportedFormat   = errors.New("unsupported export format")

	// Model errors
	ErrUnsupportedModel = errors.New("unsupported model")

	// External dependency errors
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")
	ErrGenerationFailed     = errors.New("generation failed")
)
