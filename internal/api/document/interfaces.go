package document

import (
	"context"

	"docqa-backend/internal/entity"
)

type DocumentUsecase interface {
	Upload(ctx context.Context, userID, filename, contentType string, data []byte) (*entity.Document, error)
	ListDocuments(ctx context.Context, userID string) ([]*entity.Document, error)
	GetDocument(ctx context.Context, userID, documentID string) (*entity.Document, error)
	DeleteDocument(ctx context.Context, userID, documentID string) error
}
