package document

import (
	"bytes"
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"docqa-backend/internal/entity"
	"docqa-backend/internal/pkg/chunker"
	"docqa-backend/internal/pkg/extractor"
	"docqa-backend/internal/pkg/vector"
	"docqa-backend/internal/repository"
	"docqa-backend/internal/storage"
)

// DocumentUsecase implements document ingestion and management
type DocumentUsecase struct {
	documentRepo repository.DocumentRepository
	store        storage.Storage
	embedder     Embedder
	chunker      *chunker.Chunker
	maxFileSize  int64
	logger       *zap.Logger
}

// NewUsecase creates a new document use case
func NewUsecase(
	documentRepo repository.DocumentRepository,
	store storage.Storage,
	embedder Embedder,
	chunker *chunker.Chunker,
	maxFileSize int64,
	logger *zap.Logger,
) *DocumentUsecase {
	return &DocumentUsecase{
		documentRepo: documentRepo,
		store:        store,
		embedder:     embedder,
		chunker:      chunker,
		maxFileSize:  maxFileSize,
		logger:       logger,
	}
}

// Upload ingests a document: extract text, segment it, embed every segment,
// store the original bytes, and persist everything in one transaction.
// Ingestion is all-or-nothing; a failed embedding leaves no partial document.
func (uc *DocumentUsecase) Upload(
	ctx context.Context,
	userID string,
	filename string,
	contentType string,
	data []byte,
) (*entity.Document, error) {
	if filename == "" {
		return nil, fmt.Errorf("%w: filename", entity.ErrMissingField)
	}
	if int64(len(data)) > uc.maxFileSize {
		return nil, fmt.Errorf("%w: %d bytes (limit %d)", entity.ErrFileTooLarge, len(data), uc.maxFileSize)
	}

	fileType, err := extractor.TypeOf(contentType, filename)
	if err != nil {
		return nil, err
	}

	text, err := extractor.Extract(fileType, data)
	if err != nil {
		return nil, fmt.Errorf("extract text: %w", err)
	}

	documentID := uuid.New().String()
	chunks := uc.chunker.Chunk(text)

	ctxzap.Info(ctx, "document segmented",
		zap.String("document_id", documentID),
		zap.String("file_name", filename),
		zap.Int("segment_count", len(chunks)),
	)

	// Embed everything before touching storage or the database so a failed
	// embedding cannot leave a partially ingested document.
	segments := make([]entity.Segment, 0, len(chunks))
	for i, chunk := range chunks {
		embedding, err := uc.embedder.Embed(ctx, chunk)
		if err != nil {
			return nil, fmt.Errorf("embed segment %d: %w", i, err)
		}

		segments = append(segments, entity.Segment{
			ID:         uuid.New().String(),
			DocumentID: documentID,
			Ordinal:    i,
			Content:    chunk,
			Embedding:  vector.Normalize(embedding),
		})
	}

	storagePath, err := uc.store.Upload(ctx, documentID, filename, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("store file: %w", err)
	}

	created, err := uc.documentRepo.CreateWithSegments(ctx, entity.Document{
		ID:          documentID,
		UserID:      userID,
		FileName:    filename,
		FileType:    fileType,
		StoragePath: storagePath,
	}, segments)
	if err != nil {
		if delErr := uc.store.Delete(ctx, storagePath); delErr != nil {
			ctxzap.Warn(ctx, "orphaned stored file after failed ingestion",
				zap.String("storage_path", storagePath),
				zap.Error(delErr),
			)
		}
		return nil, fmt.Errorf("persist document: %w", err)
	}

	ctxzap.Info(ctx, "document ingested",
		zap.String("document_id", created.ID),
		zap.Int("segment_count", created.SegmentCount),
	)

	return created, nil
}

// ListDocuments retrieves the user's documents
func (uc *DocumentUsecase) ListDocuments(ctx context.Context, userID string) ([]*entity.Document, error) {
	documents, err := uc.documentRepo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	return documents, nil
}

// GetDocument retrieves a document by ID
func (uc *DocumentUsecase) GetDocument(ctx context.Context, userID, documentID string) (*entity.Document, error) {
	return uc.documentRepo.Get(ctx, userID, documentID)
}

// DeleteDocument removes a document, its segments, and the stored original.
func (uc *DocumentUsecase) DeleteDocument(ctx context.Context, userID, documentID string) error {
	document, err := uc.documentRepo.Get(ctx, userID, documentID)
	if err != nil {
		return err
	}

	if err := uc.documentRepo.Delete(ctx, userID, documentID); err != nil {
		return err
	}

	// The database rows are gone; a leftover blob is only a storage leak.
	if err := uc.store.Delete(ctx, document.StoragePath); err != nil {
		ctxzap.Warn(ctx, "delete stored file",
			zap.String("storage_path", document.StoragePath),
			zap.Error(err),
		)
	}

	ctxzap.Info(ctx, "document deleted", zap.String("document_id", documentID))
	return nil
}
