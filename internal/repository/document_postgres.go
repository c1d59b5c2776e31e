package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"docqa-backend/internal/entity"
)

// DocumentRepository defines the interface for document persistence
type DocumentRepository interface {
	CreateWithSegments(ctx context.Context, document entity.Document, segments []entity.Segment) (*entity.Document, error)
	Get(ctx context.Context, userID, documentID string) (*entity.Document, error)
	List(ctx context.Context, userID string) ([]*entity.Document, error)
	Delete(ctx context.Context, userID, documentID string) error
}

var _ DocumentRepository = &DocumentPostgres{}

// DocumentPostgres implements DocumentRepository using PostgreSQL
type DocumentPostgres struct {
	db *pgxpool.Pool
}

func NewDocumentPostgres(db *pgxpool.Pool) *DocumentPostgres {
	return &DocumentPostgres{db: db}
}

// CreateWithSegments inserts the document and all of its segments in one
// transaction. Ingestion is all-or-nothing: a failed segment insert rolls the
// whole document back.
func (r *DocumentPostgres) CreateWithSegments(
	ctx context.Context,
	document entity.Document,
	segments []entity.Segment,
) (*entity.Document, error) {
	documentID, err := uuid.Parse(document.ID)
	if err != nil {
		return nil, fmt.Errorf("parse document ID: %w", err)
	}
	userID, err := uuid.Parse(document.UserID)
	if err != nil {
		return nil, fmt.Errorf("parse user ID: %w", err)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx, `
		INSERT INTO documents (id, user_id, file_name, file_type, storage_path)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, file_name, file_type, storage_path, created_at`,
		documentID, userID, document.FileName, document.FileType, document.StoragePath,
	)

	created, err := scanDocument(row)
	if err != nil {
		return nil, fmt.Errorf("create document: %w", err)
	}

	for _, segment := range segments {
		segmentID, err := uuid.Parse(segment.ID)
		if err != nil {
			return nil, fmt.Errorf("parse segment ID: %w", err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO segments (id, document_id, ordinal, content, embedding)
			VALUES ($1, $2, $3, $4, $5::vector)`,
			segmentID, documentID, segment.Ordinal, segment.Content, formatVector(segment.Embedding),
		)
		if err != nil {
			return nil, fmt.Errorf("create segment %d: %w", segment.Ordinal, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	created.SegmentCount = len(segments)
	return created, nil
}

func (r *DocumentPostgres) Get(ctx context.Context, userID, documentID string) (*entity.Document, error) {
	did, err := uuid.Parse(documentID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrDocumentNotFound, err)
	}

	row := r.db.QueryRow(ctx, `
		SELECT d.id, d.user_id, d.file_name, d.file_type, d.storage_path, d.created_at,
		       (SELECT count(*) FROM segments s WHERE s.document_id = d.id) AS segment_count
		FROM documents d
		WHERE d.id = $1 AND d.user_id = $2`,
		did, userID,
	)

	var document entity.Document
	err = row.Scan(
		&document.ID,
		&document.UserID,
		&document.FileName,
		&document.FileType,
		&document.StoragePath,
		&document.CreatedAt,
		&document.SegmentCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("get document: %w", err)
	}

	return &document, nil
}

func (r *DocumentPostgres) List(ctx context.Context, userID string) ([]*entity.Document, error) {
	rows, err := r.db.Query(ctx, `
		SELECT d.id, d.user_id, d.file_name, d.file_type, d.storage_path, d.created_at,
		       (SELECT count(*) FROM segments s WHERE s.document_id = d.id) AS segment_count
		FROM documents d
		WHERE d.user_id = $1
		ORDER BY d.created_at DESC, d.id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	documents := make([]*entity.Document, 0)
	for rows.Next() {
		var document entity.Document
		err := rows.Scan(
			&document.ID,
			&document.UserID,
			&document.FileName,
			&document.FileType,
			&document.StoragePath,
			&document.CreatedAt,
			&document.SegmentCount,
		)
		if err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		documents = append(documents, &document)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate documents: %w", err)
	}

	return documents, nil
}

// Delete removes the document row; segments go with it via ON DELETE CASCADE.
func (r *DocumentPostgres) Delete(ctx context.Context, userID, documentID string) error {
	did, err := uuid.Parse(documentID)
	if err != nil {
		return fmt.Errorf("%w: %v", entity.ErrDocumentNotFound, err)
	}

	tag, err := r.db.Exec(ctx, `
		DELETE FROM documents
		WHERE id = $1 AND user_id = $2`,
		did, userID,
	)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entity.ErrDocumentNotFound
	}

	return nil
}

func scanDocument(row pgx.Row) (*entity.Document, error) {
	var document entity.Document
	err := row.Scan(
		&document.ID,
		&document.UserID,
		&document.FileName,
		&document.FileType,
		&document.StoragePath,
		&document.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &document, nil
}
