package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"docqa-backend/internal/entity"
)

// SegmentRepository defines the interface for segment retrieval
type SegmentRepository interface {
	SearchNearest(ctx context.Context, userID string, embedding []float64, documentIDs []string, limit int) ([]*entity.RetrievedSegment, error)
}

var _ SegmentRepository = &SegmentPostgres{}

// SegmentPostgres implements SegmentRepository using PostgreSQL with pgvector
type SegmentPostgres struct {
	db *pgxpool.Pool
}

func NewSegmentPostgres(db *pgxpool.Pool) *SegmentPostgres {
	return &SegmentPostgres{db: db}
}

// SearchNearest returns the closest segments to the query embedding by cosine
// distance. Results are always restricted to the user's own documents; an
// empty documentIDs slice searches all of them. Equal distances tie-break on
// segment id so results are deterministic.
func (r *SegmentPostgres) SearchNearest(
	ctx context.Context,
	userID string,
	embedding []float64,
	documentIDs []string,
	limit int,
) ([]*entity.RetrievedSegment, error) {
	vectorStr := formatVector(embedding)

	var documentFilter string
	args := []interface{}{vectorStr, userID}
	if len(documentIDs) > 0 {
		documentFilter = "AND s.document_id = ANY($3)"
		args = append(args, documentIDs)
	}
	args = append(args, limit)

	query := fmt.Sprintf(`
		SELECT
			s.id,
			s.document_id,
			s.ordinal,
			s.content,
			s.created_at,
			d.file_name,
			s.embedding <=> $1::vector AS distance
		FROM segments s
		JOIN documents d ON d.id = s.document_id
		WHERE d.user_id = $2
		%s
		ORDER BY s.embedding <=> $1::vector, s.id
		LIMIT $%d`, documentFilter, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search segments: %w", err)
	}
	defer rows.Close()

	segments := make([]*entity.RetrievedSegment, 0, limit)
	for rows.Next() {
		var segment entity.RetrievedSegment
		err := rows.Scan(
			&segment.ID,
			&segment.DocumentID,
			&segment.Ordinal,
			&segment.Content,
			&segment.CreatedAt,
			&segment.FileName,
			&segment.Distance,
		)
		if err != nil {
			return nil, fmt.Errorf("scan segment: %w", err)
		}
		segments = append(segments, &segment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate segments: %w", err)
	}

	return segments, nil
}
