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

// sourcePreviewLength caps the segment excerpt attached to a source.
const sourcePreviewLength = 200

// QuestionRepository defines the interface for question persistence
type QuestionRepository interface {
	Create(ctx context.Context, question entity.Question) (*entity.Question, error)
	SetAnswer(ctx context.Context, questionID, answer string, segmentIDs []string) error
	Get(ctx context.Context, userID, questionID string) (*entity.Question, error)
	ListByChat(ctx context.Context, userID, chatID string) ([]*entity.Question, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Question, error)
}

var _ QuestionRepository = &QuestionPostgres{}

// QuestionPostgres implements QuestionRepository using PostgreSQL
type QuestionPostgres struct {
	db *pgxpool.Pool
}

func NewQuestionPostgres(db *pgxpool.Pool) *QuestionPostgres {
	return &QuestionPostgres{db: db}
}

func (r *QuestionPostgres) Create(ctx context.Context, question entity.Question) (*entity.Question, error) {
	questionID, err := uuid.Parse(question.ID)
	if err != nil {
		return nil, fmt.Errorf("parse question ID: %w", err)
	}
	chatID, err := uuid.Parse(question.ChatID)
	if err != nil {
		return nil, fmt.Errorf("parse chat ID: %w", err)
	}
	userID, err := uuid.Parse(question.UserID)
	if err != nil {
		return nil, fmt.Errorf("parse user ID: %w", err)
	}

	row := r.db.QueryRow(ctx, `
		INSERT INTO questions (id, user_id, chat_id, query, answer)
		VALUES ($1, $2, $3, $4, '')
		RETURNING id, user_id, chat_id, query, answer, created_at`,
		questionID, userID, chatID, question.Query,
	)

	created, err := scanQuestion(row)
	if err != nil {
		return nil, fmt.Errorf("create question: %w", err)
	}

	return created, nil
}

// SetAnswer stores the final answer and its attributed segments atomically.
// The question row and its attribution rows always change together; a crash
// can never leave an answer without its sources or vice versa.
func (r *QuestionPostgres) SetAnswer(ctx context.Context, questionID, answer string, segmentIDs []string) error {
	qid, err := uuid.Parse(questionID)
	if err != nil {
		return fmt.Errorf("parse question ID: %w", err)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE questions
		SET answer = $2
		WHERE id = $1`,
		qid, answer,
	)
	if err != nil {
		return fmt.Errorf("set answer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entity.ErrQuestionNotFound
	}

	_, err = tx.Exec(ctx, `
		DELETE FROM question_segments
		WHERE question_id = $1`,
		qid,
	)
	if err != nil {
		return fmt.Errorf("clear question segments: %w", err)
	}

	for _, segmentID := range segmentIDs {
		sid, err := uuid.Parse(segmentID)
		if err != nil {
			return fmt.Errorf("parse segment ID: %w", err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO question_segments (question_id, segment_id)
			VALUES ($1, $2)`,
			qid, sid,
		)
		if err != nil {
			return fmt.Errorf("attach segment: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

func (r *QuestionPostgres) Get(ctx context.Context, userID, questionID string) (*entity.Question, error) {
	qid, err := uuid.Parse(questionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrQuestionNotFound, err)
	}

	row := r.db.QueryRow(ctx, `
		SELECT id, user_id, chat_id, query, answer, created_at
		FROM questions
		WHERE id = $1 AND user_id = $2`,
		qid, userID,
	)

	question, err := scanQuestion(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("get question: %w", err)
	}

	if err := r.attachSources(ctx, []*entity.Question{question}); err != nil {
		return nil, err
	}

	return question, nil
}

// ListByChat returns the chat's questions in ask order with their sources.
// The chat is looked up through the user scope so a foreign chat id yields
// ErrChatNotFound rather than an empty transcript.
func (r *QuestionPostgres) ListByChat(ctx context.Context, userID, chatID string) ([]*entity.Question, error) {
	cid, err := uuid.Parse(chatID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrChatNotFound, err)
	}

	var exists bool
	err = r.db.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM chats WHERE id = $1 AND user_id = $2)`,
		cid, userID,
	).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("check chat: %w", err)
	}
	if !exists {
		return nil, entity.ErrChatNotFound
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, chat_id, query, answer, created_at
		FROM questions
		WHERE chat_id = $1
		ORDER BY created_at, id`,
		cid,
	)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	defer rows.Close()

	questions := make([]*entity.Question, 0)
	for rows.Next() {
		question, err := scanQuestion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		questions = append(questions, question)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate questions: %w", err)
	}

	if err := r.attachSources(ctx, questions); err != nil {
		return nil, err
	}

	return questions, nil
}

// ListByUser returns all the user's questions across chats, newest first,
// with their sources.
func (r *QuestionPostgres) ListByUser(ctx context.Context, userID string) ([]*entity.Question, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, chat_id, query, answer, created_at
		FROM questions
		WHERE user_id = $1
		ORDER BY created_at DESC, id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	defer rows.Close()

	questions := make([]*entity.Question, 0)
	for rows.Next() {
		question, err := scanQuestion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		questions = append(questions, question)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate questions: %w", err)
	}

	if err := r.attachSources(ctx, questions); err != nil {
		return nil, err
	}

	return questions, nil
}

func (r *QuestionPostgres) attachSources(ctx context.Context, questions []*entity.Question) error {
	if len(questions) == 0 {
		return nil
	}

	byID := make(map[string]*entity.Question, len(questions))
	ids := make([]string, 0, len(questions))
	for _, question := range questions {
		byID[question.ID] = question
		ids = append(ids, question.ID)
	}

	rows, err := r.db.Query(ctx, `
		SELECT qs.question_id, s.id, s.document_id, d.file_name, left(s.content, $2)
		FROM question_segments qs
		JOIN segments s ON s.id = qs.segment_id
		JOIN documents d ON d.id = s.document_id
		WHERE qs.question_id = ANY($1)
		ORDER BY qs.question_id, s.id`,
		ids, sourcePreviewLength,
	)
	if err != nil {
		return fmt.Errorf("load sources: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var questionID string
		var source entity.Source
		err := rows.Scan(
			&questionID,
			&source.SegmentID,
			&source.DocumentID,
			&source.FileName,
			&source.Preview,
		)
		if err != nil {
			return fmt.Errorf("scan source: %w", err)
		}
		if question, ok := byID[questionID]; ok {
			question.Sources = append(question.Sources, &source)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate sources: %w", err)
	}

	return nil
}

func scanQuestion(row pgx.Row) (*entity.Question, error) {
	var question entity.Question
	err := row.Scan(
		&question.ID,
		&question.UserID,
		&question.ChatID,
		&question.Query,
		&question.Answer,
		&question.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &question, nil
}
