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

// ChatRepository defines the interface for chat persistence. Every read and
// write is scoped to the owning user; a chat belonging to someone else
// behaves exactly like a missing one.
type ChatRepository interface {
	Create(ctx context.Context, chat entity.Chat) (*entity.Chat, error)
	Get(ctx context.Context, userID, chatID string) (*entity.Chat, error)
	List(ctx context.Context, userID string) ([]*entity.Chat, error)
	Delete(ctx context.Context, userID, chatID string) error
}

var _ ChatRepository = &ChatPostgres{}

// ChatPostgres implements ChatRepository using PostgreSQL
type ChatPostgres struct {
	db *pgxpool.Pool
}

func NewChatPostgres(db *pgxpool.Pool) *ChatPostgres {
	return &ChatPostgres{db: db}
}

func (r *ChatPostgres) Create(ctx context.Context, chat entity.Chat) (*entity.Chat, error) {
	chatID, err := uuid.Parse(chat.ID)
	if err != nil {
		return nil, fmt.Errorf("parse chat ID: %w", err)
	}
	userID, err := uuid.Parse(chat.UserID)
	if err != nil {
		return nil, fmt.Errorf("parse user ID: %w", err)
	}

	row := r.db.QueryRow(ctx, `
		INSERT INTO chats (id, user_id, title)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, title, created_at`,
		chatID, userID, chat.Title,
	)

	created, err := scanChat(row)
	if err != nil {
		return nil, fmt.Errorf("create chat: %w", err)
	}

	return created, nil
}

func (r *ChatPostgres) Get(ctx context.Context, userID, chatID string) (*entity.Chat, error) {
	cid, err := uuid.Parse(chatID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrChatNotFound, err)
	}

	row := r.db.QueryRow(ctx, `
		SELECT id, user_id, title, created_at
		FROM chats
		WHERE id = $1 AND user_id = $2`,
		cid, userID,
	)

	chat, err := scanChat(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrChatNotFound
		}
		return nil, fmt.Errorf("get chat: %w", err)
	}

	return chat, nil
}

func (r *ChatPostgres) List(ctx context.Context, userID string) ([]*entity.Chat, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, title, created_at
		FROM chats
		WHERE user_id = $1
		ORDER BY created_at DESC, id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list chats: %w", err)
	}
	defer rows.Close()

	chats := make([]*entity.Chat, 0)
	for rows.Next() {
		chat, err := scanChat(rows)
		if err != nil {
			return nil, fmt.Errorf("scan chat: %w", err)
		}
		chats = append(chats, chat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate chats: %w", err)
	}

	return chats, nil
}

func (r *ChatPostgres) Delete(ctx context.Context, userID, chatID string) error {
	cid, err := uuid.Parse(chatID)
	if err != nil {
		return fmt.Errorf("%w: %v", entity.ErrChatNotFound, err)
	}

	tag, err := r.db.Exec(ctx, `
		DELETE FROM chats
		WHERE id = $1 AND user_id = $2`,
		cid, userID,
	)
	if err != nil {
		return fmt.Errorf("delete chat: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entity.ErrChatNotFound
	}

	return nil
}

func scanChat(row pgx.Row) (*entity.Chat, error) {
	var chat entity.Chat
	err := row.Scan(
		&chat.ID,
		&chat.UserID,
		&chat.Title,
		&chat.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &chat, nil
}
