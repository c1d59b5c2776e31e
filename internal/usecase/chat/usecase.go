package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"docqa-backend/internal/entity"
	"docqa-backend/internal/pkg/formatter"
	"docqa-backend/internal/repository"
)

// defaultChatTitle is used when a chat is created without a title.
const defaultChatTitle = "New Chat"

// ChatUsecase implements chat business logic
type ChatUsecase struct {
	chatRepo         repository.ChatRepository
	questionRepo     repository.QuestionRepository
	formatterFactory *formatter.Factory
	logger           *zap.Logger
}

// NewUsecase creates a new chat use case
func NewUsecase(
	chatRepo repository.ChatRepository,
	questionRepo repository.QuestionRepository,
	formatterFactory *formatter.Factory,
	logger *zap.Logger,
) *ChatUsecase {
	return &ChatUsecase{
		chatRepo:         chatRepo,
		questionRepo:     questionRepo,
		formatterFactory: formatterFactory,
		logger:           logger,
	}
}

// CreateChat creates a new chat for the user
func (uc *ChatUsecase) CreateChat(ctx context.Context, userID string, req *entity.CreateChatRequest) (*entity.Chat, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = defaultChatTitle
	}

	chat, err := uc.chatRepo.Create(ctx, entity.Chat{
		ID:     uuid.New().String(),
		UserID: userID,
		Title:  title,
	})
	if err != nil {
		return nil, fmt.Errorf("create chat: %w", err)
	}

	ctxzap.Info(ctx, "chat created",
		zap.String("chat_id", chat.ID),
		zap.String("title", chat.Title),
	)

	return chat, nil
}

// ListChats retrieves the user's chats
func (uc *ChatUsecase) ListChats(ctx context.Context, userID string) ([]*entity.Chat, error) {
	chats, err := uc.chatRepo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list chats: %w", err)
	}

	return chats, nil
}

// GetChat retrieves a chat with its full question history
func (uc *ChatUsecase) GetChat(ctx context.Context, userID, chatID string) (*entity.Chat, error) {
	chat, err := uc.chatRepo.Get(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}

	questions, err := uc.questionRepo.ListByChat(ctx, userID, chatID)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	chat.Questions = questions

	return chat, nil
}

// DeleteChat deletes a chat and its questions
func (uc *ChatUsecase) DeleteChat(ctx context.Context, userID, chatID string) error {
	if err := uc.chatRepo.Delete(ctx, userID, chatID); err != nil {
		return err
	}

	ctxzap.Info(ctx, "chat deleted", zap.String("chat_id", chatID))
	return nil
}

// Export holds a rendered chat transcript ready to be sent as a download.
type Export struct {
	Data        []byte
	ContentType string
	FileName    string
}

// ExportChat renders the chat transcript in the requested format
func (uc *ChatUsecase) ExportChat(ctx context.Context, userID, chatID string, format entity.ExportFormat) (*Export, error) {
	f, err := uc.formatterFactory.Create(format)
	if err != nil {
		return nil, err
	}

	chat, err := uc.GetChat(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}

	data, err := f.Format(chat)
	if err != nil {
		return nil, fmt.Errorf("format chat: %w", err)
	}

	ctxzap.Info(ctx, "chat exported",
		zap.String("chat_id", chatID),
		zap.String("format", string(format)),
		zap.Int("size", len(data)),
	)

	return &Export{
		Data:        data,
		ContentType: f.ContentType(),
		FileName:    exportFileName(chat.Title, f.FileExtension()),
	}, nil
}

// exportFileName derives a safe download name from the chat title.
func exportFileName(title, extension string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '"', '\'':
			return '-'
		}
		return r
	}, strings.TrimSpace(title))
	if name == "" {
		name = "chat"
	}
	return name + extension
}
