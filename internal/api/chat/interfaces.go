package chat

import (
	"context"

	"docqa-backend/internal/entity"
	chatuc "docqa-backend/internal/usecase/chat"
)

type ChatUsecase interface {
	CreateChat(ctx context.Context, userID string, req *entity.CreateChatRequest) (*entity.Chat, error)
	ListChats(ctx context.Context, userID string) ([]*entity.Chat, error)
	GetChat(ctx context.Context, userID, chatID string) (*entity.Chat, error)
	DeleteChat(ctx context.Context, userID, chatID string) error
	ExportChat(ctx context.Context, userID, chatID string, format entity.ExportFormat) (*chatuc.Export, error)
}
