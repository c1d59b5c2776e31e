package chat

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"docqa-backend/internal/api/middleware"
	"docqa-backend/internal/entity"
	"docqa-backend/internal/pkg/logger"
	"docqa-backend/internal/pkg/response"
)

type Handler struct {
	usecase ChatUsecase
}

func NewHandler(usecase ChatUsecase) *Handler {
	return &Handler{usecase: usecase}
}

// CreateChat handles POST /api/v1/chats
func (h *Handler) CreateChat(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "CreateChat")
	user, _ := middleware.UserFromContext(ctx)

	var req entity.CreateChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	chat, err := h.usecase.CreateChat(ctx, user.ID, &req)
	if err != nil {
		ctxzap.Error(ctx, "create chat", zap.Error(err))
		response.DomainError(w, err)
		return
	}

	response.Created(w, chat)
}

// ListChats handles GET /api/v1/chats
func (h *Handler) ListChats(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ListChats")
	user, _ := middleware.UserFromContext(ctx)

	chats, err := h.usecase.ListChats(ctx, user.ID)
	if err != nil {
		ctxzap.Error(ctx, "list chats", zap.Error(err))
		response.DomainError(w, err)
		return
	}

	response.Success(w, chats)
}

// GetChat handles GET /api/v1/chats/{chat_id}
func (h *Handler) GetChat(w http.ResponseWriter, r *http.Request) {
	chatID := chi.URLParam(r, "chat_id")
	ctx := logger.AddFields(r.Context(),
		zap.String("chat_id", chatID),
		zap.String("action", "GetChat"),
	)
	user, _ := middleware.UserFromContext(ctx)

	chat, err := h.usecase.GetChat(ctx, user.ID, chatID)
	if err != nil {
		ctxzap.Warn(ctx, "get chat", zap.Error(err))
		response.DomainError(w, err)
		return
	}

	response.Success(w, chat)
}

// DeleteChat handles DELETE /api/v1/chats/{chat_id}
func (h *Handler) DeleteChat(w http.ResponseWriter, r *http.Request) {
	chatID := chi.URLParam(r, "chat_id")
	ctx := logger.AddFields(r.Context(),
		zap.String("chat_id", chatID),
		zap.String("action", "DeleteChat"),
	)
	user, _ := middleware.UserFromContext(ctx)

	if err := h.usecase.DeleteChat(ctx, user.ID, chatID); err != nil {
		ctxzap.Warn(ctx, "delete chat", zap.Error(err))
		response.DomainError(w, err)
		return
	}

	response.NoContent(w)
}

// ExportChat handles GET /api/v1/chats/{chat_id}/export?format=md
func (h *Handler) ExportChat(w http.ResponseWriter, r *http.Request) {
	chatID := chi.URLParam(r, "chat_id")
	format := r.URL.Query().Get("format")
	if format == "" {
		format = string(entity.FormatMarkdown)
	}

	ctx := logger.AddFields(r.Context(),
		zap.String("chat_id", chatID),
		zap.String("format", format),
		zap.String("action", "ExportChat"),
	)
	user, _ := middleware.UserFromContext(ctx)

	export, err := h.usecase.ExportChat(ctx, user.ID, chatID, entity.ExportFormat(format))
	if err != nil {
		ctxzap.Warn(ctx, "export chat", zap.Error(err))
		response.DomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.FileName+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(export.Data)
}
