package question

import (
	"encoding/json"
	"net/http"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"docqa-backend/internal/api/middleware"
	"docqa-backend/internal/entity"
	"docqa-backend/internal/pkg/logger"
	"docqa-backend/internal/pkg/response"
)

type Handler struct {
	usecase QuestionUsecase
	models  ModelCatalog
}

func NewHandler(usecase QuestionUsecase, models ModelCatalog) *Handler {
	return &Handler{
		usecase: usecase,
		models:  models,
	}
}

// Ask handles POST /api/v1/questions
func (h *Handler) Ask(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "AskQuestion")
	user, _ := middleware.UserFromContext(ctx)

	var req entity.AskQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctxzap.Info(ctx, "question received",
		zap.String("chat_id", req.ChatID),
		zap.String("model", req.Model),
		zap.Int("query_length", len(req.Query)),
	)

	resp, err := h.usecase.Ask(ctx, user.ID, &req)
	if err != nil {
		ctxzap.Error(ctx, "ask question", zap.Error(err))
		response.DomainError(w, err)
		return
	}

	response.Success(w, resp)
}

// List handles GET /api/v1/questions
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ListQuestions")
	user, _ := middleware.UserFromContext(ctx)

	questions, err := h.usecase.ListQuestions(ctx, user.ID)
	if err != nil {
		ctxzap.Error(ctx, "list questions", zap.Error(err))
		response.DomainError(w, err)
		return
	}

	response.Success(w, questions)
}

// ListModels handles GET /api/v1/models
func (h *Handler) ListModels(w http.ResponseWriter, r *http.Request) {
	response.Success(w, map[string][]string{"models": h.models.IDs()})
}
