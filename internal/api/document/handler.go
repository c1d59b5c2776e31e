package document

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"docqa-backend/internal/api/middleware"
	"docqa-backend/internal/config"
	"docqa-backend/internal/pkg/logger"
	"docqa-backend/internal/pkg/response"
)

type Handler struct {
	usecase DocumentUsecase
	cfg     config.FileUploadConfig
}

func NewHandler(usecase DocumentUsecase, cfg config.FileUploadConfig) *Handler {
	return &Handler{
		usecase: usecase,
		cfg:     cfg,
	}
}

// Upload handles POST /api/v1/documents
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "UploadDocument")
	user, _ := middleware.UserFromContext(ctx)

	if err := r.ParseMultipartForm(h.cfg.MaxUploadSize); err != nil {
		ctxzap.Warn(ctx, "parse multipart form", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid form data or size too large")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		ctxzap.Error(ctx, "read uploaded file", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "could not read uploaded file")
		return
	}

	ctxzap.Info(ctx, "uploading document",
		zap.String("file_name", header.Filename),
		zap.Int("size", len(data)),
	)

	document, err := h.usecase.Upload(ctx, user.ID, header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		ctxzap.Error(ctx, "upload document", zap.Error(err))
		response.DomainError(w, err)
		return
	}

	response.Created(w, document)
}

// ListDocuments handles GET /api/v1/documents
func (h *Handler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ListDocuments")
	user, _ := middleware.UserFromContext(ctx)

	documents, err := h.usecase.ListDocuments(ctx, user.ID)
	if err != nil {
		ctxzap.Error(ctx, "list documents", zap.Error(err))
		response.DomainError(w, err)
		return
	}

	response.Success(w, documents)
}

// GetDocument handles GET /api/v1/documents/{document_id}
func (h *Handler) GetDocument(w http.ResponseWriter, r *http.Request) {
	documentID := chi.URLParam(r, "document_id")
	ctx := logger.AddFields(r.Context(),
		zap.String("document_id", documentID),
		zap.String("action", "GetDocument"),
	)
	user, _ := middleware.UserFromContext(ctx)

	document, err := h.usecase.GetDocument(ctx, user.ID, documentID)
	if err != nil {
		ctxzap.Warn(ctx, "get document", zap.Error(err))
		response.DomainError(w, err)
		return
	}

	response.Success(w, document)
}

// DeleteDocument handles DELETE /api/v1/documents/{document_id}
func (h *Handler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	documentID := chi.URLParam(r, "document_id")
	ctx := logger.AddFields(r.Context(),
		zap.String("document_id", documentID),
		zap.String("action", "DeleteDocument"),
	)
	user, _ := middleware.UserFromContext(ctx)

	if err := h.usecase.DeleteDocument(ctx, user.ID, documentID); err != nil {
		ctxzap.Warn(ctx, "delete document", zap.Error(err))
		response.DomainError(w, err)
		return
	}

	response.NoContent(w)
}
