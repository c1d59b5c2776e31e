package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	chatapi "docqa-backend/internal/api/chat"
	"docqa-backend/internal/api/docs"
	documentapi "docqa-backend/internal/api/document"
	"docqa-backend/internal/api/middleware"
	questionapi "docqa-backend/internal/api/question"
	statsapi "docqa-backend/internal/api/stats"
	"docqa-backend/internal/repository"
)

// RouterConfig bundles everything SetupRouter needs to assemble the API.
type RouterConfig struct {
	ChatHandler     *chatapi.Handler
	DocumentHandler *documentapi.Handler
	QuestionHandler *questionapi.Handler
	StatsHandler    *statsapi.Handler
	UserRepo        repository.UserRepository
	UserCacheTTL    time.Duration
	UserCacheSweep  time.Duration
	Logger          *zap.Logger
}

// SetupRouter creates and configures the HTTP router
func SetupRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.CORS)
	// Generation against large documents is slow; the timeout covers the
	// full embed-retrieve-generate pipeline.
	r.Use(chimiddleware.Timeout(5 * time.Minute))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// Swagger documentation endpoints
	docs.RegisterRoutes(r)

	// All API routes require an identified user.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Identity(cfg.UserRepo, cfg.UserCacheTTL, cfg.UserCacheSweep))

		chatapi.RegisterRoutes(r, cfg.ChatHandler)
		documentapi.RegisterRoutes(r, cfg.DocumentHandler)
		questionapi.RegisterRoutes(r, cfg.QuestionHandler)
		statsapi.RegisterRoutes(r, cfg.StatsHandler)
	})

	return r
}
