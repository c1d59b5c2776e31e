package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"docqa-backend/internal/entity"
	"docqa-backend/internal/pkg/response"
	"docqa-backend/internal/repository"
)

type userContextKey struct{}

// UserFromContext returns the authenticated user placed by Identity.
func UserFromContext(ctx context.Context) (*entity.User, bool) {
	user, ok := ctx.Value(userContextKey{}).(*entity.User)
	return user, ok
}

// Identity resolves the caller from the X-User-ID header and attaches the
// user to the request context. Lookups are cached so the hot path skips the
// database; cache entries expire on their own, there is no invalidation.
func Identity(userRepo repository.UserRepository, ttl, cleanup time.Duration) func(next http.Handler) http.Handler {
	cache := gocache.New(ttl, cleanup)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := r.Header.Get("X-User-ID")
			if userID == "" {
				response.Error(w, http.StatusUnauthorized, "missing X-User-ID header")
				return
			}
			if _, err := uuid.Parse(userID); err != nil {
				response.Error(w, http.StatusUnauthorized, "invalid X-User-ID header")
				return
			}

			var user *entity.User
			if cached, ok := cache.Get(userID); ok {
				user = cached.(*entity.User)
			} else {
				fetched, err := userRepo.Get(r.Context(), userID)
				if err != nil {
					ctxzap.Warn(r.Context(), "user lookup failed",
						zap.String("user_id", userID),
						zap.Error(err),
					)
					response.Error(w, http.StatusUnauthorized, "unknown user")
					return
				}
				user = fetched
				cache.Set(userID, user, gocache.DefaultExpiration)
			}

			ctx := context.WithValue(r.Context(), userContextKey{}, user)
			ctx = ctxzap.ToContext(ctx, ctxzap.Extract(ctx).With(zap.String("user_id", user.ID)))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
