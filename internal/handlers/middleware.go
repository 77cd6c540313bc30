package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/middleware"

	"churchapi/internal/models"
	"churchapi/internal/service"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const ActorContextKey ContextKey = "actor"

// Authenticator turns a bearer token into the actor it proves
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (models.Actor, error)
}

// Middleware holds dependencies for middleware functions
type Middleware struct {
	auth Authenticator
}

// NewMiddleware creates a new middleware instance
func NewMiddleware(auth Authenticator) *Middleware {
	return &Middleware{auth: auth}
}

// RequireAuth rejects requests without a valid "Authorization: Bearer <token>"
// header and stores the verified actor in the request context
func (m *Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			respondWithError(w, http.StatusUnauthorized, ErrMissingToken, "", nil)
			return
		}

		actor, err := m.auth.Authenticate(r.Context(), token)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), ActorContextKey, actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Require checks a capability against the request's actor before the
// handler runs, so the outcome does not depend on the request body
func (m *Middleware) Require(capability service.Capability) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, _ := GetActorFromContext(r.Context())
			if err := capability(actor); err != nil {
				respondWithServiceError(w, r, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}

// Logging middleware logs HTTP requests
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		slog.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// GetActorFromContext retrieves the authenticated actor from the request context
func GetActorFromContext(ctx context.Context) (models.Actor, bool) {
	actor, ok := ctx.Value(ActorContextKey).(models.Actor)
	return actor, ok
}
