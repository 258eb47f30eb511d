package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/2beens/squashcoach/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

const AuthTokenHeader = "X-COACH-TOKEN"

//go:generate mockgen -source=auth.go -destination=auth_mocks_test.go -package=middleware_test

type tokenChecker interface {
	IsValid(token string) bool
}

// StaticToken checks requests against a single shared API token.
type StaticToken string

func (t StaticToken) IsValid(token string) bool {
	if t == "" || token == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(t), []byte(token)) == 1
}

type AuthMiddlewareHandler struct {
	tokenChecker         tokenChecker
	allowedPaths         map[string]bool
	allowedPathsPrefixes []string
}

func NewAuthMiddlewareHandler(tokenChecker tokenChecker) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		tokenChecker: tokenChecker,
		allowedPaths: map[string]bool{
			"/":                true,
			"/coach/health":    true,
			"/coach/version":   true,
			"/coach/languages": true,
		},
		allowedPathsPrefixes: []string{
			"/coach/public/",
		},
	}
}

func (h *AuthMiddlewareHandler) pathIsAlwaysAllowed(path string) bool {
	if h.allowedPaths[path] {
		return true
	}
	for _, prefix := range h.allowedPathsPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			if h.pathIsAlwaysAllowed(r.URL.Path) {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			authToken := r.Header.Get(AuthTokenHeader)
			if authToken == "" {
				log.Tracef("[missing token] [auth middleware] unauthorized => %s", r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "missing-auth-token")
				return
			}

			if !h.tokenChecker.IsValid(authToken) {
				log.Tracef("[invalid token] [auth middleware] unauthorized => %s", r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "invalid-token")
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r)
		})
	}
}
