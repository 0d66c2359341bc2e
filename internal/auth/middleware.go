package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/Preetham1508/DogHTTPImages/internal/platform/httpx"
	"github.com/Preetham1508/DogHTTPImages/internal/shared"
	"github.com/Preetham1508/DogHTTPImages/internal/token"
)

const bearerPrefix = "Bearer "

// Middleware guards protected routes. It verifies the bearer token, resolves
// the account it names, and injects the User into the request context. Every
// protected handler sits behind RequireUser; none reads the header itself.
type Middleware struct {
	Logger *slog.Logger
	Tokens *token.Service
	Repo   Repository
}

// RequireUser admits the request only with a verifiable token naming an
// existing user, short-circuiting with 401 otherwise.
func (m Middleware) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			httpx.RespondError(w, shared.ErrMissingToken)
			return
		}

		userID, err := m.Tokens.Verify(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			httpx.RespondError(w, err)
			return
		}

		// Tokens embed ids we assigned, so a non-uuid claim is treated the
		// same as an account that no longer exists.
		if _, err := uuid.Parse(userID); err != nil {
			httpx.RespondError(w, shared.ErrUserNotFound)
			return
		}

		user, err := m.Repo.FindByID(r.Context(), userID)
		if err != nil {
			if !errors.Is(err, shared.ErrUserNotFound) && m.Logger != nil {
				m.Logger.Error("resolve token user", slog.Any("error", err))
			}
			httpx.RespondError(w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(ContextWithUser(r.Context(), user)))
	})
}
