package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/Preetham1508/DogHTTPImages/internal/platform/httpx"
	"github.com/Preetham1508/DogHTTPImages/internal/shared"
)

// Handler wires HTTP endpoints for signup and login.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{
		logger:    logger,
		service:   service,
		validator: validator.New(),
	}
}

// MountRoutes registers the unauthenticated auth routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/signup", h.handleSignup)
	r.Post("/login", h.handleLogin)
}

func (h *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Msg(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Msg(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	session, err := h.service.Signup(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		h.logError("signup", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, session)
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Msg(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Msg(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	session, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.logError("login", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, session)
}

// Protected is the authenticated echo endpoint; the gate has already
// resolved the user by the time it runs.
func (h *Handler) Protected(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		httpx.RespondError(w, shared.ErrMissingToken)
		return
	}
	httpx.Msg(w, http.StatusOK, fmt.Sprintf("Hello %s, this is protected!", user.Name))
}

func (h *Handler) logError(op string, err error) {
	if h.logger == nil {
		return
	}
	// Client mistakes are not server errors.
	if errors.Is(err, shared.ErrValidation) ||
		errors.Is(err, shared.ErrInvalidCredentials) ||
		errors.Is(err, shared.ErrDuplicateEmail) {
		return
	}
	h.logger.Error(op, slog.Any("error", err))
}
