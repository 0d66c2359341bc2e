package lists

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/Preetham1508/DogHTTPImages/internal/auth"
	"github.com/Preetham1508/DogHTTPImages/internal/platform/httpx"
	"github.com/Preetham1508/DogHTTPImages/internal/shared"
)

// Handler wires the owner-scoped list endpoints. All routes mount behind the
// auth gate, which puts the verified user on the request context.
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

// MountRoutes registers list routes on the provided (protected) router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/saveList", h.handleSave)
	r.Get("/getLists", h.handleGetLists)
	r.Delete("/deleteList/{id}", h.handleDelete)
	r.Put("/updateList/{id}", h.handleUpdate)
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		httpx.RespondError(w, shared.ErrMissingToken)
		return
	}

	var req SaveListRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Msg(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Msg(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	list, err := h.service.Save(r.Context(), user.ID, req)
	if err != nil {
		h.logError("save list", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, SaveListResponse{Message: "List saved", ID: list.ID})
}

func (h *Handler) handleGetLists(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		httpx.RespondError(w, shared.ErrMissingToken)
		return
	}

	result, err := h.service.ListForOwner(r.Context(), user.ID)
	if err != nil {
		h.logError("get lists", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, result)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		httpx.RespondError(w, shared.ErrMissingToken)
		return
	}

	if err := h.service.Delete(r.Context(), user.ID, chi.URLParam(r, "id")); err != nil {
		h.logError("delete list", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.Msg(w, http.StatusOK, "List deleted successfully")
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		httpx.RespondError(w, shared.ErrMissingToken)
		return
	}

	var req UpdateListRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Msg(w, http.StatusBadRequest, "invalid request body")
		return
	}

	changed, err := h.service.Update(r.Context(), user.ID, chi.URLParam(r, "id"), req)
	if err != nil {
		h.logError("update list", err)
		httpx.RespondError(w, err)
		return
	}
	if !changed {
		httpx.Msg(w, http.StatusOK, "No changes detected")
		return
	}
	httpx.Msg(w, http.StatusOK, "List updated successfully")
}

func (h *Handler) logError(op string, err error) {
	if h.logger == nil {
		return
	}
	if errors.Is(err, shared.ErrValidation) ||
		errors.Is(err, shared.ErrNotFound) ||
		errors.Is(err, shared.ErrDuplicateName) {
		return
	}
	h.logger.Error(op, slog.Any("error", err))
}
