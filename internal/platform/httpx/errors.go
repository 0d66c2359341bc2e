package httpx

import (
	"errors"
	"net/http"

	"github.com/Preetham1508/DogHTTPImages/internal/shared"
)

// RespondError maps domain errors to HTTP responses.
func RespondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, shared.ErrValidation):
		Msg(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, shared.ErrMissingToken),
		errors.Is(err, shared.ErrTokenExpired),
		errors.Is(err, shared.ErrTokenInvalid),
		errors.Is(err, shared.ErrUserNotFound),
		errors.Is(err, shared.ErrInvalidCredentials):
		Msg(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, shared.ErrDuplicateEmail), errors.Is(err, shared.ErrDuplicateName):
		Msg(w, http.StatusConflict, err.Error())
	case errors.Is(err, shared.ErrNotFound):
		Msg(w, http.StatusNotFound, err.Error())
	default:
		Msg(w, http.StatusInternalServerError, "internal error")
	}
}
