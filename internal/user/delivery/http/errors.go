package http

import (
	"errors"
	"net/http"

	"arogyaai/internal/user"
	pkgErrors "arogyaai/pkg/errors"
	"arogyaai/pkg/response"
)

// mapError translates domain errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, user.ErrEmailTaken):
		return pkgErrors.NewHTTPError(http.StatusConflict, "User already exists")
	case errors.Is(err, user.ErrInvalidCredentials):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, "Invalid email or password")
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, response.DefaultErrorMessage)
	}
}
