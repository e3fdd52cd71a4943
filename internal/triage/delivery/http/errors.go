package http

import (
	"errors"
	"net/http"

	"arogyaai/internal/classifier"
	"arogyaai/internal/triage"
	pkgErrors "arogyaai/pkg/errors"
	"arogyaai/pkg/response"
)

// mapError translates use-case errors into HTTP errors. Classifier errors
// are server-side: an image was explicitly submitted, so they fail the
// request instead of degrading.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, triage.ErrEmptyInput):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Please provide either text or image or both")
	case errors.Is(err, triage.ErrInvalidLimit):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "limit must be between 1 and 100")
	case errors.Is(err, classifier.ErrModelUnavailable):
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "image analysis is currently unavailable")
	case errors.Is(err, classifier.ErrInference):
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "image could not be processed")
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, response.DefaultErrorMessage)
	}
}
