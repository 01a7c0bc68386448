// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/charmstore/pkg/httpx"
	catalogdomain "github.com/ghuser/charmstore/services/catalog/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors — store
// failures bubble up unmodified and land here.
func WriteError(w http.ResponseWriter, err error) {
	httpx.JSONError(w, mapErrorToStatus(err), err.Error())
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, catalogdomain.ErrProductNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, catalogdomain.ErrInvalidCategory),
		errors.Is(err, catalogdomain.ErrInvalidLimit),
		errors.Is(err, catalogdomain.ErrInvalidFeaturedFlag):
		return http.StatusUnprocessableEntity // 422 — rejected before the store
	case errors.Is(err, catalogdomain.ErrInvalidProduct):
		return http.StatusBadRequest // 400
	default:
		return http.StatusInternalServerError // 500
	}
}
