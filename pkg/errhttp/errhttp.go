// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/cims/pkg/httpx"
	rfiddomain "github.com/ghuser/cims/services/rfid/domain"
	supplydomain "github.com/ghuser/cims/services/supply/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	httpx.JSONError(w, mapErrorToStatus(err), err.Error())
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, supplydomain.ErrSupplyNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, supplydomain.ErrSupplyAlreadyExists):
		return http.StatusConflict // 409
	case errors.Is(err, supplydomain.ErrInvalidSupplyName),
		errors.Is(err, supplydomain.ErrInvalidStock),
		errors.Is(err, rfiddomain.ErrInvalidReportName):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, rfiddomain.ErrCatalogUnavailable):
		return http.StatusBadGateway // 502
	case errors.Is(err, rfiddomain.ErrStoreSave),
		errors.Is(err, rfiddomain.ErrCorruptStore):
		return http.StatusInternalServerError // 500
	default:
		return http.StatusInternalServerError // 500
	}
}
