package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-name-keeper/internal/service"
	"github.com/MKhiriev/go-name-keeper/internal/store"
	"github.com/MKhiriev/go-name-keeper/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:        http.StatusBadRequest,
	ErrInvalidRequestBody: http.StatusBadRequest,

	validators.ErrEmptyName:         http.StatusBadRequest,
	validators.ErrDangerousContent:  http.StatusBadRequest,
	validators.ErrInvalidCharacters: http.StatusBadRequest,
	validators.ErrTooShort:          http.StatusBadRequest,
	validators.ErrInvalidID:         http.StatusBadRequest,

	service.ErrInvalidDataProvided: http.StatusBadRequest,

	store.ErrNameNotFound:     http.StatusNotFound,
	store.ErrStoreUnavailable: http.StatusServiceUnavailable,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError responds with the status mapped from err. Client errors carry
// the error message; server errors only the status text.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	msg := err.Error()
	if status >= http.StatusInternalServerError {
		msg = http.StatusText(status)
	}
	http.Error(w, msg, status)
}
