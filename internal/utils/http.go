package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-name-keeper/models"
)

// WriteJSON writes data as a JSON body with statusCode. When data cannot be
// marshalled nothing is written except a 500 and the error is returned.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set(models.HeaderContentType, models.MIMEJSON)
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
