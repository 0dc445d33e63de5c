package http

import (
	"net/http"

	"github.com/MKhiriev/go-name-keeper/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set(models.HeaderContentType, models.MIMEText)
	w.Write([]byte(serverVersion))
}
