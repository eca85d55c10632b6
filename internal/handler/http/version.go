package http

import (
	"net/http"

	"github.com/MKhiriev/recipe-manager/internal/utils"
)

func (h *Handler) version(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{"version": h.services.AppInfoService.Version(r.Context())}, http.StatusOK)
}
