package handler

import (
	"net/http"

	"github.com/vaultpass/passforge/internal/model"
	"github.com/vaultpass/passforge/internal/service"
)

// SettingsHandler handles HTTP requests for the profile settings.
type SettingsHandler struct {
	service *service.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(svc *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: svc}
}

// HandleGet handles GET /api/v1/settings requests.
func (h *SettingsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.Load(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, settings)
}

// HandlePut handles PUT /api/v1/settings requests.
func (h *SettingsHandler) HandlePut(w http.ResponseWriter, r *http.Request) {
	settings := model.DefaultSettings()
	if !decodeJSON(w, r, &settings) {
		return
	}

	saved, err := h.service.Save(r.Context(), settings)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, saved)
}
