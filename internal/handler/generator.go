package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/vaultpass/passforge/internal/export"
	"github.com/vaultpass/passforge/internal/model"
	"github.com/vaultpass/passforge/internal/service"
)

// GeneratorHandler handles HTTP requests for credential generation.
type GeneratorHandler struct {
	service *service.GeneratorService
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc *service.GeneratorService) *GeneratorHandler {
	return &GeneratorHandler{service: svc}
}

// HandleGenerate handles POST /api/v1/generate requests.
func (h *GeneratorHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Generate(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, resp)
}

// HandleBulk handles POST /api/v1/generate/bulk requests. The batch is
// returned as CSV when the client accepts text/csv.
func (h *GeneratorHandler) HandleBulk(w http.ResponseWriter, r *http.Request) {
	var req model.BulkRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Bulk(req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	if !strings.Contains(r.Header.Get("Accept"), "text/csv") {
		writeJSON(w, http.StatusOK, resp)
		return
	}

	w.Header().Set("Content-Type", export.ContentTypeCSV)
	w.Header().Set("Content-Disposition", `attachment; filename="passwords-`+resp.BatchID+`.csv"`)
	w.Header().Set("X-Batch-ID", resp.BatchID)
	w.WriteHeader(http.StatusOK)
	if err := export.WriteCSV(w, resp.Passwords); err != nil {
		slog.Warn("writing csv response failed", "batch_id", resp.BatchID, "error", err)
	}
}

// HandleEvaluate handles POST /api/v1/evaluate requests.
func (h *GeneratorHandler) HandleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req model.EvaluateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Evaluate(req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleWordLists handles GET /api/v1/wordlists requests.
func (h *GeneratorHandler) HandleWordLists(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.WordLists())
}

// HandlePresets handles GET /api/v1/presets requests.
func (h *GeneratorHandler) HandlePresets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Presets())
}
