package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vaultpass/passforge/internal/crypto"
	"github.com/vaultpass/passforge/internal/model"
	"github.com/vaultpass/passforge/internal/service"
)

// ShareHandler handles HTTP requests for policy share tokens.
type ShareHandler struct {
	service *service.ShareService
}

// NewShareHandler creates a new ShareHandler.
func NewShareHandler(svc *service.ShareService) *ShareHandler {
	return &ShareHandler{service: svc}
}

// HandleCreate handles POST /api/v1/share requests.
func (h *ShareHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Share(req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleResolve handles GET /api/v1/share/{token} requests.
func (h *ShareHandler) HandleResolve(w http.ResponseWriter, r *http.Request) {
	policy, err := h.service.Resolve(chi.URLParam(r, "token"))
	if err != nil {
		if errors.Is(err, crypto.ErrInvalidToken) {
			writeJSON(w, http.StatusNotFound, errorResponse("share link is invalid or expired"))
			return
		}
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, policy)
}
