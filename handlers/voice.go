package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/akinalp/mulakat/pkg"
	"github.com/akinalp/mulakat/pkg/voiceai"
	"github.com/akinalp/mulakat/services"
)

// VoiceHandler, konuşma widget'ının imzalı URL endpoint'i.
type VoiceHandler struct {
	voiceService services.VoiceService
}

// NewVoiceHandler, constructor.
func NewVoiceHandler(voiceService services.VoiceService) *VoiceHandler {
	return &VoiceHandler{voiceService: voiceService}
}

// SignedURL godoc
// GET /api/signed-url[?meet_id=...]
// Başarılı: { "signedUrl": "..." }, hata: { "error": "...", "details": "..." }
// meet_id parametresi verilip boş bırakılırsa 400.
func (h *VoiceHandler) SignedURL(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	meetID := strings.TrimSpace(query.Get("meet_id"))
	if query.Has("meet_id") && meetID == "" {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "Invalid meet_id")
		return
	}

	resp, err := h.voiceService.SignedURL(r.Context(), meetID)
	if err != nil {
		var verr *voiceai.Error
		if errors.As(err, &verr) {
			pkg.ErrorWithDetails(w, verr.Status, verr.Message, verr.Details)
			return
		}
		pkg.ErrorWithDetails(w, http.StatusInternalServerError, "Failed to get signed URL", err.Error())
		return
	}

	pkg.JSON(w, http.StatusOK, resp)
}
