package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/akinalp/mulakat/models"
	"github.com/akinalp/mulakat/pkg"
	"github.com/akinalp/mulakat/services"
)

// MeetHandler, harici meet API'sine yerel proxy endpoint'leri.
type MeetHandler struct {
	meetService services.MeetService
}

// NewMeetHandler, constructor.
func NewMeetHandler(meetService services.MeetService) *MeetHandler {
	return &MeetHandler{meetService: meetService}
}

// Get godoc
// GET /api/meets/{id}
func (h *MeetHandler) Get(w http.ResponseWriter, r *http.Request) {
	meet, err := h.meetService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeFetchError(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, meet)
}

// GetByToken godoc
// GET /api/meets?token=...
func (h *MeetHandler) GetByToken(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "Missing token")
		return
	}

	meet, err := h.meetService.GetByToken(r.Context(), token)
	if err != nil {
		writeFetchError(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, meet)
}

// UpdateStatus godoc
// PUT /api/meets/{id}
// Body: { "status": "active" | "completed" }
//
// Geçersiz status harici API'ye hiç gitmeden 400 döner.
func (h *MeetHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateMeetStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.meetService.UpdateStatus(r.Context(), r.PathValue("id"), &req)
	if err != nil {
		_, upstream := pkg.AsUpstream(err)
		switch {
		case errors.Is(err, pkg.ErrBadRequest):
			pkg.ErrorWithMessage(w, http.StatusBadRequest, detail(err, pkg.ErrBadRequest))
		case upstream:
			pkg.ErrorWithMessage(w, http.StatusInternalServerError, "Failed to update meet status")
		case errors.Is(err, pkg.ErrConfiguration):
			pkg.ErrorWithMessage(w, http.StatusInternalServerError, detail(err, pkg.ErrConfiguration))
		default:
			pkg.ErrorWithMessage(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	pkg.JSON(w, http.StatusOK, resp)
}

// writeFetchError, meet okuma hatalarını { error, details? } olarak yazar.
// Harici 2xx dışı status aynen taşınır.
func writeFetchError(w http.ResponseWriter, err error) {
	if ue, ok := pkg.AsUpstream(err); ok {
		pkg.ErrorWithMessage(w, ue.Status, "Failed to fetch meet")
		return
	}

	switch {
	case errors.Is(err, pkg.ErrBadRequest):
		pkg.ErrorWithMessage(w, http.StatusBadRequest, detail(err, pkg.ErrBadRequest))
	case errors.Is(err, pkg.ErrNotFound):
		pkg.ErrorWithMessage(w, http.StatusNotFound, "Meet not found")
	case errors.Is(err, pkg.ErrConfiguration):
		pkg.ErrorWithMessage(w, http.StatusInternalServerError, detail(err, pkg.ErrConfiguration))
	default:
		pkg.ErrorWithDetails(w, http.StatusInternalServerError, "Failed to fetch meet", err.Error())
	}
}
