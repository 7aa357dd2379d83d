package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/akinalp/mulakat/middleware"
	"github.com/akinalp/mulakat/models"
	"github.com/akinalp/mulakat/pkg"
	"github.com/akinalp/mulakat/services"
)

// ConversationHandler, WebSocket kullanamayan client'lar için transcript flush endpoint'i.
type ConversationHandler struct {
	conversationService services.ConversationService
}

// NewConversationHandler, constructor.
func NewConversationHandler(conversationService services.ConversationService) *ConversationHandler {
	return &ConversationHandler{conversationService: conversationService}
}

// Finish godoc
// POST /api/conversations
// Body: { "meet_id": "...", "candidate_id": "...", "conversation_data": [{source, message}] }
//
// Meet'i completed yapar ve transcript'i yazar. Harici hatalar 200 içinde
// saved:false olarak döner; tarayıcı her durumda kapanış ekranına geçer.
// Session bir meet'e bağlıysa sadece o meet yazılabilir; meet_id boşsa
// session'ınki kullanılır, farklıysa 403.
func (h *ConversationHandler) Finish(w http.ResponseWriter, r *http.Request) {
	var conv models.Conversation
	if err := json.NewDecoder(r.Body).Decode(&conv); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	claims, _ := middleware.ClaimsFrom(r.Context())
	meetID, err := middleware.BindMeetID(claims, conv.MeetID)
	if err != nil {
		pkg.ErrorWithMessage(w, http.StatusForbidden, "Forbidden")
		return
	}
	conv.MeetID = meetID

	result, err := h.conversationService.Finish(r.Context(), &conv)
	if err != nil {
		if errors.Is(err, pkg.ErrBadRequest) {
			pkg.ErrorWithMessage(w, http.StatusBadRequest, detail(err, pkg.ErrBadRequest))
			return
		}
		pkg.ErrorWithMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	pkg.JSON(w, http.StatusOK, result)
}
