package ws

import (
	"context"
	"net/http"

	"github.com/go-logr/logr"
	"github.com/gorilla/websocket"

	"github.com/akinalp/mulakat/middleware"
	"github.com/akinalp/mulakat/models"
	"github.com/akinalp/mulakat/pkg"
	"github.com/akinalp/mulakat/services"
)

// Finisher, session bittiğinde transcript'i teslim eden bağımlılık.
// services.ConversationService bunu karşılar.
type Finisher interface {
	Finish(ctx context.Context, conv *models.Conversation) (*services.FinishResult, error)
}

// Handler, /ws/transcript bağlantılarını kabul eder.
// Route'ta AuthMiddleware.Require ile sarılır; cookie yoksa 401 buraya gelmeden döner.
type Handler struct {
	hub      *Hub
	finisher Finisher
	upgrader websocket.Upgrader
	logger   logr.Logger
}

// NewHandler, constructor. allowedOrigins boşsa same-origin kontrolü
// (gorilla varsayılanı) uygulanır.
func NewHandler(hub *Hub, finisher Finisher, allowedOrigins []string, logger logr.Logger) *Handler {
	h := &Handler{
		hub:      hub,
		finisher: finisher,
		logger:   logger.WithName("ws"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
	if len(allowedOrigins) > 0 {
		h.upgrader.CheckOrigin = originChecker(allowedOrigins)
	}
	return h
}

func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, a := range allowed {
			if a == "*" || a == origin {
				return true
			}
		}
		return false
	}
}

// HandleConnection, GET /ws/transcript?meet_id=...&candidate_id=...
//
// meet_id verilmezse session claims'indeki meetId kullanılır; o da yoksa 400.
// Session bir meet'e bağlıysa başka bir meet_id 403 döner.
func (h *Handler) HandleConnection(w http.ResponseWriter, r *http.Request) {
	candidateID := r.URL.Query().Get("candidate_id")

	claims, _ := middleware.ClaimsFrom(r.Context())
	meetID, err := middleware.BindMeetID(claims, r.URL.Query().Get("meet_id"))
	if err != nil {
		h.logger.Info("meet mismatch, connection refused", "requested", r.URL.Query().Get("meet_id"))
		pkg.ErrorWithMessage(w, http.StatusForbidden, "Forbidden")
		return
	}
	if meetID == "" {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "meet_id is required")
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Info("upgrade failed", "meetId", meetID, "error", err.Error())
		return
	}

	session := newSession(h.hub, conn, h.finisher, meetID, candidateID, h.logger)
	if !h.hub.register(session) {
		session.writeClose(websocket.CloseTryAgainLater, "server shutting down")
		conn.Close()
		return
	}

	session.ReadPump()
}
