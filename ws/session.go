package ws

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-logr/logr"
	"github.com/gorilla/websocket"

	"github.com/akinalp/mulakat/models"
)

const (
	// writeWait: Bir mesajı yazmak için maksimum bekleme süresi.
	writeWait = 10 * time.Second

	// pongWait: Client'ın heartbeat göndermesi için beklenen maksimum süre.
	// Client 30 saniyede bir heartbeat gönderir.
	pongWait = 90 * time.Second

	// maxMessageSize: Tek bir event'in maksimum boyutu (uzun cevaplar için geniş).
	maxMessageSize = 64 * 1024

	// finishTimeout: Bağlantı koptuktan sonra Finish'e verilen süre.
	finishTimeout = 30 * time.Second
)

// Session, tek bir WebSocket bağlantısının transcript'i.
// Transcript sadece ReadPump goroutine'inde değişir.
type Session struct {
	hub      *Hub
	conn     *websocket.Conn
	finisher Finisher
	conv     models.Conversation
	logger   logr.Logger

	mu  sync.Mutex // conn yazmaları
	seq int64

	finishOnce sync.Once
	// shutdown, bağlantıyı server kapattıysa set edilir; sadece o zaman
	// kopma Finish'i tetikler.
	shutdown atomic.Bool
}

func newSession(hub *Hub, conn *websocket.Conn, finisher Finisher, meetID, candidateID string, logger logr.Logger) *Session {
	return &Session{
		hub:      hub,
		conn:     conn,
		finisher: finisher,
		conv: models.Conversation{
			MeetID:           meetID,
			CandidateID:      candidateID,
			ConversationData: []models.TranscriptEntry{},
		},
		logger: logger.WithValues("meetId", meetID),
	}
}

// ReadPump, bağlantı kapanana kadar client event'lerini okur.
//
// Transcript sadece "end" ile veya server shutdown'ında flush edilir.
// Beklenmeyen kopmada hiçbir şey yazılmaz: client yeniden bağlanıp
// buffer'ındaki transcript'i baştan gönderir (veya POST ile tamamlar).
func (s *Session) ReadPump() {
	defer func() {
		if s.shutdown.Load() {
			s.finish()
		}
		s.conn.Close()
		s.hub.unregister(s)
	}()

	s.conn.SetReadLimit(maxMessageSize)
	if err := s.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		s.logger.Error(err, "failed to set read deadline")
		return
	}

	s.sendEvent(Event{Op: OpReady, Data: ReadyData{MeetID: s.conv.MeetID, CandidateID: s.conv.CandidateID}})

	for {
		_, raw, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Info("unexpected close, transcript not flushed", "messages", len(s.conv.ConversationData), "error", err.Error())
			}
			return
		}

		var event inboundEvent
		if err := json.Unmarshal(raw, &event); err != nil {
			s.sendError("invalid event")
			continue
		}

		if done := s.handleEvent(event); done {
			return
		}
	}
}

// handleEvent, event'i işler. true dönerse session biter.
func (s *Session) handleEvent(event inboundEvent) bool {
	switch event.Op {
	case OpHeartbeat:
		if err := s.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			s.logger.Error(err, "failed to set read deadline")
			return true
		}
		s.sendEvent(Event{Op: OpHeartbeatAck})

	case OpMessage:
		var entry models.TranscriptEntry
		if err := json.Unmarshal(event.Data, &entry); err != nil {
			s.sendError("invalid message payload")
			return false
		}
		if err := entry.Validate(); err != nil {
			s.sendError(err.Error())
			return false
		}
		s.conv.ConversationData = append(s.conv.ConversationData, entry)
		s.sendEvent(Event{Op: OpMessageAck, Data: MessageAckData{Index: len(s.conv.ConversationData) - 1}})

	case OpEnd:
		result := s.finish()
		if result != nil {
			s.sendEvent(Event{Op: OpFinished, Data: result})
		}
		s.writeClose(websocket.CloseNormalClosure, "interview finished")
		return true

	default:
		s.sendError("unknown op: " + event.Op)
	}
	return false
}

// finish, Finish'i tam bir kez çağırır. İkinci çağrı nil döner.
// Context bağlantıdan bağımsızdır; kopmuş bağlantıda da flush yapılır.
func (s *Session) finish() (result any) {
	s.finishOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), finishTimeout)
		defer cancel()

		res, err := s.finisher.Finish(ctx, &s.conv)
		if err != nil {
			s.logger.Error(err, "finish failed", "messages", len(s.conv.ConversationData))
			result = ErrorData{Message: err.Error()}
			return
		}
		result = res
	})
	return result
}

// closeForShutdown, server kapanırken bağlantıyı kapatır; ReadPump hata alıp
// çıkar ve elindeki transcript'i flush eder.
func (s *Session) closeForShutdown() {
	s.shutdown.Store(true)
	s.writeClose(websocket.CloseGoingAway, "server shutting down")
	s.conn.Close()
}

func (s *Session) sendError(msg string) {
	s.sendEvent(Event{Op: OpError, Data: ErrorData{Message: msg}})
}

func (s *Session) sendEvent(event Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	event.Seq = s.seq
	data, err := json.Marshal(event)
	if err != nil {
		s.logger.Error(err, "failed to marshal event", "op", event.Op)
		return
	}

	if err := s.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return
	}
	if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		s.logger.V(1).Info("write failed", "op", event.Op, "error", err.Error())
	}
}

func (s *Session) writeClose(code int, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := websocket.FormatCloseMessage(code, text)
	_ = s.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
}
