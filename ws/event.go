// Package ws, mülakat transcript'ini WebSocket üzerinden toplar.
//
// Mimari:
//   - Handler: cookie doğrulanmış HTTP isteğini WebSocket'e yükseltir
//   - Session: tek bir bağlantının transcript'ini biriktirir (paylaşılmaz)
//   - Hub: açık session'ları takip eder; shutdown'da hepsini kapatıp flush ettirir
//
// Akış:
//  1. Tarayıcı her konuşma mesajında {op:"message", d:{source,message}} gönderir
//  2. Session mesajı sıraya ekler ve message_ack döner
//  3. {op:"end"} veya bağlantı kopması → ConversationService.Finish TAM BİR KEZ
package ws

import "encoding/json"

// Event, WebSocket üzerinden iletilen mesaj.
//
// Seq sadece server → client event'lerinde dolu; artan sayaç.
type Event struct {
	Op   string `json:"op"`
	Data any    `json:"d,omitempty"`
	Seq  int64  `json:"seq,omitempty"`
}

// inboundEvent, client'tan gelen ham event; Data op'a göre parse edilir.
type inboundEvent struct {
	Op   string          `json:"op"`
	Data json.RawMessage `json:"d,omitempty"`
}

// Client → Server operasyonları
const (
	OpHeartbeat = "heartbeat"
	OpMessage   = "message"
	OpEnd       = "end"
)

// Server → Client operasyonları
const (
	OpReady        = "ready"
	OpHeartbeatAck = "heartbeat_ack"
	OpMessageAck   = "message_ack"
	OpFinished     = "finished"
	OpError        = "error"
)

// ReadyData, bağlantı kurulunca gönderilen bilgiler.
type ReadyData struct {
	MeetID      string `json:"meet_id"`
	CandidateID string `json:"candidate_id"`
}

// MessageAckData, kabul edilen mesajın sıra numarası (0'dan).
type MessageAckData struct {
	Index int `json:"index"`
}

// ErrorData, reddedilen event için açıklama.
type ErrorData struct {
	Message string `json:"message"`
}
