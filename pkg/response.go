package pkg

import (
	"encoding/json"
	"net/http"
)

// Response şekilleri endpoint ailesine göre farklıdır:
//   - Auth endpoint'leri: { "message": "..." }
//   - Meet / signed-url endpoint'leri: { "error": "...", "details": "..." }
// Başarılı yanıtlarda payload olduğu gibi yazılır (envelope yok).

// MessageBody, auth endpoint'lerinin hata gövdesi.
type MessageBody struct {
	Message string `json:"message"`
}

// ErrorBody, meet ve voice endpoint'lerinin hata gövdesi.
type ErrorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// JSON, payload'ı verilen status ile yazar.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

// Message, { "message": msg } yazar.
func Message(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, MessageBody{Message: msg})
}

// ErrorWithMessage, { "error": msg } yazar.
func ErrorWithMessage(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, ErrorBody{Error: msg})
}

// ErrorWithDetails, { "error": msg, "details": details } yazar.
func ErrorWithDetails(w http.ResponseWriter, status int, msg, details string) {
	JSON(w, status, ErrorBody{Error: msg, Details: details})
}
