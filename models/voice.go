package models

// SignedURLResponse, GET /api/signed-url başarılı yanıtı.
// Tarayıcıdaki konuşma widget'ı bu URL ile sağlayıcıya doğrudan bağlanır.
type SignedURLResponse struct {
	SignedURL string `json:"signedUrl"`
}

// AgentRef, bir meet için çözümlenen konuşma ajanı.
type AgentRef struct {
	AgentID string
	MeetID  string
}
