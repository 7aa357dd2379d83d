// Package voiceai, konuşma AI sağlayıcılarından tarayıcının bağlanacağı
// imzalı URL'yi üretir.
//
// Provider interface'i ile sağlayıcı detayları soyutlanır. İki implementasyon var:
//   - ElevenLabs: REST API'den get-signed-url çağrısı
//   - LiveKit:    yerel olarak imzalanan room-join access token'ı
package voiceai

import (
	"context"
	"fmt"
)

// Provider, ajan için imzalı bağlantı URL'si üretir.
type Provider interface {
	// Name, log'larda kullanılan sağlayıcı adı.
	Name() string
	// SignedURL, meetID boş olabilir (varsayılan ajan).
	SignedURL(ctx context.Context, agentID, meetID string) (string, error)
}

// Error, sağlayıcı hatasının HTTP'ye eşlenmiş hali.
// Handler Status'u aynen kullanır; Details debug içindir.
type Error struct {
	Status  int
	Message string
	Details string
}

func (e *Error) Error() string {
	if e.Details == "" {
		return fmt.Sprintf("voice provider %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("voice provider %d: %s (%s)", e.Status, e.Message, e.Details)
}
