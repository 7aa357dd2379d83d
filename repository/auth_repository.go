package repository

import (
	"context"

	"github.com/akinalp/mulakat/models"
)

// AuthRepository, harici kimlik doğrulama API'si için interface.
// Başarılı çağrılar harici payload'ı ham haliyle döner.
type AuthRepository interface {
	// Authenticate, POST /api/auth, body {email, password, meetId}.
	Authenticate(ctx context.Context, req *models.LoginRequest) (map[string]any, error)
	// ExchangeLinkToken, POST /api/auth/token, body {token}.
	ExchangeLinkToken(ctx context.Context, token string) (map[string]any, error)
}
