package repository

import (
	"context"
	"net/http"

	"github.com/akinalp/mulakat/models"
)

// httpAuthRepo, AuthRepository'nin harici API implementasyonu.
type httpAuthRepo struct {
	api *APIClient
}

// NewHTTPAuthRepo, constructor.
func NewHTTPAuthRepo(api *APIClient) AuthRepository {
	return &httpAuthRepo{api: api}
}

func (r *httpAuthRepo) Authenticate(ctx context.Context, req *models.LoginRequest) (map[string]any, error) {
	body := map[string]any{
		"email":    req.Email,
		"password": req.Password,
		"meetId":   req.MeetID,
	}
	return r.post(ctx, "/api/auth", body, "Authentication failed")
}

func (r *httpAuthRepo) ExchangeLinkToken(ctx context.Context, token string) (map[string]any, error) {
	return r.post(ctx, "/api/auth/token", map[string]string{"token": token}, "Token authentication failed")
}

// post, gövdeyi gönderir; 2xx dışı yanıtlar status ve mesajı korunarak
// UpstreamError olur. 2xx gövdesi JSON değilse ErrServiceUnavailable döner.
func (r *httpAuthRepo) post(ctx context.Context, path string, body any, fallback string) (map[string]any, error) {
	resp, err := r.api.do(ctx, http.MethodPost, path, nil, body)
	if err != nil {
		return nil, err
	}
	if !resp.ok() {
		return nil, resp.upstreamError(fallback)
	}
	return resp.decodeMap()
}
