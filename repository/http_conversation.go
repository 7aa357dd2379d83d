package repository

import (
	"context"
	"net/http"

	"github.com/akinalp/mulakat/models"
)

type httpConversationRepo struct {
	api *APIClient
}

// NewHTTPConversationRepo, constructor.
func NewHTTPConversationRepo(api *APIClient) ConversationRepository {
	return &httpConversationRepo{api: api}
}

// Save, transcript'i tek seferde POST /api/conversations'a yazar. Retry yok.
func (r *httpConversationRepo) Save(ctx context.Context, conv *models.Conversation) error {
	resp, err := r.api.do(ctx, http.MethodPost, "/api/conversations", nil, conv)
	if err != nil {
		return err
	}
	if !resp.ok() {
		return resp.upstreamError("Failed to save conversation")
	}
	return nil
}
