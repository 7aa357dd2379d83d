package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/akinalp/mulakat/models"
	"github.com/akinalp/mulakat/pkg"
)

// httpMeetRepo, MeetRepository'nin harici API implementasyonu.
// Meet kayıtları her çağrıda yeniden çekilir.
type httpMeetRepo struct {
	api *APIClient
}

// NewHTTPMeetRepo, constructor.
func NewHTTPMeetRepo(api *APIClient) MeetRepository {
	return &httpMeetRepo{api: api}
}

func (r *httpMeetRepo) GetByID(ctx context.Context, id string) (*models.Meet, error) {
	resp, err := r.api.do(ctx, http.MethodGet, "/api/meets/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeMeet(resp)
}

func (r *httpMeetRepo) GetByToken(ctx context.Context, token string) (*models.Meet, error) {
	resp, err := r.api.do(ctx, http.MethodGet, "/api/meets", url.Values{"token": {token}}, nil)
	if err != nil {
		return nil, err
	}
	return decodeMeet(resp)
}

func (r *httpMeetRepo) UpdateStatus(ctx context.Context, id string, status models.MeetStatus) error {
	body := models.UpdateMeetStatusRequest{Status: status}
	resp, err := r.api.do(ctx, http.MethodPut, "/api/meets/"+url.PathEscape(id), nil, body)
	if err != nil {
		return err
	}
	if !resp.ok() {
		return resp.upstreamError("Failed to update meet status")
	}
	return nil
}

// decodeMeet, yanıtı Meet'e çevirir. "null" veya boş gövde ErrNotFound sayılır.
func decodeMeet(resp *apiResponse) (*models.Meet, error) {
	if !resp.ok() {
		return nil, resp.upstreamError("Failed to fetch meet")
	}

	trimmed := bytes.TrimSpace(resp.Body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, fmt.Errorf("%w: meet", pkg.ErrNotFound)
	}

	var meet models.Meet
	if err := json.Unmarshal(trimmed, &meet); err != nil {
		return nil, fmt.Errorf("%w: invalid meet payload: %v", pkg.ErrServiceUnavailable, err)
	}
	return &meet, nil
}
