package repository

import (
	"context"
	"net/http"
	"net/url"
)

// httpAgentRepo, meet id'den ajan id'sini harici API üzerinden çözer.
type httpAgentRepo struct {
	api *APIClient
}

// NewHTTPAgentRepo, constructor.
func NewHTTPAgentRepo(api *APIClient) AgentRepository {
	return &httpAgentRepo{api: api}
}

// ResolveAgentID, GET /api/meets/{id}/agent çağırır.
// Alan adı önce "agent_id", yoksa "agentId" okunur. Bulunamazsa "" döner;
// boş id'nin anlamına servis katmanı karar verir.
func (r *httpAgentRepo) ResolveAgentID(ctx context.Context, meetID string) (string, error) {
	resp, err := r.api.do(ctx, http.MethodGet, "/api/meets/"+url.PathEscape(meetID)+"/agent", nil, nil)
	if err != nil {
		return "", err
	}
	if !resp.ok() {
		return "", resp.upstreamError("Failed to fetch agent data")
	}

	payload, err := resp.decodeMap()
	if err != nil {
		return "", err
	}

	for _, key := range []string{"agent_id", "agentId"} {
		if id, ok := payload[key].(string); ok && id != "" {
			return id, nil
		}
	}
	return "", nil
}
