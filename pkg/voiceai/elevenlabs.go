package voiceai

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultElevenLabsBaseURL, ELEVENLABS_BASE_URL verilmezse kullanılır.
const DefaultElevenLabsBaseURL = "https://api.elevenlabs.io"

// ElevenLabs hata mesajları. Tarayıcıdaki widget bu metinleri gösterir.
const (
	msgInvalidAPIKey   = "Invalid API key"
	msgAgentNotFound   = "Agent not found"
	msgNetworkError    = "Network error connecting to ElevenLabs"
	msgSignedURLFailed = "Failed to get signed URL from ElevenLabs"
	msgNoSignedURL     = "No signed URL received from ElevenLabs API"
)

type elevenLabs struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewElevenLabs, constructor. httpClient nil ise 15 saniyelik timeout'lu client kullanılır.
func NewElevenLabs(baseURL, apiKey string, httpClient *http.Client) Provider {
	if baseURL == "" {
		baseURL = DefaultElevenLabsBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &elevenLabs{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

func (p *elevenLabs) Name() string { return "elevenlabs" }

// SignedURL, GET /v1/convai/conversation/get-signed-url?agent_id=... çağırır.
//
// 401 → 401 "Invalid API key", 404 → 404 "Agent not found",
// network → 503, diğer her şey → 500.
func (p *elevenLabs) SignedURL(ctx context.Context, agentID, _ string) (string, error) {
	if p.apiKey == "" {
		return "", &Error{Status: http.StatusInternalServerError, Message: "ELEVENLABS_API_KEY is not configured"}
	}

	target := p.baseURL + "/v1/convai/conversation/get-signed-url?" + url.Values{"agent_id": {agentID}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", &Error{Status: http.StatusInternalServerError, Message: msgSignedURLFailed, Details: err.Error()}
	}
	req.Header.Set("xi-api-key", p.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", &Error{Status: http.StatusServiceUnavailable, Message: msgNetworkError, Details: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", &Error{Status: http.StatusServiceUnavailable, Message: msgNetworkError, Details: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		details := fmt.Sprintf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
		switch resp.StatusCode {
		case http.StatusUnauthorized:
			return "", &Error{Status: http.StatusUnauthorized, Message: msgInvalidAPIKey, Details: details}
		case http.StatusNotFound:
			return "", &Error{Status: http.StatusNotFound, Message: msgAgentNotFound, Details: details}
		default:
			return "", &Error{Status: http.StatusInternalServerError, Message: msgSignedURLFailed, Details: details}
		}
	}

	var out struct {
		SignedURL string `json:"signed_url"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return "", &Error{Status: http.StatusInternalServerError, Message: msgSignedURLFailed, Details: err.Error()}
	}
	if out.SignedURL == "" {
		return "", &Error{Status: http.StatusInternalServerError, Message: msgNoSignedURL}
	}
	return out.SignedURL, nil
}
