package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/akinalp/mulakat/pkg"
)

// maxResponseSize, harici API yanıtlarında okunacak maksimum byte.
const maxResponseSize = 5 * 1024 * 1024

// APIClient, harici backend API'sine JSON istekleri gönderen ortak client.
// Repository implementasyonları (http_*.go) bunun üzerine kuruludur.
//
// Retry yapılmaz; network hatası ErrServiceUnavailable olarak sarılır.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAPIClient, constructor. timeout 0 ise transport varsayılanı kullanılır.
func NewAPIClient(baseURL string, timeout time.Duration) *APIClient {
	return NewAPIClientWithHTTP(baseURL, &http.Client{Timeout: timeout})
}

// NewAPIClientWithHTTP, özel *http.Client ile constructor (test için).
func NewAPIClientWithHTTP(baseURL string, httpClient *http.Client) *APIClient {
	return &APIClient{baseURL: baseURL, httpClient: httpClient}
}

// apiResponse, ham yanıt: status + gövde.
type apiResponse struct {
	Status int
	Body   []byte
}

func (r *apiResponse) ok() bool {
	return r.Status >= 200 && r.Status < 300
}

// decodeMap, gövdeyi JSON object olarak parse eder.
// Parse edilemeyen gövde upstream arızası sayılır.
func (r *apiResponse) decodeMap() (map[string]any, error) {
	var payload map[string]any
	if err := json.Unmarshal(r.Body, &payload); err != nil {
		return nil, fmt.Errorf("%w: invalid response body (status %d): %v", pkg.ErrServiceUnavailable, r.Status, err)
	}
	if payload == nil {
		payload = map[string]any{}
	}
	return payload, nil
}

// upstreamError, 2xx dışı yanıttan UpstreamError üretir.
// Gövdede "message" veya "error" varsa mesaj olarak kullanılır.
func (r *apiResponse) upstreamError(fallback string) *pkg.UpstreamError {
	var payload map[string]any
	_ = json.Unmarshal(r.Body, &payload)

	msg := ""
	if payload != nil {
		if m, ok := payload["message"].(string); ok {
			msg = m
		} else if m, ok := payload["error"].(string); ok {
			msg = m
		}
	}
	return pkg.NewUpstreamError(r.Status, msg, fallback, payload)
}

// do, isteği gönderir ve yanıtın tamamını okur.
// body nil değilse JSON olarak encode edilir.
func (c *APIClient) do(ctx context.Context, method, path string, query url.Values, body any) (*apiResponse, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("%w: API_URL is not configured", pkg.ErrConfiguration)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", pkg.ErrServiceUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s %s: %v", pkg.ErrServiceUnavailable, method, path, err)
	}

	return &apiResponse{Status: resp.StatusCode, Body: data}, nil
}
