// Package pkg, projede paylaşılan utility'leri barındırır.
// Bu dosya domain-level error tanımlarını içerir.
//
// Sabit error değişkenleri errors.Is ile karşılaştırılır:
//
//	if errors.Is(err, pkg.ErrBadRequest) { ... }
package pkg

import (
	"errors"
	"fmt"
	"net/http"
)

// Domain-level error'lar.
// Handler katmanı bu error'ları HTTP status code'larına map'ler.
var (
	ErrNotFound           = errors.New("not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrBadRequest         = errors.New("bad request")
	ErrConfiguration      = errors.New("configuration error")
	ErrServiceUnavailable = errors.New("service unavailable")
	ErrInternal           = errors.New("internal error")
)

// UpstreamError, harici API'nin 2xx dışı bir yanıt döndüğünü temsil eder.
// Status ve Message değiştirilmeden client'a iletilir.
type UpstreamError struct {
	Status  int
	Message string
	// Body, harici API'nin parse edilebildiyse JSON gövdesi.
	Body map[string]any
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned %d: %s", e.Status, e.Message)
}

// NewUpstreamError, status ve mesajla UpstreamError oluşturur.
// Mesaj boşsa fallback kullanılır.
func NewUpstreamError(status int, message, fallback string, body map[string]any) *UpstreamError {
	if message == "" {
		message = fallback
	}
	return &UpstreamError{Status: status, Message: message, Body: body}
}

// AsUpstream, error chain'inde UpstreamError varsa döner.
func AsUpstream(err error) (*UpstreamError, bool) {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}

// StatusFor, domain error'ı HTTP status code'una eşler.
// errors.Is wrap edilmiş error'ları da doğru eşler.
func StatusFor(err error) int {
	if ue, ok := AsUpstream(err); ok {
		return ue.Status
	}

	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrServiceUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
