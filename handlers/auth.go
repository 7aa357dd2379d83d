// Package handlers, HTTP request/response işlemlerini yönetir.
//
// Handler ince olmalı:
//  1. Request'i parse et (JSON / query → struct)
//  2. Service katmanını çağır
//  3. Sonucu HTTP response olarak yaz
//
// İş kuralları service'dedir; handler sadece köprü.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-logr/logr"

	"github.com/akinalp/mulakat/models"
	"github.com/akinalp/mulakat/pkg"
	"github.com/akinalp/mulakat/pkg/ratelimit"
	"github.com/akinalp/mulakat/services"
)

// AuthHandler, auth endpoint'lerini yöneten struct.
type AuthHandler struct {
	authService  services.AuthService
	loginLimiter *ratelimit.LoginRateLimiter
	logger       logr.Logger
}

// NewAuthHandler, constructor.
// loginLimiter nil ise rate limiting devre dışı kalır.
func NewAuthHandler(authService services.AuthService, loginLimiter *ratelimit.LoginRateLimiter, logger logr.Logger) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		loginLimiter: loginLimiter,
		logger:       logger.WithName("auth"),
	}
}

// Login godoc
// POST /api/auth
// Body: { "email": "...", "password": "...", "meetId": "..." }
//
// Rate limit validation'dan SONRA uygulanır: boş alanlar her zaman 400 döner.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		pkg.Message(w, http.StatusBadRequest, err.Error())
		return
	}

	ip := ratelimit.ExtractIP(r)
	if h.loginLimiter != nil && !h.loginLimiter.Allow(ip) {
		retryAfter := h.loginLimiter.RetryAfterSeconds(ip)
		w.Header().Set("Retry-After", fmt.Sprintf("%d", retryAfter))
		pkg.Message(w, http.StatusTooManyRequests,
			fmt.Sprintf("Too many login attempts, please try again in %s",
				ratelimit.FormatRetryMessage(retryAfter)))
		return
	}

	result, issued, err := h.authService.LoginWithCredentials(r.Context(), &req)
	if err != nil {
		writeAuthError(w, err)
		return
	}

	// Başarılı login sayacı sıfırlar.
	if h.loginLimiter != nil {
		h.loginLimiter.Reset(ip)
	}

	h.writeSession(w, result, issued)
}

// TokenLoginQuery godoc
// GET /api/auth/token?token=...
func (h *AuthHandler) TokenLoginQuery(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		pkg.Message(w, http.StatusBadRequest, "Missing token")
		return
	}
	h.tokenLogin(w, r, token)
}

// TokenLoginBody godoc
// POST /api/auth/token
// Body: { "token": "..." }
func (h *AuthHandler) TokenLoginBody(w http.ResponseWriter, r *http.Request) {
	var req models.TokenLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		pkg.Message(w, http.StatusBadRequest, err.Error())
		return
	}
	h.tokenLogin(w, r, req.Token)
}

func (h *AuthHandler) tokenLogin(w http.ResponseWriter, r *http.Request, token string) {
	result, issued, err := h.authService.LoginWithLinkToken(r.Context(), token)
	if err != nil {
		writeAuthError(w, err)
		return
	}
	h.writeSession(w, result, issued)
}

// Logout godoc
// POST /api/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.authService.Logout().Cookie)
	pkg.Message(w, http.StatusOK, "Logged out")
}

// writeSession, cookie'yi set eder ve başarılı auth yanıtını yazar.
//
// Gövde: { message, user, ...harici payload }. Çakışan anahtarlarda harici
// payload kazanır.
func (h *AuthHandler) writeSession(w http.ResponseWriter, result *models.AuthResult, issued *services.IssuedSession) {
	body := map[string]any{
		"message": "Authentication successful",
		"user":    result.User,
	}
	for k, v := range result.Payload {
		body[k] = v
	}

	http.SetCookie(w, issued.Cookie)
	pkg.JSON(w, http.StatusOK, body)
}
