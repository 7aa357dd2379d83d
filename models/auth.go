// Package models, uygulamanın domain modellerini tanımlar.
//
// Bu servis hiçbir kaydın sahibi değildir; meet, kullanıcı ve transcript
// harici API'de yaşar. Buradaki struct'lar sadece request/response şekilleri
// ve harici payload'ların normalize edilmiş halidir.
package models

import (
	"errors"
	"strings"
)

// LoginRequest, POST /api/auth body'si.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	MeetID   string `json:"meetId,omitempty"`
}

// Validate, email ve password'ün boş olmadığını kontrol eder.
func (r *LoginRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" || r.Password == "" {
		return errors.New("Email and password are required")
	}
	return nil
}

// TokenLoginRequest, POST /api/auth/token body'si.
type TokenLoginRequest struct {
	Token string `json:"token"`
}

// Validate, link token'ın varlığını kontrol eder.
func (r *TokenLoginRequest) Validate() error {
	if strings.TrimSpace(r.Token) == "" {
		return errors.New("Missing token")
	}
	return nil
}

// SessionUser, auth yanıtındaki "user" alanı.
// Link-token login'de Email boş kalır ve JSON'a yazılmaz.
type SessionUser struct {
	Email  string `json:"email,omitempty"`
	MeetID string `json:"meetId,omitempty"`
}

// AuthResult, başarılı bir login'in sonucu.
// Payload harici API'nin ham JSON gövdesidir; yanıta olduğu gibi merge edilir.
type AuthResult struct {
	User    SessionUser
	Payload map[string]any
}

// ExtractMeetID, link-token exchange yanıtından meet id'yi çıkarır.
//
// Sıra: user.meetId → meetId → user.meet_id → meet_id.
// İlk boş olmayan string değer kazanır.
func ExtractMeetID(payload map[string]any) string {
	user, _ := payload["user"].(map[string]any)

	candidates := []struct {
		src map[string]any
		key string
	}{
		{user, "meetId"},
		{payload, "meetId"},
		{user, "meet_id"},
		{payload, "meet_id"},
	}

	for _, c := range candidates {
		if c.src == nil {
			continue
		}
		if v, ok := c.src[c.key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}
