// Package services, business logic katmanını barındırır.
//
// Handler (HTTP) ile Repository (harici API) arasında oturur. Session token
// üretimi/doğrulaması, meet giriş politikası, ses sağlayıcısı seçimi ve
// mülakat bitiş sırası burada yaşar.
//
// Service http.Request/Response bilmez (session cookie'si hariç: cookie
// şekli issuer'ın sözleşmesinin parçasıdır).
package services

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/akinalp/mulakat/models"
	"github.com/akinalp/mulakat/pkg"
)

// SessionCookieName, session token'ı taşıyan cookie.
const SessionCookieName = "auth-token"

// SessionTTL, token ve cookie ömrü. Mint anında sabitlenir, yenilenmez.
const SessionTTL = 24 * time.Hour

// SessionService, stateless session token'larını üretir ve doğrular.
type SessionService interface {
	// Issue, harici auth başarılı olduktan SONRA çağrılır; kimliği kendisi doğrulamaz.
	Issue(identity models.SessionIdentity) (*IssuedSession, error)
	// Verify, imza + yapı + exp kontrolü yapar. Hata her zaman ErrUnauthorized sarar.
	Verify(token string) (*models.SessionClaims, error)
	// ClearCookie, tarayıcıdaki session cookie'sini silen direktif.
	ClearCookie() *http.Cookie
}

// IssuedSession, Issue sonucu: imzalı token + cookie direktifi.
type IssuedSession struct {
	Token     string
	ExpiresAt time.Time
	Cookie    *http.Cookie
}

type sessionService struct {
	secret []byte
	secure bool
	now    func() time.Time
}

// NewSessionService, constructor. secure=true ise cookie'ye Secure flag'i eklenir.
func NewSessionService(secret string, secure bool) SessionService {
	return newSessionServiceWithClock(secret, secure, time.Now)
}

func newSessionServiceWithClock(secret string, secure bool, now func() time.Time) *sessionService {
	return &sessionService{secret: []byte(secret), secure: secure, now: now}
}

func (s *sessionService) Issue(identity models.SessionIdentity) (*IssuedSession, error) {
	if len(s.secret) == 0 {
		return nil, fmt.Errorf("%w: JWT_SECRET is not configured", pkg.ErrConfiguration)
	}

	now := s.now()
	expiresAt := now.Add(SessionTTL)

	claims := &models.SessionClaims{
		Email:  identity.Email,
		MeetID: identity.MeetID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	return &IssuedSession{
		Token:     signed,
		ExpiresAt: expiresAt,
		Cookie:    s.cookie(signed, int(SessionTTL.Seconds())),
	}, nil
}

func (s *sessionService) Verify(token string) (*models.SessionClaims, error) {
	if len(s.secret) == 0 {
		return nil, fmt.Errorf("%w: JWT_SECRET is not configured", pkg.ErrUnauthorized)
	}

	parsed, err := jwt.ParseWithClaims(token, &models.SessionClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: token expired", pkg.ErrUnauthorized)
		}
		return nil, fmt.Errorf("%w: invalid token", pkg.ErrUnauthorized)
	}

	claims, ok := parsed.Claims.(*models.SessionClaims)
	if !ok || !parsed.Valid {
		return nil, fmt.Errorf("%w: invalid token claims", pkg.ErrUnauthorized)
	}
	return claims, nil
}

func (s *sessionService) ClearCookie() *http.Cookie {
	c := s.cookie("", -1)
	c.Expires = time.Unix(0, 0)
	return c
}

func (s *sessionService) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
