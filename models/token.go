package models

import "github.com/golang-jwt/jwt/v5"

// SessionClaims, auth-token cookie'sindeki JWT'nin payload'ı.
//
// Credential login'de {email, meetId}, link-token login'de sadece {meetId} taşır.
// iat/exp/jti RegisteredClaims içindedir; exp = iat + 24h mint anında sabitlenir.
type SessionClaims struct {
	Email  string `json:"email,omitempty"`
	MeetID string `json:"meetId,omitempty"`
	jwt.RegisteredClaims
}

// SessionIdentity, Issue'ya verilen kimlik alanları.
// Zaman alanları issuer tarafından doldurulur, çağıran belirleyemez.
type SessionIdentity struct {
	Email  string
	MeetID string
}
