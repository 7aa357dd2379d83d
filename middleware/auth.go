// Package middleware, HTTP request pipeline'ına eklenen ara katmanları barındırır.
//
// Go'da middleware bir fonksiyondur:
//
//	func(next http.Handler) http.Handler
//
// Zincir (dıştan içe): Recover → RequestLog → CORS → RouteGuard → mux.
// Hata varsa next çağrılmaz, request burada durur.
package middleware

import (
	"context"
	"fmt"
	"net/http"

	"github.com/akinalp/mulakat/models"
	"github.com/akinalp/mulakat/pkg"
	"github.com/akinalp/mulakat/services"
)

type contextKey string

// ClaimsContextKey, Require'ın doğrulanmış session claims'i koyduğu context key.
const ClaimsContextKey contextKey = "session_claims"

// ClaimsFrom, context'teki session claims'i döner.
func ClaimsFrom(ctx context.Context) (*models.SessionClaims, bool) {
	claims, ok := ctx.Value(ClaimsContextKey).(*models.SessionClaims)
	return claims, ok
}

// BindMeetID, istekteki meet id'yi session'ın meet'ine bağlar.
//
// Session bir meet taşıyorsa: istek boşsa claims'teki id döner, farklıysa
// ErrForbidden. Session meet taşımıyorsa (credential login) istek aynen döner.
func BindMeetID(claims *models.SessionClaims, requested string) (string, error) {
	if claims == nil || claims.MeetID == "" {
		return requested, nil
	}
	if requested == "" {
		return claims.MeetID, nil
	}
	if requested != claims.MeetID {
		return "", fmt.Errorf("%w: session is bound to another meet", pkg.ErrForbidden)
	}
	return requested, nil
}

// AuthMiddleware, auth-token cookie'sini doğrulayan API middleware'ı.
// Sayfalar için RouteGuard kullanılır (redirect); bu middleware 401 döner.
type AuthMiddleware struct {
	sessions services.SessionService
}

// NewAuthMiddleware, constructor.
func NewAuthMiddleware(sessions services.SessionService) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// Require, geçerli session cookie'si zorunlu kılar.
// Cookie yoksa veya geçersizse → 401; geçerliyse claims context'e eklenir.
func (m *AuthMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(services.SessionCookieName)
		if err != nil || cookie.Value == "" {
			pkg.ErrorWithMessage(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		claims, err := m.sessions.Verify(cookie.Value)
		if err != nil {
			pkg.ErrorWithMessage(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
