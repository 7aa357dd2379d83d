package middleware

import (
	"net/http"
	"strings"

	"github.com/go-logr/logr"

	"github.com/akinalp/mulakat/services"
)

// reservedPrefixes, guard'ın hiç bakmadığı altyapı path'leri.
var reservedPrefixes = []string{"/api", "/static", "/favicon.ico", "/ws", "/healthz"}

// RouteGuard, korunan sayfalar için session kontrolü yapar.
//
// Durumlar: {Unauthenticated, Authenticated}. Geçiş sadece cookie varlığı +
// geçerliliğine bağlıdır; refresh veya sliding expiry yoktur.
// Claims downstream'e eklenmez; sayfalar ihtiyaçlarını query'den alır.
type RouteGuard struct {
	sessions  services.SessionService
	protected []string
	entryPath string
	logger    logr.Logger
}

// NewRouteGuard, constructor.
func NewRouteGuard(sessions services.SessionService, protected []string, entryPath string, logger logr.Logger) *RouteGuard {
	if entryPath == "" {
		entryPath = "/"
	}
	return &RouteGuard{
		sessions:  sessions,
		protected: protected,
		entryPath: entryPath,
		logger:    logger.WithName("guard"),
	}
}

// Wrap, tüm mux'u saran middleware.
func (g *RouteGuard) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		if hasAnyPrefix(path, reservedPrefixes) || !hasAnyPrefix(path, g.protected) {
			next.ServeHTTP(w, r)
			return
		}

		cookie, err := r.Cookie(services.SessionCookieName)
		if err != nil || cookie.Value == "" {
			g.logger.V(1).Info("no session cookie, redirecting", "path", path)
			http.Redirect(w, r, g.entryPath, http.StatusTemporaryRedirect)
			return
		}

		if _, err := g.sessions.Verify(cookie.Value); err != nil {
			g.logger.V(1).Info("invalid session, redirecting", "path", path, "reason", err.Error())
			http.Redirect(w, r, g.entryPath, http.StatusTemporaryRedirect)
			return
		}

		g.logger.V(1).Info("session ok", "path", path)
		next.ServeHTTP(w, r)
	})
}

// hasAnyPrefix, path'in prefix'lerden biriyle başlayıp başlamadığını döner.
// Düz string prefix: "/meet" hem "/meet/123" hem "/meeting" ile eşleşir.
func hasAnyPrefix(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if p != "" && strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}
