// Package main — HTTP route registration.
//
// initRoutes, tüm endpoint'leri mux'a bağlar. wrapHandler global middleware
// zincirini kurar:
//
//	Recover → RequestLog → CORS → RouteGuard → mux
package main

import (
	"io"
	"net/http"

	"github.com/go-logr/logr"
	"github.com/rs/cors"

	"github.com/akinalp/mulakat/config"
	"github.com/akinalp/mulakat/middleware"
	"github.com/akinalp/mulakat/services"
	"github.com/akinalp/mulakat/static"
)

// initRoutes, middleware chain helper'ını kurar ve endpoint'leri mux'a bağlar.
//
// Route sıralama kuralı: "GET /api/meets" (token query) ile
// "GET /api/meets/{id}" ayrı pattern'lerdir, çakışmaz.
func initRoutes(mux *http.ServeMux, h *Handlers, sessions services.SessionService) {
	authMw := middleware.NewAuthMiddleware(sessions)

	auth := func(handler http.HandlerFunc) http.Handler {
		return authMw.Require(handler)
	}

	// Health check
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"status":"ok"}`)
	})

	// Auth (public)
	mux.HandleFunc("POST /api/auth", h.Auth.Login)
	mux.HandleFunc("GET /api/auth/token", h.Auth.TokenLoginQuery)
	mux.HandleFunc("POST /api/auth/token", h.Auth.TokenLoginBody)
	mux.HandleFunc("POST /api/auth/logout", h.Auth.Logout)

	// Meets, harici API proxy
	mux.HandleFunc("GET /api/meets", h.Meet.GetByToken)
	mux.HandleFunc("GET /api/meets/{id}", h.Meet.Get)
	mux.HandleFunc("PUT /api/meets/{id}", h.Meet.UpdateStatus)

	// Voice
	mux.HandleFunc("GET /api/signed-url", h.Voice.SignedURL)

	// Conversations: sadece session sahibi transcript yazabilir
	mux.Handle("POST /api/conversations", auth(h.Conversation.Finish))

	// WebSocket transcript kanalı; cookie upgrade isteğiyle birlikte gelir
	mux.Handle("GET /ws/transcript", auth(h.WS.HandleConnection))

	// Static asset'ler (embed)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(static.Assets())))

	// Sayfalar. /meet ve /interview RouteGuard tarafından korunur
	mux.HandleFunc("GET /{$}", h.Pages.Home)
	mux.HandleFunc("GET /meet/{id}", h.Pages.Meet)
	mux.HandleFunc("GET /interview", h.Pages.Interview)
	mux.HandleFunc("GET /interview/closing", h.Pages.Closing)
}

// wrapHandler, mux'u global middleware'larla sarar.
// En dıştaki Recover, diğer middleware'lardaki panic'leri de yakalar.
func wrapHandler(cfg *config.Config, mux http.Handler, sessions services.SessionService, logger logr.Logger) http.Handler {
	guard := middleware.NewRouteGuard(sessions, cfg.App.ProtectedPrefixes, cfg.App.EntryPath, logger)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	})

	var handler http.Handler = guard.Wrap(mux)
	handler = corsHandler.Handler(handler)
	handler = middleware.RequestLog(logger)(handler)
	handler = middleware.Recover(logger)(handler)
	return handler
}
