// Package main — Handler katmanı başlatma.
//
// initHandlers, HTTP handler'larını ve WebSocket handler'ını oluşturur.
// Handler'lar "thin" dir: sadece HTTP parse + service call + response write.
package main

import (
	"github.com/go-logr/logr"

	"github.com/akinalp/mulakat/config"
	"github.com/akinalp/mulakat/handlers"
	"github.com/akinalp/mulakat/pkg/i18n"
	"github.com/akinalp/mulakat/pkg/ratelimit"
	"github.com/akinalp/mulakat/static"
	"github.com/akinalp/mulakat/ws"
)

// Handlers, tüm handler instance'larını tutan container struct.
type Handlers struct {
	Auth         *handlers.AuthHandler
	Meet         *handlers.MeetHandler
	Voice        *handlers.VoiceHandler
	Conversation *handlers.ConversationHandler
	Pages        *handlers.PageHandler
	WS           *ws.Handler
}

func initHandlers(
	cfg *config.Config,
	svcs *Services,
	hub *ws.Hub,
	catalog *i18n.Catalog,
	loginLimiter *ratelimit.LoginRateLimiter,
	logger logr.Logger,
) (*Handlers, error) {
	pages, err := handlers.NewPageHandler(static.Templates(), catalog, svcs.Meet, svcs.Provider.Name(), logger)
	if err != nil {
		return nil, err
	}

	return &Handlers{
		Auth:         handlers.NewAuthHandler(svcs.Auth, loginLimiter, logger),
		Meet:         handlers.NewMeetHandler(svcs.Meet),
		Voice:        handlers.NewVoiceHandler(svcs.Voice),
		Conversation: handlers.NewConversationHandler(svcs.Conversation),
		Pages:        pages,
		WS:           ws.NewHandler(hub, svcs.Conversation, cfg.CORS.AllowedOrigins, logger),
	}, nil
}
