// Package main — Service katmanı başlatma.
//
// initServices, service implementasyonlarını oluşturur. Her service ihtiyaç
// duyduğu repository interface'lerini constructor injection ile alır.
//
// Sıralama: SessionService → AuthService (cookie mint eder), voice provider →
// VoiceService, email sender → ConversationService.
package main

import (
	"fmt"

	"github.com/go-logr/logr"

	"github.com/akinalp/mulakat/config"
	"github.com/akinalp/mulakat/models"
	"github.com/akinalp/mulakat/pkg/email"
	"github.com/akinalp/mulakat/pkg/voiceai"
	"github.com/akinalp/mulakat/services"
)

// Services, tüm service instance'larını tutan container struct.
type Services struct {
	Sessions     services.SessionService
	Auth         services.AuthService
	Meet         services.MeetService
	Voice        services.VoiceService
	Conversation services.ConversationService

	// Provider, interview sayfasının hangi istemci SDK'sını yükleyeceğini belirler.
	Provider voiceai.Provider
}

func initServices(cfg *config.Config, repos *Repositories, logger logr.Logger) (*Services, error) {
	sessions := services.NewSessionService(cfg.JWT.Secret, cfg.App.IsProduction())
	if cfg.JWT.Secret == "" {
		logger.Info("JWT_SECRET is not set; logins will fail and protected pages will redirect")
	}

	provider, err := newVoiceProvider(cfg.Voice)
	if err != nil {
		return nil, err
	}

	// Email bildirimi opsiyonel; Resend ayarları eksikse nil kalır.
	var notifier email.EmailSender
	if cfg.Email.EmailEnabled() {
		notifier = email.NewResendSender(cfg.Email.ResendAPIKey, cfg.Email.FromEmail, cfg.Email.NotifyEmail, cfg.App.PublicURL)
		logger.Info("interview completion emails enabled", "to", cfg.Email.NotifyEmail)
	}

	return &Services{
		Sessions:     sessions,
		Auth:         services.NewAuthService(repos.Auth, sessions, logger),
		Meet:         services.NewMeetService(repos.Meet, models.NewEntryPolicy(cfg.Interview.AllowedStatuses), logger),
		Voice:        services.NewVoiceService(repos.Agent, provider, cfg.Voice.AgentID, logger),
		Conversation: services.NewConversationService(repos.Meet, repos.Conversation, notifier, logger),
		Provider:     provider,
	}, nil
}

// newVoiceProvider, VOICE_PROVIDER'a göre sağlayıcıyı seçer.
// Eksik anahtarlar burada hata değildir; signed-url çağrısında 500 döner.
func newVoiceProvider(cfg config.VoiceConfig) (voiceai.Provider, error) {
	switch cfg.Provider {
	case "", "elevenlabs":
		return voiceai.NewElevenLabs(cfg.ElevenLabsBaseURL, cfg.ElevenLabsAPIKey, nil), nil
	case "livekit":
		return voiceai.NewLiveKit(cfg.LiveKitURL, cfg.LiveKitAPIKey, cfg.LiveKitAPISecret, services.SessionTTL), nil
	default:
		return nil, fmt.Errorf("unknown VOICE_PROVIDER %q", cfg.Provider)
	}
}
