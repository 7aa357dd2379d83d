package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-logr/logr"

	"github.com/akinalp/mulakat/models"
	"github.com/akinalp/mulakat/pkg"
	"github.com/akinalp/mulakat/pkg/voiceai"
	"github.com/akinalp/mulakat/repository"
)

// VoiceService, tarayıcıdaki konuşma widget'ı için imzalı bağlantı URL'si üretir.
//
// Akış: meet id → ajan id (harici API) → sağlayıcıdan imzalı URL.
// Tüm hatalar *voiceai.Error olarak döner; handler Status'u aynen kullanır.
type VoiceService interface {
	SignedURL(ctx context.Context, meetID string) (*models.SignedURLResponse, error)
}

type voiceService struct {
	agentRepo    repository.AgentRepository
	provider     voiceai.Provider
	defaultAgent string
	logger       logr.Logger
}

// NewVoiceService, constructor. defaultAgent meet_id verilmediğinde kullanılır (AGENT_ID).
func NewVoiceService(agentRepo repository.AgentRepository, provider voiceai.Provider, defaultAgent string, logger logr.Logger) VoiceService {
	return &voiceService{
		agentRepo:    agentRepo,
		provider:     provider,
		defaultAgent: defaultAgent,
		logger:       logger.WithName("voice"),
	}
}

func (s *voiceService) SignedURL(ctx context.Context, meetID string) (*models.SignedURLResponse, error) {
	ref, err := s.resolveAgent(ctx, meetID)
	if err != nil {
		return nil, err
	}

	s.logger.V(1).Info("requesting signed url", "provider", s.provider.Name(), "agentId", ref.AgentID, "meetId", ref.MeetID)
	signed, err := s.provider.SignedURL(ctx, ref.AgentID, ref.MeetID)
	if err != nil {
		s.logger.Error(err, "signed url request failed", "provider", s.provider.Name(), "agentId", ref.AgentID)
		return nil, err
	}

	return &models.SignedURLResponse{SignedURL: signed}, nil
}

// resolveAgent, meet id varsa harici API'den ajanı çözer, yoksa AGENT_ID'ye düşer.
func (s *voiceService) resolveAgent(ctx context.Context, meetID string) (models.AgentRef, error) {
	if meetID == "" {
		if s.defaultAgent == "" {
			return models.AgentRef{}, &voiceai.Error{Status: http.StatusInternalServerError, Message: "AGENT_ID is not configured"}
		}
		return models.AgentRef{AgentID: s.defaultAgent}, nil
	}

	agentID, err := s.agentRepo.ResolveAgentID(ctx, meetID)
	if err != nil {
		s.logger.Error(err, "agent resolution failed", "meetId", meetID)
		details := err.Error()
		if errors.Is(err, pkg.ErrConfiguration) {
			details = "API_URL is not configured"
		}
		return models.AgentRef{}, &voiceai.Error{Status: http.StatusInternalServerError, Message: "Failed to fetch agent data", Details: details}
	}
	if agentID == "" {
		return models.AgentRef{}, &voiceai.Error{Status: http.StatusNotFound, Message: "Agent not found for meet"}
	}

	return models.AgentRef{AgentID: agentID, MeetID: meetID}, nil
}
