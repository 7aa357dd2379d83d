package repository

import (
	"context"

	"github.com/akinalp/mulakat/models"
)

// MeetRepository, harici meet kayıtları için interface.
type MeetRepository interface {
	GetByID(ctx context.Context, id string) (*models.Meet, error)
	GetByToken(ctx context.Context, token string) (*models.Meet, error)
	UpdateStatus(ctx context.Context, id string, status models.MeetStatus) error
}

// AgentRepository, meet id → konuşma ajanı çözümlemesi.
type AgentRepository interface {
	ResolveAgentID(ctx context.Context, meetID string) (string, error)
}

// ConversationRepository, transcript'in harici API'ye yazılması.
type ConversationRepository interface {
	Save(ctx context.Context, conv *models.Conversation) error
}
