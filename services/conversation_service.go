package services

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/akinalp/mulakat/models"
	"github.com/akinalp/mulakat/pkg"
	"github.com/akinalp/mulakat/pkg/email"
	"github.com/akinalp/mulakat/repository"
)

// ConversationService, mülakat bitişini yönetir.
type ConversationService interface {
	// Finish, sırasıyla: meet'i completed yapar, transcript'i tek seferde yazar,
	// (opsiyonel) recruiter'a email atar. Status güncellemesi başarısız olsa da
	// transcript yazılır. Retry yok; hatalar sadece loglanır.
	Finish(ctx context.Context, conv *models.Conversation) (*FinishResult, error)
}

// FinishResult, Finish adımlarının sonucu.
type FinishResult struct {
	StatusUpdated bool `json:"statusUpdated"`
	Saved         bool `json:"saved"`
}

type conversationService struct {
	meetRepo repository.MeetRepository
	convRepo repository.ConversationRepository
	notifier email.EmailSender // nil ise bildirim kapalı
	logger   logr.Logger
}

// NewConversationService, constructor. notifier nil olabilir.
func NewConversationService(
	meetRepo repository.MeetRepository,
	convRepo repository.ConversationRepository,
	notifier email.EmailSender,
	logger logr.Logger,
) ConversationService {
	return &conversationService{
		meetRepo: meetRepo,
		convRepo: convRepo,
		notifier: notifier,
		logger:   logger.WithName("conversation"),
	}
}

func (s *conversationService) Finish(ctx context.Context, conv *models.Conversation) (*FinishResult, error) {
	if err := conv.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	result := &FinishResult{}
	log := s.logger.WithValues("meetId", conv.MeetID, "candidateId", conv.CandidateID)

	// 1. Status → completed
	if err := s.meetRepo.UpdateStatus(ctx, conv.MeetID, models.MeetStatusCompleted); err != nil {
		log.Error(err, "failed to mark meet completed")
	} else {
		result.StatusUpdated = true
	}

	// 2. Transcript flush (tek sefer)
	if err := s.convRepo.Save(ctx, conv); err != nil {
		log.Error(err, "failed to save conversation", "messages", len(conv.ConversationData))
	} else {
		result.Saved = true
		log.Info("conversation saved", "messages", len(conv.ConversationData))
	}

	// 3. Bildirim
	if s.notifier != nil {
		n := email.InterviewCompleted{
			MeetID:       conv.MeetID,
			CandidateID:  conv.CandidateID,
			MessageCount: len(conv.ConversationData),
			Saved:        result.Saved,
		}
		if err := s.notifier.SendInterviewCompleted(ctx, n); err != nil {
			log.Error(err, "failed to send completion email")
		}
	}

	return result, nil
}
