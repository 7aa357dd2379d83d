package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/akinalp/mulakat/models"
	"github.com/akinalp/mulakat/pkg"
	"github.com/akinalp/mulakat/repository"
)

// MeetService, harici meet kayıtları üzerindeki işlemler.
// Kayıtlar cache'lenmez; her çağrı harici API'ye gider.
type MeetService interface {
	Get(ctx context.Context, id string) (*models.Meet, error)
	GetByToken(ctx context.Context, token string) (*models.Meet, error)
	UpdateStatus(ctx context.Context, id string, req *models.UpdateMeetStatusRequest) (*models.UpdateMeetStatusResponse, error)
	// CanStartInterview, meet'in giriş politikasına uyup uymadığını döner.
	// Meet çekilemezse (veya id boşsa) false döner; hata sayfaya yansımaz.
	CanStartInterview(ctx context.Context, id string) (bool, *models.Meet)
}

type meetService struct {
	meetRepo repository.MeetRepository
	policy   models.EntryPolicy
	logger   logr.Logger
}

// NewMeetService, constructor.
func NewMeetService(meetRepo repository.MeetRepository, policy models.EntryPolicy, logger logr.Logger) MeetService {
	return &meetService{
		meetRepo: meetRepo,
		policy:   policy,
		logger:   logger.WithName("meet"),
	}
}

func (s *meetService) Get(ctx context.Context, id string) (*models.Meet, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: meet id is required", pkg.ErrBadRequest)
	}
	return s.meetRepo.GetByID(ctx, id)
}

func (s *meetService) GetByToken(ctx context.Context, token string) (*models.Meet, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: Missing token", pkg.ErrBadRequest)
	}
	return s.meetRepo.GetByToken(ctx, token)
}

// UpdateStatus, status'ü doğrular ve harici API'ye iletir.
// Geçersiz status'te harici çağrı YAPILMAZ.
func (s *meetService) UpdateStatus(ctx context.Context, id string, req *models.UpdateMeetStatusRequest) (*models.UpdateMeetStatusResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	s.logger.Info("updating meet status", "meetId", id, "status", req.Status)
	if err := s.meetRepo.UpdateStatus(ctx, id, req.Status); err != nil {
		s.logger.Error(err, "failed to update meet status", "meetId", id)
		return nil, err
	}

	return &models.UpdateMeetStatusResponse{
		Success: true,
		MeetID:  id,
		Status:  req.Status,
		Message: fmt.Sprintf("Meet %s status updated to %s", id, req.Status),
	}, nil
}

func (s *meetService) CanStartInterview(ctx context.Context, id string) (bool, *models.Meet) {
	if id == "" {
		return false, nil
	}

	meet, err := s.meetRepo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, pkg.ErrNotFound) {
			s.logger.Error(err, "failed to fetch meet for entry check", "meetId", id)
		}
		return false, nil
	}

	allowed := s.policy.Allows(meet.Status)
	s.logger.V(1).Info("entry check", "meetId", id, "status", meet.Status, "allowed", allowed)
	return allowed, meet
}
