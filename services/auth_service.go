package services

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/akinalp/mulakat/models"
	"github.com/akinalp/mulakat/pkg"
	"github.com/akinalp/mulakat/repository"
)

// AuthService, iki giriş modunu yönetir: credential ve link-token.
// Kimlik doğrulamanın kendisi harici API'dedir; bu servis sadece sonucu
// session'a çevirir.
type AuthService interface {
	LoginWithCredentials(ctx context.Context, req *models.LoginRequest) (*models.AuthResult, *IssuedSession, error)
	LoginWithLinkToken(ctx context.Context, token string) (*models.AuthResult, *IssuedSession, error)
	Logout() *IssuedSession
}

type authService struct {
	authRepo repository.AuthRepository
	sessions SessionService
	logger   logr.Logger
}

// NewAuthService, constructor.
func NewAuthService(authRepo repository.AuthRepository, sessions SessionService, logger logr.Logger) AuthService {
	return &authService{
		authRepo: authRepo,
		sessions: sessions,
		logger:   logger.WithName("auth"),
	}
}

// LoginWithCredentials, {email, password, meetId?} ile giriş.
//
// Boş email/password harici çağrıdan ÖNCE ErrBadRequest döner.
// Harici 2xx dışı yanıt UpstreamError olarak aynen yukarı taşınır.
func (s *authService) LoginWithCredentials(ctx context.Context, req *models.LoginRequest) (*models.AuthResult, *IssuedSession, error) {
	if err := req.Validate(); err != nil {
		return nil, nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	payload, err := s.authRepo.Authenticate(ctx, req)
	if err != nil {
		s.logger.Info("credential login rejected", "email", req.Email, "error", err.Error())
		return nil, nil, err
	}

	identity := models.SessionIdentity{Email: req.Email, MeetID: req.MeetID}
	issued, err := s.sessions.Issue(identity)
	if err != nil {
		return nil, nil, err
	}

	s.logger.V(1).Info("credential login ok", "email", req.Email, "meetId", req.MeetID)
	return &models.AuthResult{
		User:    models.SessionUser{Email: req.Email, MeetID: req.MeetID},
		Payload: payload,
	}, issued, nil
}

// LoginWithLinkToken, tek kullanımlık link token'ı session'a çevirir.
// Session claims sadece meetId taşır.
func (s *authService) LoginWithLinkToken(ctx context.Context, token string) (*models.AuthResult, *IssuedSession, error) {
	req := models.TokenLoginRequest{Token: token}
	if err := req.Validate(); err != nil {
		return nil, nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	payload, err := s.authRepo.ExchangeLinkToken(ctx, token)
	if err != nil {
		s.logger.Info("link token exchange rejected", "error", err.Error())
		return nil, nil, err
	}

	meetID := models.ExtractMeetID(payload)
	issued, err := s.sessions.Issue(models.SessionIdentity{MeetID: meetID})
	if err != nil {
		return nil, nil, err
	}

	s.logger.V(1).Info("link token login ok", "meetId", meetID)
	return &models.AuthResult{
		User:    models.SessionUser{MeetID: meetID},
		Payload: payload,
	}, issued, nil
}

// Logout, sunucu tarafında silinecek state yok; sadece cookie temizlenir.
func (s *authService) Logout() *IssuedSession {
	return &IssuedSession{Cookie: s.sessions.ClearCookie()}
}
