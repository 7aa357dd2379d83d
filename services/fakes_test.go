package services

import (
	"context"
	"sync"

	"github.com/akinalp/mulakat/models"
)

// fakeAuthRepo, AuthRepository için elle yazılmış test double.
type fakeAuthRepo struct {
	payload map[string]any
	err     error
	calls   int
	lastReq *models.LoginRequest
	lastTok string
}

func (f *fakeAuthRepo) Authenticate(_ context.Context, req *models.LoginRequest) (map[string]any, error) {
	f.calls++
	f.lastReq = req
	return f.payload, f.err
}

func (f *fakeAuthRepo) ExchangeLinkToken(_ context.Context, token string) (map[string]any, error) {
	f.calls++
	f.lastTok = token
	return f.payload, f.err
}

type fakeMeetRepo struct {
	mu        sync.Mutex
	meet      *models.Meet
	err       error
	updateErr error
	updates   []models.MeetStatus
	order     *[]string
}

func (f *fakeMeetRepo) GetByID(_ context.Context, id string) (*models.Meet, error) {
	return f.meet, f.err
}

func (f *fakeMeetRepo) GetByToken(_ context.Context, token string) (*models.Meet, error) {
	return f.meet, f.err
}

func (f *fakeMeetRepo) UpdateStatus(_ context.Context, id string, status models.MeetStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, status)
	if f.order != nil {
		*f.order = append(*f.order, "status:"+string(status))
	}
	return f.updateErr
}

type fakeAgentRepo struct {
	agentID string
	err     error
	calls   int
}

func (f *fakeAgentRepo) ResolveAgentID(_ context.Context, meetID string) (string, error) {
	f.calls++
	return f.agentID, f.err
}

type fakeConversationRepo struct {
	mu    sync.Mutex
	saved []*models.Conversation
	err   error
	order *[]string
}

func (f *fakeConversationRepo) Save(_ context.Context, conv *models.Conversation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saved = append(f.saved, conv)
	if f.order != nil {
		*f.order = append(*f.order, "flush")
	}
	return f.err
}
