package ws

import (
	"context"
	"sync"

	"github.com/go-logr/logr"
)

// Hub, açık transcript session'larını takip eder.
//
// Session'lar arasında veri paylaşılmaz; Hub sadece graceful shutdown için
// vardır: Shutdown her bağlantıyı kapatır, ReadPump'lar çıkarken Finish çalışır
// ve transcript'ler process kapanmadan flush edilir. Client kaynaklı kopmalar
// Finish çalıştırmaz.
type Hub struct {
	mu       sync.Mutex
	sessions map[*Session]struct{}
	wg       sync.WaitGroup
	closed   bool
	logger   logr.Logger
}

// NewHub, constructor.
func NewHub(logger logr.Logger) *Hub {
	return &Hub{
		sessions: make(map[*Session]struct{}),
		logger:   logger.WithName("ws"),
	}
}

// register, session'ı ekler. Shutdown başladıysa false döner.
func (h *Hub) register(s *Session) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return false
	}
	h.sessions[s] = struct{}{}
	h.wg.Add(1)
	h.logger.V(1).Info("session opened", "meetId", s.conv.MeetID, "open", len(h.sessions))
	return true
}

// unregister, Finish tamamlandıktan sonra çağrılır.
func (h *Hub) unregister(s *Session) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.sessions[s]; !ok {
		return
	}
	delete(h.sessions, s)
	h.wg.Done()
	h.logger.V(1).Info("session closed", "meetId", s.conv.MeetID, "open", len(h.sessions))
}

// Count, açık session sayısı.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.sessions)
}

// Shutdown, yeni bağlantıları reddeder, açık olanları kapatır ve
// hepsinin Finish'i bitene kadar (veya ctx dolana kadar) bekler.
func (h *Hub) Shutdown(ctx context.Context) error {
	h.mu.Lock()
	h.closed = true
	open := make([]*Session, 0, len(h.sessions))
	for s := range h.sessions {
		open = append(open, s)
	}
	h.mu.Unlock()

	if len(open) > 0 {
		h.logger.Info("closing open transcript sessions", "count", len(open))
	}
	for _, s := range open {
		s.closeForShutdown()
	}

	done := make(chan struct{})
	go func() {
		h.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
