package storage

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/aliskhannn/flashcard-quiz-bot/internal/service"
)

// SessionFactory creates the session of a chat seen for the first time.
type SessionFactory func(chatID int64) *service.Session

// SessionStorage provides in-memory storage for game sessions by chat ID.
type SessionStorage struct {
	mu       sync.RWMutex
	sessions map[int64]*service.Session

	factory SessionFactory
	idleTTL time.Duration
	now     func() time.Time
	onEvict func(chatID int64)
	logger  *zap.Logger
}

// NewSessionStorage creates a new SessionStorage. Sessions idle for longer
// than idleTTL are evicted by Sweep; a zero idleTTL disables eviction.
func NewSessionStorage(factory SessionFactory, idleTTL time.Duration, logger *zap.Logger) *SessionStorage {
	return &SessionStorage{
		sessions: make(map[int64]*service.Session),
		factory:  factory,
		idleTTL:  idleTTL,
		now:      time.Now,
		logger:   logger,
	}
}

// OnEvict registers a hook called for every chat removed by Sweep.
func (s *SessionStorage) OnEvict(fn func(chatID int64)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onEvict = fn
}

// GetOrCreate returns the session of a chat, creating it on first use.
func (s *SessionStorage) GetOrCreate(chatID int64) *service.Session {
	s.mu.RLock()
	sess, ok := s.sessions[chatID]
	s.mu.RUnlock()
	if ok {
		return sess
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok = s.sessions[chatID]; ok {
		return sess
	}
	sess = s.factory(chatID)
	s.sessions[chatID] = sess

	s.logger.Debug("session created", zap.Int64("chat_id", chatID))
	return sess
}

// Get retrieves the session of a chat.
func (s *SessionStorage) Get(chatID int64) (*service.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[chatID]
	return sess, ok
}

// Delete closes and removes the session of a chat.
func (s *SessionStorage) Delete(chatID int64) {
	s.mu.Lock()
	sess, ok := s.sessions[chatID]
	delete(s.sessions, chatID)
	s.mu.Unlock()

	if ok {
		sess.Close()
	}
}

// Len returns the number of stored sessions.
func (s *SessionStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep closes and removes every session idle for longer than the TTL.
// It returns the number of evicted sessions.
func (s *SessionStorage) Sweep() int {
	if s.idleTTL <= 0 {
		return 0
	}
	deadline := s.now().Add(-s.idleTTL)

	s.mu.Lock()
	var evicted []int64
	closing := make([]*service.Session, 0)
	for chatID, sess := range s.sessions {
		if sess.LastActive().Before(deadline) {
			evicted = append(evicted, chatID)
			closing = append(closing, sess)
			delete(s.sessions, chatID)
		}
	}
	onEvict := s.onEvict
	s.mu.Unlock()

	for i, sess := range closing {
		sess.Close()
		if onEvict != nil {
			onEvict(evicted[i])
		}
	}
	return len(evicted)
}

// CloseAll closes every stored session and empties the storage.
func (s *SessionStorage) CloseAll() {
	s.mu.Lock()
	sessions := s.sessions
	s.sessions = make(map[int64]*service.Session)
	s.mu.Unlock()

	for _, sess := range sessions {
		sess.Close()
	}
}

// StartSweeper runs Sweep on the cron schedule spec until ctx is done.
func (s *SessionStorage) StartSweeper(ctx context.Context, spec string) error {
	c := cron.New(cron.WithLocation(time.UTC))

	_, err := c.AddFunc(spec, func() {
		if n := s.Sweep(); n > 0 {
			s.logger.Info("idle sessions evicted", zap.Int("count", n), zap.Int("remaining", s.Len()))
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	s.logger.Info("session sweeper started", zap.String("spec", spec))

	go func() {
		<-ctx.Done()
		<-c.Stop().Done()
		s.logger.Info("session sweeper stopped")
	}()
	return nil
}
