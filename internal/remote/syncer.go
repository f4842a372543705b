package remote

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultDebounce is how long the syncer waits after the last mutation
// before pushing.
const DefaultDebounce = 2 * time.Second

// Syncer coalesces mutations into debounced pushes. There is at most
// one pending timer: scheduling while one is pending resets it, and the
// payload is read from the source only when the timer fires, so the
// push always carries the latest known state.
type Syncer struct {
	store   Store
	userID  string
	source  func() Payload
	delay   time.Duration
	timeout time.Duration
	log     *zap.SugaredLogger

	mu      sync.Mutex
	timer   *time.Timer
	lastErr error
	closed  bool
}

func NewSyncer(store Store, userID string, source func() Payload, delay time.Duration, log *zap.SugaredLogger) *Syncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Syncer{
		store:   store,
		userID:  userID,
		source:  source,
		delay:   delay,
		timeout: 30 * time.Second,
		log:     log,
	}
}

// Schedule arms (or re-arms) the debounce timer.
func (s *Syncer) Schedule() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, s.fire)
}

func (s *Syncer) fire() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.timer = nil
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	err := s.store.Push(ctx, s.userID, s.source())

	s.mu.Lock()
	s.lastErr = err
	s.mu.Unlock()
	if err != nil {
		s.log.Warnf("sync push failed: %v", err)
		return
	}
	s.log.Debugf("sync push completed for user %s", s.userID)
}

// Flush cancels any pending timer and pushes immediately. Used for the
// manual "retry sync" path.
func (s *Syncer) Flush(ctx context.Context) error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()

	err := s.store.Push(ctx, s.userID, s.source())
	s.mu.Lock()
	s.lastErr = err
	s.mu.Unlock()
	return err
}

// Cancel drops any pending push without sending it.
func (s *Syncer) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// Close cancels pending work and rejects further scheduling. Used on
// sign-out so a stale session can never write.
func (s *Syncer) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// LastErr reports the outcome of the most recent push, nil when the
// last push succeeded or none has run.
func (s *Syncer) LastErr() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Pending reports whether a debounced push is currently armed.
func (s *Syncer) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer != nil
}
