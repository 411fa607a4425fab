package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sanosuguru/go-event-registration/internal/application"
	"github.com/sanosuguru/go-event-registration/internal/pkg/clock"
)

// SessionStore はクライアントごとの SessionTracker をキーで管理する
// キーはクッキーで受け渡され、セッションIDとは独立している
type SessionStore struct {
	mu       sync.RWMutex
	trackers map[string]*application.SessionTracker

	clock  clock.Clock
	newKey func() string
}

// NewSessionStore は新しいSessionStoreを作成する
func NewSessionStore(clk clock.Clock) *SessionStore {
	return &SessionStore{
		trackers: make(map[string]*application.SessionTracker),
		clock:    clk,
		newKey:   uuid.NewString,
	}
}

// GetOrCreate はキーに対応するトラッカーを返す
// 既存のトラッカーは最終操作時刻を更新してから返す
// キーが空または未登録の場合は新しいキーでトラッカーを作成する
func (s *SessionStore) GetOrCreate(key string) (*application.SessionTracker, string, bool) {
	if key != "" {
		if t, ok := s.Get(key); ok {
			t.Touch()
			return t, key, false
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	newKey := s.newKey()
	t := application.NewSessionTracker(s.clock)
	s.trackers[newKey] = t
	return t, newKey, true
}

// Get はキーに対応するトラッカーを返す
func (s *SessionStore) Get(key string) (*application.SessionTracker, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.trackers[key]
	return t, ok
}

// Len は保持しているトラッカー数を返す
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.trackers)
}

// EvictIdle は idleAfter より長く操作されていないトラッカーを削除し、その数を返す
func (s *SessionStore) EvictIdle(ctx context.Context, idleAfter time.Duration) (int, error) {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for key, t := range s.trackers {
		if err := ctx.Err(); err != nil {
			return evicted, err
		}
		if now.Sub(t.LastActivity()) > idleAfter {
			delete(s.trackers, key)
			evicted++
		}
	}
	return evicted, nil
}
