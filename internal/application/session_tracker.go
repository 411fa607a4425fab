package application

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sanosuguru/go-event-registration/internal/domain/session"
	"github.com/sanosuguru/go-event-registration/internal/pkg/clock"
	"github.com/sanosuguru/go-event-registration/internal/pkg/logger"
)

// SessionTracker は1ユーザー分のセッションを最大1つ保持する
// セッションは最初のアクセス時に作成され、ClearSession で破棄される
//
// 訪問回数を数えるのは GetSession のみ。その他の参照・更新は
// EnsureSession を経由し、訪問回数を変更しない
type SessionTracker struct {
	mu         sync.Mutex
	current    *session.Session
	lastAccess time.Time

	clock clock.Clock
	newID func() string
}

type SessionTrackerOption func(*SessionTracker)

// WithSessionIDGenerator はセッションIDの生成方法を差し替える
func WithSessionIDGenerator(fn func() string) SessionTrackerOption {
	return func(t *SessionTracker) {
		if fn != nil {
			t.newID = fn
		}
	}
}

func NewSessionTracker(clk clock.Clock, opts ...SessionTrackerOption) *SessionTracker {
	t := &SessionTracker{
		clock:      clk,
		newID:      uuid.NewString,
		lastAccess: clk.Now(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// GetSession はセッションを返す
// 未作成なら作成し（訪問回数1）、作成済みなら最終訪問時刻と訪問回数を更新する
func (t *SessionTracker) GetSession() session.Session {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.touch()
	if t.current == nil {
		t.create(now)
	} else {
		t.current.RecordVisit(now)
	}
	return t.current.Snapshot()
}

// EnsureSession はセッションがなければ作成して返す。訪問回数は変更しない
func (t *SessionTracker) EnsureSession() session.Session {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ensure().Snapshot()
}

func (t *SessionTracker) AddRegisteredEvent(eventID int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.ensure().AddEvent(eventID)
}

func (t *SessionTracker) IsEventRegistered(eventID int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ensure().HasEvent(eventID)
}

func (t *SessionTracker) GetRegisteredEventIDs() []int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ensure().EventIDs()
}

func (t *SessionTracker) GetSessionStats() session.Stats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ensure().Stats()
}

// ClearSession は現在のセッションを破棄する
func (t *SessionTracker) ClearSession() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.touch()
	if t.current != nil {
		logger.Debug("セッションを破棄しました", zap.String("session_id", t.current.ID))
	}
	t.current = nil
}

// HasSession はセッションが存在するかを返す（状態は変更しない）
func (t *SessionTracker) HasSession() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current != nil
}

// Touch はセッションの状態を変えずに最終操作時刻だけを更新する
// 訪問回数を数えない参照系リクエストでもアイドル扱いされないようにする
func (t *SessionTracker) Touch() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.touch()
}

// LastActivity は最後に操作された時刻を返す
func (t *SessionTracker) LastActivity() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastAccess
}

// ensure は mu を保持した状態で呼ぶこと
func (t *SessionTracker) ensure() *session.Session {
	now := t.touch()
	if t.current == nil {
		t.create(now)
	}
	return t.current
}

func (t *SessionTracker) create(now time.Time) {
	t.current = session.NewSession(t.newID(), now)
	logger.Debug("セッションを作成しました", zap.String("session_id", t.current.ID))
}

func (t *SessionTracker) touch() time.Time {
	now := t.clock.Now()
	t.lastAccess = now
	return now
}
