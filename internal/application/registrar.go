package application

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/sanosuguru/go-event-registration/internal/domain/registration"
	"github.com/sanosuguru/go-event-registration/internal/pkg/clock"
	"github.com/sanosuguru/go-event-registration/internal/pkg/logger"
)

// DefaultRegistrationLatency は外部API呼び出しを模した待ち時間のデフォルト
const DefaultRegistrationLatency = 500 * time.Millisecond

// Sleeper は登録時の待ち時間を実行する関数
// コンテキストがキャンセルされた場合はそのエラーを返す
type Sleeper func(ctx context.Context, d time.Duration) error

// SleepContext はコンテキストのキャンセルに対応した Sleeper
func SleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Registrar は登録を追記のみで保持し、検索・集計を提供する
// 登録済みのデータが変更・削除されることはない
type Registrar struct {
	mu            sync.RWMutex
	registrations []registration.Registration
	nextID        int

	clock   clock.Clock
	latency time.Duration
	sleep   Sleeper
}

type RegistrarOption func(*Registrar)

// WithLatency は登録時の待ち時間を変更する（0で無効）
func WithLatency(d time.Duration) RegistrarOption {
	return func(r *Registrar) {
		if d >= 0 {
			r.latency = d
		}
	}
}

// WithSleeper は待ち時間の実装を差し替える
func WithSleeper(s Sleeper) RegistrarOption {
	return func(r *Registrar) {
		if s != nil {
			r.sleep = s
		}
	}
}

func NewRegistrar(clk clock.Clock, opts ...RegistrarOption) *Registrar {
	r := &Registrar{
		registrations: []registration.Registration{},
		nextID:        1,
		clock:         clk,
		latency:       DefaultRegistrationLatency,
		sleep:         SleepContext,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RegisterForEvent は登録を受け付け、IDと登録時刻を採番して返す
// イベントIDの存在確認は行わない（呼び出し側の責務）
func (r *Registrar) RegisterForEvent(ctx context.Context, d registration.Draft) (*registration.Registration, error) {
	// 外部API呼び出しの待ち時間（ロック外で待つ）
	if err := r.sleep(ctx, r.latency); err != nil {
		return nil, fmt.Errorf("登録処理が中断されました: %w", err)
	}

	r.mu.Lock()
	reg := registration.NewRegistration(r.nextID, d, r.clock.Now())
	r.nextID++
	r.registrations = append(r.registrations, reg)
	r.mu.Unlock()

	logger.FromContext(ctx).Info("イベント登録を受け付けました",
		zap.Int("registration_id", reg.ID),
		zap.Int("event_id", reg.EventID),
		zap.Int("attendees", reg.NumberOfAttendees),
	)
	return &reg, nil
}

// GetUserRegistrations はメールアドレスに一致する登録を新しい順に返す
// 空のメールアドレスには空のスライスを返す
func (r *Registrar) GetUserRegistrations(email string) []registration.Registration {
	if registration.IsBlankEmail(email) {
		return []registration.Registration{}
	}
	return r.filterNewestFirst(func(reg registration.Registration) bool {
		return reg.MatchesEmail(email)
	})
}

// GetEventRegistrations はイベントの登録を新しい順に返す
func (r *Registrar) GetEventRegistrations(eventID int) []registration.Registration {
	return r.filterNewestFirst(func(reg registration.Registration) bool {
		return reg.EventID == eventID
	})
}

func (r *Registrar) IsUserRegistered(email string, eventID int) bool {
	if registration.IsBlankEmail(email) {
		return false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, reg := range r.registrations {
		if reg.EventID == eventID && reg.MatchesEmail(email) {
			return true
		}
	}
	return false
}

func (r *Registrar) GetTotalRegistrations() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.registrations)
}

func (r *Registrar) GetEventRegistrationCount(eventID int) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	count := 0
	for _, reg := range r.registrations {
		if reg.EventID == eventID {
			count++
		}
	}
	return count
}

func (r *Registrar) filterNewestFirst(match func(registration.Registration) bool) []registration.Registration {
	r.mu.RLock()
	result := []registration.Registration{}
	for _, reg := range r.registrations {
		if match(reg) {
			result = append(result, reg)
		}
	}
	r.mu.RUnlock()

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].NewerThan(result[j])
	})
	return result
}
