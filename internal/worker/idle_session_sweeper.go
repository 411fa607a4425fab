package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/sanosuguru/go-event-registration/internal/pkg/logger"
	"github.com/sanosuguru/go-event-registration/internal/pkg/metrics"
)

// SessionEvictor はアイドルセッションを破棄するインターフェース
type SessionEvictor interface {
	EvictIdle(ctx context.Context, idleAfter time.Duration) (int, error)
	Len() int
}

// IdleSessionSweeper は一定時間操作のないセッションを定期的に破棄するワーカー
type IdleSessionSweeper struct {
	store     SessionEvictor
	metrics   *metrics.Metrics
	interval  time.Duration
	idleAfter time.Duration
	stopCh    chan struct{}
	doneCh    chan struct{}
}

// NewIdleSessionSweeper は新しいスイーパーを作成
// m が nil の場合はメトリクスを記録しない
func NewIdleSessionSweeper(
	store SessionEvictor,
	m *metrics.Metrics,
	interval time.Duration,
	idleAfter time.Duration,
) *IdleSessionSweeper {
	return &IdleSessionSweeper{
		store:     store,
		metrics:   m,
		interval:  interval,
		idleAfter: idleAfter,
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
}

// Start はスイーパーを開始
func (w *IdleSessionSweeper) Start(ctx context.Context) {
	logger.Info("アイドルセッションスイーパー開始",
		zap.Duration("interval", w.interval),
		zap.Duration("idle_after", w.idleAfter),
	)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	defer close(w.doneCh)

	for {
		select {
		case <-ctx.Done():
			logger.Info("アイドルセッションスイーパー停止（コンテキストキャンセル）")
			return
		case <-w.stopCh:
			logger.Info("アイドルセッションスイーパー停止（シグナル受信）")
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

// Stop はスイーパーを停止
func (w *IdleSessionSweeper) Stop() {
	close(w.stopCh)
	<-w.doneCh
}

// sweep はアイドルセッションを破棄
func (w *IdleSessionSweeper) sweep(ctx context.Context) {
	log := logger.Get()
	log.Debug("アイドルセッションのクリーンアップ開始")

	count, err := w.store.EvictIdle(ctx, w.idleAfter)
	w.metrics.AddEvictedSessions(count)
	w.metrics.SetActiveSessions(w.store.Len())
	if err != nil {
		log.Error("アイドルセッションのクリーンアップ失敗", zap.Error(err))
		return
	}

	if count > 0 {
		log.Info("アイドルセッションを破棄", zap.Int("count", count))
	} else {
		log.Debug("アイドルセッションなし")
	}
}
