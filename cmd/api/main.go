package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/sanosuguru/go-event-registration/internal/api/server"
	"github.com/sanosuguru/go-event-registration/internal/application"
	"github.com/sanosuguru/go-event-registration/internal/config"
	"github.com/sanosuguru/go-event-registration/internal/infrastructure/memory"
	"github.com/sanosuguru/go-event-registration/internal/pkg/clock"
	"github.com/sanosuguru/go-event-registration/internal/pkg/logger"
	"github.com/sanosuguru/go-event-registration/internal/pkg/metrics"
	"github.com/sanosuguru/go-event-registration/internal/worker"
)

func main() {
	cfg := config.Load()

	log := logger.Init(cfg.Env)
	defer func() { _ = logger.Sync() }()

	m := metrics.New()
	clk := clock.NewSystem()

	// コンポーネント初期化
	catalog := application.NewDefaultCatalog()
	registrar := application.NewRegistrar(clk, application.WithLatency(cfg.Registration.Latency))
	sessions := memory.NewSessionStore(clk)

	e := server.New(server.Dependencies{
		Config:    cfg,
		Clock:     clk,
		Catalog:   catalog,
		Registrar: registrar,
		Sessions:  sessions,
		Metrics:   m,
	})

	// アイドルセッションの掃除
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sweeper := worker.NewIdleSessionSweeper(sessions, m, cfg.Session.SweepInterval, cfg.Session.IdleTimeout)
	go sweeper.Start(ctx)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("サーバーを起動します",
			zap.String("addr", srv.Addr),
			zap.String("env", cfg.Env),
			zap.Int("events", len(catalog.ListEvents())),
			zap.Duration("registration_latency", cfg.Registration.Latency),
		)
		if err := e.StartServer(srv); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("サーバー起動エラー", zap.Error(err))
		}
	}()

	// シグナル待機
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("サーバーをシャットダウンしています...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("サーバーシャットダウンエラー", zap.Error(err))
	}
	sweeper.Stop()

	log.Info("サーバーが正常にシャットダウンしました",
		zap.Int("registrations", registrar.GetTotalRegistrations()),
	)
}
