package server

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sanosuguru/go-event-registration/internal/api"
	"github.com/sanosuguru/go-event-registration/internal/api/handler"
	"github.com/sanosuguru/go-event-registration/internal/api/middleware"
	"github.com/sanosuguru/go-event-registration/internal/config"
	"github.com/sanosuguru/go-event-registration/internal/pkg/clock"
	"github.com/sanosuguru/go-event-registration/internal/pkg/metrics"
)

// Dependencies はルーティングに必要なコンポーネント
type Dependencies struct {
	Config    *config.Config
	Clock     clock.Clock
	Catalog   handler.CatalogInterface
	Registrar handler.RegistrarInterface
	Sessions  middleware.SessionStore

	// Metrics が nil の場合は HTTP メトリクスを収集しない
	Metrics *metrics.Metrics
	// Gatherer が nil の場合はデフォルトレジストリを公開する
	Gatherer prometheus.Gatherer
}

// New はミドルウェアとルートを設定した Echo インスタンスを作成する
func New(d Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = api.NewValidator()
	e.HTTPErrorHandler = api.CustomHTTPErrorHandler

	middleware.SetupMiddleware(e, d.Metrics, d.Config.Server.AllowOrigins)

	// ハンドラー初期化
	healthHandler := handler.NewHealthHandler(d.Clock)
	eventHandler := handler.NewEventHandler(d.Catalog, d.Registrar, d.Clock)
	registrationHandler := handler.NewRegistrationHandler(d.Catalog, d.Registrar, d.Metrics)
	sessionHandler := handler.NewSessionHandler()

	gatherer := d.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	e.GET(middleware.MetricsPath,
		echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})),
		middleware.MetricsBasicAuth(d.Config.Metrics),
	)

	v1 := e.Group("/api/v1")
	v1.GET("/health", healthHandler.Check)

	// ヘルスチェック以外はクライアントごとのセッションを紐づける
	cookie := middleware.NewCookieOptions(d.Config.Session.CookieName, d.Config.IsProduction(), d.Config.Server.IsCrossOrigin())
	s := v1.Group("", middleware.SessionMiddleware(d.Sessions, cookie, d.Metrics))

	s.GET("/events", eventHandler.List)
	s.GET("/events/:id", eventHandler.GetByID)
	s.GET("/events/:id/registrations", eventHandler.Registrations)

	s.POST("/registrations", registrationHandler.Create)
	s.GET("/registrations", registrationHandler.ListByUser)
	s.GET("/registrations/check", registrationHandler.Check)
	s.GET("/registrations/stats", registrationHandler.Stats)

	s.GET("/session", sessionHandler.Get)
	s.DELETE("/session", sessionHandler.Clear)
	s.GET("/session/stats", sessionHandler.Stats)
	s.GET("/session/events", sessionHandler.RegisteredEvents)
	s.GET("/session/events/:id", sessionHandler.IsRegistered)

	return e
}
