package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/sanosuguru/go-event-registration/internal/pkg/metrics"
)

// SetupMiddleware は共通ミドルウェアを設定する（m が nil の場合はメトリクスを収集しない）
// allowOrigins が空の場合、API は同一オリジンからの利用に限られる
func SetupMiddleware(e *echo.Echo, m *metrics.Metrics, allowOrigins []string) {
	// リクエストID
	e.Use(middleware.RequestID())

	// 構造化リクエストログ（zap）
	e.Use(RequestLogger())

	// パニックリカバリー
	e.Use(middleware.Recover())

	// CORS
	e.Use(middleware.CORSWithConfig(corsConfig(allowOrigins)))

	if m != nil {
		e.Use(PrometheusMiddleware(m))
	}
}

// corsConfig はセッションクッキーを送れるのは明示したオリジンだけになるよう設定する
func corsConfig(allowOrigins []string) middleware.CORSConfig {
	methods := []string{echo.GET, echo.HEAD, echo.POST, echo.DELETE}
	if len(allowOrigins) == 0 {
		// 資格情報なしのワイルドカード。クッキーは送られないためセッションは共有されない
		return middleware.CORSConfig{
			AllowOrigins: []string{"*"},
			AllowMethods: methods,
		}
	}
	return middleware.CORSConfig{
		AllowOrigins:     allowOrigins,
		AllowMethods:     methods,
		AllowHeaders:     []string{echo.HeaderContentType},
		AllowCredentials: true,
	}
}
