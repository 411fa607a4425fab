package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sanosuguru/go-event-registration/internal/api"
	"github.com/sanosuguru/go-event-registration/internal/application"
	"github.com/sanosuguru/go-event-registration/internal/pkg/logger"
	"github.com/sanosuguru/go-event-registration/internal/pkg/metrics"
)

// SessionStore はクッキーのキーから SessionTracker を解決する
// 既存のトラッカーを返す際は最終操作時刻を更新すること
type SessionStore interface {
	GetOrCreate(key string) (*application.SessionTracker, string, bool)
	Len() int
}

// CookieOptions はセッションクッキーの属性
type CookieOptions struct {
	Name string
	// false でも TLS 接続の場合は Secure を付ける
	Secure   bool
	SameSite http.SameSite
}

// NewCookieOptions は環境とオリジン設定からクッキー属性を決める
// クロスオリジンで送るには SameSite=None と Secure が必要
func NewCookieOptions(name string, production, crossOrigin bool) CookieOptions {
	opts := CookieOptions{Name: name, Secure: production, SameSite: http.SameSiteLaxMode}
	if crossOrigin {
		opts.Secure = true
		opts.SameSite = http.SameSiteNoneMode
	}
	return opts
}

// SessionMiddleware はクッキーで識別したクライアントの SessionTracker をコンテキストに設定する
// 未知のキーやクッキーなしの場合は新しいトラッカーを作成してクッキーを発行する
func SessionMiddleware(store SessionStore, cookie CookieOptions, m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var key string
			if ck, err := c.Cookie(cookie.Name); err == nil {
				key = ck.Value
			}

			tracker, key, created := store.GetOrCreate(key)
			if created {
				c.SetCookie(&http.Cookie{
					Name:     cookie.Name,
					Value:    key,
					Path:     "/",
					HttpOnly: true,
					Secure:   cookie.Secure || c.IsTLS(),
					SameSite: cookie.SameSite,
				})
				m.SetActiveSessions(store.Len())
				logger.FromContext(c.Request().Context()).Debug("セッションキーを発行しました")
			}

			c.Set(api.SessionTrackerContextKey, tracker)
			return next(c)
		}
	}
}
