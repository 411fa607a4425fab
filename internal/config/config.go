package config

import (
	"os"
	"strings"
	"time"
)

// Config はアプリケーション設定を表す
type Config struct {
	Env          string
	Server       ServerConfig
	Registration RegistrationConfig
	Session      SessionConfig
	Metrics      MetricsConfig
}

// ServerConfig はサーバー設定
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	// クロスオリジンでクッキーを送るフロントエンドのオリジン（空なら同一オリジンのみ）
	AllowOrigins []string
}

// RegistrationConfig は登録処理の設定
type RegistrationConfig struct {
	// 外部API呼び出しを模した待ち時間
	Latency time.Duration
}

// SessionConfig はセッション管理の設定
type SessionConfig struct {
	CookieName    string
	IdleTimeout   time.Duration
	SweepInterval time.Duration
}

// MetricsConfig は /metrics エンドポイントの認証設定
type MetricsConfig struct {
	User     string
	Password string
}

// Load は環境変数から設定を読み込む
func Load() *Config {
	return &Config{
		Env: getEnv("APP_ENV", "development"),
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
			AllowOrigins:    getListEnv("CORS_ALLOW_ORIGINS"),
		},
		Registration: RegistrationConfig{
			Latency: getNonNegativeDurationEnv("REGISTRATION_LATENCY", 500*time.Millisecond),
		},
		Session: SessionConfig{
			CookieName:    getEnv("SESSION_COOKIE_NAME", "eventease_session"),
			IdleTimeout:   getDurationEnv("SESSION_IDLE_TIMEOUT", 30*time.Minute),
			SweepInterval: getDurationEnv("SESSION_SWEEP_INTERVAL", time.Minute),
		},
		Metrics: MetricsConfig{
			User:     getEnv("METRICS_USER", ""),
			Password: getEnv("METRICS_PASSWORD", ""),
		},
	}
}

// Addr はサーバーの待ち受けアドレスを返す
func (c *ServerConfig) Addr() string {
	return ":" + c.Port
}

// IsCrossOrigin はクロスオリジンのフロントエンドを許可しているかを返す
func (c *ServerConfig) IsCrossOrigin() bool {
	return len(c.AllowOrigins) > 0
}

// IsProduction は本番環境かどうかを返す
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// IsEnabled は認証が有効かどうかを返す
func (c *MetricsConfig) IsEnabled() bool {
	return c.User != "" && c.Password != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return d
		}
	}
	return defaultValue
}

// getNonNegativeDurationEnv は 0 を許容する（待ち時間を無効化する場合）
func getNonNegativeDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil && d >= 0 {
			return d
		}
	}
	return defaultValue
}

// getListEnv はカンマ区切りの値を返す（空要素は除く）
func getListEnv(key string) []string {
	var values []string
	for _, v := range strings.Split(os.Getenv(key), ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return values
}
