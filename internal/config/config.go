package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const DefaultStoreBaseURL = "https://fakestoreapi.com"

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	StoreBaseURL string        // リモートストアのURL
	StoreTimeout time.Duration // リモート呼び出しのタイムアウト（10s）

	CartID        int64 // カート画面で読むカート（1）
	ProfileUserID int64 // プロフィール画面で読むユーザー（1）
	BannerCount   int   // ホームのバナー枚数（3）

	ScreenIdleTTL time.Duration // 放置された画面を外すまでの時間（30m、0で無効）

	LogLevel string // debug/info/warn/error

	// 監査ログ用DB（任意）。DatabaseURL か PostgresHost があれば使う。
	DatabaseURL      string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresHost     string
	PostgresPort     int // DBポート（5432）
}

// Loadは環境変数
func Load() (Config, error) {
	storeTimeout, err := durationOr("STORE_TIMEOUT", 10*time.Second)
	if err != nil {
		return Config{}, err
	}
	cartID, err := int64Or("CART_ID", 1)
	if err != nil {
		return Config{}, err
	}
	userID, err := int64Or("PROFILE_USER_ID", 1)
	if err != nil {
		return Config{}, err
	}
	bannerCount, err := int64Or("BANNER_COUNT", 3)
	if err != nil {
		return Config{}, err
	}
	idleTTL, err := durationOr("SCREEN_IDLE_TTL", 30*time.Minute)
	if err != nil {
		return Config{}, err
	}
	pgPort, err := int64Or("POSTGRES_PORT", 5432)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port: getenv("PORT", "8080"),

		StoreBaseURL: getenv("STORE_BASE_URL", DefaultStoreBaseURL),
		StoreTimeout: storeTimeout,

		CartID:        cartID,
		ProfileUserID: userID,
		BannerCount:   int(bannerCount),
		ScreenIdleTTL: idleTTL,

		LogLevel: getenv("LOG_LEVEL", "info"),

		DatabaseURL:      os.Getenv("DATABASE_URL"),
		PostgresUser:     os.Getenv("POSTGRES_USER"),
		PostgresPassword: os.Getenv("POSTGRES_PASSWORD"),
		PostgresDB:       os.Getenv("POSTGRES_DB"),
		PostgresHost:     os.Getenv("POSTGRES_HOST"),
		PostgresPort:     int(pgPort),
	}

	//範囲チェック
	if cfg.StoreTimeout <= 0 {
		return Config{}, fmt.Errorf("STORE_TIMEOUT must be positive")
	}
	if cfg.CartID <= 0 {
		return Config{}, fmt.Errorf("CART_ID must be positive")
	}
	if cfg.ProfileUserID <= 0 {
		return Config{}, fmt.Errorf("PROFILE_USER_ID must be positive")
	}
	if cfg.ScreenIdleTTL < 0 {
		return Config{}, fmt.Errorf("SCREEN_IDLE_TTL must not be negative")
	}
	if cfg.BannerCount < 0 {
		return Config{}, fmt.Errorf("BANNER_COUNT must not be negative")
	}

	return cfg, nil
}

// 監査ログ用のDBが設定されているか
func (c Config) AuditDBEnabled() bool {
	return c.DatabaseURL != "" || c.PostgresHost != ""
}

// ":8080" 形式
func (c Config) Addr() string {
	if c.Port != "" && c.Port[0] == ':' {
		return c.Port
	}
	return ":" + c.Port
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func int64Or(key string, def int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}

func durationOr(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be duration: %w", key, err)
	}
	return d, nil
}
