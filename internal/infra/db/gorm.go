package db

import (
	"fmt"

	"storefront/internal/config"
	"storefront/internal/domain/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect は監査ログ用のDBに接続して *gorm.DB を返す。
func Connect(cfg config.Config) (*gorm.DB, error) {
	gcfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)}

	// DATABASE_URL があれば最優先で使う
	if cfg.DatabaseURL != "" {
		return gorm.Open(postgres.Open(cfg.DatabaseURL), gcfg)
	}

	return gorm.Open(postgres.Open(dsn(cfg)), gcfg)
}

// テーブル作成
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(&model.AuthAuditLog{})
}

func dsn(cfg config.Config) string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.PostgresHost,
		cfg.PostgresPort,
		or(cfg.PostgresUser, "postgres"),
		or(cfg.PostgresPassword, "postgres"),
		or(cfg.PostgresDB, "storefront"),
	)
}

func or(v string, def string) string {
	if v == "" {
		return def
	}
	return v
}
