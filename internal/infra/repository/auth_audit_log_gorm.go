package repository

import (
	"context"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"gorm.io/gorm"
)

type authAuditLogGormRepository struct {
	db *gorm.DB
}

func NewAuthAuditLogGormRepository(db *gorm.DB) repo.AuthAuditLogRepository {
	return &authAuditLogGormRepository{db: db}
}

func (r *authAuditLogGormRepository) Create(ctx context.Context, log model.AuthAuditLog) error {
	if err := r.db.WithContext(ctx).Create(&log).Error; err != nil {
		return err
	}
	return nil
}

// DBが無い時の実装。何も保存しない。
type noopAuthAuditLogRepository struct{}

func NewNoopAuthAuditLogRepository() repo.AuthAuditLogRepository {
	return noopAuthAuditLogRepository{}
}

func (noopAuthAuditLogRepository) Create(ctx context.Context, log model.AuthAuditLog) error {
	return nil
}
