package repository

import (
	"context"

	"storefront/internal/domain/model"
)

// 認証監査ログの保存を約束。
type AuthAuditLogRepository interface {
	//監査ログを1件保存
	Create(ctx context.Context, log model.AuthAuditLog) error
}
