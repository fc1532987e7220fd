package repository

import (
	"context"

	"storefront/internal/domain/model"
)

// プロフィール取得と会員登録を約束
type UserRepository interface {
	// IDからユーザーを1件取得する。
	FindByID(ctx context.Context, userID int64) (model.User, error)
	//新規ユーザー作成。採番されたIDを返す。
	Create(ctx context.Context, user model.NewUser) (int64, error)
}
