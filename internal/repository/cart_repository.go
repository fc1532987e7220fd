package repository

import (
	"context"

	"storefront/internal/domain/model"
)

// リモートのカートは読み取り専用
type CartRepository interface {
	FindByID(ctx context.Context, cartID int64) (model.Cart, error)
}
