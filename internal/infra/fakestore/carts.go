package fakestore

import (
	"context"
	"fmt"
	"net/http"

	"storefront/internal/domain/model"
	"storefront/internal/repository"
)

type CartStore struct {
	c *Client
}

// DI
func NewCartStore(c *Client) *CartStore {
	return &CartStore{c: c}
}

var _ repository.CartRepository = (*CartStore)(nil)

type cartEntryWire struct {
	ProductID *int64 `json:"productId"`
	Quantity  *int64 `json:"quantity"`
}

type cartWire struct {
	ID       *int64           `json:"id"`
	UserID   int64            `json:"userId"`
	Products *[]cartEntryWire `json:"products"`
}

// GET /carts/{id}
func (s *CartStore) FindByID(ctx context.Context, cartID int64) (model.Cart, error) {
	path := fmt.Sprintf("/carts/%d", cartID)

	var w *cartWire
	if err := s.c.doJSON(ctx, http.MethodGet, path, nil, &w); err != nil {
		return model.Cart{}, err
	}
	if w == nil {
		return model.Cart{}, fmt.Errorf("GET %s: %w", path, repository.ErrNotFound)
	}
	if w.ID == nil {
		return model.Cart{}, missing(path, "id")
	}
	if w.Products == nil {
		return model.Cart{}, missing(path, "products")
	}

	lines := make([]model.CartLine, 0, len(*w.Products))
	for i, e := range *w.Products {
		entryPath := fmt.Sprintf("%s.products[%d]", path, i)
		if e.ProductID == nil {
			return model.Cart{}, missing(entryPath, "productId")
		}
		if e.Quantity == nil {
			return model.Cart{}, missing(entryPath, "quantity")
		}
		//数量は1以上
		if *e.Quantity < 1 {
			return model.Cart{}, outOfRange(entryPath, "quantity")
		}
		lines = append(lines, model.CartLine{
			ProductID: *e.ProductID,
			Quantity:  *e.Quantity,
		})
	}

	return model.Cart{
		ID:     *w.ID,
		UserID: w.UserID,
		Lines:  lines,
	}, nil
}
