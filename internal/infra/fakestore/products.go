package fakestore

import (
	"context"
	"fmt"
	"net/http"

	"storefront/internal/domain/model"
	"storefront/internal/repository"

	"github.com/shopspring/decimal"
)

type ProductStore struct {
	c *Client
}

// DI
func NewProductStore(c *Client) *ProductStore {
	return &ProductStore{c: c}
}

var _ repository.ProductRepository = (*ProductStore)(nil)

type ratingWire struct {
	Rate  *float64 `json:"rate"`
	Count int64    `json:"count"`
}

type productWire struct {
	ID          *int64           `json:"id"`
	Title       *string          `json:"title"`
	Price       *decimal.Decimal `json:"price"`
	Description string           `json:"description"`
	Category    string           `json:"category"`
	Image       string           `json:"image"`
	Rating      *ratingWire      `json:"rating"`
}

// 必須フィールドを検証してドメインモデルへ変換する
func (w productWire) toModel(path string) (model.Product, error) {
	if w.ID == nil {
		return model.Product{}, missing(path, "id")
	}
	if *w.ID <= 0 {
		return model.Product{}, outOfRange(path, "id")
	}
	if w.Title == nil {
		return model.Product{}, missing(path, "title")
	}
	if w.Price == nil {
		return model.Product{}, missing(path, "price")
	}
	if w.Price.IsNegative() {
		return model.Product{}, outOfRange(path, "price")
	}
	if w.Rating == nil {
		return model.Product{}, missing(path, "rating")
	}
	if w.Rating.Rate == nil {
		return model.Product{}, missing(path, "rating.rate")
	}
	if *w.Rating.Rate < 0 || *w.Rating.Rate > 5 {
		return model.Product{}, outOfRange(path, "rating.rate")
	}
	if w.Rating.Count < 0 {
		return model.Product{}, outOfRange(path, "rating.count")
	}

	return model.Product{
		ID:          *w.ID,
		Title:       *w.Title,
		Price:       *w.Price,
		Image:       w.Image,
		Description: w.Description,
		Category:    w.Category,
		Rating: model.Rating{
			Rate:  *w.Rating.Rate,
			Count: w.Rating.Count,
		},
	}, nil
}

// GET /products
// 1件でも壊れていれば一覧全体をエラーにする（部分的な結果は返さない）。
func (s *ProductStore) List(ctx context.Context) ([]model.Product, error) {
	const path = "/products"

	var wires []productWire
	if err := s.c.doJSON(ctx, http.MethodGet, path, nil, &wires); err != nil {
		return nil, err
	}

	products := make([]model.Product, 0, len(wires))
	for i, w := range wires {
		p, err := w.toModel(fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

// GET /products/{id}
func (s *ProductStore) FindByID(ctx context.Context, id int64) (model.Product, error) {
	path := fmt.Sprintf("/products/%d", id)

	// 存在しないIDでも200で空本文を返すことがあるのでポインタで受ける
	var w *productWire
	if err := s.c.doJSON(ctx, http.MethodGet, path, nil, &w); err != nil {
		return model.Product{}, err
	}
	if w == nil {
		return model.Product{}, fmt.Errorf("GET %s: %w", path, repository.ErrNotFound)
	}
	return w.toModel(path)
}

// GET /products/categories
func (s *ProductStore) ListCategories(ctx context.Context) ([]model.Category, error) {
	const path = "/products/categories"

	var labels []string
	if err := s.c.doJSON(ctx, http.MethodGet, path, nil, &labels); err != nil {
		return nil, err
	}

	categories := make([]model.Category, 0, len(labels))
	for _, l := range labels {
		categories = append(categories, model.Category(l))
	}
	return categories, nil
}
