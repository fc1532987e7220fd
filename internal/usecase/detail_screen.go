package usecase

import (
	"context"

	"storefront/internal/domain/model"
	"storefront/internal/repository"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// 商品詳細画面
type ProductDetailScreen struct {
	screenBase

	productID   int64
	productRepo repository.ProductRepository
	logger      zerolog.Logger

	product *model.Product
}

type ProductDetailView struct {
	ScreenID    string          `json:"screen_id"`
	ProductID   int64           `json:"product_id"`
	Loading     bool            `json:"loading"`
	Title       string          `json:"title,omitempty"`
	Image       string          `json:"image,omitempty"`
	Description string          `json:"description,omitempty"`
	Category    string          `json:"category,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Rating      float64         `json:"rating"`
	RatingCount int64           `json:"rating_count"`
	Stars       []string        `json:"stars,omitempty"`
	NavigateTo  string          `json:"navigate_to,omitempty"`
}

// DI
func NewProductDetailScreen(
	id string,
	productID int64,
	productRepo repository.ProductRepository,
	logger zerolog.Logger,
) *ProductDetailScreen {
	return &ProductDetailScreen{
		screenBase:  screenBase{id: id, kind: ScreenProduct},
		productID:   productID,
		productRepo: productRepo,
		logger: logger.With().
			Str("screen", string(ScreenProduct)).
			Str("screen_id", id).
			Int64("product_id", productID).
			Logger(),
	}
}

// 失敗時はログだけ残し、読み込み中の表示のままにする。
func (s *ProductDetailScreen) Load(ctx context.Context) {
	if s.productID <= 0 {
		s.logger.Warn().Msg("invalid product id, skip fetch")
		return
	}

	p, err := s.productRepo.FindByID(ctx, s.productID)
	if err != nil {
		s.logger.Error().Err(err).Str("op", "products.FindByID").Msg("fetch product detail failed")
		return
	}
	s.apply(func() { s.product = &p })
}

// カート画面へ移動するだけ。データは変更しない。
func (s *ProductDetailScreen) AddToCart() ProductDetailView {
	v := s.View()
	v.NavigateTo = NavigateCart
	return v
}

func (s *ProductDetailScreen) View() ProductDetailView {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := ProductDetailView{
		ScreenID:  s.id,
		ProductID: s.productID,
		Loading:   s.product == nil,
	}
	if s.product != nil {
		v.Title = s.product.Title
		v.Image = s.product.Image
		v.Description = s.product.Description
		v.Category = s.product.Category
		v.Price = s.product.Price
		v.Rating = s.product.Rating.Rate
		v.RatingCount = s.product.Rating.Count
		v.Stars = RatingStars(s.product.Rating.Rate)
	}
	return v
}

func (s *ProductDetailScreen) Dispose() {
	s.markDisposed()
}
