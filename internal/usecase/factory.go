package usecase

import (
	"storefront/internal/domain/model"
	"storefront/internal/repository"

	"github.com/rs/zerolog"
)

type ScreenDeps struct {
	Products    repository.ProductRepository
	Carts       repository.CartRepository
	Users       repository.UserRepository
	Scheduler   Scheduler
	IDGen       IDGenerator
	CartID      int64
	UserID      int64
	BannerCount int
	Offers      []model.Offer
}

// 画面の生成をまとめる。
// 各画面は必要なリポジトリだけを受け取る。
type ScreenFactory struct {
	deps   ScreenDeps
	logger zerolog.Logger
}

// DI
func NewScreenFactory(deps ScreenDeps, logger zerolog.Logger) *ScreenFactory {
	if deps.Offers == nil {
		deps.Offers = DefaultOffers
	}
	return &ScreenFactory{deps: deps, logger: logger}
}

func (f *ScreenFactory) NewFeed() *FeedScreen {
	return NewFeedScreen(f.deps.IDGen.NewID(), f.deps.Products, f.deps.Scheduler, f.deps.BannerCount, f.logger)
}

func (f *ScreenFactory) NewCart() *CartScreen {
	return NewCartScreen(f.deps.IDGen.NewID(), f.deps.CartID, f.deps.Carts, f.deps.Products, f.logger)
}

func (f *ScreenFactory) NewProductDetail(productID int64) *ProductDetailScreen {
	return NewProductDetailScreen(f.deps.IDGen.NewID(), productID, f.deps.Products, f.logger)
}

func (f *ScreenFactory) NewProfile() *ProfileScreen {
	return NewProfileScreen(f.deps.IDGen.NewID(), f.deps.UserID, f.deps.Users, f.logger)
}

func (f *ScreenFactory) NewOffers() *OffersScreen {
	return NewOffersScreen(f.deps.IDGen.NewID(), f.deps.Offers)
}
