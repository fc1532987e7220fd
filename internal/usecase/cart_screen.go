package usecase

import (
	"context"
	"net/http"

	"storefront/internal/domain/model"
	"storefront/internal/repository"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// カート画面。
// 明細の編集は画面内だけで行い、リモートには書き戻さない。
type CartScreen struct {
	screenBase

	cartID      int64
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      zerolog.Logger

	loading  bool
	lines    []model.CartLine
	snapshot map[int64]model.Product
}

type CartLineView struct {
	ProductID int64           `json:"product_id"`
	Title     string          `json:"title"`
	Image     string          `json:"image"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int64           `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type CartView struct {
	ScreenID string          `json:"screen_id"`
	Loading  bool            `json:"loading"`
	Lines    []CartLineView  `json:"lines"`
	Total    decimal.Decimal `json:"total"`
}

// DI
func NewCartScreen(
	id string,
	cartID int64,
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	logger zerolog.Logger,
) *CartScreen {
	return &CartScreen{
		screenBase:  screenBase{id: id, kind: ScreenCart},
		cartID:      cartID,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		logger:      logger.With().Str("screen", string(ScreenCart)).Str("screen_id", id).Logger(),
		loading:     true,
		snapshot:    map[int64]model.Product{},
	}
}

func (s *CartScreen) Load(ctx context.Context) {
	s.LoadCart(ctx)
}

// カートを取得してから商品一覧を取得し、カートにあるIDだけ残す。
// 商品の絞り込みはカートの結果に依存するので必ず順番に行う。
// 失敗はログに残し、空のカートとして読み込みを終える。
func (s *CartScreen) LoadCart(ctx context.Context) {
	defer s.apply(func() { s.loading = false })

	cart, err := s.cartRepo.FindByID(ctx, s.cartID)
	if err != nil {
		s.logger.Error().Err(err).Str("op", "carts.FindByID").Int64("cart_id", s.cartID).Msg("fetch cart failed")
		return
	}
	if !s.apply(func() { s.lines = cart.Lines }) {
		return
	}
	if len(cart.Lines) == 0 {
		return
	}

	wanted := make(map[int64]struct{}, len(cart.Lines))
	for _, l := range cart.Lines {
		wanted[l.ProductID] = struct{}{}
	}

	products, err := s.productRepo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Str("op", "products.List").Msg("fetch products failed")
		return
	}

	snapshot := make(map[int64]model.Product, len(wanted))
	for _, p := range products {
		if _, ok := wanted[p.ID]; ok {
			snapshot[p.ID] = p
		}
	}
	s.apply(func() { s.snapshot = snapshot })
}

// 数量を delta だけ変える（下限1）。該当が無ければ何もしない。
func (s *CartScreen) ChangeQuantity(productID int64, delta int64) CartView {
	s.apply(func() { s.lines = ChangeQuantity(s.lines, productID, delta) })
	return s.View()
}

// 明細を削除する。該当が無ければ何もしない。
func (s *CartScreen) RemoveLine(productID int64) CartView {
	s.apply(func() { s.lines = RemoveLine(s.lines, productID) })
	return s.View()
}

// 現在の明細と最後に取得した商品から毎回計算する
func (s *CartScreen) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cartTotal(s.lines, s.snapshot)
}

// 注文確定はまだ無い
func (s *CartScreen) PlaceOrder() error {
	s.logger.Info().Msg("place order requested")
	return NewHTTPError(http.StatusNotImplemented, "checkout not implemented", ErrNotImplemented)
}

func (s *CartScreen) View() CartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := CartView{
		ScreenID: s.id,
		Loading:  s.loading,
		Lines:    make([]CartLineView, 0, len(s.lines)),
		Total:    cartTotal(s.lines, s.snapshot),
	}
	for _, l := range s.lines {
		//商品が見つからない明細は表示しない
		p, ok := s.snapshot[l.ProductID]
		if !ok {
			continue
		}
		v.Lines = append(v.Lines, CartLineView{
			ProductID: l.ProductID,
			Title:     p.Title,
			Image:     p.Image,
			Price:     p.Price,
			Quantity:  l.Quantity,
			Subtotal:  p.Price.Mul(decimal.NewFromInt(l.Quantity)),
		})
	}
	return v
}

func (s *CartScreen) Dispose() {
	s.markDisposed()
}
