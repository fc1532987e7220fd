package usecase

import (
	"context"

	"storefront/internal/domain/model"
	"storefront/internal/repository"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const AddedToCartMessage = "Sản phẩm đã được thêm vào giỏ hàng"

// ホーム（フィード）画面。
// 商品とカテゴリを読み込み、検索語でタイトルを絞り込んで表示する。
type FeedScreen struct {
	screenBase

	products repository.ProductRepository
	logger   zerolog.Logger
	notice   *Notice
	banner   *BannerRotator

	loaded           bool
	catalog          []model.Product
	categories       []model.Category
	query            string
	selectedCategory string
}

type CategoryChip struct {
	Label    string `json:"label"`
	Icon     string `json:"icon"`
	Selected bool   `json:"selected"`
}

type ProductCard struct {
	ID     int64           `json:"id"`
	Title  string          `json:"title"`
	Image  string          `json:"image"`
	Price  decimal.Decimal `json:"price"`
	Rating float64         `json:"rating"`
	Stars  []string        `json:"stars"`
}

type FeedView struct {
	ScreenID         string         `json:"screen_id"`
	Loading          bool           `json:"loading"`
	Query            string         `json:"query"`
	SelectedCategory string         `json:"selected_category,omitempty"`
	BannerIndex      int            `json:"banner_index"`
	Categories       []CategoryChip `json:"categories"`
	Products         []ProductCard  `json:"products"`
	Notice           NoticeView     `json:"notice"`
}

// DI
// バナーの自動送りはここで始まり、Dispose で止まる。
func NewFeedScreen(
	id string,
	products repository.ProductRepository,
	sched Scheduler,
	bannerCount int,
	logger zerolog.Logger,
) *FeedScreen {
	s := &FeedScreen{
		screenBase: screenBase{id: id, kind: ScreenFeed},
		products:   products,
		logger:     logger.With().Str("screen", string(ScreenFeed)).Str("screen_id", id).Logger(),
		notice:     NewNotice(sched),
		banner:     NewBannerRotator(bannerCount),
	}
	s.banner.Start(sched, BannerInterval)
	return s
}

func (s *FeedScreen) Load(ctx context.Context) {
	s.LoadCatalog(ctx)
}

// 商品一覧とカテゴリ一覧を1回ずつ取得する。
// 成功した方だけ丸ごと置き換え、失敗はログに残して前の状態のままにする。
func (s *FeedScreen) LoadCatalog(ctx context.Context) {
	products, err := s.products.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Str("op", "products.List").Msg("fetch products failed")
	} else {
		s.apply(func() { s.catalog = products })
	}

	categories, err := s.products.ListCategories(ctx)
	if err != nil {
		s.logger.Error().Err(err).Str("op", "products.ListCategories").Msg("fetch categories failed")
	} else {
		s.apply(func() { s.categories = categories })
	}

	s.apply(func() { s.loaded = true })
}

func (s *FeedScreen) Search(query string) FeedView {
	s.apply(func() { s.query = query })
	return s.View()
}

// 選んだカテゴリは表示にだけ使う。絞り込み結果は変わらない。
func (s *FeedScreen) SelectCategory(label string) FeedView {
	s.apply(func() { s.selectedCategory = label })
	return s.View()
}

// 確認メッセージを出すだけ。カートのデータもリモートも変更しない。
func (s *FeedScreen) AddToCart(productID int64) FeedView {
	if s.Live() {
		s.logger.Info().Int64("product_id", productID).Msg("add to cart tapped")
		s.notice.Show(AddedToCartMessage)
	}
	return s.View()
}

func (s *FeedScreen) View() FeedView {
	s.mu.Lock()
	visible := FilterByTitle(s.catalog, s.query)

	v := FeedView{
		ScreenID:         s.id,
		Loading:          !s.loaded,
		Query:            s.query,
		SelectedCategory: s.selectedCategory,
		Categories:       make([]CategoryChip, 0, len(s.categories)),
		Products:         make([]ProductCard, 0, len(visible)),
	}
	for _, c := range s.categories {
		v.Categories = append(v.Categories, CategoryChip{
			Label:    string(c),
			Icon:     c.Icon(),
			Selected: string(c) == s.selectedCategory,
		})
	}
	s.mu.Unlock()

	for _, p := range visible {
		v.Products = append(v.Products, ProductCard{
			ID:     p.ID,
			Title:  p.Title,
			Image:  p.Image,
			Price:  p.Price,
			Rating: p.Rating.Rate,
			Stars:  RatingStars(p.Rating.Rate),
		})
	}
	v.BannerIndex = s.banner.Index()
	v.Notice = s.notice.View()
	return v
}

func (s *FeedScreen) Dispose() {
	if !s.markDisposed() {
		return
	}
	s.banner.Stop()
	s.notice.Stop()
}
