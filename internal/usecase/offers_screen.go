package usecase

import (
	"context"

	"storefront/internal/domain/model"

	"github.com/shopspring/decimal"
)

// 選択数の下限。0は「選んでいない」。
const MinOfferQuantity int64 = 0

// お知らせ画面に並べる固定のおすすめ商品
var DefaultOffers = []model.Offer{
	{ID: "1", Name: "Tuna Salad", Price: decimal.RequireFromString("14.22"), Rating: 4.8, Description: "A delicious and healthy tuna salad.", Image: "a1.png"},
	{ID: "2", Name: "White Wine", Price: decimal.RequireFromString("20.45"), Rating: 4.4, Description: "A fine white wine for special occasions.", Image: "a2.png"},
	{ID: "3", Name: "Espresso", Price: decimal.RequireFromString("2"), Rating: 4.7, Description: "Strong and bold coffee for espresso lovers.", Image: "a3.png"},
	{ID: "4", Name: "Profiterol", Price: decimal.RequireFromString("1"), Rating: 4.8, Description: "Delicious cream-filled pastry to satisfy your sweet tooth.", Image: "a4.png"},
}

// お知らせ（おすすめ）画面。
// 数量はカート明細ではなく選択数なので0まで下げられる。
type OffersScreen struct {
	screenBase

	offers     []model.Offer
	quantities map[string]int64
	query      string
}

type OfferCard struct {
	model.Offer
	Quantity int64 `json:"quantity"`
}

type OffersView struct {
	ScreenID string      `json:"screen_id"`
	Query    string      `json:"query"`
	Offers   []OfferCard `json:"offers"`
}

func NewOffersScreen(id string, offers []model.Offer) *OffersScreen {
	q := make(map[string]int64, len(offers))
	for _, o := range offers {
		q[o.ID] = 0
	}
	return &OffersScreen{
		screenBase: screenBase{id: id, kind: ScreenOffers},
		offers:     offers,
		quantities: q,
	}
}

// 固定データなので取得は無い
func (s *OffersScreen) Load(ctx context.Context) {}

func (s *OffersScreen) Search(query string) OffersView {
	s.apply(func() { s.query = query })
	return s.View()
}

// 選択数を delta だけ変える（下限0）
func (s *OffersScreen) ChangeQuantity(offerID string, delta int64) (OffersView, error) {
	found := true
	s.apply(func() {
		q, ok := s.quantities[offerID]
		if !ok {
			found = false
			return
		}
		s.quantities[offerID] = addQuantity(q, delta, MinOfferQuantity)
	})
	if !found {
		return OffersView{}, ErrOfferNotFound
	}
	return s.View(), nil
}

func (s *OffersScreen) View() OffersView {
	s.mu.Lock()
	defer s.mu.Unlock()

	visible := filterByText(s.offers, s.query, func(o model.Offer) string { return o.Name })
	v := OffersView{
		ScreenID: s.id,
		Query:    s.query,
		Offers:   make([]OfferCard, 0, len(visible)),
	}
	for _, o := range visible {
		v.Offers = append(v.Offers, OfferCard{Offer: o, Quantity: s.quantities[o.ID]})
	}
	return v
}

func (s *OffersScreen) Dispose() {
	s.markDisposed()
}
