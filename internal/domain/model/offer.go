package model

import "github.com/shopspring/decimal"

// お知らせ画面のおすすめ商品（固定データ）
type Offer struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Rating      float64         `json:"rating"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
}
