package model

import "github.com/shopspring/decimal"

// 評価（平均点と件数）
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int64   `json:"count"`
}

// リモートストアから取得した商品。取得のたびに丸ごと置き換える。
type Product struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Rating      Rating          `json:"rating"`
}
