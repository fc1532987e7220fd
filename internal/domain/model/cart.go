package model

// カートの明細（商品ID + 数量）
// 数量は常に1以上。編集はリモートへ書き戻さない。
type CartLine struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

// GET /carts/{id} の結果
type Cart struct {
	ID     int64      `json:"id"`
	UserID int64      `json:"user_id"`
	Lines  []CartLine `json:"lines"`
}
