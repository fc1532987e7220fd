package usecase

import (
	"math"

	"storefront/internal/domain/model"

	"github.com/shopspring/decimal"
)

// 数量の下限。明細が存在する限り1を下回らない（0にしたい時は削除する）。
const MinLineQuantity int64 = 1

// productID の明細の数量を max(1, 旧数量+delta) にした新しいスライスを返す。
// 該当が無ければ内容は変わらない。
func ChangeQuantity(lines []model.CartLine, productID int64, delta int64) []model.CartLine {
	out := make([]model.CartLine, len(lines))
	copy(out, lines)
	for i := range out {
		if out[i].ProductID == productID {
			out[i].Quantity = addQuantity(out[i].Quantity, delta, MinLineQuantity)
		}
	}
	return out
}

// q+delta を floor 以上、MaxInt64 以下に収める（オーバーフローしない）
func addQuantity(q int64, delta int64, floor int64) int64 {
	switch {
	case delta > 0 && q > math.MaxInt64-delta:
		return math.MaxInt64
	case delta < 0 && q < math.MinInt64-delta:
		return floor
	}
	return max(floor, q+delta)
}

// productID の明細を除いた新しいスライスを返す。残りの順序は保つ。
func RemoveLine(lines []model.CartLine, productID int64) []model.CartLine {
	out := make([]model.CartLine, 0, len(lines))
	for _, l := range lines {
		if l.ProductID != productID {
			out = append(out, l)
		}
	}
	return out
}

// 合計 = Σ 数量 × 価格。商品が見つからない明細は0として飛ばす。
func CartTotal(lines []model.CartLine, products []model.Product) decimal.Decimal {
	return cartTotal(lines, indexProducts(products))
}

func cartTotal(lines []model.CartLine, byID map[int64]model.Product) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		p, ok := byID[l.ProductID]
		if !ok {
			continue
		}
		total = total.Add(p.Price.Mul(decimal.NewFromInt(l.Quantity)))
	}
	return total
}

func indexProducts(products []model.Product) map[int64]model.Product {
	byID := make(map[int64]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return byID
}
