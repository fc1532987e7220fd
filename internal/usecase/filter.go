package usecase

import (
	"math"
	"strings"

	"storefront/internal/domain/model"
)

// タイトルに query を含む商品だけを返す（大文字小文字を区別しない）。
// query が空なら全件を同じ順で返す。元のスライスは変更しない。
func FilterByTitle(products []model.Product, query string) []model.Product {
	return filterByText(products, query, func(p model.Product) string { return p.Title })
}

func filterByText[T any](items []T, query string, text func(T) string) []T {
	out := make([]T, 0, len(items))
	q := strings.ToLower(query)
	for _, it := range items {
		if q == "" || strings.Contains(strings.ToLower(text(it)), q) {
			out = append(out, it)
		}
	}
	return out
}

// 評価を5つの星アイコン名にする（star / star-half / star-outline）
func RatingStars(rate float64) []string {
	full := math.Floor(rate)
	stars := make([]string, 5)
	for i := range stars {
		switch {
		case float64(i) < full:
			stars[i] = "star"
		case float64(i) < rate:
			stars[i] = "star-half"
		default:
			stars[i] = "star-outline"
		}
	}
	return stars
}
