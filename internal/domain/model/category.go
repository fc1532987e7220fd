package model

// カテゴリのラベル。表示用アイコンを選ぶためだけに使う。
type Category string

// ラベルからアイコン名を決める
func (c Category) Icon() string {
	switch c {
	case "coffee":
		return "coffee"
	case "desserts":
		return "cupcake"
	case "jewelery":
		return "ring"
	case "electronics":
		return "cellphone"
	default:
		return "coffee"
	}
}
