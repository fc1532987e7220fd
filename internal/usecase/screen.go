package usecase

import (
	"context"
	"sync"
)

type ScreenKind string

const (
	ScreenFeed    ScreenKind = "feed"
	ScreenCart    ScreenKind = "cart"
	ScreenProduct ScreenKind = "product"
	ScreenProfile ScreenKind = "profile"
	ScreenOffers  ScreenKind = "offers"
)

// 画面ごとの状態コンテナ。
// Load はマウント時に一度だけ呼ばれ、Dispose の後は状態を変更しない。
type Screen interface {
	ID() string
	Kind() ScreenKind
	Load(ctx context.Context)
	Live() bool
	Dispose()
}

// 各画面が埋め込む共通部分。mu は画面の状態全体を守る。
type screenBase struct {
	id       string
	kind     ScreenKind
	mu       sync.Mutex
	disposed bool
}

func (b *screenBase) ID() string       { return b.id }
func (b *screenBase) Kind() ScreenKind { return b.kind }

func (b *screenBase) Live() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return !b.disposed
}

// 画面が生きている時だけ fn を実行する。
// 破棄後に届いた取得結果はここで捨てる。
func (b *screenBase) apply(fn func()) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.disposed {
		return false
	}
	fn()
	return true
}

// 初回だけ true
func (b *screenBase) markDisposed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.disposed {
		return false
	}
	b.disposed = true
	return true
}
