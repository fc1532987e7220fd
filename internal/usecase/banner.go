package usecase

import (
	"sync"
	"time"
)

const BannerInterval = 3 * time.Second

// バナーの自動送り。画面が消えたら Stop で止める。
type BannerRotator struct {
	mu    sync.Mutex
	count int
	index int
	timer Timer
}

func NewBannerRotator(count int) *BannerRotator {
	return &BannerRotator{count: count}
}

// 一定間隔でindexを進め始める。バナーが1枚以下なら何もしない。
func (b *BannerRotator) Start(sched Scheduler, interval time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.count <= 1 || b.timer != nil {
		return
	}
	b.timer = sched.Every(interval, b.advance)
}

func (b *BannerRotator) advance() {
	b.mu.Lock()
	defer b.mu.Unlock()

	//停止後に届いたtickは無視
	if b.timer == nil || b.count <= 0 {
		return
	}
	b.index = (b.index + 1) % b.count
}

func (b *BannerRotator) Index() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.index
}

func (b *BannerRotator) Running() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.timer != nil
}

func (b *BannerRotator) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
}
