package usecase

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// UUID 等のIDを作る約束
type IDGenerator interface {
	NewID() string
}

// 現在時刻を返す約束
type Clock interface {
	Now() time.Time
}

// 止められるタイマー
type Timer interface {
	Stop() bool
}

// 時間で動く処理（通知のフェード、バナーの自動送り）をまとめる約束。
// テストでは手動で進める実装に差し替える。
type Scheduler interface {
	//dの後に一度だけfを呼ぶ
	AfterFunc(d time.Duration, f func()) Timer
	//dごとにfを呼ぶ。Stopまで続く。
	Every(d time.Duration, f func()) Timer
}

type uuidGenerator struct{}

func NewUUIDGenerator() IDGenerator {
	return uuidGenerator{}
}

func (uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func NewRealClock() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

type realScheduler struct{}

func NewRealScheduler() Scheduler {
	return realScheduler{}
}

func (realScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

func (realScheduler) Every(d time.Duration, f func()) Timer {
	t := &tickerTimer{
		ticker: time.NewTicker(d),
		done:   make(chan struct{}),
	}
	go func() {
		for {
			select {
			case <-t.ticker.C:
				f()
			case <-t.done:
				return
			}
		}
	}()
	return t
}

type tickerTimer struct {
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

func (t *tickerTimer) Stop() bool {
	stopped := false
	t.once.Do(func() {
		t.ticker.Stop()
		close(t.done)
		stopped = true
	})
	return stopped
}
