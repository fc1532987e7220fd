package usecase_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"storefront/internal/domain/model"
	"storefront/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks
// =====================

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) List(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) ListCategories(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Category)
	return items, args.Error(1)
}

type CartRepoMock struct{ mock.Mock }

func (m *CartRepoMock) FindByID(ctx context.Context, cartID int64) (model.Cart, error) {
	args := m.Called(ctx, cartID)
	c, _ := args.Get(0).(model.Cart)
	return c, args.Error(1)
}

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) FindByID(ctx context.Context, userID int64) (model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) Create(ctx context.Context, user model.NewUser) (int64, error) {
	args := m.Called(ctx, user)
	id, _ := args.Get(0).(int64)
	return id, args.Error(1)
}

type AuthRepoMock struct{ mock.Mock }

func (m *AuthRepoMock) Login(ctx context.Context, username string, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}

type AuditRepoMock struct{ mock.Mock }

func (m *AuditRepoMock) Create(ctx context.Context, log model.AuthAuditLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

// =====================
// Fakes
// =====================

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type fixedIDGen struct{ id string }

func (g fixedIDGen) NewID() string { return g.id }

// 手動で時間を進めるScheduler。
// コールバックはロックを持たずに呼ぶ（コールバック内で再スケジュールできる）。
type fakeScheduler struct {
	mu     sync.Mutex
	now    time.Duration
	seq    int
	timers []*fakeTimer
}

type fakeTimer struct {
	s       *fakeScheduler
	seq     int
	at      time.Duration
	every   time.Duration
	f       func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	was := !t.stopped
	t.stopped = true
	return was
}

func newFakeScheduler() *fakeScheduler {
	return &fakeScheduler{}
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) usecase.Timer {
	return s.add(d, 0, f)
}

func (s *fakeScheduler) Every(d time.Duration, f func()) usecase.Timer {
	return s.add(d, d, f)
}

func (s *fakeScheduler) add(d, every time.Duration, f func()) *fakeTimer {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	t := &fakeTimer{s: s, seq: s.seq, at: s.now + d, every: every, f: f}
	s.timers = append(s.timers, t)
	return t
}

// d だけ時間を進め、期限が来たタイマーを時刻順に発火する
func (s *fakeScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now + d
	s.mu.Unlock()

	for {
		s.mu.Lock()
		due := make([]*fakeTimer, 0, len(s.timers))
		for _, t := range s.timers {
			if !t.stopped && t.at <= target {
				due = append(due, t)
			}
		}
		if len(due) == 0 {
			s.now = target
			s.mu.Unlock()
			return
		}
		sort.Slice(due, func(i, j int) bool {
			if due[i].at != due[j].at {
				return due[i].at < due[j].at
			}
			return due[i].seq < due[j].seq
		})
		next := due[0]
		s.now = next.at
		if next.every > 0 {
			next.at += next.every
		} else {
			next.stopped = true
		}
		f := next.f
		s.mu.Unlock()

		f()
	}
}

// 止められていないタイマーの数
func (s *fakeScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

// =====================
// Fixtures
// =====================

func product(id int64, title string, price string) model.Product {
	return model.Product{
		ID:       id,
		Title:    title,
		Price:    decimal.RequireFromString(price),
		Category: "electronics",
		Rating:   model.Rating{Rate: 3.5, Count: 10},
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
