package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

type registryEntry struct {
	screen   Screen
	cancel   context.CancelFunc
	lastSeen time.Time
}

// マウント中の画面をIDで保持する。
// 最後に触られた時刻を覚えておき、放置された画面は ExpireIdle で外す。
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*registryEntry
	clock   Clock
	logger  zerolog.Logger
}

// DI
func NewRegistry(clock Clock, logger zerolog.Logger) *Registry {
	return &Registry{
		entries: make(map[string]*registryEntry),
		clock:   clock,
		logger:  logger.With().Str("component", "registry").Logger(),
	}
}

// 画面を登録し、読み込みを別goroutineで始める。
// 読み込みが終わると返したチャネルが閉じる。
// 読み込みのcontextはアンマウントでキャンセルされる。
func (r *Registry) Mount(s Screen) <-chan struct{} {
	ctx, cancel := context.WithCancel(context.Background())

	r.mu.Lock()
	r.entries[s.ID()] = &registryEntry{screen: s, cancel: cancel, lastSeen: r.clock.Now()}
	r.mu.Unlock()

	r.logger.Info().
		Str("screen_id", s.ID()).
		Str("kind", string(s.Kind())).
		Msg("screen mounted")

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer func() {
			if rec := recover(); rec != nil {
				r.logger.Error().
					Str("screen_id", s.ID()).
					Str("panic", fmt.Sprintf("%v", rec)).
					Msg("screen load panicked")
			}
		}()
		s.Load(ctx)
	}()
	return done
}

// 取り出した画面は「触られた」ことになる
func (r *Registry) Get(id string) (Screen, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[id]
	if !ok {
		return nil, ErrScreenNotFound
	}
	e.lastSeen = r.clock.Now()
	return e.screen, nil
}

// 型付きで取り出す。種類が違えば ErrScreenNotFound。
func Lookup[T Screen](r *Registry, id string) (T, error) {
	var zero T
	s, err := r.Get(id)
	if err != nil {
		return zero, err
	}
	t, ok := s.(T)
	if !ok {
		return zero, ErrScreenNotFound
	}
	return t, nil
}

// 画面を外し、タイマーを止めて破棄する。
func (r *Registry) Unmount(id string) error {
	r.mu.Lock()
	e, ok := r.entries[id]
	if ok {
		delete(r.entries, id)
	}
	r.mu.Unlock()

	if !ok {
		return ErrScreenNotFound
	}

	e.cancel()
	e.screen.Dispose()

	r.logger.Info().
		Str("screen_id", id).
		Str("kind", string(e.screen.Kind())).
		Msg("screen unmounted")
	return nil
}

// ttl より長く触られていない画面をアンマウントし、その数を返す
func (r *Registry) ExpireIdle(ttl time.Duration) int {
	cutoff := r.clock.Now().Add(-ttl)

	r.mu.RLock()
	stale := make([]string, 0)
	for id, e := range r.entries {
		if e.lastSeen.Before(cutoff) {
			stale = append(stale, id)
		}
	}
	r.mu.RUnlock()

	n := 0
	for _, id := range stale {
		if r.Unmount(id) == nil {
			n++
		}
	}
	if n > 0 {
		r.logger.Info().Int("count", n).Dur("ttl", ttl).Msg("idle screens expired")
	}
	return n
}

// interval ごとに ExpireIdle(ttl) を回す。止めるのは返したTimerで。
func (r *Registry) StartJanitor(sched Scheduler, interval time.Duration, ttl time.Duration) Timer {
	return sched.Every(interval, func() { r.ExpireIdle(ttl) })
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// シャットダウン時に全画面をアンマウントする
func (r *Registry) Close() {
	r.mu.RLock()
	ids := make([]string, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	r.mu.RUnlock()

	for _, id := range ids {
		_ = r.Unmount(id)
	}
}
