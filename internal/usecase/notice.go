package usecase

import (
	"sync"
	"time"
)

type NoticePhase string

const (
	NoticeIdle      NoticePhase = "idle"
	NoticeFadingIn  NoticePhase = "fading_in"
	NoticeHeld      NoticePhase = "held"
	NoticeFadingOut NoticePhase = "fading_out"
)

const (
	NoticeFadeIn  = 300 * time.Millisecond
	NoticeHold    = 2000 * time.Millisecond
	NoticeFadeOut = 300 * time.Millisecond
)

// 一時的な確認メッセージ。
// Idle → FadingIn → Held → FadingOut → Idle を Scheduler で進める。
// 表示中の再トリガーはまとめる（Heldをやり直す）。
type Notice struct {
	mu      sync.Mutex
	sched   Scheduler
	phase   NoticePhase
	message string
	timer   Timer
	gen     uint64
	stopped bool
}

type NoticeView struct {
	Visible bool        `json:"visible"`
	Phase   NoticePhase `json:"phase"`
	Message string      `json:"message,omitempty"`
}

func NewNotice(sched Scheduler) *Notice {
	return &Notice{
		sched: sched,
		phase: NoticeIdle,
	}
}

// メッセージを出す
func (n *Notice) Show(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.stopped {
		return
	}
	n.message = message

	switch n.phase {
	case NoticeIdle, NoticeFadingOut:
		n.phase = NoticeFadingIn
		n.schedule(NoticeFadeIn, n.fadedIn)
	case NoticeFadingIn:
		//フェードイン中はそのまま
	case NoticeHeld:
		n.schedule(NoticeHold, n.held)
	}
}

func (n *Notice) View() NoticeView {
	n.mu.Lock()
	defer n.mu.Unlock()

	return NoticeView{
		Visible: n.phase != NoticeIdle,
		Phase:   n.phase,
		Message: n.message,
	}
}

// 画面の破棄時に呼ぶ。保留中のタイマーを止めてIdleへ戻す。
func (n *Notice) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.stopped = true
	n.gen++
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.phase = NoticeIdle
	n.message = ""
}

// mu を持った状態で呼ぶ
func (n *Notice) schedule(d time.Duration, next func()) {
	if n.timer != nil {
		n.timer.Stop()
	}
	n.gen++
	gen := n.gen
	n.timer = n.sched.AfterFunc(d, func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		//止めたタイマーが遅れて発火しても無視する
		if gen != n.gen || n.stopped {
			return
		}
		next()
	})
}

func (n *Notice) fadedIn() {
	n.phase = NoticeHeld
	n.schedule(NoticeHold, n.held)
}

func (n *Notice) held() {
	n.phase = NoticeFadingOut
	n.schedule(NoticeFadeOut, n.fadedOut)
}

func (n *Notice) fadedOut() {
	n.phase = NoticeIdle
	n.message = ""
	n.timer = nil
}
