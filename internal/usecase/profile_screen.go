package usecase

import (
	"context"
	"strings"

	"storefront/internal/domain/model"
	"storefront/internal/repository"

	"github.com/rs/zerolog"
)

// プロフィール画面。ログアウトは確認ダイアログを挟む。
// セッションは存在しないので、ログアウトはサインイン画面への遷移だけ。
type ProfileScreen struct {
	screenBase

	userID   int64
	userRepo repository.UserRepository
	logger   zerolog.Logger

	user          *model.User
	confirmLogout bool
}

type ProfileView struct {
	ScreenID      string `json:"screen_id"`
	Loading       bool   `json:"loading"`
	FullName      string `json:"full_name,omitempty"`
	Username      string `json:"username,omitempty"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Address       string `json:"address,omitempty"`
	ConfirmLogout bool   `json:"confirm_logout"`
	NavigateTo    string `json:"navigate_to,omitempty"`
}

// DI
func NewProfileScreen(
	id string,
	userID int64,
	userRepo repository.UserRepository,
	logger zerolog.Logger,
) *ProfileScreen {
	return &ProfileScreen{
		screenBase: screenBase{id: id, kind: ScreenProfile},
		userID:     userID,
		userRepo:   userRepo,
		logger:     logger.With().Str("screen", string(ScreenProfile)).Str("screen_id", id).Logger(),
	}
}

// 失敗時はログだけ残し、読み込み中の表示のままにする。
func (s *ProfileScreen) Load(ctx context.Context) {
	u, err := s.userRepo.FindByID(ctx, s.userID)
	if err != nil {
		s.logger.Error().Err(err).Str("op", "users.FindByID").Int64("user_id", s.userID).Msg("fetch user failed")
		return
	}
	s.apply(func() { s.user = &u })
}

// 確認ダイアログを開く
func (s *ProfileScreen) RequestLogout() ProfileView {
	s.apply(func() { s.confirmLogout = true })
	return s.View()
}

// 確認ダイアログを閉じる
func (s *ProfileScreen) CancelLogout() ProfileView {
	s.apply(func() { s.confirmLogout = false })
	return s.View()
}

// ダイアログを閉じてサインイン画面へ
func (s *ProfileScreen) ConfirmLogout() ProfileView {
	s.apply(func() { s.confirmLogout = false })
	v := s.View()
	v.NavigateTo = NavigateSignIn
	return v
}

func (s *ProfileScreen) View() ProfileView {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := ProfileView{
		ScreenID:      s.id,
		Loading:       s.user == nil,
		ConfirmLogout: s.confirmLogout,
	}
	if s.user != nil {
		v.FullName = joinNonEmpty(" ", s.user.Name.Firstname, s.user.Name.Lastname)
		v.Username = s.user.Username
		v.Email = s.user.Email
		v.Phone = s.user.Phone
		v.Address = joinNonEmpty(", ", s.user.Address.City, s.user.Address.Street)
	}
	return v
}

func (s *ProfileScreen) Dispose() {
	s.markDisposed()
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
