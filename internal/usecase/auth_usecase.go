package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"storefront/internal/domain/model"
	"storefront/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"github.com/rs/zerolog"
)

// 入力不足など。Message はそのまま利用者に見せる。
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return "validation error: " + e.Message
}

// usecaseがValidatorInterfaceに依存する約束
type AuthValidator interface {
	ValidateLogin(ctx context.Context, username string, password string) error
	ValidateSignUp(ctx context.Context, u model.NewUser) error
}

// 利用者に見せる通知（タイトル + 本文）
type AuthNotice struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// ログイン・会員登録の結果。Status はハンドラが返すHTTPステータス。
type AuthResult struct {
	Status     int        `json:"-"`
	Success    bool       `json:"success"`
	Notice     AuthNotice `json:"notice"`
	NavigateTo string     `json:"navigate_to,omitempty"`
	UserID     int64      `json:"user_id,omitempty"`
}

type LoginInput struct {
	Username string
	Password string
}

var (
	noticeLoginSuccess  = AuthNotice{Title: "Success", Message: "Login successful"}
	noticeLoginFailed   = AuthNotice{Title: "Login failed", Message: "Invalid username or password"}
	noticeSignUpSuccess = AuthNotice{Title: "Success", Message: "Account created"}
	noticeSignUpFailed  = AuthNotice{Title: "Sign up failed", Message: "Could not create account"}
	noticeUnexpected    = AuthNotice{Title: "Error", Message: "Something went wrong, please try again"}
)

// ログインと会員登録。
// ログインで受け取ったトークンは検査してログに残すだけで、どこにも保持しない。
type AuthUsecase struct {
	auth      repository.AuthRepository
	users     repository.UserRepository
	audit     repository.AuthAuditLogRepository
	validator AuthValidator
	idGen     IDGenerator
	clock     Clock
	logger    zerolog.Logger
}

func NewAuthUsecase(
	auth repository.AuthRepository,
	users repository.UserRepository,
	audit repository.AuthAuditLogRepository,
	validator AuthValidator,
	idGen IDGenerator,
	clock Clock,
	logger zerolog.Logger,
) *AuthUsecase {
	return &AuthUsecase{
		auth:      auth,
		users:     users,
		audit:     audit,
		validator: validator,
		idGen:     idGen,
		clock:     clock,
		logger:    logger.With().Str("component", "auth").Logger(),
	}
}

func (u *AuthUsecase) Login(ctx context.Context, in LoginInput) AuthResult {
	//入力検証（validatorに寄せる）
	if err := u.validator.ValidateLogin(ctx, in.Username, in.Password); err != nil {
		return validationResult(err)
	}

	token, err := u.auth.Login(ctx, in.Username, in.Password)
	if err != nil {
		status := remoteStatus(err)
		u.record(ctx, model.AuthAuditActionLogin, in.Username, false, status)

		if errors.Is(err, repository.ErrInvalidCredentials) {
			u.logger.Info().Str("username", in.Username).Int("status", status).Msg("login rejected")
			return AuthResult{Status: http.StatusUnauthorized, Notice: noticeLoginFailed}
		}
		u.logger.Error().Err(err).Str("op", "auth.Login").Msg("login request failed")
		return AuthResult{Status: http.StatusBadGateway, Notice: noticeUnexpected}
	}

	u.record(ctx, model.AuthAuditActionLogin, in.Username, true, http.StatusOK)

	//トークンは保持しない。形式だけ確認してログに残す。
	if token == "" {
		u.logger.Info().Str("username", in.Username).Msg("login succeeded")
	} else if subject, err := tokenSubject(token); err != nil {
		u.logger.Warn().Err(err).Msg("login token is not a JWT")
	} else {
		u.logger.Info().Str("username", in.Username).Str("subject", subject).Msg("login succeeded")
	}

	return AuthResult{
		Status:     http.StatusOK,
		Success:    true,
		Notice:     noticeLoginSuccess,
		NavigateTo: NavigateHome,
	}
}

func (u *AuthUsecase) SignUp(ctx context.Context, in model.NewUser) AuthResult {
	in.Email = strings.TrimSpace(in.Email)
	in.Username = strings.TrimSpace(in.Username)

	if err := u.validator.ValidateSignUp(ctx, in); err != nil {
		return validationResult(err)
	}

	id, err := u.users.Create(ctx, in)
	if err != nil {
		status := remoteStatus(err)
		u.record(ctx, model.AuthAuditActionSignUp, in.Username, false, status)
		u.logger.Error().Err(err).Str("op", "users.Create").Msg("sign up request failed")

		if status != 0 {
			return AuthResult{Status: http.StatusBadRequest, Notice: noticeSignUpFailed}
		}
		return AuthResult{Status: http.StatusBadGateway, Notice: noticeUnexpected}
	}

	u.record(ctx, model.AuthAuditActionSignUp, in.Username, true, http.StatusOK)
	u.logger.Info().Str("username", in.Username).Int64("user_id", id).Msg("sign up succeeded")

	return AuthResult{
		Status:     http.StatusOK,
		Success:    true,
		Notice:     noticeSignUpSuccess,
		NavigateTo: NavigateSignIn,
		UserID:     id,
	}
}

// 監査ログの失敗はログだけ残して続ける
func (u *AuthUsecase) record(ctx context.Context, action model.AuthAuditAction, username string, ok bool, status int) {
	err := u.audit.Create(ctx, model.AuthAuditLog{
		ID:         u.idGen.NewID(),
		Action:     action,
		Username:   username,
		Succeeded:  ok,
		StatusCode: status,
		CreatedAt:  u.clock.Now(),
	})
	if err != nil {
		u.logger.Error().Err(err).Str("action", string(action)).Msg("write auth audit log failed")
	}
}

func validationResult(err error) AuthResult {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return AuthResult{
			Status: http.StatusBadRequest,
			Notice: AuthNotice{Title: "Error", Message: ve.Message},
		}
	}
	return AuthResult{Status: http.StatusBadRequest, Notice: noticeUnexpected}
}

// リモートのHTTPステータス。通信自体の失敗は0。
func remoteStatus(err error) int {
	var se interface{ HTTPStatus() int }
	if errors.As(err, &se) {
		return se.HTTPStatus()
	}
	return 0
}

// 署名は検証せずにclaimsだけ読む（user、無ければsub）
func tokenSubject(token string) (string, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return "", err
	}
	if user, ok := claims["user"].(string); ok && user != "" {
		return user, nil
	}
	if sub, ok := claims["sub"]; ok {
		return fmt.Sprint(sub), nil
	}
	return "", nil
}
