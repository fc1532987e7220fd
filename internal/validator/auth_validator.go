package validator

import (
	"context"
	"regexp"
	"strings"

	"storefront/internal/domain/model"
	"storefront/internal/usecase"
)

const (
	msgFillAllFields = "Please fill out all fields"
	msgInvalidEmail  = "Please enter a valid email address"
	msgShortPassword = "Password must be at least 6 characters"
)

// パスワード最低文字数（リモート側の制約に合わせる）
const minPasswordLength = 6

// 簡易メール形式
var emailLike = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type authValidator struct{}

// Usecaseは interface を依存注入
func NewAuthValidator() usecase.AuthValidator {
	return &authValidator{}
}

// ログインの入力を検証（空欄チェックのみ）
func (v *authValidator) ValidateLogin(ctx context.Context, username string, password string) error {
	if strings.TrimSpace(username) == "" || password == "" {
		return invalid(msgFillAllFields)
	}
	return nil
}

// サインアップの入力を検証
func (v *authValidator) ValidateSignUp(ctx context.Context, u model.NewUser) error {
	// 必須チェック
	required := []string{
		u.Email,
		u.Username,
		u.Password,
		u.Phone,
		u.Name.Firstname,
		u.Name.Lastname,
		u.Address.City,
		u.Address.Street,
	}
	for _, s := range required {
		if strings.TrimSpace(s) == "" {
			return invalid(msgFillAllFields)
		}
	}

	// email形式
	if !emailLike.MatchString(strings.TrimSpace(u.Email)) {
		return invalid(msgInvalidEmail)
	}

	if len(u.Password) < minPasswordLength {
		return invalid(msgShortPassword)
	}

	return nil
}

func invalid(msg string) error {
	return &usecase.ValidationError{Message: msg}
}
