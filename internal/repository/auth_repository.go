package repository

import (
	"context"
	"errors"
)

// リモートがログインを拒否した（2xx以外）
var ErrInvalidCredentials = errors.New("invalid credentials")

// ログインだけを約束。返したトークンを保持するかは呼び出し側が決める。
type AuthRepository interface {
	Login(ctx context.Context, username string, password string) (token string, err error)
}
