package fakestore

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"storefront/internal/repository"
)

type AuthStore struct {
	c *Client
}

// DI
func NewAuthStore(c *Client) *AuthStore {
	return &AuthStore{c: c}
}

var _ repository.AuthRepository = (*AuthStore)(nil)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token *string `json:"token"`
}

// POST /auth/login
// 2xx以外は repository.ErrInvalidCredentials（StatusErrorも包む）。
// 2xxならトークンが無くても成功として扱う（空文字を返す）。
func (s *AuthStore) Login(ctx context.Context, username string, password string) (string, error) {
	const path = "/auth/login"

	var out loginResponse
	err := s.c.doJSON(ctx, http.MethodPost, path, loginRequest{
		Username: username,
		Password: password,
	}, &out)
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) {
			return "", fmt.Errorf("%w: %w", repository.ErrInvalidCredentials, se)
		}
		return "", err
	}
	if out.Token == nil || *out.Token == "" {
		s.c.logger.Warn().Str("path", path).Msg("login succeeded without token")
		return "", nil
	}
	return *out.Token, nil
}
