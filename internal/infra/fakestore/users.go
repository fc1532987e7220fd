package fakestore

import (
	"context"
	"fmt"
	"net/http"

	"storefront/internal/domain/model"
	"storefront/internal/repository"
)

type UserStore struct {
	c *Client
}

// DI
func NewUserStore(c *Client) *UserStore {
	return &UserStore{c: c}
}

var _ repository.UserRepository = (*UserStore)(nil)

type userWire struct {
	ID       *int64             `json:"id"`
	Email    string             `json:"email"`
	Username string             `json:"username"`
	Phone    string             `json:"phone"`
	Name     *model.UserName    `json:"name"`
	Address  *model.UserAddress `json:"address"`
}

type createUserRequest struct {
	Email    string            `json:"email"`
	Username string            `json:"username"`
	Password string            `json:"password"`
	Name     model.UserName    `json:"name"`
	Address  model.UserAddress `json:"address"`
	Phone    string            `json:"phone"`
}

type createUserResponse struct {
	ID *int64 `json:"id"`
}

// GET /users/{id}
func (s *UserStore) FindByID(ctx context.Context, userID int64) (model.User, error) {
	path := fmt.Sprintf("/users/%d", userID)

	var w *userWire
	if err := s.c.doJSON(ctx, http.MethodGet, path, nil, &w); err != nil {
		return model.User{}, err
	}
	if w == nil {
		return model.User{}, fmt.Errorf("GET %s: %w", path, repository.ErrNotFound)
	}
	if w.ID == nil {
		return model.User{}, missing(path, "id")
	}
	if w.Name == nil {
		return model.User{}, missing(path, "name")
	}
	if w.Address == nil {
		return model.User{}, missing(path, "address")
	}

	return model.User{
		ID:       *w.ID,
		Email:    w.Email,
		Username: w.Username,
		Phone:    w.Phone,
		Name:     *w.Name,
		Address:  *w.Address,
	}, nil
}

// POST /users
func (s *UserStore) Create(ctx context.Context, u model.NewUser) (int64, error) {
	const path = "/users"

	var out createUserResponse
	err := s.c.doJSON(ctx, http.MethodPost, path, createUserRequest{
		Email:    u.Email,
		Username: u.Username,
		Password: u.Password,
		Name:     u.Name,
		Address:  u.Address,
		Phone:    u.Phone,
	}, &out)
	if err != nil {
		return 0, err
	}
	if out.ID == nil {
		return 0, missing(path, "id")
	}
	return *out.ID, nil
}
