package usecase_test

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/domain/model"
	"storefront/internal/usecase"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestProfileScreen_Load(t *testing.T) {
	users := new(UserRepoMock)
	users.On("FindByID", mock.Anything, int64(1)).Return(model.User{
		ID:       1,
		Email:    "john@gmail.com",
		Username: "johnd",
		Phone:    "1-570-236-7033",
		Name:     model.UserName{Firstname: "john", Lastname: "doe"},
		Address:  model.UserAddress{City: "kilcoole", Street: "new road", Number: 7682, Zipcode: "12926-3874"},
	}, nil).Once()

	s := usecase.NewProfileScreen("p-1", 1, users, zerolog.Nop())
	s.Load(context.Background())

	v := s.View()
	assert.False(t, v.Loading)
	assert.Equal(t, "john doe", v.FullName)
	assert.Equal(t, "kilcoole, new road", v.Address)
	assert.Equal(t, "1-570-236-7033", v.Phone)
	users.AssertExpectations(t)
}

func TestProfileScreen_FailureStaysLoading(t *testing.T) {
	users := new(UserRepoMock)
	users.On("FindByID", mock.Anything, int64(1)).Return(nil, errors.New("decode"))

	s := usecase.NewProfileScreen("p-1", 1, users, zerolog.Nop())
	s.Load(context.Background())

	assert.True(t, s.View().Loading)
}

func TestProfileScreen_LogoutFlow(t *testing.T) {
	s := usecase.NewProfileScreen("p-1", 1, new(UserRepoMock), zerolog.Nop())

	assert.True(t, s.RequestLogout().ConfirmLogout)

	v := s.CancelLogout()
	assert.False(t, v.ConfirmLogout)
	assert.Empty(t, v.NavigateTo)

	s.RequestLogout()
	v = s.ConfirmLogout()
	assert.False(t, v.ConfirmLogout)
	assert.Equal(t, usecase.NavigateSignIn, v.NavigateTo)
}
