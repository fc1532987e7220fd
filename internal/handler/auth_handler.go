package handler

import (
	"net/http"

	"storefront/internal/domain/model"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// サインイン・サインアップ画面のHTTP
type AuthHandler struct {
	uc *usecase.AuthUsecase
}

// DIコンストラクタ
func NewAuthHandler(uc *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// /auth/login のリクエストボディ。
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// /auth/signup のリクエストボディ。
type signUpRequest struct {
	Email    string            `json:"email"`
	Username string            `json:"username"`
	Password string            `json:"password"`
	Phone    string            `json:"phone"`
	Name     model.UserName    `json:"name"`
	Address  model.UserAddress `json:"address"`
}

func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/auth/login", h.login)
	e.POST("/auth/signup", h.signUp)
}

func (h *AuthHandler) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	return c.JSON(out.Status, out)
}

func (h *AuthHandler) signUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out := h.uc.SignUp(c.Request().Context(), model.NewUser{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
		Phone:    req.Phone,
		Name:     req.Name,
		Address:  req.Address,
	})
	return c.JSON(out.Status, out)
}
