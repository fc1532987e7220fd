package handler

import (
	"net/http"

	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// プロフィール画面のHTTP
type ProfileHandler struct {
	screens *usecase.Registry
	factory *usecase.ScreenFactory
}

// DI
func NewProfileHandler(screens *usecase.Registry, factory *usecase.ScreenFactory) *ProfileHandler {
	return &ProfileHandler{screens: screens, factory: factory}
}

// confirm: 省略=ダイアログを開く / true=ログアウト / false=閉じる
type logoutRequest struct {
	Confirm *bool `json:"confirm"`
}

func (h *ProfileHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/screens/profile")
	g.POST("", h.mount)
	g.GET("/:id", h.view)
	g.POST("/:id/logout", h.logout)
}

func (h *ProfileHandler) mount(c echo.Context) error {
	return mount(c, h.screens, h.factory.NewProfile(), (*usecase.ProfileScreen).View)
}

func (h *ProfileHandler) view(c echo.Context) error {
	s, err := lookup[*usecase.ProfileScreen](c, h.screens)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, s.View())
}

func (h *ProfileHandler) logout(c echo.Context) error {
	s, err := lookup[*usecase.ProfileScreen](c, h.screens)
	if err != nil {
		return writeError(c, err)
	}

	var req logoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	switch {
	case req.Confirm == nil:
		return c.JSON(http.StatusOK, s.RequestLogout())
	case *req.Confirm:
		return c.JSON(http.StatusOK, s.ConfirmLogout())
	default:
		return c.JSON(http.StatusOK, s.CancelLogout())
	}
}
