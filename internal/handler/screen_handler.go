package handler

import (
	"net/http"
	"strconv"

	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /screens/:id のアンマウント
type ScreenHandler struct {
	screens *usecase.Registry
}

// DI
func NewScreenHandler(screens *usecase.Registry) *ScreenHandler {
	return &ScreenHandler{screens: screens}
}

func (h *ScreenHandler) RegisterRoutes(e *echo.Echo) {
	e.DELETE("/screens/:id", h.unmount)
}

func (h *ScreenHandler) unmount(c echo.Context) error {
	if err := h.screens.Unmount(c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// 画面を登録して読み込みを始める。
// wait=false でなければ読み込み完了まで待つ。
// 待っている間にクライアントが切れたらIDを渡せないので、その場でアンマウントする。
func mount[S usecase.Screen, V any](c echo.Context, screens *usecase.Registry, s S, view func(S) V) error {
	done := screens.Mount(s)
	if c.QueryParam("wait") != "false" {
		ctx := c.Request().Context()
		select {
		case <-done:
		case <-ctx.Done():
			_ = screens.Unmount(s.ID())
			return ctx.Err()
		}
	}
	return c.JSON(http.StatusCreated, view(s))
}

// :id の画面を型付きで取り出す
func lookup[S usecase.Screen](c echo.Context, screens *usecase.Registry) (S, error) {
	return usecase.Lookup[S](screens, c.Param("id"))
}

func int64Param(c echo.Context, name string) (int64, bool) {
	v, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

type searchRequest struct {
	Query string `json:"query"`
}

type deltaRequest struct {
	Delta int64 `json:"delta"`
}
