package handler

import (
	"net/http"

	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// カート画面のHTTP
type CartHandler struct {
	screens *usecase.Registry
	factory *usecase.ScreenFactory
}

// DI
func NewCartHandler(screens *usecase.Registry, factory *usecase.ScreenFactory) *CartHandler {
	return &CartHandler{screens: screens, factory: factory}
}

// /screens/cart を登録
func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/screens/cart")
	g.POST("", h.mount)
	g.GET("/:id", h.view)
	g.PATCH("/:id/lines/:productId", h.patchLine)
	g.DELETE("/:id/lines/:productId", h.deleteLine)
	g.POST("/:id/order", h.placeOrder)
}

func (h *CartHandler) mount(c echo.Context) error {
	return mount(c, h.screens, h.factory.NewCart(), (*usecase.CartScreen).View)
}

func (h *CartHandler) view(c echo.Context) error {
	s, err := lookup[*usecase.CartScreen](c, h.screens)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, s.View())
}

func (h *CartHandler) patchLine(c echo.Context) error {
	s, err := lookup[*usecase.CartScreen](c, h.screens)
	if err != nil {
		return writeError(c, err)
	}

	productID, ok := int64Param(c, "productId")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid productId"})
	}

	var req deltaRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	return c.JSON(http.StatusOK, s.ChangeQuantity(productID, req.Delta))
}

func (h *CartHandler) deleteLine(c echo.Context) error {
	s, err := lookup[*usecase.CartScreen](c, h.screens)
	if err != nil {
		return writeError(c, err)
	}

	productID, ok := int64Param(c, "productId")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid productId"})
	}

	return c.JSON(http.StatusOK, s.RemoveLine(productID))
}

func (h *CartHandler) placeOrder(c echo.Context) error {
	s, err := lookup[*usecase.CartScreen](c, h.screens)
	if err != nil {
		return writeError(c, err)
	}
	return writeError(c, s.PlaceOrder())
}
