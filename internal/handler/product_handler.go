package handler

import (
	"net/http"

	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 商品詳細画面のHTTP
type ProductHandler struct {
	screens *usecase.Registry
	factory *usecase.ScreenFactory
}

// DI
func NewProductHandler(screens *usecase.Registry, factory *usecase.ScreenFactory) *ProductHandler {
	return &ProductHandler{screens: screens, factory: factory}
}

// 商品詳細のルートを登録
func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/screens/products/:productId", h.mount)
	e.GET("/screens/products/view/:id", h.view)
	e.POST("/screens/products/view/:id/cart", h.addToCart)
}

func (h *ProductHandler) mount(c echo.Context) error {
	productID, ok := int64Param(c, "productId")
	if !ok || productID <= 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid productId"})
	}
	return mount(c, h.screens, h.factory.NewProductDetail(productID), (*usecase.ProductDetailScreen).View)
}

func (h *ProductHandler) view(c echo.Context) error {
	s, err := lookup[*usecase.ProductDetailScreen](c, h.screens)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, s.View())
}

func (h *ProductHandler) addToCart(c echo.Context) error {
	s, err := lookup[*usecase.ProductDetailScreen](c, h.screens)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, s.AddToCart())
}
