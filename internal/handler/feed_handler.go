package handler

import (
	"net/http"

	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ホーム画面のHTTP
type FeedHandler struct {
	screens *usecase.Registry
	factory *usecase.ScreenFactory
}

// DI
func NewFeedHandler(screens *usecase.Registry, factory *usecase.ScreenFactory) *FeedHandler {
	return &FeedHandler{screens: screens, factory: factory}
}

type selectCategoryRequest struct {
	Category string `json:"category"`
}

type addToCartRequest struct {
	ProductID int64 `json:"product_id"`
}

// /screens/feed を登録
func (h *FeedHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/screens/feed")
	g.POST("", h.mount)
	g.GET("/:id", h.view)
	g.PUT("/:id/search", h.search)
	g.PUT("/:id/category", h.selectCategory)
	g.POST("/:id/cart", h.addToCart)
}

func (h *FeedHandler) mount(c echo.Context) error {
	return mount(c, h.screens, h.factory.NewFeed(), (*usecase.FeedScreen).View)
}

func (h *FeedHandler) view(c echo.Context) error {
	s, err := lookup[*usecase.FeedScreen](c, h.screens)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, s.View())
}

func (h *FeedHandler) search(c echo.Context) error {
	s, err := lookup[*usecase.FeedScreen](c, h.screens)
	if err != nil {
		return writeError(c, err)
	}

	var req searchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	return c.JSON(http.StatusOK, s.Search(req.Query))
}

func (h *FeedHandler) selectCategory(c echo.Context) error {
	s, err := lookup[*usecase.FeedScreen](c, h.screens)
	if err != nil {
		return writeError(c, err)
	}

	var req selectCategoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	return c.JSON(http.StatusOK, s.SelectCategory(req.Category))
}

func (h *FeedHandler) addToCart(c echo.Context) error {
	s, err := lookup[*usecase.FeedScreen](c, h.screens)
	if err != nil {
		return writeError(c, err)
	}

	var req addToCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if req.ProductID <= 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid product_id"})
	}

	return c.JSON(http.StatusOK, s.AddToCart(req.ProductID))
}
