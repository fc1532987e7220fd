package handler

import (
	"net/http"

	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// お知らせ画面のHTTP
type OffersHandler struct {
	screens *usecase.Registry
	factory *usecase.ScreenFactory
}

// DI
func NewOffersHandler(screens *usecase.Registry, factory *usecase.ScreenFactory) *OffersHandler {
	return &OffersHandler{screens: screens, factory: factory}
}

func (h *OffersHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/screens/offers")
	g.POST("", h.mount)
	g.GET("/:id", h.view)
	g.PUT("/:id/search", h.search)
	g.PATCH("/:id/items/:offerId", h.patchItem)
}

func (h *OffersHandler) mount(c echo.Context) error {
	return mount(c, h.screens, h.factory.NewOffers(), (*usecase.OffersScreen).View)
}

func (h *OffersHandler) view(c echo.Context) error {
	s, err := lookup[*usecase.OffersScreen](c, h.screens)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, s.View())
}

func (h *OffersHandler) search(c echo.Context) error {
	s, err := lookup[*usecase.OffersScreen](c, h.screens)
	if err != nil {
		return writeError(c, err)
	}

	var req searchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	return c.JSON(http.StatusOK, s.Search(req.Query))
}

func (h *OffersHandler) patchItem(c echo.Context) error {
	s, err := lookup[*usecase.OffersScreen](c, h.screens)
	if err != nil {
		return writeError(c, err)
	}

	var req deltaRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := s.ChangeQuantity(c.Param("offerId"), req.Delta)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
