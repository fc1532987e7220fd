package handler

import (
	"errors"
	"net/http"

	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// usecaseのエラーをHTTPに変換
func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	switch {
	case errors.Is(err, usecase.ErrScreenNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "screen not found"})
	case errors.Is(err, usecase.ErrOfferNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "offer not found"})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}
