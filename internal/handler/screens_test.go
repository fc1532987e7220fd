package handler_test

import (
	"net/http"
	"testing"

	"storefront/internal/handler"
	"storefront/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedScreenFlow(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodPost, "/screens/feed", "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	v := decode[usecase.FeedView](t, rec)
	assert.False(t, v.Loading)
	assert.Len(t, v.Products, 3)
	assert.Len(t, v.Categories, 3)
	id := v.ScreenID

	rec = app.do(t, http.MethodPut, "/screens/feed/"+id+"/search", `{"query":"MENS"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	v = decode[usecase.FeedView](t, rec)
	require.Len(t, v.Products, 1)
	assert.Equal(t, int64(2), v.Products[0].ID)

	rec = app.do(t, http.MethodPut, "/screens/feed/"+id+"/category", `{"category":"jewelery"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	v = decode[usecase.FeedView](t, rec)
	assert.Equal(t, "jewelery", v.SelectedCategory)
	assert.Len(t, v.Products, 1)

	rec = app.do(t, http.MethodPost, "/screens/feed/"+id+"/cart", `{"product_id":1}`)
	require.Equal(t, http.StatusOK, rec.Code)
	v = decode[usecase.FeedView](t, rec)
	assert.True(t, v.Notice.Visible)
	assert.Equal(t, usecase.AddedToCartMessage, v.Notice.Message)

	rec = app.do(t, http.MethodPost, "/screens/feed/"+id+"/cart", `{"product_id":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = app.do(t, http.MethodDelete, "/screens/"+id, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = app.do(t, http.MethodGet, "/screens/feed/"+id, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "screen not found", decode[handler.ErrorResponse](t, rec).Error)
}

func TestCartScreenFlow(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodPost, "/screens/cart", "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	v := decode[usecase.CartView](t, rec)
	require.Len(t, v.Lines, 1)
	assert.True(t, decimal.RequireFromString("14.22").Equal(v.Total))
	id := v.ScreenID

	rec = app.do(t, http.MethodPatch, "/screens/cart/"+id+"/lines/1", `{"delta":1}`)
	require.Equal(t, http.StatusOK, rec.Code)
	v = decode[usecase.CartView](t, rec)
	assert.Equal(t, int64(2), v.Lines[0].Quantity)
	assert.True(t, decimal.RequireFromString("28.44").Equal(v.Total))

	rec = app.do(t, http.MethodPatch, "/screens/cart/"+id+"/lines/1", `{"delta":-5}`)
	v = decode[usecase.CartView](t, rec)
	assert.Equal(t, int64(1), v.Lines[0].Quantity)

	rec = app.do(t, http.MethodPost, "/screens/cart/"+id+"/order", "")
	assert.Equal(t, http.StatusNotImplemented, rec.Code)

	rec = app.do(t, http.MethodDelete, "/screens/cart/"+id+"/lines/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = app.do(t, http.MethodDelete, "/screens/cart/"+id+"/lines/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	v = decode[usecase.CartView](t, rec)
	assert.Empty(t, v.Lines)
	assert.True(t, v.Total.IsZero())
}

func TestScreenKindMismatchIsNotFound(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodPost, "/screens/offers", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	id := decode[usecase.OffersView](t, rec).ScreenID

	rec = app.do(t, http.MethodGet, "/screens/cart/"+id, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = app.do(t, http.MethodDelete, "/screens/unknown", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProductDetailScreenFlow(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodPost, "/screens/products/3", "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	v := decode[usecase.ProductDetailView](t, rec)
	assert.False(t, v.Loading)
	assert.Equal(t, "Solid Gold Ring", v.Title)

	rec = app.do(t, http.MethodPost, "/screens/products/view/"+v.ScreenID+"/cart", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, usecase.NavigateCart, decode[usecase.ProductDetailView](t, rec).NavigateTo)

	rec = app.do(t, http.MethodPost, "/screens/products/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProductDetailUnknownProductStaysLoading(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodPost, "/screens/products/99", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, decode[usecase.ProductDetailView](t, rec).Loading)
}

func TestProfileScreenFlow(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodPost, "/screens/profile", "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	v := decode[usecase.ProfileView](t, rec)
	assert.Equal(t, "john doe", v.FullName)
	assert.Equal(t, "kilcoole, new road", v.Address)
	id := v.ScreenID

	rec = app.do(t, http.MethodPost, "/screens/profile/"+id+"/logout", `{}`)
	assert.True(t, decode[usecase.ProfileView](t, rec).ConfirmLogout)

	rec = app.do(t, http.MethodPost, "/screens/profile/"+id+"/logout", `{"confirm":false}`)
	v = decode[usecase.ProfileView](t, rec)
	assert.False(t, v.ConfirmLogout)
	assert.Empty(t, v.NavigateTo)

	rec = app.do(t, http.MethodPost, "/screens/profile/"+id+"/logout", `{"confirm":true}`)
	assert.Equal(t, usecase.NavigateSignIn, decode[usecase.ProfileView](t, rec).NavigateTo)
}

func TestOffersScreenFlow(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodPost, "/screens/offers", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	v := decode[usecase.OffersView](t, rec)
	assert.Len(t, v.Offers, 4)
	id := v.ScreenID

	rec = app.do(t, http.MethodPut, "/screens/offers/"+id+"/search", `{"query":"espresso"}`)
	v = decode[usecase.OffersView](t, rec)
	require.Len(t, v.Offers, 1)

	rec = app.do(t, http.MethodPatch, "/screens/offers/"+id+"/items/3", `{"delta":2}`)
	require.Equal(t, http.StatusOK, rec.Code)
	v = decode[usecase.OffersView](t, rec)
	assert.Equal(t, int64(2), v.Offers[0].Quantity)

	rec = app.do(t, http.MethodPatch, "/screens/offers/"+id+"/items/99", `{"delta":1}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "offer not found", decode[handler.ErrorResponse](t, rec).Error)
}
