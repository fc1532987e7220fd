package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"storefront/internal/handler"
	"storefront/internal/infra/fakestore"
	infraRepo "storefront/internal/infra/repository"
	"storefront/internal/server"
	"storefront/internal/usecase"
	"storefront/internal/validator"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

const productsJSON = `[
  {"id":1,"title":"Fjallraven Backpack","price":14.22,"description":"bag","category":"men's clothing","image":"https://img/1.jpg","rating":{"rate":3.9,"count":120}},
  {"id":2,"title":"Mens Casual T-Shirt","price":22.3,"description":"shirt","category":"men's clothing","image":"https://img/2.jpg","rating":{"rate":4.1,"count":259}},
  {"id":3,"title":"Solid Gold Ring","price":168,"description":"ring","category":"jewelery","image":"https://img/3.jpg","rating":{"rate":3.9,"count":70}}
]`

const userJSON = `{"id":1,"email":"john@gmail.com","username":"johnd","phone":"1-570-236-7033",
  "name":{"firstname":"john","lastname":"doe"},
  "address":{"city":"kilcoole","street":"new road","number":7682,"zipcode":"12926-3874"}}`

// fakestoreapi.com の代わり
func newStoreServer(t *testing.T) *httptest.Server {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": 2, "user": "mor_2314"}).
		SignedString([]byte("store"))
	require.NoError(t, err)

	mux := http.NewServeMux()
	mux.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, productsJSON)
	})
	mux.HandleFunc("/products/categories", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `["electronics","jewelery","men's clothing"]`)
	})
	mux.HandleFunc("/products/3", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"id":3,"title":"Solid Gold Ring","price":168,"description":"ring","category":"jewelery","image":"https://img/3.jpg","rating":{"rate":3.9,"count":70}}`)
	})
	mux.HandleFunc("/carts/1", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"id":1,"userId":1,"products":[{"productId":1,"quantity":1}]}`)
	})
	mux.HandleFunc("/users/1", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, userJSON)
	})
	mux.HandleFunc("/users", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		_, _ = io.WriteString(w, `{"id":11}`)
	})
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.Username != "mor_2314" || body.Password != "83r5^_" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, "username or password is incorrect")
			return
		}
		_, _ = io.WriteString(w, `{"token":"`+token+`"}`)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// 発火しないScheduler
type idleScheduler struct{}

type idleTimer struct{}

func (idleTimer) Stop() bool { return true }

func (idleScheduler) AfterFunc(time.Duration, func()) usecase.Timer { return idleTimer{} }
func (idleScheduler) Every(time.Duration, func()) usecase.Timer     { return idleTimer{} }

type testApp struct {
	e        *echo.Echo
	registry *usecase.Registry
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	store := newStoreServer(t)
	logger := zerolog.Nop()

	client := fakestore.NewClientWithHTTP(store.URL, store.Client(), logger)
	products := fakestore.NewProductStore(client)
	users := fakestore.NewUserStore(client)

	registry := usecase.NewRegistry(usecase.NewRealClock(), logger)
	t.Cleanup(registry.Close)

	idGen := usecase.NewUUIDGenerator()
	factory := usecase.NewScreenFactory(usecase.ScreenDeps{
		Products:    products,
		Carts:       fakestore.NewCartStore(client),
		Users:       users,
		Scheduler:   idleScheduler{},
		IDGen:       idGen,
		CartID:      1,
		UserID:      1,
		BannerCount: 3,
	}, logger)

	authUC := usecase.NewAuthUsecase(
		fakestore.NewAuthStore(client),
		users,
		infraRepo.NewNoopAuthAuditLogRepository(),
		validator.NewAuthValidator(),
		idGen,
		usecase.NewRealClock(),
		logger,
	)

	e := server.New(logger,
		handler.NewFeedHandler(registry, factory),
		handler.NewCartHandler(registry, factory),
		handler.NewProductHandler(registry, factory),
		handler.NewProfileHandler(registry, factory),
		handler.NewOffersHandler(registry, factory),
		handler.NewScreenHandler(registry),
		handler.NewAuthHandler(authUC),
	)
	return &testApp{e: e, registry: registry}
}

func (a *testApp) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(bytes.NewReader(rec.Body.Bytes())).Decode(&out), rec.Body.String())
	return out
}
