package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storelab/catalog-api/app/categories"
	"github.com/storelab/catalog-api/app/products"
	"github.com/storelab/catalog-api/app/users"
	"github.com/storelab/catalog-api/service"
)

type stubCategories struct{}

func (stubCategories) Create(context.Context, service.CategoryInput) (*service.CategoryView, error) {
	return &service.CategoryView{ID: 1, Name: "Shoes"}, nil
}
func (stubCategories) List(context.Context) ([]service.CategoryView, error) {
	return nil, nil
}

type stubProducts struct{}

func (stubProducts) Create(context.Context, service.ProductInput) (*service.ProductView, error) {
	return &service.ProductView{}, nil
}
func (stubProducts) Get(context.Context, uint) (*service.ProductView, error) {
	return &service.ProductView{}, nil
}
func (stubProducts) List(context.Context) ([]service.ProductView, error) { return nil, nil }
func (stubProducts) ListByCategory(context.Context, uint) ([]service.ProductView, error) {
	return nil, nil
}
func (stubProducts) Update(context.Context, uint, service.ProductInput) (*service.ProductView, error) {
	return &service.ProductView{}, nil
}
func (stubProducts) Delete(context.Context, uint) error { return nil }

type stubUsers struct{}

func (stubUsers) Create(context.Context, service.UserInput) (*service.UserView, error) {
	return &service.UserView{}, nil
}
func (stubUsers) Get(context.Context, uint) (*service.UserView, error) {
	return &service.UserView{}, nil
}
func (stubUsers) List(context.Context) ([]service.UserView, error) { return nil, nil }
func (stubUsers) Login(context.Context, service.LoginInput) (*service.LoginResult, error) {
	return &service.LoginResult{}, nil
}
func (stubUsers) VerifyAdmin(context.Context, string) (*service.UserView, error) {
	return &service.UserView{}, nil
}

func newTestServer() http.Handler {
	log := slog.New(slog.DiscardHandler)
	return New(
		log,
		categories.NewCategoryHandler(stubCategories{}),
		products.NewProductHandler(stubProducts{}),
		users.NewUserHandler(stubUsers{}),
	)
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer()
	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()

	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "catalog-api", body["app"])
}

func TestRequestIDAssigned(t *testing.T) {
	srv := newTestServer()
	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()

	srv.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRequestIDPreserved(t *testing.T) {
	srv := newTestServer()
	req := httptest.NewRequest("GET", "/health", nil)
	req.Header.Set("X-Request-ID", "upstream-id")
	rec := httptest.NewRecorder()

	srv.ServeHTTP(rec, req)

	assert.Equal(t, "upstream-id", rec.Header().Get("X-Request-ID"))
}

func TestMethodRouting(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest("DELETE", "/categories", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
