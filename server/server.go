// Package server wires the HTTP routes and request middleware.
package server

import (
	"log/slog"
	"net/http"

	"github.com/storelab/catalog-api/app/api"
	"github.com/storelab/catalog-api/app/categories"
	"github.com/storelab/catalog-api/app/products"
	"github.com/storelab/catalog-api/app/users"
)

const appName = "catalog-api"

type healthBody struct {
	Status string `json:"status"`
	App    string `json:"app"`
}

// New builds the route table and wraps it with request-id and access-log
// middleware.
func New(
	log *slog.Logger,
	categoryHandler *categories.CategoryHandler,
	productHandler *products.ProductHandler,
	userHandler *users.UserHandler,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		api.JSON(w, http.StatusOK, healthBody{Status: "ok", App: appName})
	})

	mux.HandleFunc("POST /categories", categoryHandler.HandleCreate)
	mux.HandleFunc("GET /categories", categoryHandler.HandleList)
	mux.HandleFunc("GET /categories/{id}/products", productHandler.HandleListByCategory)

	mux.HandleFunc("POST /products", productHandler.HandleCreate)
	mux.HandleFunc("GET /products", productHandler.HandleList)
	mux.HandleFunc("GET /products/{id}", productHandler.HandleGet)
	mux.HandleFunc("PUT /products/{id}", productHandler.HandleUpdate)
	mux.HandleFunc("DELETE /products/{id}", productHandler.HandleDelete)

	mux.HandleFunc("POST /users", userHandler.HandleCreate)
	mux.HandleFunc("GET /users", userHandler.HandleList)
	mux.HandleFunc("GET /users/{id}", userHandler.HandleGet)
	mux.HandleFunc("POST /login", userHandler.HandleLogin)

	mux.HandleFunc("GET /admin/users", userHandler.HandleAdminList)

	return withRequestID(withAccessLog(log, mux))
}
