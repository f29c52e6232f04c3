package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/storelab/catalog-api/app/categories"
	"github.com/storelab/catalog-api/app/products"
	"github.com/storelab/catalog-api/app/users"
	"github.com/storelab/catalog-api/config"
	"github.com/storelab/catalog-api/database"
	"github.com/storelab/catalog-api/models"
	"github.com/storelab/catalog-api/server"
	"github.com/storelab/catalog-api/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))

	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		log.Error("open database", "err", err)
		os.Exit(1)
	}
	defer database.Close(db)

	categoriesRepo := models.NewCategoriesRepository(db)
	productsRepo := models.NewProductsRepository(db)
	usersRepo := models.NewUsersRepository(db)

	categoryHandler := categories.NewCategoryHandler(service.NewCategories(categoriesRepo))
	productHandler := products.NewProductHandler(service.NewProducts(productsRepo, categoriesRepo))
	userHandler := users.NewUserHandler(service.NewUsers(usersRepo))

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: server.New(log, categoryHandler, productHandler, userHandler),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	log.Info("server started", "addr", cfg.Addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown", "err", err)
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", "err", err)
			os.Exit(1)
		}
	}
	log.Info("shutdown complete")
}
