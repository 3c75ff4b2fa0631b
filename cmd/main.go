package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	httpapi "cosmos/internal/http"
	"cosmos/internal/repository"
	"cosmos/internal/service"

	_ "cosmos/docs"
)

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	store := repository.NewMemoryStore()
	categoriesRepo := repository.NewMemoryCategories(store)
	cartsRepo := repository.NewMemoryCarts(store)
	ordersRepo := repository.NewMemoryOrders(store)

	productsSvc := service.NewProductService(store)
	categoriesSvc := service.NewCategoryService(categoriesRepo)
	cartsSvc := service.NewCartService(cartsRepo, store, ordersRepo)
	ordersSvc := service.NewOrderService(ordersRepo, store)

	srv := httpapi.NewServer(log, productsSvc, categoriesSvc, cartsSvc, ordersSvc)

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":9091"
	}
	httpServer := &http.Server{
		Addr:    addr,
		Handler: srv.Engine(),
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Error("shutdown error", zap.Error(err))
	}
}
