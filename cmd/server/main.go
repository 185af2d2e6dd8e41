package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/zamtimber/shop/internal/cart"
	"github.com/zamtimber/shop/internal/catalog"
	"github.com/zamtimber/shop/internal/config"
	"github.com/zamtimber/shop/internal/events"
	"github.com/zamtimber/shop/internal/handlers"
	"github.com/zamtimber/shop/internal/logging"
	loggingmw "github.com/zamtimber/shop/internal/middleware/logging"
	"github.com/zamtimber/shop/internal/storage"
	httpserver "github.com/zamtimber/shop/internal/transport/http"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LOG_LEVEL)

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := configuration.InitDB(initCtx)
	cancel()
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	slot, err := storage.NewGormSlot(db)
	if err != nil {
		log.Fatalf("storage init error: %v", err)
	}

	var producer events.Publisher = events.Nop{}
	if configuration.KAFKA_ADDRESS != "" {
		producer = events.NewProducer([]string{configuration.KAFKA_ADDRESS})
	}

	cat := catalog.Default()

	cartService := cart.NewService(cat, slot)
	cartService.ProcessingDelay = time.Duration(configuration.CHECKOUT_DELAY_MS) * time.Millisecond

	e := echo.New()
	e.HideBanner = true
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID(), middleware.CORS())
	e.Use(loggingmw.RequestLogger(logger))

	deps := httpserver.Deps{
		CartHandler:    &handlers.CartHandler{Svc: cartService, Events: producer},
		CatalogHandler: &handlers.CatalogHandler{Catalog: cat},
		ContactHandler: &handlers.ContactHandler{Events: producer},
		EcoHandler:     &handlers.EcoHandler{Catalog: cat},
	}

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         ":" + configuration.SERVER_PORT,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		logger.Info("starting storefront server", "port", configuration.SERVER_PORT)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	}

	if err := producer.Close(); err != nil {
		log.Printf("kafka close error: %v", err)
	}

	logger.Info("shutdown complete")
}
