package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	. "github.com/DrGermanius/Zencoo/internal"
)

func main() {
	//quantities at json as numbers
	//https://github.com/shopspring/decimal/issues/21
	decimal.MarshalJSONWithoutQuotes = true

	cfg := NewConfig()
	z, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	sugaredLogger := z.Sugar()
	defer sugaredLogger.Sync() //nolint:errcheck

	repository, err := NewRepository(cfg.DatabaseURI, sugaredLogger)
	if err != nil {
		sugaredLogger.Fatal(err)
	}
	defer repository.Close()

	placed, err := LoadPlacedOrders(cfg.PlacedOrdersPath)
	if err != nil {
		sugaredLogger.Fatal(err)
	}
	received, err := LoadReceivedOrders(cfg.ReceivedOrdersPath)
	if err != nil {
		sugaredLogger.Fatal(err)
	}

	store, err := NewOrderStore(placed, received, sugaredLogger)
	if err != nil {
		sugaredLogger.Fatal(err)
	}
	sugaredLogger.Infof("Loaded %d placed and %d received orders", len(placed), len(received))

	service := NewService(
		repository,
		NewPlacedView(store, sugaredLogger),
		NewReceivedView(store, sugaredLogger),
		cfg.JWTSecret,
		sugaredLogger,
	)
	handlers := NewHandlers(service, sugaredLogger)

	app := fiber.New()
	app.Use(CorrelationID())
	app.Use(logger.New())

	handlers.Routes(app, NewAuthMiddleware(cfg.JWTSecret, sugaredLogger))

	go func() {
		if err := app.Listen(cfg.RunAddress); err != nil {
			sugaredLogger.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	sugaredLogger.Info("Shutting down service...")

	if err := app.Shutdown(); err != nil {
		sugaredLogger.Errorf("Shutdown error: %s", err.Error())
	}
}
