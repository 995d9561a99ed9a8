package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"marketplace-backend/internal/config"
	httpdelivery "marketplace-backend/internal/delivery/http"
	"marketplace-backend/internal/entity"
	"marketplace-backend/internal/messaging/kafka"
	"marketplace-backend/internal/repository/postgres"
	"marketplace-backend/internal/service"
)

func main() {
	slog.SetLogLoggerLevel(slog.LevelDebug)

	cfg := config.Load()

	// --- Database ---
	db, err := postgres.InitDB(cfg.DatabaseURL)
	if err != nil {
		slog.Error("Failed to init database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	// --- Kafka ---
	publisher, subscriber, err := kafka.NewKafkaBroker(cfg.KafkaBrokers)
	if err != nil {
		slog.Error("Failed to init kafka broker", "err", err)
		os.Exit(1)
	}
	defer publisher.Close()

	// --- Services ---
	clock := entity.SystemClock()
	numbers := entity.NewNumberGenerator()

	orderSvc := service.NewOrderService(postgres.NewOrderRepository(db), publisher, clock, numbers)
	paymentSvc := service.NewPaymentService(postgres.NewPaymentRepository(db), publisher, clock)
	productSvc := service.NewProductService(postgres.NewProductRepository(db), publisher, clock)
	vendorSvc := service.NewVendorService(postgres.NewVendorRepository(db), publisher, clock)

	orchestrator := service.NewOrchestrator(orderSvc, productSvc, subscriber)

	// --- HTTP API ---
	handler := httpdelivery.NewHandler(orderSvc, paymentSvc, productSvc, vendorSvc)
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: httpdelivery.EnableCORS(mux),
	}

	// --- Start everything ---
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	go orchestrator.Run(ctx)

	go func() {
		slog.Info("🚀 HTTP server starting", "addr", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "err", err)
			cancel()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down...")
	httpServer.Shutdown(context.Background())
}
