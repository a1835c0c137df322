package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sweettracker-gateway/internal/core/config"
	"sweettracker-gateway/internal/core/httpclient"
	"sweettracker-gateway/internal/core/logger"
	"sweettracker-gateway/internal/core/server"
	trackingadapter "sweettracker-gateway/internal/features/tracking/adapters"
	trackinghandler "sweettracker-gateway/internal/features/tracking/handler"
	trackingservice "sweettracker-gateway/internal/features/tracking/service"

	"go.uber.org/zap"
)

// @title SweetTracker Gateway API
// @version 1.0
// @description This API exposes normalized parcel tracking backed by the SweetTracker service.
// @contact.name API Support
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
		zap.String("sweettracker_base_url", cfg.SweetTracker.BaseURL),
	)

	proxySettings := cfg.Proxy.Settings()
	if proxySettings.HasProxy() {
		l.Info("Outbound proxy enabled", zap.String("proxy", proxySettings.HostPort()))
	}

	client := httpclient.NewClient(httpclient.Options{
		Timeout: cfg.SweetTracker.Timeout(),
		Proxy:   proxySettings,
	})

	sweetTracker := trackingadapter.NewSweetTrackerAdapter(cfg.SweetTracker.APIKey,
		trackingadapter.WithBaseURL(cfg.SweetTracker.BaseURL),
		trackingadapter.WithHTTPClient(client),
	)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.SweetTracker.Timeout())
	if err := sweetTracker.HealthCheck(ctx); err != nil {
		l.Warn("SweetTracker Health Check Failed", zap.Error(err))
	} else {
		l.Info("SweetTracker connection verified")
	}
	cancel()

	trackingSvc := trackingservice.NewTrackingService(sweetTracker)
	trackingHdl := trackinghandler.NewTrackingHandler(trackingSvc)

	srv := server.New(cfg)
	trackingHdl.Register(srv.App)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		if err := srv.Shutdown(10 * time.Second); err != nil {
			l.Error("Server shutdown failed", zap.Error(err))
		}
	}()

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
