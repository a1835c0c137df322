package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"sweettracker-gateway/internal/core/config"
	"sweettracker-gateway/internal/core/httpclient"
	"sweettracker-gateway/internal/core/logger"
	trackingadapter "sweettracker-gateway/internal/features/tracking/adapters"
)

const usage = "usage: track couriers | track recommend <tracking-number> | track <courier-id> <tracking-number>"

func main() {
	if err := run(os.Args[1:]); err != nil {
		out, _ := json.Marshal(map[string]string{"error": err.Error()})
		fmt.Println(string(out))
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		return errors.New(usage)
	}

	cfg, err := config.Load(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	defer logger.Sync()

	sweetTracker := trackingadapter.NewSweetTrackerAdapter(cfg.SweetTracker.APIKey,
		trackingadapter.WithBaseURL(cfg.SweetTracker.BaseURL),
		trackingadapter.WithHTTPClient(httpclient.NewClient(httpclient.Options{
			Timeout: cfg.SweetTracker.Timeout(),
			Proxy:   cfg.Proxy.Settings(),
		})),
	)

	ctx := context.Background()

	var result any
	switch {
	case len(args) == 1 && args[0] == "couriers":
		result, err = sweetTracker.ListCouriers(ctx)
	case len(args) == 2 && args[0] == "recommend":
		result, err = sweetTracker.RecommendCourier(ctx, args[1])
	case len(args) == 2:
		result, err = sweetTracker.GetTracking(ctx, args[0], args[1])
	default:
		return errors.New(usage)
	}
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
