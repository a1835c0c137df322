package service

import (
	"context"
	"fmt"

	"sweettracker-gateway/internal/core/metrics"
	"sweettracker-gateway/internal/features/tracking/domain"
	"sweettracker-gateway/internal/features/tracking/ports"
)

// TrackingService exposes the tracking operations of a provider to the HTTP layer.
type TrackingService struct {
	provider ports.TrackingProvider
}

// NewTrackingService creates a new TrackingService backed by the given provider.
func NewTrackingService(provider ports.TrackingProvider) *TrackingService {
	return &TrackingService{
		provider: provider,
	}
}

// ListCouriers returns every courier the provider supports.
func (s *TrackingService) ListCouriers(ctx context.Context) ([]domain.Courier, error) {
	couriers, err := s.provider.ListCouriers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list couriers: %w", err)
	}
	return couriers, nil
}

// RecommendCourier returns the couriers suggested for a tracking number.
func (s *TrackingService) RecommendCourier(ctx context.Context, trackingNumber string) ([]domain.Courier, error) {
	couriers, err := s.provider.RecommendCourier(ctx, trackingNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to recommend courier: %w", err)
	}
	return couriers, nil
}

// GetTracking retrieves tracking details for a tracking number and courier.
func (s *TrackingService) GetTracking(ctx context.Context, courierID, trackingNumber string) (*domain.TrackingResult, error) {
	result, err := s.provider.GetTracking(ctx, courierID, trackingNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to get tracking from provider: %w", err)
	}

	metrics.ShipmentStatusTotal.WithLabelValues(string(result.Status)).Inc()

	return result, nil
}
