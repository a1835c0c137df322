package ports

import (
	"context"

	"sweettracker-gateway/internal/features/tracking/domain"
)

// TrackingProvider defines the operations offered by a parcel-tracking backend.
type TrackingProvider interface {
	// ListCouriers returns every courier the backend can track.
	ListCouriers(ctx context.Context) ([]domain.Courier, error)
	// RecommendCourier returns the couriers likely to own the given tracking number.
	RecommendCourier(ctx context.Context, trackingNumber string) ([]domain.Courier, error)
	// GetTracking retrieves normalized tracking details for a courier and tracking number.
	GetTracking(ctx context.Context, courierID, trackingNumber string) (*domain.TrackingResult, error)
}
