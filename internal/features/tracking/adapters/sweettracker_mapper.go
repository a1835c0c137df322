package adapter

import (
	"time"

	"sweettracker-gateway/internal/features/tracking/domain"
)

func mapCouriers(companies []companyResponse) []domain.Courier {
	couriers := make([]domain.Courier, 0, len(companies))
	for _, c := range companies {
		couriers = append(couriers, domain.Courier{
			ID:   c.Code,
			Name: c.Name,
		})
	}
	return couriers
}

// mapResponseToDomain converts a trackingInfo payload to the domain result.
func mapResponseToDomain(resp trackingInfoResponse) *domain.TrackingResult {
	result := &domain.TrackingResult{
		Status:         statusFromLevel(resp.Level),
		Complete:       resp.Complete || resp.CompleteYN == "Y",
		TrackingNumber: optional(resp.InvoiceNo),
		Sender:         optional(resp.SenderName),
		Recipient:      optional(resp.Recipient),
		Receiver: domain.Receiver{
			Name:    optional(resp.ReceiverName),
			Address: optional(resp.ReceiverAddr),
		},
		EstimatedArrival: optional(resp.Estimate),
		Item: domain.Item{
			Name:     optional(resp.ItemName),
			ImageURL: optional(resp.ItemImage),
		},
		Events: make([]domain.TrackingEvent, 0, len(resp.TrackingDetails)),
	}

	for _, detail := range resp.TrackingDetails {
		result.Events = append(result.Events, domain.TrackingEvent{
			Timestamp:    time.UnixMilli(int64(detail.Time)).UTC(),
			Kind:         detail.Kind,
			Location:     detail.Where,
			PhoneNumbers: phoneNumbers(detail),
			Status:       statusFromLevel(detail.Level),
			Courier: domain.EventCourier{
				Name:     optional(detail.ManName),
				PhotoURL: optional(detail.ManPic),
			},
		})
	}

	return result
}

// statusFromLevel maps the upstream level code. Absent, fractional and out-of-range levels are unknown.
func statusFromLevel(level *float64) domain.TrackingStatus {
	if level == nil {
		return domain.TrackingStatusUnknown
	}

	switch *level {
	case 0:
		return domain.TrackingStatusPreparing
	case 1:
		return domain.TrackingStatusCollected
	case 2:
		return domain.TrackingStatusShipping
	case 3:
		return domain.TrackingStatusArrivedAtBranch
	case 4:
		return domain.TrackingStatusDeparted
	case 5:
		return domain.TrackingStatusArrived
	default:
		return domain.TrackingStatusUnknown
	}
}

// phoneNumbers returns telno then telno2, skipping empty ones.
func phoneNumbers(detail trackingDetailResponse) []string {
	numbers := make([]string, 0, 2)
	if detail.Telno != "" {
		numbers = append(numbers, detail.Telno)
	}
	if detail.Telno2 != "" {
		numbers = append(numbers, detail.Telno2)
	}
	return numbers
}

// optional returns nil for an empty string.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
