package handler

import (
	"errors"

	"sweettracker-gateway/internal/core/logger"
	"sweettracker-gateway/internal/features/tracking/domain"
	"sweettracker-gateway/internal/features/tracking/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// TrackingHandler handles HTTP requests for tracking operations.
type TrackingHandler struct {
	trackingService *service.TrackingService
}

// NewTrackingHandler creates a new TrackingHandler.
func NewTrackingHandler(trackingService *service.TrackingService) *TrackingHandler {
	return &TrackingHandler{
		trackingService: trackingService,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// Register mounts the tracking routes on the router.
func (h *TrackingHandler) Register(r fiber.Router) {
	r.Get("/couriers", h.ListCouriers)
	r.Get("/couriers/recommend/:number", h.RecommendCourier)
	r.Get("/tracking/:number", h.GetTracking)
}

// ListCouriers godoc
// @Summary List supported couriers
// @Description Returns every courier the tracking service can track
// @Tags couriers
// @Produce json
// @Success 200 {array} domain.Courier
// @Failure 502 {object} ErrorResponse
// @Router /couriers [get]
func (h *TrackingHandler) ListCouriers(c *fiber.Ctx) error {
	couriers, err := h.trackingService.ListCouriers(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(couriers)
}

// RecommendCourier godoc
// @Summary Recommend couriers for a tracking number
// @Description Returns the couriers the tracking service suggests for the tracking number
// @Tags couriers
// @Produce json
// @Param number path string true "Tracking Number"
// @Success 200 {array} domain.Courier
// @Failure 502 {object} ErrorResponse
// @Router /couriers/recommend/{number} [get]
func (h *TrackingHandler) RecommendCourier(c *fiber.Ctx) error {
	trackingNumber := c.Params("number")
	if trackingNumber == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "tracking number is required",
			RayID:   rayID(c),
		})
	}

	couriers, err := h.trackingService.RecommendCourier(c.UserContext(), trackingNumber)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(couriers)
}

// GetTracking godoc
// @Summary Get tracking details for a shipment
// @Description Retrieves normalized tracking details for a tracking number and courier
// @Tags tracking
// @Produce json
// @Param number path string true "Tracking Number"
// @Param courier query string true "Courier ID (e.g., 04)"
// @Success 200 {object} domain.TrackingResult
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /tracking/{number} [get]
func (h *TrackingHandler) GetTracking(c *fiber.Ctx) error {
	trackingNumber := c.Params("number")
	if trackingNumber == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "tracking number is required",
			RayID:   rayID(c),
		})
	}

	courier := c.Query("courier")
	if courier == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "courier query parameter is required",
			RayID:   rayID(c),
		})
	}

	result, err := h.trackingService.GetTracking(c.UserContext(), courier, trackingNumber)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(result)
}

const (
	upstreamFailureMessage = "upstream tracking service failed"
	internalErrorMessage   = "internal server error"
)

// fail maps upstream failures to 502 and anything else to 500.
// Error details go to the log only; callers get a fixed message and the ray id.
func (h *TrackingHandler) fail(c *fiber.Ctx, err error) error {
	var transportErr *domain.TransportError
	var decodeErr *domain.DecodeError

	status := fiber.StatusInternalServerError
	message := internalErrorMessage
	if errors.As(err, &transportErr) || errors.As(err, &decodeErr) {
		status = fiber.StatusBadGateway
		message = upstreamFailureMessage
	}

	logger.Get().Warn("Tracking request failed",
		zap.String("path", c.Path()),
		zap.Int("status", status),
		zap.String("ray_id", rayID(c)),
		zap.Error(err),
	)

	return c.Status(status).JSON(ErrorResponse{
		Message: message,
		RayID:   rayID(c),
	})
}

func rayID(c *fiber.Ctx) string {
	id, _ := c.Locals("requestid").(string)
	return id
}
