package domain

import "time"

// TrackingStatus represents the progress stage of a shipment.
type TrackingStatus string

const (
	// TrackingStatusPreparing indicates the sender registered the shipment but the courier has not picked it up.
	TrackingStatusPreparing TrackingStatus = "preparing"
	// TrackingStatusCollected indicates the courier collected the parcel.
	TrackingStatusCollected TrackingStatus = "collected"
	// TrackingStatusShipping indicates the parcel is moving between hubs.
	TrackingStatusShipping TrackingStatus = "shipping"
	// TrackingStatusArrivedAtBranch indicates the parcel reached the destination branch.
	TrackingStatusArrivedAtBranch TrackingStatus = "arrived_at_branch"
	// TrackingStatusDeparted indicates the parcel left the branch for final delivery.
	TrackingStatusDeparted TrackingStatus = "departed"
	// TrackingStatusArrived indicates the parcel was delivered.
	TrackingStatusArrived TrackingStatus = "arrived"
	// TrackingStatusUnknown is used for any level the upstream service reports outside the known range.
	TrackingStatusUnknown TrackingStatus = "unknown"
)

// Courier identifies a parcel-delivery company that can be tracked.
type Courier struct {
	// ID is the upstream courier code (e.g., "04").
	ID string `json:"id"`
	// Name is the display name of the courier.
	Name string `json:"name"`
}

// TrackingResult is the normalized tracking information for one shipment.
// Optional fields are nil when the upstream service left them empty.
type TrackingResult struct {
	// Status is the overall shipment status.
	Status TrackingStatus `json:"status"`
	// Complete reports whether the upstream service considers the delivery finished.
	Complete bool `json:"complete"`
	// TrackingNumber is the invoice number echoed by the upstream service.
	TrackingNumber *string `json:"tracking_number,omitempty"`
	// Sender is the name of the sender.
	Sender *string `json:"sender,omitempty"`
	// Recipient is the top-level recipient name. It is kept apart from Receiver.Name.
	Recipient *string `json:"recipient,omitempty"`
	// Receiver holds the delivery name and address.
	Receiver Receiver `json:"receiver"`
	// EstimatedArrival is the upstream's free-form delivery estimate.
	EstimatedArrival *string `json:"estimated_arrival,omitempty"`
	// Item describes the shipped goods.
	Item Item `json:"item"`
	// Events contains the tracking events in upstream order.
	Events []TrackingEvent `json:"events"`
}

// Receiver holds the delivery target of a shipment.
type Receiver struct {
	Name    *string `json:"name,omitempty"`
	Address *string `json:"address,omitempty"`
}

// Item describes the shipped goods.
type Item struct {
	Name     *string `json:"name,omitempty"`
	ImageURL *string `json:"image_url,omitempty"`
}

// TrackingEvent is one timestamped waypoint of a shipment.
type TrackingEvent struct {
	// Timestamp is when the event happened.
	Timestamp time.Time `json:"timestamp"`
	// Kind is the upstream description of the event (e.g., "배달완료").
	Kind string `json:"kind"`
	// Location is where the event happened.
	Location string `json:"location"`
	// PhoneNumbers holds up to two contact numbers, primary first.
	PhoneNumbers []string `json:"phone_numbers"`
	// Status is the status reported for this event. It may differ from the shipment status.
	Status TrackingStatus `json:"status"`
	// Courier describes the delivery person handling the event.
	Courier EventCourier `json:"courier"`
}

// EventCourier describes the delivery person attached to an event.
type EventCourier struct {
	Name     *string `json:"name,omitempty"`
	PhotoURL *string `json:"photo_url,omitempty"`
}
