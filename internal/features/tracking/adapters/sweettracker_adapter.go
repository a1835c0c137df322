package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"sweettracker-gateway/internal/core/httpclient"
	"sweettracker-gateway/internal/core/metrics"
	"sweettracker-gateway/internal/features/tracking/domain"
)

// DefaultBaseURL is the SweetTracker API root.
const DefaultBaseURL = "http://info.sweettracker.co.kr/api/v1/"

// APIKeyParam is the query parameter carrying the API key. Its value is redacted in request logs.
const APIKeyParam = "t_key"

const (
	defaultTimeout = 10 * time.Second

	companyListEndpoint  = "companylist"
	recommendEndpoint    = "recommend"
	trackingInfoEndpoint = "trackingInfo"

	invoiceParam = "t_invoice"
	courierParam = "t_code"

	// maxErrorBody caps how much of a non-2xx body is kept in a TransportError.
	maxErrorBody = 512
	// maxResponseBody caps how much of a 2xx body is decoded.
	maxResponseBody = 4 << 20
)

// SweetTrackerAdapter is a client for the SweetTracker parcel-tracking API.
// It holds no mutable state and is safe for concurrent use.
type SweetTrackerAdapter struct {
	client  *http.Client
	baseURL string
}

// Option customizes a SweetTrackerAdapter.
type Option func(*adapterOptions)

type adapterOptions struct {
	baseURL string
	client  *http.Client
	timeout time.Duration
}

// WithBaseURL overrides the API root. A trailing slash is added when missing.
func WithBaseURL(baseURL string) Option {
	return func(o *adapterOptions) {
		o.baseURL = baseURL
	}
}

// WithHTTPClient sets the client used for requests. The API key hook and its
// log redaction are installed on a copy, so the given client is not modified.
func WithHTTPClient(client *http.Client) Option {
	return func(o *adapterOptions) {
		o.client = client
	}
}

// WithTimeout sets the timeout of the default client. It is ignored when WithHTTPClient is used.
func WithTimeout(timeout time.Duration) Option {
	return func(o *adapterOptions) {
		o.timeout = timeout
	}
}

// NewSweetTrackerAdapter creates a client authenticated with apiKey.
// The key is appended as t_key to every request.
func NewSweetTrackerAdapter(apiKey string, opts ...Option) *SweetTrackerAdapter {
	o := adapterOptions{
		baseURL: DefaultBaseURL,
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}

	base := o.client
	if base == nil {
		base = httpclient.NewClient(httpclient.Options{Timeout: o.timeout})
	}
	base = httpclient.WithRedactedQuery(base, APIKeyParam)

	baseURL := o.baseURL
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	return &SweetTrackerAdapter{
		client:  httpclient.WithRequestHooks(base, httpclient.QueryParam(APIKeyParam, apiKey)),
		baseURL: baseURL,
	}
}

// companyResponse is one courier entry in the companylist and recommend payloads.
type companyResponse struct {
	Code string `json:"Code"`
	Name string `json:"Name"`
}

// rejection is the envelope SweetTracker sends, with a 200 status, when it refuses a request.
type rejection struct {
	Status *bool  `json:"status"`
	Code   any    `json:"code"`
	Msg    string `json:"msg"`
}

// missing describes an absent required field, naming the upstream rejection when there is one.
func (r rejection) missing(field string) error {
	if r.Status != nil && !*r.Status {
		return fmt.Errorf("upstream rejected request (code %v): %s", r.Code, r.Msg)
	}
	return fmt.Errorf("missing %s field", field)
}

type companyListResponse struct {
	rejection
	Company []companyResponse `json:"Company"`
}

type recommendResponse struct {
	rejection
	Recommend []companyResponse `json:"Recommend"`
}

// trackingInfoResponse represents the trackingInfo payload.
// Fields the upstream always leaves null (orderNumber, adUrl, productInfo, zipCode) are not decoded.
type trackingInfoResponse struct {
	rejection
	Level           *float64                 `json:"level"`
	Complete        bool                     `json:"complete"`
	CompleteYN      string                   `json:"completeYN"`
	InvoiceNo       string                   `json:"invoiceNo"`
	SenderName      string                   `json:"senderName"`
	Recipient       string                   `json:"recipient"`
	ReceiverName    string                   `json:"receiverName"`
	ReceiverAddr    string                   `json:"receiverAddr"`
	Estimate        string                   `json:"estimate"`
	ItemName        string                   `json:"itemName"`
	ItemImage       string                   `json:"itemImage"`
	TrackingDetails []trackingDetailResponse `json:"trackingDetails"`
}

// trackingDetailResponse is one event. Numbers are float64 so values written as 3.0 decode too.
type trackingDetailResponse struct {
	// Time is milliseconds since the Unix epoch.
	Time    float64  `json:"time"`
	Kind    string   `json:"kind"`
	Where   string   `json:"where"`
	Telno   string   `json:"telno"`
	Telno2  string   `json:"telno2"`
	Level   *float64 `json:"level"`
	ManName string   `json:"manName"`
	ManPic  string   `json:"manPic"`
}

// ListCouriers returns the couriers SweetTracker can track, in upstream order.
func (a *SweetTrackerAdapter) ListCouriers(ctx context.Context) ([]domain.Courier, error) {
	var resp companyListResponse
	err := a.get(ctx, companyListEndpoint, nil, &resp, func() error {
		if resp.Company == nil {
			return resp.missing("Company")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return mapCouriers(resp.Company), nil
}

// RecommendCourier returns the couriers SweetTracker suggests for a tracking number.
func (a *SweetTrackerAdapter) RecommendCourier(ctx context.Context, trackingNumber string) ([]domain.Courier, error) {
	params := url.Values{}
	params.Set(invoiceParam, trackingNumber)

	var resp recommendResponse
	err := a.get(ctx, recommendEndpoint, params, &resp, func() error {
		if resp.Recommend == nil {
			return resp.missing("Recommend")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return mapCouriers(resp.Recommend), nil
}

// GetTracking retrieves and normalizes the tracking details of a shipment.
func (a *SweetTrackerAdapter) GetTracking(ctx context.Context, courierID, trackingNumber string) (*domain.TrackingResult, error) {
	params := url.Values{}
	params.Set(courierParam, courierID)
	params.Set(invoiceParam, trackingNumber)

	var resp trackingInfoResponse
	err := a.get(ctx, trackingInfoEndpoint, params, &resp, func() error {
		if resp.TrackingDetails == nil {
			return resp.missing("trackingDetails")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return mapResponseToDomain(resp), nil
}

// HealthCheck verifies that the API is reachable and the key is accepted.
func (a *SweetTrackerAdapter) HealthCheck(ctx context.Context) error {
	if _, err := a.ListCouriers(ctx); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	return nil
}

// get issues a GET to endpoint, decodes the JSON body into out and runs check on it.
// Failures are returned as *domain.TransportError or *domain.DecodeError.
func (a *SweetTrackerAdapter) get(ctx context.Context, endpoint string, params url.Values, out any, check func() error) (err error) {
	start := time.Now()
	defer func() {
		metrics.UpstreamRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
		metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, outcome(err)).Inc()
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+endpoint, nil)
	if err != nil {
		return &domain.TransportError{Endpoint: endpoint, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	if len(params) > 0 {
		req.URL.RawQuery = params.Encode()
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return &domain.TransportError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &domain.TransportError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return &domain.TransportError{Endpoint: endpoint, Err: fmt.Errorf("failed to read body: %w", err)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &domain.DecodeError{Endpoint: endpoint, Err: err}
	}

	if err := check(); err != nil {
		return &domain.DecodeError{Endpoint: endpoint, Err: err}
	}

	return nil
}

func outcome(err error) string {
	var decodeErr *domain.DecodeError
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.As(err, &decodeErr):
		return metrics.OutcomeDecodeError
	default:
		return metrics.OutcomeTransportError
	}
}
