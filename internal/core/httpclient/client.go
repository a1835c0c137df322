package httpclient

import (
	"net/http"
	"net/url"
	"time"

	"sweettracker-gateway/internal/core/logger"
	"sweettracker-gateway/internal/core/proxy"

	"go.uber.org/zap"
)

const redactedValue = "REDACTED"

// Options configures the client returned by NewClient.
type Options struct {
	// Timeout bounds the whole exchange, body included. Zero means no timeout.
	Timeout time.Duration
	// Proxy routes outbound requests through an HTTP proxy when enabled.
	Proxy proxy.Settings
	// RedactQuery lists query parameters whose values are hidden in logs.
	RedactQuery []string
}

// RequestHook mutates an outgoing request before it is sent.
// Hooks receive a clone, so they may modify it freely.
type RequestHook func(req *http.Request)

// QueryParam returns a hook that sets key=value on the request query string,
// replacing any value already present. Redirect hops see the parameter once.
func QueryParam(key, value string) RequestHook {
	return func(req *http.Request) {
		q := req.URL.Query()
		q.Set(key, value)
		req.URL.RawQuery = q.Encode()
	}
}

// HookRoundTripper runs request hooks before delegating to the proxied RoundTripper.
type HookRoundTripper struct {
	// Proxied is the underlying RoundTripper to execute the request.
	Proxied http.RoundTripper
	// Hooks run in order on every request.
	Hooks []RequestHook
}

// RoundTrip applies the hooks to a copy of the request and executes it.
func (h *HookRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	out := req.Clone(req.Context())
	for _, hook := range h.Hooks {
		hook(out)
	}
	return h.Proxied.RoundTrip(out)
}

// LoggingRoundTripper captures request details for debugging.
type LoggingRoundTripper struct {
	// Proxied is the underlying RoundTripper to execute the request.
	Proxied http.RoundTripper
	// RedactQuery lists query parameters whose values are hidden in logs.
	RedactQuery []string
}

// RoundTrip executes the request and logs details.
func (lrt *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	target := redactURL(req.URL, lrt.RedactQuery)

	logger.Get().Debug("HTTP Request Started",
		zap.String("method", req.Method),
		zap.String("url", target),
	)

	resp, err := lrt.Proxied.RoundTrip(req)

	duration := time.Since(start)

	if err != nil {
		logger.Get().Error("HTTP Request Failed",
			zap.String("method", req.Method),
			zap.String("url", target),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Get().Debug("HTTP Request Completed",
		zap.String("method", req.Method),
		zap.String("url", target),
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("duration", duration),
	)

	return resp, nil
}

// NewClient returns an http.Client with logging middleware and optional proxy routing.
// The client never retries on its own.
func NewClient(opts Options) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if u := opts.Proxy.URL(); u != nil {
		transport.Proxy = http.ProxyURL(u)
	}

	return &http.Client{
		Transport: &LoggingRoundTripper{
			Proxied:     transport,
			RedactQuery: opts.RedactQuery,
		},
		Timeout: opts.Timeout,
	}
}

// WithRequestHooks returns a copy of c whose transport runs the given hooks first.
// c itself is left untouched.
func WithRequestHooks(c *http.Client, hooks ...RequestHook) *http.Client {
	if c == nil {
		c = http.DefaultClient
	}

	base := c.Transport
	if base == nil {
		base = http.DefaultTransport
	}

	out := *c
	out.Transport = &HookRoundTripper{
		Proxied: base,
		Hooks:   hooks,
	}
	return &out
}

// WithRedactedQuery returns a copy of c whose logging transport also hides the given
// query parameters. Clients without a LoggingRoundTripper are returned as is.
func WithRedactedQuery(c *http.Client, keys ...string) *http.Client {
	if c == nil {
		return nil
	}

	lrt, ok := c.Transport.(*LoggingRoundTripper)
	if !ok {
		return c
	}

	redacted := *lrt
	redacted.RedactQuery = append(append([]string(nil), lrt.RedactQuery...), keys...)

	out := *c
	out.Transport = &redacted
	return &out
}

// redactURL renders u with the values of the listed query parameters hidden.
func redactURL(u *url.URL, keys []string) string {
	if len(keys) == 0 || u.RawQuery == "" {
		return u.String()
	}

	q := u.Query()
	changed := false
	for _, key := range keys {
		if _, ok := q[key]; ok {
			q.Set(key, redactedValue)
			changed = true
		}
	}
	if !changed {
		return u.String()
	}

	masked := *u
	masked.RawQuery = q.Encode()
	return masked.String()
}
