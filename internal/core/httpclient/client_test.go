package httpclient

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"sweettracker-gateway/internal/core/logger"
	"sweettracker-gateway/internal/core/proxy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoggingRoundTripper verifies that requests are logged.
func TestLoggingRoundTripper(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	logger.Init("development", "debug")

	client := NewClient(Options{Timeout: 1 * time.Second})
	resp, err := client.Get(ts.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// TestLoggingRoundTripper_Error verifies that failed requests are logged.
func TestLoggingRoundTripper_Error(t *testing.T) {
	logger.Init("development", "debug")

	client := NewClient(Options{Timeout: 1 * time.Second})
	_, err := client.Get("http://invalid-url-that-does-not-exist.local")
	require.Error(t, err)
}

// TestWithRequestHooks_AppendsQueryParam verifies that hooks reach the server on every request.
func TestWithRequestHooks_AppendsQueryParam(t *testing.T) {
	queries := make(chan string, 2)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		queries <- r.URL.RawQuery
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	client := WithRequestHooks(NewClient(Options{Timeout: time.Second}), QueryParam("t_key", "secret"))

	for _, target := range []string{ts.URL + "/a", ts.URL + "/b?t_invoice=123"} {
		resp, err := client.Get(target)
		require.NoError(t, err)
		resp.Body.Close()
	}

	assert.Equal(t, "t_key=secret", <-queries)
	q, err := url.ParseQuery(<-queries)
	require.NoError(t, err)
	assert.Equal(t, "123", q.Get("t_invoice"))
	assert.Equal(t, "secret", q.Get("t_key"))
}

// TestHookRoundTripper_DoesNotMutateOriginal verifies the caller's request is left as it was.
func TestHookRoundTripper_DoesNotMutateOriginal(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	client := WithRequestHooks(nil, QueryParam("t_key", "secret"))
	req, err := http.NewRequest(http.MethodGet, ts.URL+"/path", nil)
	require.NoError(t, err)

	resp, err := client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Empty(t, req.URL.RawQuery)
}

// TestWithRequestHooks_KeepsClientSettings verifies the copy keeps timeout and leaves the source client alone.
func TestWithRequestHooks_KeepsClientSettings(t *testing.T) {
	base := NewClient(Options{Timeout: 3 * time.Second})
	original := base.Transport

	hooked := WithRequestHooks(base, QueryParam("a", "b"))

	assert.Equal(t, 3*time.Second, hooked.Timeout)
	assert.Same(t, original, base.Transport)
	rt, ok := hooked.Transport.(*HookRoundTripper)
	require.True(t, ok)
	assert.Same(t, original, rt.Proxied)
}

// TestNewClient_Proxy verifies that proxy settings reach the transport.
func TestNewClient_Proxy(t *testing.T) {
	client := NewClient(Options{
		Proxy: proxy.Settings{Enabled: true, Hostname: "proxy.local", Port: 3128},
	})

	lrt, ok := client.Transport.(*LoggingRoundTripper)
	require.True(t, ok)
	transport, ok := lrt.Proxied.(*http.Transport)
	require.True(t, ok)
	require.NotNil(t, transport.Proxy)

	req, err := http.NewRequest(http.MethodGet, "http://example.com", nil)
	require.NoError(t, err)
	proxyURL, err := transport.Proxy(req)
	require.NoError(t, err)
	assert.Equal(t, "proxy.local:3128", proxyURL.Host)
}

func TestRedactURL(t *testing.T) {
	u, err := url.Parse("http://host/api/v1/trackingInfo?t_code=04&t_key=secret")
	require.NoError(t, err)

	masked := redactURL(u, []string{"t_key"})

	assert.NotContains(t, masked, "secret")
	assert.Contains(t, masked, "t_key=REDACTED")
	assert.Contains(t, masked, "t_code=04")
	assert.Contains(t, u.String(), "secret")

	assert.Equal(t, "http://host/x", redactURL(&url.URL{Scheme: "http", Host: "host", Path: "/x"}, []string{"t_key"}))
}

// TestQueryParam_RedirectKeepsSingleValue verifies a redirect that already carries the key does not duplicate it.
func TestQueryParam_RedirectKeepsSingleValue(t *testing.T) {
	queries := make(chan url.Values, 2)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		queries <- r.URL.Query()
		if r.URL.Path == "/old" {
			http.Redirect(w, r, "/new?"+r.URL.RawQuery, http.StatusFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	client := WithRequestHooks(NewClient(Options{Timeout: time.Second}), QueryParam("t_key", "secret"))

	resp, err := client.Get(ts.URL + "/old")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, []string{"secret"}, (<-queries)["t_key"])
	assert.Equal(t, []string{"secret"}, (<-queries)["t_key"])
}

func TestWithRedactedQuery(t *testing.T) {
	base := NewClient(Options{Timeout: 2 * time.Second, RedactQuery: []string{"token"}})

	redacted := WithRedactedQuery(base, "t_key")

	lrt, ok := redacted.Transport.(*LoggingRoundTripper)
	require.True(t, ok)
	assert.Equal(t, []string{"token", "t_key"}, lrt.RedactQuery)
	assert.Equal(t, 2*time.Second, redacted.Timeout)
	assert.Equal(t, []string{"token"}, base.Transport.(*LoggingRoundTripper).RedactQuery)

	plain := &http.Client{}
	assert.Same(t, plain, WithRedactedQuery(plain, "t_key"))
	assert.Nil(t, WithRedactedQuery(nil, "t_key"))
}
