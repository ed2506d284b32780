package devproxy

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// seen records what the upstream received.
type seen struct {
	method string
	host   string
	uri    string
	auth   string
	body   string
}

// newUpstream starts a fake API that reports every request it receives.
func newUpstream(t *testing.T) (*httptest.Server, <-chan seen) {
	t.Helper()
	got := make(chan seen, 16)
	up := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		got <- seen{
			method: r.Method,
			host:   r.Host,
			uri:    r.URL.RequestURI(),
			auth:   r.Header.Get("Authorization"),
			body:   string(b),
		}
		// The real API answers cross-origin callers itself.
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"sweets":[]}`))
	}))
	t.Cleanup(up.Close)
	return up, got
}

func received(t *testing.T, ch <-chan seen) seen {
	t.Helper()
	select {
	case s := <-ch:
		return s
	case <-time.After(2 * time.Second):
		t.Fatal("upstream received nothing")
		return seen{}
	}
}

func newProxy(t *testing.T, target string) (*httptest.Server, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.InfoLevel)
	s, err := New(Config{Addr: ":0", Target: target, Logger: zap.New(core)})
	require.NoError(t, err)
	srv := httptest.NewServer(s.Handler())
	t.Cleanup(srv.Close)
	return srv, logs
}

func TestNew_RejectsRelativeTarget(t *testing.T) {
	for _, target := range []string{"", "example.com", "/api"} {
		_, err := New(Config{Target: target})
		assert.Error(t, err, target)
	}
}

func TestProxy_ForwardsAPIRequests(t *testing.T) {
	up, upstream := newUpstream(t)
	proxy, logs := newProxy(t, up.URL)

	req, err := http.NewRequest(http.MethodGet, proxy.URL+"/api/sweets/search?name=fudge", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer abc")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"sweets":[]}`, string(body))

	got := received(t, upstream)
	upURL, err := url.Parse(up.URL)
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, got.method)
	assert.Equal(t, upURL.Host, got.host, "host header rewritten to the target")
	assert.Equal(t, "/api/sweets/search?name=fudge", got.uri)
	assert.Equal(t, "Bearer abc", got.auth)

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "/api/sweets/search", entries[0].ContextMap()["path"])
}

func TestProxy_ForwardsBody(t *testing.T) {
	up, upstream := newUpstream(t)
	proxy, _ := newProxy(t, up.URL)

	resp, err := http.Post(proxy.URL+"/api/sweets/s1/purchase", "application/json",
		strings.NewReader(`{"quantity":1}`))
	require.NoError(t, err)
	resp.Body.Close()

	got := received(t, upstream)
	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, "/api/sweets/s1/purchase", got.uri)
	assert.JSONEq(t, `{"quantity":1}`, got.body)
}

func TestProxy_UpstreamDown(t *testing.T) {
	up := httptest.NewServer(http.NotFoundHandler())
	target := up.URL
	up.Close()
	proxy, logs := newProxy(t, target)

	resp, err := http.Get(proxy.URL + "/api/sweets")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Upstream API unavailable", body.Message)
	assert.Equal(t, 1, logs.FilterMessage("proxy upstream").Len())
}

func TestProxy_CORSPreflight(t *testing.T) {
	up, upstream := newUpstream(t)
	proxy, _ := newProxy(t, up.URL)

	req, err := http.NewRequest(http.MethodOptions, proxy.URL+"/api/sweets", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "DELETE")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Empty(t, upstream, "preflight is answered locally")
}

func TestProxy_SingleCORSOrigin(t *testing.T) {
	up, upstream := newUpstream(t)
	proxy, _ := newProxy(t, up.URL)

	req, err := http.NewRequest(http.MethodGet, proxy.URL+"/api/sweets", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:5173")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	received(t, upstream)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"*"}, resp.Header.Values("Access-Control-Allow-Origin"))
	assert.Empty(t, resp.Header.Values("Access-Control-Allow-Credentials"))
}

func TestStripCORS(t *testing.T) {
	h := http.Header{}
	h.Set("Access-Control-Allow-Origin", "https://example.com")
	h.Set("Access-Control-Expose-Headers", "X-Total")
	h.Set("Content-Type", "application/json")

	stripCORS(h)

	assert.Equal(t, http.Header{"Content-Type": {"application/json"}}, h)
}

func TestHealthz(t *testing.T) {
	proxy, _ := newProxy(t, "http://example.invalid")

	resp, err := http.Get(proxy.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "http://example.invalid", body["target"])
}

func TestMetrics_CountRequests(t *testing.T) {
	up, _ := newUpstream(t)
	proxy, _ := newProxy(t, up.URL)

	resp, err := http.Get(proxy.URL + "/api/sweets")
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = http.Get(proxy.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	out := string(b)
	assert.Contains(t, out, `sweetshop_proxy_requests_total{method="GET",route="/api/*path",status="200"} 1`)
	assert.Contains(t, out, "sweetshop_proxy_request_duration_seconds")
}

func TestUnknownRoute(t *testing.T) {
	proxy, _ := newProxy(t, "http://example.invalid")

	resp, err := http.Get(proxy.URL + "/sweets")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
