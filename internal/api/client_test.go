package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/sweetshop/internal/sweets"
)

type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   string
}

// fakeServer records requests and answers with a fixed status and body.
type fakeServer struct {
	mu       sync.Mutex
	requests []recordedRequest
	status   int
	body     string
}

func newFakeServer(t *testing.T, status int, body string) (*fakeServer, *Client) {
	t.Helper()
	fs := &fakeServer{status: status, body: body}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		fs.mu.Lock()
		fs.requests = append(fs.requests, recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Header: r.Header.Clone(),
			Body:   string(data),
		})
		fs.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(fs.status)
		_, _ = io.WriteString(w, fs.body)
	}))
	t.Cleanup(srv.Close)
	return fs, NewClient(srv.URL+"/", WithToken("tok"))
}

func (fs *fakeServer) last(t *testing.T) recordedRequest {
	t.Helper()
	fs.mu.Lock()
	defer fs.mu.Unlock()
	require.NotEmpty(t, fs.requests)
	return fs.requests[len(fs.requests)-1]
}

func TestClient_List(t *testing.T) {
	fs, c := newFakeServer(t, http.StatusOK,
		`{"sweets":[{"_id":"1","name":"Fudge","category":"Chocolate","price":1.5,"quantity":4}]}`)

	items, err := c.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "1", items[0].ID)
	assert.Equal(t, "$1.50", items[0].PriceLabel())

	req := fs.last(t)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/api/sweets", req.Path)
	assert.Equal(t, "Bearer tok", req.Header.Get("Authorization"))
	assert.Equal(t, "application/json", req.Header.Get("Accept"))
	assert.NotEmpty(t, req.Header.Get("X-Request-ID"))
}

func TestClient_SearchSendsOnlySetCriteria(t *testing.T) {
	fs, c := newFakeServer(t, http.StatusOK, `{"sweets":[]}`)

	items, err := c.Search(context.Background(), sweets.Criteria{Category: "Gummies", MinPrice: "1"})
	require.NoError(t, err)
	assert.Empty(t, items)

	req := fs.last(t)
	assert.Equal(t, "/api/sweets/search", req.Path)
	assert.Equal(t, "category=Gummies&minPrice=1", req.Query)
}

func TestClient_PurchaseAndRestockBodies(t *testing.T) {
	fs, c := newFakeServer(t, http.StatusOK, `{"message":"ok"}`)

	require.NoError(t, c.Purchase(context.Background(), "abc", 1))
	req := fs.last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/api/sweets/abc/purchase", req.Path)
	assert.JSONEq(t, `{"quantity":1}`, req.Body)
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))

	require.NoError(t, c.Restock(context.Background(), "abc", 25))
	req = fs.last(t)
	assert.Equal(t, "/api/sweets/abc/restock", req.Path)
	assert.JSONEq(t, `{"quantity":25}`, req.Body)
}

func TestClient_CreateUpdateDelete(t *testing.T) {
	fs, c := newFakeServer(t, http.StatusCreated, `{}`)
	in := sweets.Input{Name: "Fudge", Category: "Chocolate", Price: decimal.RequireFromString("2.25"), Quantity: 10}

	require.NoError(t, c.Create(context.Background(), in))
	req := fs.last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/api/sweets", req.Path)
	assert.JSONEq(t, `{"name":"Fudge","category":"Chocolate","price":2.25,"quantity":10}`, req.Body)

	require.NoError(t, c.Update(context.Background(), "x1", in))
	req = fs.last(t)
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, "/api/sweets/x1", req.Path)

	require.NoError(t, c.Delete(context.Background(), "x1"))
	req = fs.last(t)
	assert.Equal(t, http.MethodDelete, req.Method)
	assert.Equal(t, "/api/sweets/x1", req.Path)
	assert.Empty(t, req.Body)
}

func TestClient_ErrorCarriesServerMessage(t *testing.T) {
	_, c := newFakeServer(t, http.StatusBadRequest, `{"message":"Insufficient stock"}`)

	err := c.Purchase(context.Background(), "abc", 1)
	require.Error(t, err)

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Insufficient stock", ServerMessage(err))
	assert.True(t, IsStatus(err, http.StatusBadRequest))
}

func TestClient_ErrorWithoutJSONBody(t *testing.T) {
	_, c := newFakeServer(t, http.StatusInternalServerError, `boom`)

	_, err := c.List(context.Background())
	require.Error(t, err)
	assert.Empty(t, ServerMessage(err))
	assert.Equal(t, "API returned status 500", err.Error())
}

func TestClient_NoTokenNoAuthorizationHeader(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		_ = json.NewEncoder(w).Encode(map[string]any{"sweets": []any{}})
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got.Get("Authorization"))
}

func TestClient_TransportError(t *testing.T) {
	c := NewClient("http://127.0.0.1:1")
	_, err := c.List(context.Background())
	require.Error(t, err)
	assert.Empty(t, ServerMessage(err))
}

func TestNewClient_DefaultBaseURL(t *testing.T) {
	assert.Equal(t, DefaultBaseURL, NewClient("").BaseURL())
	assert.Equal(t, "http://x", NewClient("http://x/").BaseURL())
}
