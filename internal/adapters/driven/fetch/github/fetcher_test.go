package github

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-bridge/internal/core/domain"
	"github.com/custodia-labs/sercha-bridge/internal/logger"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Fetcher) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	f, err := NewWithHTTPClient(server.Client(), server.URL, "sercha-bridge-test")
	require.NoError(t, err)
	return server, f
}

func TestFetcher_AbsoluteURL(t *testing.T) {
	server, f := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/repositories", r.URL.Path)
		assert.Equal(t, "foo", r.URL.Query().Get("q"))
		_, _ = w.Write([]byte(`{"items":[{"name":"foo-repo"}]}`))
	})

	body, err := f.Fetch(context.Background(), server.URL+"/search/repositories?q=foo")

	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[{"name":"foo-repo"}]}`, string(body))
}

func TestFetcher_RelativeURLResolvesAgainstBase(t *testing.T) {
	_, f := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/repositories", r.URL.Path)
		_, _ = w.Write([]byte(`{}`))
	})

	body, err := f.Fetch(context.Background(), "search/repositories?q=foo")

	require.NoError(t, err)
	assert.Equal(t, "{}", string(body))
}

func TestFetcher_Headers(t *testing.T) {
	_, f := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "sercha-bridge-test", r.UserAgent())
		assert.Contains(t, r.Header.Get("Accept"), "application/vnd.github")
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := f.Fetch(context.Background(), "search/repositories")

	require.NoError(t, err)
}

func TestFetcher_ServerErrorIsAPIError(t *testing.T) {
	server, f := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	body, err := f.Fetch(context.Background(), server.URL+"/search/repositories?q=foo")

	assert.Nil(t, body)
	require.ErrorIs(t, err, domain.ErrFetchFailed)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
}

func TestFetcher_NotFound(t *testing.T) {
	_, f := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Not Found"}`))
	})

	_, err := f.Fetch(context.Background(), "repos/nobody/nothing")

	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.False(t, IsRateLimited(err))
}

func TestNew_BaseURL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		want    string
	}{
		{name: "default", baseURL: "", want: "https://api.github.com/"},
		{name: "adds trailing slash", baseURL: "https://ghe.example.com/api/v3", want: "https://ghe.example.com/api/v3/"},
		{name: "keeps trailing slash", baseURL: "https://ghe.example.com/api/v3/", want: "https://ghe.example.com/api/v3/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := New(tt.baseURL, "")

			require.NoError(t, err)
			assert.Equal(t, tt.want, f.BaseURL())
		})
	}
}

func TestNew_InvalidBaseURL(t *testing.T) {
	_, err := New("://bad", "")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFetcher_RateLimitedRequestsStillReachServer(t *testing.T) {
	var hits atomic.Int32
	reset := strconv.FormatInt(time.Now().Add(time.Hour).Unix(), 10)
	_, f := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-RateLimit-Limit", "10")
		w.Header().Set("X-RateLimit-Remaining", "0")
		w.Header().Set("X-RateLimit-Reset", reset)
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"API rate limit exceeded"}`))
	})

	_, err1 := f.Fetch(context.Background(), "search/repositories?q=foo")
	_, err2 := f.Fetch(context.Background(), "search/repositories?q=foo")

	assert.ErrorIs(t, err1, domain.ErrFetchFailed)
	assert.True(t, IsRateLimited(err1))
	assert.ErrorIs(t, err2, domain.ErrFetchFailed)
	assert.Equal(t, int32(2), hits.Load())
}

func TestFetcher_LogsFailureKind(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.SetVerbose(true)
	t.Cleanup(func() {
		logger.SetVerbose(false)
		logger.SetOutput(os.Stderr)
	})
	_, f := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Not Found"}`))
	})

	_, err := f.Fetch(context.Background(), "repos/nobody/nothing")

	require.Error(t, err)
	assert.Contains(t, buf.String(), "github fetch failed")
	assert.Contains(t, buf.String(), "not_found=true")
	assert.Contains(t, buf.String(), "rate_limited=false")
}
