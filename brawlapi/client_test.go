package brawlapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *[]time.Duration) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	var delays []time.Duration
	c := New("test-token", 5*time.Second)
	c.baseURL = srv.URL
	c.sleep = func(d time.Duration) { delays = append(delays, d) }
	return c, &delays
}

func TestGetRetriesThenSucceeds(t *testing.T) {
	var calls int
	c, delays := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		switch calls {
		case 1:
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
		case 2:
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.Write([]byte(`{"tag":"#2ABC9","name":"Spike"}`))
		}
	})

	p, err := c.Player("#2ABC9")
	require.NoError(t, err)
	assert.Equal(t, "Spike", p.Name)
	assert.Equal(t, 3, calls)

	// One delay per retried response, Retry-After honored on the first.
	require.Len(t, *delays, 2)
	assert.Equal(t, time.Second, (*delays)[0])
}

func TestGetExhaustsRetries(t *testing.T) {
	var calls int
	c, delays := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := c.Player("#2ABC9")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.Status)
	assert.Equal(t, maxAttempts, calls)
	assert.Len(t, *delays, maxAttempts)
}

func TestGetDoesNotRetryClientErrors(t *testing.T) {
	var calls int
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"reason":"notFound"}`))
	})

	_, err := c.Player("#NOPE")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, 1, calls)
}

func TestGetServesFromCache(t *testing.T) {
	var calls int
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"tag":"#C1","name":"Cached Club"}`))
	})

	first, err := c.Club("#C1")
	require.NoError(t, err)
	second, err := c.Club("#C1")
	require.NoError(t, err)

	assert.Equal(t, 1, calls, "second lookup should hit the TTL cache")
	assert.Equal(t, first.Name, second.Name)
}

func TestSweepCacheDropsExpired(t *testing.T) {
	c := New("t", time.Second)
	c.cacheSet("a", []byte("x"), -time.Second)
	c.cacheSet("b", []byte("y"), time.Minute)
	assert.Equal(t, 1, c.SweepCache())
	assert.Nil(t, c.cacheGet("a"))
	assert.NotNil(t, c.cacheGet("b"))
}
