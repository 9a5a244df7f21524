package prayer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowbook/beauty-booking-backend/internal/pkg/clock"
)

func TestHTTPResolverTimings(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/timingsByCity/07-09-2026", r.URL.Path)
		assert.Equal(t, "Riyadh", r.URL.Query().Get("city"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"code": 200,
			"data": {
				"timings": {
					"Fajr": "04:45",
					"Sunrise": "06:05",
					"Dhuhr": "12:10",
					"Asr": "15:35",
					"Maghrib": "18:20",
					"Isha": "19:50"
				}
			}
		}`))
	}))
	defer server.Close()

	resolver := NewHTTPResolver(server.URL, 2*time.Second)
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	windows, err := resolver.Timings(context.Background(), "Riyadh", date)
	require.NoError(t, err)

	// Sunrise is not a prayer and must not produce a window.
	require.Len(t, windows, 5)
	assert.Equal(t, "Fajr", windows[0].Name)
	assert.Equal(t, clock.MustParse("04:45"), windows[0].Start)
	assert.Equal(t, clock.MustParse("05:15"), windows[0].End)
	assert.Equal(t, "Isha", windows[4].Name)
}

func TestHTTPResolverSkipsMalformedEntries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"code":200,"data":{"timings":{"Fajr":"not-a-time","Dhuhr":"12:10"}}}`))
	}))
	defer server.Close()

	resolver := NewHTTPResolver(server.URL, 2*time.Second)

	windows, err := resolver.Timings(context.Background(), "Riyadh", time.Now())
	require.NoError(t, err)

	require.Len(t, windows, 1)
	assert.Equal(t, "Dhuhr", windows[0].Name)
}

func TestHTTPResolverServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	resolver := NewHTTPResolver(server.URL, 2*time.Second)

	_, err := resolver.Timings(context.Background(), "Riyadh", time.Now())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestHTTPResolverRequiresCity(t *testing.T) {
	resolver := NewHTTPResolver("http://example.invalid", time.Second)

	_, err := resolver.Timings(context.Background(), "", time.Now())
	assert.ErrorIs(t, err, ErrNoLocation)
}
