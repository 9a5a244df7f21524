package prayer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/glowbook/beauty-booking-backend/internal/pkg/clock"
)

// prayerNames lists the daily prayers we block time for, in day order.
var prayerNames = []string{"Fajr", "Dhuhr", "Asr", "Maghrib", "Isha"}

// DefaultWindowMinutes is how long each prayer window lasts when the API
// only reports a start time.
const DefaultWindowMinutes = 30

// HTTPResolver resolves prayer timings from an Aladhan-compatible API:
// GET {base}/v1/timingsByCity/{DD-MM-YYYY}?city={city}
type HTTPResolver struct {
	baseURL       string
	client        *http.Client
	windowMinutes int
}

func NewHTTPResolver(baseURL string, timeout time.Duration) *HTTPResolver {
	return &HTTPResolver{
		baseURL:       baseURL,
		client:        &http.Client{Timeout: timeout},
		windowMinutes: DefaultWindowMinutes,
	}
}

type timingsResponse struct {
	Code int `json:"code"`
	Data struct {
		Timings map[string]string `json:"timings"`
	} `json:"data"`
}

func (r *HTTPResolver) Timings(ctx context.Context, city string, date time.Time) ([]Window, error) {
	if city == "" {
		return nil, ErrNoLocation
	}

	endpoint := fmt.Sprintf("%s/v1/timingsByCity/%s?city=%s",
		r.baseURL, date.Format("02-01-2006"), url.QueryEscape(city))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build timings request failed: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var body timingsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrUnavailable, err)
	}

	var windows []Window
	for _, name := range prayerNames {
		raw, ok := body.Data.Timings[name]
		if !ok {
			continue
		}
		start, err := clock.Parse(raw)
		if err != nil {
			// Skip entries like "05:01 (EET)" that fail strict parsing
			// after the API changes format; the rest remain usable.
			continue
		}
		windows = append(windows, Window{
			Name:  name,
			Start: start,
			End:   start.AddMinutes(r.windowMinutes),
		})
	}

	return windows, nil
}
