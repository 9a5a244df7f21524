package prayer

import (
	"context"
	"errors"
	"time"

	"github.com/glowbook/beauty-booking-backend/internal/pkg/clock"
)

var (
	ErrNoLocation  = errors.New("no location configured for prayer timings")
	ErrUnavailable = errors.New("prayer timings service unavailable")
)

// Window is a single religious-observance interval that must be blocked
// for providers who enable dynamic breaks.
type Window struct {
	Name  string // e.g. "Dhuhr"
	Start clock.TimeOfDay
	End   clock.TimeOfDay
}

// Resolver produces the prayer windows for a city on a given date.
// Implementations are expected to be slow (remote API); callers treat
// failures as degraded data, not fatal errors.
type Resolver interface {
	Timings(ctx context.Context, city string, date time.Time) ([]Window, error)
}

// Disabled is a Resolver for deployments without a timings API configured.
// It always reports the service as unavailable, so availability degrades to
// fixed breaks only.
type Disabled struct{}

func (Disabled) Timings(context.Context, string, time.Time) ([]Window, error) {
	return nil, ErrUnavailable
}
