package metrics

import (
	"context"
	"time"

	"github.com/davidbz/purposebot/internal/observability"
)

// DefaultUptimeInterval is how often the uptime gauge is refreshed.
const DefaultUptimeInterval = 60 * time.Second

// Uptime periodically writes minutes since process start into the registry.
type Uptime struct {
	registry *Registry
	start    time.Time
	interval time.Duration
	now      func() time.Time
}

// NewUptime creates the uptime updater. A non-positive interval selects
// DefaultUptimeInterval.
func NewUptime(registry *Registry, start time.Time, interval time.Duration) *Uptime {
	if interval <= 0 {
		interval = DefaultUptimeInterval
	}

	return &Uptime{
		registry: registry,
		start:    start,
		interval: interval,
		now:      time.Now,
	}
}

// WithClock replaces the time source.
func (u *Uptime) WithClock(now func() time.Time) *Uptime {
	u.now = now
	return u
}

// Minutes returns the elapsed time since start in minutes.
func (u *Uptime) Minutes() float64 {
	return u.now().Sub(u.start).Minutes()
}

// Update recomputes the uptime and writes it to the gauge.
func (u *Uptime) Update() {
	u.registry.SetUptime(u.Minutes())
}

// Run updates the gauge immediately and then once per interval. It returns
// only when ctx is cancelled at process shutdown.
func (u *Uptime) Run(ctx context.Context) {
	logger := observability.FromContext(ctx)
	logger.Info("uptime updater started", observability.Duration("interval", u.interval))

	u.Update()

	ticker := time.NewTicker(u.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("uptime updater stopped")
			return
		case <-ticker.C:
			u.Update()
		}
	}
}
