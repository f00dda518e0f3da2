// Package clock supplies the current time of day to the scheduler and
// journal, and brokers manual resync requests to an external time service.
package clock

import (
	"fmt"
	"net/http"
	"time"

	"github.com/shifty-eyed/esp-ac-control/internal/models"
)

// Source yields the current wall time, or reports it unavailable. Resync
// is fire-and-forget: it only asks an external service to refresh the
// clock, it never blocks on the answer.
type Source interface {
	Now() (models.WallTime, bool)
	RequestResync() error
}

const resyncTimeout = 5 * time.Second

// SystemClock reads the host clock in a fixed timezone. On a host with an
// RTC the time is always known, so Now is always available; the
// unavailable case exists for platforms that boot without a clock.
type SystemClock struct {
	loc       *time.Location
	resyncURL string
	client    *http.Client
}

// NewSystemClock resolves the IANA timezone name (empty means local time).
// resyncURL may be empty, in which case RequestResync reports the time
// service unavailable.
func NewSystemClock(timezone, resyncURL string) (*SystemClock, error) {
	loc := time.Local
	if timezone != "" {
		l, err := time.LoadLocation(timezone)
		if err != nil {
			return nil, fmt.Errorf("load timezone %q: %w", timezone, err)
		}
		loc = l
	}
	return &SystemClock{
		loc:       loc,
		resyncURL: resyncURL,
		client:    &http.Client{Timeout: resyncTimeout},
	}, nil
}

// Now returns the current time of day in the configured timezone.
func (c *SystemClock) Now() (models.WallTime, bool) {
	t := time.Now().In(c.loc)
	return models.WallTime{Hour: t.Hour(), Minute: t.Minute()}, true
}

// RequestResync pings the configured time service without waiting for the
// response. It fails only when no service is configured.
func (c *SystemClock) RequestResync() error {
	if c.resyncURL == "" {
		return models.ErrServiceUnavailable
	}
	go func() {
		resp, err := c.client.Get(c.resyncURL)
		if err != nil {
			return
		}
		_ = resp.Body.Close()
	}()
	return nil
}
