// Package refresh provides the external sources the dashboard store can
// refresh from.
package refresh

import (
	"context"
	"time"

	"smartstock/store"
)

// DefaultDelay mirrors the latency of the dashboard's mock API call.
const DefaultDelay = time.Second

// Simulated stands in for a backend: it waits Delay and returns nothing new,
// so a refresh only stamps lastSync.
type Simulated struct {
	Delay time.Duration
}

// NewSimulated returns a Simulated source. Non-positive delays use DefaultDelay.
func NewSimulated(delay time.Duration) *Simulated {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Simulated{Delay: delay}
}

// Refresh waits for the configured delay or until ctx is done.
func (s *Simulated) Refresh(ctx context.Context, _ store.Snapshot) (store.RefreshResult, error) {
	t := time.NewTimer(s.Delay)
	defer t.Stop()
	select {
	case <-t.C:
		return store.RefreshResult{}, nil
	case <-ctx.Done():
		return store.RefreshResult{}, ctx.Err()
	}
}
