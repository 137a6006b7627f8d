package walletadapter

import (
	"context"
	"sync"
	"time"
)

// DefaultPollInterval is used when ScopePollingDetectionStrategy gets a non-positive interval
const DefaultPollInterval = time.Second

// ScopePollingDetectionStrategy runs detect once immediately and then every
// interval until it returns true, ctx is done, or the returned stop function
// is called. Detection is one-shot: polling ends at the first positive check.
func ScopePollingDetectionStrategy(ctx context.Context, interval time.Duration, detect func() bool) (stop func()) {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	ctx, cancel := context.WithCancel(ctx)
	if detect() {
		cancel()
		return func() {}
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if detect() {
					return
				}
			}
		}
	}()

	return func() {
		cancel()
		wg.Wait()
	}
}
