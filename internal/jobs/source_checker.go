package jobs

import (
	"context"
	"log"
	"time"

	"srfibrowse/internal/metrics"
	"srfibrowse/internal/source"
)

// SourceChecker periodically checks that the data sources are reachable.
// It never reads or keeps the datasets.
type SourceChecker struct {
	sources  []source.Source
	interval time.Duration
	timeout  time.Duration
}

// NewSourceChecker creates a new source checker.
func NewSourceChecker(sources []source.Source, interval time.Duration) *SourceChecker {
	return &SourceChecker{
		sources:  sources,
		interval: interval,
		timeout:  10 * time.Second,
	}
}

// Start begins the background check loop.
func (s *SourceChecker) Start(ctx context.Context) {
	log.Printf("Source checker started (interval: %v)", s.interval)

	// Run immediately on start
	s.CheckAll(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Source checker stopped")
			return
		case <-ticker.C:
			s.CheckAll(ctx)
		}
	}
}

// CheckAll pings every source and returns how many are reachable.
func (s *SourceChecker) CheckAll(ctx context.Context) int {
	up := 0
	for _, src := range s.sources {
		select {
		case <-ctx.Done():
			return up
		default:
		}

		checkCtx, cancel := context.WithTimeout(ctx, s.timeout)
		err := src.Ping(checkCtx)
		cancel()

		metrics.SetSourceUp(src.Name(), err == nil)
		if err != nil {
			log.Printf("Source checker: %s unreachable: %v", src.Name(), err)
			continue
		}
		up++
	}
	return up
}
