// Package poll re-samples a changing value until it is ready or a deadline
// passes.
package poll

import (
	"context"
	"time"
)

// DefaultInterval replaces a non-positive interval.
const DefaultInterval = 40 * time.Millisecond

// Options bound a poll loop.
type Options struct {
	// MaxWait is the total time budget. Zero or negative samples exactly once.
	MaxWait  time.Duration
	Interval time.Duration
	Clock    Clock
}

// Result is the last sample and how long it took to get it.
type Result[T any] struct {
	Value    T
	Ready    bool
	Attempts int
	Waited   time.Duration
}

// Until calls sample immediately, then after every interval until it reports
// ready or MaxWait elapses. The last wait is shortened so the loop never runs
// past the deadline. When ctx is cancelled the last sample is returned as is.
func Until[T any](ctx context.Context, opts Options, sample func(attempt int) (T, bool)) Result[T] {
	clock := opts.Clock
	if clock == nil {
		clock = WallClock{}
	}
	interval := opts.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	maxWait := opts.MaxWait
	if maxWait < 0 {
		maxWait = 0
	}

	start := clock.Now()
	deadline := start.Add(maxWait)

	result := Result[T]{Attempts: 1}
	result.Value, result.Ready = sample(result.Attempts)

	for !result.Ready {
		now := clock.Now()
		if !now.Before(deadline) {
			break
		}
		wait := interval
		if remaining := deadline.Sub(now); remaining < wait {
			wait = remaining
		}
		if err := clock.Sleep(ctx, wait); err != nil {
			break
		}
		result.Attempts++
		result.Value, result.Ready = sample(result.Attempts)
	}

	result.Waited = clock.Now().Sub(start)
	return result
}
