package game

import (
	"context"
	"time"
)

// Scheduler suspends the loop between two ticks
type Scheduler interface {
	Wait(ctx context.Context, d time.Duration) error
}

// TimerScheduler waits on a real timer
type TimerScheduler struct{}

// Wait blocks for d, or until ctx is done
func (TimerScheduler) Wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
