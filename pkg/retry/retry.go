package retry

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Config holds the parameters for the exponential back-off strategy.
type Config struct {
	MaxAttempts int
	BaseDelay   time.Duration
}

// Do executes fn until it succeeds, the attempts are exhausted, or the
// context is cancelled. The delay doubles after every failed attempt.
func (c Config) Do(ctx context.Context, operation string, fn func(ctx context.Context) error) error {
	var lastErr error
	delay := c.BaseDelay

	for attempt := 1; attempt <= c.MaxAttempts; attempt++ {
		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}

		if attempt == c.MaxAttempts {
			break
		}

		slog.Warn("Operation failed, retrying",
			"operation", operation,
			"attempt", attempt,
			"max_attempts", c.MaxAttempts,
			"delay", delay.String(),
			"error", lastErr,
		)

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return fmt.Errorf("%s aborted after %d attempts: %w", operation, attempt, ctx.Err())
		}
		delay *= 2
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operation, c.MaxAttempts, lastErr)
}
