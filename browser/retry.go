package browser

import (
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/matchqueue/e2e/logging"
)

// RetryOptions tunes Retry. Zero fields fall back to the suite defaults of
// 3 attempts, 1s between attempts and 30s per attempt.
type RetryOptions struct {
	MaxAttempts int
	Delay       time.Duration
	Timeout     time.Duration
}

func (o RetryOptions) withDefaults() RetryOptions {
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = 3
	}
	if o.Delay <= 0 {
		o.Delay = time.Second
	}
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	return o
}

// Retry runs op until it succeeds or MaxAttempts is exhausted, pausing Delay
// between attempts and bounding each attempt by Timeout. On success the value
// of the winning attempt is returned; on exhaustion the error of the last
// attempt surfaces unchanged. A success on the final attempt is still a
// success.
func Retry[T any](op func() (T, error), opts RetryOptions) (T, error) {
	opts = opts.withDefaults()

	attempt := 0
	policy := backoff.WithMaxRetries(backoff.NewConstantBackOff(opts.Delay), uint64(opts.MaxAttempts-1))
	return backoff.RetryWithData(func() (T, error) {
		attempt++
		value, err := runWithTimeout(op, opts.Timeout)
		if err != nil {
			logging.Warn("attempt failed", "attempt", attempt, "max", opts.MaxAttempts, "error", err.Error())
		}
		return value, err
	}, policy)
}

// runWithTimeout races op against deadline. Playwright calls have no context
// plumbing, so a timed-out attempt is abandoned rather than cancelled; its
// eventual result is discarded.
func runWithTimeout[T any](op func() (T, error), timeout time.Duration) (T, error) {
	type outcome struct {
		value T
		err   error
	}
	done := make(chan outcome, 1)
	go func() {
		value, err := op()
		done <- outcome{value: value, err: err}
	}()

	select {
	case out := <-done:
		return out.value, out.err
	case <-time.After(timeout):
		var zero T
		return zero, fmt.Errorf("attempt timed out after %s", timeout)
	}
}
