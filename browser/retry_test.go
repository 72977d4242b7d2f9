package browser

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetrySucceedsAfterFailures(t *testing.T) {
	for failures := 0; failures < 3; failures++ {
		calls := 0
		value, err := Retry(func() (string, error) {
			calls++
			if calls <= failures {
				return "", errors.New("transient")
			}
			return "ok", nil
		}, RetryOptions{MaxAttempts: 3, Delay: time.Millisecond})

		require.NoError(t, err, "with %d leading failures", failures)
		assert.Equal(t, "ok", value)
		assert.Equal(t, failures+1, calls, "must stop on first success")
	}
}

func TestRetryExhaustsAndReturnsLastError(t *testing.T) {
	calls := 0
	_, err := Retry(func() (int, error) {
		calls++
		return 0, fmt.Errorf("boom %d", calls)
	}, RetryOptions{MaxAttempts: 3, Delay: time.Millisecond})

	require.Error(t, err)
	assert.Equal(t, 3, calls)
	assert.EqualError(t, err, "boom 3", "last attempt's error must surface")
}

func TestRetryPerAttemptTimeout(t *testing.T) {
	calls := 0
	started := time.Now()
	_, err := Retry(func() (int, error) {
		calls++
		time.Sleep(200 * time.Millisecond)
		return 42, nil
	}, RetryOptions{MaxAttempts: 2, Delay: time.Millisecond, Timeout: 20 * time.Millisecond})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "timed out")
	assert.Equal(t, 2, calls)
	assert.Less(t, time.Since(started), 200*time.Millisecond, "attempts must be abandoned at the timeout")
}

func TestRetryDefaults(t *testing.T) {
	opts := RetryOptions{}.withDefaults()
	assert.Equal(t, 3, opts.MaxAttempts)
	assert.Equal(t, time.Second, opts.Delay)
	assert.Equal(t, 30*time.Second, opts.Timeout)
}
