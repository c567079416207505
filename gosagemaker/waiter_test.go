package gosagemaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/apex/log"
	"github.com/ggarcia209/go-sagemaker/goaws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPollUntil(t *testing.T) {
	logger := log.WithField("test", "pollUntil")
	statuses := []string{"InProgress", "InProgress", "Completed"}

	i := 0
	err := pollUntil(context.Background(), testPollConfig, logger, "job", func(ctx context.Context) (string, bool, error) {
		status := statuses[i]
		i++
		return status, status == "Completed", nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, i)
}

func TestPollUntilTimeout(t *testing.T) {
	logger := log.WithField("test", "pollUntilTimeout")
	cfg := &PollConfig{Interval: time.Millisecond, MaxWait: 5 * time.Millisecond}

	err := pollUntil(context.Background(), cfg, logger, "stuck job", func(ctx context.Context) (string, bool, error) {
		return "InProgress", false, nil
	})
	require.Error(t, err)

	var timeout *WaitTimeoutError
	require.ErrorAs(t, err, &timeout)
	assert.True(t, timeout.Retryable())
}

func TestPollUntilContextCancelled(t *testing.T) {
	logger := log.WithField("test", "pollUntilCancel")
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	err := pollUntil(ctx, testPollConfig, logger, "job", func(ctx context.Context) (string, bool, error) {
		calls++
		cancel()
		return "InProgress", false, nil
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestPollUntilNonRetryableError(t *testing.T) {
	logger := log.WithField("test", "pollUntilErr")
	wantErr := goaws.NewClientError(errors.New("no such job"))

	err := pollUntil(context.Background(), testPollConfig, logger, "job", func(ctx context.Context) (string, bool, error) {
		return "", false, wantErr
	})
	require.Error(t, err)
	assert.Equal(t, wantErr, err)
}

func TestPollUntilRetryableError(t *testing.T) {
	logger := log.WithField("test", "pollUntilRetry")

	calls := 0
	err := pollUntil(context.Background(), testPollConfig, logger, "job", func(ctx context.Context) (string, bool, error) {
		calls++
		if calls == 1 {
			return "", false, goaws.NewRetryableInternalError(errors.New("throttled"))
		}
		return "Completed", true, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestRetriesBackoffCap(t *testing.T) {
	rt := &retries{base: 1, cap: 4, jitter: 1}

	require.NoError(t, rt.backoff(context.Background(), "job"))
	require.NoError(t, rt.backoff(context.Background(), "job"))

	// elapsed has reached the cap
	err := rt.backoff(context.Background(), "job")
	require.Error(t, err)

	var timeout *WaitTimeoutError
	require.ErrorAs(t, err, &timeout)
}

func TestPollConfigOrDefault(t *testing.T) {
	var nilCfg *PollConfig
	assert.Equal(t, *DefaultPollConfig, nilCfg.orDefault())

	cfg := &PollConfig{MaxWait: time.Hour}
	out := cfg.orDefault()
	assert.Equal(t, DefaultPollConfig.Interval, out.Interval)
	assert.Equal(t, time.Hour, out.MaxWait)
}
