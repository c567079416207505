package gosagemaker

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"time"

	"github.com/apex/log"
	"github.com/ggarcia209/go-sagemaker/goaws"
)

// PollConfig controls status polling during the Wait operations.
// A zero MaxWait polls until the resource reaches a terminal status
// or the context is cancelled.
type PollConfig struct {
	Interval time.Duration `json:"interval"`
	Jitter   time.Duration `json:"jitter"`
	MaxWait  time.Duration `json:"max_wait"`
}

// DefaultPollConfig polls every 15 seconds with up to 2 seconds of
// jitter for at most 24 hours.
var DefaultPollConfig = &PollConfig{
	Interval: 15 * time.Second,
	Jitter:   2 * time.Second,
	MaxWait:  24 * time.Hour,
}

func (c *PollConfig) orDefault() PollConfig {
	if c == nil {
		return *DefaultPollConfig
	}
	out := *c
	if out.Interval <= 0 {
		out.Interval = DefaultPollConfig.Interval
	}
	return out
}

// retries implements exponential backoff with full jitter, applied
// when a describe call fails with a retryable error mid-wait.
type retries struct {
	base    int64
	cap     int64
	jitter  int64
	attempt int64
	elapsed int64
}

func newRetries() *retries {
	return &retries{base: 50, cap: 60000, jitter: 250}
}

func (r *retries) reset() {
	r.attempt = 0
	r.elapsed = 0
}

func (r *retries) backoff(ctx context.Context, resource string) error {
	if r.elapsed >= r.cap {
		return NewWaitTimeoutError(resource)
	}

	r.attempt++
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	wait := r.base*int64(math.Pow(2.0, float64(r.attempt))) + rnd.Int63n(r.jitter)
	if r.elapsed+wait > r.cap {
		wait = r.cap - r.elapsed
	}
	r.elapsed += wait

	return sleep(ctx, time.Duration(wait)*time.Millisecond)
}

// pollUntil polls describe until it reports done, returns a
// non-retryable error, or the wait budget runs out. Status
// transitions are logged at info level on the given logger.
func pollUntil(ctx context.Context, cfg *PollConfig, logger *log.Entry, resource string, describe func(ctx context.Context) (status string, done bool, err error)) error {
	c := cfg.orDefault()
	start := time.Now()
	rt := newRetries()

	var last string
	for {
		status, done, err := describe(ctx)
		if err != nil {
			var ae goaws.AwsError
			if errors.As(err, &ae) && ae.Retryable() {
				logger.WithError(err).Warn("describe failed, retrying")
				if berr := rt.backoff(ctx, resource); berr != nil {
					return berr
				}
				continue
			}
			return err
		}
		rt.reset()

		if status != last {
			logger.WithField("status", status).Info("status changed")
			last = status
		}
		if done {
			return nil
		}

		if c.MaxWait > 0 && time.Since(start) >= c.MaxWait {
			return NewWaitTimeoutError(resource)
		}

		wait := c.Interval
		if c.Jitter > 0 {
			rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
			wait += time.Duration(rnd.Int63n(int64(c.Jitter)))
		}
		if err := sleep(ctx, wait); err != nil {
			return err
		}
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return goaws.NewInternalError(ctx.Err())
	case <-t.C:
		return nil
	}
}
