package llmclient

import (
	"context"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
)

// Retrier retries provider calls with exponential backoff. Only failures
// whose kind is retryable (network/timeout/server) are retried; validation
// and auth failures propagate immediately. After MaxRetries retries the last
// error is returned.
type Retrier struct {
	MaxRetries   int
	InitialDelay time.Duration
}

// NewRetrier applies the default policy (3 retries, 1s initial delay) for
// zero-valued fields.
func NewRetrier(maxRetries int, initialDelay time.Duration) *Retrier {
	if maxRetries <= 0 {
		maxRetries = 3
	}
	if initialDelay <= 0 {
		initialDelay = time.Second
	}
	return &Retrier{MaxRetries: maxRetries, InitialDelay: initialDelay}
}

// Do runs op, retrying retryable failures with delays of
// InitialDelay * 2^attempt. The context bounds the whole sequence.
func (r *Retrier) Do(ctx context.Context, op func() error) error {
	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = r.InitialDelay
	expo.Multiplier = 2
	// 지연 시간을 결정적으로 유지한다. (테스트 및 타임아웃 예산 계산)
	expo.RandomizationFactor = 0
	expo.MaxInterval = r.InitialDelay * time.Duration(1<<uint(r.MaxRetries))
	expo.MaxElapsedTime = 0

	bo := backoff.WithContext(backoff.WithMaxRetries(expo, uint64(r.MaxRetries)), ctx)
	return backoff.Retry(func() error {
		err := op()
		if err == nil {
			return nil
		}
		if !Classify(err).Retryable() {
			return backoff.Permanent(err)
		}
		return err
	}, bo)
}
