package retry

import (
	"context"
	"math/rand"
	"time"
)

type Operation = func() error

type Config struct {
	MaxRetries    int
	BackoffFactor float64
	InitialDelay  time.Duration
	MaxDelay      time.Duration
	Jitter        time.Duration
	// Retryable decides whether an error is worth another attempt.
	// A nil Retryable retries every error.
	Retryable func(error) bool
}

// NewDefaultConfig is tuned for local resources (a database file that is
// briefly locked by another process), not for remote services.
func NewDefaultConfig() *Config {
	return &Config{
		MaxRetries:    4,
		BackoffFactor: 2,
		InitialDelay:  50 * time.Millisecond,
		MaxDelay:      time.Second,
		Jitter:        20 * time.Millisecond,
	}
}

type Retrier struct {
	config *Config
	rnd    *rand.Rand
}

func NewRetrier(config *Config) *Retrier {
	return &Retrier{
		config: config,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func NewDefaultRetrier() *Retrier {
	return NewRetrier(NewDefaultConfig())
}

// Do runs op until it succeeds, returns a non-retryable error, exhausts
// MaxRetries or ctx is done. The last error from op is returned.
func (r *Retrier) Do(ctx context.Context, op Operation) error {
	delay := r.config.InitialDelay

	for attempt := 0; ; attempt++ {
		err := op()
		if err == nil {
			return nil
		}
		if attempt >= r.config.MaxRetries || !r.retryable(err) {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(r.next(delay)):
		}

		delay = time.Duration(float64(delay) * r.config.BackoffFactor)
		if delay > r.config.MaxDelay {
			delay = r.config.MaxDelay
		}
	}
}

func (r *Retrier) retryable(err error) bool {
	if r.config.Retryable == nil {
		return true
	}
	return r.config.Retryable(err)
}

func (r *Retrier) next(delay time.Duration) time.Duration {
	var jitter time.Duration
	if r.config.Jitter > 0 {
		jitter = time.Duration(r.rnd.Int63n(int64(r.config.Jitter)))
	}
	if delay > r.config.MaxDelay {
		delay = r.config.MaxDelay
	}
	return delay + jitter
}
