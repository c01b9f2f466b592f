package repository

import (
	"context"
	"time"

	"linkbio-service/internal/xerrors"

	"go.uber.org/zap"
)

// RetryPolicy is the single bounded-retry policy applied to every store
// query: a fixed attempt ceiling, a fixed backoff schedule, and a generous
// per-attempt timeout sized for backend cold starts. Only transient failures
// are retried; a definitive not-found returns immediately.
type RetryPolicy struct {
	MaxAttempts    int
	Backoff        []time.Duration
	AttemptTimeout time.Duration
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:    3,
		Backoff:        []time.Duration{1 * time.Second, 2 * time.Second},
		AttemptTimeout: 10 * time.Second,
	}
}

// Do runs fn under the policy. fn receives a context bounded by the
// per-attempt timeout; errors it returns must already be classified through
// the xerrors taxonomy.
func (p RetryPolicy) Do(ctx context.Context, logger *zap.Logger, name string, fn func(ctx context.Context) error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			wait := p.backoffFor(attempt - 1)
			logger.Warn("retrying query",
				zap.String("query", name),
				zap.Int("attempt", attempt+1),
				zap.Duration("backoff", wait),
				zap.Error(err))
			select {
			case <-time.After(wait):
			case <-ctx.Done():
				return classifyErr(ctx.Err())
			}
		}

		attemptCtx := ctx
		cancel := func() {}
		if p.AttemptTimeout > 0 {
			attemptCtx, cancel = context.WithTimeout(ctx, p.AttemptTimeout)
		}
		err = fn(attemptCtx)
		cancel()

		if err == nil || !xerrors.IsTransient(err) {
			return err
		}
		if ctx.Err() != nil {
			return classifyErr(ctx.Err())
		}
	}
	return err
}

func (p RetryPolicy) backoffFor(i int) time.Duration {
	if len(p.Backoff) == 0 {
		return time.Second
	}
	if i >= len(p.Backoff) {
		i = len(p.Backoff) - 1
	}
	return p.Backoff[i]
}
