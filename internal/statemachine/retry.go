package statemachine

import (
	"context"
	"log/slog"
	"time"

	"github.com/voicecare/voicemail_triage/internal/capability"
	"github.com/voicecare/voicemail_triage/internal/metrics"
)

type RetryPolicy struct {
	// Attempts is the total number of calls per stage, including the first.
	Attempts  int
	BaseDelay time.Duration
	MaxDelay  time.Duration
}

func (p RetryPolicy) backoff(attempt int) time.Duration {
	delay := p.BaseDelay << (attempt - 1)
	if delay < 0 || (p.MaxDelay > 0 && delay > p.MaxDelay) {
		return p.MaxDelay
	}
	return delay
}

// Retrier repeats a stage call without touching the voicemail status between
// attempts. Transient failures back off exponentially, other failures are
// retried immediately and invalid output is never retried.
type Retrier struct {
	log     *slog.Logger
	metrics *metrics.Metrics
	policy  RetryPolicy
}

func NewRetrier(log *slog.Logger, metrics *metrics.Metrics, policy RetryPolicy) *Retrier {
	if policy.Attempts < 1 {
		policy.Attempts = 1
	}
	return &Retrier{log: log, metrics: metrics, policy: policy}
}

// Run calls fn until it succeeds, the policy is exhausted, the result is
// invalid output or ctx is done. It returns the last result and the number
// of calls made.
func Run[T any](ctx context.Context, r *Retrier, stage capability.Stage, fn func(ctx context.Context) capability.Result[T]) (capability.Result[T], int) {
	var res capability.Result[T]

	for attempt := 1; attempt <= r.policy.Attempts; attempt++ {
		start := time.Now()
		res = fn(ctx)
		r.metrics.StageAttempt(string(stage), outcome(res.Kind()), time.Since(start))

		if res.IsOk() {
			return res, attempt
		}

		log := r.log.With(
			slog.String("stage", string(stage)),
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", r.policy.Attempts),
			slog.String("kind", string(res.Kind())),
			slog.String("err", res.Err.Error()),
		)

		if res.Kind() == capability.KindInvalidOutput || ctx.Err() != nil || attempt == r.policy.Attempts {
			log.WarnContext(ctx, "stage failed, giving up")
			return res, attempt
		}

		if res.Kind() != capability.KindTransient {
			log.WarnContext(ctx, "stage failed, retrying")
			continue
		}

		delay := r.policy.backoff(attempt)
		log.WarnContext(ctx, "transient stage failure, backing off", slog.Duration("delay", delay))

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return res, attempt
		case <-timer.C:
		}
	}

	return res, r.policy.Attempts
}

func outcome(kind capability.ErrorKind) string {
	if kind == "" {
		return "ok"
	}
	return string(kind)
}
