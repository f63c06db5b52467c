package pipeline

import (
	"context"
	"log/slog"
	"time"
)

// StaleReclaimer returns voicemails stuck in an in-progress status to
// received. It runs once at startup and then every interval.
type StaleReclaimer struct {
	log        *slog.Logger
	interval   time.Duration
	staleAfter time.Duration
	reclaimer  Reclaimer
	onReclaim  func()
}

func NewStaleReclaimer(
	log *slog.Logger,
	interval time.Duration,
	staleAfter time.Duration,
	reclaimer Reclaimer,
	onReclaim func(),
) *StaleReclaimer {
	return &StaleReclaimer{
		log:        log,
		interval:   interval,
		staleAfter: staleAfter,
		reclaimer:  reclaimer,
		onReclaim:  onReclaim,
	}
}

func (r *StaleReclaimer) Run(ctx context.Context) error {
	r.reclaim(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.reclaim(ctx)

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (r *StaleReclaimer) reclaim(ctx context.Context) {
	n, err := r.reclaimer.Reclaim(ctx, r.staleAfter)
	if err != nil {
		r.log.ErrorContext(ctx, "failed to reclaim stale voicemails", slog.String("err", err.Error()))
	}

	if n == 0 {
		return
	}

	r.log.InfoContext(ctx, "reclaimed stale voicemails", slog.Int("count", n))

	if r.onReclaim != nil {
		r.onReclaim()
	}
}
