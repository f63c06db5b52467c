package digest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron"
)

type Runner interface {
	SendAll(ctx context.Context) error
}

// Scheduler triggers the daily digest on a cron spec with a seconds field,
// e.g. "0 45 16 * * *" for 16:45:00.
type Scheduler struct {
	log      *slog.Logger
	spec     string
	location *time.Location
	runner   Runner
}

func NewScheduler(log *slog.Logger, spec string, location *time.Location, runner Runner) (*Scheduler, error) {
	if _, err := cron.Parse(spec); err != nil {
		return nil, fmt.Errorf("invalid digest schedule %q: %w", spec, err)
	}

	if location == nil {
		location = time.UTC
	}

	return &Scheduler{
		log:      log,
		spec:     spec,
		location: location,
		runner:   runner,
	}, nil
}

func (s *Scheduler) Run(ctx context.Context) error {
	c := cron.NewWithLocation(s.location)

	err := c.AddFunc(s.spec, func() {
		s.log.InfoContext(ctx, "digest cycle started")

		if err := s.runner.SendAll(ctx); err != nil {
			s.log.ErrorContext(ctx, "digest cycle finished with errors", slog.String("err", err.Error()))
			return
		}

		s.log.InfoContext(ctx, "digest cycle finished")
	})
	if err != nil {
		return fmt.Errorf("failed to schedule digest: %w", err)
	}

	c.Start()
	defer c.Stop()

	s.log.InfoContext(ctx, "digest scheduler started",
		slog.String("schedule", s.spec),
		slog.String("timezone", s.location.String()),
	)

	<-ctx.Done()

	return ctx.Err()
}
