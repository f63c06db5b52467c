package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/voicecare/voicemail_triage/internal/domain"
	"github.com/voicecare/voicemail_triage/internal/statemachine"
)

// Dispatcher is the worker loop. It claims the oldest received voicemail,
// hands it to the processor and sleeps for pollInterval when the queue is
// empty. Wake cuts the sleep short.
type Dispatcher struct {
	log          *slog.Logger
	pollInterval time.Duration
	machine      StateMachine
	processor    VoicemailProcessor
	wake         chan struct{}
}

func NewDispatcher(
	log *slog.Logger,
	pollInterval time.Duration,
	machine StateMachine,
	processor VoicemailProcessor,
) *Dispatcher {
	return &Dispatcher{
		log:          log,
		pollInterval: pollInterval,
		machine:      machine,
		processor:    processor,
		wake:         make(chan struct{}, 1),
	}
}

// Wake signals that new work may be available. It never blocks.
func (d *Dispatcher) Wake() {
	select {
	case d.wake <- struct{}{}:
	default:
	}
}

func (d *Dispatcher) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		claimed, err := d.dispatchNext(ctx)
		if err != nil {
			d.log.ErrorContext(ctx, "dispatch cycle failed", slog.String("err", err.Error()))
		}
		if claimed {
			continue
		}

		if err := d.waitForWork(ctx); err != nil {
			return err
		}
	}
}

func (d *Dispatcher) waitForWork(ctx context.Context) error {
	timer := time.NewTimer(d.pollInterval)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-d.wake:
	case <-ctx.Done():
		return ctx.Err()
	}

	return nil
}

// dispatchNext reports whether a voicemail was claimed.
func (d *Dispatcher) dispatchNext(ctx context.Context) (bool, error) {
	vm, err := d.machine.ClaimNext(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to claim voicemail: %w", err)
	}

	log := d.log.With(slog.Int64("voicemail_id", vm.ID))
	log.InfoContext(ctx, "claimed voicemail")

	err = d.process(ctx, vm)
	switch {
	case err == nil:
		log.InfoContext(ctx, "voicemail processed", slog.String("status", string(vm.Status)))
	case ctx.Err() != nil:
		log.WarnContext(ctx, "processing interrupted by shutdown", slog.String("status", string(vm.Status)))
	case errors.Is(err, statemachine.ErrStaleTransition):
		log.WarnContext(ctx, "voicemail taken over by another worker", slog.String("err", err.Error()))
	default:
		log.ErrorContext(ctx, "failed to persist voicemail progress", slog.String("err", err.Error()))
		d.markForReview(ctx, log, vm)
	}

	return true, nil
}

// process turns a panic inside the pipeline into a failed voicemail so that
// one bad record never stops the loop.
func (d *Dispatcher) process(ctx context.Context, vm *domain.Voicemail) (err error) {
	defer func() {
		rec := recover()
		if rec == nil {
			return
		}

		reason := fmt.Sprintf("pipeline panic: %v", rec)
		d.log.ErrorContext(ctx, "recovered from pipeline panic",
			slog.Int64("voicemail_id", vm.ID),
			slog.String("panic", reason),
		)

		if failErr := d.machine.Fail(ctx, vm, reason); failErr != nil {
			err = fmt.Errorf("failed to mark voicemail failed after panic: %w", failErr)
		}
	}()

	return d.processor.Process(ctx, vm)
}

func (d *Dispatcher) markForReview(ctx context.Context, log *slog.Logger, vm *domain.Voicemail) {
	if vm.Status.IsTerminal() {
		return
	}

	if err := d.machine.Transition(ctx, vm, domain.StatusNeedsReview); err != nil {
		log.ErrorContext(ctx, "failed to mark voicemail for review, leaving it to the reclaimer",
			slog.String("err", err.Error()),
		)
	}
}
