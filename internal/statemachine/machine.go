// Package statemachine owns Voicemail.Status. Every status change goes
// through Machine so the transition log and failure metadata stay in step
// with the status column.
package statemachine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/voicecare/voicemail_triage/internal/domain"
	"github.com/voicecare/voicemail_triage/internal/metrics"
)

// ErrStaleTransition is returned when the stored status no longer matches the
// caller's copy, i.e. another worker moved the record first.
var ErrStaleTransition = errors.New("voicemail status changed concurrently")

const unspecifiedFailure = "unspecified failure"

type commitHooksKey struct{}

// commitHooks collects work that must only happen once the outermost
// transaction opened through Atomically has committed.
type commitHooks struct {
	fns []func()
}

// Change mutates pipeline outputs that are committed together with a
// transition.
type Change func(vm *domain.Voicemail)

type Machine struct {
	log         *slog.Logger
	store       VoicemailStore
	transitions TransitionLogger
	transactor  Transactor
	metrics     *metrics.Metrics
	workerID    string
	now         func() time.Time
}

func NewMachine(
	log *slog.Logger,
	store VoicemailStore,
	transitions TransitionLogger,
	transactor Transactor,
	metrics *metrics.Metrics,
	workerID string,
) *Machine {
	return &Machine{
		log:         log,
		store:       store,
		transitions: transitions,
		transactor:  transactor,
		metrics:     metrics,
		workerID:    workerID,
		now:         time.Now,
	}
}

// Transition moves vm to the given status and applies changes atomically.
// On success vm reflects the committed row. On error vm is left untouched.
func (m *Machine) Transition(ctx context.Context, vm *domain.Voicemail, to domain.Status, changes ...Change) error {
	return m.apply(ctx, vm, to, "", changes)
}

// Fail moves vm to failed and records reason.
func (m *Machine) Fail(ctx context.Context, vm *domain.Voicemail, reason string, changes ...Change) error {
	if reason == "" {
		reason = unspecifiedFailure
	}
	return m.apply(ctx, vm, domain.StatusFailed, reason, changes)
}

// Atomically runs fn in one transaction. Transitions made inside fn update
// their voicemail, metrics and log only after that transaction commits; on
// error every voicemail passed to them is left untouched.
func (m *Machine) Atomically(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(commitHooksKey{}).(*commitHooks); ok {
		return m.transactor.WithTransaction(ctx, fn)
	}

	hooks := &commitHooks{}
	ctx = context.WithValue(ctx, commitHooksKey{}, hooks)

	if err := m.transactor.WithTransaction(ctx, fn); err != nil {
		return err
	}

	for _, fn := range hooks.fns {
		fn()
	}

	return nil
}

// afterCommit queues fn on the enclosing Atomically call.
func afterCommit(ctx context.Context, fn func()) {
	hooks, ok := ctx.Value(commitHooksKey{}).(*commitHooks)
	if !ok {
		fn()
		return
	}
	hooks.fns = append(hooks.fns, fn)
}

// ClaimNext atomically takes the oldest received voicemail and moves it to
// queued. It returns domain.ErrNotFound when there is nothing to claim.
func (m *Machine) ClaimNext(ctx context.Context) (*domain.Voicemail, error) {
	var claimed *domain.Voicemail

	err := m.Atomically(ctx, func(ctx context.Context) error {
		vm, err := m.store.LockNextReceived(ctx)
		if err != nil {
			return err
		}

		if err := m.apply(ctx, vm, domain.StatusQueued, "", nil); err != nil {
			return err
		}

		claimed = vm
		return nil
	})
	if err != nil {
		return nil, err
	}

	return claimed, nil
}

// Reclaim returns voicemails stuck in an in-progress status for longer than
// staleAfter to received. It returns how many were moved.
func (m *Machine) Reclaim(ctx context.Context, staleAfter time.Duration) (int, error) {
	cutoff := m.now().Add(-staleAfter)

	stale, err := m.store.StaleVoicemails(ctx, domain.InProgressStatuses(), cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to get stale voicemails: %w", err)
	}

	reclaimed := 0
	for _, vm := range stale {
		err := m.Transition(ctx, vm, domain.StatusReceived)
		switch {
		case errors.Is(err, ErrStaleTransition):
			continue
		case err != nil:
			return reclaimed, fmt.Errorf("failed to reclaim voicemail %d: %w", vm.ID, err)
		}
		reclaimed++
	}

	return reclaimed, nil
}

func (m *Machine) apply(ctx context.Context, vm *domain.Voicemail, to domain.Status, reason string, changes []Change) error {
	if err := to.Validate(); err != nil {
		return err
	}

	from := vm.Status
	if !from.CanTransition(to) {
		return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, from, to)
	}

	now := m.now().UTC()

	next := *vm
	for _, change := range changes {
		change(&next)
	}
	next.Status = to
	next.StatusAt = now

	if to == domain.StatusFailed {
		next.LastErrorAt = &now
		next.FailureReason = &reason
	} else {
		next.LastErrorAt = nil
		next.FailureReason = nil
	}

	if to.IsInProgress() {
		workerID := m.workerID
		next.ClaimedBy = &workerID
	} else {
		next.ClaimedBy = nil
	}

	transition := &domain.Transition{
		VoicemailID: vm.ID,
		From:        from,
		To:          to,
		CreatedAt:   now,
	}
	if reason != "" {
		transition.Reason = &reason
	}

	return m.Atomically(ctx, func(ctx context.Context) error {
		updated, err := m.store.UpdateVoicemail(ctx, &next, from)
		if err != nil {
			return fmt.Errorf("failed to update voicemail: %w", err)
		}
		if !updated {
			return fmt.Errorf("%w: voicemail %d is no longer %s", ErrStaleTransition, vm.ID, from)
		}

		if err := m.transitions.InsertTransition(ctx, transition); err != nil {
			return fmt.Errorf("failed to log transition: %w", err)
		}

		afterCommit(ctx, func() {
			*vm = next

			m.metrics.Transition(string(to))

			attrs := []any{
				slog.Int64("voicemail_id", vm.ID),
				slog.String("from", string(from)),
				slog.String("to", string(to)),
			}
			if reason != "" {
				attrs = append(attrs, slog.String("reason", reason))
			}
			m.log.InfoContext(ctx, "voicemail status changed", attrs...)
		})

		return nil
	})
}
