package statemachine

import (
	"context"
	"time"

	"github.com/voicecare/voicemail_triage/internal/domain"
)

type VoicemailStore interface {
	// UpdateVoicemail persists vm if its stored status still equals from.
	// It reports false when the guard did not match.
	UpdateVoicemail(ctx context.Context, vm *domain.Voicemail, from domain.Status) (bool, error)
	// LockNextReceived returns the lowest id voicemail in received, skipping
	// rows locked by other transactions, or domain.ErrNotFound.
	LockNextReceived(ctx context.Context) (*domain.Voicemail, error)
	StaleVoicemails(ctx context.Context, statuses []domain.Status, changedBefore time.Time) ([]*domain.Voicemail, error)
}

type TransitionLogger interface {
	InsertTransition(ctx context.Context, transition *domain.Transition) error
}

type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
