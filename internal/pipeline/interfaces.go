package pipeline

import (
	"context"
	"time"

	"github.com/voicecare/voicemail_triage/internal/capability"
	"github.com/voicecare/voicemail_triage/internal/domain"
	"github.com/voicecare/voicemail_triage/internal/statemachine"
)

type StateMachine interface {
	ClaimNext(ctx context.Context) (*domain.Voicemail, error)
	Transition(ctx context.Context, vm *domain.Voicemail, to domain.Status, changes ...statemachine.Change) error
	Fail(ctx context.Context, vm *domain.Voicemail, reason string, changes ...statemachine.Change) error
	Atomically(ctx context.Context, fn func(ctx context.Context) error) error
}

type Reclaimer interface {
	Reclaim(ctx context.Context, staleAfter time.Duration) (int, error)
}

type Stages interface {
	Transcribe(ctx context.Context, storageKey string) capability.Result[domain.Transcription]
	ExtractPatientInfo(ctx context.Context, transcript string) capability.Result[domain.PatientInfo]
	SummarizeAndTriage(ctx context.Context, transcript string, info domain.PatientInfo) capability.Result[domain.Summary]
}

type Classifier interface {
	Classify(ctx context.Context, transcript string) (domain.Classification, error)
}

type TriageCardCreator interface {
	CreateTriageCard(ctx context.Context, card *domain.TriageCard) (bool, error)
}

type UntriagedProvider interface {
	VoicemailsWithoutCard(ctx context.Context, statuses []domain.Status, limit uint64) ([]*domain.Voicemail, error)
}

type VoicemailProcessor interface {
	Process(ctx context.Context, vm *domain.Voicemail) error
}
