package v1

import (
	"context"
	"io"
	"time"

	"github.com/voicecare/voicemail_triage/internal/digest"
	"github.com/voicecare/voicemail_triage/internal/domain"
)

type ClinicProvider interface {
	ClinicByToken(ctx context.Context, token string) (*domain.Clinic, error)
}

type VoicemailsRepository interface {
	CreateVoicemail(ctx context.Context, vm *domain.Voicemail) error
	VoicemailByID(ctx context.Context, id int64) (*domain.Voicemail, error)
	VoicemailsByClinic(ctx context.Context, clinicID int64, status *domain.Status, limit, offset uint64) ([]*domain.Voicemail, int, error)
}

type TransitionProvider interface {
	TransitionsByVoicemail(ctx context.Context, voicemailID int64) ([]*domain.Transition, error)
}

type CardProvider interface {
	CardsByClinic(ctx context.Context, clinicID int64, from, to time.Time) ([]*domain.TriageCard, error)
}

type AudioStore interface {
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
	Delete(ctx context.Context, key string) error
}

// Waker nudges the dispatcher after a new voicemail is stored.
type Waker interface {
	Wake()
}

type DigestSender interface {
	SendByClinicID(ctx context.Context, clinicID int64) (digest.Result, error)
}
