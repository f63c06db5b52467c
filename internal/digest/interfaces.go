package digest

import (
	"context"
	"time"

	"github.com/voicecare/voicemail_triage/internal/domain"
)

type CardStore interface {
	LockUnsentCards(ctx context.Context, clinicID int64, since time.Time) ([]*domain.TriageCard, error)
	MarkDigestSent(ctx context.Context, ids []int64, sentAt time.Time) (int64, error)
}

type LogStore interface {
	CreateDigestLog(ctx context.Context, entry *domain.DigestLog) error
}

type ClinicProvider interface {
	ActiveClinics(ctx context.Context) ([]*domain.Clinic, error)
	ClinicByID(ctx context.Context, id int64) (*domain.Clinic, error)
}

type Notifier interface {
	SendNotification(ctx context.Context, destination, subject, body string) (bool, error)
}

type ReportGenerator interface {
	GenerateDigestReport(outputPath string, report *domain.DigestReport) error
}

type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
