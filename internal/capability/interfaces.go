package capability

import (
	"context"

	"github.com/voicecare/voicemail_triage/internal/domain"
)

type Transcriber interface {
	Transcribe(ctx context.Context, audioURL string) (domain.Transcription, error)
}

type PatientInfoExtractor interface {
	ExtractPatientInfo(ctx context.Context, transcript string) (domain.PatientInfo, error)
}

type Summarizer interface {
	SummarizeAndTriage(ctx context.Context, transcript string, info domain.PatientInfo) (domain.Summary, error)
}

// Notifier delivers a message. A false result without an error means the
// provider accepted the request but refused to deliver it.
type Notifier interface {
	SendNotification(ctx context.Context, destination, subject, body string) (bool, error)
}

type AudioLocator interface {
	ResolveAudioLocation(ctx context.Context, storageKey string) (string, error)
}
