// Package digest sends the daily per-clinic voicemail summary.
package digest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/voicecare/voicemail_triage/internal/domain"
	"github.com/voicecare/voicemail_triage/internal/metrics"
)

var (
	// ErrNotDelivered is returned when the notifier reports a refused send.
	ErrNotDelivered = errors.New("digest not delivered")
	ErrNoRecipient  = errors.New("clinic has no notification email")
)

type Result struct {
	ClinicID int64
	// Skipped is set when the clinic had nothing to send.
	Skipped bool
	Message Message
	Log     *domain.DigestLog
}

type Batcher struct {
	log        *slog.Logger
	cards      CardStore
	logs       LogStore
	clinics    ClinicProvider
	notifier   Notifier
	transactor Transactor
	reports    ReportGenerator
	reportsDir string
	location   *time.Location
	metrics    *metrics.Metrics
	now        func() time.Time
}

func NewBatcher(
	log *slog.Logger,
	cards CardStore,
	logs LogStore,
	clinics ClinicProvider,
	notifier Notifier,
	transactor Transactor,
	reports ReportGenerator,
	reportsDir string,
	location *time.Location,
	metrics *metrics.Metrics,
) *Batcher {
	if location == nil {
		location = time.UTC
	}

	return &Batcher{
		log:        log,
		cards:      cards,
		logs:       logs,
		clinics:    clinics,
		notifier:   notifier,
		transactor: transactor,
		reports:    reports,
		reportsDir: reportsDir,
		location:   location,
		metrics:    metrics,
		now:        time.Now,
	}
}

// SendAll sends a digest to every active clinic. A failing clinic does not
// stop the others; all failures are returned joined.
func (b *Batcher) SendAll(ctx context.Context) error {
	clinics, err := b.clinics.ActiveClinics(ctx)
	if err != nil {
		return fmt.Errorf("failed to get active clinics: %w", err)
	}

	var errs []error
	for _, clinic := range clinics {
		if _, err := b.Send(ctx, clinic); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (b *Batcher) SendByClinicID(ctx context.Context, clinicID int64) (Result, error) {
	clinic, err := b.clinics.ClinicByID(ctx, clinicID)
	if err != nil {
		return Result{ClinicID: clinicID}, fmt.Errorf("failed to get clinic %d: %w", clinicID, err)
	}

	return b.Send(ctx, clinic)
}

// Send delivers one clinic digest. Selected cards are locked for the whole
// send. On success the success log and the digest_sent_at stamps commit
// together. On failure nothing is stamped, a failed log is written and the
// error is returned so the caller can alert.
func (b *Batcher) Send(ctx context.Context, clinic *domain.Clinic) (Result, error) {
	log := b.log.With(slog.Int64("clinic_id", clinic.ID))
	result := Result{ClinicID: clinic.ID}

	now := b.now()
	since := StartOfDay(now, b.location)

	var (
		sendErr error
		cards   []*domain.TriageCard
	)

	err := b.transactor.WithTransaction(ctx, func(ctx context.Context) error {
		var err error
		cards, err = b.cards.LockUnsentCards(ctx, clinic.ID, since)
		if err != nil {
			return fmt.Errorf("failed to select unsent cards: %w", err)
		}

		if len(cards) == 0 {
			result.Skipped = true
			return nil
		}

		result.Message = Render(cards)
		if result.Message.UrgentCount > 0 {
			log.WarnContext(ctx, "urgent voicemail present in digest", slog.Int("urgent", result.Message.UrgentCount))
		}

		sendErr = b.deliver(ctx, clinic, result.Message)
		if sendErr != nil {
			return sendErr
		}

		sentAt := b.now().UTC()
		entry := newLog(clinic.ID, sentAt, result.Message, domain.DigestStatusSuccess, nil)

		if err := b.logs.CreateDigestLog(ctx, entry); err != nil {
			return fmt.Errorf("failed to write digest log: %w", err)
		}

		ids := make([]int64, len(cards))
		for i, card := range cards {
			ids[i] = card.ID
		}

		if _, err := b.cards.MarkDigestSent(ctx, ids, sentAt); err != nil {
			return fmt.Errorf("failed to mark cards sent: %w", err)
		}

		for _, card := range cards {
			card.DigestSentAt = &sentAt
		}

		result.Log = entry
		return nil
	})

	switch {
	case sendErr != nil:
		b.recordFailure(ctx, log, clinic.ID, result.Message, sendErr)
		return result, fmt.Errorf("failed to send digest to clinic %d: %w", clinic.ID, sendErr)

	case err != nil && result.Message.Total > 0:
		// delivered but not recorded, cards stay unsent and go out again
		b.recordFailure(ctx, log, clinic.ID, result.Message, err)
		return result, fmt.Errorf("failed to record digest for clinic %d: %w", clinic.ID, err)

	case err != nil:
		return result, fmt.Errorf("failed to prepare digest for clinic %d: %w", clinic.ID, err)
	}

	if result.Skipped {
		log.InfoContext(ctx, "no triage cards eligible for digest")
		return result, nil
	}

	b.metrics.DigestSend(string(domain.DigestStatusSuccess))
	log.InfoContext(ctx, "daily digest sent",
		slog.Int("total", result.Message.Total),
		slog.Int("urgent", result.Message.UrgentCount),
		slog.Int("non_urgent", result.Message.NonUrgentCount),
	)

	b.archive(ctx, log, clinic, result, cards)

	return result, nil
}

func (b *Batcher) deliver(ctx context.Context, clinic *domain.Clinic, msg Message) error {
	recipient := clinic.NotificationAddress()
	if recipient == "" {
		return ErrNoRecipient
	}

	ok, err := b.notifier.SendNotification(ctx, recipient, msg.Subject, msg.Body)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotDelivered
	}

	return nil
}

// recordFailure writes the failed log outside the rolled back transaction.
func (b *Batcher) recordFailure(ctx context.Context, log *slog.Logger, clinicID int64, msg Message, cause error) {
	b.metrics.DigestSend(string(domain.DigestStatusFailed))

	reason := cause.Error()
	entry := newLog(clinicID, b.now().UTC(), msg, domain.DigestStatusFailed, &reason)

	if err := b.logs.CreateDigestLog(ctx, entry); err != nil {
		log.ErrorContext(ctx, "failed to write failed digest log", slog.String("err", err.Error()))
	}

	log.ErrorContext(ctx, "daily digest failed", slog.String("err", reason))
}

func (b *Batcher) archive(ctx context.Context, log *slog.Logger, clinic *domain.Clinic, result Result, cards []*domain.TriageCard) {
	if b.reports == nil || b.reportsDir == "" {
		return
	}

	sentAt := result.Log.SentAt.In(b.location)
	path := filepath.Join(b.reportsDir, fmt.Sprintf("digest_%d_%s.pdf", clinic.ID, sentAt.Format("2006-01-02_150405")))

	err := b.reports.GenerateDigestReport(path, &domain.DigestReport{
		Clinic:         clinic,
		SentAt:         sentAt,
		Subject:        result.Message.Subject,
		UrgentCount:    result.Message.UrgentCount,
		NonUrgentCount: result.Message.NonUrgentCount,
		Cards:          cards,
	})
	if err != nil {
		log.ErrorContext(ctx, "failed to archive digest", slog.String("err", err.Error()))
		return
	}

	log.DebugContext(ctx, "digest archived", slog.String("path", path))
}

func newLog(clinicID int64, at time.Time, msg Message, status domain.DigestStatus, reason *string) *domain.DigestLog {
	return &domain.DigestLog{
		ClinicID:        clinicID,
		SentAt:          at,
		TotalVoicemails: msg.Total,
		UrgentCount:     msg.UrgentCount,
		NonUrgentCount:  msg.NonUrgentCount,
		Status:          status,
		ErrorMessage:    reason,
	}
}

// StartOfDay returns midnight of t's day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}
