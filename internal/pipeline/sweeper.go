package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/voicecare/voicemail_triage/internal/domain"
	"github.com/voicecare/voicemail_triage/internal/metrics"
)

const sweepBatchSize = 100

// TriageSweeper creates triage cards for finished voicemails that have none.
// Card creation is idempotent per voicemail, so overlapping sweeps never
// produce duplicates.
type TriageSweeper struct {
	log        *slog.Logger
	interval   time.Duration
	provider   UntriagedProvider
	classifier Classifier
	cards      TriageCardCreator
	metrics    *metrics.Metrics
	now        func() time.Time
}

func NewTriageSweeper(
	log *slog.Logger,
	interval time.Duration,
	provider UntriagedProvider,
	classifier Classifier,
	cards TriageCardCreator,
	metrics *metrics.Metrics,
) *TriageSweeper {
	return &TriageSweeper{
		log:        log,
		interval:   interval,
		provider:   provider,
		classifier: classifier,
		cards:      cards,
		metrics:    metrics,
		now:        time.Now,
	}
}

func (s *TriageSweeper) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			created, err := s.Sweep(ctx)
			if err != nil {
				s.log.ErrorContext(ctx, "triage sweep failed", slog.String("err", err.Error()))
			}
			if created > 0 {
				s.log.InfoContext(ctx, "triage sweep created cards", slog.Int("count", created))
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Sweep classifies one batch and returns the number of cards created.
func (s *TriageSweeper) Sweep(ctx context.Context) (int, error) {
	voicemails, err := s.provider.VoicemailsWithoutCard(ctx,
		[]domain.Status{domain.StatusCompleted, domain.StatusNeedsReview},
		sweepBatchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to get untriaged voicemails: %w", err)
	}

	created := 0
	for _, vm := range voicemails {
		log := s.log.With(slog.Int64("voicemail_id", vm.ID))

		classification, err := s.classifier.Classify(ctx, vm.TranscriptText())
		if err != nil {
			log.WarnContext(ctx, "failed to classify voicemail, skipping", slog.String("err", err.Error()))
			continue
		}

		card := &domain.TriageCard{
			VoicemailID: vm.ID,
			ClinicID:    vm.ClinicID,
			Summary:     classification.Summary,
			Urgency:     classification.Urgency,
			CrisisFlag:  classification.CrisisFlag,
			NeedsReview: classification.CrisisFlag || vm.Status == domain.StatusNeedsReview,
			CreatedAt:   s.now().UTC(),
		}

		ok, err := s.cards.CreateTriageCard(ctx, card)
		if err != nil {
			return created, fmt.Errorf("failed to create triage card for voicemail %d: %w", vm.ID, err)
		}
		if !ok {
			log.DebugContext(ctx, "triage card already exists")
			continue
		}

		s.metrics.CardCreated(string(card.Urgency))
		created++
	}

	return created, nil
}
