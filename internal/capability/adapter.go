package capability

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/voicecare/voicemail_triage/internal/domain"
	"golang.org/x/time/rate"
)

var urgencyLevels = map[string]struct{}{
	"low":    {},
	"medium": {},
	"high":   {},
	"urgent": {},
}

// Adapter turns provider calls into tagged results. Outbound calls share one
// rate limiter.
type Adapter struct {
	log         *slog.Logger
	limiter     *rate.Limiter
	locator     AudioLocator
	transcriber Transcriber
	extractor   PatientInfoExtractor
	summarizer  Summarizer
}

func NewAdapter(
	log *slog.Logger,
	limiter *rate.Limiter,
	locator AudioLocator,
	transcriber Transcriber,
	extractor PatientInfoExtractor,
	summarizer Summarizer,
) *Adapter {
	return &Adapter{
		log:         log,
		limiter:     limiter,
		locator:     locator,
		transcriber: transcriber,
		extractor:   extractor,
		summarizer:  summarizer,
	}
}

func (a *Adapter) Transcribe(ctx context.Context, storageKey string) Result[domain.Transcription] {
	url, err := a.locator.ResolveAudioLocation(ctx, storageKey)
	if err != nil {
		return Fail[domain.Transcription](StageTranscribe, Classify(err), fmt.Errorf("failed to resolve audio location: %w", err))
	}

	if err := a.wait(ctx); err != nil {
		return Fail[domain.Transcription](StageTranscribe, KindPermanent, err)
	}

	transcription, err := a.transcriber.Transcribe(ctx, url)
	if err != nil {
		return failed[domain.Transcription](ctx, a.log, StageTranscribe, err)
	}

	if strings.TrimSpace(transcription.Text) == "" {
		return Fail[domain.Transcription](StageTranscribe, KindInvalidOutput, fmt.Errorf("%w: empty transcript", ErrInvalidOutput))
	}
	if transcription.Confidence < 0 || transcription.Confidence > 1 {
		return Fail[domain.Transcription](StageTranscribe, KindInvalidOutput,
			fmt.Errorf("%w: confidence %v out of range", ErrInvalidOutput, transcription.Confidence))
	}

	return Ok(transcription)
}

func (a *Adapter) ExtractPatientInfo(ctx context.Context, transcript string) Result[domain.PatientInfo] {
	if err := a.wait(ctx); err != nil {
		return Fail[domain.PatientInfo](StageExtract, KindPermanent, err)
	}

	info, err := a.extractor.ExtractPatientInfo(ctx, transcript)
	if err != nil {
		return failed[domain.PatientInfo](ctx, a.log, StageExtract, err)
	}

	return Ok(info)
}

func (a *Adapter) SummarizeAndTriage(ctx context.Context, transcript string, info domain.PatientInfo) Result[domain.Summary] {
	if err := a.wait(ctx); err != nil {
		return Fail[domain.Summary](StageSummarize, KindPermanent, err)
	}

	summary, err := a.summarizer.SummarizeAndTriage(ctx, transcript, info)
	if err != nil {
		return failed[domain.Summary](ctx, a.log, StageSummarize, err)
	}

	summary.UrgencyLevel = strings.ToLower(strings.TrimSpace(summary.UrgencyLevel))
	if _, ok := urgencyLevels[summary.UrgencyLevel]; !ok {
		return Fail[domain.Summary](StageSummarize, KindInvalidOutput,
			fmt.Errorf("%w: unknown urgency level %q", ErrInvalidOutput, summary.UrgencyLevel))
	}
	if strings.TrimSpace(summary.Summary) == "" {
		return Fail[domain.Summary](StageSummarize, KindInvalidOutput, fmt.Errorf("%w: empty summary", ErrInvalidOutput))
	}

	return Ok(summary)
}

func (a *Adapter) wait(ctx context.Context) error {
	if a.limiter == nil {
		return nil
	}
	if err := a.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}
	return nil
}

func failed[T any](ctx context.Context, log *slog.Logger, stage Stage, err error) Result[T] {
	kind := Classify(err)
	if errors.Is(err, context.Canceled) {
		kind = KindPermanent
	}

	log.DebugContext(ctx, "capability call failed",
		slog.String("stage", string(stage)),
		slog.String("kind", string(kind)),
		slog.String("err", err.Error()),
	)

	return Fail[T](stage, kind, err)
}
