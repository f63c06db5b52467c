package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/voicecare/voicemail_triage/internal/capability"
	"github.com/voicecare/voicemail_triage/internal/domain"
	"github.com/voicecare/voicemail_triage/internal/metrics"
	"github.com/voicecare/voicemail_triage/internal/statemachine"
	"github.com/voicecare/voicemail_triage/internal/triage"
)

const DefaultConfidenceThreshold = 0.75

// Processor drives one claimed voicemail from queued to a terminal status.
// Each stage output is committed together with the transition that follows
// it, so a restarted voicemail skips stages that already ran.
type Processor struct {
	log        *slog.Logger
	machine    StateMachine
	stages     Stages
	classifier Classifier
	cards      TriageCardCreator
	retrier    *statemachine.Retrier
	metrics    *metrics.Metrics
	threshold  float64
	now        func() time.Time
}

func NewProcessor(
	log *slog.Logger,
	machine StateMachine,
	stages Stages,
	classifier Classifier,
	cards TriageCardCreator,
	retrier *statemachine.Retrier,
	metrics *metrics.Metrics,
	threshold float64,
) *Processor {
	return &Processor{
		log:        log,
		machine:    machine,
		stages:     stages,
		classifier: classifier,
		cards:      cards,
		retrier:    retrier,
		metrics:    metrics,
		threshold:  threshold,
		now:        time.Now,
	}
}

// run carries per-voicemail state between stages.
type run struct {
	log *slog.Logger
	vm  *domain.Voicemail
	// degraded is set when a stage produced unusable output; the voicemail
	// still runs to triage but ends in needs_review.
	degraded bool
}

// Process returns an error only when a transition could not be persisted.
// Stage failures are recorded on the voicemail instead.
func (p *Processor) Process(ctx context.Context, vm *domain.Voicemail) error {
	r := &run{
		log: p.log.With(slog.Int64("voicemail_id", vm.ID), slog.Int64("clinic_id", vm.ClinicID)),
		vm:  vm,
	}

	for !vm.Status.IsTerminal() {
		var err error

		switch vm.Status {
		case domain.StatusQueued:
			err = p.machine.Transition(ctx, vm, domain.StatusTranscribing)
		case domain.StatusTranscribing:
			err = p.transcribe(ctx, r)
		case domain.StatusExtracting:
			err = p.extract(ctx, r)
		case domain.StatusSummarizing:
			err = p.summarize(ctx, r)
		case domain.StatusTriaging:
			err = p.triage(ctx, r)
		default:
			return fmt.Errorf("%w: cannot process voicemail in %s", domain.ErrInvalidTransition, vm.Status)
		}

		if err != nil {
			return err
		}
	}

	return nil
}

func (p *Processor) transcribe(ctx context.Context, r *run) error {
	if r.vm.IsTranscribed() {
		return p.machine.Transition(ctx, r.vm, domain.StatusExtracting)
	}

	res, attempts := statemachine.Run(ctx, p.retrier, capability.StageTranscribe,
		func(ctx context.Context) capability.Result[domain.Transcription] {
			return p.stages.Transcribe(ctx, r.vm.AudioKey)
		})

	if !res.IsOk() {
		return p.stageFailed(ctx, r, res.Err, attempts)
	}

	now := p.now().UTC()
	transcription := res.Value

	r.log.InfoContext(ctx, "voicemail transcribed",
		slog.Float64("confidence", transcription.Confidence),
		slog.Int("attempts", attempts),
	)

	return p.machine.Transition(ctx, r.vm, domain.StatusExtracting,
		addRetries(attempts),
		func(vm *domain.Voicemail) {
			vm.Transcript = &transcription.Text
			vm.TranscriptionConfidence = &transcription.Confidence
			vm.TranscriptionProvider = &transcription.Provider
			vm.TranscribedAt = &now
		},
	)
}

func (p *Processor) extract(ctx context.Context, r *run) error {
	if r.vm.IsExtracted() {
		return p.machine.Transition(ctx, r.vm, domain.StatusSummarizing)
	}

	res, attempts := statemachine.Run(ctx, p.retrier, capability.StageExtract,
		func(ctx context.Context) capability.Result[domain.PatientInfo] {
			return p.stages.ExtractPatientInfo(ctx, r.vm.TranscriptText())
		})

	if !res.IsOk() {
		if res.Kind() != capability.KindInvalidOutput {
			return p.stageFailed(ctx, r, res.Err, attempts)
		}

		r.degraded = true
		r.log.WarnContext(ctx, "patient info unusable, continuing", slog.String("err", res.Err.Error()))

		return p.machine.Transition(ctx, r.vm, domain.StatusSummarizing, addRetries(attempts))
	}

	now := p.now().UTC()
	info := res.Value

	return p.machine.Transition(ctx, r.vm, domain.StatusSummarizing,
		addRetries(attempts),
		func(vm *domain.Voicemail) {
			vm.PatientName = info.Name
			vm.PatientDOB = info.DOB
			vm.PatientPhone = info.Phone
			vm.CallReason = info.CallReason
			vm.ExtractedAt = &now
		},
	)
}

func (p *Processor) summarize(ctx context.Context, r *run) error {
	if r.vm.IsSummarized() {
		return p.machine.Transition(ctx, r.vm, domain.StatusTriaging)
	}

	transcript := r.vm.TranscriptText()
	routing := triage.Route(transcript)

	res, attempts := statemachine.Run(ctx, p.retrier, capability.StageSummarize,
		func(ctx context.Context) capability.Result[domain.Summary] {
			return p.stages.SummarizeAndTriage(ctx, transcript, r.vm.PatientInfo())
		})

	if !res.IsOk() {
		if res.Kind() != capability.KindInvalidOutput {
			return p.stageFailed(ctx, r, res.Err, attempts)
		}

		r.degraded = true
		r.log.WarnContext(ctx, "summary unusable, continuing", slog.String("err", res.Err.Error()))

		return p.machine.Transition(ctx, r.vm, domain.StatusTriaging,
			addRetries(attempts),
			func(vm *domain.Voicemail) {
				vm.TriageCategory = &routing.Department
			},
		)
	}

	now := p.now().UTC()
	summary := res.Value

	category := summary.DepartmentRouting
	if category == "" {
		category = routing.Department
	}

	return p.machine.Transition(ctx, r.vm, domain.StatusTriaging,
		addRetries(attempts),
		func(vm *domain.Voicemail) {
			vm.Summary = &summary.Summary
			vm.UrgencyLevel = &summary.UrgencyLevel
			vm.RecommendedAction = &summary.RecommendedAction
			vm.TriageCategory = &category
			vm.SummarizedAt = &now
		},
	)
}

func (p *Processor) triage(ctx context.Context, r *run) error {
	transcript := r.vm.TranscriptText()

	res, attempts := statemachine.Run(ctx, p.retrier, capability.StageTriage,
		func(ctx context.Context) capability.Result[domain.Classification] {
			classification, err := p.classifier.Classify(ctx, transcript)
			if err != nil {
				return capability.Fail[domain.Classification](capability.StageTriage, capability.Classify(err), err)
			}
			return capability.Ok(classification)
		})

	if !res.IsOk() {
		if err := ctx.Err(); err != nil {
			return err
		}

		// no card without a verdict; a person has to look at it
		r.log.WarnContext(ctx, "classification failed", slog.String("err", res.Err.Error()))
		return p.machine.Transition(ctx, r.vm, domain.StatusNeedsReview, addRetries(attempts))
	}

	classification := res.Value
	terminal := p.terminalStatus(r)

	card := &domain.TriageCard{
		VoicemailID: r.vm.ID,
		ClinicID:    r.vm.ClinicID,
		Summary:     classification.Summary,
		Urgency:     classification.Urgency,
		CrisisFlag:  classification.CrisisFlag,
		NeedsReview: classification.CrisisFlag || terminal == domain.StatusNeedsReview,
		CreatedAt:   p.now().UTC(),
	}

	var created bool
	err := p.machine.Atomically(ctx, func(ctx context.Context) error {
		var err error
		created, err = p.cards.CreateTriageCard(ctx, card)
		if err != nil {
			return fmt.Errorf("failed to create triage card: %w", err)
		}

		return p.machine.Transition(ctx, r.vm, terminal, addRetries(attempts))
	})
	if err != nil {
		return err
	}

	if created {
		p.metrics.CardCreated(string(card.Urgency))
	}

	if classification.CrisisFlag {
		r.log.WarnContext(ctx, "crisis language detected", slog.Int64("triage_card_id", card.ID))
	}

	return nil
}

func (p *Processor) terminalStatus(r *run) domain.Status {
	if r.degraded || r.vm.Confidence() < p.threshold {
		return domain.StatusNeedsReview
	}
	return domain.StatusCompleted
}

// stageFailed records a stage that gave up. Unusable output goes to review,
// everything else to failed with the captured error.
func (p *Processor) stageFailed(ctx context.Context, r *run, stageErr *capability.Error, attempts int) error {
	// shutting down: leave the status for the reclaimer
	if err := ctx.Err(); err != nil {
		return err
	}

	if stageErr.Kind == capability.KindInvalidOutput {
		r.log.WarnContext(ctx, "stage returned unusable output",
			slog.String("stage", string(stageErr.Stage)),
			slog.String("err", stageErr.Error()),
		)
		return p.machine.Transition(ctx, r.vm, domain.StatusNeedsReview, addRetries(attempts))
	}

	return p.machine.Fail(ctx, r.vm, stageErr.Error(), addRetries(attempts))
}

func addRetries(attempts int) statemachine.Change {
	return func(vm *domain.Voicemail) {
		if attempts > 1 {
			vm.RetryCount += attempts - 1
		}
	}
}
