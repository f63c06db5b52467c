// Package triage decides how urgent a voicemail is.
package triage

import (
	"context"
	"fmt"
	"strings"

	"github.com/voicecare/voicemail_triage/internal/capability"
	"github.com/voicecare/voicemail_triage/internal/domain"
)

var crisisKeywords = []string{
	"suicide",
	"kill myself",
	"end my life",
	"can't go on",
	"cant go on",
	"overdose",
	"self harm",
	"self-harm",
	"hurt myself",
	"hurting myself",
	"panic attack emergency",
}

// Assessment is the raw model verdict before the safety override.
type Assessment struct {
	Summary string `json:"summary"`
	Urgency string `json:"urgency"`
}

type UrgencyModel interface {
	AssessUrgency(ctx context.Context, transcript string) (Assessment, error)
}

type Classifier struct {
	model UrgencyModel
}

func NewClassifier(model UrgencyModel) *Classifier {
	return &Classifier{model: model}
}

// Classify combines keyword crisis detection with the model urgency. A crisis
// always yields urgent. Model output that cannot be mapped onto an urgency
// returns an error wrapping capability.ErrInvalidOutput and no verdict.
func (c *Classifier) Classify(ctx context.Context, transcript string) (domain.Classification, error) {
	crisis := DetectCrisis(transcript)

	assessment, err := c.model.AssessUrgency(ctx, transcript)
	if err != nil {
		return domain.Classification{}, fmt.Errorf("failed to assess urgency: %w", err)
	}

	urgency, err := parseUrgency(assessment.Urgency)
	if err != nil {
		return domain.Classification{}, err
	}

	summary := strings.TrimSpace(assessment.Summary)
	if summary == "" {
		return domain.Classification{}, fmt.Errorf("%w: empty summary", capability.ErrInvalidOutput)
	}

	if crisis {
		urgency = domain.UrgencyUrgent
	}

	return domain.Classification{
		Summary:    summary,
		Urgency:    urgency,
		CrisisFlag: crisis,
	}, nil
}

// DetectCrisis reports whether transcript contains crisis language.
func DetectCrisis(transcript string) bool {
	lower := strings.ToLower(strings.ReplaceAll(transcript, "’", "'"))
	for _, keyword := range crisisKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

func parseUrgency(value string) (domain.Urgency, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	normalized = strings.NewReplacer("-", "_", " ", "_").Replace(normalized)

	switch domain.Urgency(normalized) {
	case domain.UrgencyUrgent:
		return domain.UrgencyUrgent, nil
	case domain.UrgencyNonUrgent:
		return domain.UrgencyNonUrgent, nil
	default:
		return "", fmt.Errorf("%w: unknown urgency %q", capability.ErrInvalidOutput, value)
	}
}
