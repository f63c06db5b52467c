package anthropic

import (
	"context"
	"fmt"

	"github.com/voicecare/voicemail_triage/internal/capability"
	"github.com/voicecare/voicemail_triage/internal/domain"
	"github.com/voicecare/voicemail_triage/internal/triage"
)

const extractPrompt = `Extract patient information from this healthcare voicemail transcription. Return JSON only.

Transcription: %q

Return exactly this JSON object, using null for anything not stated:
{
  "patient_name": "Full name or null",
  "patient_dob": "Date of birth (MM/DD/YYYY format) or null",
  "patient_phone": "Phone number or null",
  "call_reason": "Brief reason for call or null"
}`

const summarizePrompt = `Analyze this healthcare voicemail for summarization and triage routing.

Transcription: %q

Patient Info:
- Name: %s
- Reason: %s

Return JSON only, in this format:
{
  "summary": "2-3 sentence summary of the call",
  "urgency_level": "low|medium|high|urgent",
  "recommended_action": "What should be done next",
  "department_routing": "Which department should handle this"
}`

const urgencySystem = "You summarize psychiatric voicemails safely."

const urgencyPrompt = `You are assisting a psychiatric clinic.

Analyze the voicemail transcript below.

Return ONLY valid JSON with:
- summary (2-3 sentence concise summary)
- urgency ("urgent" or "non_urgent")

Mark as "urgent" if:
- medication issues
- severe distress
- same-day request
- worsening symptoms
- crisis language

Transcript:
"""%s"""`

func (c *Client) ExtractPatientInfo(ctx context.Context, transcript string) (domain.PatientInfo, error) {
	content, err := c.complete(ctx, request{
		prompt:      fmt.Sprintf(extractPrompt, transcript),
		maxTokens:   200,
		temperature: 0.1,
	})
	if err != nil {
		return domain.PatientInfo{}, err
	}

	var info domain.PatientInfo
	if err := capability.DecodeJSON(content, &info); err != nil {
		return domain.PatientInfo{}, fmt.Errorf("failed to decode patient info: %w", err)
	}

	return info, nil
}

func (c *Client) SummarizeAndTriage(ctx context.Context, transcript string, info domain.PatientInfo) (domain.Summary, error) {
	content, err := c.complete(ctx, request{
		prompt:      fmt.Sprintf(summarizePrompt, transcript, valueOr(info.Name, "Unknown"), valueOr(info.CallReason, "Not specified")),
		maxTokens:   300,
		temperature: 0.2,
	})
	if err != nil {
		return domain.Summary{}, err
	}

	var summary domain.Summary
	if err := capability.DecodeJSON(content, &summary); err != nil {
		return domain.Summary{}, fmt.Errorf("failed to decode summary: %w", err)
	}

	return summary, nil
}

// AssessUrgency asks the model for the urgent/non_urgent verdict used by the
// triage classifier.
func (c *Client) AssessUrgency(ctx context.Context, transcript string) (triage.Assessment, error) {
	content, err := c.complete(ctx, request{
		system:      urgencySystem,
		prompt:      fmt.Sprintf(urgencyPrompt, transcript),
		maxTokens:   300,
		temperature: 0.2,
	})
	if err != nil {
		return triage.Assessment{}, err
	}

	var assessment triage.Assessment
	if err := capability.DecodeJSON(content, &assessment); err != nil {
		return triage.Assessment{}, fmt.Errorf("failed to decode urgency assessment: %w", err)
	}

	return assessment, nil
}

func valueOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}
