package domain

import "time"

type Urgency string

const (
	UrgencyUrgent    Urgency = "urgent"
	UrgencyNonUrgent Urgency = "non_urgent"
)

func (u Urgency) Valid() bool {
	return u == UrgencyUrgent || u == UrgencyNonUrgent
}

type TriageCard struct {
	ID           int64      `db:"id"             json:"id"             csv:"id"`
	VoicemailID  int64      `db:"voicemail_id"   json:"voicemail_id"   csv:"voicemail_id"`
	ClinicID     int64      `db:"clinic_id"      json:"clinic_id"      csv:"clinic_id"`
	Summary      string     `db:"summary"        json:"summary"        csv:"summary"`
	Urgency      Urgency    `db:"urgency"        json:"urgency"        csv:"urgency"`
	CrisisFlag   bool       `db:"crisis_flag"    json:"crisis_flag"    csv:"crisis_flag"`
	NeedsReview  bool       `db:"needs_review"   json:"needs_review"   csv:"needs_review"`
	CreatedAt    time.Time  `db:"created_at"     json:"created_at"     csv:"created_at"`
	DigestSentAt *time.Time `db:"digest_sent_at" json:"digest_sent_at" csv:"digest_sent_at,omitempty"`
}

// PatientInfo is the structured caller data extracted from a transcript.
// Every field is optional.
type PatientInfo struct {
	Name       *string `json:"patient_name"`
	DOB        *string `json:"patient_dob"`
	Phone      *string `json:"patient_phone"`
	CallReason *string `json:"call_reason"`
}

// Transcription is the output of the transcribe stage.
type Transcription struct {
	Text       string
	Confidence float64
	Provider   string
}

// Summary is the output of the summarize-and-triage stage.
type Summary struct {
	Summary           string `json:"summary"`
	UrgencyLevel      string `json:"urgency_level"`
	RecommendedAction string `json:"recommended_action"`
	DepartmentRouting string `json:"department_routing"`
}

// Classification is the classifier verdict that becomes a triage card.
type Classification struct {
	Summary    string
	Urgency    Urgency
	CrisisFlag bool
}
