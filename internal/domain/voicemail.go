package domain

import "time"

type Source string

const (
	SourceUpload Source = "upload"
	SourceEmail  Source = "email"
	SourceTest   Source = "test"
)

type Voicemail struct {
	ID            int64      `db:"id"             json:"id"`
	ClinicID      int64      `db:"clinic_id"      json:"clinic_id"`
	Filename      string     `db:"filename"       json:"filename"`
	AudioKey      string     `db:"audio_key"      json:"audio_key"`
	AudioDuration *int       `db:"audio_duration" json:"audio_duration,omitempty"`
	Source        Source     `db:"source"         json:"source"`
	ReceivedAt    time.Time  `db:"received_at"    json:"received_at"`
	Status        Status     `db:"status"         json:"status"`
	StatusAt      time.Time  `db:"status_changed_at" json:"status_changed_at"`
	ClaimedBy     *string    `db:"claimed_by"     json:"claimed_by,omitempty"`
	RetryCount    int        `db:"retry_count"    json:"retry_count"`
	LastErrorAt   *time.Time `db:"last_error_at"  json:"last_error_at,omitempty"`
	FailureReason *string    `db:"failure_reason" json:"failure_reason,omitempty"`

	Transcript              *string    `db:"transcript"               json:"transcript,omitempty"`
	TranscriptionConfidence *float64   `db:"transcription_confidence" json:"transcription_confidence,omitempty"`
	TranscriptionProvider   *string    `db:"transcription_provider"   json:"transcription_provider,omitempty"`
	TranscribedAt           *time.Time `db:"transcribed_at"           json:"transcribed_at,omitempty"`

	PatientName  *string    `db:"patient_name"  json:"patient_name,omitempty"`
	PatientDOB   *string    `db:"patient_dob"   json:"patient_dob,omitempty"`
	PatientPhone *string    `db:"patient_phone" json:"patient_phone,omitempty"`
	CallReason   *string    `db:"call_reason"   json:"call_reason,omitempty"`
	ExtractedAt  *time.Time `db:"extracted_at"  json:"extracted_at,omitempty"`

	Summary           *string    `db:"summary"            json:"summary,omitempty"`
	TriageCategory    *string    `db:"triage_category"    json:"triage_category,omitempty"`
	UrgencyLevel      *string    `db:"urgency_level"      json:"urgency_level,omitempty"`
	RecommendedAction *string    `db:"recommended_action" json:"recommended_action,omitempty"`
	SummarizedAt      *time.Time `db:"summarized_at"      json:"summarized_at,omitempty"`
}

// NewVoicemail builds a record ready to be inserted in the received state.
func NewVoicemail(clinicID int64, filename, audioKey string, source Source, now time.Time) *Voicemail {
	return &Voicemail{
		ClinicID:   clinicID,
		Filename:   filename,
		AudioKey:   audioKey,
		Source:     source,
		ReceivedAt: now,
		Status:     StatusReceived,
		StatusAt:   now,
	}
}

func (v *Voicemail) IsTranscribed() bool {
	return v.TranscribedAt != nil && v.Transcript != nil
}

func (v *Voicemail) IsExtracted() bool {
	return v.ExtractedAt != nil
}

func (v *Voicemail) IsSummarized() bool {
	return v.SummarizedAt != nil
}

// TranscriptText returns the transcript or an empty string.
func (v *Voicemail) TranscriptText() string {
	if v.Transcript == nil {
		return ""
	}
	return *v.Transcript
}

// Confidence returns the transcription confidence, zero when unknown.
func (v *Voicemail) Confidence() float64 {
	if v.TranscriptionConfidence == nil {
		return 0
	}
	return *v.TranscriptionConfidence
}

func (v *Voicemail) PatientInfo() PatientInfo {
	return PatientInfo{
		Name:       v.PatientName,
		DOB:        v.PatientDOB,
		Phone:      v.PatientPhone,
		CallReason: v.CallReason,
	}
}
