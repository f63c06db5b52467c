package domain

import "time"

type DigestStatus string

const (
	DigestStatusSuccess DigestStatus = "success"
	DigestStatusFailed  DigestStatus = "failed"
)

// DigestLog is an append-only record of one digest send attempt.
type DigestLog struct {
	ID              int64        `db:"id"               json:"id"`
	ClinicID        int64        `db:"clinic_id"        json:"clinic_id"`
	SentAt          time.Time    `db:"sent_at"          json:"sent_at"`
	TotalVoicemails int          `db:"total_voicemails" json:"total_voicemails"`
	UrgentCount     int          `db:"urgent_count"     json:"urgent_count"`
	NonUrgentCount  int          `db:"non_urgent_count" json:"non_urgent_count"`
	Status          DigestStatus `db:"status"           json:"status"`
	ErrorMessage    *string      `db:"error_message"    json:"error_message,omitempty"`
}

type Clinic struct {
	ID               int64   `db:"id"                 json:"id"`
	Name             string  `db:"name"               json:"name"`
	Email            *string `db:"email"              json:"email,omitempty"`
	IngestEmailToken string  `db:"ingest_email_token" json:"-"`
	IsActive         bool    `db:"is_active"          json:"is_active"`
}

// NotificationAddress returns the clinic email or an empty string.
func (c *Clinic) NotificationAddress() string {
	if c.Email == nil {
		return ""
	}
	return *c.Email
}

// Transition is one persisted entry of the status transition log.
type Transition struct {
	VoicemailID int64     `db:"voicemail_id" json:"-"`
	From        Status    `db:"from_status"  json:"from"`
	To          Status    `db:"to_status"    json:"to"`
	Reason      *string   `db:"reason"       json:"reason,omitempty"`
	CreatedAt   time.Time `db:"created_at"   json:"created_at"`
}

// DigestReport is the archived copy of one delivered digest.
type DigestReport struct {
	Clinic         *Clinic
	SentAt         time.Time
	Subject        string
	UrgentCount    int
	NonUrgentCount int
	Cards          []*TriageCard
}
