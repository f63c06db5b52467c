package triage

import "strings"

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityNormal Priority = "normal"
	PriorityLow    Priority = "low"
)

type Intent string

const (
	IntentAppointmentCancel     Intent = "appointment_cancel"
	IntentAppointmentReschedule Intent = "appointment_reschedule"
	IntentAppointmentSchedule   Intent = "appointment_schedule"
	IntentBilling               Intent = "billing"
	IntentPrescriptionRefill    Intent = "prescription_refill"
	IntentUrgentMedical         Intent = "urgent_medical"
	IntentGeneralInquiry        Intent = "general_inquiry"
)

// Routing is where a voicemail should go inside the clinic.
type Routing struct {
	Intent     Intent
	Confidence float64
	Keyword    string
	Department string
	Action     string
	Priority   Priority
}

type intentRule struct {
	intent     Intent
	keywords   []string
	confidence float64
	department string
	action     string
	priority   Priority
}

// Rules are checked in order, first keyword hit wins.
var intentRules = []intentRule{
	{IntentAppointmentCancel, []string{"cancel", "cancellation"}, 0.95, "Front Desk", "Cancel appointment", PriorityNormal},
	{IntentAppointmentReschedule, []string{"reschedule", "move my appointment", "change appointment"}, 0.92, "Front Desk", "Reschedule appointment", PriorityNormal},
	{IntentAppointmentSchedule, []string{"schedule", "book appointment", "make an appointment"}, 0.90, "Front Desk", "Schedule appointment", PriorityNormal},
	{IntentBilling, []string{"bill", "billing", "payment", "invoice", "charge"}, 0.88, "Billing", "Billing follow-up", PriorityLow},
	{IntentPrescriptionRefill, []string{"refill", "prescription", "medication"}, 0.93, "Clinical Staff", "Refill request", PriorityNormal},
	{IntentUrgentMedical, []string{"urgent", "emergency", "chest pain", "shortness of breath"}, 0.97, "Doctor / Nurse", "Immediate callback", PriorityHigh},
}

var generalRouting = Routing{
	Intent:     IntentGeneralInquiry,
	Confidence: 0.5,
	Department: "Front Desk",
	Action:     "General inquiry",
	Priority:   PriorityLow,
}

// Route picks a department by keyword. It is used when the summarizer does
// not return a routing of its own.
func Route(transcript string) Routing {
	text := strings.ToLower(transcript)

	for _, rule := range intentRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(text, keyword) {
				return Routing{
					Intent:     rule.intent,
					Confidence: rule.confidence,
					Keyword:    keyword,
					Department: rule.department,
					Action:     rule.action,
					Priority:   rule.priority,
				}
			}
		}
	}

	return generalRouting
}
