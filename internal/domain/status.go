package domain

import (
	"fmt"
	"strings"
)

type Status string

const (
	StatusReceived     Status = "received"
	StatusQueued       Status = "queued"
	StatusTranscribing Status = "transcribing"
	StatusExtracting   Status = "extracting"
	StatusSummarizing  Status = "summarizing"
	StatusTriaging     Status = "triaging"
	StatusCompleted    Status = "completed"
	StatusFailed       Status = "failed"
	StatusNeedsReview  Status = "needs_review"
)

var allStatuses = []Status{
	StatusReceived,
	StatusQueued,
	StatusTranscribing,
	StatusExtracting,
	StatusSummarizing,
	StatusTriaging,
	StatusCompleted,
	StatusFailed,
	StatusNeedsReview,
}

var statusSet = func() map[Status]struct{} {
	set := make(map[Status]struct{}, len(allStatuses))
	for _, status := range allStatuses {
		set[status] = struct{}{}
	}
	return set
}()

// inProgressStatuses are held by an active claim. A voicemail stuck in one of
// them after a crash is returned to received by the reclaimer.
var inProgressStatuses = []Status{
	StatusQueued,
	StatusTranscribing,
	StatusExtracting,
	StatusSummarizing,
	StatusTriaging,
}

// transitions lists every edge the state machine accepts.
var transitions = map[Status][]Status{
	StatusReceived:     {StatusQueued, StatusFailed, StatusNeedsReview},
	StatusQueued:       {StatusTranscribing, StatusReceived, StatusFailed, StatusNeedsReview},
	StatusTranscribing: {StatusExtracting, StatusReceived, StatusFailed, StatusNeedsReview},
	StatusExtracting:   {StatusSummarizing, StatusReceived, StatusFailed, StatusNeedsReview},
	StatusSummarizing:  {StatusTriaging, StatusReceived, StatusFailed, StatusNeedsReview},
	StatusTriaging:     {StatusCompleted, StatusReceived, StatusFailed, StatusNeedsReview},
	StatusFailed:       {StatusReceived},
	StatusNeedsReview:  {StatusReceived},
}

// AllStatuses returns the ordered list of known statuses.
func AllStatuses() []Status {
	cp := make([]Status, len(allStatuses))
	copy(cp, allStatuses)
	return cp
}

// InProgressStatuses returns the statuses that imply an active claim.
func InProgressStatuses() []Status {
	cp := make([]Status, len(inProgressStatuses))
	copy(cp, inProgressStatuses)
	return cp
}

// ParseStatus converts a string into a known Status.
func ParseStatus(value string) (Status, error) {
	status := Status(strings.ToLower(strings.TrimSpace(value)))
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

func (s Status) Validate() error {
	if _, ok := statusSet[s]; !ok {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, string(s))
	}
	return nil
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed || s == StatusNeedsReview
}

func (s Status) IsInProgress() bool {
	for _, status := range inProgressStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// CanTransition reports whether the lifecycle allows moving from s to next.
func (s Status) CanTransition(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
