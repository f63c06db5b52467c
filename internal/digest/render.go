package digest

import (
	"fmt"
	"sort"
	"strings"

	"github.com/voicecare/voicemail_triage/internal/domain"
)

const (
	productName  = "VoiceCare Pro"
	sectionWidth = 30
)

type Message struct {
	Subject        string
	Body           string
	Total          int
	UrgentCount    int
	NonUrgentCount int
}

// Render builds the plain-text digest. Urgent cards come first, each section
// in card id order, so the same cards always render the same body.
func Render(cards []*domain.TriageCard) Message {
	sorted := make([]*domain.TriageCard, len(cards))
	copy(sorted, cards)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	var urgent, nonUrgent []*domain.TriageCard
	for _, card := range sorted {
		if card.Urgency == domain.UrgencyUrgent {
			urgent = append(urgent, card)
		} else {
			nonUrgent = append(nonUrgent, card)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s - Daily Voicemail Summary\n\n", productName)
	fmt.Fprintf(&b, "Total New Voicemails: %d\n\n", len(sorted))

	writeSection(&b, "URGENT", urgent)
	writeSection(&b, "NON-URGENT", nonUrgent)

	return Message{
		Subject:        fmt.Sprintf("%s - %d New Voicemails", productName, len(sorted)),
		Body:           b.String(),
		Total:          len(sorted),
		UrgentCount:    len(urgent),
		NonUrgentCount: len(nonUrgent),
	}
}

func writeSection(b *strings.Builder, title string, cards []*domain.TriageCard) {
	if len(cards) == 0 {
		return
	}

	fmt.Fprintf(b, "%s (%d)\n", title, len(cards))
	b.WriteString(strings.Repeat("-", sectionWidth))
	b.WriteString("\n")

	for _, card := range cards {
		summary := card.Summary
		if card.CrisisFlag {
			summary = "[CRISIS] " + summary
		}
		fmt.Fprintf(b, "- %s\n\n", summary)
	}
}
