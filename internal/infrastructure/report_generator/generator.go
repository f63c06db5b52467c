// Package report_generator renders archived digest copies as PDF documents.
package report_generator

import (
	"fmt"
	"strconv"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/voicecare/voicemail_triage/internal/domain"
)

const timeLayout = "2006-01-02 15:04 MST"

type Generator struct{}

func New() *Generator {
	return &Generator{}
}

// GenerateDigestReport writes one PDF with a header and a row per triage card.
func (g *Generator) GenerateDigestReport(outputPath string, report *domain.DigestReport) error {
	m := maroto.New(config.NewBuilder().
		WithLeftMargin(10).
		WithRightMargin(10).
		WithTopMargin(10).
		Build())

	m.AddRows(header(report)...)
	m.AddRows(tableHeader())

	for _, card := range report.Cards {
		m.AddRows(cardRow(card))
	}

	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("failed to generate pdf: %w", err)
	}

	if err := doc.Save(outputPath); err != nil {
		return fmt.Errorf("failed to save pdf %q: %w", outputPath, err)
	}

	return nil
}

func header(report *domain.DigestReport) []core.Row {
	clinic := "clinic " + strconv.FormatInt(report.Clinic.ID, 10)
	if report.Clinic.Name != "" {
		clinic = report.Clinic.Name
	}

	return []core.Row{
		text.NewRow(12, report.Subject, props.Text{Size: 14, Style: fontstyle.Bold, Align: align.Center}),
		text.NewRow(7, clinic, props.Text{Size: 10, Align: align.Center}),
		text.NewRow(7, "Sent at "+report.SentAt.Format(timeLayout), props.Text{Size: 9, Align: align.Center}),
		text.NewRow(10, fmt.Sprintf("Urgent: %d    Non-urgent: %d", report.UrgentCount, report.NonUrgentCount),
			props.Text{Size: 10, Style: fontstyle.Bold, Top: 2}),
	}
}

func tableHeader() core.Row {
	bold := props.Text{Size: 9, Style: fontstyle.Bold}

	return row.New(8).Add(
		text.NewCol(1, "ID", bold),
		text.NewCol(2, "Urgency", bold),
		text.NewCol(1, "Crisis", bold),
		text.NewCol(1, "Review", bold),
		text.NewCol(7, "Summary", bold),
	)
}

func cardRow(card *domain.TriageCard) core.Row {
	cell := props.Text{Size: 8}

	return row.New(12).Add(
		text.NewCol(1, strconv.FormatInt(card.VoicemailID, 10), cell),
		text.NewCol(2, string(card.Urgency), cell),
		text.NewCol(1, yesNo(card.CrisisFlag), cell),
		text.NewCol(1, yesNo(card.NeedsReview), cell),
		text.NewCol(7, card.Summary, cell),
	)
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
