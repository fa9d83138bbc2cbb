package analyze

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/soumikb/aquasense/internal/analysis"
	"github.com/soumikb/aquasense/internal/ui/theme"
)

func (s *AnalyzeScreen) View(width, height int) string {
	var content string
	if s.state == stateResult {
		content = s.viewResult(width)
	} else {
		content = s.viewForm(width)
	}
	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Center, content)
}

func (s *AnalyzeScreen) viewForm(width int) string {
	var b strings.Builder

	for i := range s.fields {
		label := fieldLabels[i]
		labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim).Width(26)
		if i == s.focused {
			labelStyle = labelStyle.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(labelStyle.Render(label))
		b.WriteString(s.fields[i].View())
		if i == fieldTDS && !s.tdsEdited {
			b.WriteString(theme.Hint.Render("  auto from conductivity"))
		}
		b.WriteString("\n")
	}

	card := theme.Card.Render(b.String())

	parts := []string{card}
	if s.formErr != "" {
		parts = append(parts, lipgloss.NewStyle().Foreground(theme.Error).Render("  "+s.formErr))
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(parts, "\n"))
}

func (s *AnalyzeScreen) viewResult(width int) string {
	if s.assessErr != "" {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render("Assessment failed: "+s.assessErr))
	}

	a := s.assessment
	var b strings.Builder

	b.WriteString(decisionStyle(a.Decision).Render(a.Decision.Label()))
	b.WriteString("\n\n")

	if a.Verdict.Safe {
		b.WriteString(theme.Body.Render("All threshold rules passed."))
	} else {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).
			Render("Failed thresholds: " + strings.Join(a.Verdict.Violations, ", ")))
	}
	b.WriteString("\n")

	switch {
	case a.ModelUsed && a.Probability != nil:
		b.WriteString(theme.Body.Render(fmt.Sprintf("Model probability of safety: %.1f%%", *a.Probability*100)))
	case !a.Verdict.Safe:
		b.WriteString(theme.Hint.Render("Model skipped: rule failures are decisive."))
	default:
		b.WriteString(theme.Hint.Render("No trained model available; verdict is rules-only."))
	}
	b.WriteString("\n")

	result := theme.Card.Render(b.String())

	sections := []string{result}
	if advisory := s.viewAdvisory(); advisory != "" {
		sections = append(sections, advisory)
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(sections, "\n"))
}

func (s *AnalyzeScreen) viewAdvisory() string {
	if s.advisor == nil {
		return ""
	}
	if s.reportWait {
		return theme.Hint.Render("  Generating advisory...")
	}
	if s.reportErr != "" {
		return lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("  Advisory unavailable: " + s.reportErr)
	}
	if s.report == nil {
		return ""
	}

	var b strings.Builder
	r := s.report

	section := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)

	b.WriteString(section.Render("Classification"))
	b.WriteString("\n" + theme.Body.Render(r.Classification) + "\n\n")

	writeList := func(title string, items []string) {
		b.WriteString(section.Render(title) + "\n")
		if len(items) == 0 {
			b.WriteString(theme.Hint.Render("  none") + "\n")
		}
		for _, it := range items {
			b.WriteString(theme.Body.Render("  • "+it) + "\n")
		}
		b.WriteString("\n")
	}

	writeList("Key issues", r.KeyIssues)
	writeList("Recommended treatments", r.Treatments)
	writeList("Suitable uses after treatment", r.PostTreatmentUses)
	writeList("Health considerations", r.HealthConsiderations)

	b.WriteString(section.Render("Conclusion"))
	b.WriteString("\n" + theme.Body.Render(r.Conclusion) + "\n")

	return theme.Card.Render(b.String())
}

func decisionStyle(d analysis.Decision) lipgloss.Style {
	switch d {
	case analysis.DecisionSafe:
		return theme.Safe
	case analysis.DecisionUnsafe:
		return theme.Unsafe
	case analysis.DecisionTreatable:
		return theme.Treatable
	}
	return theme.Body
}
