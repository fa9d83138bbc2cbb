package history

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/soumikb/aquasense/internal/router"
	"github.com/soumikb/aquasense/internal/screen"
	"github.com/soumikb/aquasense/internal/store"
	"github.com/soumikb/aquasense/internal/ui/layout"
	"github.com/soumikb/aquasense/internal/ui/theme"
)

type historyLoadedMsg struct {
	Analyses []store.AnalysisRecord
	Err      error
}

// HistoryScreen displays past sample assessments.
type HistoryScreen struct {
	eventRepo store.EventRepo
	analyses  []store.AnalysisRecord
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		analyses, err := s.eventRepo.RecentAnalyses(context.Background(), store.QueryOpts{Limit: 50})
		return historyLoadedMsg{Analyses: analyses, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.analyses = msg.Analyses
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.analyses)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.analyses) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No samples analyzed yet.")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, rec := range s.analyses {
		dateStr := rec.Timestamp.Format("Jan 02, 2006 15:04")

		probStr := "rules only"
		if rec.Probability != nil {
			probStr = fmt.Sprintf("%.0f%% safe", *rec.Probability*100)
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-10s  %s", prefix, dateStr, rec.Decision, probStr)

		style := lipgloss.NewStyle().Foreground(decisionColor(rec.Decision))
		if i == s.selected {
			style = style.Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			detail := fmt.Sprintf("    pH %.2f  turbidity %.2f  EC %.0f  DO %.2f  TDS %.0f",
				rec.PH, rec.Turbidity, rec.Conductivity, rec.DissolvedOxygen, rec.TDS)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail)))
			b.WriteString("\n")
			if len(rec.Violations) > 0 {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.Error).
						Render("    failed: "+strings.Join(rec.Violations, ", "))))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

func decisionColor(decision string) color.Color {
	switch decision {
	case "safe":
		return theme.Success
	case "unsafe":
		return theme.Error
	case "treatable":
		return theme.Warning
	default:
		return theme.Text
	}
}
