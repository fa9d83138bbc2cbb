package analyze

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/soumikb/aquasense/internal/analysis"
)

// assessedMsg carries the result of running an assessment.
type assessedMsg struct {
	Assessment *analysis.Assessment
	Err        error
}

// advisoryTickMsg drives polling for the async advisory report.
type advisoryTickMsg struct{}

func advisoryTick() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(time.Time) tea.Msg {
		return advisoryTickMsg{}
	})
}
