package analyze

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/soumikb/aquasense/internal/analysis"
	"github.com/soumikb/aquasense/internal/insights"
	"github.com/soumikb/aquasense/internal/router"
	"github.com/soumikb/aquasense/internal/screen"
	"github.com/soumikb/aquasense/internal/ui/components"
	"github.com/soumikb/aquasense/internal/ui/layout"
	"github.com/soumikb/aquasense/internal/water"
)

type state int

const (
	stateForm state = iota
	stateResult
)

// field indices in entry order
const (
	fieldPH = iota
	fieldTurbidity
	fieldConductivity
	fieldDO
	fieldTDS
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"pH",
	"Turbidity (NTU)",
	"Conductivity (µS/cm)",
	"Dissolved oxygen (mg/L)",
	"TDS (mg/L)",
}

// AnalyzeScreen collects the five parameters of a sample, runs the
// assessment, and shows the decision with an optional LLM advisory.
type AnalyzeScreen struct {
	svc       *analysis.Service
	advisor   *insights.Service
	state     state
	fields    [fieldCount]components.TextInput
	focused   int
	formErr   string
	tdsEdited bool

	assessment *analysis.Assessment
	assessErr  string
	report     *insights.Report
	reportErr  string
	reportWait bool
}

var _ screen.Screen = (*AnalyzeScreen)(nil)
var _ screen.KeyHintProvider = (*AnalyzeScreen)(nil)

// New creates a new AnalyzeScreen. advisor may be nil, in which case no
// advisory is generated.
func New(svc *analysis.Service, advisor *insights.Service) *AnalyzeScreen {
	s := &AnalyzeScreen{svc: svc, advisor: advisor}
	for i := range s.fields {
		s.fields[i] = components.NewTextInput(fieldLabels[i], true, 12)
	}
	return s
}

func (s *AnalyzeScreen) Init() tea.Cmd {
	return s.fields[s.focused].Init()
}

func (s *AnalyzeScreen) Title() string {
	return "Analyze Sample"
}

func (s *AnalyzeScreen) KeyHints() []layout.KeyHint {
	if s.state == stateResult {
		return []layout.KeyHint{
			{Key: "N", Description: "New sample"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓/Tab", Description: "Field"},
		{Key: "Enter", Description: "Next / Submit"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *AnalyzeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case assessedMsg:
		s.state = stateResult
		if msg.Err != nil {
			s.assessErr = msg.Err.Error()
			return s, nil
		}
		s.assessment = msg.Assessment
		if s.advisor != nil {
			s.reportWait = true
			s.advisor.RequestReport(context.Background(), insights.ReportInput{
				Assessment: *msg.Assessment,
				Thresholds: s.svc.Thresholds(),
			})
			return s, advisoryTick()
		}
		return s, nil

	case advisoryTickMsg:
		if !s.reportWait {
			return s, nil
		}
		report, done, err := s.advisor.ConsumeReport()
		if !done {
			return s, advisoryTick()
		}
		s.reportWait = false
		if err != nil {
			s.reportErr = err.Error()
		} else {
			s.report = report
		}
		return s, nil

	case tea.KeyMsg:
		if s.state == stateResult {
			return s.updateResult(msg)
		}
		return s.updateForm(msg)
	}

	return s, nil
}

func (s *AnalyzeScreen) updateResult(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "n", "N":
		fresh := New(s.svc, s.advisor)
		return fresh, fresh.Init()
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *AnalyzeScreen) updateForm(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "shift+tab":
		return s, s.focusField(s.focused - 1)
	case "down", "tab":
		return s, s.focusField(s.focused + 1)
	case "enter":
		if s.focused < fieldCount-1 {
			return s, s.focusField(s.focused + 1)
		}
		return s.submit()
	}

	var cmd tea.Cmd
	s.fields[s.focused], cmd = s.fields[s.focused].Update(msg)

	switch s.focused {
	case fieldTDS:
		s.tdsEdited = true
	case fieldConductivity:
		s.syncTDS()
	}

	return s, cmd
}

// syncTDS mirrors the conductivity reading into the TDS field until the
// user edits TDS directly. Sensors commonly report only conductivity, and
// TDS tracks it by a fixed conversion factor.
func (s *AnalyzeScreen) syncTDS() {
	if s.tdsEdited {
		return
	}
	ec, err := s.fields[fieldConductivity].DecimalValue()
	if err != nil {
		s.fields[fieldTDS].SetValue("")
		return
	}
	s.fields[fieldTDS].SetValue(fmt.Sprintf("%.1f", water.TDSFromConductivity(ec)))
}

func (s *AnalyzeScreen) focusField(i int) tea.Cmd {
	if i < 0 || i >= fieldCount {
		return nil
	}
	s.fields[s.focused].Model.Blur()
	s.focused = i
	return s.fields[i].Model.Focus()
}

func (s *AnalyzeScreen) submit() (screen.Screen, tea.Cmd) {
	var vals [fieldCount]float64
	ok := true
	for i := range s.fields {
		v, err := s.fields[i].DecimalValue()
		vals[i] = v
		s.fields[i].Submit(err == nil)
		if err != nil {
			ok = false
		}
	}
	if !ok {
		s.formErr = "Every parameter needs a numeric value."
		return s, nil
	}
	s.formErr = ""

	m := water.Measurement{
		PH:              vals[fieldPH],
		Turbidity:       vals[fieldTurbidity],
		Conductivity:    vals[fieldConductivity],
		DissolvedOxygen: vals[fieldDO],
		TDS:             vals[fieldTDS],
	}

	return s, func() tea.Msg {
		a, err := s.svc.Assess(context.Background(), m)
		return assessedMsg{Assessment: a, Err: err}
	}
}
