package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/soumikb/aquasense/internal/analysis"
	"github.com/soumikb/aquasense/internal/insights"
	"github.com/soumikb/aquasense/internal/router"
	"github.com/soumikb/aquasense/internal/screen"
	"github.com/soumikb/aquasense/internal/screens/analyze"
	"github.com/soumikb/aquasense/internal/screens/history"
	"github.com/soumikb/aquasense/internal/store"
	"github.com/soumikb/aquasense/internal/ui/components"
	"github.com/soumikb/aquasense/internal/ui/theme"
)

const banner = `
   ░ A Q U A S E N S E ░
  ~ ~ ~ ~ ~ ~ ~ ~ ~ ~ ~ ~
   water quality analyzer`

// Deps holds the services the home screen hands to child screens.
type Deps struct {
	Analysis *analysis.Service
	Insights *insights.Service
	Events   store.EventRepo
}

// HomeScreen is the main entry screen of the application.
type HomeScreen struct {
	menu components.Menu
	deps Deps
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	items := []components.MenuItem{
		{Label: "ANALYZE SAMPLE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: analyze.New(deps.Analysis, deps.Insights)}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(deps.Events)}
			}
		}, Disabled: deps.Events == nil},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu: components.NewMenu(items),
		deps: deps,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Align(lipgloss.Center).
		Width(width).
		Render(banner)

	hint := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		Align(lipgloss.Center).
		Width(width).
		Render("Enter the measured parameters of a sample to assess its quality.")

	menu := lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View())

	content := strings.Join([]string{title, "", hint, "", menu}, "\n")
	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
