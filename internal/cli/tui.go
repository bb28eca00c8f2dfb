package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/transitrank/pkg/transit"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// StopListModel - Interactive stop selection
// =============================================================================

// StopListModel is the bubbletea model for picking one stop from the
// network, used by the path command when endpoints are not given as
// arguments.
type StopListModel struct {
	Title  string
	Stops  []transit.Stop
	Cursor int
	// Selected is the chosen node index, or -1 if the selection was
	// cancelled.
	Selected int
	Height   int
	Offset   int
}

// NewStopListModel creates a stop list with the given prompt title.
func NewStopListModel(title string, stops []transit.Stop) StopListModel {
	return StopListModel{
		Title:    title,
		Stops:    stops,
		Selected: -1,
		Height:   15,
	}
}

func (m StopListModel) Init() tea.Cmd {
	return nil
}

func (m StopListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Stops)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			m.Selected = m.Cursor
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m StopListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Stops) {
		end = len(m.Stops)
	}

	for i := m.Offset; i < end; i++ {
		s := m.Stops[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		name := s.Name
		if name == "" {
			name = s.ID
		}
		routes := ""
		if len(s.Routes) > 0 {
			routes = listDimStyle.Render("  " + strings.Join(s.Routes, " "))
		}

		line := fmt.Sprintf("%s%-10s %s%s", cursor, s.ID, name, routes)
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Stops))))

	return b.String()
}

// selectStop runs the interactive stop picker and returns the chosen
// node index.
func selectStop(title string, g *transit.Graph) (int, error) {
	m := NewStopListModel(title, g.Stops())
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return 0, fmt.Errorf("stop selection: %w", err)
	}
	result, ok := final.(StopListModel)
	if !ok || result.Selected < 0 {
		return 0, fmt.Errorf("no stop selected")
	}
	return result.Selected, nil
}
