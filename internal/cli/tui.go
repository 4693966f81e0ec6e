package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/troubleduxj/flowlayout/pkg/layout"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// AlgorithmListModel - Interactive algorithm selection
// =============================================================================

// algorithmChoice pairs an algorithm with its one-line description for the list.
type algorithmChoice struct {
	Algorithm   layout.Algorithm
	Description string
}

// algorithmChoices lists the selectable algorithms in display order.
// AlgorithmAuto is excluded; the picker replaces it.
var algorithmChoices = []algorithmChoice{
	{layout.AlgorithmHierarchical, "ranks by depth, minimizes crossings"},
	{layout.AlgorithmTree, "hierarchical with single-parent ordering"},
	{layout.AlgorithmLayered, "hierarchical per component, tiled"},
	{layout.AlgorithmForceDirected, "repulsion/spring simulation"},
	{layout.AlgorithmOrganic, "force-directed with clustered components"},
	{layout.AlgorithmCircular, "single ring in BFS order"},
	{layout.AlgorithmGrid, "near-square grid, ignores connections"},
}

// AlgorithmListModel is the bubbletea model for interactive algorithm selection.
type AlgorithmListModel struct {
	Choices     []algorithmChoice
	Recommended layout.Algorithm
	Reason      string
	Cursor      int
	Selected    *layout.Algorithm
}

// NewAlgorithmListModel creates a picker with the recommendation pre-selected.
func NewAlgorithmListModel(rec layout.Recommendation) AlgorithmListModel {
	m := AlgorithmListModel{
		Choices:     algorithmChoices,
		Recommended: rec.Algorithm,
		Reason:      rec.Reason,
	}
	for i, choice := range m.Choices {
		if choice.Algorithm == rec.Algorithm {
			m.Cursor = i
			break
		}
	}
	return m
}

func (m AlgorithmListModel) Init() tea.Cmd {
	return nil
}

func (m AlgorithmListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Choices)-1 {
				m.Cursor++
			}
		case "enter":
			algorithm := m.Choices[m.Cursor].Algorithm
			m.Selected = &algorithm
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m AlgorithmListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Layout Algorithm"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, choice := range m.Choices {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		marker := " "
		if choice.Algorithm == m.Recommended {
			marker = StyleSuccess.Render("*")
		}

		line := fmt.Sprintf("%s%s %-14s  %s", cursor, marker,
			choice.Algorithm, listDimStyle.Render(choice.Description))

		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s recommended", StyleSuccess.Render("*")))
	if m.Reason != "" {
		b.WriteString("\n")
		b.WriteString(listDimStyle.Render("  " + m.Reason))
	}
	b.WriteString("\n")

	return b.String()
}

// runAlgorithmPicker shows the picker and returns the chosen algorithm.
// ok is false when the picker was dismissed without a selection.
func runAlgorithmPicker(rec layout.Recommendation) (layout.Algorithm, bool, error) {
	program := tea.NewProgram(NewAlgorithmListModel(rec))
	final, err := program.Run()
	if err != nil {
		return layout.AlgorithmAuto, false, err
	}
	m, ok := final.(AlgorithmListModel)
	if !ok || m.Selected == nil {
		return layout.AlgorithmAuto, false, nil
	}
	return *m.Selected, true, nil
}
