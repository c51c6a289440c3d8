package cli

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/findstar/internal/model"
)

var docStyle = lipgloss.NewStyle().Margin(1, 2)

type starItem struct {
	star model.Star
}

func (i starItem) Title() string {
	return i.star.FullName
}

func (i starItem) Description() string {
	if i.star.Description == "" {
		return i.star.HTMLURL
	}

	return i.star.Description
}

func (i starItem) FilterValue() string {
	return i.star.FullName
}

// StarListModel is the interactive browser over a user's cached stars.
type StarListModel struct {
	list     list.Model
	selected *model.Star
	quitting bool
}

// NewStarList builds the list model from cached stars.
func NewStarList(stars []model.Star) StarListModel {
	items := make([]list.Item, 0, len(stars))
	for _, star := range stars {
		items = append(items, starItem{star: star})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Starred repositories"

	return StarListModel{list: l}
}

func (m StarListModel) Init() tea.Cmd {
	return nil
}

func (m StarListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true

			return m, tea.Quit

		case "enter":
			if i, ok := m.list.SelectedItem().(starItem); ok {
				m.selected = &i.star
			}

			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m StarListModel) View() string {
	if m.quitting {
		return ""
	}

	return docStyle.Render(m.list.View())
}

// SelectedStar returns the star chosen with enter, or nil when the browser
// was dismissed.
func (m StarListModel) SelectedStar() *model.Star {
	return m.selected
}
