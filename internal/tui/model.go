// Package tui implements the interactive FRED series browser.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fritzprix/fred-mcp/internal/fred"
)

type viewState int

const (
	viewSearch viewState = iota
	viewObservations
)

type model struct {
	client *fred.Client

	view    viewState
	input   textinput.Model
	spinner spinner.Model
	loading bool
	err     error

	query   string
	results []fred.Series
	total   int
	cursor  int

	seriesID     string
	seriesInfo   *fred.Series
	observations *fred.ObservationList

	width  int
	height int
}

func newModel(client *fred.Client) model {
	ti := textinput.New()
	ti.Placeholder = "search economic data series (e.g. gdp, unemployment)"
	ti.Focus()
	ti.CharLimit = 200

	s := spinner.New()
	s.Spinner = spinner.MiniDot
	s.Style = spinnerStyle

	return model{
		client:  client,
		view:    viewSearch,
		input:   ti,
		spinner: s,
		width:   80,
		height:  24,
	}
}

// Run starts the browser and blocks until the user quits.
func Run(client *fred.Client) error {
	p := tea.NewProgram(newModel(client), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case searchDoneMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.query = msg.query
		m.results = msg.list.Series
		m.total = msg.list.Count
		m.cursor = 0
		return m, nil

	case observationsDoneMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.seriesID = msg.id
		m.seriesInfo = msg.info
		m.observations = msg.list
		m.view = viewObservations
		return m, nil
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c always quits, q only outside the text input
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.view {
	case viewObservations:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Back):
			m.view = viewSearch
			return m, nil
		}
		return m, nil

	default:
		if m.input.Focused() {
			switch msg.String() {
			case "enter":
				q := strings.TrimSpace(m.input.Value())
				if q == "" {
					return m, nil
				}
				m.input.Blur()
				m.loading = true
				return m, tea.Batch(searchCmd(m.client, q), m.spinner.Tick)
			case "esc":
				m.input.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}

		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Search):
			m.input.Focus()
			return m, textinput.Blink
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.results)-1 {
				m.cursor++
			}
			return m, nil
		case key.Matches(msg, keys.Enter):
			if len(m.results) == 0 {
				return m, nil
			}
			m.loading = true
			return m, tea.Batch(observationsCmd(m.client, m.results[m.cursor].ID), m.spinner.Tick)
		}
		return m, nil
	}
}

func (m model) View() string {
	var b strings.Builder

	switch m.view {
	case viewObservations:
		b.WriteString(m.observationsView())
	default:
		b.WriteString(m.searchView())
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.err.Error()))
	}
	return b.String()
}

func (m model) searchView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("FRED series browser"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(m.spinner.View())
		b.WriteString(dimStyle.Render(" searching..."))
		b.WriteString("\n")
		return b.String()
	}

	if m.query != "" {
		b.WriteString(dimStyle.Render(fmt.Sprintf("%d matches for %q (showing %d)", m.total, m.query, len(m.results))))
		b.WriteString("\n\n")
	}

	visible := m.height - 10
	if visible < 3 {
		visible = 3
	}
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	for i := start; i < len(m.results) && i < start+visible; i++ {
		s := m.results[i]
		line := fmt.Sprintf("%-16s %s", s.ID, s.Title)
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> "))
			b.WriteString(selectedRowStyle.Render(line))
		} else {
			b.WriteString("  ")
			b.WriteString(normalRowStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("/ search · up/down move · enter observations · q quit"))
	return b.String()
}

func (m model) observationsView() string {
	var b strings.Builder

	header := m.seriesID
	if m.seriesInfo != nil {
		header = fmt.Sprintf("%s (%s)", m.seriesInfo.Title, m.seriesInfo.Units)
	}
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(m.spinner.View())
		b.WriteString(dimStyle.Render(" loading..."))
		return b.String()
	}

	if m.observations == nil || len(m.observations.Observations) == 0 {
		b.WriteString(dimStyle.Render("no observations"))
	} else {
		b.WriteString(dimStyle.Render(fmt.Sprintf("latest %d of %d observations", len(m.observations.Observations), m.observations.Count)))
		b.WriteString("\n\n")
		visible := m.height - 8
		if visible < 3 {
			visible = 3
		}
		for i, o := range m.observations.Observations {
			if i >= visible {
				break
			}
			b.WriteString(normalRowStyle.Render(o.Date))
			b.WriteString("  ")
			b.WriteString(valueStyle.Render(o.Value))
			b.WriteString("\n")
		}
	}

	b.WriteString(helpStyle.Render("esc back · q quit"))
	return b.String()
}
