package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fritzprix/fred-mcp/internal/fred"
)

func searchResults() searchDoneMsg {
	return searchDoneMsg{
		query: "unemployment",
		list: &fred.SeriesList{
			Count: 42,
			Series: []fred.Series{
				{ID: "UNRATE", Title: "Unemployment Rate"},
				{ID: "U6RATE", Title: "Total Unemployed"},
				{ID: "ICSA", Title: "Initial Claims"},
			},
		},
	}
}

func updated(t *testing.T, m tea.Model, msg tea.Msg) model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return out
}

func TestSearchResultsPopulateList(t *testing.T) {
	m := newModel(nil)
	m = updated(t, m, searchResults())

	if len(m.results) != 3 {
		t.Fatalf("results = %d, want 3", len(m.results))
	}
	if m.total != 42 {
		t.Errorf("total = %d, want 42", m.total)
	}
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}
	if m.loading {
		t.Error("loading should clear after results")
	}
}

func TestSearchErrorIsShown(t *testing.T) {
	m := newModel(nil)
	m = updated(t, m, searchDoneMsg{err: errors.New("FRED API error 400: Bad Request")})

	if m.err == nil {
		t.Fatal("err not set")
	}
	if !strings.Contains(m.View(), "Bad Request") {
		t.Error("error not rendered in view")
	}
}

func TestCursorNavigationBounds(t *testing.T) {
	m := newModel(nil)
	m = updated(t, m, searchResults())
	m.input.Blur()

	// Move below the last row: cursor must clamp.
	for i := 0; i < 10; i++ {
		m = updated(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.cursor != 2 {
		t.Errorf("cursor = %d, want 2", m.cursor)
	}

	for i := 0; i < 10; i++ {
		m = updated(t, m, tea.KeyMsg{Type: tea.KeyUp})
	}
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}
}

func TestObservationsViewAndBack(t *testing.T) {
	m := newModel(nil)
	m = updated(t, m, searchResults())

	m = updated(t, m, observationsDoneMsg{
		id:   "UNRATE",
		info: &fred.Series{ID: "UNRATE", Title: "Unemployment Rate", Units: "Percent"},
		list: &fred.ObservationList{
			Count:        900,
			Observations: []fred.Observation{{Date: "2026-07-01", Value: "4.1"}},
		},
	})

	if m.view != viewObservations {
		t.Fatalf("view = %d, want observations", m.view)
	}
	out := m.View()
	if !strings.Contains(out, "Unemployment Rate (Percent)") {
		t.Errorf("missing header in view:\n%s", out)
	}
	if !strings.Contains(out, "2026-07-01") {
		t.Errorf("missing observation row in view:\n%s", out)
	}

	m = updated(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.view != viewSearch {
		t.Errorf("esc should return to search view, got %d", m.view)
	}
}

func TestEmptyQueryDoesNotSearch(t *testing.T) {
	m := newModel(nil)
	if !m.input.Focused() {
		t.Fatal("input should start focused")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(model)
	if cmd != nil {
		t.Error("empty query should not fire a search command")
	}
	if m.loading {
		t.Error("loading should not be set for empty query")
	}
}
