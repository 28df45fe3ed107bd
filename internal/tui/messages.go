package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fritzprix/fred-mcp/internal/fred"
)

// searchDoneMsg carries series search results back into the model.
type searchDoneMsg struct {
	query string
	list  *fred.SeriesList
	err   error
}

// observationsDoneMsg carries one series' metadata and data points.
type observationsDoneMsg struct {
	id   string
	info *fred.Series
	list *fred.ObservationList
	err  error
}

const requestTimeout = 30 * time.Second

// searchCmd runs a series search off the update loop.
func searchCmd(client *fred.Client, query string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		list, _, err := client.SearchSeries(ctx, query, &fred.SearchOptions{Limit: 50})
		return searchDoneMsg{query: query, list: list, err: err}
	}
}

// observationsCmd loads metadata and the most recent observations for a series.
func observationsCmd(client *fred.Client, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		info, _, err := client.SeriesInfo(ctx, id)
		if err != nil {
			return observationsDoneMsg{id: id, err: err}
		}
		list, _, err := client.Observations(ctx, id, &fred.ObservationOptions{Limit: 120, SortOrder: "desc"})
		return observationsDoneMsg{id: id, info: info, list: list, err: err}
	}
}
