// Package markdown shapes FRED API results into the Markdown text the MCP
// tools and the CLI hand back to callers.
package markdown

import (
	"fmt"
	"strings"

	"github.com/fritzprix/fred-mcp/internal/fred"
)

// escapeCell keeps table cells on one line and pipe-safe.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}

func writeRow(b *strings.Builder, cells ...string) {
	b.WriteString("|")
	for _, c := range cells {
		b.WriteString(" ")
		b.WriteString(escapeCell(c))
		b.WriteString(" |")
	}
	b.WriteString("\n")
}

func writeHeader(b *strings.Builder, cols ...string) {
	writeRow(b, cols...)
	b.WriteString("|")
	b.WriteString(strings.Repeat("---|", len(cols)))
	b.WriteString("\n")
}

// SeriesTable renders a search-style result set with a found/shown header.
func SeriesTable(sl *fred.SeriesList) string {
	if sl == nil || len(sl.Series) == 0 {
		return "No series found."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**Found %d series (showing %d):**\n\n", sl.Count, len(sl.Series))
	writeHeader(&b, "id", "title", "frequency", "units", "popularity")
	for _, s := range sl.Series {
		writeRow(&b, s.ID, s.Title, s.Frequency, s.Units, fmt.Sprintf("%d", s.Popularity))
	}
	return b.String()
}

// InfoSheet renders full metadata for one series as a field/value table.
func InfoSheet(s *fred.Series) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Series Metadata: %s\n\n", s.ID)
	writeHeader(&b, "field", "value")
	fields := []struct{ name, value string }{
		{"title", s.Title},
		{"observation_start", s.ObservationStart},
		{"observation_end", s.ObservationEnd},
		{"frequency", s.Frequency},
		{"units", s.Units},
		{"seasonal_adjustment", s.SeasonalAdjustment},
		{"last_updated", s.LastUpdated},
		{"popularity", fmt.Sprintf("%d", s.Popularity)},
		{"notes", s.Notes},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		writeRow(&b, f.name, f.value)
	}
	return b.String()
}

// SeriesHeader renders the "## Title (Units)" heading, falling back to the
// series id when metadata is unavailable.
func SeriesHeader(id string, info *fred.Series) string {
	if info == nil {
		return fmt.Sprintf("## %s", id)
	}
	return fmt.Sprintf("## %s (%s)", info.Title, info.Units)
}

// ObservationTable renders a window of data points with a shown/total line.
func ObservationTable(id string, info *fred.Series, ol *fred.ObservationList) string {
	if ol == nil || len(ol.Observations) == 0 {
		return fmt.Sprintf("No data found for series %s", id)
	}

	var b strings.Builder
	b.WriteString(SeriesHeader(id, info))
	b.WriteString("\n")
	fmt.Fprintf(&b, "**Showing %d of %d data points**\n\n", len(ol.Observations), ol.Count)
	writeHeader(&b, "date", "value")
	for _, o := range ol.Observations {
		writeRow(&b, o.Date, o.Value)
	}
	return b.String()
}

// CategoryTable renders a list of categories.
func CategoryTable(cats []fred.Category) string {
	if len(cats) == 0 {
		return "No categories found."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**Found %d categories:**\n\n", len(cats))
	writeHeader(&b, "id", "name", "parent_id")
	for _, c := range cats {
		writeRow(&b, fmt.Sprintf("%d", c.ID), c.Name, fmt.Sprintf("%d", c.ParentID))
	}
	return b.String()
}

// ReleaseTable renders a paginated list of releases.
func ReleaseTable(rl *fred.ReleaseList) string {
	if rl == nil || len(rl.Releases) == 0 {
		return "No releases found."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**Found %d releases (showing %d):**\n\n", rl.Count, len(rl.Releases))
	writeHeader(&b, "id", "name", "press_release", "link")
	for _, r := range rl.Releases {
		writeRow(&b, fmt.Sprintf("%d", r.ID), r.Name, fmt.Sprintf("%t", r.PressRelease), r.Link)
	}
	return b.String()
}

// SourceTable renders a list of sources.
func SourceTable(sources []fred.Source) string {
	if len(sources) == 0 {
		return "No sources found."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**Found %d sources:**\n\n", len(sources))
	writeHeader(&b, "id", "name", "link")
	for _, s := range sources {
		writeRow(&b, fmt.Sprintf("%d", s.ID), s.Name, s.Link)
	}
	return b.String()
}

// TagTable renders a paginated list of tags.
func TagTable(tl *fred.TagList) string {
	if tl == nil || len(tl.Tags) == 0 {
		return "No tags found."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**Found %d tags (showing %d):**\n\n", tl.Count, len(tl.Tags))
	writeHeader(&b, "name", "group_id", "popularity", "series_count")
	for _, tag := range tl.Tags {
		writeRow(&b, tag.Name, tag.GroupID, fmt.Sprintf("%d", tag.Popularity), fmt.Sprintf("%d", tag.SeriesCount))
	}
	return b.String()
}
