package fred

import (
	"context"
	"fmt"
	"net/http"
)

// Series is the metadata record for one economic data series.
type Series struct {
	ID                      string `json:"id"`
	Title                   string `json:"title"`
	ObservationStart        string `json:"observation_start"`
	ObservationEnd          string `json:"observation_end"`
	Frequency               string `json:"frequency"`
	FrequencyShort          string `json:"frequency_short"`
	Units                   string `json:"units"`
	UnitsShort              string `json:"units_short"`
	SeasonalAdjustment      string `json:"seasonal_adjustment"`
	SeasonalAdjustmentShort string `json:"seasonal_adjustment_short"`
	LastUpdated             string `json:"last_updated"`
	Popularity              int    `json:"popularity"`
	Notes                   string `json:"notes,omitempty"`
}

// SeriesList is a paginated set of series records.
type SeriesList struct {
	Count  int      `json:"count"`
	Offset int      `json:"offset"`
	Limit  int      `json:"limit"`
	Series []Series `json:"seriess"`
}

// Observation is one data point of a series. Value is kept as the raw API
// string; missing observations arrive as ".".
type Observation struct {
	RealtimeStart string `json:"realtime_start"`
	RealtimeEnd   string `json:"realtime_end"`
	Date          string `json:"date"`
	Value         string `json:"value"`
}

// ObservationList is a paginated window of a series' observations.
type ObservationList struct {
	Count        int           `json:"count"`
	Offset       int           `json:"offset"`
	Limit        int           `json:"limit"`
	Observations []Observation `json:"observations"`
}

// SearchSeries does a full-text search for series matching the query.
func (c *Client) SearchSeries(ctx context.Context, text string, opts *SearchOptions) (*SeriesList, *http.Response, error) {
	if text == "" {
		return nil, nil, fmt.Errorf("search text is required and can't be empty")
	}
	params, err := encodeOptions(opts)
	if err != nil {
		return nil, nil, err
	}
	params.Set("search_text", text)

	var sl SeriesList
	resp, err := c.get(ctx, "/fred/series/search", params, &sl)
	if err != nil {
		return nil, resp, err
	}
	return &sl, resp, nil
}

// SeriesInfo fetches metadata for a single series by its FRED id (e.g. "GDP").
func (c *Client) SeriesInfo(ctx context.Context, seriesID string) (*Series, *http.Response, error) {
	if seriesID == "" {
		return nil, nil, fmt.Errorf("series id is required and can't be empty")
	}
	params, err := encodeOptions(nil)
	if err != nil {
		return nil, nil, err
	}
	params.Set("series_id", seriesID)

	var sl SeriesList
	resp, err := c.get(ctx, "/fred/series", params, &sl)
	if err != nil {
		return nil, resp, err
	}
	if len(sl.Series) == 0 {
		return nil, resp, fmt.Errorf("no info found for series %s", seriesID)
	}
	return &sl.Series[0], resp, nil
}

// Observations fetches data points for a series.
func (c *Client) Observations(ctx context.Context, seriesID string, opts *ObservationOptions) (*ObservationList, *http.Response, error) {
	if seriesID == "" {
		return nil, nil, fmt.Errorf("series id is required and can't be empty")
	}
	params, err := encodeOptions(opts)
	if err != nil {
		return nil, nil, err
	}
	params.Set("series_id", seriesID)

	var ol ObservationList
	resp, err := c.get(ctx, "/fred/series/observations", params, &ol)
	if err != nil {
		return nil, resp, err
	}
	return &ol, resp, nil
}
