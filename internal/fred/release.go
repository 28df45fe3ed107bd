package fred

import (
	"context"
	"net/http"
	"strconv"
)

// Release is one release of economic data (e.g. "Gross Domestic Product").
type Release struct {
	ID            int    `json:"id"`
	RealtimeStart string `json:"realtime_start"`
	RealtimeEnd   string `json:"realtime_end"`
	Name          string `json:"name"`
	PressRelease  bool   `json:"press_release"`
	Link          string `json:"link,omitempty"`
}

// ReleaseList is a paginated set of releases.
type ReleaseList struct {
	Count    int       `json:"count"`
	Offset   int       `json:"offset"`
	Limit    int       `json:"limit"`
	Releases []Release `json:"releases"`
}

// Releases fetches all releases of economic data.
func (c *Client) Releases(ctx context.Context, opts *PageOptions) (*ReleaseList, *http.Response, error) {
	params, err := encodeOptions(opts)
	if err != nil {
		return nil, nil, err
	}

	var rl ReleaseList
	resp, err := c.get(ctx, "/fred/releases", params, &rl)
	if err != nil {
		return nil, resp, err
	}
	return &rl, resp, nil
}

// ReleaseSeries fetches the series on a release.
func (c *Client) ReleaseSeries(ctx context.Context, releaseID int, opts *PageOptions) (*SeriesList, *http.Response, error) {
	params, err := encodeOptions(opts)
	if err != nil {
		return nil, nil, err
	}
	params.Set("release_id", strconv.Itoa(releaseID))

	var sl SeriesList
	resp, err := c.get(ctx, "/fred/release/series", params, &sl)
	if err != nil {
		return nil, resp, err
	}
	return &sl, resp, nil
}
