package fred

import (
	"context"
	"net/http"
	"strconv"
)

// Source is one provider of economic data (e.g. "Board of Governors").
type Source struct {
	ID            int    `json:"id"`
	RealtimeStart string `json:"realtime_start"`
	RealtimeEnd   string `json:"realtime_end"`
	Name          string `json:"name"`
	Link          string `json:"link,omitempty"`
}

// SourceList is a paginated set of sources.
type SourceList struct {
	Count   int      `json:"count"`
	Offset  int      `json:"offset"`
	Limit   int      `json:"limit"`
	Sources []Source `json:"sources"`
}

// Sources fetches all sources of economic data.
func (c *Client) Sources(ctx context.Context, opts *PageOptions) (*SourceList, *http.Response, error) {
	params, err := encodeOptions(opts)
	if err != nil {
		return nil, nil, err
	}

	var sl SourceList
	resp, err := c.get(ctx, "/fred/sources", params, &sl)
	if err != nil {
		return nil, resp, err
	}
	return &sl, resp, nil
}

// Source fetches a single source by id.
func (c *Client) Source(ctx context.Context, sourceID int) (*Source, *http.Response, error) {
	params, err := encodeOptions(nil)
	if err != nil {
		return nil, nil, err
	}
	params.Set("source_id", strconv.Itoa(sourceID))

	var sl SourceList
	resp, err := c.get(ctx, "/fred/source", params, &sl)
	if err != nil {
		return nil, resp, err
	}
	if len(sl.Sources) == 0 {
		return nil, resp, &APIError{Code: http.StatusNotFound, Message: "source not found"}
	}
	return &sl.Sources[0], resp, nil
}
