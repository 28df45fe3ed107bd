package fred

import (
	"fmt"
	"net/url"

	"github.com/google/go-querystring/query"
)

// PageOptions control server-side pagination.
type PageOptions struct {
	Limit  int `url:"limit,omitempty"`
	Offset int `url:"offset,omitempty"`
}

// SearchOptions specify optional parameters to series search calls.
type SearchOptions struct {
	Limit     int    `url:"limit,omitempty"`
	Offset    int    `url:"offset,omitempty"`
	OrderBy   string `url:"order_by,omitempty"`
	SortOrder string `url:"sort_order,omitempty"`
}

// ObservationOptions specify optional parameters to Observations.
type ObservationOptions struct {
	Limit            int    `url:"limit,omitempty"`
	Offset           int    `url:"offset,omitempty"`
	ObservationStart string `url:"observation_start,omitempty"`
	ObservationEnd   string `url:"observation_end,omitempty"`
	Units            string `url:"units,omitempty"`
	SortOrder        string `url:"sort_order,omitempty"`
}

// encodeOptions turns an option struct into url.Values. A nil opts (typed or
// untyped) yields empty values.
func encodeOptions(opts any) (url.Values, error) {
	v, err := query.Values(opts)
	if err != nil {
		return nil, fmt.Errorf("error parsing the options: %w", err)
	}
	return v, nil
}
