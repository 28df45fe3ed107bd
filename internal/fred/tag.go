package fred

import (
	"context"
	"fmt"
	"net/http"
)

// Tag is one FRED tag (an attribute assigned to series).
type Tag struct {
	Name        string `json:"name"`
	GroupID     string `json:"group_id"`
	Notes       string `json:"notes,omitempty"`
	Created     string `json:"created"`
	Popularity  int    `json:"popularity"`
	SeriesCount int    `json:"series_count"`
}

// TagList is a paginated set of tags.
type TagList struct {
	Count  int   `json:"count"`
	Offset int   `json:"offset"`
	Limit  int   `json:"limit"`
	Tags   []Tag `json:"tags"`
}

// RelatedTags fetches the tags related to one or more tag names.
// tagNames is the FRED wire format: a semicolon separated list.
func (c *Client) RelatedTags(ctx context.Context, tagNames string, opts *PageOptions) (*TagList, *http.Response, error) {
	if tagNames == "" {
		return nil, nil, fmt.Errorf("tag names are required and can't be empty")
	}
	params, err := encodeOptions(opts)
	if err != nil {
		return nil, nil, err
	}
	params.Set("tag_names", tagNames)

	var tl TagList
	resp, err := c.get(ctx, "/fred/related_tags", params, &tl)
	if err != nil {
		return nil, resp, err
	}
	return &tl, resp, nil
}
