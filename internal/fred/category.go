package fred

import (
	"context"
	"net/http"
	"strconv"
)

// Category is one node of the FRED category tree.
type Category struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	ParentID int    `json:"parent_id"`
}

// CategoryList wraps the categories array FRED returns.
type CategoryList struct {
	Categories []Category `json:"categories"`
}

// Category fetches a single category by id.
func (c *Client) Category(ctx context.Context, categoryID int) (*Category, *http.Response, error) {
	params, err := encodeOptions(nil)
	if err != nil {
		return nil, nil, err
	}
	params.Set("category_id", strconv.Itoa(categoryID))

	var cl CategoryList
	resp, err := c.get(ctx, "/fred/category", params, &cl)
	if err != nil {
		return nil, resp, err
	}
	if len(cl.Categories) == 0 {
		return nil, resp, &APIError{Code: http.StatusNotFound, Message: "category not found"}
	}
	return &cl.Categories[0], resp, nil
}

// CategoryChildren fetches the child categories of a category.
func (c *Client) CategoryChildren(ctx context.Context, categoryID int) ([]Category, *http.Response, error) {
	params, err := encodeOptions(nil)
	if err != nil {
		return nil, nil, err
	}
	params.Set("category_id", strconv.Itoa(categoryID))

	var cl CategoryList
	resp, err := c.get(ctx, "/fred/category/children", params, &cl)
	if err != nil {
		return nil, resp, err
	}
	return cl.Categories, resp, nil
}

// CategorySeries fetches the series that belong to a category.
func (c *Client) CategorySeries(ctx context.Context, categoryID int, opts *SearchOptions) (*SeriesList, *http.Response, error) {
	params, err := encodeOptions(opts)
	if err != nil {
		return nil, nil, err
	}
	params.Set("category_id", strconv.Itoa(categoryID))

	var sl SeriesList
	resp, err := c.get(ctx, "/fred/category/series", params, &sl)
	if err != nil {
		return nil, resp, err
	}
	return &sl, resp, nil
}
