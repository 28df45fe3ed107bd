package cmd

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/afero"

	"github.com/fritzprix/fred-mcp/internal/export"
	"github.com/fritzprix/fred-mcp/internal/fred"
	"github.com/fritzprix/fred-mcp/internal/markdown"
)

// mcpText returns Markdown text as MCP content.
func mcpText(text string) (*mcp.CallToolResult, error) {
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent(text)},
	}, nil
}

// mcpError returns an MCP error result. Tool failures (bad key, API errors,
// unknown ids) surface here rather than as protocol failures.
func mcpError(msg string) (*mcp.CallToolResult, error) {
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent(msg)},
		IsError: true,
	}, nil
}

func registerMCPTools(s *server.MCPServer) {
	s.AddTool(
		mcp.NewTool("search_series",
			mcp.WithDescription("Search for economic data series by text query."),
			mcp.WithString("query", mcp.Description("The search text (e.g. \"gdp\", \"unemployment\")"), mcp.Required()),
			mcp.WithNumber("limit", mcp.Description("Maximum number of results to return (default: 10)")),
			mcp.WithNumber("offset", mcp.Description("Number of results to skip (default: 0)")),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
		),
		handleSearchSeries,
	)

	s.AddTool(
		mcp.NewTool("get_series_info",
			mcp.WithDescription("Get metadata for a specific data series."),
			mcp.WithString("series_id", mcp.Description("The ID of the series (e.g. \"GDP\", \"UNRATE\")"), mcp.Required()),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
		),
		handleGetSeriesInfo,
	)

	s.AddTool(
		mcp.NewTool("get_series_data",
			mcp.WithDescription("Get data points for a specific series. Optionally saves the full dataset as JSON to file_path."),
			mcp.WithString("series_id", mcp.Description("The ID of the series (e.g. \"GDP\")"), mcp.Required()),
			mcp.WithNumber("limit", mcp.Description("Max data points in the markdown preview (default: 1000)")),
			mcp.WithNumber("offset", mcp.Description("Data points to skip in the preview (default: 0)")),
			mcp.WithString("file_path", mcp.Description("Optional path to save the full data as JSON; the full dataset (ignoring limit/offset) is saved")),
			mcp.WithReadOnlyHintAnnotation(false),
			mcp.WithDestructiveHintAnnotation(false),
		),
		handleGetSeriesData,
	)

	s.AddTool(
		mcp.NewTool("get_category_details",
			mcp.WithDescription("Get details for a specific category."),
			mcp.WithNumber("category_id", mcp.Description("The ID of the category (e.g. 125)"), mcp.Required()),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
		),
		handleGetCategoryDetails,
	)

	s.AddTool(
		mcp.NewTool("get_category_children",
			mcp.WithDescription("Get child categories for a specific category."),
			mcp.WithNumber("category_id", mcp.Description("The parent category ID"), mcp.Required()),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
		),
		handleGetCategoryChildren,
	)

	s.AddTool(
		mcp.NewTool("get_category_series",
			mcp.WithDescription("Get series in a specific category, ordered by popularity."),
			mcp.WithNumber("category_id", mcp.Description("The category ID"), mcp.Required()),
			mcp.WithNumber("limit", mcp.Description("Max results (default: 1000)")),
			mcp.WithNumber("offset", mcp.Description("Results to skip (default: 0)")),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
		),
		handleGetCategorySeries,
	)

	s.AddTool(
		mcp.NewTool("get_releases",
			mcp.WithDescription("Get all releases of economic data."),
			mcp.WithNumber("limit", mcp.Description("Max results (default: 1000)")),
			mcp.WithNumber("offset", mcp.Description("Results to skip (default: 0)")),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
		),
		handleGetReleases,
	)

	s.AddTool(
		mcp.NewTool("get_release_series",
			mcp.WithDescription("Get series in a specific release."),
			mcp.WithNumber("release_id", mcp.Description("The release ID"), mcp.Required()),
			mcp.WithNumber("limit", mcp.Description("Max results (default: 1000)")),
			mcp.WithNumber("offset", mcp.Description("Results to skip (default: 0)")),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
		),
		handleGetReleaseSeries,
	)

	s.AddTool(
		mcp.NewTool("get_sources",
			mcp.WithDescription("Get all sources of economic data."),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
		),
		handleGetSources,
	)

	s.AddTool(
		mcp.NewTool("get_source",
			mcp.WithDescription("Get details for a specific source."),
			mcp.WithNumber("source_id", mcp.Description("The source ID"), mcp.Required()),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
		),
		handleGetSource,
	)

	s.AddTool(
		mcp.NewTool("search_related_tags",
			mcp.WithDescription("Get tags related to a set of tags."),
			mcp.WithString("tag_names", mcp.Description("Semicolon separated list of tag names"), mcp.Required()),
			mcp.WithNumber("limit", mcp.Description("Max results (default: 1000)")),
			mcp.WithNumber("offset", mcp.Description("Results to skip (default: 0)")),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
		),
		handleSearchRelatedTags,
	)
}

func handleSearchSeries(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := req.GetString("query", "")
	limit := req.GetInt("limit", 10)
	offset := req.GetInt("offset", 0)

	client, _, err := newFredClient()
	if err != nil {
		return mcpError(err.Error())
	}

	sl, _, err := client.SearchSeries(ctx, query, &fred.SearchOptions{Limit: limit, Offset: offset})
	if err != nil {
		return mcpError(fmt.Sprintf("Error searching series: %v", err))
	}
	return mcpText(markdown.SeriesTable(sl))
}

func handleGetSeriesInfo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	seriesID := req.GetString("series_id", "")

	client, _, err := newFredClient()
	if err != nil {
		return mcpError(err.Error())
	}

	info, _, err := client.SeriesInfo(ctx, seriesID)
	if err != nil {
		return mcpError(fmt.Sprintf("Error getting series info: %v", err))
	}
	return mcpText(markdown.InfoSheet(info))
}

func handleGetSeriesData(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	seriesID := req.GetString("series_id", "")
	limit := req.GetInt("limit", 1000)
	offset := req.GetInt("offset", 0)
	filePath := req.GetString("file_path", "")

	client, cfg, err := newFredClient()
	if err != nil {
		return mcpError(err.Error())
	}

	var result string

	if filePath != "" {
		// The export ignores limit/offset: the full dataset is saved.
		full, _, err := client.Observations(ctx, seriesID, nil)
		if err != nil {
			return mcpError(fmt.Sprintf("Error getting series data: %v", err))
		}
		w := export.NewWriter(afero.NewOsFs(), cfg.Export.Allow)
		if err := w.SaveObservations(filePath, full.Observations); err != nil {
			return mcpError(fmt.Sprintf("Error saving series data: %v", err))
		}
		result += fmt.Sprintf("Data for `%s` saved to `%s`\n\n", seriesID, filePath)
	}

	page, _, err := client.Observations(ctx, seriesID, &fred.ObservationOptions{Limit: limit, Offset: offset})
	if err != nil {
		return mcpError(fmt.Sprintf("Error getting series data: %v", err))
	}

	// Metadata enriches the preview header; ignore a failed lookup.
	info, _, _ := client.SeriesInfo(ctx, seriesID)

	result += markdown.ObservationTable(seriesID, info, page)
	return mcpText(result)
}

func handleGetCategoryDetails(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	categoryID := req.GetInt("category_id", 0)

	client, _, err := newFredClient()
	if err != nil {
		return mcpError(err.Error())
	}

	cat, _, err := client.Category(ctx, categoryID)
	if err != nil {
		return mcpError(fmt.Sprintf("Error getting category: %v", err))
	}
	return mcpText(markdown.CategoryTable([]fred.Category{*cat}))
}

func handleGetCategoryChildren(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	categoryID := req.GetInt("category_id", 0)

	client, _, err := newFredClient()
	if err != nil {
		return mcpError(err.Error())
	}

	cats, _, err := client.CategoryChildren(ctx, categoryID)
	if err != nil {
		return mcpError(fmt.Sprintf("Error getting category children: %v", err))
	}
	return mcpText(markdown.CategoryTable(cats))
}

func handleGetCategorySeries(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	categoryID := req.GetInt("category_id", 0)
	limit := req.GetInt("limit", 1000)
	offset := req.GetInt("offset", 0)

	client, _, err := newFredClient()
	if err != nil {
		return mcpError(err.Error())
	}

	sl, _, err := client.CategorySeries(ctx, categoryID, &fred.SearchOptions{
		Limit:     limit,
		Offset:    offset,
		OrderBy:   "popularity",
		SortOrder: "desc",
	})
	if err != nil {
		return mcpError(fmt.Sprintf("Error getting category series: %v", err))
	}
	return mcpText(markdown.SeriesTable(sl))
}

func handleGetReleases(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := req.GetInt("limit", 1000)
	offset := req.GetInt("offset", 0)

	client, _, err := newFredClient()
	if err != nil {
		return mcpError(err.Error())
	}

	rl, _, err := client.Releases(ctx, &fred.PageOptions{Limit: limit, Offset: offset})
	if err != nil {
		return mcpError(fmt.Sprintf("Error getting releases: %v", err))
	}
	return mcpText(markdown.ReleaseTable(rl))
}

func handleGetReleaseSeries(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	releaseID := req.GetInt("release_id", 0)
	limit := req.GetInt("limit", 1000)
	offset := req.GetInt("offset", 0)

	client, _, err := newFredClient()
	if err != nil {
		return mcpError(err.Error())
	}

	sl, _, err := client.ReleaseSeries(ctx, releaseID, &fred.PageOptions{Limit: limit, Offset: offset})
	if err != nil {
		return mcpError(fmt.Sprintf("Error getting release series: %v", err))
	}
	return mcpText(markdown.SeriesTable(sl))
}

func handleGetSources(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	client, _, err := newFredClient()
	if err != nil {
		return mcpError(err.Error())
	}

	sl, _, err := client.Sources(ctx, nil)
	if err != nil {
		return mcpError(fmt.Sprintf("Error getting sources: %v", err))
	}
	return mcpText(markdown.SourceTable(sl.Sources))
}

func handleGetSource(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sourceID := req.GetInt("source_id", 0)

	client, _, err := newFredClient()
	if err != nil {
		return mcpError(err.Error())
	}

	src, _, err := client.Source(ctx, sourceID)
	if err != nil {
		return mcpError(fmt.Sprintf("Error getting source: %v", err))
	}
	return mcpText(markdown.SourceTable([]fred.Source{*src}))
}

func handleSearchRelatedTags(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tagNames := req.GetString("tag_names", "")
	limit := req.GetInt("limit", 1000)
	offset := req.GetInt("offset", 0)

	client, _, err := newFredClient()
	if err != nil {
		return mcpError(err.Error())
	}

	tl, _, err := client.RelatedTags(ctx, tagNames, &fred.PageOptions{Limit: limit, Offset: offset})
	if err != nil {
		return mcpError(fmt.Sprintf("Error getting related tags: %v", err))
	}
	return mcpText(markdown.TagTable(tl))
}
