package cmd

import (
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func TestMcpText(t *testing.T) {
	result, err := mcpText("## Series Metadata: GDP")
	if err != nil {
		t.Fatal(err)
	}
	if result.IsError {
		t.Error("IsError should be false")
	}
	if len(result.Content) != 1 {
		t.Fatalf("expected 1 content item, got %d", len(result.Content))
	}
	tc, ok := mcp.AsTextContent(result.Content[0])
	if !ok {
		t.Fatal("expected TextContent")
	}
	if tc.Text != "## Series Metadata: GDP" {
		t.Errorf("text = %q, want %q", tc.Text, "## Series Metadata: GDP")
	}
}

func TestMcpError(t *testing.T) {
	result, err := mcpError("something went wrong")
	if err != nil {
		t.Fatal(err)
	}
	if !result.IsError {
		t.Error("IsError should be true")
	}
	if len(result.Content) != 1 {
		t.Fatalf("expected 1 content item, got %d", len(result.Content))
	}
	tc, ok := mcp.AsTextContent(result.Content[0])
	if !ok {
		t.Fatal("expected TextContent")
	}
	if tc.Text != "something went wrong" {
		t.Errorf("text = %q, want %q", tc.Text, "something went wrong")
	}
}

func TestHandlersFailWithoutAPIKey(t *testing.T) {
	t.Setenv("FRED_API_KEY", "")
	apiKeyFlag = ""

	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]any{"query": "gdp"}

	result, err := handleSearchSeries(t.Context(), req)
	if err != nil {
		t.Fatal(err)
	}
	if !result.IsError {
		t.Error("expected an error result when no API key is configured")
	}
}

func TestRegisterMCPTools(t *testing.T) {
	s := server.NewMCPServer("test", "0.0.0")
	registerMCPTools(s)

	tools := s.ListTools()
	expectedTools := []string{
		"search_series",
		"get_series_info",
		"get_series_data",
		"get_category_details",
		"get_category_children",
		"get_category_series",
		"get_releases",
		"get_release_series",
		"get_sources",
		"get_source",
		"search_related_tags",
	}

	if len(tools) != len(expectedTools) {
		t.Errorf("got %d tools, want %d", len(tools), len(expectedTools))
	}
	for _, name := range expectedTools {
		if _, ok := tools[name]; !ok {
			t.Errorf("missing tool %q", name)
		}
	}
}
