package cmd

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fritzprix/fred-mcp/internal/fred"
	"github.com/fritzprix/fred-mcp/internal/jsonout"
)

var categorySeriesLimit int
var categorySeriesOffset int

func init() {
	categorySeriesCmd.Flags().IntVar(&categorySeriesLimit, "limit", 100, "maximum number of results")
	categorySeriesCmd.Flags().IntVar(&categorySeriesOffset, "offset", 0, "results to skip")

	categoryCmd.AddCommand(categoryInfoCmd)
	categoryCmd.AddCommand(categoryChildrenCmd)
	categoryCmd.AddCommand(categorySeriesCmd)
	rootCmd.AddCommand(categoryCmd)
}

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Browse the FRED category tree",
}

var categoryInfoCmd = &cobra.Command{
	Use:     "info <category-id>",
	Short:   "Show a category",
	Example: `  fred-mcp category info 125`,
	Args:    cobra.ExactArgs(1),
	RunE:    runCategoryInfo,
}

var categoryChildrenCmd = &cobra.Command{
	Use:   "children <category-id>",
	Short: "List child categories",
	Example: `  fred-mcp category children 0
  fred-mcp category children 13 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runCategoryChildren,
}

var categorySeriesCmd = &cobra.Command{
	Use:     "series <category-id>",
	Short:   "List series in a category, most popular first",
	Example: `  fred-mcp category series 125 --limit 20`,
	Args:    cobra.ExactArgs(1),
	RunE:    runCategorySeries,
}

func parseID(arg, what string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid %s id %q", what, arg)
	}
	return id, nil
}

func printCategories(cats []fred.Category) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tNAME\tPARENT")
	for _, c := range cats {
		_, _ = fmt.Fprintf(w, "%d\t%s\t%d\n", c.ID, c.Name, c.ParentID)
	}
	_ = w.Flush()
}

func runCategoryInfo(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0], "category")
	if err != nil {
		return err
	}
	client, _, err := newFredClient()
	if err != nil {
		return err
	}

	cat, _, err := client.Category(cmd.Context(), id)
	if err != nil {
		return err
	}

	if jsonout.Enabled {
		return jsonout.Write(cat)
	}
	printCategories([]fred.Category{*cat})
	return nil
}

func runCategoryChildren(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0], "category")
	if err != nil {
		return err
	}
	client, _, err := newFredClient()
	if err != nil {
		return err
	}

	cats, _, err := client.CategoryChildren(cmd.Context(), id)
	if err != nil {
		return err
	}

	if jsonout.Enabled {
		if cats == nil {
			cats = []fred.Category{}
		}
		return jsonout.Write(cats)
	}
	if len(cats) == 0 {
		fmt.Fprintln(jsonout.MsgOut(), "No child categories.")
		return nil
	}
	printCategories(cats)
	return nil
}

func runCategorySeries(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0], "category")
	if err != nil {
		return err
	}
	client, _, err := newFredClient()
	if err != nil {
		return err
	}

	sl, _, err := client.CategorySeries(cmd.Context(), id, &fred.SearchOptions{
		Limit:     categorySeriesLimit,
		Offset:    categorySeriesOffset,
		OrderBy:   "popularity",
		SortOrder: "desc",
	})
	if err != nil {
		return err
	}

	if jsonout.Enabled {
		return jsonout.Write(sl)
	}
	if len(sl.Series) == 0 {
		fmt.Fprintln(jsonout.MsgOut(), "No series found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tTITLE\tFREQ\tPOP")
	for _, s := range sl.Series {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", s.ID, s.Title, s.FrequencyShort, s.Popularity)
	}
	_ = w.Flush()
	return nil
}
