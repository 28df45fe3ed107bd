package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fritzprix/fred-mcp/internal/fred"
	"github.com/fritzprix/fred-mcp/internal/jsonout"
)

var searchLimit int
var searchOffset int

func init() {
	searchCmd.Flags().IntVar(&searchLimit, "limit", 10, "maximum number of results")
	searchCmd.Flags().IntVar(&searchOffset, "offset", 0, "number of results to skip")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search for economic data series",
	Example: `  fred-mcp search gdp
  fred-mcp search "unemployment rate" --limit 25
  fred-mcp search inflation --json`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	client, _, err := newFredClient()
	if err != nil {
		return err
	}

	sl, _, err := client.SearchSeries(cmd.Context(), args[0], &fred.SearchOptions{
		Limit:  searchLimit,
		Offset: searchOffset,
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

	fmt.Fprintf(jsonout.MsgOut(), "Found %d series (showing %d)\n\n", sl.Count, len(sl.Series))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tTITLE\tFREQ\tUNITS\tPOP")
	for _, s := range sl.Series {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n", s.ID, s.Title, s.FrequencyShort, s.UnitsShort, s.Popularity)
	}
	_ = w.Flush()

	return nil
}
