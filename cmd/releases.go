package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fritzprix/fred-mcp/internal/fred"
	"github.com/fritzprix/fred-mcp/internal/jsonout"
)

var releasesLimit int
var releasesOffset int

func init() {
	releasesCmd.PersistentFlags().IntVar(&releasesLimit, "limit", 100, "maximum number of results")
	releasesCmd.PersistentFlags().IntVar(&releasesOffset, "offset", 0, "results to skip")

	releasesCmd.AddCommand(releaseSeriesCmd)
	rootCmd.AddCommand(releasesCmd)
}

var releasesCmd = &cobra.Command{
	Use:   "releases",
	Short: "List releases of economic data",
	Example: `  fred-mcp releases
  fred-mcp releases series 10 --limit 20`,
	Args: cobra.NoArgs,
	RunE: runReleases,
}

var releaseSeriesCmd = &cobra.Command{
	Use:     "series <release-id>",
	Short:   "List series in a release",
	Example: `  fred-mcp releases series 10`,
	Args:    cobra.ExactArgs(1),
	RunE:    runReleaseSeries,
}

func runReleases(cmd *cobra.Command, args []string) error {
	client, _, err := newFredClient()
	if err != nil {
		return err
	}

	rl, _, err := client.Releases(cmd.Context(), &fred.PageOptions{Limit: releasesLimit, Offset: releasesOffset})
	if err != nil {
		return err
	}

	if jsonout.Enabled {
		return jsonout.Write(rl)
	}
	if len(rl.Releases) == 0 {
		fmt.Fprintln(jsonout.MsgOut(), "No releases found.")
		return nil
	}

	fmt.Fprintf(jsonout.MsgOut(), "Found %d releases (showing %d)\n\n", rl.Count, len(rl.Releases))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tNAME\tPRESS\tLINK")
	for _, r := range rl.Releases {
		press := ""
		if r.PressRelease {
			press = "yes"
		}
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", r.ID, r.Name, press, r.Link)
	}
	_ = w.Flush()
	return nil
}

func runReleaseSeries(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0], "release")
	if err != nil {
		return err
	}
	client, _, err := newFredClient()
	if err != nil {
		return err
	}

	sl, _, err := client.ReleaseSeries(cmd.Context(), id, &fred.PageOptions{Limit: releasesLimit, Offset: releasesOffset})
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
	_, _ = fmt.Fprintln(w, "ID\tTITLE\tFREQ\tUNITS")
	for _, s := range sl.Series {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.ID, s.Title, s.FrequencyShort, s.UnitsShort)
	}
	_ = w.Flush()
	return nil
}
