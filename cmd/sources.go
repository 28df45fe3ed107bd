package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fritzprix/fred-mcp/internal/fred"
	"github.com/fritzprix/fred-mcp/internal/jsonout"
)

func init() {
	sourcesCmd.AddCommand(sourceShowCmd)
	rootCmd.AddCommand(sourcesCmd)
}

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List sources of economic data",
	Example: `  fred-mcp sources
  fred-mcp sources show 1`,
	Args: cobra.NoArgs,
	RunE: runSources,
}

var sourceShowCmd = &cobra.Command{
	Use:     "show <source-id>",
	Short:   "Show one source",
	Example: `  fred-mcp sources show 1`,
	Args:    cobra.ExactArgs(1),
	RunE:    runSourceShow,
}

func printSources(sources []fred.Source) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tNAME\tLINK")
	for _, s := range sources {
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\n", s.ID, s.Name, s.Link)
	}
	_ = w.Flush()
}

func runSources(cmd *cobra.Command, args []string) error {
	client, _, err := newFredClient()
	if err != nil {
		return err
	}

	sl, _, err := client.Sources(cmd.Context(), nil)
	if err != nil {
		return err
	}

	if jsonout.Enabled {
		return jsonout.Write(sl)
	}
	if len(sl.Sources) == 0 {
		fmt.Fprintln(jsonout.MsgOut(), "No sources found.")
		return nil
	}
	printSources(sl.Sources)
	return nil
}

func runSourceShow(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0], "source")
	if err != nil {
		return err
	}
	client, _, err := newFredClient()
	if err != nil {
		return err
	}

	src, _, err := client.Source(cmd.Context(), id)
	if err != nil {
		return err
	}

	if jsonout.Enabled {
		return jsonout.Write(src)
	}
	printSources([]fred.Source{*src})
	return nil
}
