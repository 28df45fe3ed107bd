package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fritzprix/fred-mcp/internal/fred"
	"github.com/fritzprix/fred-mcp/internal/jsonout"
)

var tagsLimit int
var tagsOffset int

func init() {
	tagsRelatedCmd.Flags().IntVar(&tagsLimit, "limit", 100, "maximum number of results")
	tagsRelatedCmd.Flags().IntVar(&tagsOffset, "offset", 0, "results to skip")

	tagsCmd.AddCommand(tagsRelatedCmd)
	rootCmd.AddCommand(tagsCmd)
}

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Explore FRED tags",
}

var tagsRelatedCmd = &cobra.Command{
	Use:   "related <tag-names>",
	Short: "List tags related to a set of tags",
	Long:  "List tags related to a semicolon separated set of tag names.",
	Example: `  fred-mcp tags related "monetary aggregates;weekly"
  fred-mcp tags related gdp --limit 20`,
	Args: cobra.ExactArgs(1),
	RunE: runTagsRelated,
}

func runTagsRelated(cmd *cobra.Command, args []string) error {
	client, _, err := newFredClient()
	if err != nil {
		return err
	}

	tl, _, err := client.RelatedTags(cmd.Context(), args[0], &fred.PageOptions{Limit: tagsLimit, Offset: tagsOffset})
	if err != nil {
		return err
	}

	if jsonout.Enabled {
		return jsonout.Write(tl)
	}
	if len(tl.Tags) == 0 {
		fmt.Fprintln(jsonout.MsgOut(), "No tags found.")
		return nil
	}

	fmt.Fprintf(jsonout.MsgOut(), "Found %d tags (showing %d)\n\n", tl.Count, len(tl.Tags))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tGROUP\tPOP\tSERIES")
	for _, tag := range tl.Tags {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%d\t%d\n", tag.Name, tag.GroupID, tag.Popularity, tag.SeriesCount)
	}
	_ = w.Flush()
	return nil
}
