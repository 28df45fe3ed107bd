package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/fritzprix/fred-mcp/internal/export"
	"github.com/fritzprix/fred-mcp/internal/fred"
	"github.com/fritzprix/fred-mcp/internal/jsonout"
)

var (
	dataLimit  int
	dataOffset int
	dataStart  string
	dataEnd    string
	dataOut    string
)

func init() {
	seriesDataCmd.Flags().IntVar(&dataLimit, "limit", 1000, "maximum number of data points")
	seriesDataCmd.Flags().IntVar(&dataOffset, "offset", 0, "data points to skip")
	seriesDataCmd.Flags().StringVar(&dataStart, "start", "", "observation start date (YYYY-MM-DD)")
	seriesDataCmd.Flags().StringVar(&dataEnd, "end", "", "observation end date (YYYY-MM-DD)")
	seriesDataCmd.Flags().StringVar(&dataOut, "out", "", "save the full dataset as JSON to this path")

	seriesCmd.AddCommand(seriesInfoCmd)
	seriesCmd.AddCommand(seriesDataCmd)
	rootCmd.AddCommand(seriesCmd)
}

var seriesCmd = &cobra.Command{
	Use:   "series",
	Short: "Inspect a data series",
}

var seriesInfoCmd = &cobra.Command{
	Use:   "info <series-id>",
	Short: "Show metadata for a series",
	Example: `  fred-mcp series info GDP
  fred-mcp series info UNRATE --json`,
	Args: cobra.ExactArgs(1),
	RunE: runSeriesInfo,
}

var seriesDataCmd = &cobra.Command{
	Use:   "data <series-id>",
	Short: "Show observations for a series",
	Example: `  fred-mcp series data UNRATE --limit 12
  fred-mcp series data GDP --start 2020-01-01 --out gdp.json`,
	Args: cobra.ExactArgs(1),
	RunE: runSeriesData,
}

func runSeriesInfo(cmd *cobra.Command, args []string) error {
	client, _, err := newFredClient()
	if err != nil {
		return err
	}

	info, _, err := client.SeriesInfo(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if jsonout.Enabled {
		return jsonout.Write(info)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(w, "ID\t%s\n", info.ID)
	_, _ = fmt.Fprintf(w, "Title\t%s\n", info.Title)
	_, _ = fmt.Fprintf(w, "Frequency\t%s\n", info.Frequency)
	_, _ = fmt.Fprintf(w, "Units\t%s\n", info.Units)
	_, _ = fmt.Fprintf(w, "Seasonal adjustment\t%s\n", info.SeasonalAdjustment)
	_, _ = fmt.Fprintf(w, "Range\t%s to %s\n", info.ObservationStart, info.ObservationEnd)
	_, _ = fmt.Fprintf(w, "Last updated\t%s\n", info.LastUpdated)
	_, _ = fmt.Fprintf(w, "Popularity\t%d\n", info.Popularity)
	_ = w.Flush()
	return nil
}

func runSeriesData(cmd *cobra.Command, args []string) error {
	seriesID := args[0]
	client, cfg, err := newFredClient()
	if err != nil {
		return err
	}

	if dataOut != "" {
		full, _, err := client.Observations(cmd.Context(), seriesID, &fred.ObservationOptions{
			ObservationStart: dataStart,
			ObservationEnd:   dataEnd,
		})
		if err != nil {
			return err
		}
		w := export.NewWriter(afero.NewOsFs(), cfg.Export.Allow)
		if err := w.SaveObservations(dataOut, full.Observations); err != nil {
			return err
		}
		fmt.Fprintf(jsonout.MsgOut(), "Saved %d observations to %s\n", len(full.Observations), dataOut)
	}

	ol, _, err := client.Observations(cmd.Context(), seriesID, &fred.ObservationOptions{
		Limit:            dataLimit,
		Offset:           dataOffset,
		ObservationStart: dataStart,
		ObservationEnd:   dataEnd,
	})
	if err != nil {
		return err
	}

	if jsonout.Enabled {
		return jsonout.Write(ol)
	}

	if len(ol.Observations) == 0 {
		fmt.Fprintf(jsonout.MsgOut(), "No data found for series %s\n", seriesID)
		return nil
	}

	fmt.Fprintf(jsonout.MsgOut(), "%s: showing %d of %d data points\n\n", seriesID, len(ol.Observations), ol.Count)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "DATE\tVALUE")
	for _, o := range ol.Observations {
		_, _ = fmt.Fprintf(w, "%s\t%s\n", o.Date, o.Value)
	}
	_ = w.Flush()
	return nil
}
