package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"price-history-viewer/internal/app"
)

var (
	exportItems     []string
	exportFrom      string
	exportTo        string
	exportLast      string
	exportMA        bool
	exportMAPeriod  int
	exportPNGPath   string
	exportCSVPath   string
	exportMaxPoints int
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the windowed series as CSV and/or PNG chart",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(exportItems) == 0 {
			return fmt.Errorf("--item must name at least one item")
		}

		win, err := parseWindow(getApp().Config, exportFrom, exportTo, exportLast)
		if err != nil {
			return err
		}

		opts := app.ExportOptions{
			Items:         exportItems,
			Window:        win,
			MovingAverage: maOverride(cmd, exportMA),
			MAPeriodHours: exportMAPeriod,
			PNGPath:       exportPNGPath,
			CSVPath:       exportCSVPath,
			MaxPoints:     exportMaxPoints,
		}

		return getApp().Export(opts)
	},
}

func init() {
	exportCmd.Flags().StringArrayVar(&exportItems, "item", nil, "Item to export; repeat for several")
	exportCmd.Flags().StringVar(&exportFrom, "from", "", "Start date (YYYY-MM-DD, inclusive)")
	exportCmd.Flags().StringVar(&exportTo, "to", "", "End date (YYYY-MM-DD, inclusive)")
	exportCmd.Flags().StringVar(&exportLast, "last", "", "Lookback from the newest row, e.g. 24h; 0 selects all history")
	exportCmd.Flags().BoolVar(&exportMA, "ma", true, "Include the moving average track")
	exportCmd.Flags().IntVar(&exportMAPeriod, "ma-period", 0, "Moving average period in hours, 1 to 24 (defaults to config)")
	exportCmd.Flags().StringVar(&exportPNGPath, "png", "", "Path to write PNG chart")
	exportCmd.Flags().StringVar(&exportCSVPath, "csv", "", "Path to write CSV data")
	exportCmd.Flags().IntVar(&exportMaxPoints, "max-points", 0, "Maximum data points to export (defaults to config)")
}
