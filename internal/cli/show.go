package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"price-history-viewer/internal/app"
)

var (
	showItems    []string
	showFrom     string
	showTo       string
	showLast     string
	showMA       bool
	showMAPeriod int
	showTail     int
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Display windowed statistics for selected items",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(showItems) == 0 {
			return fmt.Errorf("--item must name at least one item")
		}

		win, err := parseWindow(getApp().Config, showFrom, showTo, showLast)
		if err != nil {
			return err
		}

		opts := app.ShowOptions{
			Items:         showItems,
			Window:        win,
			MovingAverage: maOverride(cmd, showMA),
			MAPeriodHours: showMAPeriod,
			Tail:          showTail,
		}

		return getApp().Show(opts)
	},
}

func init() {
	showCmd.Flags().StringArrayVar(&showItems, "item", nil, "Item to display; repeat for several (names may contain commas)")
	showCmd.Flags().StringVar(&showFrom, "from", "", "Start date (YYYY-MM-DD, inclusive)")
	showCmd.Flags().StringVar(&showTo, "to", "", "End date (YYYY-MM-DD, inclusive)")
	showCmd.Flags().StringVar(&showLast, "last", "", "Lookback from the newest row, e.g. 24h; 0 selects all history")
	showCmd.Flags().BoolVar(&showMA, "ma", true, "Overlay the moving average")
	showCmd.Flags().IntVar(&showMAPeriod, "ma-period", 0, "Moving average period in hours, 1 to 24 (defaults to config)")
	showCmd.Flags().IntVar(&showTail, "tail", 0, "Also print the last N windowed rows")
}
