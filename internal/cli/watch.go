package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"price-history-viewer/internal/app"
)

var (
	watchItems    []string
	watchFrom     string
	watchTo       string
	watchLast     string
	watchMA       bool
	watchMAPeriod int
	watchInterval time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Redraw the view periodically until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(watchItems) == 0 {
			return fmt.Errorf("--item must name at least one item")
		}

		win, err := parseWindow(getApp().Config, watchFrom, watchTo, watchLast)
		if err != nil {
			return err
		}

		opts := app.WatchOptions{
			Items:         watchItems,
			Window:        win,
			MovingAverage: maOverride(cmd, watchMA),
			MAPeriodHours: watchMAPeriod,
			Interval:      watchInterval,
		}

		return getApp().Watch(cmd.Context(), opts)
	},
}

func init() {
	watchCmd.Flags().StringArrayVar(&watchItems, "item", nil, "Item to watch; repeat for several")
	watchCmd.Flags().StringVar(&watchFrom, "from", "", "Start date (YYYY-MM-DD, inclusive)")
	watchCmd.Flags().StringVar(&watchTo, "to", "", "End date (YYYY-MM-DD, inclusive)")
	watchCmd.Flags().StringVar(&watchLast, "last", "", "Lookback from the newest row, e.g. 24h; 0 selects all history")
	watchCmd.Flags().BoolVar(&watchMA, "ma", true, "Overlay the moving average")
	watchCmd.Flags().IntVar(&watchMAPeriod, "ma-period", 0, "Moving average period in hours, 1 to 24 (defaults to config)")
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 0, "Refresh interval (defaults to config)")
}
