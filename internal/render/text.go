package render

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"price-history-viewer/internal/analytics"
	"price-history-viewer/internal/viewmodel"
)

// unavailable is what every metric without a value renders as. It must stay
// visually distinct from "0.00".
const unavailable = "n/a"

// Text writes the view as an aligned terminal summary.
func Text(w io.Writer, view *viewmodel.View) error {
	fmt.Fprintf(w, "Price history, %s\n", view.WindowLabel)
	fmt.Fprintf(w, "Data as of %s, %d rows in window\n\n",
		view.PriceModTime.UTC().Format(time.RFC3339), view.Rows)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ITEM\tCURRENT\tMIN\tMAX\tCHANGE\tSUPPLY\tVOL 1D\tVOL 7D\tVOL 30D\tVOL ALL")
	for _, item := range view.Items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			item.Name,
			formatPrice(item.Stats.Current),
			formatPrice(item.Stats.Min),
			formatPrice(item.Stats.Max),
			formatChange(item.Stats),
			humanize.Comma(item.Supply),
			formatHorizon(item.Volatility, analytics.HorizonDay),
			formatHorizon(item.Volatility, analytics.HorizonWeek),
			formatHorizon(item.Volatility, analytics.HorizonMonth),
			formatHorizon(item.Volatility, analytics.HorizonAll),
		)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush summary table: %w", err)
	}

	if len(view.Items) == 1 {
		fmt.Fprintf(w, "\nImage: %s\n", view.Items[0].ImageURL)
	}
	if len(view.Notices) > 0 {
		fmt.Fprintln(w, "\nNotices:")
		for _, n := range view.Notices {
			fmt.Fprintf(w, "  - %s\n", n)
		}
	}
	return nil
}

// SeriesTail writes the last n rows of every selected series, oldest first.
func SeriesTail(w io.Writer, view *viewmodel.View, n int) error {
	if len(view.Items) == 0 || n <= 0 {
		return nil
	}
	rows := len(view.Items[0].Points)
	start := rows - n
	if start < 0 {
		start = 0
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	header := "TIME"
	for _, item := range view.Items {
		header += "\t" + item.Name
		if view.MAPeriodHours > 0 {
			header += fmt.Sprintf("\t%s MA(%dh)", item.Name, view.MAPeriodHours)
		}
	}
	fmt.Fprintln(tw, header)

	for i := start; i < rows; i++ {
		line := view.Items[0].Points[i].Timestamp.UTC().Format("2006-01-02 15:04")
		for _, item := range view.Items {
			line += "\t" + formatPrice(item.Points[i].Price)
			if view.MAPeriodHours > 0 {
				line += "\t" + formatPrice(item.Points[i].MovingAverage)
			}
		}
		fmt.Fprintln(tw, line)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush series tail: %w", err)
	}
	return nil
}

func formatPrice(v *decimal.Decimal) string {
	if v == nil {
		return unavailable
	}
	return v.StringFixed(2)
}

func formatChange(s analytics.Summary) string {
	if s.PercentChange == nil {
		return unavailable
	}
	return fmt.Sprintf("%s %s%%", directionArrow(s.Direction), s.PercentChange.Abs().StringFixed(2))
}

func directionArrow(direction string) string {
	switch direction {
	case analytics.DirectionUp:
		return "↑"
	case analytics.DirectionDown:
		return "↓"
	default:
		return "→"
	}
}

func formatHorizon(vols []analytics.HorizonVolatility, label string) string {
	for _, hv := range vols {
		if hv.Label != label {
			continue
		}
		if hv.Pct == nil {
			return unavailable
		}
		return fmt.Sprintf("%s%% (%s)", hv.Pct.StringFixed(2), hv.Band)
	}
	return unavailable
}
