package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"price-history-viewer/internal/viewmodel"
)

// CSV writes the view's series back out in the wide input layout: one
// timestamp column, one column per item, plus one <item>_ma column per item
// when the moving average is enabled. Absent values stay empty cells.
func CSV(w io.Writer, view *viewmodel.View) error {
	cw := csv.NewWriter(w)

	header := []string{"timestamp"}
	for _, item := range view.Items {
		header = append(header, item.Name)
		if view.MAPeriodHours > 0 {
			header = append(header, item.Name+"_ma")
		}
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	rows := 0
	if len(view.Items) > 0 {
		rows = len(view.Items[0].Points)
	}
	record := make([]string, 0, len(header))
	for i := 0; i < rows; i++ {
		record = record[:0]
		record = append(record, view.Items[0].Points[i].Timestamp.UTC().Format(time.RFC3339))
		for _, item := range view.Items {
			record = append(record, cell(item.Points[i].Price))
			if view.MAPeriodHours > 0 {
				record = append(record, cell(item.Points[i].MovingAverage))
			}
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

func cell(v *decimal.Decimal) string {
	if v == nil {
		return ""
	}
	return v.String()
}
