package render

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"

	"price-history-viewer/internal/viewmodel"
)

// ErrNothingToDraw signals a window in which no selected series has enough
// points for a line.
var ErrNothingToDraw = errors.New("render: no drawable series in window")

// Chart renders the view's price series, and moving averages when present,
// to a PNG file. Absent observations are omitted rather than drawn as zero.
func Chart(view *viewmodel.View, path string, width, height int) error {
	var series []chart.Series
	for _, item := range view.Items {
		xs, ys := seriesPoints(item.Points, false)
		if len(xs) >= 2 {
			series = append(series, chart.TimeSeries{
				Name:    item.Label,
				XValues: xs,
				YValues: ys,
			})
		}
		if view.MAPeriodHours > 0 {
			mxs, mys := seriesPoints(item.Points, true)
			if len(mxs) >= 2 {
				series = append(series, chart.TimeSeries{
					Name:    fmt.Sprintf("%s MA(%dh)", item.Name, view.MAPeriodHours),
					XValues: mxs,
					YValues: mys,
					Style: chart.Style{
						StrokeDashArray: []float64{5.0, 5.0},
					},
				})
			}
		}
	}
	if len(series) == 0 {
		return ErrNothingToDraw
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("Price history, %s", view.WindowLabel),
		Width:  width,
		Height: height,
		XAxis: chart.XAxis{
			Name:           "Time",
			ValueFormatter: chart.TimeValueFormatterWithFormat("2006-01-02 15:04"),
		},
		YAxis: chart.YAxis{
			Name: "Price",
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	if err := ensureDir(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

// seriesPoints extracts the drawable (x, y) pairs for either the price or
// the moving average track.
func seriesPoints(points []viewmodel.Point, movingAverage bool) ([]time.Time, []float64) {
	var xs []time.Time
	var ys []float64
	for _, p := range points {
		v := p.Price
		if movingAverage {
			v = p.MovingAverage
		}
		if v == nil {
			continue
		}
		xs = append(xs, p.Timestamp)
		ys = append(ys, v.InexactFloat64())
	}
	return xs, ys
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	return nil
}
