package app

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"price-history-viewer/internal/render"
	"price-history-viewer/internal/viewmodel"
)

// Export renders the windowed series as CSV and/or a PNG chart.
func (a *App) Export(opts ExportOptions) error {
	if opts.CSVPath == "" && opts.PNGPath == "" {
		return errors.New("at least one of --csv or --png must be provided")
	}

	opts.MaxPoints = a.Config.ResolveMaxPoints(opts.MaxPoints)

	assembler := a.newAssembler()
	req := a.buildRequest(opts.Items, opts.Window, opts.MovingAverage, opts.MAPeriodHours)

	view, err := assembler.Build(req)
	if err != nil {
		return err
	}

	total := view.Rows
	downsampleView(view, opts.MaxPoints)
	a.Logger.Info().
		Int("total", total).
		Int("exported", view.Rows).
		Str("window", view.WindowLabel).
		Msg("exporting series")

	if opts.CSVPath != "" {
		if err := writeViewCSV(opts.CSVPath, view); err != nil {
			return err
		}
	}

	if opts.PNGPath != "" {
		if err := render.Chart(view, opts.PNGPath, a.Config.Export.ChartWidth, a.Config.Export.ChartHeight); err != nil {
			return err
		}
	}

	return nil
}

// downsampleView thins every item's points in place to at most max rows,
// keeping the first and last and an even spread between. All items share
// the time axis, so one index plan applies to all of them.
func downsampleView(view *viewmodel.View, max int) {
	if max <= 0 || view.Rows <= max || len(view.Items) == 0 {
		return
	}

	indices := make([]int, 0, max)
	if max == 1 {
		// A single exported point is the most recent one.
		indices = append(indices, view.Rows-1)
	} else {
		step := float64(view.Rows-1) / float64(max-1)
		for i := 0; i < max; i++ {
			idx := int(math.Round(step * float64(i)))
			if idx >= view.Rows {
				idx = view.Rows - 1
			}
			indices = append(indices, idx)
		}
	}

	for i := range view.Items {
		points := make([]viewmodel.Point, 0, len(indices))
		for _, idx := range indices {
			points = append(points, view.Items[i].Points[idx])
		}
		view.Items[i].Points = points
	}
	view.Rows = len(indices)
}

func writeViewCSV(path string, view *viewmodel.View) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer file.Close()

	return render.CSV(file, view)
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
