package app

import (
	"fmt"
	"os"

	"price-history-viewer/internal/render"
)

// Show assembles one view and prints it to stdout.
func (a *App) Show(opts ShowOptions) error {
	assembler := a.newAssembler()
	req := a.buildRequest(opts.Items, opts.Window, opts.MovingAverage, opts.MAPeriodHours)

	view, err := assembler.Build(req)
	if err != nil {
		return err
	}

	if err := render.Text(os.Stdout, view); err != nil {
		return err
	}
	if opts.Tail > 0 {
		fmt.Fprintln(os.Stdout)
		if err := render.SeriesTail(os.Stdout, view, opts.Tail); err != nil {
			return err
		}
	}
	return nil
}
