package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"price-history-viewer/internal/render"
	"price-history-viewer/internal/scheduler"
)

// Watch redraws the view on an interval until interrupted. The assembler
// and its loaders live across refreshes so the price table cache and its
// mtime check decide when the file is actually re-read.
func (a *App) Watch(ctx context.Context, opts WatchOptions) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	interval := a.Config.Watch.Interval
	if opts.Interval > 0 {
		interval = opts.Interval
	}

	assembler := a.newAssembler()
	req := a.buildRequest(opts.Items, opts.Window, opts.MovingAverage, opts.MAPeriodHours)

	redraw := func(now time.Time) error {
		view, err := assembler.Build(req)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "\n=== refreshed %s ===\n", now.UTC().Format(time.RFC3339))
		return render.Text(os.Stdout, view)
	}

	// First draw happens immediately; a bad selection should fail the
	// command, not surface minutes later inside the loop.
	if err := redraw(time.Now()); err != nil {
		return err
	}

	sched := scheduler.New(scheduler.Options{
		Interval:        interval,
		AlignToInterval: a.Config.Watch.AlignToInterval,
		StartupDelay:    a.Config.Watch.StartupDelay,
	}, a.Logger)

	a.Logger.Info().Dur("interval", interval).Msg("watching price history")
	err := sched.Run(ctx, func(ctx context.Context, now time.Time) error {
		return redraw(now)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	a.Logger.Info().Msg("watch stopped")
	return nil
}
