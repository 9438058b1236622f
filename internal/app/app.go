package app

import (
	"time"

	"github.com/rs/zerolog"

	"price-history-viewer/internal/catalog"
	"price-history-viewer/internal/config"
	"price-history-viewer/internal/pricetable"
	"price-history-viewer/internal/viewmodel"
	"price-history-viewer/internal/window"
)

// App aggregates configuration and shared dependencies for the CLI commands.
type App struct {
	Config *config.Config
	Logger zerolog.Logger
}

// NewApp constructs a new application handle.
func NewApp(cfg *config.Config, logger zerolog.Logger) *App {
	return &App{Config: cfg, Logger: logger.With().Str("component", "app").Logger()}
}

// newLoaders wires the three file loaders from config. Each command builds
// its own set; watch mode holds one set across refreshes so the price cache
// can do its job.
func (a *App) newLoaders() (*pricetable.Loader, *catalog.SupplyLoader, *catalog.ImageLoader) {
	prices := pricetable.NewLoader(a.Config.Data.PriceHistoryPath, a.Config.Data.PriceTTL, a.Logger)
	supply := catalog.NewSupplyLoader(a.Config.Data.SupplyPath, a.Logger)
	images := catalog.NewImageLoader(a.Config.Data.ImagePath, a.Logger)
	return prices, supply, images
}

func (a *App) newAssembler() *viewmodel.Assembler {
	prices, supply, images := a.newLoaders()
	return viewmodel.New(prices, supply, images, viewmodel.Options{
		DefaultImageURL: a.Config.Data.DefaultImageURL,
		SamplesPerHour:  a.Config.Analytics.SamplesPerHour,
	}, a.Logger)
}

// buildRequest applies config defaults to the per-command analysis flags.
func (a *App) buildRequest(items []string, win window.Window, ma *bool, maPeriod int) viewmodel.Request {
	req := viewmodel.Request{
		Items:         items,
		Window:        win,
		MovingAverage: a.Config.Analytics.MAEnabled,
		MAPeriodHours: a.Config.Analytics.MAPeriodHours,
	}
	if ma != nil {
		req.MovingAverage = *ma
	}
	if maPeriod > 0 {
		req.MAPeriodHours = maPeriod
	}
	return req
}

// ShowOptions configure the show command.
type ShowOptions struct {
	Items  []string
	Window window.Window
	// MovingAverage left nil takes the config default.
	MovingAverage *bool
	MAPeriodHours int
	// Tail prints the last N windowed rows after the summary.
	Tail int
}

// ExportOptions hold parameters for exporting the windowed series.
type ExportOptions struct {
	Items         []string
	Window        window.Window
	MovingAverage *bool
	MAPeriodHours int
	PNGPath       string
	CSVPath       string
	MaxPoints     int
}

// WatchOptions configure the periodic redraw loop.
type WatchOptions struct {
	Items         []string
	Window        window.Window
	MovingAverage *bool
	MAPeriodHours int
	Interval      time.Duration
}

// SeedOptions configure demo data generation.
type SeedOptions struct {
	Items int
	Days  int
	Seed  int64
}
