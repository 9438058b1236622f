package viewmodel

import (
	"time"

	"github.com/shopspring/decimal"

	"price-history-viewer/internal/analytics"
	"price-history-viewer/internal/window"
)

// Request describes one render pass: which items, over which window, with
// or without the moving average overlay.
type Request struct {
	Items  []string
	Window window.Window
	// MovingAverage toggles the overlay; MAPeriodHours sets its span in
	// hours, 1 through 24.
	MovingAverage bool
	MAPeriodHours int
}

// Point is one plotted observation. Price and MovingAverage are nil where
// the series has no value at this instant.
type Point struct {
	Timestamp     time.Time
	Price         *decimal.Decimal
	MovingAverage *decimal.Decimal
}

// ItemView is the render-ready projection of one selected item.
type ItemView struct {
	Name     string
	Label    string
	Supply   int64
	ImageURL string
	Stats    analytics.Summary
	// Volatility holds the 1d, 7d, and 30d horizons computed against the
	// full history, then the "all" horizon over the filtered window.
	Volatility []analytics.HorizonVolatility
	Points     []Point
}

// View is the flat structure handed to renderers. It carries data only;
// formatting decisions belong to the renderer.
type View struct {
	GeneratedAt  time.Time
	PriceModTime time.Time
	WindowLabel  string
	Rows         int
	// MAPeriodHours is zero when the overlay is disabled.
	MAPeriodHours int
	Items         []ItemView
	// Notices records the degradations of this pass: catalogs that failed
	// to load, items without supply or image entries.
	Notices []string
}
