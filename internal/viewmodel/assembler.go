package viewmodel

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"price-history-viewer/internal/analytics"
	"price-history-viewer/internal/catalog"
	"price-history-viewer/internal/pricetable"
)

var (
	// ErrEmptySelection signals a request naming no items.
	ErrEmptySelection = errors.New("viewmodel: no items selected")
	// ErrUnknownItem signals selected names that are not price table
	// columns.
	ErrUnknownItem = errors.New("viewmodel: unknown item")
)

// PriceProvider serves the current price table snapshot.
type PriceProvider interface {
	PriceTable() (*pricetable.Table, error)
}

// SupplyProvider serves the supply catalog.
type SupplyProvider interface {
	SupplyCatalog() (catalog.Supply, error)
}

// ImageProvider serves the image catalog.
type ImageProvider interface {
	ImageCatalog() (catalog.Images, error)
}

// Options tune assembly.
type Options struct {
	// DefaultImageURL stands in for items without a catalog entry.
	DefaultImageURL string
	// SamplesPerHour converts the moving average period from hours to
	// samples; the collector appends twice per hour by default.
	SamplesPerHour int
}

// Assembler joins the price table with the supply and image catalogs and
// derives the per-item statistics for one render pass. The price table is
// required; either catalog may fail and the pass degrades with a notice.
type Assembler struct {
	prices PriceProvider
	supply SupplyProvider
	images ImageProvider
	opts   Options
	logger zerolog.Logger
	now    func() time.Time
}

// New wires an assembler over its three sources.
func New(prices PriceProvider, supply SupplyProvider, images ImageProvider, opts Options, logger zerolog.Logger) *Assembler {
	if opts.SamplesPerHour <= 0 {
		opts.SamplesPerHour = 2
	}
	return &Assembler{
		prices: prices,
		supply: supply,
		images: images,
		opts:   opts,
		logger: logger.With().Str("component", "viewmodel").Logger(),
		now:    time.Now,
	}
}

// Build runs one synchronous pass: load, validate, filter, analyze, join.
func (a *Assembler) Build(req Request) (*View, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptySelection
	}
	if req.MovingAverage && (req.MAPeriodHours < 1 || req.MAPeriodHours > 24) {
		return nil, fmt.Errorf("moving average period must be between 1 and 24 hours, got %d", req.MAPeriodHours)
	}

	table, err := a.prices.PriceTable()
	if err != nil {
		return nil, fmt.Errorf("load price table: %w", err)
	}

	var unknown []string
	for _, name := range req.Items {
		if _, ok := table.Column(name); !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownItem, strings.Join(unknown, ", "))
	}

	view := &View{
		GeneratedAt:  a.now(),
		PriceModTime: table.ModTime(),
		WindowLabel:  req.Window.String(),
	}

	supply, err := a.supply.SupplyCatalog()
	if err != nil {
		a.logger.Warn().Err(err).Msg("supply catalog unavailable, counts default to zero")
		view.Notices = append(view.Notices, fmt.Sprintf("supply catalog unavailable: %v", err))
	}
	images, err := a.images.ImageCatalog()
	if err != nil {
		a.logger.Warn().Err(err).Msg("image catalog unavailable, falling back to the default image")
		view.Notices = append(view.Notices, fmt.Sprintf("image catalog unavailable: %v", err))
	}

	filtered, err := req.Window.Apply(table)
	if err != nil {
		return nil, err
	}
	view.Rows = filtered.Len()

	maWindow := 0
	if req.MovingAverage {
		view.MAPeriodHours = req.MAPeriodHours
		maWindow = req.MAPeriodHours * a.opts.SamplesPerHour
	}

	// Trailing horizons are anchored at the newest row of the full table,
	// not the filtered window, so "volatility over the last day" keeps its
	// meaning whatever period is on screen.
	anchor, _ := table.Latest()

	timestamps := filtered.Timestamps()
	for _, name := range req.Items {
		values, _ := filtered.Column(name)
		item := ItemView{
			Name:  name,
			Stats: analytics.Summarize(values),
		}

		count, ok := supply.Get(name)
		if !ok {
			view.Notices = append(view.Notices, fmt.Sprintf("no supply entry for %q, defaulting to 0", name))
		}
		item.Supply = count
		item.Label = fmt.Sprintf("%s (Supply: %d)", name, count)

		url, ok := images.Lookup(name)
		if !ok {
			url = a.opts.DefaultImageURL
			view.Notices = append(view.Notices, fmt.Sprintf("no image found for %q", name))
		}
		item.ImageURL = url

		full, _ := table.Column(name)
		item.Volatility = analytics.TrailingVolatilities(table.Timestamps(), full, anchor)
		item.Volatility = append(item.Volatility, analytics.AllTimeVolatility(values))

		var ma []*decimal.Decimal
		if maWindow > 0 {
			ma, err = analytics.MovingAverage(values, maWindow)
			if err != nil {
				return nil, err
			}
		}
		points := make([]Point, len(timestamps))
		for i, ts := range timestamps {
			points[i] = Point{Timestamp: ts, Price: values[i]}
			if ma != nil {
				points[i].MovingAverage = ma[i]
			}
		}
		item.Points = points

		view.Items = append(view.Items, item)
	}

	a.logger.Debug().
		Int("items", len(view.Items)).
		Int("rows", view.Rows).
		Str("window", view.WindowLabel).
		Msg("view assembled")
	return view, nil
}
