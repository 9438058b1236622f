package analytics

import (
	"time"

	"github.com/shopspring/decimal"
)

// Horizon labels under which volatility is reported.
const (
	HorizonDay   = "1d"
	HorizonWeek  = "7d"
	HorizonMonth = "30d"
	HorizonAll   = "all"
)

// Volatility bands.
const (
	BandLow    = "low"
	BandMedium = "medium"
	BandHigh   = "high"
)

var trailingHorizons = []struct {
	label string
	span  time.Duration
}{
	{HorizonDay, 24 * time.Hour},
	{HorizonWeek, 7 * 24 * time.Hour},
	{HorizonMonth, 30 * 24 * time.Hour},
}

var (
	bandLowCeiling  = decimal.NewFromInt(10)
	bandHighCeiling = decimal.NewFromInt(30)
)

// HorizonVolatility carries one horizon's relative price range. A nil Pct
// means the horizon had too little data to measure.
type HorizonVolatility struct {
	Label string
	Pct   *decimal.Decimal
	Band  string
}

// Volatility measures the relative range (max-min)/min*100 over the
// non-absent observations. It is unavailable when fewer than two valid
// observations exist or the minimum is zero.
func Volatility(values []*decimal.Decimal) *decimal.Decimal {
	var min, max *decimal.Decimal
	valid := 0
	for _, v := range values {
		if v == nil {
			continue
		}
		valid++
		if min == nil || v.LessThan(*min) {
			min = v
		}
		if max == nil || v.GreaterThan(*max) {
			max = v
		}
	}
	if valid < 2 || min.IsZero() {
		return nil
	}
	pct := max.Sub(*min).Div(*min).Mul(hundred)
	return &pct
}

// TrailingVolatilities evaluates the fixed 1d, 7d, and 30d horizons against
// a series anchored at the given newest timestamp. Horizons are independent:
// a sparse day does not disturb the week or month figures. timestamps and
// values must be aligned.
func TrailingVolatilities(timestamps []time.Time, values []*decimal.Decimal, anchor time.Time) []HorizonVolatility {
	out := make([]HorizonVolatility, 0, len(trailingHorizons))
	for _, h := range trailingHorizons {
		cutoff := anchor.Add(-h.span)
		var window []*decimal.Decimal
		for i, ts := range timestamps {
			if !ts.Before(cutoff) {
				window = append(window, values[i])
			}
		}
		out = append(out, horizonResult(h.label, Volatility(window)))
	}
	return out
}

// AllTimeVolatility evaluates the whole given series as the "all" horizon.
func AllTimeVolatility(values []*decimal.Decimal) HorizonVolatility {
	return horizonResult(HorizonAll, Volatility(values))
}

func horizonResult(label string, pct *decimal.Decimal) HorizonVolatility {
	hv := HorizonVolatility{Label: label, Pct: pct}
	if pct != nil {
		hv.Band = Band(*pct)
	}
	return hv
}

// Band classifies a volatility percentage: below 10 is low, 10 through 30
// is medium, above 30 is high.
func Band(pct decimal.Decimal) string {
	switch {
	case pct.LessThan(bandLowCeiling):
		return BandLow
	case pct.LessThanOrEqual(bandHighCeiling):
		return BandMedium
	default:
		return BandHigh
	}
}
