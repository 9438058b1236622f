package analytics

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Direction labels for the sign of a percent change.
const (
	DirectionUp   = "up"
	DirectionDown = "down"
	DirectionFlat = "flat"
)

var hundred = decimal.NewFromInt(100)

// Summary aggregates one item's filtered series. A nil metric means the
// metric is unavailable for the window, which renderers must keep distinct
// from a legitimate zero.
type Summary struct {
	Current       *decimal.Decimal
	Min           *decimal.Decimal
	Max           *decimal.Decimal
	PercentChange *decimal.Decimal
	Direction     string
}

// FirstValid returns the earliest non-absent observation.
func FirstValid(values []*decimal.Decimal) *decimal.Decimal {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}

// LastValid returns the most recent non-absent observation, which is not
// necessarily the value on the last row.
func LastValid(values []*decimal.Decimal) *decimal.Decimal {
	for i := len(values) - 1; i >= 0; i-- {
		if values[i] != nil {
			return values[i]
		}
	}
	return nil
}

// Summarize computes current, min, max, and percent change over the
// non-absent observations of one series. Percent change runs from the first
// valid observation to the last; it is unavailable when fewer than one valid
// observation exists or the first one is zero.
func Summarize(values []*decimal.Decimal) Summary {
	var s Summary
	for _, v := range values {
		if v == nil {
			continue
		}
		if s.Min == nil || v.LessThan(*s.Min) {
			s.Min = v
		}
		if s.Max == nil || v.GreaterThan(*s.Max) {
			s.Max = v
		}
		s.Current = v
	}

	first := FirstValid(values)
	if first != nil && s.Current != nil && !first.IsZero() {
		change := s.Current.Sub(*first).Div(*first).Mul(hundred)
		s.PercentChange = &change
		s.Direction = classifyDirection(change)
	}
	return s
}

func classifyDirection(change decimal.Decimal) string {
	switch change.Sign() {
	case 1:
		return DirectionUp
	case -1:
		return DirectionDown
	default:
		return DirectionFlat
	}
}

// MovingAverage computes a simple rolling mean over exactly window
// consecutive samples. Positions without a full window of non-absent source
// values yield nil: the first window-1 positions, and any window that spans
// an absent cell. The result is aligned with the input.
func MovingAverage(values []*decimal.Decimal, window int) ([]*decimal.Decimal, error) {
	if window < 1 {
		return nil, errors.New("analytics: moving average window must be positive")
	}
	out := make([]*decimal.Decimal, len(values))
	windowDec := decimal.NewFromInt(int64(window))
	validRun := 0
	for i, v := range values {
		if v == nil {
			validRun = 0
			continue
		}
		validRun++
		if validRun < window {
			continue
		}
		sum := decimal.Zero
		for j := i - window + 1; j <= i; j++ {
			sum = sum.Add(*values[j])
		}
		mean := sum.Div(windowDec)
		out[i] = &mean
	}
	return out, nil
}
