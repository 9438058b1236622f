package window

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"price-history-viewer/internal/pricetable"
)

// ErrInvalid marks a window whose parameters cannot select anything.
var ErrInvalid = errors.New("window: invalid selection")

// Window selects rows of a price table either by an absolute calendar-day
// range or by a lookback from the newest timestamp. The zero value is the
// all-history lookback.
type Window struct {
	start    time.Time
	end      time.Time
	lookback time.Duration
	absolute bool
}

// AbsoluteRange selects rows whose timestamps fall on the calendar days
// from start through end, both inclusive. Clock components of the bounds
// are ignored.
func AbsoluteRange(start, end time.Time) Window {
	return Window{start: start, end: end, absolute: true}
}

// Lookback selects rows within d of the newest timestamp in the table. A
// zero d selects all history.
func Lookback(d time.Duration) Window {
	return Window{lookback: d}
}

// Validate checks the window parameters without consulting a table.
func (w Window) Validate() error {
	if w.absolute {
		if w.start.IsZero() || w.end.IsZero() {
			return fmt.Errorf("%w: select two dates to define the period", ErrInvalid)
		}
		if dayKey(w.start) > dayKey(w.end) {
			return fmt.Errorf("%w: start %s is after end %s",
				ErrInvalid, w.start.Format("2006-01-02"), w.end.Format("2006-01-02"))
		}
		return nil
	}
	if w.lookback < 0 {
		return fmt.Errorf("%w: negative lookback %s", ErrInvalid, w.lookback)
	}
	return nil
}

// Apply returns the rows of t selected by the window, preserving row order.
// An empty result is not an error. The all-history window returns t itself.
func (w Window) Apply(t *pricetable.Table) (*pricetable.Table, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	if w.absolute {
		return t.Select(w.absoluteRows(t)), nil
	}
	if w.lookback == 0 {
		return t, nil
	}
	latest, ok := t.Latest()
	if !ok {
		return t, nil
	}
	cutoff := latest.Add(-w.lookback)
	var rows []int
	for i, ts := range t.Timestamps() {
		if !ts.Before(cutoff) {
			rows = append(rows, i)
		}
	}
	return t.Select(rows), nil
}

func (w Window) absoluteRows(t *pricetable.Table) []int {
	lo, hi := dayKey(w.start), dayKey(w.end)
	var rows []int
	for i, ts := range t.Timestamps() {
		if k := dayKey(ts); k >= lo && k <= hi {
			rows = append(rows, i)
		}
	}
	return rows
}

// String renders the window for headings and logs.
func (w Window) String() string {
	if w.absolute {
		return fmt.Sprintf("%s to %s", w.start.Format("2006-01-02"), w.end.Format("2006-01-02"))
	}
	if w.lookback == 0 {
		return "all history"
	}
	return "last " + FormatDuration(w.lookback)
}

// FormatDuration renders a duration without the zero minute and second
// components Duration.String always appends.
func FormatDuration(d time.Duration) string {
	s := d.String()
	if strings.HasSuffix(s, "m0s") {
		s = strings.TrimSuffix(s, "0s")
	}
	if strings.HasSuffix(s, "h0m") {
		s = strings.TrimSuffix(s, "0m")
	}
	return s
}

// dayKey collapses a timestamp to its calendar day in the timestamp's own
// location, so intraday rows compare equal to their date.
func dayKey(t time.Time) int {
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}
