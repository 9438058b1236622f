package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestVolatilityRelativeRange(t *testing.T) {
	pct := Volatility(series(t, "10", "12", "11"))
	wantEqual(t, "Volatility", pct, "20")
}

func TestVolatilityUnavailable(t *testing.T) {
	if Volatility(series(t, "10")) != nil {
		t.Fatal("one observation must be unmeasurable")
	}
	if Volatility(series(t, "10", "")) != nil {
		t.Fatal("one valid observation must be unmeasurable")
	}
	if Volatility(nil) != nil {
		t.Fatal("empty series must be unmeasurable")
	}
	if Volatility(series(t, "0", "5")) != nil {
		t.Fatal("zero minimum must be unmeasurable, not a division")
	}
}

func TestBandBoundaries(t *testing.T) {
	cases := []struct {
		pct  string
		want string
	}{
		{"9.99", BandLow},
		{"10", BandMedium},
		{"25", BandMedium},
		{"30", BandMedium},
		{"30.01", BandHigh},
	}
	for _, tc := range cases {
		d, err := decimal.NewFromString(tc.pct)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.pct, err)
		}
		if got := Band(d); got != tc.want {
			t.Errorf("Band(%s) = %q, want %q", tc.pct, got, tc.want)
		}
	}
}

func TestTrailingVolatilitiesIndependentHorizons(t *testing.T) {
	anchor := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	timestamps := []time.Time{
		anchor.Add(-20 * 24 * time.Hour),
		anchor.Add(-10 * 24 * time.Hour),
		anchor.Add(-3 * 24 * time.Hour),
		anchor.Add(-2 * time.Hour),
	}
	values := series(t, "10", "50", "12", "11")

	vols := TrailingVolatilities(timestamps, values, anchor)
	if len(vols) != 3 {
		t.Fatalf("got %d horizons, want 3", len(vols))
	}

	byLabel := map[string]HorizonVolatility{}
	for _, hv := range vols {
		byLabel[hv.Label] = hv
	}

	// Only one observation inside 24h, so the day horizon is unmeasurable.
	if day := byLabel[HorizonDay]; day.Pct != nil {
		t.Fatalf("1d Pct = %s, want unavailable", day.Pct)
	}

	// Week horizon sees 12 and 11 only; the 50 outside it must not leak in.
	week := byLabel[HorizonWeek]
	if week.Pct == nil || week.Pct.StringFixed(2) != "9.09" {
		t.Fatalf("7d Pct = %v, want 9.09", week.Pct)
	}
	if week.Band != BandLow {
		t.Fatalf("7d Band = %q, want low", week.Band)
	}

	// Month horizon includes the spike: (50-10)/10*100.
	month := byLabel[HorizonMonth]
	wantEqual(t, "30d Pct", month.Pct, "400")
	if month.Band != BandHigh {
		t.Fatalf("30d Band = %q, want high", month.Band)
	}
}

func TestAllTimeVolatility(t *testing.T) {
	hv := AllTimeVolatility(series(t, "10", "15"))
	if hv.Label != HorizonAll {
		t.Fatalf("Label = %q", hv.Label)
	}
	wantEqual(t, "all Pct", hv.Pct, "50")
	if hv.Band != BandHigh {
		t.Fatalf("Band = %q, want high", hv.Band)
	}

	empty := AllTimeVolatility(nil)
	if empty.Pct != nil || empty.Band != "" {
		t.Fatalf("empty series must be unmeasurable, got %+v", empty)
	}
}
