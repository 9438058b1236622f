package analytics

import (
	"testing"

	"github.com/shopspring/decimal"
)

// series builds a price slice where an empty string is an absent cell.
func series(t *testing.T, cells ...string) []*decimal.Decimal {
	t.Helper()
	out := make([]*decimal.Decimal, len(cells))
	for i, c := range cells {
		if c == "" {
			continue
		}
		d, err := decimal.NewFromString(c)
		if err != nil {
			t.Fatalf("parse %q: %v", c, err)
		}
		out[i] = &d
	}
	return out
}

func wantEqual(t *testing.T, name string, got *decimal.Decimal, want string) {
	t.Helper()
	if got == nil {
		t.Fatalf("%s is unavailable, want %s", name, want)
	}
	w, err := decimal.NewFromString(want)
	if err != nil {
		t.Fatalf("parse %q: %v", want, err)
	}
	if !got.Equal(w) {
		t.Fatalf("%s = %s, want %s", name, got, want)
	}
}

func TestSummarizeSparseSeries(t *testing.T) {
	s := Summarize(series(t, "10", "", "12"))

	wantEqual(t, "Current", s.Current, "12")
	wantEqual(t, "Min", s.Min, "10")
	wantEqual(t, "Max", s.Max, "12")
	wantEqual(t, "PercentChange", s.PercentChange, "20")
	if s.Direction != DirectionUp {
		t.Fatalf("Direction = %q, want up", s.Direction)
	}
}

func TestSummarizeOrdering(t *testing.T) {
	s := Summarize(series(t, "8", "3", "", "15", "6"))
	if s.Min.GreaterThan(*s.Current) || s.Current.GreaterThan(*s.Max) {
		t.Fatalf("want Min <= Current <= Max, got %s, %s, %s", s.Min, s.Current, s.Max)
	}
	wantEqual(t, "Current", s.Current, "6")
	wantEqual(t, "Min", s.Min, "3")
	wantEqual(t, "Max", s.Max, "15")
	if s.Direction != DirectionDown {
		t.Fatalf("Direction = %q, want down", s.Direction)
	}
}

func TestSummarizeAllAbsent(t *testing.T) {
	s := Summarize(series(t, "", "", ""))
	if s.Current != nil || s.Min != nil || s.Max != nil || s.PercentChange != nil {
		t.Fatalf("all metrics must be unavailable, got %+v", s)
	}
	if s.Direction != "" {
		t.Fatalf("Direction = %q, want empty", s.Direction)
	}
}

func TestSummarizeZeroBaseline(t *testing.T) {
	s := Summarize(series(t, "0", "5"))
	if s.PercentChange != nil {
		t.Fatal("percent change from a zero baseline must be unavailable")
	}
	wantEqual(t, "Current", s.Current, "5")
}

func TestSummarizeFlat(t *testing.T) {
	s := Summarize(series(t, "7", "7"))
	wantEqual(t, "PercentChange", s.PercentChange, "0")
	if s.Direction != DirectionFlat {
		t.Fatalf("Direction = %q, want flat", s.Direction)
	}
}

func TestSummarizeSingleObservation(t *testing.T) {
	s := Summarize(series(t, "", "9", ""))
	wantEqual(t, "Current", s.Current, "9")
	wantEqual(t, "Min", s.Min, "9")
	wantEqual(t, "Max", s.Max, "9")
	wantEqual(t, "PercentChange", s.PercentChange, "0")
}

func TestFirstLastValid(t *testing.T) {
	vals := series(t, "", "4", "5", "")
	wantEqual(t, "FirstValid", FirstValid(vals), "4")
	wantEqual(t, "LastValid", LastValid(vals), "5")

	if FirstValid(nil) != nil || LastValid(nil) != nil {
		t.Fatal("empty series must have no valid observation")
	}
}

func TestMovingAverageLeadingNils(t *testing.T) {
	ma, err := MovingAverage(series(t, "1", "2", "3", "4", "5"), 3)
	if err != nil {
		t.Fatalf("MovingAverage: %v", err)
	}
	for i := 0; i < 2; i++ {
		if ma[i] != nil {
			t.Fatalf("ma[%d] = %s, want nil before a full window", i, ma[i])
		}
	}
	wantEqual(t, "ma[2]", ma[2], "2")
	wantEqual(t, "ma[3]", ma[3], "3")
	wantEqual(t, "ma[4]", ma[4], "4")
}

func TestMovingAverageWiderThanSeries(t *testing.T) {
	ma, err := MovingAverage(series(t, "1", "2", "3"), 4)
	if err != nil {
		t.Fatalf("MovingAverage: %v", err)
	}
	for i, v := range ma {
		if v != nil {
			t.Fatalf("ma[%d] = %s, want all nil when window exceeds series", i, v)
		}
	}
}

func TestMovingAverageAbsentCellBreaksWindow(t *testing.T) {
	ma, err := MovingAverage(series(t, "1", "2", "", "4", "5", "6"), 2)
	if err != nil {
		t.Fatalf("MovingAverage: %v", err)
	}
	if ma[0] != nil {
		t.Fatal("ma[0] must be nil")
	}
	wantEqual(t, "ma[1]", ma[1], "1.5")
	if ma[2] != nil {
		t.Fatal("window over an absent cell must be nil")
	}
	if ma[3] != nil {
		t.Fatal("window straddling an absent cell must be nil")
	}
	wantEqual(t, "ma[4]", ma[4], "4.5")
	wantEqual(t, "ma[5]", ma[5], "5.5")
}

func TestMovingAverageWindowOne(t *testing.T) {
	ma, err := MovingAverage(series(t, "3", "", "9"), 1)
	if err != nil {
		t.Fatalf("MovingAverage: %v", err)
	}
	wantEqual(t, "ma[0]", ma[0], "3")
	if ma[1] != nil {
		t.Fatal("absent input stays absent")
	}
	wantEqual(t, "ma[2]", ma[2], "9")
}

func TestMovingAverageRejectsBadWindow(t *testing.T) {
	if _, err := MovingAverage(series(t, "1"), 0); err == nil {
		t.Fatal("window 0 must be rejected")
	}
	if _, err := MovingAverage(series(t, "1"), -2); err == nil {
		t.Fatal("negative window must be rejected")
	}
}
