package render

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"price-history-viewer/internal/analytics"
	"price-history-viewer/internal/viewmodel"
)

func dec(t *testing.T, s string) *decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return &d
}

func sampleView(t *testing.T) *viewmodel.View {
	t.Helper()
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	change := dec(t, "20")
	return &viewmodel.View{
		PriceModTime:  base.Add(48 * time.Hour),
		WindowLabel:   "all history",
		Rows:          3,
		MAPeriodHours: 1,
		Items: []viewmodel.ItemView{{
			Name:     "Widget",
			Label:    "Widget (Supply: 1500)",
			Supply:   1500,
			ImageURL: "https://cdn.example.com/widget.png",
			Stats: analytics.Summary{
				Current:       dec(t, "12"),
				Min:           dec(t, "10"),
				Max:           dec(t, "12"),
				PercentChange: change,
				Direction:     analytics.DirectionUp,
			},
			Volatility: []analytics.HorizonVolatility{
				{Label: analytics.HorizonDay},
				{Label: analytics.HorizonWeek, Pct: dec(t, "9.09"), Band: analytics.BandLow},
				{Label: analytics.HorizonMonth, Pct: dec(t, "20"), Band: analytics.BandMedium},
				{Label: analytics.HorizonAll, Pct: dec(t, "20"), Band: analytics.BandMedium},
			},
			Points: []viewmodel.Point{
				{Timestamp: base, Price: dec(t, "10")},
				{Timestamp: base.Add(30 * time.Minute), Price: nil, MovingAverage: nil},
				{Timestamp: base.Add(60 * time.Minute), Price: dec(t, "12"), MovingAverage: dec(t, "11")},
			},
		}},
		Notices: []string{`no supply entry for "Gadget", defaulting to 0`},
	}
}

func TestTextSummary(t *testing.T) {
	var buf bytes.Buffer
	if err := Text(&buf, sampleView(t)); err != nil {
		t.Fatalf("Text: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Widget",
		"12.00",
		"↑ 20.00%",
		"1,500",
		"n/a",
		"9.09% (low)",
		"Image: https://cdn.example.com/widget.png",
		"Notices:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTextDistinguishesAbsentFromZero(t *testing.T) {
	view := sampleView(t)
	view.Items[0].Stats = analytics.Summary{}
	view.Items[0].Volatility = nil

	var buf bytes.Buffer
	if err := Text(&buf, view); err != nil {
		t.Fatalf("Text: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, unavailable) {
		t.Fatal("missing metrics must render as n/a")
	}
	if strings.Contains(out, "0.00") {
		t.Fatalf("missing metrics must not render as zero:\n%s", out)
	}
}

func TestTextOmitsImageForMultipleItems(t *testing.T) {
	view := sampleView(t)
	view.Items = append(view.Items, view.Items[0])

	var buf bytes.Buffer
	if err := Text(&buf, view); err != nil {
		t.Fatalf("Text: %v", err)
	}
	if strings.Contains(buf.String(), "Image:") {
		t.Fatal("image line is for single-item views only")
	}
}

func TestSeriesTail(t *testing.T) {
	var buf bytes.Buffer
	if err := SeriesTail(&buf, sampleView(t), 2); err != nil {
		t.Fatalf("SeriesTail: %v", err)
	}
	out := buf.String()

	if strings.Contains(out, "2024-05-01 00:00") {
		t.Fatal("tail of 2 must drop the first row")
	}
	if !strings.Contains(out, "2024-05-01 01:00") {
		t.Fatalf("tail missing last row:\n%s", out)
	}
	if !strings.Contains(out, "Widget MA(1h)") {
		t.Fatalf("tail missing the moving average column:\n%s", out)
	}
}

func TestCSVWideLayout(t *testing.T) {
	var buf bytes.Buffer
	if err := CSV(&buf, sampleView(t)); err != nil {
		t.Fatalf("CSV: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("lines = %d, want header plus three rows", len(lines))
	}
	if lines[0] != "timestamp,Widget,Widget_ma" {
		t.Fatalf("header = %q", lines[0])
	}
	// 缺失值必须落成空单元格，而不是 0。
	if lines[2] != "2024-05-01T00:30:00Z,," {
		t.Fatalf("absent row = %q, want empty cells", lines[2])
	}
	if lines[3] != "2024-05-01T01:00:00Z,12,11" {
		t.Fatalf("last row = %q", lines[3])
	}
}

func TestCSVWithoutMovingAverage(t *testing.T) {
	view := sampleView(t)
	view.MAPeriodHours = 0

	var buf bytes.Buffer
	if err := CSV(&buf, view); err != nil {
		t.Fatalf("CSV: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[0] != "timestamp,Widget" {
		t.Fatalf("header = %q, want no MA column", lines[0])
	}
}

func TestChartWritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "chart.png")
	if err := Chart(sampleView(t), path, 640, 480); err != nil {
		t.Fatalf("Chart: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat chart: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("chart file is empty")
	}
}

func TestChartNothingToDraw(t *testing.T) {
	view := sampleView(t)
	view.Items[0].Points = view.Items[0].Points[:1]

	err := Chart(view, filepath.Join(t.TempDir(), "chart.png"), 640, 480)
	if !errors.Is(err, ErrNothingToDraw) {
		t.Fatalf("err = %v, want ErrNothingToDraw", err)
	}
}
