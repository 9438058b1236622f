package app

import (
	"testing"
	"time"

	"price-history-viewer/internal/viewmodel"
)

func pointsView(n int) *viewmodel.View {
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	points := make([]viewmodel.Point, n)
	for i := range points {
		points[i] = viewmodel.Point{Timestamp: base.Add(time.Duration(i) * time.Minute)}
	}
	return &viewmodel.View{
		Rows:  n,
		Items: []viewmodel.ItemView{{Name: "Widget", Points: points}},
	}
}

func TestDownsampleViewKeepsEndpoints(t *testing.T) {
	view := pointsView(1000)
	downsampleView(view, 100)

	if view.Rows != 100 {
		t.Fatalf("Rows = %d, want 100", view.Rows)
	}
	points := view.Items[0].Points
	if len(points) != 100 {
		t.Fatalf("points = %d, want 100", len(points))
	}
	first := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	if !points[0].Timestamp.Equal(first) {
		t.Errorf("first point = %v", points[0].Timestamp)
	}
	last := first.Add(999 * time.Minute)
	if !points[99].Timestamp.Equal(last) {
		t.Errorf("last point = %v, want the final row kept", points[99].Timestamp)
	}
}

func TestDownsampleViewToSinglePoint(t *testing.T) {
	view := pointsView(10)
	downsampleView(view, 1)

	if view.Rows != 1 {
		t.Fatalf("Rows = %d, want 1", view.Rows)
	}
	points := view.Items[0].Points
	if len(points) != 1 {
		t.Fatalf("points = %d, want 1", len(points))
	}
	last := time.Date(2024, 5, 1, 0, 9, 0, 0, time.UTC)
	if !points[0].Timestamp.Equal(last) {
		t.Errorf("kept point = %v, want the most recent row", points[0].Timestamp)
	}
}

func TestDownsampleViewNoopWhenSmall(t *testing.T) {
	view := pointsView(50)
	downsampleView(view, 100)
	if view.Rows != 50 || len(view.Items[0].Points) != 50 {
		t.Fatal("small views must pass through untouched")
	}
}
