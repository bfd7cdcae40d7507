package ui

import "testing"

func TestPanelCellProjectionRoundTrip(t *testing.T) {
	p := newMapPanel()
	p.Init(30, 70)

	lat, lng := p.cellToLatLng(p.cursorRow, p.cursorCol)
	if lat != 30 || lng != 70 {
		t.Fatalf("center cell = %v,%v, want 30,70", lat, lng)
	}

	row, col, ok := p.latLngToCell(lat, lng)
	if !ok || row != p.cursorRow || col != p.cursorCol {
		t.Fatalf("round trip cell = %d,%d,%v, want %d,%d", row, col, ok, p.cursorRow, p.cursorCol)
	}
}

func TestPanelMarkerOutsideViewportNotProjected(t *testing.T) {
	p := newMapPanel()
	p.Init(30, 70)

	if _, _, ok := p.latLngToCell(-30, -70); ok {
		t.Fatalf("far-away point projected inside the viewport")
	}
}

func TestPanelRemoveMarkerLeavesNoTrace(t *testing.T) {
	p := newMapPanel()
	p.Init(30, 70)
	p.AddMarker(1, 30, 70)
	p.SetPopupContent(1, "Home")

	p.RemoveMarker(1)

	if len(p.markers) != 0 || len(p.order) != 0 {
		t.Fatalf("markers/order not empty after removal")
	}
	if _, ok := p.markerAtCursor(); ok {
		t.Fatalf("removed marker still under cursor")
	}
}

func TestPanelPopupForUnknownMarkerIgnored(t *testing.T) {
	p := newMapPanel()
	p.Init(30, 70)

	p.SetPopupContent(42, "ghost")

	if len(p.markers) != 0 {
		t.Fatalf("popup for unknown id created a marker")
	}
}

func TestPanelMarkerAtCursorShowsPopup(t *testing.T) {
	p := newMapPanel()
	p.Init(30, 70)
	p.AddMarker(7, 30, 70)

	popup, ok := p.markerAtCursor()
	if !ok {
		t.Fatalf("marker at cursor not found")
	}
	if popup != "(resolving place name...)" {
		t.Fatalf("popup = %q, want resolving placeholder before lookup completes", popup)
	}

	p.SetPopupContent(7, "Central Park")
	popup, _ = p.markerAtCursor()
	if popup != "Central Park" {
		t.Fatalf("popup = %q, want resolved content", popup)
	}
}

func TestPanelZoomStaysBounded(t *testing.T) {
	p := newMapPanel()
	p.Init(0, 0)

	for i := 0; i < 50; i++ {
		p.zoom(0.5)
	}
	if p.spanLat < minSpanLat {
		t.Fatalf("span %v below minimum", p.spanLat)
	}
	for i := 0; i < 50; i++ {
		p.zoom(2)
	}
	if p.spanLat > maxSpanLat {
		t.Fatalf("span %v above maximum", p.spanLat)
	}
}

func TestPanelResetClearsMarkersOnly(t *testing.T) {
	p := newMapPanel()
	p.Init(30, 70)
	p.AddMarker(1, 30, 70)
	p.AddMarker(2, 30.01, 70.01)

	p.Reset()

	if len(p.markers) != 0 {
		t.Fatalf("markers remain after reset")
	}
	if !p.ready || p.centerLat != 30 {
		t.Fatalf("reset disturbed the viewport")
	}
}
