package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// mapPanel is the terminal map surface: a lat/lng viewport rendered as a
// character grid with one cell per coordinate step. It implements
// app.MapSurface through pointer receivers so surface calls made during
// event dispatch survive Bubble Tea's model copying.
type mapPanel struct {
	ready bool

	centerLat float64
	centerLng float64
	spanLat   float64 // degrees of latitude covered by the viewport

	width  int
	height int

	cursorRow int
	cursorCol int

	currentLat float64
	currentLng float64

	markers map[int64]marker
	order   []int64
}

type marker struct {
	lat   float64
	lng   float64
	popup string
}

const (
	defaultSpanLat = 0.5
	minSpanLat     = 0.005
	maxSpanLat     = 140
)

func newMapPanel() *mapPanel {
	return &mapPanel{
		spanLat: defaultSpanLat,
		width:   48,
		height:  16,
		markers: map[int64]marker{},
	}
}

// Init implements app.MapSurface.
func (p *mapPanel) Init(lat, lng float64) {
	p.ready = true
	p.centerLat, p.centerLng = lat, lng
	p.currentLat, p.currentLng = lat, lng
	p.cursorRow, p.cursorCol = p.height/2, p.width/2
}

// AddMarker implements app.MapSurface.
func (p *mapPanel) AddMarker(id int64, lat, lng float64) {
	if _, ok := p.markers[id]; !ok {
		p.order = append(p.order, id)
	}
	p.markers[id] = marker{lat: lat, lng: lng, popup: p.markers[id].popup}
}

// SetPopupContent implements app.MapSurface. Unknown ids are ignored so
// lookups that outlive their log complete harmlessly.
func (p *mapPanel) SetPopupContent(id int64, content string) {
	m, ok := p.markers[id]
	if !ok {
		return
	}
	m.popup = content
	p.markers[id] = m
}

// RemoveMarker implements app.MapSurface.
func (p *mapPanel) RemoveMarker(id int64) {
	if _, ok := p.markers[id]; !ok {
		return
	}
	delete(p.markers, id)
	for i, existing := range p.order {
		if existing == id {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
}

// SetView implements app.MapSurface.
func (p *mapPanel) SetView(lat, lng float64) {
	p.centerLat, p.centerLng = lat, lng
	p.cursorRow, p.cursorCol = p.height/2, p.width/2
}

// Reset implements app.MapSurface.
func (p *mapPanel) Reset() {
	p.markers = map[int64]marker{}
	p.order = nil
}

func (p *mapPanel) resize(width, height int) {
	if width < 16 {
		width = 16
	}
	if height < 6 {
		height = 6
	}
	p.width, p.height = width, height
	p.clampCursor()
}

// latPerCell is the latitude step of one grid row. Terminal cells are about
// twice as tall as wide, so a column advances half a row's worth of degrees
// to keep the viewport visually square-ish.
func (p *mapPanel) latPerCell() float64 {
	return p.spanLat / float64(p.height)
}

func (p *mapPanel) lngPerCell() float64 {
	return p.latPerCell() / 2
}

// cellToLatLng projects a grid cell to coordinates.
func (p *mapPanel) cellToLatLng(row, col int) (lat, lng float64) {
	lat = p.centerLat + float64(p.height/2-row)*p.latPerCell()
	lng = p.centerLng + float64(col-p.width/2)*p.lngPerCell()
	return clampLat(lat), wrapLng(lng)
}

// latLngToCell projects coordinates to the grid; ok is false outside the
// viewport.
func (p *mapPanel) latLngToCell(lat, lng float64) (row, col int, ok bool) {
	row = p.height/2 - int(math.Round((lat-p.centerLat)/p.latPerCell()))
	col = p.width/2 + int(math.Round((lng-p.centerLng)/p.lngPerCell()))
	if row < 0 || row >= p.height || col < 0 || col >= p.width {
		return 0, 0, false
	}
	return row, col, true
}

func (p *mapPanel) cursorLatLng() (lat, lng float64) {
	return p.cellToLatLng(p.cursorRow, p.cursorCol)
}

func (p *mapPanel) moveCursor(dRow, dCol int) {
	p.cursorRow += dRow
	p.cursorCol += dCol

	// Pan when the cursor runs off an edge.
	switch {
	case p.cursorRow < 0:
		p.centerLat = clampLat(p.centerLat + p.spanLat/4)
	case p.cursorRow >= p.height:
		p.centerLat = clampLat(p.centerLat - p.spanLat/4)
	case p.cursorCol < 0:
		p.centerLng = wrapLng(p.centerLng - float64(p.width/4)*p.lngPerCell())
	case p.cursorCol >= p.width:
		p.centerLng = wrapLng(p.centerLng + float64(p.width/4)*p.lngPerCell())
	}
	p.clampCursor()
}

func (p *mapPanel) clampCursor() {
	if p.cursorRow < 0 {
		p.cursorRow = 0
	}
	if p.cursorRow >= p.height {
		p.cursorRow = p.height - 1
	}
	if p.cursorCol < 0 {
		p.cursorCol = 0
	}
	if p.cursorCol >= p.width {
		p.cursorCol = p.width - 1
	}
}

func (p *mapPanel) zoom(factor float64) {
	p.spanLat *= factor
	if p.spanLat < minSpanLat {
		p.spanLat = minSpanLat
	}
	if p.spanLat > maxSpanLat {
		p.spanLat = maxSpanLat
	}
}

// markerAtCursor returns the popup content of the marker under the cursor.
func (p *mapPanel) markerAtCursor() (string, bool) {
	for _, id := range p.order {
		m := p.markers[id]
		row, col, ok := p.latLngToCell(m.lat, m.lng)
		if ok && row == p.cursorRow && col == p.cursorCol {
			if m.popup == "" {
				return "(resolving place name...)", true
			}
			return m.popup, true
		}
	}
	return "", false
}

var (
	gridStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	markerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	currentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("45")).Bold(true)
	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true)
)

func (p *mapPanel) view(highlightID int64) string {
	if !p.ready {
		return ""
	}

	type cell struct {
		ch    string
		style lipgloss.Style
	}
	grid := make([][]cell, p.height)
	for r := range grid {
		grid[r] = make([]cell, p.width)
		for c := range grid[r] {
			grid[r][c] = cell{ch: "·", style: gridStyle}
		}
	}

	if row, col, ok := p.latLngToCell(p.currentLat, p.currentLng); ok {
		grid[row][col] = cell{ch: "@", style: currentStyle}
	}
	for _, id := range p.order {
		m := p.markers[id]
		if row, col, ok := p.latLngToCell(m.lat, m.lng); ok {
			style := markerStyle
			if id == highlightID {
				style = cursorStyle
			}
			grid[row][col] = cell{ch: "●", style: style}
		}
	}
	grid[p.cursorRow][p.cursorCol] = cell{ch: "+", style: cursorStyle}

	var b strings.Builder
	for r, row := range grid {
		for _, c := range row {
			b.WriteString(c.style.Render(c.ch))
		}
		if r < len(grid)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func clampLat(lat float64) float64 {
	if lat > 90 {
		return 90
	}
	if lat < -90 {
		return -90
	}
	return lat
}

func wrapLng(lng float64) float64 {
	for lng > 180 {
		lng -= 360
	}
	for lng < -180 {
		lng += 360
	}
	return lng
}
