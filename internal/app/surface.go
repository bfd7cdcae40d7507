package app

import "github.com/hzafar/tripmark/internal/travellog"

// MapSurface is the rendering collaborator for the map widget. The controller
// drives it; it never mutates application state. Location clicks travel the
// other way, delivered to the controller as ClickLocation calls.
type MapSurface interface {
	// Init prepares the surface centered on the given position and marks it
	// as the current location.
	Init(lat, lng float64)
	// AddMarker places a marker for a travel log. Popup content arrives
	// later via SetPopupContent once the log's name lookup resolves.
	AddMarker(id int64, lat, lng float64)
	// SetPopupContent attaches resolved popup content to a marker. Unknown
	// ids are ignored.
	SetPopupContent(id int64, content string)
	// RemoveMarker drops a single marker.
	RemoveMarker(id int64)
	// SetView re-centers the surface.
	SetView(lat, lng float64)
	// Reset removes every travel-log marker.
	Reset()
}

// Store is the durable-record collaborator. *store.Store satisfies it.
type Store interface {
	Save(logs []travellog.TravelLog) error
	Load() []travellog.TravelLog
	Clear() error
}

// Notifier surfaces user-facing notices. Failures in this system are never
// fatal; they end up here.
type Notifier interface {
	Notify(message string)
}
