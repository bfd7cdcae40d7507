package app

import "github.com/hzafar/tripmark/internal/locate"

// Event is a completion delivered back to the controller through Apply.
// Mirrors the message style of the TUI layer: plain structs switched on by
// concrete type.
type Event any

// Task is asynchronous work the caller runs off the dispatch goroutine. Its
// resulting Event must be fed back into Apply. Tasks touch no controller
// state beyond their captured inputs, so any number may run concurrently.
type Task func() Event

// PositionAcquired resumes startup once the current position is known.
type PositionAcquired struct {
	Pos locate.Position
}

// PositionDenied resumes startup when position acquisition failed. The map
// stays down for the rest of the session.
type PositionDenied struct {
	Err error
}

// NameResolved carries popup content for exactly one marker. Out-of-order
// completions are fine; completions for deleted logs are dropped.
type NameResolved struct {
	ID   int64
	Name string
}

// PrefillResolved carries the destination pre-fill for the open entry form.
// The coordinates identify which click the lookup belongs to.
type PrefillResolved struct {
	Lat  float64
	Lng  float64
	Name string
}
