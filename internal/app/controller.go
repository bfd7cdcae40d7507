// Package app orchestrates the travel-log lifecycle: position acquisition,
// the entry form, validation, and keeping the in-memory collection in step
// with the map surface and the durable record.
//
// The controller is single-threaded by construction. User actions and
// completion events are applied from one goroutine; anything that suspends
// (position acquisition, name lookups) is returned as a Task the caller runs
// elsewhere, feeding the resulting Event back into Apply.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/hzafar/tripmark/internal/geocode"
	"github.com/hzafar/tripmark/internal/locate"
	"github.com/hzafar/tripmark/internal/travellog"
)

// State tracks where the controller is in the entry flow.
type State uint8

const (
	// StateIdle means no form is open and no startup work is pending.
	StateIdle State = iota
	// StateAwaitingPosition means geolocation is in flight.
	StateAwaitingPosition
	// StateFormOpen means a map click is held and the entry form is visible.
	StateFormOpen
)

// ErrNoFormOpen is returned by Submit when no map click is pending.
var ErrNoFormOpen = errors.New("no entry form is open")

// ErrMapUnavailable is returned by view operations while the map never
// initialized for the session.
var ErrMapUnavailable = errors.New("map is not available")

// FormInput carries the entry form's raw field values.
type FormInput struct {
	From     string
	To       string
	Distance string
	Duration string
	Mode     string
}

// Controller owns the log collection and is its only writer. Collaborators
// are injected so the TUI and the tests supply their own.
type Controller struct {
	ctx      context.Context
	factory  *travellog.Factory
	logs     *travellog.Collection
	store    Store
	surface  MapSurface
	resolver geocode.Resolver
	locator  locate.Locator
	notifier Notifier

	state    State
	mapReady bool
	current  locate.Position

	pendingLat float64
	pendingLng float64
	prefill    string
	hasPrefill bool
}

// New wires a controller with its collaborators.
func New(ctx context.Context, store Store, surface MapSurface, resolver geocode.Resolver, locator locate.Locator, notifier Notifier) *Controller {
	return &Controller{
		ctx:      ctx,
		factory:  travellog.NewFactory(),
		logs:     travellog.NewCollection(),
		store:    store,
		surface:  surface,
		resolver: resolver,
		locator:  locator,
		notifier: notifier,
	}
}

// State reports the current entry-flow state.
func (c *Controller) State() State {
	return c.state
}

// MapReady reports whether the map surface initialized for this session.
func (c *Controller) MapReady() bool {
	return c.mapReady
}

// Logs returns a fresh snapshot of the collection in display order.
func (c *Controller) Logs() []travellog.TravelLog {
	return c.logs.All()
}

// PendingClick returns the held map-click coordinates while the form is open.
func (c *Controller) PendingClick() (lat, lng float64, ok bool) {
	if c.state != StateFormOpen {
		return 0, 0, false
	}
	return c.pendingLat, c.pendingLng, true
}

// ConsumePrefill hands out the resolved destination pre-fill at most once.
func (c *Controller) ConsumePrefill() (string, bool) {
	if !c.hasPrefill {
		return "", false
	}
	c.hasPrefill = false
	return c.prefill, true
}

// Start begins position acquisition. The returned task completes with either
// PositionAcquired or PositionDenied.
func (c *Controller) Start() Task {
	c.state = StateAwaitingPosition
	locator := c.locator
	ctx := c.ctx
	return func() Event {
		pos, err := locator.Current(ctx)
		if err != nil {
			return PositionDenied{Err: err}
		}
		return PositionAcquired{Pos: pos}
	}
}

// Apply advances the state machine with a completed event and returns any
// follow-up tasks. It must only be called from the dispatch goroutine.
func (c *Controller) Apply(ev Event) []Task {
	switch ev := ev.(type) {
	case PositionAcquired:
		return c.handlePosition(ev.Pos)
	case PositionDenied:
		c.state = StateIdle
		c.notifier.Notify("Couldn't get your position; the map is unavailable this session.")
		return nil
	case NameResolved:
		// Lookups for logs deleted meanwhile complete harmlessly: the
		// surface ignores unknown marker ids.
		c.surface.SetPopupContent(ev.ID, ev.Name)
		return nil
	case PrefillResolved:
		if c.state == StateFormOpen && ev.Lat == c.pendingLat && ev.Lng == c.pendingLng && ev.Name != "" {
			c.prefill = ev.Name
			c.hasPrefill = true
		}
		return nil
	default:
		return nil
	}
}

func (c *Controller) handlePosition(pos locate.Position) []Task {
	c.state = StateIdle
	c.mapReady = true
	c.current = pos
	c.surface.Init(pos.Lat, pos.Lng)

	var tasks []Task
	for _, log := range c.store.Load() {
		if err := c.logs.Add(log); err != nil {
			continue
		}
		c.factory.MarkUsed(log.ID)
		c.surface.AddMarker(log.ID, log.Lat, log.Lng)
		tasks = append(tasks, c.resolveNameTask(log.ID, log.Lat, log.Lng))
	}
	if n := c.logs.Len(); n > 0 {
		c.notifier.Notify(fmt.Sprintf("Loaded %d travel log(s).", n))
	}
	return tasks
}

// ClickLocation captures a map click, opens the entry form, and returns a
// task that resolves a destination pre-fill for the clicked point.
func (c *Controller) ClickLocation(lat, lng float64) Task {
	c.state = StateFormOpen
	c.pendingLat = lat
	c.pendingLng = lng
	c.prefill = ""
	c.hasPrefill = false

	resolver := c.resolver
	ctx := c.ctx
	return func() Event {
		place, err := resolver.Reverse(ctx, lat, lng)
		if err != nil {
			// Degrade silently: the user just types the destination.
			return PrefillResolved{Lat: lat, Lng: lng}
		}
		return PrefillResolved{Lat: lat, Lng: lng, Name: place.Name}
	}
}

// CancelForm closes the entry form without creating anything.
func (c *Controller) CancelForm() {
	if c.state != StateFormOpen {
		return
	}
	c.state = StateIdle
	c.prefill = ""
	c.hasPrefill = false
}

// Submit validates the form and, on success, creates the log, places its
// marker, persists the collection, and closes the form. The returned task
// resolves the marker's popup content. On validation failure the form stays
// open and the collection is untouched.
func (c *Controller) Submit(in FormInput) (travellog.TravelLog, Task, error) {
	if c.state != StateFormOpen {
		return travellog.TravelLog{}, nil, ErrNoFormOpen
	}

	log, err := c.factory.Create(travellog.Input{
		From:     in.From,
		To:       in.To,
		Distance: in.Distance,
		Duration: in.Duration,
		Mode:     in.Mode,
		Lat:      c.pendingLat,
		Lng:      c.pendingLng,
	})
	if err != nil {
		return travellog.TravelLog{}, nil, err
	}

	if err := c.logs.Add(log); err != nil {
		return travellog.TravelLog{}, nil, err
	}
	c.surface.AddMarker(log.ID, log.Lat, log.Lng)

	c.state = StateIdle
	c.prefill = ""
	c.hasPrefill = false

	c.persist()
	return log, c.resolveNameTask(log.ID, log.Lat, log.Lng), nil
}

// Locate re-centers the map on the given log. The collection is untouched.
func (c *Controller) Locate(id int64) (travellog.TravelLog, error) {
	log, err := c.logs.FindByID(id)
	if err != nil {
		return travellog.TravelLog{}, fmt.Errorf("locate %d: %w", id, err)
	}
	if c.mapReady {
		c.surface.SetView(log.Lat, log.Lng)
	}
	return log, nil
}

// LocateCurrent re-centers the map on the session's startup position.
func (c *Controller) LocateCurrent() error {
	if !c.mapReady {
		return ErrMapUnavailable
	}
	c.surface.SetView(c.current.Lat, c.current.Lng)
	return nil
}

// DeleteOne removes a log, its marker, and persists the shrunk collection.
func (c *Controller) DeleteOne(id int64) (travellog.TravelLog, error) {
	removed, err := c.logs.RemoveByID(id)
	if err != nil {
		return travellog.TravelLog{}, fmt.Errorf("delete %d: %w", id, err)
	}
	c.surface.RemoveMarker(id)
	c.persist()
	c.notifier.Notify(fmt.Sprintf("Your travel to %s was deleted.", removed.To))
	return removed, nil
}

// DeleteAll clears the collection, the durable record, and the map markers.
func (c *Controller) DeleteAll() error {
	had := c.logs.Len()
	c.logs.Clear()
	c.surface.Reset()
	if err := c.store.Clear(); err != nil {
		c.notifier.Notify("Storage could not be cleared; logs may reappear next session.")
		return err
	}
	if had > 0 {
		c.notifier.Notify("All travel logs deleted.")
	}
	return nil
}

// persist writes the whole collection. A failed save keeps in-memory state
// authoritative for the session and only warns.
func (c *Controller) persist() {
	if err := c.store.Save(c.logs.All()); err != nil {
		c.notifier.Notify("Storage failed; this session's logs are not saved durably.")
	}
}

func (c *Controller) resolveNameTask(id int64, lat, lng float64) Task {
	resolver := c.resolver
	ctx := c.ctx
	return func() Event {
		place, err := resolver.Reverse(ctx, lat, lng)
		if err != nil || place.DisplayName == "" {
			return NameResolved{ID: id, Name: coordLabel(lat, lng)}
		}
		return NameResolved{ID: id, Name: place.DisplayName}
	}
}

func coordLabel(lat, lng float64) string {
	return fmt.Sprintf("%.4f, %.4f", lat, lng)
}
