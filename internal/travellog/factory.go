package travellog

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Input carries the raw form values for a new travel log. Distance, Duration,
// and Mode arrive as the user typed them; the Factory owns parsing.
type Input struct {
	From     string
	To       string
	Distance string
	Duration string
	Mode     string
	Lat      float64
	Lng      float64
}

// Factory validates raw input and constructs travel logs with derived fields.
// Ids come from the creation timestamp in milliseconds, bumped past the last
// issued id so rapid creation never collides.
type Factory struct {
	now    func() time.Time
	lastID int64
}

// NewFactory returns a Factory using the wall clock.
func NewFactory() *Factory {
	return &Factory{now: time.Now}
}

// NewFactoryAt returns a Factory with an injected clock.
func NewFactoryAt(now func() time.Time) *Factory {
	return &Factory{now: now}
}

// MarkUsed records an id already present in the target collection so newly
// issued ids never collide with persisted logs.
func (f *Factory) MarkUsed(id int64) {
	if id > f.lastID {
		f.lastID = id
	}
}

// Create validates in and returns a fully formed travel log, or a
// *ValidationError naming every failing field. On failure nothing is
// constructed and no id is consumed.
func (f *Factory) Create(in Input) (TravelLog, error) {
	var bad []string

	from := strings.TrimSpace(in.From)
	if from == "" {
		bad = append(bad, "from")
	}
	to := strings.TrimSpace(in.To)
	if to == "" {
		bad = append(bad, "to")
	}

	distance, err := parsePositive(in.Distance)
	if err != nil {
		bad = append(bad, "distance")
	}
	duration, err := parsePositive(in.Duration)
	if err != nil {
		bad = append(bad, "duration")
	}

	mode, err := ParseMode(in.Mode)
	if err != nil {
		bad = append(bad, "type")
	}

	if in.Lat < -90 || in.Lat > 90 || math.IsNaN(in.Lat) {
		bad = append(bad, "lat")
	}
	if in.Lng < -180 || in.Lng > 180 || math.IsNaN(in.Lng) {
		bad = append(bad, "lng")
	}

	if len(bad) > 0 {
		return TravelLog{}, &ValidationError{Fields: bad}
	}

	createdAt := f.now()
	id := createdAt.UnixMilli()
	if id <= f.lastID {
		id = f.lastID + 1
	}
	f.lastID = id

	return TravelLog{
		ID:          id,
		From:        from,
		To:          to,
		Distance:    distance,
		Duration:    duration,
		Mode:        mode,
		Lat:         in.Lat,
		Lng:         in.Lng,
		CreatedAt:   createdAt,
		Description: describe(to, createdAt),
	}, nil
}

func parsePositive(input string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil {
		return 0, err
	}
	if value <= 0 || math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, strconv.ErrRange
	}
	return value, nil
}
