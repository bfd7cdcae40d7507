package travellog

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Mode expresses how a trip was travelled.
type Mode uint8

const (
	ModeWalk Mode = iota
	ModeCycle
	ModeBike
	ModeCar
	ModeBus
	ModeTrain
	ModeFlight
)

var modeNames = [...]string{"Walk", "Cycle", "Bike", "Car", "Bus", "Train", "Flight"}

var modeIcons = [...]string{"🚶", "🚴", "🛵", "🚖", "🚍", "🚅", "🛫"}

// Modes returns every travel mode in display order.
func Modes() []Mode {
	return []Mode{ModeWalk, ModeCycle, ModeBike, ModeCar, ModeBus, ModeTrain, ModeFlight}
}

// ParseMode resolves user input to a Mode, matching canonical names
// case-insensitively.
func ParseMode(input string) (Mode, error) {
	trimmed := strings.TrimSpace(input)
	for i, name := range modeNames {
		if strings.EqualFold(trimmed, name) {
			return Mode(i), nil
		}
	}
	return ModeWalk, fmt.Errorf("unknown travel mode %q", input)
}

// String returns the canonical mode name. This is also the persisted form.
func (m Mode) String() string {
	if int(m) >= len(modeNames) {
		return modeNames[ModeWalk]
	}
	return modeNames[m]
}

// Label returns the display label with the mode's icon.
func (m Mode) Label() string {
	if int(m) >= len(modeIcons) {
		m = ModeWalk
	}
	return modeIcons[m] + modeNames[m]
}

// MarshalJSON stores modes by canonical name so the durable record stays
// readable and stable across reorderings of the enum.
func (m Mode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON accepts canonical names case-insensitively.
func (m *Mode) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParseMode(name)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
