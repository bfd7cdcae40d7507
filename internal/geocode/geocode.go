// Package geocode resolves geographic coordinates to human-readable place
// names through the Nominatim reverse-geocoding API.
package geocode

import (
	"context"
	"errors"
	"strings"
)

// ErrNoResult indicates the lookup succeeded but returned nothing usable.
var ErrNoResult = errors.New("no place found for coordinates")

// Place is the resolved name for a coordinate pair.
type Place struct {
	// DisplayName is the full formatted address.
	DisplayName string
	// Name is a short label built from the two most specific address
	// components, suitable for pre-filling a destination field.
	Name string
}

// Resolver looks up a place name for a coordinate pair. Each call is
// independent; callers may have several lookups in flight at once.
type Resolver interface {
	Reverse(ctx context.Context, lat, lng float64) (Place, error)
}

// shortName joins the first two non-empty components.
func shortName(components []string) string {
	var parts []string
	for _, c := range components {
		if c = strings.TrimSpace(c); c == "" {
			continue
		}
		parts = append(parts, c)
		if len(parts) == 2 {
			break
		}
	}
	return strings.Join(parts, ", ")
}
