// Package locate acquires the user's current position. The session has no
// browser geolocation to lean on, so the default locator asks an IP
// geolocation service; TRIPMARK_POSITION pins the position explicitly.
package locate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

// ErrUnavailable is returned when the current position cannot be acquired.
var ErrUnavailable = errors.New("current position unavailable")

// Position is a geographic coordinate pair.
type Position struct {
	Lat float64
	Lng float64
}

// Locator yields the current position once per call. Acquisition may be slow
// or denied; both surface as an error wrapping ErrUnavailable.
type Locator interface {
	Current(ctx context.Context) (Position, error)
}

// New picks a locator: a fixed position when TRIPMARK_POSITION is set
// ("lat,lng"), otherwise an IP-geolocation lookup.
func New() Locator {
	if raw := strings.TrimSpace(os.Getenv("TRIPMARK_POSITION")); raw != "" {
		if pos, err := parsePosition(raw); err == nil {
			return Fixed{Position: pos}
		}
	}
	return NewIPLocator()
}

// Fixed always reports the same position.
type Fixed struct {
	Position Position
}

// Current implements Locator.
func (f Fixed) Current(ctx context.Context) (Position, error) {
	return f.Position, nil
}

func parsePosition(raw string) (Position, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 2 {
		return Position{}, fmt.Errorf("expected lat,lng: %q", raw)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Position{}, err
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Position{}, err
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return Position{}, fmt.Errorf("coordinates out of range: %q", raw)
	}
	return Position{Lat: lat, Lng: lng}, nil
}

const defaultLocateURL = "http://ip-api.com/json"

// IPLocator estimates the current position from the caller's public IP.
type IPLocator struct {
	httpClient *http.Client
	baseURL    string
}

// NewIPLocator returns an IPLocator against the public endpoint or the
// TRIPMARK_LOCATE_URL override.
func NewIPLocator() *IPLocator {
	baseURL := defaultLocateURL
	if override := os.Getenv("TRIPMARK_LOCATE_URL"); override != "" {
		baseURL = override
	}
	return &IPLocator{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
	}
}

type ipResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// Current implements Locator.
func (l *IPLocator) Current(ctx context.Context) (Position, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.baseURL, nil)
	if err != nil {
		return Position{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return Position{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Position{}, fmt.Errorf("%w: unexpected status %s", ErrUnavailable, resp.Status)
	}

	var decoded ipResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return Position{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if decoded.Status != "success" {
		return Position{}, fmt.Errorf("%w: %s", ErrUnavailable, decoded.Message)
	}
	return Position{Lat: decoded.Lat, Lng: decoded.Lon}, nil
}
