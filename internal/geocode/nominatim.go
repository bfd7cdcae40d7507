package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"
)

const defaultBaseURL = "https://nominatim.openstreetmap.org"

// Nominatim requires every client to identify itself.
const userAgent = "tripmark/1.0 (+https://github.com/hzafar/tripmark)"

// Client resolves coordinates against a Nominatim endpoint. The endpoint can
// be overridden by exporting TRIPMARK_GEOCODE_URL, which the tests use to
// point at a local server.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient returns a Client against the public Nominatim instance or the
// TRIPMARK_GEOCODE_URL override.
func NewClient() *Client {
	baseURL := defaultBaseURL
	if override := os.Getenv("TRIPMARK_GEOCODE_URL"); override != "" {
		baseURL = override
	}
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    baseURL,
	}
}

type reverseResponse struct {
	DisplayName string  `json:"display_name"`
	Address     address `json:"address"`
}

// address holds the components Nominatim returns, ordered most to least
// specific so the first populated fields make the best short name.
type address struct {
	Road          string `json:"road"`
	Neighbourhood string `json:"neighbourhood"`
	Hamlet        string `json:"hamlet"`
	Suburb        string `json:"suburb"`
	Village       string `json:"village"`
	Town          string `json:"town"`
	City          string `json:"city"`
	Municipality  string `json:"municipality"`
	County        string `json:"county"`
	StateDistrict string `json:"state_district"`
	State         string `json:"state"`
	Country       string `json:"country"`
}

func (a address) components() []string {
	return []string{
		a.Road, a.Neighbourhood, a.Hamlet, a.Suburb, a.Village,
		a.Town, a.City, a.Municipality, a.County,
		a.StateDistrict, a.State, a.Country,
	}
}

// Reverse looks up the place at (lat, lng). Partial responses degrade: a
// result with no address components still yields its display name, and only
// a fully empty response is an error.
func (c *Client) Reverse(ctx context.Context, lat, lng float64) (Place, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lng, 'f', -1, 64))
	params.Set("format", "json")

	reqURL := c.baseURL + "/reverse?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return Place{}, fmt.Errorf("build reverse request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Place{}, fmt.Errorf("reverse lookup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Place{}, fmt.Errorf("reverse lookup: unexpected status %s", resp.Status)
	}

	var decoded reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return Place{}, fmt.Errorf("decode reverse response: %w", err)
	}

	place := Place{
		DisplayName: decoded.DisplayName,
		Name:        shortName(decoded.Address.components()),
	}
	if place.Name == "" {
		place.Name = place.DisplayName
	}
	if place.DisplayName == "" && place.Name == "" {
		return Place{}, ErrNoResult
	}
	return place, nil
}
