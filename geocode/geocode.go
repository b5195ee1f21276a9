// Package geocode resolves free-text addresses to coordinates through
// the Google geocoding Web API.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/evergreenlots/treestore-api/models"
)

const endpoint = "https://maps.googleapis.com/maps/api/geocode/json"

type Client struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		httpClient: &http.Client{},
		baseURL:    endpoint,
	}
}

type geocodeResponse struct {
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
	Status string `json:"status"`
}

// Geocode resolves a delivery address to coordinates. An address the
// provider cannot resolve comes back as a GeocodeError.
func (c *Client) Geocode(ctx context.Context, addr models.DeliveryAddress) (lat, lng float64, err error) {
	if c.apiKey == "" {
		return 0, 0, &models.ConfigurationError{Field: "GOOGLE_MAPS_API_KEY"}
	}

	full := formatAddress(addr)
	reqURL := c.baseURL + "?address=" + url.QueryEscape(full) + "&key=" + url.QueryEscape(c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return 0, 0, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to reach geocoding API: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return 0, 0, fmt.Errorf("geocoding API error (%d): %s", resp.StatusCode, string(body))
	}

	var out geocodeResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return 0, 0, fmt.Errorf("failed to parse geocoding response: %v", err)
	}

	if len(out.Results) == 0 {
		return 0, 0, &models.GeocodeError{Message: "invalid address"}
	}

	loc := out.Results[0].Geometry.Location
	return loc.Lat, loc.Lng, nil
}

// formatAddress joins the filled address parts with commas, the way
// the storefront displays it.
func formatAddress(addr models.DeliveryAddress) string {
	parts := []string{addr.Street, addr.Street2, addr.City, addr.State, addr.Zip}
	filled := parts[:0]
	for _, p := range parts {
		if p != "" {
			filled = append(filled, p)
		}
	}
	return strings.Join(filled, ", ")
}
