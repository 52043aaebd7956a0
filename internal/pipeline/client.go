// Package pipeline fetches the official JAKIM prayer-time tables and
// materializes them into static per-zone Ramadan schedule files. It runs
// offline, on demand, ahead of each Ramadan edition.
package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultZonesURL  = "https://api.waktusolat.app/zones"
	defaultEsolatURL = "https://www.e-solat.gov.my/index.php"
)

// Client talks to the two upstream sources: the waktusolat zone catalog
// and the e-solat.gov.my takwim endpoint.
type Client struct {
	httpClient *http.Client
	// ZonesURL and EsolatURL are the upstream endpoints. Exported for
	// testing with httptest.
	ZonesURL  string
	EsolatURL string
}

// NewClient creates a client with sensible defaults.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		ZonesURL:  defaultZonesURL,
		EsolatURL: defaultEsolatURL,
	}
}

// ZoneInfo is one entry of the upstream zone catalog.
type ZoneInfo struct {
	JakimCode string `json:"jakimCode"`
	Negeri    string `json:"negeri"`
	Daerah    string `json:"daerah"`
}

// TakwimResponse is the e-solat annual schedule payload. Only the fields
// the builder consumes are decoded.
type TakwimResponse struct {
	PrayerTime []TakwimRow `json:"prayerTime"`
	Status     string      `json:"status"`
	Zone       string      `json:"zone"`
}

// TakwimRow is one calendar day of the annual table.
type TakwimRow struct {
	Hijri   string `json:"hijri"` // "1446-09-01"
	Date    string `json:"date"`
	Day     string `json:"day"`
	Imsak   string `json:"imsak"`
	Fajr    string `json:"fajr"`
	Maghrib string `json:"maghrib"`
}

// FetchZones retrieves the zone catalog. A failure here is fatal to the
// whole run; nothing downstream is well-defined without the code list.
func (c *Client) FetchZones() ([]ZoneInfo, error) {
	resp, err := c.httpClient.Get(c.ZonesURL)
	if err != nil {
		return nil, fmt.Errorf("fetch zone catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("zone catalog returned status %d: %s", resp.StatusCode, string(body))
	}

	var zones []ZoneInfo
	if err := json.NewDecoder(resp.Body).Decode(&zones); err != nil {
		return nil, fmt.Errorf("decode zone catalog: %w", err)
	}
	if len(zones) == 0 {
		return nil, fmt.Errorf("zone catalog is empty")
	}
	return zones, nil
}

// FetchYear retrieves a zone's full-year takwim.
func (c *Client) FetchYear(zone string, year int) (*TakwimResponse, error) {
	params := url.Values{}
	params.Set("r", "esolatApi/takwimsolat")
	params.Set("period", "year")
	params.Set("zone", zone)
	params.Set("year", fmt.Sprintf("%d", year))
	reqURL := fmt.Sprintf("%s?%s", c.EsolatURL, params.Encode())

	resp, err := c.httpClient.Get(reqURL)
	if err != nil {
		return nil, fmt.Errorf("fetch takwim %s/%d: %w", zone, year, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("takwim %s/%d returned status %d: %s", zone, year, resp.StatusCode, string(body))
	}

	var takwim TakwimResponse
	if err := json.NewDecoder(resp.Body).Decode(&takwim); err != nil {
		return nil, fmt.Errorf("decode takwim %s/%d: %w", zone, year, err)
	}
	if len(takwim.PrayerTime) == 0 {
		return nil, fmt.Errorf("takwim %s/%d has no rows", zone, year)
	}
	return &takwim, nil
}
