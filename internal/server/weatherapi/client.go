// Package weatherapi is a thin client for the OpenWeather current-weather
// and geocoding endpoints, reshaping the responses into local structs.
package weatherapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultBaseURL = "https://api.openweathermap.org"

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewClient(apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
	}
}

// WithBaseURL overrides the API host. Used in tests.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = baseURL
	return c
}

// Weather is the reshaped current-weather report. Temperatures are in °C,
// wind speed in km/h.
type Weather struct {
	City        string    `json:"city"`
	CountryCode string    `json:"countryCode"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Temperature float64   `json:"temperature"`
	FeelsLike   float64   `json:"feelsLike"`
	TempMin     float64   `json:"tempMin"`
	TempMax     float64   `json:"tempMax"`
	Pressure    int       `json:"pressure"`
	Humidity    int       `json:"humidity"`
	WindSpeed   float64   `json:"windSpeed"`
	WindDeg     int       `json:"windDeg"`
	Visibility  int       `json:"visibility"`
	Timestamp   time.Time `json:"timestamp"`
}

// CityMatch is one geocoding search result.
type CityMatch struct {
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	State     string  `json:"state"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (c *Client) get(ctx context.Context, rawURL string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("openweather request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("openweather: unexpected status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(v)
}

// CurrentByCoordinates fetches the current weather at the given coordinates.
func (c *Client) CurrentByCoordinates(ctx context.Context, lat, lon float64) (*Weather, error) {
	u := fmt.Sprintf("%s/data/2.5/weather?lat=%s&lon=%s&appid=%s&units=metric&lang=pt",
		c.baseURL,
		strconv.FormatFloat(lat, 'f', -1, 64),
		strconv.FormatFloat(lon, 'f', -1, 64),
		url.QueryEscape(c.apiKey))

	var payload struct {
		Name string `json:"name"`
		Sys  struct {
			Country string `json:"country"`
		} `json:"sys"`
		Weather []struct {
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
		Main struct {
			Temp      float64 `json:"temp"`
			FeelsLike float64 `json:"feels_like"`
			TempMin   float64 `json:"temp_min"`
			TempMax   float64 `json:"temp_max"`
			Pressure  int     `json:"pressure"`
			Humidity  int     `json:"humidity"`
		} `json:"main"`
		Wind struct {
			Speed float64 `json:"speed"`
			Deg   int     `json:"deg"`
		} `json:"wind"`
		Visibility int `json:"visibility"`
	}

	if err := c.get(ctx, u, &payload); err != nil {
		return nil, err
	}

	w := &Weather{
		City:        payload.Name,
		CountryCode: payload.Sys.Country,
		Temperature: payload.Main.Temp,
		FeelsLike:   payload.Main.FeelsLike,
		TempMin:     payload.Main.TempMin,
		TempMax:     payload.Main.TempMax,
		Pressure:    payload.Main.Pressure,
		Humidity:    payload.Main.Humidity,
		WindSpeed:   payload.Wind.Speed * 3.6, // m/s -> km/h
		WindDeg:     payload.Wind.Deg,
		Visibility:  payload.Visibility,
		Timestamp:   time.Now().UTC(),
	}
	if len(payload.Weather) > 0 {
		w.Description = payload.Weather[0].Description
		w.Icon = payload.Weather[0].Icon
	}

	return w, nil
}

// SearchCities resolves a free-text city query into up to five matches.
func (c *Client) SearchCities(ctx context.Context, query string) ([]CityMatch, error) {
	u := fmt.Sprintf("%s/geo/1.0/direct?q=%s&limit=5&appid=%s",
		c.baseURL, url.QueryEscape(query), url.QueryEscape(c.apiKey))

	var payload []struct {
		Name    string  `json:"name"`
		Country string  `json:"country"`
		State   string  `json:"state"`
		Lat     float64 `json:"lat"`
		Lon     float64 `json:"lon"`
	}

	if err := c.get(ctx, u, &payload); err != nil {
		return nil, err
	}

	matches := make([]CityMatch, 0, len(payload))
	for _, item := range payload {
		matches = append(matches, CityMatch{
			Name:      item.Name,
			Country:   item.Country,
			State:     item.State,
			Latitude:  item.Lat,
			Longitude: item.Lon,
		})
	}

	return matches, nil
}
