// Package countries is a thin client for the RestCountries lookup-by-code
// endpoint.
package countries

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"time"
)

const defaultBaseURL = "https://restcountries.com"

type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    defaultBaseURL,
	}
}

// WithBaseURL overrides the API host. Used in tests.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = baseURL
	return c
}

// Country is the reshaped country record.
type Country struct {
	Name       string   `json:"name"`
	Region     string   `json:"region"`
	Population int64    `json:"population"`
	Languages  []string `json:"languages"`
	Currencies []string `json:"currencies"`
	FlagURL    string   `json:"flagUrl"`
}

// LookupByCode fetches a country by its alpha code (e.g. "BR", "BRA").
func (c *Client) LookupByCode(ctx context.Context, code string) (*Country, error) {
	u := fmt.Sprintf("%s/v3.1/alpha/%s", c.baseURL, url.PathEscape(code))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("restcountries request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("restcountries: unexpected status %d", resp.StatusCode)
	}

	var payload []struct {
		Name struct {
			Common string `json:"common"`
		} `json:"name"`
		Region     string            `json:"region"`
		Population int64             `json:"population"`
		Languages  map[string]string `json:"languages"`
		Currencies map[string]struct {
			Name string `json:"name"`
		} `json:"currencies"`
		Flags struct {
			PNG string `json:"png"`
		} `json:"flags"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}
	if len(payload) == 0 {
		return nil, fmt.Errorf("restcountries: empty response for code %s", code)
	}

	root := payload[0]

	// Map iteration order is random; sort for stable output.
	languages := make([]string, 0, len(root.Languages))
	for _, lang := range root.Languages {
		languages = append(languages, lang)
	}
	sort.Strings(languages)

	currencies := make([]string, 0, len(root.Currencies))
	for _, cur := range root.Currencies {
		currencies = append(currencies, cur.Name)
	}
	sort.Strings(currencies)

	return &Country{
		Name:       root.Name.Common,
		Region:     root.Region,
		Population: root.Population,
		Languages:  languages,
		Currencies: currencies,
		FlagURL:    root.Flags.PNG,
	}, nil
}
