// Package serpapi is a typed client for the SerpAPI search endpoint, covering
// the google_flights and google_hotels engines.
package serpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	engineFlights = "google_flights"
	engineHotels  = "google_hotels"

	searchPath           = "/search.json"
	maxResponseSizeBytes = 4 << 20
)

type Config struct {
	BaseURL string        `envconfig:"BASE_URL" split_words:"true" default:"https://serpapi.com"`
	APIKey  string        `envconfig:"API_KEY" split_words:"true" required:"true"`
	Timeout time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"30s"`
}

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Option customizes a Client.
type Option func(*Client)

func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

func NewClient(cfg Config, opts ...Option) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("serpapi base url is required")
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid serpapi base url: %w", err)
	}

	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, errors.New("serpapi api key is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	client := &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	return client, nil
}

func MustNew(cfg Config, opts ...Option) *Client {
	client, err := NewClient(cfg, opts...)
	if err != nil {
		panic(err)
	}
	return client
}

// SearchFlights runs a google_flights round-trip query. Provider-reported
// errors come back as *SearchError; transport and decode failures as plain
// errors.
func (c *Client) SearchFlights(ctx context.Context, req FlightsRequest) (*FlightsResponse, error) {
	params := url.Values{}
	params.Set("engine", engineFlights)
	params.Set("departure_id", req.DepartureID)
	params.Set("arrival_id", req.ArrivalID)
	params.Set("outbound_date", req.OutboundDate)
	params.Set("return_date", req.ReturnDate)
	setLocale(params, req.Currency, req.Language, req.Country)

	var out FlightsResponse
	if err := c.search(ctx, engineFlights, params, &out); err != nil {
		return nil, err
	}
	if out.Error != "" {
		return nil, &SearchError{Engine: engineFlights, Message: out.Error}
	}
	return &out, nil
}

// SearchHotels runs a google_hotels query for a stay window.
func (c *Client) SearchHotels(ctx context.Context, req HotelsRequest) (*HotelsResponse, error) {
	params := url.Values{}
	params.Set("engine", engineHotels)
	params.Set("q", req.Query)
	params.Set("check_in_date", req.CheckInDate)
	params.Set("check_out_date", req.CheckOutDate)
	adults := req.Adults
	if adults <= 0 {
		adults = 2
	}
	params.Set("adults", strconv.Itoa(adults))
	setLocale(params, req.Currency, req.Language, req.Country)

	var out HotelsResponse
	if err := c.search(ctx, engineHotels, params, &out); err != nil {
		return nil, err
	}
	if out.Error != "" {
		return nil, &SearchError{Engine: engineHotels, Message: out.Error}
	}
	return &out, nil
}

func setLocale(params url.Values, currency, language, country string) {
	if currency != "" {
		params.Set("currency", currency)
	}
	if language != "" {
		params.Set("hl", language)
	}
	if country != "" {
		params.Set("gl", country)
	}
}

func (c *Client) search(ctx context.Context, engine string, params url.Values, out any) error {
	params.Set("api_key", c.apiKey)

	endpoint := c.baseURL + searchPath + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build serpapi request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute serpapi request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSizeBytes))
	if err != nil {
		return fmt.Errorf("read serpapi response: %w", err)
	}

	log.Debug().
		Str("engine", engine).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(started)).
		Msg("serpapi search")

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// SerpAPI puts the failure reason in an error field even on non-2xx.
		var failure struct {
			Error string `json:"error"`
		}
		if jsonErr := json.Unmarshal(raw, &failure); jsonErr == nil && failure.Error != "" {
			return &SearchError{Engine: engine, Message: failure.Error}
		}
		return fmt.Errorf("serpapi http status=%d body=%s", resp.StatusCode, truncate(raw, 256))
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode serpapi response: %w", err)
	}
	return nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
