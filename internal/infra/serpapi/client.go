package serpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	engineFlights      = "google_flights"
	engineAutocomplete = "google_flights_autocomplete"

	// DefaultTimeout bounds a call when no positive timeout is configured.
	DefaultTimeout = 20 * time.Second

	dialTimeout         = 5 * time.Second
	tlsHandshakeTimeout = 5 * time.Second

	// error bodies are only kept for diagnostics
	maxErrorBody = 4 << 10
)

type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client talks to the SerpAPI Google Flights engines. It never retries; callers decide what a failure means.
type Client struct {
	baseURL    string
	apiKey     string
	timeout    time.Duration
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		timeout:    timeout,
		httpClient: newHTTPClient(timeout),
		logger:     logger,
	}
}

func (c *Client) Timeout() time.Duration { return c.timeout }

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   dialTimeout,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			TLSHandshakeTimeout:   tlsHandshakeTimeout,
			ResponseHeaderTimeout: timeout,
			MaxIdleConns:          50,
			MaxIdleConnsPerHost:   10,
			IdleConnTimeout:       90 * time.Second,
		},
	}
}

type FlightQuery struct {
	DepartureID  string
	ArrivalID    string
	OutboundDate string
	ReturnDate   *string
	Adults       int
	Currency     string
	Stops        *int
	TravelClass  int
	HL           string
	GL           string
}

type AutocompleteQuery struct {
	Q              string
	GL             string
	HL             string
	ExcludeRegions bool
}

func (c *Client) Search(ctx context.Context, q FlightQuery) (*RawSearchResponse, error) {
	var out RawSearchResponse
	if err := c.get(ctx, flightParams(q), &out, func() string { return out.Error }); err != nil {
		return nil, err
	}
	return &out, nil
}

// PriceInsights runs a flight search; only the price_insights block is of interest.
func (c *Client) PriceInsights(ctx context.Context, q FlightQuery) (*RawSearchResponse, error) {
	return c.Search(ctx, q)
}

func (c *Client) Autocomplete(ctx context.Context, q AutocompleteQuery) (*RawAutocompleteResponse, error) {
	params := url.Values{}
	params.Set("engine", engineAutocomplete)
	params.Set("q", q.Q)
	params.Set("gl", orDefault(q.GL, "us"))
	params.Set("hl", orDefault(q.HL, "en"))
	if q.ExcludeRegions {
		params.Set("exclude_regions", "true")
	}

	var out RawAutocompleteResponse
	if err := c.get(ctx, params, &out, func() string { return out.Error }); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) BookingOptions(ctx context.Context, token, currency string) (*RawBookingResponse, error) {
	params := url.Values{}
	params.Set("engine", engineFlights)
	params.Set("booking_token", token)
	params.Set("currency", orDefault(currency, "USD"))
	params.Set("hl", "en")
	params.Set("gl", "us")

	var out RawBookingResponse
	if err := c.get(ctx, params, &out, func() string { return out.Error }); err != nil {
		return nil, err
	}
	return &out, nil
}

func flightParams(q FlightQuery) url.Values {
	params := url.Values{}
	params.Set("engine", engineFlights)
	params.Set("departure_id", q.DepartureID)
	params.Set("arrival_id", q.ArrivalID)
	params.Set("outbound_date", q.OutboundDate)
	params.Set("currency", orDefault(q.Currency, "USD"))
	params.Set("hl", orDefault(q.HL, "en"))
	params.Set("gl", orDefault(q.GL, "us"))
	params.Set("adults", strconv.Itoa(max(q.Adults, 1)))
	params.Set("travel_class", strconv.Itoa(max(q.TravelClass, 1)))

	// 1 = round trip, 2 = one way
	if q.ReturnDate != nil {
		params.Set("type", "1")
		params.Set("return_date", *q.ReturnDate)
	} else {
		params.Set("type", "2")
	}
	if q.Stops != nil {
		params.Set("stops", strconv.Itoa(stopsParam(*q.Stops)))
	}
	params.Set("deep_search", "true")
	params.Set("show_hidden", "true")
	return params
}

// stopsParam maps a maximum stop count onto the engine's enum: 0 any, 1 nonstop, 2 at most one, 3 at most two.
func stopsParam(maxStops int) int {
	return maxStops + 1
}

// get performs one bounded request and decodes into out. bodyErr reads the decoded "error" field.
func (c *Client) get(ctx context.Context, params url.Values, out any, bodyErr func() string) error {
	if c.apiKey == "" {
		return &Error{Kind: KindAuthFailed, Err: ErrNotConfigured}
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	params.Set("api_key", c.apiKey)
	endpoint := c.baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &Error{Kind: KindUnknown, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return classifyTransport(err)
	}
	defer resp.Body.Close()

	c.logger.Debug("serpapi request completed",
		slog.String("engine", params.Get("engine")),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return classifyStatus(resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if te := classifyTransport(err); te.Kind == KindTimeout {
			return te
		}
		return &Error{Kind: KindMalformed, Status: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}

	if msg := bodyErr(); msg != "" {
		return classifyBodyError(resp.StatusCode, msg)
	}
	return nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
