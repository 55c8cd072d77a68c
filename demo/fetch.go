package demo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	defaultPlaceholderBase = "https://jsonplaceholder.typicode.com"
	defaultWeatherBase     = "https://api.openweathermap.org"

	defaultFetchTimeout = 10 * time.Second
)

// Fetcher issues outbound calls with a fixed per-call timeout. A single
// call failing is captured as an error value for that slot only; siblings
// keep running.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration

	// Overridable bases so tests can point at local servers.
	PlaceholderBase string
	WeatherBase     string
}

func NewFetcher(timeout time.Duration) *Fetcher {
	if timeout == 0 {
		timeout = defaultFetchTimeout
	}
	return &Fetcher{
		client:          &http.Client{},
		timeout:         timeout,
		PlaceholderBase: defaultPlaceholderBase,
		WeatherBase:     defaultWeatherBase,
	}
}

// FetchJSON performs a single GET and decodes the JSON body.
func (f *Fetcher) FetchJSON(ctx context.Context, url string) (map[string]any, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("request error: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("http error: status %d", resp.StatusCode)
	}

	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode error: %w", err)
	}
	return out, nil
}

// ExternalData fans out three independent GETs and collects each slot's
// result. Slots fail independently: an error becomes a structured marker
// in that slot and never cancels the others.
func (f *Fetcher) ExternalData(ctx context.Context) map[string]any {
	slots := []struct {
		key string
		url string
	}{
		{"post", f.PlaceholderBase + "/posts/1"},
		{"user", f.PlaceholderBase + "/users/1"},
		{"comment", f.PlaceholderBase + "/comments/1"},
	}

	results := make([]map[string]any, len(slots))
	errs := make([]error, len(slots))

	g, ctx := errgroup.WithContext(ctx)
	for i, slot := range slots {
		g.Go(func() error {
			results[i], errs[i] = f.FetchJSON(ctx, slot.url)
			// Errors stay in their slot; never fail the group.
			return nil
		})
	}
	g.Wait()

	out := make(map[string]any, len(slots))
	for i, slot := range slots {
		if errs[i] != nil {
			out[slot.key] = map[string]any{"error": errs[i].Error()}
		} else {
			out[slot.key] = results[i]
		}
	}
	return out
}

// Weather performs a single outbound call for the given city.
func (f *Fetcher) Weather(ctx context.Context, city string) (map[string]any, error) {
	url := fmt.Sprintf("%s/data/2.5/weather?q=%s&appid=demo", f.WeatherBase, city)
	return f.FetchJSON(ctx, url)
}
