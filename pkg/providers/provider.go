// Package providers contains the per-site fetchers that turn a news
// listing page into article link records.
package providers

import (
	"context"
	"fmt"
	"strings"

	"github.com/Afrik-Presse/liens-afrique/internal/domain"
	"github.com/Afrik-Presse/liens-afrique/pkg/httpclient"
)

// defaultUserAgent is the browser identity sent with every request.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// HTTPClient is the transport used by fetchers.
type HTTPClient = httpclient.Client

// Provider configures one news source. Zero-valued fields fall back to the
// fetcher's built-in defaults.
type Provider struct {
	ID         string            `json:"id" yaml:"id"`
	Label      string            `json:"label" yaml:"label"`
	SourceURL  string            `json:"source_url" yaml:"source_url"`
	PathFilter string            `json:"path_filter" yaml:"path_filter"`
	Headers    map[string]string `json:"headers" yaml:"headers"`
}

// Fetcher retrieves article links for a single provider.
type Fetcher interface {
	ID() string
	Fetch(ctx context.Context, cfg Provider) ([]domain.Article, error)
}

// FetcherRegistry resolves the fetcher implementation for a provider.
type FetcherRegistry interface {
	FetcherFor(cfg Provider) (Fetcher, error)
}

// Headers merges the default request headers with per-provider overrides.
func Headers(cfg Provider) map[string]string {
	headers := map[string]string{
		"User-Agent": defaultUserAgent,
	}
	for k, v := range cfg.Headers {
		key := strings.TrimSpace(k)
		val := strings.TrimSpace(v)
		if key == "" || val == "" {
			continue
		}
		headers[key] = val
	}
	return headers
}

// DefaultProviders returns the built-in provider configurations in the
// order they are crawled.
func DefaultProviders() []Provider {
	return []Provider{
		{ID: rfiProviderID, Label: rfiSourceLabel},
		{ID: france24ProviderID, Label: france24SourceLabel},
	}
}

// ProvidersForSite selects provider configurations for a --site value.
func ProvidersForSite(site string) ([]Provider, error) {
	site = strings.ToLower(strings.TrimSpace(site))

	switch site {
	case "", "all":
		return DefaultProviders(), nil
	}

	for _, cfg := range DefaultProviders() {
		if cfg.ID == site {
			return []Provider{cfg}, nil
		}
	}
	return nil, fmt.Errorf("unknown site %q (expected rfi, france24 or all)", site)
}
