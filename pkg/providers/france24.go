package providers

import (
	"context"
	"fmt"
	"strings"

	"github.com/Afrik-Presse/liens-afrique/internal/classifier"
	"github.com/Afrik-Presse/liens-afrique/internal/domain"
)

const (
	france24ProviderID  = "france24"
	france24SourceLabel = "France24"
	france24BaseURL     = "https://www.france24.com/fr/afrique/"
	france24PathFilter  = "/afrique/"
)

// france24Fetcher extracts African news links from the France24 listing page.
type france24Fetcher struct {
	client HTTPClient
	cls    *classifier.Classifier
}

// NewFrance24Fetcher builds a fetcher for the France24 Afrique listing.
func NewFrance24Fetcher(client HTTPClient, cls *classifier.Classifier) Fetcher {
	if client == nil {
		client = DefaultHTTPClient()
	}
	if cls == nil {
		cls = classifier.NewDefault()
	}
	return &france24Fetcher{client: client, cls: cls}
}

func (f *france24Fetcher) ID() string {
	return france24ProviderID
}

func (f *france24Fetcher) Fetch(ctx context.Context, cfg Provider) ([]domain.Article, error) {
	if !strings.EqualFold(cfg.ID, france24ProviderID) {
		return nil, fmt.Errorf("france24 fetcher received incompatible provider %q", cfg.ID)
	}

	baseURL := strings.TrimSpace(cfg.SourceURL)
	if baseURL == "" {
		baseURL = france24BaseURL
	}
	label := strings.TrimSpace(cfg.Label)
	if label == "" {
		label = france24SourceLabel
	}

	return fetchAndExtract(ctx, f.client, cfg, baseURL, label, pathFilter(cfg.PathFilter, france24PathFilter), f.cls)
}
