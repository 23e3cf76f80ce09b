package providers

import (
	"context"
	"fmt"
	"strings"

	"github.com/Afrik-Presse/liens-afrique/internal/classifier"
	"github.com/Afrik-Presse/liens-afrique/internal/domain"
)

const (
	rfiProviderID  = "rfi"
	rfiSourceLabel = "RFI"
	rfiBaseURL     = "https://www.rfi.fr/fr/afrique/"
	rfiPathFilter  = "/fr/afrique/"
)

// rfiFetcher extracts African news links from the RFI listing page.
type rfiFetcher struct {
	client HTTPClient
	cls    *classifier.Classifier
}

// NewRFIFetcher builds a fetcher for the RFI Afrique listing.
func NewRFIFetcher(client HTTPClient, cls *classifier.Classifier) Fetcher {
	if client == nil {
		client = DefaultHTTPClient()
	}
	if cls == nil {
		cls = classifier.NewDefault()
	}
	return &rfiFetcher{client: client, cls: cls}
}

func (f *rfiFetcher) ID() string {
	return rfiProviderID
}

func (f *rfiFetcher) Fetch(ctx context.Context, cfg Provider) ([]domain.Article, error) {
	if !strings.EqualFold(cfg.ID, rfiProviderID) {
		return nil, fmt.Errorf("rfi fetcher received incompatible provider %q", cfg.ID)
	}

	baseURL := strings.TrimSpace(cfg.SourceURL)
	if baseURL == "" {
		baseURL = rfiBaseURL
	}
	label := strings.TrimSpace(cfg.Label)
	if label == "" {
		label = rfiSourceLabel
	}

	return fetchAndExtract(ctx, f.client, cfg, baseURL, label, pathFilter(cfg.PathFilter, rfiPathFilter), f.cls)
}
