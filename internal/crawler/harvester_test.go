package crawler

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/Afrik-Presse/liens-afrique/internal/domain"
	"github.com/Afrik-Presse/liens-afrique/pkg/providers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubFetcher returns canned articles or an error.
type stubFetcher struct {
	id       string
	articles []domain.Article
	err      error
	calls    int
}

func (f *stubFetcher) ID() string { return f.id }

func (f *stubFetcher) Fetch(_ context.Context, cfg providers.Provider) ([]domain.Article, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.articles, nil
}

// stubRegistry resolves fetchers from a plain map.
type stubRegistry struct {
	fetchers map[string]providers.Fetcher
}

func (r *stubRegistry) FetcherFor(cfg providers.Provider) (providers.Fetcher, error) {
	if f, ok := r.fetchers[cfg.ID]; ok {
		return f, nil
	}
	return nil, fmt.Errorf("no fetcher registered for provider %q", cfg.ID)
}

func TestHarvesterAggregatesInOrder(t *testing.T) {
	t.Parallel()

	first := &stubFetcher{id: "rfi", articles: []domain.Article{
		{Title: "Mali : nouvelles du Sahel", URL: "https://www.rfi.fr/fr/afrique/a", Source: "RFI"},
		{Title: "Togo : coopération régionale", URL: "https://www.rfi.fr/fr/afrique/b", Source: "RFI"},
	}}
	second := &stubFetcher{id: "france24", articles: []domain.Article{
		{Title: "Ghana : culture et traditions", URL: "https://www.france24.com/fr/afrique/c", Source: "France24"},
	}}

	reg := &stubRegistry{fetchers: map[string]providers.Fetcher{"rfi": first, "france24": second}}
	h := NewHarvester(reg, nil, 0)

	articles := h.Run(context.Background(), []providers.Provider{{ID: "rfi"}, {ID: "france24"}})

	require.Len(t, articles, 3)
	assert.Equal(t, "RFI", articles[0].Source)
	assert.Equal(t, "RFI", articles[1].Source)
	assert.Equal(t, "France24", articles[2].Source)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 1, second.calls)
}

func TestHarvesterFailedProviderDegradesToEmpty(t *testing.T) {
	t.Parallel()

	failing := &stubFetcher{id: "rfi", err: errors.New("connection refused")}
	working := &stubFetcher{id: "france24", articles: []domain.Article{
		{Title: "Ghana : culture et traditions", URL: "https://www.france24.com/fr/afrique/c", Source: "France24"},
	}}

	reg := &stubRegistry{fetchers: map[string]providers.Fetcher{"rfi": failing, "france24": working}}
	h := NewHarvester(reg, nil, 0)

	articles := h.Run(context.Background(), []providers.Provider{{ID: "rfi"}, {ID: "france24"}})

	// The run still completes and reports the remaining provider.
	require.Len(t, articles, 1)
	assert.Equal(t, "France24", articles[0].Source)
	assert.Equal(t, 1, working.calls)
}

func TestHarvesterUnknownProviderSkipped(t *testing.T) {
	t.Parallel()

	working := &stubFetcher{id: "rfi", articles: []domain.Article{
		{Title: "Mali : nouvelles du Sahel", URL: "https://www.rfi.fr/fr/afrique/a", Source: "RFI"},
	}}
	reg := &stubRegistry{fetchers: map[string]providers.Fetcher{"rfi": working}}
	h := NewHarvester(reg, nil, 0)

	articles := h.Run(context.Background(), []providers.Provider{{ID: "lemonde"}, {ID: "rfi"}})

	require.Len(t, articles, 1)
	assert.Equal(t, "RFI", articles[0].Source)
}

func TestHarvesterDoesNotDeduplicateAcrossProviders(t *testing.T) {
	t.Parallel()

	sharedURL := "https://example.com/fr/afrique/shared"
	first := &stubFetcher{id: "rfi", articles: []domain.Article{
		{Title: "Mali : dépêche partagée ici", URL: sharedURL, Source: "RFI"},
	}}
	second := &stubFetcher{id: "france24", articles: []domain.Article{
		{Title: "Mali : dépêche partagée ici", URL: sharedURL, Source: "France24"},
	}}

	reg := &stubRegistry{fetchers: map[string]providers.Fetcher{"rfi": first, "france24": second}}
	h := NewHarvester(reg, nil, 0)

	articles := h.Run(context.Background(), []providers.Provider{{ID: "rfi"}, {ID: "france24"}})

	require.Len(t, articles, 2)
	assert.NotEqual(t, articles[0].Source, articles[1].Source)
}

func TestHarvesterStopsOnCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fetcher := &stubFetcher{id: "rfi"}
	reg := &stubRegistry{fetchers: map[string]providers.Fetcher{"rfi": fetcher}}
	h := NewHarvester(reg, nil, 0)

	articles := h.Run(ctx, []providers.Provider{{ID: "rfi"}})

	assert.Empty(t, articles)
	assert.Equal(t, 0, fetcher.calls)
}
