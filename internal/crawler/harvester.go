// Package crawler runs the configured providers and aggregates their
// article links.
package crawler

import (
	"context"
	"time"

	"github.com/Afrik-Presse/liens-afrique/internal/domain"
	"github.com/Afrik-Presse/liens-afrique/internal/logger"
	"github.com/Afrik-Presse/liens-afrique/pkg/providers"
)

// defaultProviderDelay spaces out consecutive listing fetches so target
// sites are not hammered.
const defaultProviderDelay = time.Second

// Harvester runs providers strictly in sequence and concatenates their
// results. A provider failure degrades to zero articles for that provider;
// it never aborts the run.
type Harvester struct {
	registry providers.FetcherRegistry
	log      logger.Logger
	delay    time.Duration
}

// NewHarvester creates a Harvester with the given registry and logger.
// A negative delay falls back to the default inter-provider delay.
func NewHarvester(registry providers.FetcherRegistry, log logger.Logger, delay time.Duration) *Harvester {
	if registry == nil {
		registry = providers.DefaultFetcherRegistry(nil, nil)
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	if delay < 0 {
		delay = defaultProviderDelay
	}
	return &Harvester{registry: registry, log: log, delay: delay}
}

// Run harvests each provider in order, pausing between consecutive
// providers. Per-provider order is preserved and results are not
// deduplicated across providers.
func (h *Harvester) Run(ctx context.Context, cfgs []providers.Provider) []domain.Article {
	var all []domain.Article

	for i, cfg := range cfgs {
		if ctx.Err() != nil {
			break
		}
		if i > 0 && h.delay > 0 {
			if !sleepContext(ctx, h.delay) {
				break
			}
		}

		all = append(all, h.harvestOne(ctx, cfg)...)
	}

	h.log.InfoObj("harvest finished", "harvest_done", map[string]any{
		"providers": len(cfgs),
		"articles":  len(all),
	})

	return all
}

// harvestOne runs one provider, returning nil on any failure.
func (h *Harvester) harvestOne(ctx context.Context, cfg providers.Provider) []domain.Article {
	h.log.InfoObj("harvesting provider", "harvest_start", map[string]any{
		"provider_id": cfg.ID,
	})

	fetcher, err := h.registry.FetcherFor(cfg)
	if err != nil {
		h.log.WarnObj("no fetcher for provider", "harvest_error", map[string]any{
			"provider_id": cfg.ID,
			"error":       err.Error(),
		})
		return nil
	}

	articles, err := fetcher.Fetch(ctx, cfg)
	if err != nil {
		h.log.WarnObj("provider harvest failed", "harvest_error", map[string]any{
			"provider_id": cfg.ID,
			"error":       err.Error(),
		})
		return nil
	}

	h.log.InfoObj("provider harvest complete", "harvest_provider_done", map[string]any{
		"provider_id": cfg.ID,
		"articles":    len(articles),
	})

	return articles
}

// sleepContext waits for the duration or context cancellation, reporting
// whether the full duration elapsed.
func sleepContext(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
