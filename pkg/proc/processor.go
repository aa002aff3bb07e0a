package proc

import (
	"context"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/r3k4ce/discord-summarizer/pkg/domain"
)

//go:generate moq -out mocks/source.go -pkg mocks -skip-ensure -fmt goimports . FeedSource
//go:generate moq -out mocks/gater.go -pkg mocks -skip-ensure -fmt goimports . Gater
//go:generate moq -out mocks/enricher.go -pkg mocks -skip-ensure -fmt goimports . Enricher

// FeedSource supplies the most recent items of a configured source
type FeedSource interface {
	ListRecent(ctx context.Context, src domain.Source, n int) ([]domain.FeedItem, error)
}

// Gater decides whether an item is worth enriching
type Gater interface {
	Decide(ctx context.Context, item domain.FeedItem) domain.GatingVerdict
}

// Enricher runs an admitted item through the enrichment pipeline
type Enricher interface {
	Enrich(ctx context.Context, item domain.FeedItem) domain.EnrichedItem
}

// Config holds batch processing configuration
type Config struct {
	Sources        []domain.Source
	ItemsPerSource int
	MaxWorkers     int
}

// Processor runs one batch: it pulls the newest items of every
// configured source, gates them, enriches the admitted ones, and
// assembles the result in source/item order no matter how the
// concurrent work completes.
type Processor struct {
	source   FeedSource
	gate     Gater
	enricher Enricher
	cfg      Config
}

// NewProcessor creates a batch processor
func NewProcessor(source FeedSource, gate Gater, enricher Enricher, cfg Config) *Processor {
	if cfg.ItemsPerSource == 0 {
		cfg.ItemsPerSource = 2
	}
	if cfg.MaxWorkers == 0 {
		cfg.MaxWorkers = 5
	}
	return &Processor{source: source, gate: gate, enricher: enricher, cfg: cfg}
}

// Run executes one batch over all configured sources. It never fails:
// unreachable sources are logged and skipped, rejected items are
// dropped silently, and per-item failures come back as item statuses.
// On cancellation, items that never ran are reported as skipped.
func (p *Processor) Run(ctx context.Context) []domain.EnrichedItem {
	lgr.Printf("[INFO] processing %d sources", len(p.cfg.Sources))

	// pull all sources concurrently, keeping source order
	perSource := make([][]domain.FeedItem, len(p.cfg.Sources))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.MaxWorkers)
	for i, src := range p.cfg.Sources {
		g.Go(func() error {
			items, err := p.source.ListRecent(ctx, src, p.cfg.ItemsPerSource)
			if err != nil {
				// a dead source must not take the batch down
				lgr.Printf("[ERROR] failed to list items for source %s: %v", src.ID, err)
				return nil
			}
			perSource[i] = items
			return nil
		})
	}
	_ = g.Wait() // workers never return errors

	// gate and enrich every item; slots keep (source, item) positions
	// so the output order is independent of completion order
	slots := make([][]*domain.EnrichedItem, len(perSource))
	for i := range perSource {
		slots[i] = make([]*domain.EnrichedItem, len(perSource[i]))
	}

	g, _ = errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.MaxWorkers)
	for i := range perSource {
		for j := range perSource[i] {
			item := perSource[i][j]
			g.Go(func() error {
				if ctx.Err() != nil {
					slots[i][j] = &domain.EnrichedItem{FeedItem: item, Status: domain.StatusSkipped, Cause: "canceled"}
					return nil
				}

				verdict := p.gate.Decide(ctx, item)
				if !verdict.Admitted() {
					lgr.Printf("[DEBUG] dropped %q (%s)", item.Title, verdict.Reason)
					return nil
				}

				enriched := p.enricher.Enrich(ctx, item)
				slots[i][j] = &enriched
				return nil
			})
		}
	}
	_ = g.Wait()

	// assemble in source/item order, rejected items have no slot
	var results []domain.EnrichedItem
	for i := range slots {
		for _, slot := range slots[i] {
			if slot != nil {
				results = append(results, *slot)
			}
		}
	}

	lgr.Printf("[INFO] batch completed with %d items", len(results))
	return results
}
