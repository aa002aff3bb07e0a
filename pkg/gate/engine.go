package gate

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/r3k4ce/discord-summarizer/pkg/domain"
)

//go:generate moq -out mocks/strategy.go -pkg mocks -skip-ensure -fmt goimports . Strategy

// Strategy is a single gating strategy. The keyword strategy is always
// concrete; the model strategy may come back inconclusive.
type Strategy interface {
	Name() string
	Evaluate(ctx context.Context, item domain.FeedItem) domain.GatingVerdict
}

// Engine decides whether an item is worth enriching. It composes the
// configured primary strategy with the keyword fallback and memoizes
// concrete verdicts in the cache. Decide never returns an inconclusive
// verdict.
type Engine struct {
	cfg      domain.GatingConfig
	cache    *Cache
	model    Strategy // nil when no classifier is configured
	keywords Strategy
}

// NewEngine creates a gating engine from the immutable configuration.
// The model strategy may be nil, in which case the keyword strategy
// handles everything regardless of the configured primary.
func NewEngine(cfg domain.GatingConfig, model, keywords Strategy) *Engine {
	if !cfg.Enabled {
		lgr.Printf("[WARN] gating is disabled, all items will be admitted")
	}
	return &Engine{
		cfg:      cfg,
		cache:    NewCache(cfg.CacheTTL),
		model:    model,
		keywords: keywords,
	}
}

// Decide returns an admit or reject verdict for the item.
//
// Order of resolution: disabled pass-through, cache hit, primary
// strategy, keyword fallback for an inconclusive model verdict, and
// finally the default-on-error policy. Only strategy-derived concrete
// verdicts are cached; an error-driven default must be re-attempted on
// the next occurrence, caching it would poison the cache for the whole
// TTL window.
func (e *Engine) Decide(ctx context.Context, item domain.FeedItem) domain.GatingVerdict {
	if !e.cfg.Enabled {
		return domain.GatingVerdict{Verdict: domain.VerdictAdmit, Reason: "gating disabled", DecidedAt: time.Now()}
	}

	fingerprint := Fingerprint(item)
	if verdict, ok := e.cache.Get(fingerprint); ok {
		lgr.Printf("[DEBUG] gating cache hit for %q: %s", item.Title, verdict.Verdict)
		return verdict
	}

	primary := e.primary()
	verdict := primary.Evaluate(ctx, item)
	if verdict.Concrete() {
		e.cache.Put(fingerprint, verdict)
		lgr.Printf("[DEBUG] gating %s for %q (%s)", verdict.Verdict, item.Title, verdict.Reason)
		return verdict
	}

	// only the model strategy can be inconclusive
	if e.cfg.FallbackToKeywords && primary.Name() != e.keywords.Name() {
		lgr.Printf("[DEBUG] model gating inconclusive for %q, falling back to keywords: %s", item.Title, verdict.Reason)
		verdict = e.keywords.Evaluate(ctx, item)
		e.cache.Put(fingerprint, verdict)
		lgr.Printf("[DEBUG] gating %s for %q (%s)", verdict.Verdict, item.Title, verdict.Reason)
		return verdict
	}

	// no fallback applies, resolve by policy and do not cache
	resolved := domain.GatingVerdict{
		Verdict:   domain.VerdictReject,
		Reason:    fmt.Sprintf("default-on-error, %s", verdict.Reason),
		DecidedAt: time.Now(),
	}
	if e.cfg.DefaultOnError {
		resolved.Verdict = domain.VerdictAdmit
	}
	lgr.Printf("[WARN] gating unresolved for %q, defaulting to %s (%s)", item.Title, resolved.Verdict, verdict.Reason)
	return resolved
}

// primary picks the strategy configured as primary. An unknown strategy
// name or a missing model classifier degrades to keywords.
func (e *Engine) primary() Strategy {
	switch e.cfg.Strategy {
	case domain.StrategyModel:
		if e.model != nil {
			return e.model
		}
		lgr.Printf("[WARN] model gating configured but no classifier available, using keywords")
		return e.keywords
	case domain.StrategyKeywords:
		return e.keywords
	default:
		lgr.Printf("[WARN] unsupported gating strategy %q, using keywords", e.cfg.Strategy)
		return e.keywords
	}
}
