package enrich

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pkgz/lgr"

	"github.com/r3k4ce/discord-summarizer/pkg/domain"
)

//go:generate moq -out mocks/extractor.go -pkg mocks -skip-ensure -fmt goimports . Extractor
//go:generate moq -out mocks/summarizer.go -pkg mocks -skip-ensure -fmt goimports . Summarizer
//go:generate moq -out mocks/speech.go -pkg mocks -skip-ensure -fmt goimports . SpeechSynthesizer

// Extractor retrieves the main text content of an article URL
type Extractor interface {
	Extract(ctx context.Context, url string) (string, error)
}

// Summarizer produces summaries and audio scripts from article text
type Summarizer interface {
	Summarize(ctx context.Context, title, text string) (string, error)
	AudioScript(ctx context.Context, summary string) (string, error)
}

// SpeechSynthesizer turns text into audio bytes
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// Config holds enrichment pipeline settings
type Config struct {
	AudioOverviews bool
	MaxTextLength  int // body text is truncated to this length before summarization
}

// Pipeline drives one admitted item through body resolution,
// summarization, and the optional audio overview. Every stage failure
// ends up as an item status, nothing here aborts a batch.
type Pipeline struct {
	extractor  Extractor
	summarizer Summarizer
	speech     SpeechSynthesizer // may be nil when audio overviews are disabled
	cfg        Config
}

// NewPipeline creates an enrichment pipeline
func NewPipeline(extractor Extractor, summarizer Summarizer, speech SpeechSynthesizer, cfg Config) *Pipeline {
	if cfg.MaxTextLength == 0 {
		cfg.MaxTextLength = 6000
	}
	return &Pipeline{extractor: extractor, summarizer: summarizer, speech: speech, cfg: cfg}
}

// Enrich produces the terminal record for an admitted item. Video items
// are summarized from the feed-supplied text only, there is nothing to
// scrape behind a video link.
func (p *Pipeline) Enrich(ctx context.Context, item domain.FeedItem) domain.EnrichedItem {
	enriched := domain.EnrichedItem{FeedItem: item}

	// 1. resolve body text
	text := item.RawBody
	if text == "" && item.SourceKind != domain.SourceVideos {
		extracted, err := p.extractor.Extract(ctx, item.URL)
		if err != nil {
			lgr.Printf("[WARN] could not extract %q: %v", item.Title, err)
			enriched.Status = domain.StatusSkipped
			enriched.Cause = fmt.Sprintf("extraction failed: %v", err)
			return enriched
		}
		text = extracted
	}
	if len(text) > p.cfg.MaxTextLength {
		text = text[:p.cfg.MaxTextLength]
	}

	// 2. summarize
	summary, err := p.summarizer.Summarize(ctx, item.Title, text)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			enriched.Status = domain.StatusSkipped
			enriched.Cause = "canceled"
			return enriched
		}
		lgr.Printf("[WARN] summary failed for %q: %v", item.Title, err)
		enriched.Status = domain.StatusSummaryFailed
		enriched.Cause = fmt.Sprintf("summary failed: %v", err)
		return enriched
	}
	enriched.SummaryText = summary
	enriched.Status = domain.StatusSummarized

	// 3. audio overview, strictly additive: failures here never
	// downgrade a successful summary
	if p.cfg.AudioOverviews && p.speech != nil {
		script, err := p.summarizer.AudioScript(ctx, summary)
		if err != nil {
			lgr.Printf("[WARN] audio script failed for %q: %v", item.Title, err)
			return enriched
		}
		audio, err := p.speech.Synthesize(ctx, script)
		if err != nil {
			lgr.Printf("[WARN] speech synthesis failed for %q: %v", item.Title, err)
			return enriched
		}
		enriched.AudioBytes = audio
	}

	return enriched
}
