package domain

import "time"

// SourceKind tells the pipeline what kind of content a source carries
type SourceKind string

const (
	SourceArticles SourceKind = "articles" // regular news feeds, items have scrapeable bodies
	SourceVideos   SourceKind = "videos"   // video listings, summarized from title/description only
)

// Source is a configured feed the orchestrator pulls from
type Source struct {
	ID   string     `yaml:"id" json:"id" jsonschema:"required,description=Stable source identifier"`
	Name string     `yaml:"name" json:"name" jsonschema:"description=Human readable source name"`
	URL  string     `yaml:"url" json:"url" jsonschema:"required,description=RSS/Atom feed URL"`
	Kind SourceKind `yaml:"kind" json:"kind" jsonschema:"default=articles,enum=articles,enum=videos,description=Source content kind"`
}

// FeedItem represents a single candidate item read from a feed,
// immutable once produced by the feed source
type FeedItem struct {
	ID          string     `json:"id"`
	SourceID    string     `json:"source_id"`
	SourceName  string     `json:"source_name"`
	SourceKind  SourceKind `json:"source_kind,omitempty"`
	Title       string     `json:"title"`
	URL         string     `json:"url"`
	RawBody     string     `json:"-"` // body text supplied by the feed itself, may be empty
	PublishedAt time.Time  `json:"published_at"`
}

// ItemStatus is the terminal state of an item after enrichment
type ItemStatus string

const (
	StatusSummarized    ItemStatus = "summarized"
	StatusSummaryFailed ItemStatus = "summary_failed"
	StatusSkipped       ItemStatus = "skipped"
)

// EnrichedItem is a FeedItem after the enrichment pipeline ran on it.
// AudioBytes is set only when audio overviews are enabled and synthesis
// succeeded; a missing audio track never downgrades Status.
type EnrichedItem struct {
	FeedItem
	Status      ItemStatus `json:"status"`
	SummaryText string     `json:"summary_text,omitempty"`
	AudioBytes  []byte     `json:"audio,omitempty"`
	Cause       string     `json:"cause,omitempty"` // failure cause for skipped/failed items
}
