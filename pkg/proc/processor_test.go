package proc

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/r3k4ce/discord-summarizer/pkg/domain"
	"github.com/r3k4ce/discord-summarizer/pkg/proc/mocks"
)

func admitAll() *mocks.GaterMock {
	return &mocks.GaterMock{
		DecideFunc: func(ctx context.Context, item domain.FeedItem) domain.GatingVerdict {
			return domain.GatingVerdict{Verdict: domain.VerdictAdmit, Reason: "gating disabled"}
		},
	}
}

func passThroughEnricher() *mocks.EnricherMock {
	return &mocks.EnricherMock{
		EnrichFunc: func(ctx context.Context, item domain.FeedItem) domain.EnrichedItem {
			return domain.EnrichedItem{FeedItem: item, Status: domain.StatusSummarized, SummaryText: "summary of " + item.Title}
		},
	}
}

func TestProcessor_PreservesOrderUnderConcurrency(t *testing.T) {
	sources := []domain.Source{
		{ID: "src-a", Name: "A", Kind: domain.SourceArticles},
		{ID: "src-b", Name: "B", Kind: domain.SourceArticles},
		{ID: "src-c", Name: "C", Kind: domain.SourceVideos},
	}

	feed := &mocks.FeedSourceMock{
		ListRecentFunc: func(ctx context.Context, src domain.Source, n int) ([]domain.FeedItem, error) {
			items := make([]domain.FeedItem, n)
			for i := range items {
				items[i] = domain.FeedItem{SourceID: src.ID, ID: fmt.Sprintf("%s-%d", src.ID, i), Title: fmt.Sprintf("%s item %d", src.ID, i)}
			}
			return items, nil
		},
	}

	// random delays shuffle completion order, output order must not move
	enricher := &mocks.EnricherMock{
		EnrichFunc: func(ctx context.Context, item domain.FeedItem) domain.EnrichedItem {
			time.Sleep(time.Duration(rand.Intn(20)) * time.Millisecond) //nolint:gosec // jitter, not crypto
			return domain.EnrichedItem{FeedItem: item, Status: domain.StatusSummarized}
		},
	}

	processor := NewProcessor(feed, admitAll(), enricher, Config{Sources: sources, ItemsPerSource: 3, MaxWorkers: 8})
	results := processor.Run(context.Background())

	require.Len(t, results, 9)
	want := []string{"src-a-0", "src-a-1", "src-a-2", "src-b-0", "src-b-1", "src-b-2", "src-c-0", "src-c-1", "src-c-2"}
	for i, r := range results {
		assert.Equal(t, want[i], r.ID)
	}
}

func TestProcessor_DeadSourceIsSkipped(t *testing.T) {
	sources := []domain.Source{
		{ID: "good", Kind: domain.SourceArticles},
		{ID: "dead", Kind: domain.SourceArticles},
		{ID: "also-good", Kind: domain.SourceArticles},
	}

	feed := &mocks.FeedSourceMock{
		ListRecentFunc: func(ctx context.Context, src domain.Source, n int) ([]domain.FeedItem, error) {
			if src.ID == "dead" {
				return nil, errors.New("connection refused")
			}
			return []domain.FeedItem{{SourceID: src.ID, ID: src.ID + "-0", Title: src.ID}}, nil
		},
	}

	processor := NewProcessor(feed, admitAll(), passThroughEnricher(), Config{Sources: sources})
	results := processor.Run(context.Background())

	require.Len(t, results, 2, "dead source must not take the batch down")
	assert.Equal(t, "good-0", results[0].ID)
	assert.Equal(t, "also-good-0", results[1].ID)
}

func TestProcessor_RejectedItemsDropped(t *testing.T) {
	feed := &mocks.FeedSourceMock{
		ListRecentFunc: func(ctx context.Context, src domain.Source, n int) ([]domain.FeedItem, error) {
			return []domain.FeedItem{
				{SourceID: src.ID, ID: "keep", Title: "economy outlook"},
				{SourceID: src.ID, ID: "drop", Title: "sports recap"},
			}, nil
		},
	}
	gater := &mocks.GaterMock{
		DecideFunc: func(ctx context.Context, item domain.FeedItem) domain.GatingVerdict {
			if item.ID == "drop" {
				return domain.GatingVerdict{Verdict: domain.VerdictReject, Reason: "keywords: no match"}
			}
			return domain.GatingVerdict{Verdict: domain.VerdictAdmit, Reason: "keywords: matched"}
		},
	}
	enricher := passThroughEnricher()

	processor := NewProcessor(feed, gater, enricher, Config{Sources: []domain.Source{{ID: "src"}}})
	results := processor.Run(context.Background())

	require.Len(t, results, 1)
	assert.Equal(t, "keep", results[0].ID)
	assert.Len(t, enricher.EnrichCalls(), 1, "rejected items never reach the enricher")
}

func TestProcessor_PerItemFailureIsolated(t *testing.T) {
	feed := &mocks.FeedSourceMock{
		ListRecentFunc: func(ctx context.Context, src domain.Source, n int) ([]domain.FeedItem, error) {
			return []domain.FeedItem{
				{SourceID: src.ID, ID: "a", Title: "a"},
				{SourceID: src.ID, ID: "b", Title: "b"},
			}, nil
		},
	}
	enricher := &mocks.EnricherMock{
		EnrichFunc: func(ctx context.Context, item domain.FeedItem) domain.EnrichedItem {
			if item.ID == "a" {
				return domain.EnrichedItem{FeedItem: item, Status: domain.StatusSummaryFailed, Cause: "summary failed: boom"}
			}
			return domain.EnrichedItem{FeedItem: item, Status: domain.StatusSummarized, SummaryText: "ok"}
		},
	}

	processor := NewProcessor(feed, admitAll(), enricher, Config{Sources: []domain.Source{{ID: "src"}}})
	results := processor.Run(context.Background())

	require.Len(t, results, 2)
	assert.Equal(t, domain.StatusSummaryFailed, results[0].Status)
	assert.Equal(t, domain.StatusSummarized, results[1].Status)
}

func TestProcessor_CanceledContextMarksSkipped(t *testing.T) {
	feed := &mocks.FeedSourceMock{
		ListRecentFunc: func(ctx context.Context, src domain.Source, n int) ([]domain.FeedItem, error) {
			return []domain.FeedItem{{SourceID: src.ID, ID: "a", Title: "a"}}, nil
		},
	}
	gater := admitAll()
	enricher := passThroughEnricher()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	processor := NewProcessor(feed, gater, enricher, Config{Sources: []domain.Source{{ID: "src"}}})
	results := processor.Run(ctx)

	require.Len(t, results, 1)
	assert.Equal(t, domain.StatusSkipped, results[0].Status)
	assert.Equal(t, "canceled", results[0].Cause)
	assert.Empty(t, enricher.EnrichCalls())
}

func TestProcessor_Defaults(t *testing.T) {
	var gotN int
	feed := &mocks.FeedSourceMock{
		ListRecentFunc: func(ctx context.Context, src domain.Source, n int) ([]domain.FeedItem, error) {
			gotN = n
			return nil, nil
		},
	}

	processor := NewProcessor(feed, admitAll(), passThroughEnricher(), Config{Sources: []domain.Source{{ID: "src"}}})
	results := processor.Run(context.Background())

	assert.Empty(t, results)
	assert.Equal(t, 2, gotN, "default items per source")
}
