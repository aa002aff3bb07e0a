package enrich

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/r3k4ce/discord-summarizer/pkg/domain"
	"github.com/r3k4ce/discord-summarizer/pkg/enrich/mocks"
)

func TestPipeline_SummarizesInlineBody(t *testing.T) {
	extractor := &mocks.ExtractorMock{}
	summarizer := &mocks.SummarizerMock{
		SummarizeFunc: func(ctx context.Context, title, text string) (string, error) {
			return "a short summary", nil
		},
	}

	pipeline := NewPipeline(extractor, summarizer, nil, Config{})
	item := domain.FeedItem{Title: "economy outlook", URL: "https://example.com/a", RawBody: "full article body"}

	enriched := pipeline.Enrich(context.Background(), item)

	assert.Equal(t, domain.StatusSummarized, enriched.Status)
	assert.Equal(t, "a short summary", enriched.SummaryText)
	assert.Empty(t, enriched.AudioBytes)
	assert.Empty(t, extractor.ExtractCalls(), "inline body must not trigger extraction")
	require.Len(t, summarizer.SummarizeCalls(), 1)
	assert.Equal(t, "full article body", summarizer.SummarizeCalls()[0].Text)
}

func TestPipeline_ExtractsWhenBodyMissing(t *testing.T) {
	extractor := &mocks.ExtractorMock{
		ExtractFunc: func(ctx context.Context, url string) (string, error) {
			return "extracted article text", nil
		},
	}
	summarizer := &mocks.SummarizerMock{
		SummarizeFunc: func(ctx context.Context, title, text string) (string, error) {
			return "summary of " + text, nil
		},
	}

	pipeline := NewPipeline(extractor, summarizer, nil, Config{})
	enriched := pipeline.Enrich(context.Background(), domain.FeedItem{Title: "t", URL: "https://example.com/a"})

	assert.Equal(t, domain.StatusSummarized, enriched.Status)
	assert.Equal(t, "summary of extracted article text", enriched.SummaryText)
	require.Len(t, extractor.ExtractCalls(), 1)
	assert.Equal(t, "https://example.com/a", extractor.ExtractCalls()[0].URL)
}

func TestPipeline_ExtractionFailureSkips(t *testing.T) {
	extractor := &mocks.ExtractorMock{
		ExtractFunc: func(ctx context.Context, url string) (string, error) {
			return "", errors.New("status 403")
		},
	}
	summarizer := &mocks.SummarizerMock{}

	pipeline := NewPipeline(extractor, summarizer, nil, Config{})
	enriched := pipeline.Enrich(context.Background(), domain.FeedItem{Title: "t", URL: "https://example.com/a"})

	assert.Equal(t, domain.StatusSkipped, enriched.Status)
	assert.Contains(t, enriched.Cause, "extraction failed")
	assert.Empty(t, summarizer.SummarizeCalls(), "failed extraction must not reach the summarizer")
}

func TestPipeline_VideoSkipsExtraction(t *testing.T) {
	extractor := &mocks.ExtractorMock{}
	summarizer := &mocks.SummarizerMock{
		SummarizeFunc: func(ctx context.Context, title, text string) (string, error) {
			return "video summary", nil
		},
	}

	pipeline := NewPipeline(extractor, summarizer, nil, Config{})
	item := domain.FeedItem{Title: "new upload", URL: "https://youtube.com/watch?v=x", SourceKind: domain.SourceVideos}

	enriched := pipeline.Enrich(context.Background(), item)

	assert.Equal(t, domain.StatusSummarized, enriched.Status)
	assert.Empty(t, extractor.ExtractCalls(), "video links are never scraped")
}

func TestPipeline_SummaryFailure(t *testing.T) {
	summarizer := &mocks.SummarizerMock{
		SummarizeFunc: func(ctx context.Context, title, text string) (string, error) {
			return "", errors.New("llm request failed")
		},
	}

	pipeline := NewPipeline(&mocks.ExtractorMock{}, summarizer, nil, Config{})
	enriched := pipeline.Enrich(context.Background(), domain.FeedItem{Title: "t", RawBody: "body"})

	assert.Equal(t, domain.StatusSummaryFailed, enriched.Status)
	assert.Contains(t, enriched.Cause, "summary failed")
	assert.Empty(t, enriched.SummaryText)
}

func TestPipeline_CanceledContextSkips(t *testing.T) {
	summarizer := &mocks.SummarizerMock{
		SummarizeFunc: func(ctx context.Context, title, text string) (string, error) {
			return "", context.Canceled
		},
	}

	pipeline := NewPipeline(&mocks.ExtractorMock{}, summarizer, nil, Config{})
	enriched := pipeline.Enrich(context.Background(), domain.FeedItem{Title: "t", RawBody: "body"})

	assert.Equal(t, domain.StatusSkipped, enriched.Status)
	assert.Equal(t, "canceled", enriched.Cause)
}

func TestPipeline_TruncatesLongBody(t *testing.T) {
	long := make([]byte, 10000)
	for i := range long {
		long[i] = 'a'
	}

	summarizer := &mocks.SummarizerMock{
		SummarizeFunc: func(ctx context.Context, title, text string) (string, error) {
			return "summary", nil
		},
	}

	pipeline := NewPipeline(&mocks.ExtractorMock{}, summarizer, nil, Config{MaxTextLength: 6000})
	pipeline.Enrich(context.Background(), domain.FeedItem{Title: "t", RawBody: string(long)})

	require.Len(t, summarizer.SummarizeCalls(), 1)
	assert.Len(t, summarizer.SummarizeCalls()[0].Text, 6000)
}

func TestPipeline_AudioOverview(t *testing.T) {
	summarizer := &mocks.SummarizerMock{
		SummarizeFunc: func(ctx context.Context, title, text string) (string, error) {
			return "a short summary", nil
		},
		AudioScriptFunc: func(ctx context.Context, summary string) (string, error) {
			return "spoken version of the summary", nil
		},
	}
	speech := &mocks.SpeechSynthesizerMock{
		SynthesizeFunc: func(ctx context.Context, text string) ([]byte, error) {
			return []byte("mp3-bytes"), nil
		},
	}

	pipeline := NewPipeline(&mocks.ExtractorMock{}, summarizer, speech, Config{AudioOverviews: true})
	enriched := pipeline.Enrich(context.Background(), domain.FeedItem{Title: "t", RawBody: "body"})

	assert.Equal(t, domain.StatusSummarized, enriched.Status)
	assert.Equal(t, []byte("mp3-bytes"), enriched.AudioBytes)
	require.Len(t, speech.SynthesizeCalls(), 1)
	assert.Equal(t, "spoken version of the summary", speech.SynthesizeCalls()[0].Text)
}

func TestPipeline_AudioFailureKeepsSummary(t *testing.T) {
	summarizer := &mocks.SummarizerMock{
		SummarizeFunc: func(ctx context.Context, title, text string) (string, error) {
			return "a short summary", nil
		},
		AudioScriptFunc: func(ctx context.Context, summary string) (string, error) {
			return "script", nil
		},
	}
	speech := &mocks.SpeechSynthesizerMock{
		SynthesizeFunc: func(ctx context.Context, text string) ([]byte, error) {
			return nil, errors.New("tts unavailable")
		},
	}

	pipeline := NewPipeline(&mocks.ExtractorMock{}, summarizer, speech, Config{AudioOverviews: true})
	enriched := pipeline.Enrich(context.Background(), domain.FeedItem{Title: "t", RawBody: "body"})

	assert.Equal(t, domain.StatusSummarized, enriched.Status, "audio failure must not downgrade the summary")
	assert.Equal(t, "a short summary", enriched.SummaryText)
	assert.Empty(t, enriched.AudioBytes)
}

func TestPipeline_AudioDisabled(t *testing.T) {
	summarizer := &mocks.SummarizerMock{
		SummarizeFunc: func(ctx context.Context, title, text string) (string, error) {
			return "a short summary", nil
		},
	}
	speech := &mocks.SpeechSynthesizerMock{}

	pipeline := NewPipeline(&mocks.ExtractorMock{}, summarizer, speech, Config{AudioOverviews: false})
	enriched := pipeline.Enrich(context.Background(), domain.FeedItem{Title: "t", RawBody: "body"})

	assert.Equal(t, domain.StatusSummarized, enriched.Status)
	assert.Empty(t, enriched.AudioBytes)
	assert.Empty(t, summarizer.AudioScriptCalls())
	assert.Empty(t, speech.SynthesizeCalls())
}
