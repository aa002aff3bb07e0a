package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"

	"github.com/r3k4ce/discord-summarizer/pkg/domain"
)

// Source fetches and parses RSS/Atom feeds and hands out the most
// recent items of a configured source
type Source struct {
	client    *http.Client
	userAgent string
	sanitizer *bluemonday.Policy
}

// NewSource creates a new feed source
func NewSource(timeout time.Duration, userAgent string) *Source {
	return &Source{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent: userAgent,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// ListRecent fetches the feed for the given source and returns its n
// newest items in feed order
func (s *Source) ListRecent(ctx context.Context, src domain.Source, n int) ([]domain.FeedItem, error) {
	body, err := s.fetch(ctx, src.URL)
	if err != nil {
		return nil, fmt.Errorf("fetch feed %s: %w", src.URL, err)
	}
	defer body.Close()

	parser := gofeed.NewParser()
	parsed, err := parser.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", src.URL, err)
	}

	sourceName := src.Name
	if sourceName == "" {
		sourceName = parsed.Title
	}

	items := make([]domain.FeedItem, 0, n)
	for _, entry := range parsed.Items {
		if len(items) >= n {
			break
		}

		item := domain.FeedItem{
			SourceID:   src.ID,
			SourceName: sourceName,
			SourceKind: src.Kind,
			Title:      entry.Title,
			URL:        entry.Link,
			RawBody:    s.bodyText(entry),
		}

		// stable identity: guid, then link, then feed+title
		switch {
		case entry.GUID != "":
			item.ID = entry.GUID
		case entry.Link != "":
			item.ID = entry.Link
		default:
			item.ID = fmt.Sprintf("%s-%s", parsed.Title, entry.Title)
		}

		if entry.PublishedParsed != nil {
			item.PublishedAt = *entry.PublishedParsed
		} else if entry.UpdatedParsed != nil {
			item.PublishedAt = *entry.UpdatedParsed
		}

		items = append(items, item)
	}

	return items, nil
}

// bodyText returns plain text carried by the feed entry itself,
// preferring full content over the description. Feeds embed HTML in
// both fields, so everything goes through the sanitizer.
func (s *Source) bodyText(entry *gofeed.Item) string {
	text := entry.Content
	if text == "" {
		text = entry.Description
	}
	if text == "" {
		return ""
	}
	return strings.TrimSpace(s.sanitizer.Sanitize(text))
}

// fetch retrieves content from a URL
func (s *Source) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", s.userAgent)

	// add browser-like headers
	addBrowserHeaders(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return resp.Body, nil
}
