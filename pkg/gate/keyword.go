package gate

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/r3k4ce/discord-summarizer/pkg/domain"
)

// KeywordStrategy evaluates items against a configured keyword set.
// It is fully deterministic and never returns an inconclusive verdict.
type KeywordStrategy struct {
	patterns []keywordPattern
	mode     domain.MatchMode
}

// keywordPattern holds a keyword and its word-boundary matcher; re is
// nil when the token could not be compiled and substring matching is
// used instead
type keywordPattern struct {
	token string
	re    *regexp.Regexp
}

// NewKeywordStrategy creates a keyword strategy for the given keyword
// set and match mode. Keywords are matched case-insensitively on word
// boundaries, with accents folded away.
func NewKeywordStrategy(keywords []string, mode domain.MatchMode) *KeywordStrategy {
	patterns := make([]keywordPattern, 0, len(keywords))
	for _, kw := range keywords {
		token := normalizeText(strings.TrimSpace(kw))
		if token == "" {
			continue
		}
		re, err := regexp.Compile(`\b` + regexp.QuoteMeta(token) + `\b`)
		if err != nil {
			re = nil // fall back to substring matching for this token
		}
		patterns = append(patterns, keywordPattern{token: token, re: re})
	}

	return &KeywordStrategy{patterns: patterns, mode: mode}
}

// Name implements Strategy
func (k *KeywordStrategy) Name() string { return "keywords" }

// Evaluate matches the item's title and body text against the keyword
// set. Mode semantics with an empty keyword set are deliberately
// asymmetric: allow_if_any rejects everything, deny_if_any admits
// everything.
func (k *KeywordStrategy) Evaluate(_ context.Context, item domain.FeedItem) domain.GatingVerdict {
	text := normalizeText(item.Title + " " + item.RawBody)
	matches := k.findMatches(text)

	verdict := domain.GatingVerdict{DecidedAt: time.Now()}
	switch k.mode {
	case domain.MatchDenyIfAny:
		if len(matches) > 0 {
			verdict.Verdict = domain.VerdictReject
			verdict.Reason = fmt.Sprintf("keywords: denied on %v", matches)
		} else {
			verdict.Verdict = domain.VerdictAdmit
			verdict.Reason = "keywords: no deny match"
		}
	default: // allow_if_any
		if len(matches) > 0 {
			verdict.Verdict = domain.VerdictAdmit
			verdict.Reason = fmt.Sprintf("keywords: matched %v", matches)
		} else {
			verdict.Verdict = domain.VerdictReject
			verdict.Reason = "keywords: no match"
		}
	}
	return verdict
}

// findMatches returns the keywords present in the normalized text
func (k *KeywordStrategy) findMatches(text string) []string {
	var matches []string
	for _, p := range k.patterns {
		if p.re != nil {
			if p.re.MatchString(text) {
				matches = append(matches, p.token)
			}
			continue
		}
		if strings.Contains(text, p.token) {
			matches = append(matches, p.token)
		}
	}
	return matches
}

// accentFolder strips combining marks after NFKD decomposition
var accentFolder = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizeText lowercases and strips accents to make keyword checks stable
func normalizeText(text string) string {
	folded, _, err := transform.String(accentFolder, text)
	if err != nil {
		folded = text
	}
	return strings.ToLower(folded)
}
