package gate

import (
	"context"
	"fmt"
	"time"

	"github.com/r3k4ce/discord-summarizer/pkg/domain"
)

//go:generate moq -out mocks/relevance.go -pkg mocks -skip-ensure -fmt goimports . RelevanceClassifier

// RelevanceClassifier is the AI classifier provider used by the model
// strategy
type RelevanceClassifier interface {
	Relevant(ctx context.Context, title, text string) (relevant bool, reason string, err error)
}

// ModelStrategy wraps the classifier provider into a gating strategy.
// Provider errors, timeouts, and broken responses all map to an
// inconclusive verdict; the engine decides what that means.
type ModelStrategy struct {
	classifier RelevanceClassifier
	timeout    time.Duration
}

// NewModelStrategy creates a model-based gating strategy with a
// per-call timeout
func NewModelStrategy(classifier RelevanceClassifier, timeout time.Duration) *ModelStrategy {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &ModelStrategy{classifier: classifier, timeout: timeout}
}

// Name implements Strategy
func (m *ModelStrategy) Name() string { return "model" }

// Evaluate asks the classifier whether the item is relevant
func (m *ModelStrategy) Evaluate(ctx context.Context, item domain.FeedItem) domain.GatingVerdict {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	relevant, reason, err := m.classifier.Relevant(ctx, item.Title, item.RawBody)
	verdict := domain.GatingVerdict{DecidedAt: time.Now()}
	if err != nil {
		verdict.Verdict = domain.VerdictInconclusive
		verdict.Reason = fmt.Sprintf("model: %v", err)
		return verdict
	}

	if relevant {
		verdict.Verdict = domain.VerdictAdmit
	} else {
		verdict.Verdict = domain.VerdictReject
	}
	verdict.Reason = fmt.Sprintf("model: %s", reason)
	return verdict
}
