package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/r3k4ce/discord-summarizer/pkg/config"
)

// Classifier asks the LLM whether a single item is relevant enough to
// summarize. It answers yes or no; everything else (timeouts, broken
// payloads) surfaces as an error for the caller to resolve.
type Classifier struct {
	client    *openai.Client
	config    config.LLMConfig
	systemMsg string
}

// default system prompt for relevance classification
const defaultRelevancePrompt = `You are an AI assistant that decides whether a news item is relevant to the reader's configured interests.
You receive the title and text of one item. Respond with a JSON object:
{"relevant": true or false, "reason": "brief explanation, max 100 chars"}
Respond with the JSON object only, no preamble and no markdown fences.`

// minRelevanceTokens is the floor applied to MaxTokens for classifier
// calls. Reasoning-capable models consume output budget before emitting
// visible text; below this floor the verdict regularly comes back empty
// and every decision would be inconclusive.
const minRelevanceTokens = 256

// maxClassifyChars bounds how much item text is sent for classification
const maxClassifyChars = 4096

// NewClassifier creates a new LLM relevance classifier
func NewClassifier(cfg config.LLMConfig) *Classifier {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}

	// use custom system prompt if provided, otherwise use default
	systemMsg := cfg.RelevancePrompt
	if systemMsg == "" {
		systemMsg = defaultRelevancePrompt
	}

	return &Classifier{
		client:    openai.NewClientWithConfig(clientConfig),
		config:    cfg,
		systemMsg: systemMsg,
	}
}

// relevanceResponse is the shape the classifier prompt asks for
type relevanceResponse struct {
	Relevant bool   `json:"relevant"`
	Reason   string `json:"reason"`
}

// Relevant reports whether the given item text is relevant. The reason
// string is the model's own explanation and is only informational.
func (c *Classifier) Relevant(ctx context.Context, title, text string) (relevant bool, reason string, err error) {
	if len(text) > maxClassifyChars {
		text = text[:maxClassifyChars]
	}

	var sb strings.Builder
	if title != "" {
		sb.WriteString("Title: ")
		sb.WriteString(title)
		sb.WriteString("\n\n")
	}
	sb.WriteString(text)

	maxTokens := c.config.MaxTokens
	if maxTokens < minRelevanceTokens {
		maxTokens = minRelevanceTokens
	}

	// retry up to 3 times if we get a malformed verdict
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		req := openai.ChatCompletionRequest{
			Model:       c.config.Model,
			Temperature: float32(c.config.Temperature),
			MaxTokens:   maxTokens,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: c.systemMsg},
				{Role: openai.ChatMessageRoleUser, Content: sb.String()},
			},
		}

		resp, err := c.client.CreateChatCompletion(ctx, req)
		if err != nil {
			return false, "", fmt.Errorf("llm request failed: %w", err)
		}

		if len(resp.Choices) == 0 {
			return false, "", fmt.Errorf("no response from llm")
		}

		verdict, parseErr := parseRelevance(resp.Choices[0].Message.Content)
		if parseErr == nil {
			return verdict.Relevant, verdict.Reason, nil
		}
		lastErr = parseErr
	}

	return false, "", fmt.Errorf("failed after 3 attempts: %w", lastErr)
}

// parseRelevance extracts the verdict object from the model output,
// tolerating prose or fences around the JSON
func parseRelevance(content string) (relevanceResponse, error) {
	var verdict relevanceResponse

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || start >= end {
		return verdict, fmt.Errorf("no json object found in response")
	}

	if err := json.Unmarshal([]byte(content[start:end+1]), &verdict); err != nil {
		return verdict, fmt.Errorf("failed to parse json response: %w", err)
	}

	return verdict, nil
}
