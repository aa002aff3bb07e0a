package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/sashabaranov/go-openai"

	"github.com/r3k4ce/discord-summarizer/pkg/config"
)

// Summarizer produces chat-ready article summaries and, when audio
// overviews are enabled, short scripts optimized for narration
type Summarizer struct {
	client     *openai.Client
	config     config.LLMConfig
	summaryMsg string
	audioMsg   string
}

// default system prompt for article summaries
const defaultSummaryPrompt = `You are a news analyst writing for a chat channel.
You receive the full text of one news article. Write a concise summary (3-5 sentences) that captures the main story, the key facts, and the likely consequences.
Write directly about the content. Never open with phrases like "The article discusses" or "This piece covers".
Write the summary in the same language as the article.`

// default system prompt for audio-optimized summaries
const defaultAudioPrompt = `You turn a news summary into a short spoken-word script.
Keep it under 80 words, use plain conversational sentences, spell out numbers and abbreviations, and do not use any formatting, lists or emoji.
Keep the language of the original summary.`

// NewSummarizer creates a new LLM summarizer
func NewSummarizer(cfg config.LLMConfig) *Summarizer {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}

	summaryMsg := cfg.SummaryPrompt
	if summaryMsg == "" {
		summaryMsg = defaultSummaryPrompt
	}
	audioMsg := cfg.AudioPrompt
	if audioMsg == "" {
		audioMsg = defaultAudioPrompt
	}

	return &Summarizer{
		client:     openai.NewClientWithConfig(clientConfig),
		config:     cfg,
		summaryMsg: summaryMsg,
		audioMsg:   audioMsg,
	}
}

// Summarize produces a summary for the given article text
func (s *Summarizer) Summarize(ctx context.Context, title, text string) (string, error) {
	var sb strings.Builder
	if title != "" {
		sb.WriteString("Title: ")
		sb.WriteString(title)
		sb.WriteString("\n\n")
	}
	sb.WriteString("Article:\n")
	sb.WriteString(text)

	return s.complete(ctx, s.summaryMsg, sb.String())
}

// AudioScript rewrites a summary into a narration-friendly script
func (s *Summarizer) AudioScript(ctx context.Context, summary string) (string, error) {
	return s.complete(ctx, s.audioMsg, summary)
}

// complete runs one chat completion with retries on transport failures
func (s *Summarizer) complete(ctx context.Context, systemMsg, userMsg string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:       s.config.Model,
		Temperature: float32(s.config.Temperature),
		MaxTokens:   s.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemMsg},
			{Role: openai.ChatMessageRoleUser, Content: userMsg},
		},
	}

	var result string
	retrier := repeater.NewBackoff(3, 200*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err := retrier.Do(ctx, func() error {
		resp, err := s.client.CreateChatCompletion(ctx, req)
		if err != nil {
			return fmt.Errorf("llm request failed: %w", err)
		}
		if len(resp.Choices) == 0 {
			return fmt.Errorf("no response from llm")
		}
		result = strings.TrimSpace(resp.Choices[0].Message.Content)
		if result == "" {
			return fmt.Errorf("empty summary from llm")
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	return result, nil
}
