package tts

import (
	"context"
	"fmt"
	"io"

	"github.com/sashabaranov/go-openai"

	"github.com/r3k4ce/discord-summarizer/pkg/config"
)

// Client synthesizes speech from text using an OpenAI-compatible
// speech endpoint
type Client struct {
	client *openai.Client
	config config.TTSConfig
}

// NewClient creates a new speech synthesis client. The LLM endpoint
// and API key are shared with the chat models.
func NewClient(llmCfg config.LLMConfig, cfg config.TTSConfig) *Client {
	clientConfig := openai.DefaultConfig(llmCfg.APIKey)
	if llmCfg.Endpoint != "" {
		clientConfig.BaseURL = llmCfg.Endpoint
	}

	return &Client{
		client: openai.NewClientWithConfig(clientConfig),
		config: cfg,
	}
}

// Synthesize converts the given text into audio bytes using the
// configured model and voice. The language code is a hint only, the
// provider detects the language from the text itself.
func (c *Client) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if text == "" {
		return nil, fmt.Errorf("nothing to synthesize")
	}

	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	resp, err := c.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(c.config.Model),
		Voice:          openai.SpeechVoice(c.config.Voice),
		Input:          text,
		ResponseFormat: openai.SpeechResponseFormatMp3,
	})
	if err != nil {
		return nil, fmt.Errorf("speech request failed: %w", err)
	}
	defer resp.Close()

	audio, err := io.ReadAll(resp)
	if err != nil {
		return nil, fmt.Errorf("read speech response: %w", err)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("empty audio response")
	}

	return audio, nil
}
