package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/r3k4ce/discord-summarizer/pkg/domain"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Sources []domain.Source `yaml:"sources" json:"sources" jsonschema:"description=Feed sources in delivery order"`

	Schedule struct {
		MaxWorkers      int `yaml:"max_workers" json:"max_workers" jsonschema:"default=5,description=Maximum concurrent item workers"`
		ArticlesPerFeed int `yaml:"articles_per_feed" json:"articles_per_feed" jsonschema:"default=2,description=Most recent items pulled per source"`
	} `yaml:"schedule" json:"schedule" jsonschema:"description=Batch processing configuration"`

	LLM LLMConfig `yaml:"llm" json:"llm" jsonschema:"description=LLM configuration for gating and summarization"`

	TTS TTSConfig `yaml:"tts" json:"tts" jsonschema:"description=Text-to-speech configuration for audio overviews"`

	Extraction ExtractionConfig `yaml:"extraction" json:"extraction" jsonschema:"description=Article content extraction configuration"`
}

// LLMConfig holds LLM configuration shared by the classifier and summarizer
type LLMConfig struct {
	Endpoint        string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible API endpoint"`
	APIKey          string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model           string        `yaml:"model" json:"model" jsonschema:"required,description=Model name (e.g. gpt-4o-mini)"`
	Temperature     float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.3,description=Temperature for response generation"`
	MaxTokens       int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=500,description=Maximum tokens in response"`
	Timeout         time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout per call"`
	SummaryPrompt   string        `yaml:"summary_prompt" json:"summary_prompt" jsonschema:"description=System prompt for article summaries (optional)"`
	AudioPrompt     string        `yaml:"audio_prompt" json:"audio_prompt" jsonschema:"description=System prompt for audio-optimized summaries (optional)"`
	RelevancePrompt string        `yaml:"relevance_prompt" json:"relevance_prompt" jsonschema:"description=System prompt for the relevance classifier (optional)"`
}

// TTSConfig holds text-to-speech settings for audio overviews
type TTSConfig struct {
	Enabled      bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Enable audio overviews"`
	Model        string        `yaml:"model" json:"model" jsonschema:"default=tts-1,description=Speech synthesis model"`
	Voice        string        `yaml:"voice" json:"voice" jsonschema:"default=alloy,description=Synthesis voice"`
	LanguageCode string        `yaml:"language_code" json:"language_code" jsonschema:"default=en-US,description=Language hint passed to the provider"`
	Timeout      time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=60s,description=Synthesis request timeout"`
}

// ExtractionConfig holds content extraction settings
type ExtractionConfig struct {
	Timeout       time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Extraction timeout per article"`
	UserAgent     string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=DiscordSummarizer/1.0,description=User agent for HTTP requests"`
	MinTextLength int           `yaml:"min_text_length" json:"min_text_length" jsonschema:"default=100,description=Minimum text length to consider valid"`
	MaxTextLength int           `yaml:"max_text_length" json:"max_text_length" jsonschema:"default=6000,description=Body text is truncated to this length before summarization"`
}

// Load reads configuration from a YAML file, applies environment
// overrides and defaults, and validates the result
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	applyEnvOverrides(&cfg)
	setDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// applyEnvOverrides maps the documented environment variables onto the
// config; env always wins over the YAML value
func applyEnvOverrides(cfg *Config) {
	if v, ok := envBool("ENABLE_AUDIO_OVERVIEWS"); ok {
		cfg.TTS.Enabled = v
	}
	if v := os.Getenv("TTS_VOICE"); v != "" {
		cfg.TTS.Voice = v
	}
	if v := os.Getenv("TTS_LANGUAGE_CODE"); v != "" {
		cfg.TTS.LanguageCode = v
	}
	if v, ok := envInt("ARTICLES_PER_FEED"); ok && v > 0 {
		cfg.Schedule.ArticlesPerFeed = v
	}
}

func setDefaults(cfg *Config) {
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	if cfg.Schedule.MaxWorkers == 0 {
		cfg.Schedule.MaxWorkers = 5
	}
	if cfg.Schedule.ArticlesPerFeed == 0 {
		cfg.Schedule.ArticlesPerFeed = 2
	}

	if cfg.LLM.Temperature == 0 {
		cfg.LLM.Temperature = 0.3
	}
	if cfg.LLM.MaxTokens == 0 {
		cfg.LLM.MaxTokens = 500
	}
	if cfg.LLM.Timeout == 0 {
		cfg.LLM.Timeout = 30 * time.Second
	}

	if cfg.TTS.Model == "" {
		cfg.TTS.Model = "tts-1"
	}
	if cfg.TTS.Voice == "" {
		cfg.TTS.Voice = "alloy"
	}
	if cfg.TTS.LanguageCode == "" {
		cfg.TTS.LanguageCode = "en-US"
	}
	if cfg.TTS.Timeout == 0 {
		cfg.TTS.Timeout = 60 * time.Second
	}

	if cfg.Extraction.Timeout == 0 {
		cfg.Extraction.Timeout = 30 * time.Second
	}
	if cfg.Extraction.UserAgent == "" {
		cfg.Extraction.UserAgent = "DiscordSummarizer/1.0"
	}
	if cfg.Extraction.MinTextLength == 0 {
		cfg.Extraction.MinTextLength = 100
	}
	if cfg.Extraction.MaxTextLength == 0 {
		cfg.Extraction.MaxTextLength = 6000
	}

	for i := range cfg.Sources {
		if cfg.Sources[i].Kind == "" {
			cfg.Sources[i].Kind = domain.SourceArticles
		}
		if cfg.Sources[i].ID == "" {
			cfg.Sources[i].ID = cfg.Sources[i].URL
		}
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.LLM.Model == "" {
		return fmt.Errorf("llm.model is required")
	}
	if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be between 0 and 2")
	}

	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	if cfg.Extraction.Timeout < time.Second {
		return fmt.Errorf("extraction timeout must be at least 1 second")
	}
	if cfg.Extraction.MinTextLength < 0 {
		return fmt.Errorf("extraction min_text_length must be non-negative")
	}

	for _, src := range cfg.Sources {
		if src.URL == "" {
			return fmt.Errorf("source %q has no url", src.ID)
		}
		if src.Kind != domain.SourceArticles && src.Kind != domain.SourceVideos {
			return fmt.Errorf("source %q has unsupported kind %q", src.ID, src.Kind)
		}
	}

	return nil
}

// GatingFromEnv builds the gating configuration from environment
// variables, falling back to documented defaults for anything unset
func GatingFromEnv() domain.GatingConfig {
	cfg := domain.GatingConfig{
		Enabled:            true,
		Strategy:           domain.StrategyModel,
		FallbackToKeywords: true,
		MatchMode:          domain.MatchAllowIfAny,
		DefaultOnError:     true,
		CacheTTL:           86400 * time.Second,
	}

	if v, ok := envBool("ENABLE_GATING"); ok {
		cfg.Enabled = v
	}
	if v := strings.ToLower(strings.TrimSpace(os.Getenv("GATING_STRATEGY"))); v != "" {
		cfg.Strategy = domain.GatingStrategy(v)
	}
	if v, ok := envBool("MODEL_BASED_GATING_FALLBACK_TO_KEYWORDS"); ok {
		cfg.FallbackToKeywords = v
	}
	if v := os.Getenv("GATING_KEYWORDS"); v != "" {
		for _, kw := range strings.Split(v, ",") {
			if kw = strings.TrimSpace(kw); kw != "" {
				cfg.Keywords = append(cfg.Keywords, kw)
			}
		}
	}
	if v := strings.ToLower(strings.TrimSpace(os.Getenv("GATING_MATCH_MODE"))); v != "" {
		cfg.MatchMode = domain.MatchMode(v)
	}
	if v, ok := envBool("GATING_DEFAULT_ON_ERROR"); ok {
		cfg.DefaultOnError = v
	}
	if v, ok := envInt("GATING_CACHE_TTL_SECONDS"); ok {
		cfg.CacheTTL = time.Duration(v) * time.Second
	}

	return cfg
}

func envBool(key string) (val, ok bool) {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if v == "" {
		return false, false
	}
	switch v {
	case "1", "true", "yes", "on":
		return true, true
	case "0", "false", "no", "off":
		return false, true
	}
	return false, false
}

func envInt(key string) (val int, ok bool) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetExtractionConfig returns content extraction configuration
func (c *Config) GetExtractionConfig() ExtractionConfig {
	return c.Extraction
}

// GetLLMConfig returns LLM configuration
func (c *Config) GetLLMConfig() LLMConfig {
	return c.LLM
}

// GetTTSConfig returns text-to-speech configuration
func (c *Config) GetTTSConfig() TTSConfig {
	return c.TTS
}
