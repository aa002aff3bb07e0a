package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/r3k4ce/discord-summarizer/pkg/config"
	"github.com/r3k4ce/discord-summarizer/pkg/content"
	"github.com/r3k4ce/discord-summarizer/pkg/domain"
	"github.com/r3k4ce/discord-summarizer/pkg/enrich"
	"github.com/r3k4ce/discord-summarizer/pkg/feed"
	"github.com/r3k4ce/discord-summarizer/pkg/gate"
	"github.com/r3k4ce/discord-summarizer/pkg/llm"
	"github.com/r3k4ce/discord-summarizer/pkg/proc"
	"github.com/r3k4ce/discord-summarizer/pkg/tts"
	"github.com/r3k4ce/discord-summarizer/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"f" long:"config" env:"CONFIG" default:"config.yml" description:"config file path"`
	Once   bool   `long:"once" description:"run one batch, log the digest, and exit"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		log.Printf("[ERROR] failed to load config: %v", err)
		os.Exit(1)
	}

	setupLog(opts.Debug, opts.NoColor, cfg.LLM.APIKey)
	log.Printf("[INFO] starting discord-summarizer version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	processor := buildProcessor(cfg)

	if opts.Once {
		runOnce(ctx, processor)
		cancel()
		return
	}

	srv := server.New(cfg, processor, revision, opts.Debug)
	err = srv.Run(ctx)
	cancel()

	if err != nil {
		log.Printf("[ERROR] server failed: %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// buildProcessor wires the pipeline from configuration
func buildProcessor(cfg *config.Config) *proc.Processor {
	gatingCfg := config.GatingFromEnv()

	source := feed.NewSource(cfg.Extraction.Timeout, cfg.Extraction.UserAgent)
	extractor := content.NewHTTPExtractor(cfg.Extraction)
	summarizer := llm.NewSummarizer(cfg.LLM)

	keywords := gate.NewKeywordStrategy(gatingCfg.Keywords, gatingCfg.MatchMode)
	var model gate.Strategy
	if cfg.LLM.APIKey != "" || cfg.LLM.Endpoint != "" {
		model = gate.NewModelStrategy(llm.NewClassifier(cfg.LLM), cfg.LLM.Timeout)
	}
	engine := gate.NewEngine(gatingCfg, model, keywords)

	var speech enrich.SpeechSynthesizer
	if cfg.TTS.Enabled {
		speech = tts.NewClient(cfg.LLM, cfg.TTS)
	}
	pipeline := enrich.NewPipeline(extractor, summarizer, speech, enrich.Config{
		AudioOverviews: cfg.TTS.Enabled,
		MaxTextLength:  cfg.Extraction.MaxTextLength,
	})

	return proc.NewProcessor(source, engine, pipeline, proc.Config{
		Sources:        cfg.Sources,
		ItemsPerSource: cfg.Schedule.ArticlesPerFeed,
		MaxWorkers:     cfg.Schedule.MaxWorkers,
	})
}

// runOnce executes a single batch and logs the outcome per item
func runOnce(ctx context.Context, processor *proc.Processor) {
	items := processor.Run(ctx)
	for _, item := range items {
		switch item.Status {
		case domain.StatusSummarized:
			audio := ""
			if len(item.AudioBytes) > 0 {
				audio = fmt.Sprintf(", %d bytes audio", len(item.AudioBytes))
			}
			log.Printf("[INFO] %s | %s%s\n%s", item.SourceName, item.Title, audio, item.SummaryText)
		default:
			log.Printf("[WARN] %s | %s: %s (%s)", item.SourceName, item.Title, item.Status, item.Cause)
		}
	}
	log.Printf("[INFO] digest completed, %d items", len(items))
}

func setupLog(dbg, noColor bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	if !noColor {
		colorizer := lgr.Mapper{
			ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
			WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
			InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
			DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
			CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
			TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
		}
		logOpts = append(logOpts, lgr.Map(colorizer))
	}
	secrets := make([]string, 0, len(secs))
	for _, s := range secs {
		if s != "" {
			secrets = append(secrets, s)
		}
	}
	if len(secrets) > 0 {
		logOpts = append(logOpts, lgr.Secret(secrets...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
