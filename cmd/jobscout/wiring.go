package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/jobscout/jobscout/internal/config"
	"github.com/jobscout/jobscout/internal/llm"
	"github.com/jobscout/jobscout/internal/pipeline"
	"github.com/jobscout/jobscout/internal/provider/jsearch"
	"github.com/jobscout/jobscout/internal/provider/youtube"
)

// loadConfig resolves the effective configuration: flags beat the config
// file, the file beats the environment, the environment beats defaults.
func loadConfig() (config.Config, error) {
	cfg := config.FromEnv()

	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = fileCfg.MergeWithDefaults(cfg)
	}

	cfg = (&cfg).MergeWithDefaults(config.Config{
		Port:            config.DefaultPort,
		PageSize:        config.DefaultPageSize,
		BreakerFailures: config.DefaultBreakerFailures,
	})
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// buildPipeline wires the provider adapters into a pipeline. Missing
// credentials produce unconfigured adapters, not errors; the pipeline
// degrades to fallbacks instead.
func buildPipeline(ctx context.Context, cfg config.Config, logger *zap.Logger) (*pipeline.Pipeline, func(), error) {
	aiClient, err := llm.NewGeminiClient(ctx, &llm.Config{
		APIKey:           cfg.GeminiAPIKey,
		Models:           llm.DefaultConfig(cfg.GeminiAPIKey).Models,
		BreakerThreshold: cfg.BreakerFailures,
		BreakerCooldown:  cfg.Cooldown(),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create AI client: %w", err)
	}

	videoClient, err := youtube.NewClient(ctx, youtube.Config{APIKey: cfg.YouTubeAPIKey})
	if err != nil {
		_ = aiClient.Close()
		return nil, nil, fmt.Errorf("failed to create video client: %w", err)
	}

	p := pipeline.New(pipeline.Options{
		Jobs:     jsearch.NewClient(jsearch.Config{APIKey: cfg.RapidAPIKey}),
		Videos:   videoClient,
		AI:       aiClient,
		Logger:   logger,
		PageSize: cfg.PageSize,
	})

	cleanup := func() {
		_ = aiClient.Close()
		_ = logger.Sync()
	}
	return p, cleanup, nil
}

// printJSON writes a result to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
