package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/maksimov/resume-screener/internal/batch"
	"github.com/maksimov/resume-screener/internal/embedding"
	"github.com/maksimov/resume-screener/internal/embedding/gemini"
	"github.com/maksimov/resume-screener/internal/explain"
	"github.com/maksimov/resume-screener/internal/logger"
	"github.com/maksimov/resume-screener/internal/scoring"
	"github.com/maksimov/resume-screener/internal/secrets"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	app = "resume-screener"
)

type Config struct {
	// Weights is decoded as a raw map so per-file overrides are validated by
	// the scoring package instead of silently defaulting missing components.
	Weights map[string]any  `mapstructure:"weights"`
	Scoring *scoring.Params `mapstructure:"scoring"`
	Explain *ExplainConfig  `mapstructure:"explain"`
	AI      *AIConfig       `mapstructure:"ai"`
	Batch   *BatchConfig    `mapstructure:"batch"`
}

type ExplainConfig struct {
	MaxMissingSkills int `mapstructure:"max-missing-skills"`
}

type AIConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Provider string        `mapstructure:"provider"`
	Gemini   *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKeyFile string        `mapstructure:"api-key-file"`
	Model      string        `mapstructure:"model"`
	MaxRetries int           `mapstructure:"max-retries"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

type BatchConfig struct {
	Concurrency int `mapstructure:"concurrency"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "resume-screener scores candidate resumes against a job description and explains the result",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is resume-screener.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// The config file is optional: every scoring constant has a documented
	// default. A present but unparsable file is still fatal.
	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			cobra.CheckErr(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if config == nil {
		config = &Config{}
	}

	return config, nil
}

// buildEngine assembles the scoring engine and explanation generator from the
// resolved configuration.
func buildEngine(ctx context.Context, config *Config, logger *zap.Logger) (*scoring.Engine, *explain.Generator, error) {
	weights := scoring.DefaultWeights()
	if len(config.Weights) > 0 {
		var err error
		weights, err = scoring.WeightsFromMap(config.Weights)
		if err != nil {
			return nil, nil, err
		}
	}

	params := scoring.DefaultParams()
	if config.Scoring != nil {
		params = *config.Scoring
	}

	embedder, timeout, err := buildEmbedder(ctx, config.AI, logger)
	if err != nil {
		return nil, nil, err
	}

	semantic := scoring.NewSemanticScorer(embedder, timeout, logger)

	engine, err := scoring.NewEngine(weights, params, semantic, logger)
	if err != nil {
		return nil, nil, err
	}

	maxMissing := 0
	if config.Explain != nil {
		maxMissing = config.Explain.MaxMissingSkills
	}

	return engine, explain.NewGenerator(maxMissing, logger), nil
}

// buildEmbedder resolves the embedding provider. A disabled or absent AI
// section yields no embedder: semantic scores then fall back to the neutral
// default and results are flagged degraded.
func buildEmbedder(ctx context.Context, config *AIConfig, log *zap.Logger) (embedding.Embedder, time.Duration, error) {
	if config == nil || !config.Enabled {
		log.Warn("no embedding provider configured; semantic scores will use the neutral default")
		return nil, 0, nil
	}

	provider := strings.TrimSpace(strings.ToLower(config.Provider))
	if provider != "" && provider != "gemini" {
		return nil, 0, fmt.Errorf("unsupported ai provider: %s", config.Provider)
	}

	if config.Gemini == nil {
		return nil, 0, fmt.Errorf("gemini configuration is required when ai is enabled")
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: config.Gemini.APIKeyFile,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("%w (set ai.gemini.api-key-file)", err)
	}

	embedLogger := logger.WithEmbeddingFields(log, "gemini", config.Gemini.Model)

	p, err := gemini.NewProvider(ctx, apiKey, config.Gemini.Model, config.Gemini.MaxRetries, embedLogger)
	if err != nil {
		return nil, 0, err
	}

	// One cache per process run: batch siblings share the job-description
	// embedding.
	return embedding.NewCache(p), config.Gemini.Timeout, nil
}

func buildScreener(engine *scoring.Engine, generator *explain.Generator, config *Config, logger *zap.Logger) *batch.Screener {
	concurrency := 0
	if config.Batch != nil {
		concurrency = config.Batch.Concurrency
	}
	return batch.New(engine, generator, concurrency, logger)
}
