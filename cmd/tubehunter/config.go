package main

import (
	"fmt"
	"os"

	"github.com/mkovacevic/tube-hunter/internal/apperr"
	"github.com/mkovacevic/tube-hunter/internal/reader"
	"github.com/mkovacevic/tube-hunter/pkg/utils"
)

// defaultTopics are searched when neither positional topics nor a topics
// file is given.
var defaultTopics = []string{
	"Claude AI tutorials",
	"PySpark tutorials",
	"Databricks tutorials",
}

// Config is the fully resolved run configuration: flags merged with
// environment credentials.
type Config struct {
	YouTubeAPIKey   string
	AnthropicAPIKey string
	AnthropicModel  string

	Topics          []string
	MaxResults      int
	OutputDir       string
	FilterEnabled   bool
	FilterThreshold float64
}

// LoadConfig resolves the configuration from parsed flags plus the
// environment. Credentials are only read from env, never from flags.
func LoadConfig(fl *cliFlags) (*Config, error) {
	cfg := &Config{
		YouTubeAPIKey:   os.Getenv("YOUTUBE_API_KEY"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		AnthropicModel:  os.Getenv("ANTHROPIC_MODEL"),
		MaxResults:      fl.maxResults,
		OutputDir:       fl.outputDir,
		FilterEnabled:   fl.filterSet,
		FilterThreshold: fl.filterThreshold,
	}

	topics := append([]string{}, fl.topics...)
	if fl.topicsFile != "" {
		file, err := os.Open(fl.topicsFile)
		if err != nil {
			return nil, apperr.NewConfigWrap("cannot open topics file", err)
		}
		defer file.Close()

		fileTopics, err := reader.NewTopicsLoader(file).Load()
		if err != nil {
			return nil, apperr.NewConfigWrap("cannot parse topics file", err)
		}
		topics = append(topics, fileTopics...)
	}

	topics = utils.RemoveEmptyStrings(topics)
	if len(topics) == 0 {
		topics = defaultTopics
	}
	cfg.Topics = topics

	return cfg, nil
}

// Validate enforces the credential and range rules and prepares the output
// directory. It is the single gate before any topic work starts.
func (c *Config) Validate() error {
	if c.YouTubeAPIKey == "" {
		return apperr.NewConfig("YOUTUBE_API_KEY environment variable is required")
	}

	if c.FilterEnabled {
		if c.AnthropicAPIKey == "" {
			return apperr.NewConfig("ANTHROPIC_API_KEY required when filtering enabled")
		}
		if c.FilterThreshold < 0 || c.FilterThreshold > 10 {
			return apperr.NewConfig(fmt.Sprintf("filter threshold must be between 0 and 10, got %v", c.FilterThreshold))
		}
	}

	if c.MaxResults <= 0 {
		return apperr.NewConfig(fmt.Sprintf("max results must be positive, got %d", c.MaxResults))
	}

	if err := os.MkdirAll(c.OutputDir, 0o755); err != nil {
		return apperr.NewConfigWrap("cannot create output directory", err)
	}

	return nil
}
