/*
Package config manages TOML config for wordfind.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/bastiangx/wordfind/internal/utils"
	"github.com/bastiangx/wordfind/pkg/suggest"
	"github.com/charmbracelet/log"
)

// FileName is the config file name inside the config dir.
const FileName = "config.toml"

// Config holds the entire config structure
type Config struct {
	Query  QueryConfig  `toml:"query"`
	Corpus CorpusConfig `toml:"corpus"`
	CLI    CliConfig    `toml:"cli"`
	Bench  BenchConfig  `toml:"bench"`
}

// QueryConfig has query related options.
type QueryConfig struct {
	Suggestions int `toml:"suggestions"`
}

// CorpusConfig holds ingestion options.
type CorpusConfig struct {
	Path         string `toml:"path"`
	StripPattern string `toml:"strip_pattern"`
}

// CliConfig holds interactive loop options.
type CliConfig struct {
	ExitWord   string `toml:"exit_word"`
	Color      bool   `toml:"color"`
	ShowTiming bool   `toml:"show_timing"`
}

// BenchConfig holds benchmark harness options.
type BenchConfig struct {
	DefaultRepeats int `toml:"default_repeats"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Query: QueryConfig{
			Suggestions: suggest.DefaultSuggestions,
		},
		Corpus: CorpusConfig{
			Path:         filepath.Join("text", "text.txt"),
			StripPattern: utils.DefaultStripPattern,
		},
		CLI: CliConfig{
			ExitWord:   "exit",
			Color:      true,
			ShowTiming: false,
		},
		Bench: BenchConfig{
			DefaultRepeats: 1000,
		},
	}
}

// Sanitize replaces out of range values with defaults.
func (c *Config) Sanitize() {
	def := DefaultConfig()
	if c.Query.Suggestions < 1 {
		log.Warnf("query.suggestions must be >= 1, got %d. Using %d", c.Query.Suggestions, def.Query.Suggestions)
		c.Query.Suggestions = def.Query.Suggestions
	}
	if c.Corpus.Path == "" {
		c.Corpus.Path = def.Corpus.Path
	}
	if c.Corpus.StripPattern == "" {
		c.Corpus.StripPattern = def.Corpus.StripPattern
	}
	if c.CLI.ExitWord == "" {
		c.CLI.ExitWord = def.CLI.ExitWord
	}
	if c.Bench.DefaultRepeats < 1 {
		log.Warnf("bench.default_repeats must be >= 1, got %d. Using %d", c.Bench.DefaultRepeats, def.Bench.DefaultRepeats)
		c.Bench.DefaultRepeats = def.Bench.DefaultRepeats
	}
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag or WORDFIND_CONFIG
// 2. defaultPath, created with defaults when missing
// 3. Builtin defaults
// It returns the path actually used, empty for builtin defaults.
func LoadConfigWithPriority(customPath, defaultPath string) (*Config, string, error) {
	if customPath != "" {
		if _, statErr := os.Stat(customPath); statErr == nil {
			config, err := LoadConfig(customPath)
			if err == nil {
				log.Debugf("Loaded config from custom path: %s", customPath)
				return config, customPath, nil
			}
			log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customPath, err)
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customPath, statErr)
		}
	}

	if defaultPath == "" {
		return DefaultConfig(), "", nil
	}
	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file. Keys missing from the file keep their
// defaults; a file that fails strict decoding is salvaged key by key.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath, err)
	}
	config.Sanitize()
	return config, nil
}

// tryPartialParse keeps every well-typed key of a broken config file.
// decodeErr is the strict decoding failure; one warning is logged either way.
func tryPartialParse(configPath string, decodeErr error) (*Config, error) {
	config := DefaultConfig()

	raw, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}
	log.Warnf("Config %s has invalid values (%v). Keeping the valid keys, defaults for the rest.", configPath, decodeErr)

	if section, ok := utils.ExtractSection(raw, "query"); ok {
		if val, ok := utils.ExtractInt(section, "suggestions"); ok {
			config.Query.Suggestions = val
		}
	}
	if section, ok := utils.ExtractSection(raw, "corpus"); ok {
		if val, ok := utils.ExtractString(section, "path"); ok {
			config.Corpus.Path = val
		}
		if val, ok := utils.ExtractString(section, "strip_pattern"); ok {
			config.Corpus.StripPattern = val
		}
	}
	if section, ok := utils.ExtractSection(raw, "cli"); ok {
		if val, ok := utils.ExtractString(section, "exit_word"); ok {
			config.CLI.ExitWord = val
		}
		if val, ok := utils.ExtractBool(section, "color"); ok {
			config.CLI.Color = val
		}
		if val, ok := utils.ExtractBool(section, "show_timing"); ok {
			config.CLI.ShowTiming = val
		}
	}
	if section, ok := utils.ExtractSection(raw, "bench"); ok {
		if val, ok := utils.ExtractInt(section, "default_repeats"); ok {
			config.Bench.DefaultRepeats = val
		}
	}

	config.Sanitize()
	return config, nil
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
