package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultFragmentsDir = ".fragments"
	DefaultSeparator    = "..."
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "console"
)

var (
	DefaultCodeIncludes = []string{"**/*"}
	DefaultDocIncludes  = []string{"**/*.md", "**/*.html"}
)

// Config holds every setting of an embedding run. It is built once and
// passed by pointer to the components that need it.
type Config struct {
	// CodeRoot is the directory holding the source files to embed from.
	CodeRoot string `yaml:"code_root"`
	// DocumentationRoot is the directory holding the documentation files.
	DocumentationRoot string `yaml:"documentation_root"`
	// CodeIncludes selects the source files, relative to CodeRoot.
	CodeIncludes []string `yaml:"code_includes"`
	// DocIncludes selects the documentation files, relative to DocumentationRoot.
	DocIncludes []string `yaml:"doc_includes"`
	// DocExcludes removes documentation files matched by DocIncludes.
	DocExcludes []string `yaml:"doc_excludes"`
	// FragmentsDir is where extracted fragments are stored. Not meant for VCS.
	FragmentsDir string `yaml:"fragments_dir"`
	// Separator is the line inserted between partitions of one fragment.
	Separator string `yaml:"separator"`
	// Interlayer is an older name for Separator.
	Interlayer string `yaml:"interlayer"`

	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

// Default returns a configuration with every optional field set.
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// LoadConfig reads a YAML configuration file, then applies defaults and
// environment overrides.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	// 2. Load YAML config
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var doc any
	if err := yaml.Unmarshal(file, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := validateDocument(doc); err != nil {
		return nil, wrapValidationError(fmt.Errorf("config %s: %w", path, err))
	}

	var cfg Config
	if err := yaml.Unmarshal(file, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	// 3. Override with Environment Variables if present
	cfg.ApplyEnv()
	cfg.ApplyDefaults()

	return &cfg, nil
}

// ApplyEnv overrides fields with EMBEDCODE_* environment variables.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("EMBEDCODE_CODE_ROOT"); v != "" {
		c.CodeRoot = v
	}
	if v := os.Getenv("EMBEDCODE_DOCS_ROOT"); v != "" {
		c.DocumentationRoot = v
	}
	if v := os.Getenv("EMBEDCODE_FRAGMENTS_DIR"); v != "" {
		c.FragmentsDir = v
	}
	if v := os.Getenv("EMBEDCODE_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

// ApplyDefaults fills in every unset optional field.
func (c *Config) ApplyDefaults() {
	if len(c.CodeIncludes) == 0 {
		c.CodeIncludes = append([]string(nil), DefaultCodeIncludes...)
	}
	if len(c.DocIncludes) == 0 {
		c.DocIncludes = append([]string(nil), DefaultDocIncludes...)
	}
	if c.FragmentsDir == "" {
		c.FragmentsDir = DefaultFragmentsDir
	}
	if c.Separator == "" {
		c.Separator = c.Interlayer
	}
	if c.Separator == "" {
		c.Separator = DefaultSeparator
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
}

// ParseList splits a comma-separated flag value, dropping blank items.
func ParseList(value string) []string {
	var items []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
