package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Default source file extensions tracked as BSL
var DefaultExtensions = []string{".bsl", ".os"}

// DefaultCatalogPath is the conventional location of the ACC rule catalog
const DefaultCatalogPath = "acc.json"

// Config represents the main configuration structure
type Config struct {
	// Reports holds paths or glob patterns locating BSL Language Server
	// analysis reports (the report-path discovery setting).
	Reports []string `json:"reports" mapstructure:"reports" yaml:"reports"`

	// Source configures tracked source file discovery
	Source SourceConfig `json:"source" mapstructure:"source" yaml:"source"`

	// ACC configures the ACC rule catalog
	ACC ACCConfig `json:"acc" mapstructure:"acc" yaml:"acc"`

	// BSL configures the BSL Language Server rule namespace
	BSL BSLConfig `json:"bsl" mapstructure:"bsl" yaml:"bsl"`

	// Output configures result rendering
	Output OutputConfig `json:"output" mapstructure:"output" yaml:"output"`
}

// SourceConfig configures the tracked source file index
type SourceConfig struct {
	// Roots are the directories walked to build the tracked file set
	Roots []string `json:"roots" mapstructure:"roots" yaml:"roots"`

	// Extensions are the file extensions tracked as BSL sources
	Extensions []string `json:"extensions" mapstructure:"extensions" yaml:"extensions"`
}

// ACCConfig configures the ACC rule catalog source
type ACCConfig struct {
	// Catalog is the path of the ACC rules JSON file
	Catalog string `json:"catalog" mapstructure:"catalog" yaml:"catalog"`
}

// BSLConfig configures the BSL Language Server rule namespace
type BSLConfig struct {
	// Rules is the path of a newline-separated list of activated
	// BSL Language Server rule keys
	Rules string `json:"rules" mapstructure:"rules" yaml:"rules"`
}

// OutputConfig configures result rendering
type OutputConfig struct {
	// Format is one of text, json, yaml
	Format string `json:"format" mapstructure:"format" yaml:"format"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Reports: []string{},
		Source: SourceConfig{
			Roots:      []string{"."},
			Extensions: append([]string{}, DefaultExtensions...),
		},
		ACC: ACCConfig{
			Catalog: DefaultCatalogPath,
		},
		Output: OutputConfig{
			Format: "text",
		},
	}
}

// configFileNames lists recognized config file names in order of preference
var configFileNames = []string{
	"bslbridge.yaml",
	"bslbridge.yml",
	"bslbridge.json",
	".bslbridge.yaml",
	".bslbridge.yml",
	".bslbridge.json",
}

// FindDefaultConfigFile searches the current directory and its parents for
// a recognized configuration file, returning "" when none exists.
func FindDefaultConfigFile() string {
	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		for _, name := range configFileNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return ""
}

// LoadConfig loads configuration from the given file, merged over the
// defaults. An empty path falls back to FindDefaultConfigFile; when no
// file exists the defaults are returned unchanged.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = FindDefaultConfigFile()
		if path == "" {
			return cfg, nil
		}
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("BSLBRIDGE")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if len(cfg.Source.Extensions) == 0 {
		cfg.Source.Extensions = append([]string{}, DefaultExtensions...)
	}
	if len(cfg.Source.Roots) == 0 {
		cfg.Source.Roots = []string{"."}
	}

	return cfg, nil
}

// Template is the commented configuration file written by `bslbridge init`.
const Template = `# bslbridge configuration

# Paths or glob patterns locating BSL Language Server analysis reports.
# Doublestar patterns are supported, e.g. "build/**/bsl-ls-report*.json".
reports:
  - "bsl-ls-report.json"

source:
  # Directories walked to build the tracked source file set.
  roots:
    - "."
  # File extensions tracked as BSL sources.
  extensions:
    - ".bsl"
    - ".os"

acc:
  # Path of the ACC rules catalog (JSON).
  catalog: "acc.json"

bsl:
  # Optional newline-separated list of activated BSL Language Server
  # rule keys, used by the combined "BSL - all rules" profile.
  rules: ""

output:
  # One of: text, json, yaml.
  format: "text"
`
