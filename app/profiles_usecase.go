package app

import (
	"io"
	"time"

	"github.com/onec-tools/bslbridge/domain"
	"github.com/onec-tools/bslbridge/internal/config"
	"github.com/onec-tools/bslbridge/service"
)

// ProfilesConfig holds configuration for the profiles use case
type ProfilesConfig struct {
	// ConfigPath is an optional explicit configuration file
	ConfigPath string

	// CatalogPath overrides the configured ACC catalog path when set
	CatalogPath string

	// BSLRulesPath overrides the configured BSL rule-key list when set
	BSLRulesPath string

	// Output options
	OutputFormat domain.OutputFormat
	OutputWriter io.Writer
}

// ProfilesUseCase orchestrates quality profile synthesis: catalog and
// rule-key loading, profile building, registration, and output.
type ProfilesUseCase struct {
	loader    *service.CatalogLoaderImpl
	formatter *service.OutputFormatterImpl
}

// NewProfilesUseCase creates a new profiles use case
func NewProfilesUseCase() *ProfilesUseCase {
	return &ProfilesUseCase{
		loader:    service.NewCatalogLoader(),
		formatter: service.NewOutputFormatter(),
	}
}

// Execute synthesizes the built-in profiles and writes them to the
// configured writer. A missing catalog produces zero profiles.
func (uc *ProfilesUseCase) Execute(cfg ProfilesConfig) ([]domain.Profile, error) {
	fileCfg, err := config.LoadConfig(cfg.ConfigPath)
	if err != nil {
		return nil, domain.NewConfigError("failed to load configuration", err)
	}

	catalogPath := fileCfg.ACC.Catalog
	if cfg.CatalogPath != "" {
		catalogPath = cfg.CatalogPath
	}
	rulesPath := fileCfg.BSL.Rules
	if cfg.BSLRulesPath != "" {
		rulesPath = cfg.BSLRulesPath
	}
	format := cfg.OutputFormat
	if format == "" {
		format = domain.OutputFormat(fileCfg.Output.Format)
	}

	rulesFile := uc.loader.Load(catalogPath)

	var bslKeys []string
	if rulesPath != "" {
		bslKeys, err = service.LoadRuleKeys(rulesPath)
		if err != nil {
			return nil, err
		}
	}

	builder := service.NewProfileBuilder(rulesFile, bslKeys)
	collector := service.NewResultCollector()
	if err := builder.Register(collector); err != nil {
		return nil, err
	}

	profiles := collector.Profiles()
	if cfg.OutputWriter != nil {
		generatedAt := time.Now().UTC().Format(time.RFC3339)
		if err := uc.formatter.WriteProfiles(profiles, generatedAt, format, cfg.OutputWriter); err != nil {
			return profiles, err
		}
	}

	return profiles, nil
}
