package main

import (
	"github.com/spf13/cobra"

	"github.com/onec-tools/bslbridge/app"
	"github.com/onec-tools/bslbridge/domain"
)

var (
	profilesCatalogPath string
	profilesBSLRules    string
	profilesFormat      string
	profilesJSONOutput  bool
	profilesOutputPath  string
	profilesConfigPath  string
)

func profilesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "Synthesize built-in quality profiles from the ACC rule catalog",
		Long: `Read the ACC rule catalog and produce the three built-in quality
profiles: "ACC - full check" (active rules), "ACC - 1C:Certified"
(certification rules) and "BSL - all rules" (active rules plus every
BSL Language Server rule key).

When the catalog cannot be loaded, no profiles are produced at all.

Examples:
  bslbridge profiles --catalog acc.json
  bslbridge profiles --catalog acc.json --bsl-rules bsl-rules.txt --json`,
		RunE: runProfiles,
	}

	cmd.Flags().StringVar(&profilesCatalogPath, "catalog", "",
		"Path of the ACC rules catalog (overrides config)")
	cmd.Flags().StringVar(&profilesBSLRules, "bsl-rules", "",
		"Path of the BSL Language Server rule-key list (overrides config)")
	cmd.Flags().StringVarP(&profilesFormat, "format", "f", "",
		"Output format: text, json, yaml")
	cmd.Flags().BoolVar(&profilesJSONOutput, "json", false,
		"Output results as JSON (shorthand for --format json)")
	cmd.Flags().StringVarP(&profilesOutputPath, "output", "o", "",
		"Output file path (default: stdout)")
	cmd.Flags().StringVarP(&profilesConfigPath, "config", "c", "",
		"Path to config file")

	return cmd
}

func runProfiles(cmd *cobra.Command, args []string) error {
	format := domain.OutputFormat(profilesFormat)
	if profilesJSONOutput {
		format = domain.OutputFormatJSON
	}

	writer, closeWriter, err := openOutput(profilesOutputPath)
	if err != nil {
		return err
	}
	defer closeWriter()

	uc := app.NewProfilesUseCase()
	_, err = uc.Execute(app.ProfilesConfig{
		ConfigPath:   profilesConfigPath,
		CatalogPath:  profilesCatalogPath,
		BSLRulesPath: profilesBSLRules,
		OutputFormat: format,
		OutputWriter: writer,
	})
	return err
}
