package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/onec-tools/bslbridge/internal/config"
)

func initCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a bslbridge configuration file",
		Long: `Generate a documented bslbridge configuration file with sensible
defaults. Use --interactive for a guided setup wizard.

Examples:
  # Create bslbridge.yaml in the current directory
  bslbridge init

  # Custom output path
  bslbridge init --config custom.yaml

  # Overwrite existing file
  bslbridge init --force

  # Interactive setup wizard
  bslbridge init --interactive
  bslbridge init -i`,
		RunE: runInit,
	}

	cmd.Flags().StringP("config", "c", "bslbridge.yaml",
		"Output path for the config file")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing config file")
	cmd.Flags().BoolP("interactive", "i", false,
		"Interactive setup wizard")

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	force, _ := cmd.Flags().GetBool("force")
	interactive, _ := cmd.Flags().GetBool("interactive")

	content := config.Template

	if interactive {
		generated, err := runInteractiveSetup()
		if err != nil {
			return err
		}
		content = generated
	}

	if !force {
		if _, err := os.Stat(configPath); err == nil {
			return fmt.Errorf("%s already exists. Use --force to overwrite", configPath)
		}
	}

	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Created %s\n", configPath)
	return nil
}

// runInteractiveSetup walks the user through the main settings and
// renders a config file from the answers.
func runInteractiveSetup() (string, error) {
	reportsPrompt := promptui.Prompt{
		Label:   "Report path or glob pattern",
		Default: "bsl-ls-report.json",
	}
	reports, err := reportsPrompt.Run()
	if err != nil {
		return "", fmt.Errorf("setup cancelled: %w", err)
	}

	sourcePrompt := promptui.Prompt{
		Label:   "Source root directory",
		Default: ".",
	}
	sourceRoot, err := sourcePrompt.Run()
	if err != nil {
		return "", fmt.Errorf("setup cancelled: %w", err)
	}

	catalogPrompt := promptui.Prompt{
		Label:   "ACC rules catalog path",
		Default: config.DefaultCatalogPath,
	}
	catalog, err := catalogPrompt.Run()
	if err != nil {
		return "", fmt.Errorf("setup cancelled: %w", err)
	}

	formats := []string{"text", "json", "yaml"}
	formatPrompt := promptui.Select{
		Label: "Output format",
		Items: formats,
	}
	formatIdx, _, err := formatPrompt.Run()
	if err != nil {
		return "", fmt.Errorf("setup cancelled: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("# bslbridge configuration\n\n")
	fmt.Fprintf(&sb, "reports:\n  - %q\n\n", reports)
	fmt.Fprintf(&sb, "source:\n  roots:\n    - %q\n  extensions:\n    - \".bsl\"\n    - \".os\"\n\n", sourceRoot)
	fmt.Fprintf(&sb, "acc:\n  catalog: %q\n\n", catalog)
	sb.WriteString("bsl:\n  rules: \"\"\n\n")
	fmt.Fprintf(&sb, "output:\n  format: %q\n", formats[formatIdx])
	return sb.String(), nil
}
