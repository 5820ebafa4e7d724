package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/onec-tools/bslbridge/internal/logging"
	"github.com/onec-tools/bslbridge/internal/version"
)

var (
	// Version information (set via ldflags during build)
	Version = version.Version

	debugLogging bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bslbridge",
		Short: "bslbridge - BSL Language Server diagnostics bridge",
		Long: `bslbridge republishes BSL Language Server analysis results and ACC
rule catalogs toward a code-quality platform: external diagnostics become
issues, and the ACC catalog becomes built-in quality profiles.`,
		Version: Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Init(debugLogging)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&debugLogging, "debug", false,
		"Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(ingestCmd())
	rootCmd.AddCommand(profilesCmd())
	rootCmd.AddCommand(initCmd())
	rootCmd.AddCommand(versionCmd())

	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			if verbose {
				fmt.Println(version.GetFullVersion())
			} else {
				fmt.Printf("bslbridge version %s\n", version.GetVersion())
			}
		},
	}

	cmd.Flags().BoolP("verbose", "v", false, "Show detailed version information")
	return cmd
}
