// Package cli provides the command-line interface for acrodefs
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/larsvilhuber/acrodefs-maintenance/pkg/logger"
)

var (
	cfgFile   string
	verbosity string
	version   string

	// console renders CLI-surface messages; the structured logger is
	// reserved for the per-file decision narrative
	console = logger.NewConsoleLogger()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "acrodefs",
	Short: "Consolidate scattered LaTeX definition files into one",
	Long: `acrodefs merges acrodef, newacronym and newcommand definitions
scattered across a project into a single deduplicated file.

When the same label is defined in more than one place with differing
text, the most recently modified version wins. Modification dates come
from git history when available, falling back to file timestamps.`,

	Run: func(cmd *cobra.Command, args []string) {
		// Check if version flag is set
		if v, _ := cmd.Flags().GetBool("version"); v {
			fmt.Printf("acrodefs v%s\n", version)
			return
		}
		// If no subcommand, show help
		cmd.Help()
	},
}

// Execute runs the CLI
func Execute(v string) error {
	version = v

	// Initialize the root command explicitly (avoiding init())
	initializeRootCommand()

	return rootCmd.Execute()
}

// initializeRootCommand sets up the root command and its flags.
// This replaces the init() function to make initialization explicit and testable.
func initializeRootCommand() {
	// Set up config initialization
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: acrodefs.config.json)")
	rootCmd.PersistentFlags().StringVarP(&verbosity, "verbosity", "v", "", "log level (debug, info, warn, error)")

	// Add version flag
	rootCmd.Flags().Bool("version", false, "Print version information and quit")

	// Add subcommands
	rootCmd.AddCommand(newConsolidateCmd())
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newVersionCmd())
}

func initConfig() {
	if cfgFile != "" {
		// Use config file from flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Search for config in the working directory
		viper.AddConfigPath(".")
		viper.SetConfigName("acrodefs.config")
		viper.SetConfigType("json")

		// Also try YAML
		viper.SetConfigName("acrodefs.config")
		viper.SetConfigType("yaml")
	}

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		if verbosity == "debug" {
			fmt.Println("Using config file:", viper.ConfigFileUsed())
		}
	}
}

