package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/larsvilhuber/acrodefs-maintenance/pkg/config"
	"github.com/larsvilhuber/acrodefs-maintenance/pkg/consolidate"
	"github.com/larsvilhuber/acrodefs-maintenance/pkg/logger"
	"github.com/larsvilhuber/acrodefs-maintenance/pkg/notifier"
	"github.com/larsvilhuber/acrodefs-maintenance/pkg/types"
	"github.com/larsvilhuber/acrodefs-maintenance/pkg/utils"
	"github.com/larsvilhuber/acrodefs-maintenance/pkg/vcs"
	"github.com/larsvilhuber/acrodefs-maintenance/pkg/writer"
)

func newConsolidateCmd() *cobra.Command {
	var listFile string
	var outputFile string
	var notify bool

	cmd := &cobra.Command{
		Use:   "consolidate",
		Short: "Merge all listed definition files into one",
		Long: `Read the file list, extract every definition, resolve duplicate
labels by last-modified date and write the consolidated output file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsolidate(listFile, outputFile, notify)
		},
	}

	cmd.Flags().StringVarP(&listFile, "list", "l", "", "file list (default: list.txt)")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default: acrodefs.tex)")
	cmd.Flags().BoolVar(&notify, "notify", false, "send a desktop notification when the run finishes")

	return cmd
}

func newValidateCmd() *cobra.Command {
	var listFile string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the file list without writing output",
		Long:  `Verify that the file list is readable and report which listed paths exist.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(listFile)
		},
	}

	cmd.Flags().StringVarP(&listFile, "list", "l", "", "file list (default: list.txt)")

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of acrodefs",
		Long:  `Print the version number of acrodefs`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("acrodefs v%s\n", version)
		},
	}
}

// loadConfig resolves the effective configuration: config file if one
// was found, then ACRODEFS_* environment variables, then flag
// overrides on top.
func loadConfig(listFile, outputFile string) (*types.AcrodefsConfig, error) {
	mgr := config.NewManager()

	cfg := mgr.GetDefaultConfig()
	if path := viper.ConfigFileUsed(); path != "" {
		loaded, err := mgr.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	viper.SetEnvPrefix("ACRODEFS")
	viper.AutomaticEnv()
	if v := viper.GetString("listfile"); v != "" {
		cfg.ListFile = v
	}
	if v := viper.GetString("outputfile"); v != "" {
		cfg.OutputFile = v
	}
	if v := viper.GetString("loglevel"); v != "" {
		cfg.LogLevel = v
	}

	if listFile != "" {
		cfg.ListFile = listFile
	}
	if outputFile != "" {
		cfg.OutputFile = outputFile
	}
	if verbosity != "" {
		cfg.LogLevel = verbosity
	}

	return cfg, nil
}

func runConsolidate(listFile, outputFile string, notify bool) error {
	cfg, err := loadConfig(listFile, outputFile)
	if err != nil {
		return err
	}

	log := logger.CreateLogger("", cfg.LogLevel)
	notify = notify || cfg.NotificationsEnabled()
	runNotifier := notifier.New(notify, log)
	start := time.Now()

	console.Info("Reading file list from: " + cfg.ListFile)

	c := consolidate.New(vcs.NewResolver(log))
	result, err := c.Run(context.Background(), cfg.ListFile)
	if err != nil {
		runNotifier.NotifyFailure(err)
		return err
	}

	renderDecisions(log, result.Decisions)
	log.Debug("run finished", logger.WithField("run_id", result.RunID))

	console.Info(fmt.Sprintf("Total unique definitions: %d", result.Mapping.Len()))
	console.Info("Writing consolidated file to: " + cfg.OutputFile)

	w := writer.NewWithStripPrefix(cfg.StripPrefix)
	if err := w.Write(result.Mapping, cfg.OutputFile); err != nil {
		runNotifier.NotifyFailure(err)
		return err
	}

	console.Success("Done!")
	runNotifier.NotifyComplete(cfg.OutputFile, result.Mapping.Len(), time.Since(start))
	return nil
}

// renderDecisions turns the engine's decision log into the console
// narrative: progress lines, warnings and update/skip notices.
func renderDecisions(log logger.Logger, decisions []types.Decision) {
	const dateFormat = "2006-01-02"

	for _, d := range decisions {
		switch d.Kind {
		case types.DecisionProcessed:
			log.Info(fmt.Sprintf("Processing: %s (dated: %s)", d.Path, d.Date.Format(dateFormat)))
		case types.DecisionFileMissing:
			log.Warn("File not found: " + d.Path)
		case types.DecisionReadError:
			log.Error(fmt.Sprintf("Error reading %s: %s", d.Path, d.Message))
		case types.DecisionUpdated:
			log.Info(fmt.Sprintf("  Updating %s: newer version from %s (was %s)",
				d.Label, d.Date.Format(dateFormat), d.PrevDate.Format(dateFormat)))
		case types.DecisionSkippedOld:
			log.Info(fmt.Sprintf("  Skipping older version of %s from %s",
				d.Label, d.Date.Format(dateFormat)))
		case types.DecisionDeduped:
			log.Debug("  Identical duplicate of "+d.Label, logger.WithField("path", d.Path))
		case types.DecisionInserted:
			log.Debug("  Added "+d.Label, logger.WithField("path", d.Path))
		}
	}
}

func runValidate(listFile string) error {
	cfg, err := loadConfig(listFile, "")
	if err != nil {
		return err
	}

	fs := utils.NewFileSystemUtils()
	data, err := fs.ReadFile(cfg.ListFile)
	if err != nil {
		return fmt.Errorf("failed to read list file %s: %w", cfg.ListFile, err)
	}

	paths := consolidate.ParseList(data)
	problems := 0
	for _, path := range paths {
		switch {
		case !fs.Exists(path):
			console.Warn("missing: " + path)
			problems++
		case fs.IsDirectory(path):
			console.Warn("not a file: " + path)
			problems++
		default:
			console.Info("found: " + path)
		}
	}

	console.Info(fmt.Sprintf("%d files listed, %d with problems", len(paths), problems))
	if problems > 0 {
		console.Warn("problem files will be skipped during consolidation")
	} else {
		console.Success("file list is valid")
	}
	return nil
}
