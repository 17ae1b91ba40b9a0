// Package root contains the root command for the application
package root

import (
	"tactics-csv/internal/common"
	"tactics-csv/internal/config"
	"tactics-csv/internal/logging"
	"tactics-csv/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input      string
	Output     string
	Dictionary string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the loaded application configuration, available to all
	// commands after PersistentPreRun.
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "tactics-csv",
		Short: "A CLI tool to classify marketing statements in CSV files against keyword dictionaries.",
		Long: `tactics-csv classifies free-text marketing statements against editable
keyword dictionaries. Each statement gets per-category presence flags, match
counts and matched-keyword lists, and each run produces dataset-level
statistics.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to tactics-csv!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}
			Cfg = cfg

			Log = config.ConfigureLoggingFromConfig(cfg)
			adapter := logging.NewLogrusAdapterFromLogger(Log)
			logging.SetDefault(adapter)
			common.SetLogger(adapter)
			store.SetLogger(adapter)

			common.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])
		},
	}

	// SharedFlags are the common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// DictionaryFile returns the dictionary file to use: the --dict flag when
// set, otherwise the configured file.
func DictionaryFile() string {
	if SharedFlags.Dictionary != "" {
		return SharedFlags.Dictionary
	}
	if Cfg != nil {
		return Cfg.Dictionary.File
	}
	return ""
}

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Dictionary, "dict", "d", "", "Dictionary YAML file")
}
