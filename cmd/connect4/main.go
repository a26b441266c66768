// connect4 is a two-player Connect Four game for the terminal.
//
// Usage:
//
//	connect4 play      - Play a hot-seat game in this terminal
//	connect4 serve     - Start SSH server; every session gets its own game
//	connect4 history   - Show recorded results of finished games
//	connect4 config    - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.connect4/config.yaml)
//	--db <path>         - Results database (default: ~/.connect4/results.db)
//	--log-level <level> - debug, info, warn, error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-connect4/internal/config"
	"github.com/vovakirdan/tui-connect4/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "connect4",
	Short: "Connect Four - Two players, one terminal",
	Long: `Connect Four for two players sharing a terminal.

Drop pieces into a 7x6 grid; the first to line up four in a row
horizontally, vertically or diagonally wins.

Available commands:
  play     - Play a game in this terminal
  serve    - Start SSH server for remote play
  history  - View results of finished games
  config   - Print the effective configuration

Examples:
  connect4 play
  connect4 serve --ssh :2222
  connect4 history --limit 50`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to results database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the configuration and applies global flag overrides.
// Exits on an invalid configuration.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg
}

// newLogger creates the application logger. Logs go to --log-file when set,
// otherwise to fallback. The returned closer releases the log file.
func newLogger(cfg config.Config, fallback io.Writer) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}

	w := fallback
	var closer io.Closer = io.NopCloser(nil)
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "connect4",
		Level:           level,
	})
	return logger, closer, nil
}

// openStore opens the results database. It returns nil, nil when recording
// is disabled in the configuration.
func openStore(cfg config.Config) (*storage.Store, error) {
	if !cfg.Storage.Record {
		return nil, nil
	}
	return storage.Open(cfg.Storage.Path)
}
