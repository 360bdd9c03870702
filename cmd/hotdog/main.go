// hotdog runs Runaway Hotdog, a small platformer about a runaway hotdog
// escaping hungry humans.
//
// Usage:
//
//	hotdog play              - Play in a window
//	hotdog term              - Play inside the terminal
//	hotdog sim               - Run the simulation headless and log a summary
//	hotdog levels            - List the levels that would be played
//
// Global flags:
//
//	--config <path>     - YAML file overriding tuning values
//	--levels <path>     - Level pack YAML (default: built-in levels)
//	--tmx <dir>         - Play every .tmx map in a directory instead
//	--level <n>         - Start at level n (1-based)
//	--seed <value>      - RNG seed (0 = random based on time)
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	cfg "github.com/automoto/runaway-hotdog/config"
	"github.com/automoto/runaway-hotdog/game"
	"github.com/automoto/runaway-hotdog/shared/leveldata"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagLevels   string
	flagTMX      string
	flagLevel    int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string

	logger  *log.Logger
	logSink io.Closer
)

func main() {
	err := rootCmd.Execute()
	if logSink != nil {
		logSink.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hotdog",
	Short: "Runaway Hotdog - help a hotdog escape the hungry humans",
	Long: `Runaway Hotdog is a side-scrolling platformer. Run, jump, break blocks
and splat condiments on the humans chasing you until you reach the flag.

Examples:
  hotdog play
  hotdog play --level 3 --seed 42
  hotdog term --levels ./mylevels.yaml
  hotdog sim --seconds 60 --hold right,jump`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "YAML file overriding tuning values")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Level pack YAML (default: built-in levels)")
	rootCmd.PersistentFlags().StringVar(&flagTMX, "tmx", "", "Directory of .tmx maps to play instead of a pack")
	rootCmd.PersistentFlags().IntVar(&flagLevel, "level", 1, "Level to start at (1-based)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(termCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(levelsCmd)
}

func setup(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return err
	}

	var out io.Writer = os.Stderr
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		out, logSink = f, f
	} else if cmd == termCmd {
		// Anything written to stderr would tear the terminal UI.
		out = io.Discard
	}
	logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "hotdog",
		Level:           level,
	})

	if err := cfg.LoadOverrides(flagConfig); err != nil {
		return err
	}
	if flagConfig != "" {
		logger.Info("config overrides applied", "path", flagConfig)
	}
	return nil
}

func loadLevels() ([]*leveldata.Level, error) {
	switch {
	case flagTMX != "":
		return leveldata.LoadTMXDir(os.DirFS(flagTMX), ".")
	case flagLevels != "":
		return leveldata.LoadPackFile(flagLevels, cfg.Level.BlockSize)
	default:
		return leveldata.Builtin(cfg.Level.BlockSize)
	}
}

func newSession() (*game.Session, error) {
	levels, err := loadLevels()
	if err != nil {
		return nil, err
	}
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("starting session", "levels", len(levels), "seed", seed)
	return game.NewSession(game.Options{
		Levels:     levels,
		StartLevel: flagLevel - 1,
		Seed:       seed,
		Logger:     logger,
	})
}
