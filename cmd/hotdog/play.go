package main

import (
	"os/signal"
	"syscall"

	"github.com/automoto/runaway-hotdog/scenes"
	"github.com/automoto/runaway-hotdog/terminal"
	"github.com/spf13/cobra"
)

var flagScale float64

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in a window",
	Long: `Open a window and play.

Controls:
  Left/Right, A/D      - Run
  Space, Up, W         - Jump
  Shift (hold)         - Break blocks you run into
  1/J, 2/K, 3/L        - Throw ketchup, mustard, relish
  P                    - Pause
  Enter                - Play again after game over
  Esc                  - Quit`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := newSession()
		if err != nil {
			return err
		}
		return scenes.Run(session, logger, flagScale)
	},
}

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Play inside the terminal",
	Long: `Play in the terminal with the view scaled to fit.

Controls:
  Left/Right, A/D      - Run
  Space, Up, W         - Jump
  Down, B              - Break blocks you run into
  1/J, 2/K, 3/L        - Throw ketchup, mustard, relish
  P                    - Pause
  R                    - Play again after game over
  Q/Esc/Ctrl+C         - Quit`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := newSession()
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM)
		defer stop()
		return terminal.Run(ctx, session, terminal.Options{Logger: logger})
	},
}

func init() {
	playCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window scale factor")
}
