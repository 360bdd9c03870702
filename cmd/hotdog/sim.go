package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/automoto/runaway-hotdog/game"
	"github.com/spf13/cobra"
)

var (
	flagSeconds  float64
	flagHold     []string
	flagScript   string
	flagRealtime bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the simulation headless and log a summary",
	Long: `Run the game without a window, as fast as possible, feeding input from
--hold or a YAML script, then log what happened.

Script format:
  - at: 0
    hold: [right]
  - at: 1.5
    hold: [right, jump, ketchup]

Action names: left, right, jump, break, ketchup, mustard, relish`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().Float64Var(&flagSeconds, "seconds", 30, "Game time to simulate")
	simCmd.Flags().StringSliceVar(&flagHold, "hold", nil, "Actions to hold for the whole run")
	simCmd.Flags().StringVar(&flagScript, "script", "", "YAML input script (overrides --hold)")
	simCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Run at wall-clock speed holding the --hold actions")
}

func runSim(cmd *cobra.Command, args []string) error {
	script, err := simScript()
	if err != nil {
		return err
	}
	session, err := newSession()
	if err != nil {
		return err
	}

	start := time.Now()
	var ticks int
	if flagRealtime {
		ticks = runRealtime(cmd.Context(), session, script)
	} else {
		ticks = game.Simulate(session, script, flagSeconds)
	}
	st := session.Stats()

	logger.Info("simulation finished",
		"ticks", ticks,
		"wall", time.Since(start).Round(time.Millisecond),
		"state", session.State(),
		"level", session.LevelIndex()+1,
		"score", session.Score(),
	)
	logger.Info("stats",
		"levels_cleared", st.LevelsCleared,
		"stomps", st.Stomps,
		"stunned", st.EnemiesStunned,
		"blocks_broken", st.BlocksBroken,
		"coins", st.CoinsCollected,
		"throws", st.Throws,
		"hits", st.Hits,
	)
	for outcome, n := range st.Outcomes {
		logger.Debug("projectile outcome", "outcome", outcome, "count", n)
	}
	return nil
}

// runRealtime drives the session through its fixed-step loop on a wall
// clock. Scripts are sampled at the start only.
func runRealtime(ctx context.Context, session *game.Session, script game.Script) int {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(flagSeconds*float64(time.Second)))
	defer cancel()

	session.SetInput(script.InputAt(0))
	session.Run(ctx, 16*time.Millisecond)
	return int(session.Stats().Ticks)
}

func simScript() (game.Script, error) {
	if flagScript == "" {
		return game.HoldScript(flagHold)
	}
	data, err := os.ReadFile(flagScript)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return game.ParseScript(data)
}
