package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/automoto/runaway-hotdog/shared/leveldata"
	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the levels that would be played",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		levels, err := loadLevels()
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "#\tNAME\tSIZE\tENEMIES\tBREAKABLE\tCOINS")
		for i, lvl := range levels {
			enemies := lvl.Count(leveldata.PlacePatrol) + lvl.Count(leveldata.PlaceChaser) + lvl.Count(leveldata.PlaceStomper)
			fmt.Fprintf(tw, "%d\t%s\t%.0fx%.0f\t%d\t%d\t%d\n", i+1, lvl.Name, lvl.Width, lvl.Height,
				enemies, lvl.Count(leveldata.PlaceBreakable), lvl.Count(leveldata.PlaceCoin))
		}
		return tw.Flush()
	},
}
