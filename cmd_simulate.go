package main

import (
	"fmt"
	"war/experiments"
	"war/meta"

	"github.com/spf13/cobra"
)

var (
	simulateGames  int
	simulateOutput string
)

// simulateCmd plays many seeded sessions with a random attacker
var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run seeded sessions with a random attacker and record the results",
	RunE:  runSimulateCmd,
}

func init() {
	simulateCmd.Flags().IntVar(&simulateGames, "games", meta.SIMULATED_GAMES, "Number of sessions to play")
	simulateCmd.Flags().StringVar(&simulateOutput, "output", "experiments", "Directory for CSV results (empty skips writing)")
}

func runSimulateCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	records, err := experiments.Run(cfg, simulateGames)
	if err != nil {
		return err
	}

	completed, stalled, turns := 0, 0, 0
	for _, r := range records {
		if r.Completed {
			completed++
		}
		if r.Stalled {
			stalled++
		}
		turns += r.Turns
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Games: %d\n", len(records))
	fmt.Fprintf(out, "Missions accomplished: %d\n", completed)
	fmt.Fprintf(out, "Stalled: %d\n", stalled)
	fmt.Fprintf(out, "Average attacks: %.1f\n", float64(turns)/float64(len(records)))

	if simulateOutput != "" {
		dir, err := experiments.Store(records, simulateOutput)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Results: %s\n", dir)
	}
	return nil
}
