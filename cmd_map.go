package main

import (
	"fmt"
	"war/engine"

	"github.com/spf13/cobra"
)

// mapCmd prints the starting map and mission for a seed
var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Print the starting map and mission",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		session, err := engine.NewSession(cfg)
		if err != nil {
			return fmt.Errorf("failed to start session: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Seed: %d\n", session.Seed())
		renderMap(out, session.Territories())
		renderMission(out, session.Mission())
		return nil
	},
}
