package main

import (
	"os"
	"war/config"
	"war/game"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	configPath  string
	seed        uint64
	territories int
	playerFlag  string
	logLevel    string
)

var rootCmd = &cobra.Command{
	Use:           "war",
	Short:         "Territorial conquest with dice and secret missions",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "war.yaml", "Path to the YAML config file")
	flags.Uint64Var(&seed, "seed", 0, "Random seed (0 draws a fresh one)")
	flags.IntVar(&territories, "territories", 0, "Number of territories on the map")
	flags.StringVar(&playerFlag, "player", "", "Faction controlled by the operator")
	flags.StringVar(&logLevel, "log-level", "", "zerolog level (debug, info, warn, error)")

	rootCmd.AddCommand(playCmd, mapCmd, simulateCmd)
}

// loadConfig reads the config file and applies flags set on the command line.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("territories") {
		cfg.Territories = territories
	}
	if flags.Changed("player") {
		cfg.Player = game.Faction(playerFlag)
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Logging.Apply(cmd.ErrOrStderr()); err != nil {
		return nil, err
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("war failed")
		os.Exit(1)
	}
}
