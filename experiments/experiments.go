package experiments

import (
	"fmt"
	"slices"
	"sync"
	"war/config"
	"war/engine"
	"war/experiments/metrics"
	"war/game"
	"war/player"
	"war/random"

	"github.com/rs/zerolog/log"
)

// driverSalt separates the driver's choices from the session's dice.
const driverSalt = 0x9e3779b97f4a7c15

// DefaultFactions returns the player followed by the two factions the
// missions target.
func DefaultFactions(p game.Faction) []game.Faction {
	factions := []game.Faction{p}
	for _, f := range []game.Faction{game.Blue, game.Green} {
		if !slices.Contains(factions, f) {
			factions = append(factions, f)
		}
	}
	return factions
}

// Run plays games seeded sessions, each driven by a random attacker for
// cfg.Player, spread over cfg.Goroutines workers. Game i uses seed
// cfg.Seed+i, so a run is reproducible whenever cfg.Seed is set.
func Run(cfg *config.Config, games int) ([]metrics.SessionRecord, error) {
	if games <= 0 {
		return nil, fmt.Errorf("games must be positive, got %d", games)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	base := *cfg
	if len(base.Factions) == 0 {
		base.Factions = DefaultFactions(base.Player)
		log.Info().Msgf("no factions configured, dealing %v", base.Factions)
	}
	if base.Seed == 0 {
		seed, err := random.NewSeed()
		if err != nil {
			return nil, err
		}
		base.Seed = seed
	}

	log.Info().Msgf("starting simulation of %d games with %d goroutines...", games, base.Goroutines)

	task := make(chan int, games)
	for i := 0; i < games; i++ {
		task <- i
	}
	close(task)

	records := make([]metrics.SessionRecord, games)
	errs := make([]error, games)

	var wg sync.WaitGroup
	for i := 0; i < base.Goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for n := range task {
				cfg := base
				cfg.Seed = base.Seed + uint64(n)
				metric, err := runGame(&cfg)
				records[n] = metrics.SessionRecord{ID: n + 1, SessionMetric: metric}
				errs[n] = err
			}
		}()
	}
	wg.Wait()

	for n, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("game %d: %w", n+1, err)
		}
	}

	completed := 0
	for _, r := range records {
		if r.Completed {
			completed++
		}
	}
	log.Info().Msgf("completed simulation: %d of %d missions accomplished", completed, games)

	return records, nil
}

// Store writes the records under <root>/simulate/<timestamp> and returns the
// directory.
func Store(records []metrics.SessionRecord, root string) (string, error) {
	writer, err := metrics.NewWriter(root, "simulate")
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteSessionRecords(records); err != nil {
		return "", fmt.Errorf("failed to write session records: %w", err)
	}
	log.Info().Msgf("stored session records in %s", writer.Dir())
	return writer.Dir(), nil
}

// runGame attacks until the mission holds, the player runs out of legal
// attacks or the turn cap is reached.
func runGame(cfg *config.Config) (metrics.SessionMetric, error) {
	session, err := engine.NewSession(cfg, engine.WithMetrics(metrics.NewCollector()))
	if err != nil {
		return metrics.SessionMetric{}, err
	}
	driver := player.NewPlayer(cfg.Player, random.NewSource(cfg.Seed^driverSalt))

	stalled := false
	completed, err := session.CheckMission()
	for err == nil && !completed && session.Turns() < cfg.MaxTurns {
		attack, ok := driver.TakeTurn(session.Store())
		if !ok {
			stalled = true
			break
		}
		if _, err = session.Attack(attack.From, attack.To); err != nil {
			break
		}
		completed, err = session.CheckMission()
	}
	if err != nil {
		return metrics.SessionMetric{}, err
	}

	log.Debug().
		Str("session", session.ID()).
		Bool("completed", completed).
		Bool("stalled", stalled).
		Int("turns", session.Turns()).
		Msg("game over")

	return metrics.SessionMetric{
		SessionID:     session.ID(),
		Seed:          session.Seed(),
		Mission:       session.Mission().ID,
		Player:        string(session.Player()),
		Completed:     completed,
		Stalled:       stalled,
		Turns:         session.Turns(),
		OwnedAtFinish: session.Store().CountOwnedBy(session.Player()),
		CombatMetric:  session.Metrics(),
	}, nil
}
