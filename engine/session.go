package engine

import (
	"fmt"
	"war/config"
	"war/experiments/metrics"
	"war/game"
	"war/random"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Session owns one territory store and the mission drawn for it. It is not
// safe for concurrent use; run one session per goroutine.
type Session struct {
	id       string
	seed     uint64
	store    *game.TerritoryStore
	resolver *game.Resolver
	mission  game.Mission
	player   game.Faction
	metrics  metrics.Collector
	turns    int
}

// NewSession creates the map, deals factions when configured and draws the
// mission. Everything random comes from one source seeded by cfg.Seed, or by
// a fresh seed when cfg.Seed is zero.
func NewSession(cfg *config.Config, options ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid session config: %w", err)
	}

	s := &settings{
		rules:   game.NewStandardRules(),
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}

	if s.src == nil {
		s.seed = cfg.Seed
		if s.seed == 0 {
			seed, err := random.NewSeed()
			if err != nil {
				return nil, err
			}
			s.seed = seed
		}
		s.src = random.NewSource(s.seed)
	}

	store, err := game.NewTerritoryStore(cfg.Territories, s.src)
	if err != nil {
		return nil, err
	}
	if len(cfg.Factions) > 0 {
		if err := store.Deal(cfg.Factions, s.src); err != nil {
			return nil, err
		}
	}

	var mission game.Mission
	switch {
	case s.mission != nil:
		mission = *s.mission
	case cfg.Mission != nil:
		mission, err = game.MissionByID(*cfg.Mission)
		if err != nil {
			return nil, err
		}
	default:
		mission = game.DrawMission(s.src)
	}

	session := &Session{
		id:       uuid.NewString(),
		seed:     s.seed,
		store:    store,
		resolver: game.NewResolver(s.rules, s.src),
		mission:  mission,
		player:   cfg.Player,
		metrics:  s.metrics,
	}
	session.metrics.Start()

	log.Info().
		Str("session", session.id).
		Uint64("seed", session.seed).
		Int("territories", store.Len()).
		Int("mission", mission.ID).
		Str("player", string(session.player)).
		Msg("session started")

	return session, nil
}

// Attack resolves one round from src against dst. Rejected attacks leave the
// store untouched.
func (s *Session) Attack(src, dst int) (game.CombatOutcome, error) {
	outcome, err := s.resolver.Attack(s.store, src, dst)
	if err != nil {
		s.metrics.AddRejected()
		log.Warn().Err(err).Str("session", s.id).Int("from", src).Int("to", dst).Msg("attack rejected")
		return game.CombatOutcome{}, err
	}

	s.turns++
	s.metrics.AddAttack(outcome)
	log.Debug().
		Str("session", s.id).
		Int("turn", s.turns).
		Str("attacker", outcome.Attacker).
		Str("defender", outcome.Defender).
		Int("attack_roll", outcome.AttackRoll).
		Int("defense_roll", outcome.DefenseRoll).
		Bool("conquered", outcome.Conquered).
		Msg("attack resolved")

	return outcome, nil
}

// CheckMission evaluates the session's mission against the current map.
func (s *Session) CheckMission() (bool, error) {
	return game.Evaluate(s.store, s.mission, s.player)
}

func (s *Session) Territories() []game.Territory {
	return s.store.Snapshot()
}

func (s *Session) Territory(index int) (game.Territory, error) {
	return s.store.Get(index)
}

func (s *Session) Store() *game.TerritoryStore {
	return s.store
}

func (s *Session) Mission() game.Mission {
	return s.mission
}

func (s *Session) Player() game.Faction {
	return s.player
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Seed() uint64 {
	return s.seed
}

// Turns counts resolved attacks.
func (s *Session) Turns() int {
	return s.turns
}

func (s *Session) Metrics() metrics.CombatMetric {
	return s.metrics.Complete()
}
