package engine

import (
	"war/experiments/metrics"
	"war/game"
)

type Option func(s *settings)

type settings struct {
	src     game.Source
	seed    uint64
	rules   game.Rules
	mission *game.Mission
	metrics metrics.Collector
}

// WithSource replaces the seeded generator. The seed is only reported back
// through Session.Seed.
func WithSource(src game.Source, seed uint64) Option {
	return func(s *settings) {
		if src != nil {
			s.src = src
			s.seed = seed
		}
	}
}

func WithRules(rules game.Rules) Option {
	return func(s *settings) {
		if rules != nil {
			s.rules = rules
		}
	}
}

// WithMission skips the mission draw.
func WithMission(mission game.Mission) Option {
	return func(s *settings) {
		s.mission = &mission
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(s *settings) {
		if collector != nil {
			s.metrics = collector
		}
	}
}
