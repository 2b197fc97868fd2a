package metrics

import (
	"sync/atomic"
	"time"
	"war/game"
)

// CombatMetric summarizes the attacks made during one session.
type CombatMetric struct {
	StartTime    time.Time
	Duration     time.Duration
	Attacks      int
	AttackerWins int
	Conquests    int
	Rejected     int
	AttackerLost int // Troops lost by attackers, conquest cost included
	DefenderLost int // Troops lost by defenders before any conquest reset
}

// SessionMetric describes how a simulated session ended.
type SessionMetric struct {
	SessionID     string
	Seed          uint64
	Mission       int
	Player        string
	Completed     bool // Mission satisfied
	Stalled       bool // No legal attack was left
	Turns         int
	OwnedAtFinish int
	CombatMetric
}

type Collector interface {
	Start()
	AddAttack(outcome game.CombatOutcome)
	AddRejected()
	Complete() CombatMetric
}

type collector struct {
	startTime    time.Time
	attacks      atomic.Int32
	attackerWins atomic.Int32
	conquests    atomic.Int32
	rejected     atomic.Int32
	attackerLost atomic.Int32
	defenderLost atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
}

func (m *collector) AddAttack(outcome game.CombatOutcome) {
	m.attacks.Add(1)
	if outcome.AttackerWon() {
		m.attackerWins.Add(1)
		m.defenderLost.Add(1)
	}
	if outcome.Conquered {
		m.conquests.Add(1)
	}
	if outcome.AttackerDelta < 0 {
		m.attackerLost.Add(int32(-outcome.AttackerDelta))
	}
}

func (m *collector) AddRejected() {
	m.rejected.Add(1)
}

func (m *collector) Complete() CombatMetric {
	return CombatMetric{
		StartTime:    m.startTime,
		Duration:     time.Since(m.startTime),
		Attacks:      int(m.attacks.Load()),
		AttackerWins: int(m.attackerWins.Load()),
		Conquests:    int(m.conquests.Load()),
		Rejected:     int(m.rejected.Load()),
		AttackerLost: int(m.attackerLost.Load()),
		DefenderLost: int(m.defenderLost.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                       {}
func (m *dummyCollector) AddAttack(game.CombatOutcome) {}
func (m *dummyCollector) AddRejected()                 {}
func (m *dummyCollector) Complete() CombatMetric       { return CombatMetric{} }
