package game

import "fmt"

type MissionKind int

const (
	EliminateFaction MissionKind = iota
	OwnAtLeast
)

func (k MissionKind) String() string {
	switch k {
	case EliminateFaction:
		return "EliminateFaction"
	case OwnAtLeast:
		return "OwnAtLeast"
	default:
		return "Unknown"
	}
}

// Mission is a victory objective drawn once per session.
type Mission struct {
	ID        int         `json:"id"`
	Kind      MissionKind `json:"kind"`
	Target    Faction     `json:"target,omitempty"`    // EliminateFaction only
	Threshold int         `json:"threshold,omitempty"` // OwnAtLeast only
}

const OWN_AT_LEAST_THRESHOLD = 10

// missions is the fixed set a session draws from, indexed by ID.
var missions = []Mission{
	{ID: 0, Kind: EliminateFaction, Target: Blue},
	{ID: 1, Kind: OwnAtLeast, Threshold: OWN_AT_LEAST_THRESHOLD},
	{ID: 2, Kind: EliminateFaction, Target: Green},
}

// Missions returns a copy of the mission set.
func Missions() []Mission {
	cp := make([]Mission, len(missions))
	copy(cp, missions)
	return cp
}

func MissionByID(id int) (Mission, error) {
	if id < 0 || id >= len(missions) {
		return Mission{}, fmt.Errorf("%w: id %d", ErrUnknownMission, id)
	}
	return missions[id], nil
}

// DrawMission picks a mission uniformly at random.
func DrawMission(src Source) Mission {
	return missions[src.Intn(len(missions))]
}

func (m Mission) String() string {
	switch m.Kind {
	case EliminateFaction:
		return fmt.Sprintf("Destroy the %s army", m.Target)
	case OwnAtLeast:
		return fmt.Sprintf("Conquer %d territories", m.Threshold)
	default:
		return "Unknown mission"
	}
}

// Evaluate reports whether the mission holds against the current store. It
// only reads the store.
func Evaluate(store *TerritoryStore, mission Mission, player Faction) (bool, error) {
	switch mission.Kind {
	case EliminateFaction:
		return !store.AnyOwnedBy(mission.Target), nil
	case OwnAtLeast:
		return store.CountOwnedBy(player) >= mission.Threshold, nil
	default:
		return false, fmt.Errorf("%w: kind %d", ErrUnknownMission, int(mission.Kind))
	}
}
