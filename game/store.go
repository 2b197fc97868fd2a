package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// TerritoryStore is the fixed-length, index-addressed collection of
// territories for one session. Its length never changes after creation.
type TerritoryStore struct {
	territories []Territory
}

// NewTerritoryStore creates count neutral territories named by position, each
// with a troop count drawn uniformly from [1,10].
func NewTerritoryStore(count int, src Source) (*TerritoryStore, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: territory count must be positive, got %d", ErrInvalidStore, count)
	}
	if src == nil {
		return nil, fmt.Errorf("%w: random source is required", ErrInvalidStore)
	}

	territories := make([]Territory, count)
	for i := range territories {
		territories[i] = Territory{
			Name:   territoryName(i),
			Owner:  Neutral,
			Troops: MIN_INITIAL_TROOPS + src.Intn(MAX_INITIAL_TROOPS-MIN_INITIAL_TROOPS+1),
		}
	}
	return &TerritoryStore{territories: territories}, nil
}

// NewTerritoryStoreFrom builds a store around a copy of the given territories.
// Used to set up fixed maps.
func NewTerritoryStoreFrom(territories []Territory) (*TerritoryStore, error) {
	if len(territories) == 0 {
		return nil, fmt.Errorf("%w: at least one territory is required", ErrInvalidStore)
	}
	cp := make([]Territory, len(territories))
	copy(cp, territories)
	for i := range cp {
		if cp[i].Name == "" {
			cp[i].Name = territoryName(i)
		}
		if cp[i].Troops < 1 {
			return nil, fmt.Errorf("%w: %s has %d troops", ErrInvalidStore, cp[i].Name, cp[i].Troops)
		}
	}
	return &TerritoryStore{territories: cp}, nil
}

func (s *TerritoryStore) Len() int {
	return len(s.territories)
}

func (s *TerritoryStore) checkIndex(index int) error {
	if index < 0 || index >= len(s.territories) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, len(s.territories))
	}
	return nil
}

// Get returns a copy of the territory at index.
func (s *TerritoryStore) Get(index int) (Territory, error) {
	if err := s.checkIndex(index); err != nil {
		return Territory{}, err
	}
	return s.territories[index], nil
}

// At returns a mutable reference to the territory at index.
func (s *TerritoryStore) At(index int) (*Territory, error) {
	if err := s.checkIndex(index); err != nil {
		return nil, err
	}
	return &s.territories[index], nil
}

// Pair borrows two distinct territories mutably. The same index twice would
// alias one slot in both roles, so it is rejected as an invalid attack.
func (s *TerritoryStore) Pair(a, b int) (*Territory, *Territory, error) {
	if err := s.checkIndex(a); err != nil {
		return nil, nil, err
	}
	if err := s.checkIndex(b); err != nil {
		return nil, nil, err
	}
	if a == b {
		return nil, nil, fmt.Errorf("%w: territory %d cannot attack itself", ErrInvalidAttack, a)
	}
	return &s.territories[a], &s.territories[b], nil
}

// CountOwnedBy returns how many territories the faction owns.
func (s *TerritoryStore) CountOwnedBy(f Faction) int {
	count := 0
	for _, t := range s.territories {
		if t.Owner == f {
			count++
		}
	}
	return count
}

// AnyOwnedBy reports whether the faction owns at least one territory.
func (s *TerritoryStore) AnyOwnedBy(f Faction) bool {
	for _, t := range s.territories {
		if t.Owner == f {
			return true
		}
	}
	return false
}

// Snapshot returns a copy of every territory, in index order.
func (s *TerritoryStore) Snapshot() []Territory {
	cp := make([]Territory, len(s.territories))
	copy(cp, s.territories)
	return cp
}

// Deal assigns owners round-robin over a shuffled order of the territories,
// so each faction ends up with an equal share (give or take one). Troop
// counts are left alone.
func (s *TerritoryStore) Deal(factions []Faction, src Source) error {
	if len(factions) == 0 {
		return fmt.Errorf("%w: no factions to deal", ErrInvalidStore)
	}
	if src == nil {
		return fmt.Errorf("%w: random source is required", ErrInvalidStore)
	}

	order := make([]int, len(s.territories))
	for i := range order {
		order[i] = i
	}
	// Fisher-Yates
	for i := len(order) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		order[i], order[j] = order[j], order[i]
	}

	for n, id := range order {
		s.territories[id].Owner = factions[n%len(factions)]
	}
	return nil
}

// Hash fingerprints ownership and troop counts.
func (s *TerritoryStore) Hash() StateHash {
	hasher := fnv.New64a()

	for _, t := range s.territories {
		hasher.Write([]byte(t.Owner))
		hasher.Write([]byte{0})
		binary.Write(hasher, binary.LittleEndian, int64(t.Troops))
	}

	return StateHash(hasher.Sum64())
}
