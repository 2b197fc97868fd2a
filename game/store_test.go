package game

import (
	"testing"
	"war/random"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, territories ...Territory) *TerritoryStore {
	t.Helper()
	store, err := NewTerritoryStoreFrom(territories)
	require.NoError(t, err)
	return store
}

func TestNewTerritoryStore(t *testing.T) {
	t.Run("naming territories by position with neutral owners", func(t *testing.T) {
		store, err := NewTerritoryStore(42, random.NewSource(7))

		require.NoError(t, err)
		require.Equal(t, 42, store.Len(), "Store should hold the requested count")
		for i, territory := range store.Snapshot() {
			require.Equal(t, territoryName(i), territory.Name, "Territory should be named by position")
			require.Equal(t, Neutral, territory.Owner, "Territory should start neutral")
			require.GreaterOrEqual(t, territory.Troops, 1, "Troops should be at least 1")
			require.LessOrEqual(t, territory.Troops, 10, "Troops should be at most 10")
		}
		first, _ := store.Get(0)
		require.Equal(t, "Territory 1", first.Name)
	})

	t.Run("drawing troops from the given source", func(t *testing.T) {
		store, err := NewTerritoryStore(3, random.NewFixedRolls(1, 10, 4))

		require.NoError(t, err)
		troops := []int{}
		for _, territory := range store.Snapshot() {
			troops = append(troops, territory.Troops)
		}
		require.Equal(t, []int{1, 10, 4}, troops, "Troops should follow the source")
	})

	t.Run("same seed yields the same map", func(t *testing.T) {
		a, err := NewTerritoryStore(20, random.NewSource(99))
		require.NoError(t, err)
		b, err := NewTerritoryStore(20, random.NewSource(99))
		require.NoError(t, err)

		require.Equal(t, a.Snapshot(), b.Snapshot(), "Seeded stores should match")
		require.Equal(t, a.Hash(), b.Hash(), "Seeded stores should hash equally")
	})

	t.Run("rejecting a non-positive count", func(t *testing.T) {
		_, err := NewTerritoryStore(0, random.NewSource(1))
		require.ErrorIs(t, err, ErrInvalidStore)
	})

	t.Run("rejecting a missing source", func(t *testing.T) {
		_, err := NewTerritoryStore(3, nil)
		require.ErrorIs(t, err, ErrInvalidStore)
	})
}

func TestNewTerritoryStoreFrom(t *testing.T) {
	t.Run("filling in missing names without touching the input", func(t *testing.T) {
		input := []Territory{{Owner: Red, Troops: 2}, {Name: "Home", Owner: Blue, Troops: 1}}

		store, err := NewTerritoryStoreFrom(input)

		require.NoError(t, err)
		first, _ := store.Get(0)
		second, _ := store.Get(1)
		require.Equal(t, "Territory 1", first.Name)
		require.Equal(t, "Home", second.Name)
		require.Empty(t, input[0].Name, "Input slice should not be modified")
	})

	t.Run("rejecting empty territories", func(t *testing.T) {
		_, err := NewTerritoryStoreFrom([]Territory{{Owner: Red, Troops: 0}})
		require.ErrorIs(t, err, ErrInvalidStore)
	})
}

func TestTerritoryStoreGet(t *testing.T) {
	store := newTestStore(t, Territory{Owner: Red, Troops: 3}, Territory{Owner: Blue, Troops: 1})

	t.Run("returning a copy", func(t *testing.T) {
		territory, err := store.Get(0)
		require.NoError(t, err)

		territory.Troops = 50

		again, _ := store.Get(0)
		require.Equal(t, 3, again.Troops, "Get should not expose the stored territory")
	})

	t.Run("failing out of range", func(t *testing.T) {
		_, err := store.Get(2)
		require.ErrorIs(t, err, ErrIndexOutOfRange)

		_, err = store.Get(-1)
		require.ErrorIs(t, err, ErrIndexOutOfRange)

		_, err = store.At(2)
		require.ErrorIs(t, err, ErrIndexOutOfRange)
	})

	t.Run("mutating through At", func(t *testing.T) {
		territory, err := store.At(1)
		require.NoError(t, err)

		territory.Troops = 4

		again, _ := store.Get(1)
		require.Equal(t, 4, again.Troops)
	})
}

func TestTerritoryStorePair(t *testing.T) {
	store := newTestStore(t,
		Territory{Owner: Red, Troops: 3},
		Territory{Owner: Blue, Troops: 1},
	)

	t.Run("borrowing two distinct slots", func(t *testing.T) {
		a, b, err := store.Pair(0, 1)

		require.NoError(t, err)
		require.NotSame(t, a, b, "Borrowed slots should not alias")
		require.Equal(t, Red, a.Owner)
		require.Equal(t, Blue, b.Owner)
	})

	t.Run("rejecting the same index twice", func(t *testing.T) {
		_, _, err := store.Pair(1, 1)
		require.ErrorIs(t, err, ErrInvalidAttack)
	})

	t.Run("rejecting an out of range index", func(t *testing.T) {
		_, _, err := store.Pair(0, 5)
		require.ErrorIs(t, err, ErrIndexOutOfRange)

		_, _, err = store.Pair(5, 5)
		require.ErrorIs(t, err, ErrIndexOutOfRange, "Range should be checked before equality")
	})
}

func TestTerritoryStoreOwnership(t *testing.T) {
	store := newTestStore(t,
		Territory{Owner: Red, Troops: 1},
		Territory{Owner: Red, Troops: 1},
		Territory{Owner: Blue, Troops: 1},
	)

	t.Run("counting owned territories", func(t *testing.T) {
		require.Equal(t, 2, store.CountOwnedBy(Red))
		require.Equal(t, 1, store.CountOwnedBy(Blue))
		require.Equal(t, 0, store.CountOwnedBy(Green))
	})

	t.Run("comparing factions case-sensitively", func(t *testing.T) {
		require.Equal(t, 0, store.CountOwnedBy("red"))
		require.False(t, store.AnyOwnedBy("blue"))
		require.True(t, store.AnyOwnedBy(Blue))
	})

	t.Run("queries do not mutate", func(t *testing.T) {
		before := store.Hash()
		store.CountOwnedBy(Red)
		store.AnyOwnedBy(Green)
		store.Snapshot()
		require.Equal(t, before, store.Hash())
	})
}

func TestTerritoryStoreDeal(t *testing.T) {
	t.Run("splitting territories evenly", func(t *testing.T) {
		store, err := NewTerritoryStore(42, random.NewSource(3))
		require.NoError(t, err)
		troops := store.Snapshot()

		err = store.Deal([]Faction{Red, Blue, Green}, random.NewSource(4))

		require.NoError(t, err)
		require.Equal(t, 14, store.CountOwnedBy(Red))
		require.Equal(t, 14, store.CountOwnedBy(Blue))
		require.Equal(t, 14, store.CountOwnedBy(Green))
		require.False(t, store.AnyOwnedBy(Neutral), "No territory should stay neutral")
		for i, territory := range store.Snapshot() {
			require.Equal(t, troops[i].Troops, territory.Troops, "Dealing should not change troops")
		}
	})

	t.Run("rejecting an empty faction list", func(t *testing.T) {
		store := newTestStore(t, Territory{Owner: Neutral, Troops: 1})
		err := store.Deal(nil, random.NewSource(1))
		require.ErrorIs(t, err, ErrInvalidStore)
	})
}

func TestTerritoryStoreHash(t *testing.T) {
	t.Run("changing with ownership", func(t *testing.T) {
		store := newTestStore(t, Territory{Owner: Red, Troops: 2}, Territory{Owner: Blue, Troops: 2})
		before := store.Hash()

		territory, _ := store.At(1)
		territory.Owner = Red

		require.NotEqual(t, before, store.Hash())
	})

	t.Run("changing with troops", func(t *testing.T) {
		store := newTestStore(t, Territory{Owner: Red, Troops: 2})
		before := store.Hash()

		territory, _ := store.At(0)
		territory.Troops++

		require.NotEqual(t, before, store.Hash())
	})
}
