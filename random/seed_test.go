package random

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSource(t *testing.T) {
	t.Run("same seed replays the same rolls", func(t *testing.T) {
		a, b := NewSource(42), NewSource(42)
		for i := 0; i < 100; i++ {
			require.Equal(t, a.Intn(6), b.Intn(6), "Roll %d should match", i)
		}
	})

	t.Run("rolls stay in range", func(t *testing.T) {
		src := NewSource(1)
		for i := 0; i < 1000; i++ {
			v := src.Intn(6)
			require.GreaterOrEqual(t, v, 0)
			require.Less(t, v, 6)
		}
	})
}

func TestNewSeed(t *testing.T) {
	_, err := NewSeed()
	require.NoError(t, err)
}

func TestFixed(t *testing.T) {
	t.Run("replaying die rolls", func(t *testing.T) {
		src := NewFixedRolls(6, 1, 3)

		require.Equal(t, 5, src.Intn(6))
		require.Equal(t, 0, src.Intn(6))
		require.Equal(t, 2, src.Intn(6))
		require.Equal(t, 3, src.Used())
	})

	t.Run("panics when exhausted", func(t *testing.T) {
		src := NewFixedRolls(1)
		src.Intn(6)

		require.Panics(t, func() { src.Intn(6) }, "Should panic when no rolls remain")
	})

	t.Run("panics on a roll outside the die", func(t *testing.T) {
		src := NewFixedRolls(7)

		require.Panics(t, func() { src.Intn(6) }, "Should panic when a roll exceeds the die")
	})
}
