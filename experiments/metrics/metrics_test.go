package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"war/game"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("tallying outcomes", func(t *testing.T) {
		c := NewCollector()
		c.Start()

		c.AddAttack(game.CombatOutcome{AttackRoll: 6, DefenseRoll: 2, DefenderDelta: -1})
		c.AddAttack(game.CombatOutcome{AttackRoll: 6, DefenseRoll: 1, AttackerDelta: -1, Conquered: true})
		c.AddAttack(game.CombatOutcome{AttackRoll: 3, DefenseRoll: 3, AttackerDelta: -1})
		c.AddRejected()

		got := c.Complete()
		require.Equal(t, 3, got.Attacks)
		require.Equal(t, 2, got.AttackerWins)
		require.Equal(t, 1, got.Conquests)
		require.Equal(t, 1, got.Rejected)
		require.Equal(t, 2, got.AttackerLost)
		require.Equal(t, 2, got.DefenderLost)
		require.False(t, got.StartTime.IsZero(), "Start time should be recorded")
	})

	t.Run("counting concurrently", func(t *testing.T) {
		c := NewCollector()
		c.Start()

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					c.AddAttack(game.CombatOutcome{AttackRoll: 1, DefenseRoll: 1, AttackerDelta: -1})
				}
			}()
		}
		wg.Wait()

		require.Equal(t, 800, c.Complete().Attacks)
	})

	t.Run("dummy collector records nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start()
		c.AddAttack(game.CombatOutcome{AttackRoll: 6, DefenseRoll: 1})
		c.AddRejected()

		require.Equal(t, CombatMetric{}, c.Complete())
	})
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "simulate")
	require.NoError(t, err)

	records := []SessionRecord{
		{ID: 1, SessionMetric: SessionMetric{
			SessionID: "abc", Seed: 9, Mission: 1, Player: "RED", Completed: true, Turns: 40, OwnedAtFinish: 10,
			CombatMetric: CombatMetric{Attacks: 40, AttackerWins: 22, Conquests: 9},
		}},
		{ID: 2, SessionMetric: SessionMetric{SessionID: "def", Seed: 10, Stalled: true}},
	}

	require.NoError(t, w.WriteSessionRecords(records))

	f, err := os.Open(filepath.Join(w.Dir(), "sessions.csv"))
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3, "Header plus one row per record")
	require.Equal(t, "id", rows[0][0])
	require.Equal(t, []string{"1", "abc", "9", "1", "RED", "true", "false", "40", "10"}, rows[1][:9])
	require.Equal(t, "true", rows[2][6], "Second session should be stalled")
}
