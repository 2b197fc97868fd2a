package game

const (
	MIN_INITIAL_TROOPS = 1
	MAX_INITIAL_TROOPS = 10
	MIN_ATTACK_TROOPS  = 2 // An attacker keeps one troop behind after a loss
)

// Source supplies uniform random integers in [0, n). *rand.Rand from
// golang.org/x/exp/rand satisfies it; tests pass fixed sequences instead.
type Source interface {
	Intn(n int) int
}

type StateHash uint64
