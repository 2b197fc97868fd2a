package game

import "fmt"

// Faction labels the side owning a territory. Comparison is exact and
// case-sensitive.
type Faction string

const (
	Neutral Faction = "NEUTRAL" // Owner of every territory at creation
	Red     Faction = "RED"
	Blue    Faction = "BLUE"
	Green   Faction = "GREEN"
)

// Territory is one ownable map cell.
type Territory struct {
	Name   string  `json:"name"`
	Owner  Faction `json:"owner"`
	Troops int     `json:"troops"` // Never below 1
}

func territoryName(index int) string {
	return fmt.Sprintf("Territory %d", index+1)
}
