// meta/meta.go
package meta

// MAX_TERRITORIES is the default map size.
const MAX_TERRITORIES = 42

// MAX_TURNS caps the attacks a simulated session may make.
const MAX_TURNS = 300

// PLAYER_FACTION is the faction controlled by the operator.
const PLAYER_FACTION = "RED"

// GO_ROUTINES defines the number of goroutines running simulated sessions.
const GO_ROUTINES = 8

// SIMULATED_GAMES is the default number of sessions per simulation run.
const SIMULATED_GAMES = 30
