package game

import (
	"errors"
	"fmt"
)

// CombatOutcome reports one resolution for the display layer.
type CombatOutcome struct {
	Attacker      string  `json:"attacker"`
	Defender      string  `json:"defender"`
	AttackRoll    int     `json:"attackRoll"`
	DefenseRoll   int     `json:"defenseRoll"`
	AttackerDelta int     `json:"attackerDelta"` // Signed troop change
	DefenderDelta int     `json:"defenderDelta"` // Signed troop change
	Conquered     bool    `json:"conquered"`
	NewOwner      Faction `json:"newOwner"` // Defender owner after resolution
}

// AttackerWon reports whether the attack die beat the defense die.
func (o CombatOutcome) AttackerWon() bool {
	return o.AttackRoll > o.DefenseRoll
}

// Resolver resolves single attack rounds between two territories.
type Resolver struct {
	rules Rules
	src   Source
}

func NewResolver(rules Rules, src Source) *Resolver {
	if rules == nil {
		rules = NewStandardRules()
	}
	return &Resolver{
		rules: rules,
		src:   src,
	}
}

// Resolve runs one attack round and mutates both territories. Preconditions
// are checked before any die is rolled, so a rejected attack leaves both
// territories and the random source untouched.
func (r *Resolver) Resolve(attacker, defender *Territory) (CombatOutcome, error) {
	if attacker == nil || defender == nil {
		return CombatOutcome{}, fmt.Errorf("%w: missing territory", ErrInvalidAttack)
	}
	if attacker == defender {
		return CombatOutcome{}, fmt.Errorf("%w: %s cannot attack itself", ErrInvalidAttack, attacker.Name)
	}
	if attacker.Troops < MIN_ATTACK_TROOPS {
		return CombatOutcome{}, fmt.Errorf("%w: %s has %d troops, needs at least %d",
			ErrInvalidAttack, attacker.Name, attacker.Troops, MIN_ATTACK_TROOPS)
	}
	if r.src == nil {
		return CombatOutcome{}, fmt.Errorf("%w: resolver has no random source", ErrInvalidAttack)
	}

	sides := r.rules.DieSides()
	attackRoll := rollDie(r.src, sides)
	defenseRoll := rollDie(r.src, sides)

	attackerBefore, defenderBefore := attacker.Troops, defender.Troops
	outcome := CombatOutcome{
		Attacker:    attacker.Name,
		Defender:    defender.Name,
		AttackRoll:  attackRoll,
		DefenseRoll: defenseRoll,
	}

	attackerLosses, defenderLosses := r.rules.DetermineAttackOutcome(attackRoll, defenseRoll)

	defender.Troops -= defenderLosses
	if defender.Troops <= 0 {
		// Conquest: one troop moves in and the attacker pays for it
		defender.Owner = attacker.Owner
		defender.Troops = 1
		attacker.Troops--
		outcome.Conquered = true
	}

	attacker.Troops = max(attacker.Troops-attackerLosses, 1)

	outcome.AttackerDelta = attacker.Troops - attackerBefore
	outcome.DefenderDelta = defender.Troops - defenderBefore
	outcome.NewOwner = defender.Owner
	return outcome, nil
}

// Attack borrows the two territories from the store and resolves one round.
// A bad index is reported as an invalid attack that also matches
// ErrIndexOutOfRange.
func (r *Resolver) Attack(store *TerritoryStore, src, dst int) (CombatOutcome, error) {
	attacker, defender, err := store.Pair(src, dst)
	if err != nil {
		if errors.Is(err, ErrIndexOutOfRange) {
			return CombatOutcome{}, fmt.Errorf("%w: %w", ErrInvalidAttack, err)
		}
		return CombatOutcome{}, err
	}
	return r.Resolve(attacker, defender)
}

func rollDie(src Source, sides int) int {
	return src.Intn(sides) + 1
}
