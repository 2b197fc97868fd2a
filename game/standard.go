package game

type StandardRules struct {
	Sides int
}

func NewStandardRules() *StandardRules {
	return &StandardRules{
		Sides: 6,
	}
}

func (sr *StandardRules) DieSides() int {
	return sr.Sides
}

// DetermineAttackOutcome compares one attack die against one defense die.
// The defender wins ties.
func (sr *StandardRules) DetermineAttackOutcome(attackRoll, defenseRoll int) (attackerLosses, defenderLosses int) {
	if attackRoll > defenseRoll {
		return 0, 1
	}
	return 1, 0
}
