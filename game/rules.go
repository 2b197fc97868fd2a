package game

type Rules interface {
	DieSides() int
	DetermineAttackOutcome(attackRoll, defenseRoll int) (attackerLosses, defenderLosses int)
}
