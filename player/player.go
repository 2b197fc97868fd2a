package player

import (
	"war/game"
)

// Attack is a source/destination pair of territory indices.
type Attack struct {
	From int
	To   int
}

// Player picks attacks for one faction at random. It drives simulated
// sessions in place of an operator typing indices.
type Player struct {
	Faction game.Faction
	src     game.Source
}

// NewPlayer creates a new Player instance.
func NewPlayer(faction game.Faction, src game.Source) *Player {
	return &Player{
		Faction: faction,
		src:     src,
	}
}

// TakeTurn decides on an attack. It reports false when the faction has no
// territory able to attack or nothing left to attack.
func (p *Player) TakeTurn(store *game.TerritoryStore) (Attack, bool) {
	possibleAttacks := p.generatePossibleAttacks(store.Snapshot())
	if len(possibleAttacks) == 0 {
		return Attack{}, false
	}

	return possibleAttacks[p.src.Intn(len(possibleAttacks))], true
}

// generatePossibleAttacks pairs every owned territory with enough troops
// against every territory of another faction.
func (p *Player) generatePossibleAttacks(territories []game.Territory) []Attack {
	var attacks []Attack

	for from, attacker := range territories {
		if attacker.Owner != p.Faction || attacker.Troops < game.MIN_ATTACK_TROOPS {
			continue
		}
		for to, defender := range territories {
			if defender.Owner != p.Faction {
				attacks = append(attacks, Attack{From: from, To: to})
			}
		}
	}
	return attacks
}
