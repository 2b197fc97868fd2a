package main

import (
	"errors"
	"fmt"
	"io"
	"war/game"
)

func renderMap(out io.Writer, territories []game.Territory) {
	fmt.Fprintln(out, "Territory map:")
	fmt.Fprintln(out, "Idx  Name                 Owner      Troops")
	for i, t := range territories {
		fmt.Fprintf(out, "%3d  %-20s %-10s %6d\n", i, t.Name, t.Owner, t.Troops)
	}
}

func renderMission(out io.Writer, m game.Mission) {
	fmt.Fprintf(out, "Mission (id=%d): %s\n", m.ID, m)
}

func renderMenu(out io.Writer) {
	fmt.Fprintln(out, "Menu:")
	fmt.Fprintln(out, "1 - Attack")
	fmt.Fprintln(out, "2 - Check mission")
	fmt.Fprintln(out, "0 - Quit")
	fmt.Fprint(out, "Choice: ")
}

func renderOutcome(out io.Writer, o game.CombatOutcome) {
	fmt.Fprintf(out, "Attack: %s vs %s\n", o.Attacker, o.Defender)
	fmt.Fprintf(out, "Rolls: attack=%d defense=%d\n", o.AttackRoll, o.DefenseRoll)
	if o.AttackerWon() {
		fmt.Fprintf(out, "%s loses 1 troop\n", o.Defender)
	} else {
		fmt.Fprintf(out, "%s loses 1 troop\n", o.Attacker)
	}
	if o.Conquered {
		fmt.Fprintf(out, "%s conquered by %s\n", o.Defender, o.NewOwner)
	}
}

// describeError turns engine errors into operator messages.
func describeError(err error) string {
	switch {
	case errors.Is(err, game.ErrIndexOutOfRange):
		return "Invalid indices."
	case errors.Is(err, game.ErrInvalidAttack):
		return fmt.Sprintf("Attack not allowed: the source must differ from the target and hold at least %d troops.", game.MIN_ATTACK_TROOPS)
	case errors.Is(err, game.ErrUnknownMission):
		return "Unknown mission."
	default:
		return err.Error()
	}
}
