package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"war/engine"

	"github.com/spf13/cobra"
)

// playCmd runs the interactive attack/check menu
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play an interactive session",
	RunE:  runPlayCmd,
}

func runPlayCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	session, err := engine.NewSession(cfg)
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	return play(session, cmd.InOrStdin(), cmd.OutOrStdout())
}

// play loops over the menu until the operator quits, the mission is
// accomplished or input runs out.
func play(session *engine.Session, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	readInt := func() (int, bool) {
		if !scanner.Scan() {
			return 0, false
		}
		n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil {
			return -1, true
		}
		return n, true
	}

	for {
		renderMap(out, session.Territories())
		renderMission(out, session.Mission())
		renderMenu(out)

		choice, ok := readInt()
		if !ok {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		switch choice {
		case 1:
			fmt.Fprint(out, "Source territory index: ")
			src, ok := readInt()
			if !ok {
				return scanner.Err()
			}
			fmt.Fprint(out, "Target territory index: ")
			dst, ok := readInt()
			if !ok {
				return scanner.Err()
			}

			outcome, err := session.Attack(src, dst)
			if err != nil {
				fmt.Fprintln(out, describeError(err))
				continue
			}
			renderOutcome(out, outcome)
		case 2:
			done, err := session.CheckMission()
			if err != nil {
				fmt.Fprintln(out, describeError(err))
				continue
			}
			if done {
				fmt.Fprintln(out, "Mission accomplished! You win!")
				return nil
			}
			fmt.Fprintln(out, "Mission not accomplished yet.")
		case 0:
			fmt.Fprintln(out, "Leaving the game...")
			return nil
		default:
			fmt.Fprintln(out, "Invalid option.")
		}
	}
}
