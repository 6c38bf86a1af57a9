package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/they4kman/minegrid/game"
)

type action int

const (
	openAction action = iota
	flagAction
)

var actions = map[string]action{
	"open": openAction,
	"o":    openAction,
	"flag": flagAction,
	"f":    flagAction,
}

type move struct {
	action   action
	row, col int
}

var errInvalidMove = errors.New("invalid move")

// parseMove reads a move of the form action:row,col
func parseMove(arg string) (move, error) {
	name, coords, found := strings.Cut(arg, ":")
	if !found {
		return move{}, errors.Wrapf(errInvalidMove, "%q: expected action:row,col", arg)
	}

	act, isValid := actions[strings.ToLower(name)]
	if !isValid {
		return move{}, errors.Wrapf(errInvalidMove, "%q: unknown action %q", arg, name)
	}

	rowStr, colStr, found := strings.Cut(coords, ",")
	if !found {
		return move{}, errors.Wrapf(errInvalidMove, "%q: expected row,col", arg)
	}

	row, err := strconv.Atoi(strings.TrimSpace(rowStr))
	if err != nil {
		return move{}, errors.Wrapf(errInvalidMove, "%q: row: %v", arg, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(colStr))
	if err != nil {
		return move{}, errors.Wrapf(errInvalidMove, "%q: col: %v", arg, err)
	}

	return move{action: act, row: row, col: col}, nil
}

func parseMoves(args []string) ([]move, error) {
	moves := make([]move, 0, len(args))
	for _, arg := range args {
		m, err := parseMove(arg)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// play applies moves until the script ends or the game is decided, then
// writes the board and its counters to out
func play(out io.Writer, board *game.Board, moves []move) error {
	for i, m := range moves {
		if board.State() != game.Playing {
			logrus.WithFields(logrus.Fields{
				"skipped": len(moves) - i,
				"state":   board.State(),
			}).Warn("game ended before all moves were played")
			break
		}

		var err error
		switch m.action {
		case openAction:
			_, err = board.Open(m.row, m.col)
		case flagAction:
			err = board.Flag(m.row, m.col)
		}
		if err != nil {
			return errors.WithMessagef(err, "move %d", i+1)
		}

		logrus.WithFields(logrus.Fields{
			"move":  i + 1,
			"row":   m.row,
			"col":   m.col,
			"state": board.State(),
		}).Debug("applied move")
	}

	wrongFlags := make([]string, 0)
	for _, cell := range board.WrongFlags() {
		wrongFlags = append(wrongFlags, cell.String())
	}

	fmt.Fprint(out, board)
	fmt.Fprintf(out, "state: %s\n", board.State())
	fmt.Fprintf(out, "moves: %d\n", board.Moves())
	fmt.Fprintf(out, "flags remaining: %d\n", board.FlagsRemaining())
	fmt.Fprintf(out, "wrong flags: %s\n", strings.Join(wrongFlags, " "))
	fmt.Fprintf(out, "seed: %d\n", board.Seed())

	return nil
}
