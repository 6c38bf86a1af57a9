package game

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Flag toggles the flag on an unrevealed cell. Revealed cells are left alone
// and cost no move.
func (board *Board) Flag(row, col int) error {
	if err := board.checkBounds(row, col); err != nil {
		return errors.WithMessage(err, "flag")
	}
	if !board.canPlay() {
		return errors.WithMessage(ErrGameOver, "flag")
	}

	cell := Coord{row, col}

	switch board.player[row][col] {
	case Unrevealed:
		board.player[row][col] = Flag
		board.moves++
		board.numFlags++

		if board.answer[row][col] != Mine {
			board.wrongFlags.Add(cell)
		}
	case Flag:
		board.player[row][col] = Unrevealed
		board.moves++
		board.numFlags--
		board.wrongFlags.Remove(cell)
	}

	return nil
}

// Open performs a player's click on a cell and returns the resulting state.
//
// An unrevealed cell is revealed, cascading through empty regions. A revealed
// number whose flagged neighbours match it opens its remaining neighbours
// (chording). Opening a flag does nothing. Only clicks which change the board
// count as moves.
func (board *Board) Open(row, col int) (BoardState, error) {
	if err := board.checkBounds(row, col); err != nil {
		return board.state, errors.WithMessage(err, "open")
	}
	if !board.canPlay() {
		return board.state, errors.WithMessage(ErrGameOver, "open")
	}

	board.moves++
	cell := Coord{row, col}

	switch board.player[row][col] {
	case Unrevealed:
		board.reveal(cell)
	case Flag:
		board.moves--
	default:
		if matched, opened := board.chord(cell); matched && opened == 0 {
			board.moves--
		}
	}

	if board.state == Lost {
		return board.state, nil
	}

	if board.hiddenCells == board.numMines {
		board.win()
	}
	return board.state, nil
}

// reveal opens a single unrevealed cell, losing the game on a mine and
// cascading on an empty cell
func (board *Board) reveal(cell Coord) {
	value := board.answer[cell.Row][cell.Col]
	if value == Mine {
		board.lose(cell)
		return
	}

	board.uncover(cell)

	if value == Empty {
		board.cascade(cell)
	}
}

// uncover copies the answer of a non-mine cell onto the player grid
func (board *Board) uncover(cell Coord) {
	board.player[cell.Row][cell.Col] = board.answer[cell.Row][cell.Col]
	board.hiddenCells--
}

// chord opens every unrevealed neighbour of a revealed number, if exactly that
// many neighbours are flagged. It reports whether the flags matched and how
// many neighbours it opened.
func (board *Board) chord(cell Coord) (bool, int) {
	numMines := board.player[cell.Row][cell.Col].NumMines()
	neighbors := board.neighbors(cell)

	numFlaggedNeighbors := 0
	for _, neighbor := range neighbors {
		if board.player[neighbor.Row][neighbor.Col] == Flag {
			numFlaggedNeighbors++
		}
	}

	if numFlaggedNeighbors != numMines {
		return false, 0
	}

	opened := 0
	for _, neighbor := range neighbors {
		// Earlier neighbours may have cascaded into this one already
		if board.player[neighbor.Row][neighbor.Col] != Unrevealed {
			continue
		}

		opened++
		board.reveal(neighbor)

		if board.state == Lost {
			break
		}
	}

	log.WithFields(logrus.Fields{
		"cell":   cell,
		"opened": opened,
	}).Debug("chorded cell")

	return true, opened
}
