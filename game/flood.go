package game

import (
	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"
)

// cascade opens the connected region of empty cells around origin along with
// its border of numbered cells. origin must already be uncovered.
//
// Cells are uncovered before they are queued, so each one is visited at most
// once and the walk ends once no empty cell is left pending.
func (board *Board) cascade(origin Coord) {
	var pending deque.Deque
	pending.PushBack(origin)

	opened := 0
	for pending.Len() > 0 {
		cell := pending.PopFront().(Coord)

		for _, neighbor := range board.neighbors(cell) {
			if board.player[neighbor.Row][neighbor.Col] != Unrevealed {
				continue
			}

			board.uncover(neighbor)
			opened++

			if board.answer[neighbor.Row][neighbor.Col] == Empty {
				pending.PushBack(neighbor)
			}
		}
	}

	log.WithFields(logrus.Fields{
		"origin": origin,
		"opened": opened,
	}).Debug("cascaded empty region")
}
