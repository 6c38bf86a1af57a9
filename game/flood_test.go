package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// expectedRegion walks the answer grid from origin through empty cells and
// returns every cell a cascade from origin should reveal
func expectedRegion(board *Board, origin Coord) map[Coord]bool {
	region := map[Coord]bool{origin: true}
	pending := []Coord{origin}

	for len(pending) > 0 {
		cell := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		if board.answer[cell.Row][cell.Col] != Empty {
			continue
		}
		for _, neighbor := range board.neighbors(cell) {
			if !region[neighbor] {
				region[neighbor] = true
				pending = append(pending, neighbor)
			}
		}
	}
	return region
}

func TestCascadeStopsAtWall(t *testing.T) {
	board := newTestBoard(5, 5, Coord{0, 2}, Coord{1, 2}, Coord{2, 2}, Coord{3, 2}, Coord{4, 2})

	require.NoError(t, board.Flag(4, 0))
	state, err := board.Open(0, 0)
	require.NoError(t, err)
	assert.Equal(t, Playing, state)

	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			switch {
			case row == 4 && col == 0:
				assert.Equal(t, Flag, board.player[row][col])
			case col < 2:
				assert.Equal(t, board.answer[row][col], board.player[row][col], "(%d, %d)", row, col)
			default:
				assert.Equal(t, Unrevealed, board.player[row][col], "(%d, %d)", row, col)
			}
		}
	}

	assert.Equal(t, []Coord{{4, 0}}, board.WrongFlags())
	assert.Equal(t, 2, board.Moves())
}

func TestCascadeRevealsExactRegion(t *testing.T) {
	for seed := int64(0); seed < 30; seed++ {
		board := NewBoard(Hard, seed)

		origin, found := Coord{}, false
		for row := 0; row < board.height && !found; row++ {
			for col := 0; col < board.width && !found; col++ {
				if board.answer[row][col] == Empty {
					origin, found = Coord{row, col}, true
				}
			}
		}
		if !found {
			continue
		}

		region := expectedRegion(board, origin)
		_, err := board.Open(origin.Row, origin.Col)
		require.NoError(t, err)
		require.NotEqual(t, Lost, board.State())

		for row := 0; row < board.height; row++ {
			for col := 0; col < board.width; col++ {
				cell := Coord{row, col}
				if region[cell] {
					require.Equal(t, board.answer[row][col], board.player[row][col], "seed %d cell %s", seed, cell)
				} else {
					require.Equal(t, Unrevealed, board.player[row][col], "seed %d cell %s", seed, cell)
				}
			}
		}

		assert.Equal(t, board.NumCells()-len(region), board.hiddenCells, "seed %d", seed)
		assert.Equal(t, 1, board.Moves())
	}
}

func TestCascadeLargeOpenBoard(t *testing.T) {
	board := newTestBoard(200, 200, Coord{199, 199})

	state, err := board.Open(0, 0)
	require.NoError(t, err)

	assert.Equal(t, Won, state)
	assert.Equal(t, 1, board.hiddenCells)
	assert.Equal(t, Unrevealed, board.player[199][199])
	assert.Equal(t, Number1, board.player[198][198])
}
