package game

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/they4kman/minegrid/util/collections"
)

// Coord identifies a single cell of the board
type Coord struct {
	Row, Col int
}

func (coord Coord) String() string {
	return fmt.Sprintf("(%d, %d)", coord.Row, coord.Col)
}

// Board owns the hidden mine layout and the player's view of it. It is not
// safe for concurrent use; callers must serialize Flag and Open.
type Board struct {
	height, width int // in number of cells
	numMines      int
	seed          int64

	answer [][]CellState
	player [][]CellState

	state       BoardState
	moves       int
	numFlags    int
	hiddenCells int // cells still Unrevealed or Flag
	wrongFlags  collections.Set[Coord]
	losingCell  *Coord
}

// NewBoard creates a board from one of the preset difficulties
func NewBoard(difficulty Difficulty, seed int64) *Board {
	height, width, numMines := difficulty.Dimensions()
	return createBoard(height, width, numMines, seed)
}

// NewCustomBoard creates a board of the given size. Any invalid combination
// yields an Easy board instead of an error.
func NewCustomBoard(height, width, numMines int, seed int64) *Board {
	if height <= 0 || width <= 0 || numMines <= 0 || numMines >= height*width {
		log.WithFields(logrus.Fields{
			"height":   height,
			"width":    width,
			"numMines": numMines,
		}).Debug("invalid board configuration, using easy preset")

		height, width, numMines = Easy.Dimensions()
	}
	return createBoard(height, width, numMines, seed)
}

func (board *Board) Height() int {
	return board.height
}

func (board *Board) Width() int {
	return board.width
}

func (board *Board) NumCells() int {
	return board.height * board.width
}

func (board *Board) NumMines() int {
	return board.numMines
}

// Seed returns the seed the mine layout was generated from
func (board *Board) Seed() int64 {
	return board.seed
}

func (board *Board) Moves() int {
	return board.moves
}

func (board *Board) FlagsRemaining() int {
	if board.numFlags >= board.numMines {
		return 0
	}
	return board.numMines - board.numFlags
}

func (board *Board) State() BoardState {
	return board.state
}

// PlayerGrid returns a copy of the player-visible grid, indexed [row][col]
func (board *Board) PlayerGrid() [][]CellState {
	grid := make([][]CellState, board.height)
	for row := range board.player {
		grid[row] = make([]CellState, board.width)
		copy(grid[row], board.player[row])
	}
	return grid
}

// Cell returns the player-visible state of a single cell
func (board *Board) Cell(row, col int) (CellState, error) {
	if err := board.checkBounds(row, col); err != nil {
		return Unrevealed, err
	}
	return board.player[row][col], nil
}

// WrongFlags returns the flagged cells that do not hold a mine, in row-major
// order. After a loss it keeps the flags that were wrong when the mine went
// off.
func (board *Board) WrongFlags() []Coord {
	return board.wrongFlags.Slice(func(a, b Coord) bool {
		if a.Row != b.Row {
			return a.Row < b.Row
		}
		return a.Col < b.Col
	})
}

// LosingCell returns the mine which ended the game, if any
func (board *Board) LosingCell() (Coord, bool) {
	if board.losingCell == nil {
		return Coord{}, false
	}
	return *board.losingCell, true
}

func (board *Board) String() string {
	var out strings.Builder

	out.WriteString("    ")
	for col := 0; col < board.width; col++ {
		fmt.Fprintf(&out, "%3d", col)
	}
	out.WriteString("\n")

	for row, cells := range board.player {
		fmt.Fprintf(&out, "%3d ", row)
		for _, state := range cells {
			fmt.Fprintf(&out, "%3s", state)
		}
		out.WriteString("\n")
	}

	return out.String()
}

func (board *Board) canPlay() bool {
	return board.state == Playing
}

func (board *Board) checkBounds(row, col int) error {
	if row < 0 || col < 0 || row >= board.height || col >= board.width {
		return errors.Wrapf(ErrOutOfRange, "(%d, %d) on %dx%d board", row, col, board.height, board.width)
	}
	return nil
}

// neighbors returns the up to 8 cells surrounding cell, clipped to the board,
// in row-major order
func (board *Board) neighbors(cell Coord) []Coord {
	rowMin, rowMax := cell.Row-1, cell.Row+1
	colMin, colMax := cell.Col-1, cell.Col+1
	if rowMin < 0 {
		rowMin = 0
	}
	if rowMax > board.height-1 {
		rowMax = board.height - 1
	}
	if colMin < 0 {
		colMin = 0
	}
	if colMax > board.width-1 {
		colMax = board.width - 1
	}

	neighbors := make([]Coord, 0, 8)
	for row := rowMin; row <= rowMax; row++ {
		for col := colMin; col <= colMax; col++ {
			if row != cell.Row || col != cell.Col {
				neighbors = append(neighbors, Coord{row, col})
			}
		}
	}
	return neighbors
}

func (board *Board) win() {
	board.state = Won

	log.WithFields(logrus.Fields{
		"moves": board.moves,
		"seed":  board.seed,
	}).Info("board cleared")
}

// lose reveals the whole answer grid onto the player grid
func (board *Board) lose(cell Coord) {
	board.state = Lost
	board.losingCell = &cell

	for row := range board.answer {
		copy(board.player[row], board.answer[row])
	}
	board.hiddenCells = 0

	log.WithFields(logrus.Fields{
		"cell":  cell,
		"moves": board.moves,
		"seed":  board.seed,
	}).Info("mine opened")
}

func newEmptyBoard(height, width, numMines int) *Board {
	board := Board{
		state:       Playing,
		height:      height,
		width:       width,
		numMines:    numMines,
		answer:      make([][]CellState, height),
		player:      make([][]CellState, height),
		hiddenCells: height * width,
		wrongFlags:  make(collections.Set[Coord]),
	}

	for row := 0; row < height; row++ {
		board.answer[row] = make([]CellState, width)
		board.player[row] = make([]CellState, width)

		for col := 0; col < width; col++ {
			board.answer[row][col] = Empty
			board.player[row][col] = Unrevealed
		}
	}

	return &board
}

func createBoard(height, width, numMines int, seed int64) *Board {
	board := newEmptyBoard(height, width, numMines)
	board.seed = seed

	// Store cell indexes, to shuffle and take the first numMines as mines
	cellIndexes := make([]int, height*width)
	for cellIdx := range cellIndexes {
		cellIndexes[cellIdx] = cellIdx
	}

	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(cellIndexes), func(i, j int) {
		cellIndexes[i], cellIndexes[j] = cellIndexes[j], cellIndexes[i]
	})

	mines := make([]Coord, numMines)
	for i := 0; i < numMines; i++ {
		cellIdx := cellIndexes[i]
		mines[i] = Coord{cellIdx / width, cellIdx % width}
	}
	board.fillMines(mines)

	log.WithFields(logrus.Fields{
		"height":   height,
		"width":    width,
		"numMines": numMines,
		"seed":     seed,
	}).Debug("created board")

	return board
}

// fillMines counts each mine into its neighbours, then marks the mines
// themselves, discarding whatever count accumulated on them.
func (board *Board) fillMines(mines []Coord) {
	for _, mine := range mines {
		for _, neighbor := range board.neighbors(mine) {
			board.answer[neighbor.Row][neighbor.Col]++
		}
	}

	for _, mine := range mines {
		board.answer[mine.Row][mine.Col] = Mine
	}
}
