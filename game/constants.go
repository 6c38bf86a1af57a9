package game

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// CellState is the value of a single grid position. The answer grid only ever
// holds Empty..Mine; the player grid holds Empty..Number8, Unrevealed and Flag
// (and every value, including Mine, once the game is lost).
type CellState int
type BoardState int
type Difficulty int

const (
	Empty CellState = iota
	Number1
	Number2
	Number3
	Number4
	Number5
	Number6
	Number7
	Number8
	Mine
	Unrevealed
	Flag
)

var CellStates = []CellState{
	Empty,
	Number1,
	Number2,
	Number3,
	Number4,
	Number5,
	Number6,
	Number7,
	Number8,
	Mine,
	Unrevealed,
	Flag,
}

// IsRevealed reports whether the state is visible to the player (a count or a
// mine), as opposed to Unrevealed or Flag.
func (state CellState) IsRevealed() bool {
	return state >= Empty && state <= Mine
}

// NumMines returns the neighbouring mine count of a revealed, non-mine cell,
// or -1 for any other state.
func (state CellState) NumMines() int {
	if state >= Empty && state <= Number8 {
		return int(state)
	}
	return -1
}

func (state CellState) String() string {
	switch {
	case state == Empty:
		return "."
	case state >= Number1 && state <= Number8:
		return fmt.Sprint(int(state))
	case state == Mine:
		return "*"
	case state == Unrevealed:
		return "#"
	case state == Flag:
		return "F"
	default:
		return "?"
	}
}

const (
	Playing BoardState = iota
	Won
	Lost
)

func (state BoardState) String() string {
	switch state {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return fmt.Sprintf("BoardState(%d)", int(state))
	}
}

const (
	Easy Difficulty = iota
	Normal
	Hard
)

var difficulties = map[string]Difficulty{
	"easy":   Easy,
	"normal": Normal,
	"hard":   Hard,
}

// Dimensions returns the height, width and number of mines of the preset
func (difficulty Difficulty) Dimensions() (height, width, numMines int) {
	switch difficulty {
	case Normal:
		return 16, 16, 40
	case Hard:
		return 16, 30, 99
	default:
		return 9, 9, 10
	}
}

func (difficulty Difficulty) String() string {
	for name, d := range difficulties {
		if d == difficulty {
			return name
		}
	}
	return fmt.Sprintf("Difficulty(%d)", int(difficulty))
}

func ParseDifficulty(value string) (Difficulty, error) {
	if difficulty, isValid := difficulties[strings.ToLower(strings.TrimSpace(value))]; isValid {
		return difficulty, nil
	}
	return Easy, errors.Wrapf(ErrInvalidDifficulty, "parse %q", value)
}

// UnmarshalYAML reads a difficulty from its name
func (difficulty *Difficulty) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}

	parsed, err := ParseDifficulty(name)
	if err != nil {
		return err
	}
	*difficulty = parsed
	return nil
}

func (difficulty Difficulty) MarshalYAML() (interface{}, error) {
	return difficulty.String(), nil
}
