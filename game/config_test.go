package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDifficulty(t *testing.T) {
	config, err := LoadConfig([]byte("difficulty: hard\nseed: 42\n"))
	require.NoError(t, err)

	assert.Equal(t, Hard, config.Difficulty)
	assert.Equal(t, int64(42), config.Seed)

	board := config.CreateBoard()
	assert.Equal(t, 16, board.Height())
	assert.Equal(t, 30, board.Width())
	assert.Equal(t, 99, board.NumMines())
	assert.Equal(t, int64(42), board.Seed())
}

func TestLoadConfigCustomSize(t *testing.T) {
	config, err := LoadConfig([]byte("difficulty: hard\nheight: 4\nwidth: 5\nmines: 3\nseed: 1\n"))
	require.NoError(t, err)

	board := config.CreateBoard()
	assert.Equal(t, 4, board.Height())
	assert.Equal(t, 5, board.Width())
	assert.Equal(t, 3, board.NumMines())
}

func TestLoadConfigInvalidCustomSizeUsesEasy(t *testing.T) {
	config, err := LoadConfig([]byte("height: 2\nwidth: 2\nmines: 4\n"))
	require.NoError(t, err)

	board := config.CreateBoard()
	assert.Equal(t, 9, board.Height())
	assert.Equal(t, 10, board.NumMines())
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig([]byte("difficulty: extreme\n"))
	assert.ErrorIs(t, err, ErrInvalidDifficulty)

	_, err = LoadConfig([]byte("colour: blue\n"))
	assert.Error(t, err)
}

func TestConfigSerialize(t *testing.T) {
	config := Config{Difficulty: Normal, Seed: 9}
	assert.Equal(t, "difficulty: normal\nseed: 9\n", config.Serialize())

	loaded, err := LoadConfig([]byte(config.Serialize()))
	require.NoError(t, err)
	assert.Equal(t, config, *loaded)
}

func TestParseDifficulty(t *testing.T) {
	tests := map[string]Difficulty{
		"easy":    Easy,
		"Normal":  Normal,
		" HARD  ": Hard,
	}
	for value, expected := range tests {
		difficulty, err := ParseDifficulty(value)
		require.NoError(t, err, value)
		assert.Equal(t, expected, difficulty, value)
	}

	_, err := ParseDifficulty("impossible")
	assert.ErrorIs(t, err, ErrInvalidDifficulty)
}

func TestCellState(t *testing.T) {
	assert.Equal(t, 9, int(Mine))
	assert.Equal(t, 10, int(Unrevealed))
	assert.Equal(t, 11, int(Flag))
	assert.Len(t, CellStates, 12)

	assert.True(t, Empty.IsRevealed())
	assert.True(t, Number8.IsRevealed())
	assert.True(t, Mine.IsRevealed())
	assert.False(t, Unrevealed.IsRevealed())
	assert.False(t, Flag.IsRevealed())

	assert.Equal(t, 3, Number3.NumMines())
	assert.Equal(t, -1, Mine.NumMines())
	assert.Equal(t, -1, Flag.NumMines())

	assert.Equal(t, "4", Number4.String())
	assert.Equal(t, "lost", Lost.String())
}
