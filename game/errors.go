package game

import (
	"github.com/pkg/errors"
)

var (
	ErrOutOfRange        = errors.New("cell out of range")
	ErrGameOver          = errors.New("game is over")
	ErrInvalidDifficulty = errors.New("invalid difficulty")
)
