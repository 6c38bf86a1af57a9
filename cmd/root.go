package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/they4kman/minegrid/game"
)

var gameConfig = game.NewConfig()
var configPath string
var logLevel = "warning"

var rootCmd = &cobra.Command{
	Use:   "minegrid [move...]",
	Short: "Play a scripted game of Minesweeper",
	Long: `minegrid applies a sequence of moves to a Minesweeper board and
prints the resulting grid.

Moves are written as action:row,col, where action is open (o) or flag (f)
	minegrid --seed 42 open:4,4 flag:0,1 open:0,0

Board parameters may also be read from a YAML file
	minegrid --config board.yaml open:0,0
`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return errors.Wrap(err, "log level")
		}
		logrus.SetLevel(level)

		config, err := resolveConfig(cmd.Flags())
		if err != nil {
			return err
		}

		moves, err := parseMoves(args)
		if err != nil {
			return err
		}

		logrus.WithField("config", config.Serialize()).Debug("resolved config")

		board := config.CreateBoard()
		return play(cmd.OutOrStdout(), board, moves)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// resolveConfig loads the config file, if any, and lays the explicitly set
// flags over it
func resolveConfig(flags *pflag.FlagSet) (game.Config, error) {
	if configPath == "" {
		return gameConfig, nil
	}

	in, err := os.ReadFile(configPath)
	if err != nil {
		return game.Config{}, errors.Wrap(err, "read config")
	}

	loaded, err := game.LoadConfig(in)
	if err != nil {
		return game.Config{}, err
	}
	config := *loaded

	if flags.Changed("difficulty") {
		config.Difficulty = gameConfig.Difficulty
	}
	if flags.Changed("height") {
		config.Height = gameConfig.Height
	}
	if flags.Changed("width") {
		config.Width = gameConfig.Width
	}
	if flags.Changed("mines") {
		config.NumMines = gameConfig.NumMines
	}
	if flags.Changed("seed") {
		config.Seed = gameConfig.Seed
	}

	return config, nil
}

func init() {
	// Define our root -help without a shorthand, as we'll use -h for --height
	// Ref: https://github.com/spf13/cobra/issues/291
	rootCmd.Flags().Bool("help", false, "Help for this command")

	rootCmd.Flags().Var(newDifficultyValue(game.Easy, &gameConfig.Difficulty), "difficulty", `Preset board, used unless a size is given.
easy: 9x9, 10 mines
normal: 16x16, 40 mines
hard: 16x30, 99 mines`)
	rootCmd.Flags().IntVarP(&gameConfig.Height, "height", "h", 0, "Height of game board, in cells")
	rootCmd.Flags().IntVarP(&gameConfig.Width, "width", "w", 0, "Width of game board, in cells")
	rootCmd.Flags().IntVarP(&gameConfig.NumMines, "mines", "m", 0, "Number of mines to place in the game board")
	rootCmd.Flags().Int64Var(&gameConfig.Seed, "seed", gameConfig.Seed, "Seed for the mine layout (defaults to the current time)")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a YAML board config")
	rootCmd.Flags().StringVar(&logLevel, "log-level", logLevel, "Log level (debug, info, warning, error)")
}
