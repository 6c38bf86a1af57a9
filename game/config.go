package game

import (
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Difficulty Difficulty `yaml:"difficulty"`

	// Explicit dimensions take precedence over Difficulty when any is set
	Height   int `yaml:"height,omitempty"`
	Width    int `yaml:"width,omitempty"`
	NumMines int `yaml:"mines,omitempty"`

	Seed int64 `yaml:"seed"`
}

func NewConfig() Config {
	return Config{
		Difficulty: Easy,
		Seed:       time.Now().UnixNano(),
	}
}

func (config Config) isCustom() bool {
	return config.Height != 0 || config.Width != 0 || config.NumMines != 0
}

func (config Config) CreateBoard() *Board {
	if config.isCustom() {
		return NewCustomBoard(config.Height, config.Width, config.NumMines, config.Seed)
	}
	return NewBoard(config.Difficulty, config.Seed)
}

func (config Config) Serialize() string {
	out, err := yaml.Marshal(config)
	if err != nil {
		panic(err)
	}

	return string(out)
}

// LoadConfig reads a YAML config on top of the NewConfig defaults
func LoadConfig(in []byte) (*Config, error) {
	config := NewConfig()
	if err := yaml.UnmarshalStrict(in, &config); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	return &config, nil
}
