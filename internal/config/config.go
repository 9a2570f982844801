package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"blackjack/internal/util"
	"blackjack/pkg/blackjack"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// DefaultFile is the configuration file read when BLACKJACK_CONFIG_FILE is not set
const DefaultFile = "config.yaml"

// Config provides configuration for a blackjack session
type Config struct {
	Players           int           `yaml:"players" envconfig:"players"`
	MaxPlayers        int           `yaml:"maxPlayers" envconfig:"max_players"`
	StartingChips     int           `yaml:"startingChips" envconfig:"starting_chips"`
	Seed              int64         `yaml:"seed" envconfig:"seed"`
	MaxRounds         int           `yaml:"maxRounds" envconfig:"max_rounds"`
	PaceDelay         time.Duration `yaml:"paceDelay" envconfig:"pace_delay"`
	MaxPromptAttempts int           `yaml:"maxPromptAttempts" envconfig:"max_prompt_attempts"`
	Log               struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		File   string `yaml:"file"`
	}
}

// DefaultConfig returns the configuration used when nothing is set
func DefaultConfig() Config {
	cfg := Config{
		MaxPlayers:        8,
		StartingChips:     100,
		PaceDelay:         time.Second,
		MaxPromptAttempts: 5,
	}
	cfg.Log.Level = "warn"
	cfg.Log.Format = "text"

	return cfg
}

// Load will load the configuration
// Defaults are overridden by the config file, which is overridden by BLACKJACK_* environment variables.
// A missing file is only an error if it was named explicitly.
func Load() (Config, error) {
	cfg := DefaultConfig()

	configFile := util.Getenv("BLACKJACK_CONFIG_FILE", DefaultFile)
	file, err := os.Open(configFile)
	switch {
	case err == nil:
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("could not decode %s: %w", configFile, err)
		}
	case errors.Is(err, os.ErrNotExist) && configFile == DefaultFile:
	default:
		return Config{}, err
	}

	if err := envconfig.Process("blackjack", &cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the configuration for values a session cannot start with
func (c Config) Validate() error {
	if c.MaxPlayers <= 0 {
		return errors.New("maxPlayers must be at least 1")
	}

	if c.Players < 0 || c.Players > c.MaxPlayers {
		return blackjack.PlayerCountError{Min: 1, Max: c.MaxPlayers, Got: c.Players}
	}

	if c.StartingChips <= 0 {
		return errors.New("startingChips must be at least 1")
	}

	if c.MaxRounds < 0 {
		return errors.New("maxRounds cannot be negative")
	}

	if c.PaceDelay < 0 {
		return errors.New("paceDelay cannot be negative")
	}

	return nil
}
