package config

import (
	"testing"
	"time"

	"blackjack/internal/util"
	"blackjack/pkg/blackjack"
	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	clear1 := util.SetEnv("BLACKJACK_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := util.SetEnv("BLACKJACK_STARTING_CHIPS", "500")
	defer clear2()

	a := assert.New(t)
	cfg, err := Load()
	a.NoError(err)
	a.Equal(3, cfg.Players)
	a.Equal(500, cfg.StartingChips)
	a.Equal(int64(42), cfg.Seed)
	a.Equal(250*time.Millisecond, cfg.PaceDelay)
	a.Equal("debug", cfg.Log.Level)
	a.Equal("json", cfg.Log.Format)

	// untouched by the file
	a.Equal(8, cfg.MaxPlayers)
	a.Equal(5, cfg.MaxPromptAttempts)
	a.NoError(cfg.Validate())
}

func TestLoad_defaults(t *testing.T) {
	a := assert.New(t)

	cfg, err := Load()
	a.NoError(err)
	a.Equal(DefaultConfig(), cfg)
	a.Equal(0, cfg.Players)
	a.Equal(100, cfg.StartingChips)
	a.Equal(time.Second, cfg.PaceDelay)
	a.NoError(cfg.Validate())
}

func TestLoad_missingFile(t *testing.T) {
	clear1 := util.SetEnv("BLACKJACK_CONFIG_FILE", "testdata/missing.yaml")
	defer clear1()

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_badEnv(t *testing.T) {
	clear1 := util.SetEnv("BLACKJACK_PACE_DELAY", "soon")
	defer clear1()

	_, err := Load()
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	a := assert.New(t)

	cfg := DefaultConfig()
	cfg.Players = 9
	a.EqualError(cfg.Validate(), "expected 1-8 players, got 9")

	cfg = DefaultConfig()
	cfg.Players = -1
	a.Equal(blackjack.PlayerCountError{Min: 1, Max: 8, Got: -1}, cfg.Validate())

	cfg = DefaultConfig()
	cfg.StartingChips = 0
	a.EqualError(cfg.Validate(), "startingChips must be at least 1")

	cfg = DefaultConfig()
	cfg.MaxPlayers = 0
	a.EqualError(cfg.Validate(), "maxPlayers must be at least 1")

	cfg = DefaultConfig()
	cfg.MaxRounds = -1
	a.EqualError(cfg.Validate(), "maxRounds cannot be negative")

	cfg = DefaultConfig()
	cfg.PaceDelay = -time.Second
	a.EqualError(cfg.Validate(), "paceDelay cannot be negative")
}
