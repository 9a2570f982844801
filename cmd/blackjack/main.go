package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"blackjack/internal/config"
	"blackjack/internal/console"
	"blackjack/internal/rng"
	"blackjack/pkg/blackjack"
	"github.com/alecthomas/kong"
	"github.com/coder/quartz"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// CLI flags override the configuration file when set
type CLI struct {
	Config  string        `short:"f" help:"Path to a YAML config file" type:"path"`
	Players int           `short:"p" help:"Number of players at the table (asked at startup when not set)"`
	Chips   int           `short:"c" help:"Starting chips for each player"`
	Seed    int64         `help:"Seed for the shuffle, to replay a session"`
	Rounds  int           `help:"Stop after this many rounds"`
	Pace    time.Duration `help:"Pause between table announcements"`
	NoPace  bool          `help:"Do not pause between table announcements"`
	Debug   bool          `help:"Enable debug logging"`
}

func (c *CLI) apply(cfg *config.Config) {
	if c.Players != 0 {
		cfg.Players = c.Players
	}

	if c.Chips != 0 {
		cfg.StartingChips = c.Chips
	}

	if c.Seed != 0 {
		cfg.Seed = c.Seed
	}

	if c.Rounds != 0 {
		cfg.MaxRounds = c.Rounds
	}

	if c.Pace != 0 {
		cfg.PaceDelay = c.Pace
	}

	if c.NoPace {
		cfg.PaceDelay = 0
	}

	if c.Debug {
		cfg.Log.Level = "debug"
	}
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("blackjack"),
		kong.Description("Blackjack for the terminal: every player against the dealer"),
		kong.UsageOnError(),
	)

	if cli.Config != "" {
		_ = os.Setenv("BLACKJACK_CONFIG_FILE", cli.Config)
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("could not load configuration")
	}

	cli.apply(&cfg)
	if err := cfg.Validate(); err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}

	closeLog := setupLogger(cfg)
	defer closeLog()

	if err := run(cfg); err != nil {
		logrus.WithError(err).Error("game stopped")
		closeLog()
		ctx.Exit(1)
	}
}

func run(cfg config.Config) error {
	interactive := term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))

	delay := cfg.PaceDelay
	if !interactive {
		delay = 0
	}

	logger := logrus.StandardLogger()
	con := console.New(logger, os.Stdin, os.Stdout, console.NewPacer(quartz.NewReal(), delay), console.Options{
		MaxAttempts: cfg.MaxPromptAttempts,
		Styled:      interactive,
	})

	con.Title(" ♠ ♥ Blackjack ♦ ♣ ")

	players := cfg.Players
	if players == 0 {
		n, err := con.ReadPlayerCount(cfg.MaxPlayers)
		if err != nil {
			return fmt.Errorf("could not read the number of players: %w", err)
		}

		players = n
	}

	opts := blackjack.DefaultOptions()
	opts.MaxRounds = cfg.MaxRounds

	session := blackjack.NewSession(logger, blackjack.NewPlayerList(players, cfg.StartingChips), rng.New(cfg.Seed), con, opts)
	logger.WithFields(logrus.Fields{
		"session":       session.ID,
		"players":       players,
		"startingChips": cfg.StartingChips,
		"seeded":        cfg.Seed != 0,
	}).Info("starting session")

	rounds, err := session.Run()

	con.Println("")
	con.Println(fmt.Sprintf("Game over after %d rounds.", rounds))
	con.Standings(session.Players())

	// running out of input ends the game like walking away from the table
	if errors.Is(err, io.EOF) {
		return nil
	}

	return err
}

// setupLogger configures logrus and returns a function that closes the log file, if any
func setupLogger(cfg config.Config) func() {
	if lvl := cfg.Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(cfg.Log.Format) == "json" || strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	logrus.SetOutput(os.Stderr)
	if cfg.Log.File == "" {
		return func() {}
	}

	file, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		logrus.WithError(err).Fatal("could not open log file")
	}

	logrus.SetOutput(file)
	return func() {
		logrus.SetOutput(os.Stderr)
		_ = file.Close()
	}
}
