package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
	"holdemsim/internal/config"
	"holdemsim/internal/rng"
	"holdemsim/pkg/playable"
	"holdemsim/pkg/playable/poker/texasholdem"
)

var (
	seed    = flag.Int64("seed", -1, "random seed, 0 for a non-reproducible game (overrides the config file)")
	human   = flag.Int("human", -2, "seat to play from the terminal, -1 to watch bots (overrides the config file)")
	hands   = flag.Int("hands", -1, "maximum number of hands, 0 for no limit (overrides the config file)")
	players = flag.Int("players", 0, "number of players (overrides the config file)")
)

// seat is a player sitting down with a buy-in
type seat struct {
	id    int
	stake int
}

func (s seat) GetPlayerID() int {
	return s.id
}

func (s seat) GetTableStake() int {
	return s.stake
}

func main() {
	flag.Parse()

	cfg := config.Instance()
	applyFlags(&cfg)
	setupLogger(cfg)

	if err := cfg.Validate(); err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		pterm.DisableStyling()
	}

	policy, err := cfg.BotPolicy()
	if err != nil {
		logrus.WithError(err).Fatal("invalid bot policy")
	}

	seats := make([]playable.Player, cfg.Players)
	for i := range seats {
		seats[i] = seat{id: i, stake: cfg.BuyIn}
	}

	table, err := texasholdem.NewTable(logrus.StandardLogger(), seats, cfg.TableOptions(), rng.New(cfg.Seed))
	if err != nil {
		logrus.WithError(err).Fatal("could not create table")
	}

	table.SetPolicy(policy)

	d := newDisplay(os.Stdout, cfg.HumanSeat)
	table.SetObserver(d)

	var prompt *prompter
	if cfg.HumanSeat >= 0 {
		prompt = newPrompter(os.Stdin, d)
		if err := table.SetHuman(cfg.HumanSeat, prompt); err != nil {
			logrus.WithError(err).Fatal("could not seat human")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = table.Run(ctx, cfg.MaxHands, func(result *texasholdem.HandResult) bool {
		d.handResult(result)
		d.standings(table)

		if prompt == nil {
			return true
		}

		if _, seated := result.Stacks[cfg.HumanSeat]; !seated || result.Stacks[cfg.HumanSeat] == 0 {
			pterm.Warning.Println("You are out of chips")
			return false
		}

		return prompt.confirm("Deal another hand?")
	})
	if err != nil {
		logrus.WithError(err).Fatal("game aborted")
	}

	if details, over := table.GetEndOfGameDetails(); over {
		d.gameOver(details)
	}
}

func applyFlags(cfg *config.Config) {
	if *seed >= 0 {
		cfg.Seed = *seed
	}

	if *human >= -1 {
		cfg.HumanSeat = *human
	}

	if *hands >= 0 {
		cfg.MaxHands = *hands
	}

	if *players > 0 {
		cfg.Players = *players
	}
}

func setupLogger(cfg config.Config) {
	if lvl := cfg.Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" || strings.ToLower(cfg.Log.Format) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
