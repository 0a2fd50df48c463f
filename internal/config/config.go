package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
	"holdemsim/internal/util"
	"holdemsim/pkg/playable/poker/bot"
	"holdemsim/pkg/playable/poker/texasholdem"
)

// Config provides configuration for the simulator
type Config struct {
	loaded     bool
	Players    int   `yaml:"players" envconfig:"players"`
	BuyIn      int   `yaml:"buyIn" envconfig:"buy_in"`
	SmallBlind int   `yaml:"smallBlind" envconfig:"small_blind"`
	BigBlind   int   `yaml:"bigBlind" envconfig:"big_blind"`
	Seed       int64 `yaml:"seed" envconfig:"seed"`
	// HumanSeat is the seat played from the terminal, or -1 to watch bots play
	HumanSeat         int `yaml:"humanSeat" envconfig:"human_seat"`
	MaxHands          int `yaml:"maxHands" envconfig:"max_hands"`
	MaxInvalidActions int `yaml:"maxInvalidActions" envconfig:"max_invalid_actions"`
	Log               struct {
		Level  string `yaml:"level" envconfig:"level"`
		Format string `yaml:"format" envconfig:"format"`
	} `yaml:"log"`
	Bot Bot `yaml:"bot"`
}

// Bot configures the bot policy
type Bot struct {
	PreFlopThreshold    int     `yaml:"preFlopThreshold" envconfig:"pre_flop_threshold"`
	PostFlopThreshold   int     `yaml:"postFlopThreshold" envconfig:"post_flop_threshold"`
	RaiseMeanFraction   float64 `yaml:"raiseMeanFraction" envconfig:"raise_mean_fraction"`
	RaiseStdDevFraction float64 `yaml:"raiseStdDevFraction" envconfig:"raise_std_dev_fraction"`
	// Table is keyed by the number of community cards shown
	// Each row is the probability of fold, call, raise and all in
	Table map[int]BotRows `yaml:"table" ignored:"true"`
}

// BotRows are the weak and strong probability rows for one street
type BotRows struct {
	Weak   []float64 `yaml:"weak"`
	Strong []float64 `yaml:"strong"`
}

var config Config

// DefaultConfig returns the configuration used when no file is present
func DefaultConfig() Config {
	policy := bot.DefaultPolicy()

	cfg := Config{
		Players:           6,
		BuyIn:             10000,
		SmallBlind:        100,
		BigBlind:          200,
		HumanSeat:         -1,
		MaxInvalidActions: 3,
		Bot: Bot{
			PreFlopThreshold:    policy.PreFlopThreshold,
			PostFlopThreshold:   policy.PostFlopThreshold,
			RaiseMeanFraction:   policy.RaiseMean,
			RaiseStdDevFraction: policy.RaiseStdDev,
			Table:               make(map[int]BotRows, len(policy.Table)),
		},
	}

	cfg.Log.Level = "info"
	cfg.Log.Format = "text"

	for shown, rows := range policy.Table {
		cfg.Bot.Table[shown] = BotRows{
			Weak:   rows.Weak[:],
			Strong: rows.Strong[:],
		}
	}

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file leaves the defaults in place
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("HOLDEM_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return fmt.Errorf("could not decode %s: %w", configFile, err)
		}
	}

	if err := envconfig.Process("holdem", &cfg); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}

// Validate returns an error if the configuration cannot run a game
func (c Config) Validate() error {
	if c.Players < 2 || c.Players > 10 {
		return fmt.Errorf("players must be between 2 and 10, got %d", c.Players)
	}

	if c.SmallBlind <= 0 {
		return errors.New("smallBlind must be > 0")
	}

	if c.BigBlind < c.SmallBlind {
		return errors.New("bigBlind must be >= smallBlind")
	}

	if c.BuyIn < c.BigBlind {
		return errors.New("buyIn must cover the big blind")
	}

	if c.HumanSeat < -1 || c.HumanSeat >= c.Players {
		return fmt.Errorf("humanSeat must be -1 or a seat below %d", c.Players)
	}

	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return err
	}

	_, err := c.BotPolicy()
	return err
}

// BotPolicy builds the bot policy
func (c Config) BotPolicy() (*bot.Policy, error) {
	table := make(map[int]bot.Rows, len(c.Bot.Table))
	for shown, rows := range c.Bot.Table {
		weak, err := toRow(rows.Weak)
		if err != nil {
			return nil, fmt.Errorf("bot table %d weak: %w", shown, err)
		}

		strong, err := toRow(rows.Strong)
		if err != nil {
			return nil, fmt.Errorf("bot table %d strong: %w", shown, err)
		}

		table[shown] = bot.Rows{Weak: weak, Strong: strong}
	}

	policy := &bot.Policy{
		PreFlopThreshold:  c.Bot.PreFlopThreshold,
		PostFlopThreshold: c.Bot.PostFlopThreshold,
		Table:             table,
		RaiseMean:         c.Bot.RaiseMeanFraction,
		RaiseStdDev:       c.Bot.RaiseStdDevFraction,
	}

	if err := policy.Validate(); err != nil {
		return nil, err
	}

	return policy, nil
}

// TableOptions returns the options for a table
func (c Config) TableOptions() texasholdem.Options {
	return texasholdem.Options{
		SmallBlind:        c.SmallBlind,
		BigBlind:          c.BigBlind,
		MaxInvalidActions: c.MaxInvalidActions,
	}
}

func toRow(probabilities []float64) (bot.Row, error) {
	var row bot.Row
	if len(probabilities) != len(row) {
		return row, fmt.Errorf("expected %d probabilities, got %d", len(row), len(probabilities))
	}

	copy(row[:], probabilities)
	return row, nil
}
