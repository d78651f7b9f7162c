package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joeshaw/envdecode"
	"gopkg.in/yaml.v3"
)

var (
	ErrTooFewPlayers  = errors.New("players must be at least 2")
	ErrTooManyPlayers = errors.New("players must be at most 8")
)

// Config provides configuration for a simulation run and the web server
type Config struct {
	Players int `yaml:"players" env:"CANARY_PLAYERS"`
	// Seed fixes the random source. Zero means a fresh random seed.
	Seed           int64  `yaml:"seed" env:"CANARY_SEED"`
	RecordsPath    string `yaml:"recordsPath" env:"CANARY_RECORDS_PATH"`
	MaxTurnsFactor int    `yaml:"maxTurnsFactor" env:"CANARY_MAX_TURNS_FACTOR"`
	Addr           string `yaml:"addr" env:"CANARY_ADDR"`
	Log            struct {
		Level  string `yaml:"level" env:"CANARY_LOG_LEVEL"`
		Format string `yaml:"format" env:"CANARY_LOG_FORMAT"`
	} `yaml:"log"`
}

// Default returns the configuration used when nothing overrides it
func Default() Config {
	c := Config{
		Players:        4,
		RecordsPath:    "game_data.txt",
		MaxTurnsFactor: 100,
		Addr:           ":8000",
	}
	c.Log.Level = "info"
	c.Log.Format = "text"
	return c
}

// Load starts from the defaults, applies the YAML file named by
// CANARY_CONFIG_FILE if there is one, then applies environment variables.
func Load() (Config, error) {
	c := Default()

	if path := os.Getenv("CANARY_CONFIG_FILE"); path != "" {
		if err := loadFile(path, &c); err != nil {
			return Config{}, err
		}
	}

	if err := envdecode.Decode(&c); err != nil && err != envdecode.ErrNoTargetFieldsAreSet {
		return Config{}, fmt.Errorf("could not read environment: %w", err)
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

func loadFile(path string, c *Config) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(c); err != nil {
		return fmt.Errorf("could not parse %s: %w", path, err)
	}
	return nil
}

// Validate checks the values a game cannot be started without
func (c Config) Validate() error {
	if c.Players < 2 {
		return ErrTooFewPlayers
	}
	if c.Players > 8 {
		return ErrTooManyPlayers
	}
	if c.MaxTurnsFactor < 0 {
		return fmt.Errorf("max turns factor cannot be negative")
	}
	return nil
}
