package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"snake-classic/logging"
)

// Frontend names the loop driver to run
type Frontend string

const (
	Window   Frontend = "window"
	Terminal Frontend = "term"
)

// Config holds process settings. Game rules are compile-time constants in
// game/types and are not configurable here.
type Config struct {
	Frontend  Frontend
	LogLevel  string
	LogFormat logging.Format
	Mute      bool
	// Seed for food placement; 0 picks a time-based seed
	Seed uint64
}

// Load reads .env (if present), then environment variables, then flags.
// Flags win over the environment. -h prints usage to stderr and returns
// flag.ErrHelp.
func Load(args []string) (Config, error) {
	_ = godotenv.Load()
	return parse(args, os.Getenv, os.Stderr)
}

func parse(args []string, getenv func(string) string, usage io.Writer) (Config, error) {
	env := func(k, def string) string {
		if v := getenv(k); v != "" {
			return v
		}
		return def
	}

	mute, err := strconv.ParseBool(env("SNAKE_MUTE", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("SNAKE_MUTE: %w", err)
	}
	seed, err := strconv.ParseUint(env("SNAKE_SEED", "0"), 10, 64)
	if err != nil {
		return Config{}, fmt.Errorf("SNAKE_SEED: %w", err)
	}

	fs := flag.NewFlagSet("snake", flag.ContinueOnError)
	fs.SetOutput(usage)
	ui := fs.String("ui", env("SNAKE_UI", string(Window)), "frontend: window or term")
	level := fs.String("log-level", env("LOG_LEVEL", "info"), "log level (debug logs every tick)")
	format := fs.String("log-format", env("LOG_FORMAT", string(logging.FormatConsole)), "log format: console or json")
	fs.BoolVar(&mute, "mute", mute, "disable sound effects")
	fs.Uint64Var(&seed, "seed", seed, "food placement seed, 0 for random")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Config{
		Frontend:  Frontend(*ui),
		LogLevel:  *level,
		LogFormat: logging.Format(*format),
		Mute:      mute,
		Seed:      seed,
	}
	switch cfg.Frontend {
	case Window, Terminal:
	default:
		return Config{}, fmt.Errorf("unknown frontend %q", cfg.Frontend)
	}
	switch cfg.LogFormat {
	case logging.FormatConsole, logging.FormatJSON:
	default:
		return Config{}, fmt.Errorf("unknown log format %q", cfg.LogFormat)
	}
	return cfg, nil
}
