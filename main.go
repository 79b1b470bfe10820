package main

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"snake-classic/audio"
	"snake-classic/config"
	"snake-classic/game"
	"snake-classic/game/types"
	"snake-classic/logging"
	"snake-classic/ui"
	"snake-classic/ui/term"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	// The terminal frontend owns stdout/stderr while it runs; hold log lines
	// until the screen is released.
	var held bytes.Buffer
	var out io.Writer = os.Stderr
	if cfg.Frontend == config.Terminal {
		out = &held
	}
	logger := logging.New(out, cfg.LogLevel, cfg.LogFormat)
	log.Logger = logger

	sounds := audio.NewPlayer(cfg.Mute)
	if err := sounds.Init(); err != nil {
		logger.Warn().Err(err).Msg("audio unavailable, running silent")
	}
	defer sounds.Close()

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	g := game.NewGame(game.Options{
		Rand:   game.NewRand(seed),
		Logger: &logger,
		Sounds: sounds,
	})

	switch cfg.Frontend {
	case config.Terminal:
		err = runTerminal(g, logger)
		_, _ = held.WriteTo(os.Stderr)
		logger = logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
		log.Logger = logger
	default:
		err = ui.NewRenderer(logger).Run(g)
	}
	if err != nil {
		sounds.Close()
		logger.Fatal().Err(err).Str("ui", string(cfg.Frontend)).Msg("frontend failed")
	}
}

func runTerminal(g *game.Game, logger zerolog.Logger) error {
	screen, err := term.NewScreen()
	if err != nil {
		return err
	}
	defer screen.Fini()
	return term.NewDriver(screen, types.TicksPerSecond, logger).Run(g)
}
