package main

import (
	"errors"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/iburimskiy/hanoi/internal/config"
	"github.com/iburimskiy/hanoi/internal/game"
	"github.com/iburimskiy/hanoi/internal/sound"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(config.LogLevel)

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowCaption)
	ebiten.SetTPS(config.FPS)
	ebiten.SetWindowClosingHandled(true)

	player, err := sound.New()
	if err != nil {
		log.Warn().Err(err).Msg("audio unavailable, running muted")
	}
	defer player.Close()

	g, err := game.New(player)
	if err != nil {
		fatal(player.Close, err, "failed to start")
	}

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		fatal(player.Close, err, "game exited")
	}
	log.Info().Msg("bye")
}

// Overridden in tests.
var (
	showError = func(msg string) error {
		return zenity.Error(msg, zenity.Title(config.WindowCaption), zenity.ErrorIcon)
	}
	exit = os.Exit
)

// fatal reports an unrecoverable error in a native dialog and exits.
// Deferred calls do not run on exit, so cleanup releases the speaker first.
func fatal(cleanup func(), err error, msg string) {
	cleanup()
	_ = showError(msg + ": " + err.Error())
	log.Error().Err(err).Msg(msg)
	exit(1)
}
