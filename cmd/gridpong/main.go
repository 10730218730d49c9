package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"gridpong/internal/config"
	"gridpong/internal/game"
	"gridpong/internal/window"
)

func main() {
	if len(os.Args) == 1 {
		config.LoadConfig("")
	} else {
		config.LoadConfig(os.Args[1])
	}

	slog.SetLogLoggerLevel(slog.Level(config.Config.LogLevel))

	cfg := game.DefaultConfig()
	cfg.Seed = config.Config.Seed

	w, h := cfg.WindowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Moving Paddles!")

	if err := ebiten.RunGame(window.New(game.NewState(cfg), cfg)); err != nil {
		log.Fatal("failed to run game window: ", err)
	}
}
