package main

import (
	"log"
	"log/slog"
	"os"

	"gridpong/internal/config"
	"gridpong/internal/game"
	"gridpong/internal/terminal"
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

	if err := terminal.Run(game.NewState(cfg), cfg); err != nil {
		log.Fatal("failed to run game in terminal: ", err)
	}
}
