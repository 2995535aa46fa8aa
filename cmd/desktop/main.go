package main

import (
	"os"
	"time"

	"github.com/tomz197/rockshot/internal/audio"
	"github.com/tomz197/rockshot/internal/config"
	"github.com/tomz197/rockshot/internal/ebitenhost"
	"github.com/tomz197/rockshot/internal/game"
	"github.com/tomz197/rockshot/internal/loop"
)

func main() {
	logger := config.NewLogger(os.Stderr, "rockshot")

	tuning, err := config.LoadFromEnv()
	if err != nil {
		logger.Fatal("load tuning", "err", err)
	}

	var player audio.Player = audio.Silent{}
	if config.GetEnv("ROCKSHOT_AUDIO", "on") != "off" {
		var closeAudio func()
		player, closeAudio = audio.OpenSpeaker(logger)
		defer closeAudio()
	}

	seed := config.GetEnvInt64("ROCKSHOT_SEED", time.Now().UnixNano())
	engine, _, err := game.NewEngine(tuning, loop.Options{
		Seed:   seed,
		Audio:  player,
		Logger: logger,
	})
	if err != nil {
		logger.Fatal("create game", "err", err)
	}

	logger.Info("starting window", "seed", seed)
	if err := ebitenhost.Run(engine, logger); err != nil {
		logger.Error("game error", "err", err)
		os.Exit(1)
	}
}
