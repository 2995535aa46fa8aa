package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/tomz197/rockshot/internal/audio"
	"github.com/tomz197/rockshot/internal/config"
	"github.com/tomz197/rockshot/internal/draw"
	"github.com/tomz197/rockshot/internal/game"
	"github.com/tomz197/rockshot/internal/loop"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// stdout is the game screen, so logs go to a file or nowhere
	logOut, closeLog, err := config.LogFileFromEnv()
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer closeLog()
	logger := config.NewLogger(logOut, "rockshot")

	tuning, err := config.LoadFromEnv()
	if err != nil {
		return err
	}

	var player audio.Player = audio.Silent{}
	if config.GetEnv("ROCKSHOT_AUDIO", "on") != "off" {
		var closeAudio func()
		player, closeAudio = audio.OpenSpeaker(logger)
		defer closeAudio()
	}

	engine, _, err := game.NewEngine(tuning, loop.Options{
		Seed:   config.GetEnvInt64("ROCKSHOT_SEED", time.Now().UnixNano()),
		Audio:  player,
		Logger: logger,
	})
	if err != nil {
		return err
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	return loop.Run(ctx, engine, bufio.NewReader(os.Stdin), os.Stdout, loop.RunOptions{
		TermSize: draw.StdoutSize,
		Logger:   logger,
	})
}
