// Package loop runs the simulation: the world state, the fixed-step engine
// that drives objects through game hooks, and the terminal frame loop.
package loop

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/rockshot/internal/draw"
	"github.com/tomz197/rockshot/internal/input"
)

// ErrInactive is returned by Run when the player sent no input for too long.
var ErrInactive = errors.New("disconnected for inactivity")

// RunOptions configure the terminal frame loop.
type RunOptions struct {
	TermSize    draw.TermSizeFunc
	IdleTimeout time.Duration // Zero never disconnects
	Logger      *log.Logger   // nil discards
}

// Run drives engine at TickRate, reading keys from r and drawing frames to w
// until the player quits, the input closes or ctx is cancelled.
func Run(ctx context.Context, engine *Engine, r *bufio.Reader, w io.Writer, opts RunOptions) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	termSize := opts.TermSize
	if termSize == nil {
		termSize = draw.StdoutSize
	}

	stream := input.StartStream(r)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	camera := engine.Camera()
	canvas := draw.NewScaledCanvas(1, 1, camera.Width, camera.Height)
	renderer := draw.NewTerminalRenderer(canvas, camera)
	cw := draw.NewChunkWriter(w, 0, 0)
	var viewport draw.Viewport

	ticker := time.NewTicker(TickDuration)
	defer ticker.Stop()
	lastInput := time.Now()

	for {
		select {
		case <-ctx.Done():
			draw.ClearScreen(w)
			return nil
		case <-ticker.C:
		}

		// ===== INPUT PHASE =====
		in := input.ReadInput(stream)
		if in.Quit {
			break
		}
		now := time.Now()
		if in != (input.Input{}) {
			lastInput = now
		}
		if opts.IdleTimeout > 0 && now.Sub(lastInput) > opts.IdleTimeout {
			draw.ClearScreen(w)
			fmt.Fprintf(w, "%s\r\n", ErrInactive)
			return ErrInactive
		}

		// ===== UPDATE PHASE =====
		if err := updateViewport(termSize, canvas, cw, camera, &viewport); err != nil {
			return err
		}
		if err := engine.Tick(in); err != nil {
			return err
		}

		// ===== DRAW PHASE =====
		if err := engine.Render(renderer); err != nil {
			return err
		}
		if err := renderer.Flush(cw); err != nil {
			return fmt.Errorf("render frame: %w", err)
		}
		if err := cw.Flush(); err != nil {
			return fmt.Errorf("write frame: %w", err)
		}
	}

	logger.Info("quit", "frame", engine.World().Frame(), "score", engine.World().Score())
	draw.ClearScreen(w)
	return nil
}

// updateViewport checks for terminal resize and refits the canvas.
func updateViewport(termSize draw.TermSizeFunc, canvas *draw.Canvas, cw *draw.ChunkWriter, camera draw.Camera, current *draw.Viewport) error {
	termWidth, termHeight, err := termSize()
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}

	vp := draw.FitViewport(termWidth, termHeight, camera.Width, camera.Height)
	if vp == *current {
		return nil
	}
	*current = vp

	canvas.Resize(vp.Cols, vp.Rows)
	canvas.SetOffset(vp.OffsetCol, vp.OffsetRow)
	cw.SetOffset(vp.OffsetCol, vp.OffsetRow)
	cw.WriteString("\033[H\033[2J") // Stale margins from the old size
	return nil
}
