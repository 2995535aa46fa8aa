package ebitenhost

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/rockshot/internal/input"
	"github.com/tomz197/rockshot/internal/loop"
)

// Host adapts an engine to ebiten.Game. Ebiten calls Update at TickRate.
type Host struct {
	engine   *loop.Engine
	renderer *Renderer
	logger   *log.Logger
	drawErr  error // Draw cannot fail, so the next Update reports it
}

var _ ebiten.Game = (*Host)(nil)

// New creates a host for engine. A nil logger discards.
func New(engine *loop.Engine, logger *log.Logger) *Host {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Host{
		engine:   engine,
		renderer: NewRenderer(engine.Camera()),
		logger:   logger,
	}
}

// Update ticks the engine once with the keys currently held.
func (h *Host) Update() error {
	if h.drawErr != nil {
		return h.drawErr
	}
	if anyPressed(ebiten.KeyEscape, ebiten.KeyQ) {
		h.logger.Info("quit", "frame", h.engine.World().Frame(), "score", h.engine.World().Score())
		return ebiten.Termination
	}
	return h.engine.Tick(readKeys())
}

// Draw renders the current world.
func (h *Host) Draw(screen *ebiten.Image) {
	h.renderer.SetTarget(screen)
	if err := h.engine.Render(h.renderer); err != nil && h.drawErr == nil {
		h.drawErr = err
	}
}

// Layout fixes the logical screen to the canvas size; ebiten scales it to the window.
func (h *Host) Layout(_, _ int) (int, int) {
	return loop.CanvasWidth, loop.CanvasHeight
}

// Run opens a window and blocks until the player quits or the engine fails.
func Run(engine *loop.Engine, logger *log.Logger) error {
	ebiten.SetWindowSize(loop.CanvasWidth, loop.CanvasHeight)
	ebiten.SetWindowTitle("rockshot")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(loop.TickRate)

	return ebiten.RunGame(New(engine, logger))
}

func readKeys() input.Input {
	return input.Input{
		Left:  anyPressed(ebiten.KeyArrowLeft, ebiten.KeyA),
		Right: anyPressed(ebiten.KeyArrowRight, ebiten.KeyD),
		Up:    anyPressed(ebiten.KeyArrowUp, ebiten.KeyW),
		Down:  anyPressed(ebiten.KeyArrowDown, ebiten.KeyS),
	}
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
