package game

import (
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/render-smoke/internal/canvas"
	"github.com/iburimskiy/render-smoke/internal/config"
)

// exitKey ends the loop like the window close button does.
const exitKey = ebiten.KeyEscape

type ebitenHost struct {
	logger    *slog.Logger
	res       *canvas.Resources
	antialias bool
	start     time.Time
}

// NewHost returns the ebiten-backed Host.
func NewHost(logger *slog.Logger) Host {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ebitenHost{logger: logger}
}

// Open applies cfg to the window. cfg has already passed Validate in New.
func (h *ebitenHost) Open(cfg config.Window) error {
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(cfg.TargetFPS)
	ebiten.SetVsyncEnabled(cfg.Flags.VSync)
	if cfg.Flags.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetWindowClosingHandled(true)

	h.antialias = cfg.Flags.Antialias
	h.res = canvas.NewResources()
	h.start = time.Now()
	return nil
}

func (h *ebitenHost) Run(game ebiten.Game) error {
	return ebiten.RunGame(game)
}

func (h *ebitenHost) ShouldClose() bool {
	return ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(exitKey)
}

func (h *ebitenHost) Now() float64 {
	return time.Since(h.start).Seconds()
}

func (h *ebitenHost) Begin(screen *ebiten.Image) Frame {
	return canvas.Begin(screen, h.res, h.antialias, h.logger)
}

func (h *ebitenHost) Close() {
	if h.res != nil {
		h.res.Release()
	}
}
