// Package game runs the render loop: it opens the window, steps and draws
// the scene once per tick, and releases the window when the close signal
// arrives.
package game

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/render-smoke/internal/config"
	"github.com/iburimskiy/render-smoke/internal/scene"
)

// ErrAlreadyRun is returned when Run is called on a driver that has
// already run.
var ErrAlreadyRun = errors.New("game: driver already run")

// Frame is a scoped drawing handle. End must be called exactly when the
// frame is done; Draw defers it.
type Frame interface {
	scene.Canvas
	End()
}

// Host is the windowing collaborator the driver sits on.
type Host interface {
	Open(cfg config.Window) error
	Run(game ebiten.Game) error
	ShouldClose() bool
	// Now returns seconds elapsed since Open.
	Now() float64
	Begin(screen *ebiten.Image) Frame
	Close()
}

type Option func(*Driver)

// WithLogger sets the lifecycle logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(d *Driver) {
		if l != nil {
			d.logger = l
		}
	}
}

// Driver implements ebiten.Game on top of a Host.
type Driver struct {
	cfg    config.Window
	host   Host
	scene  *scene.Scene
	logger *slog.Logger

	ran      bool
	released bool
	ticks    int
	frames   int
}

func New(cfg config.Window, host Host, opts ...Option) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	d := &Driver{
		cfg:    cfg,
		host:   host,
		scene:  scene.New(cfg),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Run opens the window, blocks until the loop ends and releases the host.
// An error from Open or from the loop itself is returned to the caller,
// which treats it as fatal.
func (d *Driver) Run() error {
	if d.ran {
		return ErrAlreadyRun
	}
	d.ran = true

	if err := d.host.Open(d.cfg); err != nil {
		return fmt.Errorf("open window: %w", err)
	}
	d.logger.Info("window opened", "width", d.cfg.Width, "height", d.cfg.Height, "title", d.cfg.Title)
	defer d.release()

	if err := d.host.Run(d); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("render loop: %w", err)
	}
	return nil
}

func (d *Driver) release() {
	if d.released {
		return
	}
	d.released = true
	d.host.Close()
	d.logger.Info("window released", "ticks", d.ticks, "frames", d.frames)
}

// Update polls the close signal once and, if the window stays open,
// advances the animation by one step.
func (d *Driver) Update() error {
	if d.released || d.host.ShouldClose() {
		return ebiten.Termination
	}
	d.scene.Step()
	d.ticks++
	return nil
}

func (d *Driver) Draw(screen *ebiten.Image) {
	if d.released {
		return
	}
	f := d.host.Begin(screen)
	defer f.End()
	d.scene.Draw(f, d.host.Now())
	d.frames++
}

// Layout pins the render target to the configured size.
func (d *Driver) Layout(outsideWidth, outsideHeight int) (int, int) {
	return d.cfg.Width, d.cfg.Height
}

func (d *Driver) Scene() *scene.Scene { return d.scene }

// Frames reports how many frames have been drawn.
func (d *Driver) Frames() int { return d.frames }
