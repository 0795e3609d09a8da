// Package scene holds the animation state of the smoke test and the fixed
// sequence of draw calls issued every frame.
package scene

import (
	"image/color"
	"math"

	"github.com/iburimskiy/render-smoke/internal/config"
)

// Canvas is an immediate-mode drawing target. Coordinates are in screen
// pixels, rotations in degrees.
type Canvas interface {
	Clear(clr color.Color)
	RectangleLines(x, y, w, h float32, clr color.Color)
	CircleGradient(cx, cy, radius float32, inner, outer color.Color)
	Poly(cx, cy float32, sides int, radius, rotation float32, clr color.Color)
	PolyLines(cx, cy float32, sides int, radius, rotation, thickness float32, clr color.Color)
	Text(s string, x, y int, size float64, clr color.Color)
	FPS(x, y int)
}

const (
	titleText  = "render loop smoke test"
	footerText = "press ESC or close the window to exit"

	staticRadius = 60
	margin       = 20
)

// Scene owns the per-run animation scalars.
type Scene struct {
	cfg   config.Window
	angle float64
}

func New(cfg config.Window) *Scene {
	return &Scene{cfg: cfg}
}

// Step advances the angle by one fixed increment.
func (s *Scene) Step() {
	s.angle += config.RotationStep
}

func (s *Scene) Angle() float64 { return s.angle }

// Radius returns the gradient circle radius for the given elapsed seconds.
// It never decreases as now grows.
func (s *Scene) Radius(now float64) float64 {
	if s.cfg.Animate != config.AnimateCircle {
		return staticRadius
	}
	if now < 0 {
		now = 0
	}
	return config.RadiusBase + config.RadiusGrowth*now
}

// Rotation returns the polygon rotation in degrees.
func (s *Scene) Rotation() float64 {
	if s.cfg.Animate != config.AnimatePolygon {
		return 0
	}
	return s.angle
}

// PolygonColor cycles the fill hue with the angle when the polygon is the
// animated shape and is constant otherwise.
func (s *Scene) PolygonColor() color.RGBA {
	if s.cfg.Animate != config.AnimatePolygon {
		return steelBlue
	}
	r, g, b := hsvToRgb(math.Mod(s.angle, 360), 0.7, 0.85)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Draw issues the full frame. The output depends only on the angle, now and
// the configuration.
func (s *Scene) Draw(c Canvas, now float64) {
	w, h := float32(s.cfg.Width), float32(s.cfg.Height)
	fg := foreground(s.cfg.Background)

	c.Clear(s.cfg.Background)
	c.Text(titleText, margin, margin, 20, fg)
	c.RectangleLines(margin, 2*margin+10, w-2*margin, h-4*margin-10, lightGray)

	cy := h/2 + margin/2
	c.CircleGradient(w/4, cy, float32(s.Radius(now)), gold, maroon)

	rot := float32(s.Rotation())
	c.Poly(3*w/4, cy, config.PolygonSides, config.PolygonRadius, rot, s.PolygonColor())
	c.PolyLines(3*w/4, cy, config.PolygonSides, config.PolygonRadius+10, rot, 3, fg)

	c.Text(footerText, margin, int(h)-margin-10, 10, gray)
	c.FPS(int(w)-90, margin)
}
