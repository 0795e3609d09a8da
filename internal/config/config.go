package config

import (
	"errors"
	"fmt"
	"image/color"
	"time"
)

const (
	WindowWidth  = 800
	WindowHeight = 450
	TargetFPS    = 60

	// Animation parameters
	RotationStep  = 1.2 // degrees per tick
	RadiusBase    = 40
	RadiusGrowth  = 2 // pixels per second, unbounded
	PolygonSides  = 6
	PolygonRadius = 80

	// Chime parameters
	ChimeSampleRate = 44100
	ChimeFrequency  = 880
	ChimeDuration   = 150 * time.Millisecond
	ChimeGain       = 0.2
)

// ErrInvalid is returned by Validate for unusable settings.
var ErrInvalid = errors.New("config: invalid window settings")

// Shape selects which primitive carries the animation.
type Shape int

const (
	AnimatePolygon Shape = iota
	AnimateCircle
)

func (s Shape) String() string {
	switch s {
	case AnimatePolygon:
		return "polygon"
	case AnimateCircle:
		return "circle"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// Flags mirrors the window hints applied before the window opens.
type Flags struct {
	VSync     bool
	Antialias bool
	Resizable bool
}

type Chime struct {
	Enabled    bool
	SampleRate int
	Frequency  float64
	Duration   time.Duration
	Gain       float64
}

// Window holds everything fixed at startup. Values are copied into the
// driver and never written afterwards.
type Window struct {
	Width      int
	Height     int
	Title      string
	TargetFPS  int
	Flags      Flags
	Background color.RGBA
	Animate    Shape
	Chime      Chime
}

// Default is the spinning polygon sample.
func Default() Window {
	return Window{
		Width:      WindowWidth,
		Height:     WindowHeight,
		Title:      "render smoke - spinning polygon",
		TargetFPS:  TargetFPS,
		Flags:      Flags{VSync: true, Antialias: true},
		Background: color.RGBA{R: 245, G: 245, B: 245, A: 255},
		Animate:    AnimatePolygon,
		Chime: Chime{
			Enabled:    true,
			SampleRate: ChimeSampleRate,
			Frequency:  ChimeFrequency,
			Duration:   ChimeDuration,
			Gain:       ChimeGain,
		},
	}
}

// Pulse is the second sample: same program, darker background and the
// circle grows instead of the polygon spinning.
func Pulse() Window {
	w := Default()
	w.Title = "render smoke - pulsing circle"
	w.Background = color.RGBA{R: 24, G: 24, B: 28, A: 255}
	w.Animate = AnimateCircle
	return w
}

func (w Window) Validate() error {
	if w.Width <= 0 || w.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalid, w.Width, w.Height)
	}
	if w.Title == "" {
		return fmt.Errorf("%w: empty title", ErrInvalid)
	}
	if w.TargetFPS <= 0 {
		return fmt.Errorf("%w: target fps %d", ErrInvalid, w.TargetFPS)
	}
	if w.Animate != AnimatePolygon && w.Animate != AnimateCircle {
		return fmt.Errorf("%w: animate %v", ErrInvalid, w.Animate)
	}
	if w.Chime.Enabled && (w.Chime.SampleRate <= 0 || w.Chime.Duration <= 0) {
		return fmt.Errorf("%w: chime %d Hz for %v", ErrInvalid, w.Chime.SampleRate, w.Chime.Duration)
	}
	return nil
}
