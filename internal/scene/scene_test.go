package scene

import (
	"fmt"
	"image/color"
	"reflect"
	"testing"

	"github.com/iburimskiy/render-smoke/internal/config"
)

// recorder logs every call as a formatted string.
type recorder struct {
	calls []string
}

func (r *recorder) add(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) Clear(clr color.Color) { r.add("Clear %v", clr) }
func (r *recorder) RectangleLines(x, y, w, h float32, clr color.Color) {
	r.add("RectangleLines %v %v %v %v %v", x, y, w, h, clr)
}
func (r *recorder) CircleGradient(cx, cy, radius float32, inner, outer color.Color) {
	r.add("CircleGradient %v %v %v", cx, cy, radius)
}
func (r *recorder) Poly(cx, cy float32, sides int, radius, rotation float32, clr color.Color) {
	r.add("Poly %v %v %d %v %v %v", cx, cy, sides, radius, rotation, clr)
}
func (r *recorder) PolyLines(cx, cy float32, sides int, radius, rotation, thickness float32, clr color.Color) {
	r.add("PolyLines %v %v %d %v %v %v", cx, cy, sides, radius, rotation, thickness)
}
func (r *recorder) Text(s string, x, y int, size float64, clr color.Color) {
	r.add("Text %q %d %d", s, x, y)
}
func (r *recorder) FPS(x, y int) { r.add("FPS %d %d", x, y) }

func kinds(calls []string) []string {
	out := make([]string, len(calls))
	for i, c := range calls {
		var k string
		fmt.Sscanf(c, "%s", &k)
		out[i] = k
	}
	return out
}

func TestDrawOrder(t *testing.T) {
	s := New(config.Default())
	rec := &recorder{}
	s.Draw(rec, 1)

	want := []string{"Clear", "Text", "RectangleLines", "CircleGradient", "Poly", "PolyLines", "Text", "FPS"}
	if got := kinds(rec.calls); !reflect.DeepEqual(got, want) {
		t.Errorf("draw order = %v, want %v", got, want)
	}
}

func TestDrawIsDeterministic(t *testing.T) {
	a, b := New(config.Default()), New(config.Default())
	for i := 0; i < 10; i++ {
		a.Step()
		b.Step()
	}
	ra, rb := &recorder{}, &recorder{}
	a.Draw(ra, 2.5)
	b.Draw(rb, 2.5)
	if !reflect.DeepEqual(ra.calls, rb.calls) {
		t.Errorf("same inputs drew differently:\n%v\n%v", ra.calls, rb.calls)
	}
}

func TestAngleStrictlyIncreases(t *testing.T) {
	s := New(config.Default())
	prev := s.Angle()
	for i := 1; i <= 500; i++ {
		s.Step()
		got := s.Angle()
		if got <= prev {
			t.Fatalf("step %d: angle %v <= %v", i, got, prev)
		}
		prev = got
	}
	if want := 500 * config.RotationStep; prev < want-1e-9 || prev > want+1e-9 {
		t.Errorf("angle after 500 steps = %v, want %v", prev, want)
	}
}

func TestRadiusNonDecreasing(t *testing.T) {
	s := New(config.Pulse())
	prev := s.Radius(0)
	if prev != config.RadiusBase {
		t.Errorf("Radius(0) = %v, want %v", prev, config.RadiusBase)
	}
	for now := 1.0 / 60; now < 30; now += 1.0 / 60 {
		got := s.Radius(now)
		if got <= prev {
			t.Fatalf("Radius(%v) = %v <= %v", now, got, prev)
		}
		prev = got
	}
	if a, b := s.Radius(600), s.Radius(6000); b <= a {
		t.Errorf("Radius(6000) = %v, want more than Radius(600) = %v", b, a)
	}
	if got := s.Radius(-5); got != config.RadiusBase {
		t.Errorf("Radius(-5) = %v, want %v", got, config.RadiusBase)
	}
}

func TestAnimatedShapeSelection(t *testing.T) {
	spin := New(config.Default())
	pulse := New(config.Pulse())
	for i := 0; i < 5; i++ {
		spin.Step()
		pulse.Step()
	}

	if spin.Rotation() == 0 {
		t.Error("polygon preset should rotate")
	}
	if spin.Radius(0) != spin.Radius(100) {
		t.Error("polygon preset circle should be static")
	}
	if pulse.Rotation() != 0 {
		t.Errorf("circle preset rotation = %v, want 0", pulse.Rotation())
	}
	if pulse.Radius(0) >= pulse.Radius(3) {
		t.Error("circle preset radius should grow")
	}
}

func TestOnlyAnimatedShapeChanges(t *testing.T) {
	tests := []struct {
		name       string
		cfg        config.Window
		polyStill  bool
		circleGrow bool
	}{
		{"polygon", config.Default(), false, false},
		{"circle", config.Pulse(), true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.cfg)
			first := &recorder{}
			s.Draw(first, 0)
			for i := 0; i < 60; i++ {
				s.Step()
			}
			later := &recorder{}
			s.Draw(later, 10)

			// Calls 4 and 5 are the polygon fill and outline.
			polyStill := first.calls[4] == later.calls[4] && first.calls[5] == later.calls[5]
			if polyStill != tt.polyStill {
				t.Errorf("polygon unchanged = %v, want %v\n%s\n%s", polyStill, tt.polyStill, first.calls[4], later.calls[4])
			}
			circleGrow := first.calls[3] != later.calls[3]
			if circleGrow != tt.circleGrow {
				t.Errorf("circle changed = %v, want %v", circleGrow, tt.circleGrow)
			}
		})
	}
}

func TestDrawUsesConfiguredSize(t *testing.T) {
	cfg := config.Default()
	rec := &recorder{}
	New(cfg).Draw(rec, 0)

	want := fmt.Sprintf("RectangleLines 20 50 %v %v", float32(cfg.Width-40), float32(cfg.Height-90))
	if got := rec.calls[2]; len(got) < len(want) || got[:len(want)] != want {
		t.Errorf("border = %q, want prefix %q", got, want)
	}
	if got, want := rec.calls[7], fmt.Sprintf("FPS %d 20", cfg.Width-90); got != want {
		t.Errorf("fps = %q, want %q", got, want)
	}
}

func TestHsvToRgb(t *testing.T) {
	tests := []struct {
		h       float64
		r, g, b uint8
	}{
		{0, 255, 0, 0},
		{120, 0, 255, 0},
		{240, 0, 0, 255},
		{360, 255, 0, 0},
		{-120, 0, 0, 255},
	}
	for _, tt := range tests {
		r, g, b := hsvToRgb(tt.h, 1, 1)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("hsvToRgb(%v) = %d,%d,%d, want %d,%d,%d", tt.h, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}

func TestForeground(t *testing.T) {
	if got := foreground(config.Default().Background); got != darkGray {
		t.Errorf("light background foreground = %v, want dark", got)
	}
	if got := foreground(config.Pulse().Background); got != offWhite {
		t.Errorf("dark background foreground = %v, want light", got)
	}
}
