// Package canvas draws scene primitives onto an ebiten screen image.
package canvas

import (
	"fmt"
	"image/color"
	"log/slog"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var face = text.NewGoXFace(basicfont.Face7x13)

// faceHeight is the pixel height of basicfont.Face7x13.
const faceHeight = 13

// Frame is the handle for one rendered frame. Obtain it with Begin and
// always call End, usually with defer. Drawing after End is ignored.
type Frame struct {
	screen    *ebiten.Image
	res       *Resources
	antialias bool
	logger    *slog.Logger
	ended     bool
}

func Begin(screen *ebiten.Image, res *Resources, antialias bool, logger *slog.Logger) *Frame {
	return &Frame{screen: screen, res: res, antialias: antialias, logger: logger}
}

// End closes the frame. ebiten presents the screen once Draw returns, so
// End only seals the handle.
func (f *Frame) End() {
	f.ended = true
}

func (f *Frame) live() bool {
	return !f.ended && !f.res.Released()
}

func (f *Frame) Clear(clr color.Color) {
	if !f.live() {
		return
	}
	f.screen.Fill(clr)
}

func (f *Frame) RectangleLines(x, y, w, h float32, clr color.Color) {
	if !f.live() {
		return
	}
	vector.StrokeRect(f.screen, x, y, w, h, 1, clr, f.antialias)
}

func (f *Frame) CircleGradient(cx, cy, radius float32, inner, outer color.Color) {
	if !f.live() || radius <= 0 {
		return
	}
	sprite, err := f.res.gradient(inner, outer)
	if err != nil {
		f.logger.Warn("gradient sprite unavailable", "error", err)
		return
	}
	scale := float64(2*radius) / spriteSize
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(cx-radius), float64(cy-radius))
	op.Filter = ebiten.FilterLinear
	f.screen.DrawImage(sprite, op)
}

func (f *Frame) Poly(cx, cy float32, sides int, radius, rotation float32, clr color.Color) {
	if !f.live() || sides < 3 {
		return
	}
	pts := polygonPoints(cx, cy, sides, radius, rotation)
	var path vector.Path
	path.MoveTo(pts[0][0], pts[0][1])
	for _, p := range pts[1:] {
		path.LineTo(p[0], p[1])
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := clr.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	op := &ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
		AntiAlias:      f.antialias,
	}
	f.screen.DrawTriangles(vs, is, f.res.whiteSub, op)
}

func (f *Frame) PolyLines(cx, cy float32, sides int, radius, rotation, thickness float32, clr color.Color) {
	if !f.live() || sides < 3 {
		return
	}
	pts := polygonPoints(cx, cy, sides, radius, rotation)
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		vector.StrokeLine(f.screen, p[0], p[1], q[0], q[1], thickness, clr, f.antialias)
	}
}

func (f *Frame) Text(s string, x, y int, size float64, clr color.Color) {
	if !f.live() {
		return
	}
	scale := size / faceHeight
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(f.screen, s, face, op)
}

func (f *Frame) FPS(x, y int) {
	if !f.live() {
		return
	}
	ebitenutil.DebugPrintAt(f.screen, fmt.Sprintf("%d FPS", int(math.Round(ebiten.ActualFPS()))), x, y)
}

// polygonPoints returns the vertices of a regular polygon. rotation is in
// degrees; the first vertex sits on the positive x axis when it is zero.
func polygonPoints(cx, cy float32, sides int, radius, rotation float32) [][2]float32 {
	pts := make([][2]float32, sides)
	base := float64(rotation) * math.Pi / 180
	for i := range pts {
		a := base + float64(i)*2*math.Pi/float64(sides)
		pts[i] = [2]float32{
			cx + radius*float32(math.Cos(a)),
			cy + radius*float32(math.Sin(a)),
		}
	}
	return pts
}
