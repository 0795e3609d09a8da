package canvas

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"
)

// spriteSize is the edge of the cached gradient sprite. Circles are drawn
// by scaling it, so it should cover the largest radius without blurring.
const spriteSize = 256

type gradientKey struct {
	inner, outer color.RGBA
}

// Resources holds the GPU images a frame draws from. It is created when the
// window opens and released exactly once when the loop ends.
type Resources struct {
	white     *ebiten.Image
	whiteSub  *ebiten.Image
	gradients map[gradientKey]*ebiten.Image
	released  bool
}

func NewResources() *Resources {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &Resources{
		white:     white,
		whiteSub:  white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		gradients: map[gradientKey]*ebiten.Image{},
	}
}

// gradient returns the sprite for the color pair, rasterising it on first use.
func (r *Resources) gradient(inner, outer color.Color) (*ebiten.Image, error) {
	key := gradientKey{toRGBA(inner), toRGBA(outer)}
	if img, ok := r.gradients[key]; ok {
		return img, nil
	}
	src, err := renderGradient(spriteSize, inner, outer)
	if err != nil {
		return nil, err
	}
	img := ebiten.NewImageFromImage(src)
	r.gradients[key] = img
	return img, nil
}

// Release deallocates every image. Later calls do nothing.
func (r *Resources) Release() {
	if r.released {
		return
	}
	r.released = true
	for k, img := range r.gradients {
		img.Deallocate()
		delete(r.gradients, k)
	}
	if r.white != nil {
		r.white.Deallocate()
	}
}

func (r *Resources) Released() bool { return r.released }

// renderGradient rasterises a filled circle of diameter size whose color
// runs from inner at the center to outer at the rim.
func renderGradient(size int, inner, outer color.Color) (image.Image, error) {
	ctx := gg.NewContext(size, size)
	defer ctx.Close()

	c := float64(size) / 2
	brush := gg.NewRadialGradientBrush(c, c, 0, c).
		AddColorStop(0, gg.FromColor(inner)).
		AddColorStop(1, gg.FromColor(outer))
	ctx.SetFillBrush(brush)
	ctx.DrawCircle(c, c, c)
	if err := ctx.Fill(); err != nil {
		return nil, fmt.Errorf("fill gradient: %w", err)
	}
	return ctx.Image(), nil
}

func toRGBA(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}
