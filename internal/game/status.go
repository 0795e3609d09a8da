package game

import (
	"fmt"
	"io"

	"github.com/iburimskiy/render-smoke/internal/config"
)

// WriteStatus prints the startup lines. The output depends only on cfg.
func WriteStatus(w io.Writer, cfg config.Window) error {
	lines := []string{
		"render-smoke: graphics backend linked (ebiten)",
		fmt.Sprintf("render-smoke: window %dx%d at %d fps, animating %s", cfg.Width, cfg.Height, cfg.TargetFPS, cfg.Animate),
		"render-smoke: press ESC or close the window to exit",
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}
