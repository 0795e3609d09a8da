package game

import (
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/render-smoke/internal/chime"
	"github.com/iburimskiy/render-smoke/internal/config"
)

// Launch prints the status lines, plays the chime if enabled and runs the
// window until it is closed. Audio failures are logged and ignored.
func Launch(cfg config.Window, stdout io.Writer, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	d, err := New(cfg, NewHost(logger), WithLogger(logger))
	if err != nil {
		return err
	}
	if err := WriteStatus(stdout, cfg); err != nil {
		return err
	}

	if cfg.Chime.Enabled {
		if err := chime.Play(cfg.Chime); err != nil {
			logger.Warn("audio check skipped", "error", err)
		} else {
			defer chime.Stop()
		}
	}

	return d.Run()
}

// ReportFatal shows err in a native dialog. The window may never have
// opened, so this is the only place the user sees it besides stderr. On a
// headless session there is nothing to show the dialog on and it is skipped.
func ReportFatal(title string, err error) {
	if !canShowDialog(runtime.GOOS, os.Getenv) {
		return
	}
	_ = zenity.Error(err.Error(), zenity.Title(title))
}

// canShowDialog reports whether a desktop session is reachable. Windows and
// macOS always have one; elsewhere an X11 or Wayland display must be set.
func canShowDialog(goos string, getenv func(string) string) bool {
	switch goos {
	case "windows", "darwin":
		return true
	}
	return getenv("DISPLAY") != "" || getenv("WAYLAND_DISPLAY") != ""
}
