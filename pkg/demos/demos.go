// Package demos contains the two demo sketches: the default loading
// animation, and one that replaces all three animation slots.
//
// Both simulate a slow asynchronous setup with a timer, then paint a pink
// page with a white circle and leave a trail of circles behind the pointer.
package demos

import (
	"context"
	"time"

	"github.com/decker502/loadinganim/pkg/config"
	"github.com/decker502/loadinganim/pkg/gfx"
	"github.com/decker502/loadinganim/pkg/host"
	"github.com/decker502/loadinganim/pkg/loader"
	"github.com/decker502/loadinganim/pkg/utils"
)

// pageColor is the background painted once setup completes.
var pageColor = utils.MustParseColor("#EB5580")

// Settings configures a demo sketch.
type Settings struct {
	Options loader.Options
	// LoadDuration is how long the simulated load takes.
	LoadDuration time.Duration
}

// SettingsFromConfig builds demo settings from the loader config.
func SettingsFromConfig(cfg *config.LoaderConfig) Settings {
	return Settings{
		Options: loader.Options{
			UseLogo:    cfg.Animation.UseLogo,
			StartDelay: cfg.Animation.StartDelay,
			Words:      append([]string(nil), cfg.Animation.Words...),
		},
		LoadDuration: time.Duration(cfg.Demo.LoadSeconds * float64(time.Second)),
	}
}

// fakeLoad waits for d or until ctx is cancelled.
func fakeLoad(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// drawPage paints the page shown once setup is done.
func drawPage(s gfx.Surface) {
	w, h := s.Size()
	s.Background(pageColor)
	s.Fill(utils.Gray(255))
	s.Circle(w/2, h/2, 100)
}

// drawPointerCircle leaves a small circle under the pointer.
func drawPointerCircle(h *host.Host) {
	x, y := h.PointerPosition()
	h.Surface().Circle(x, y, 20)
}
