package game

import (
	"context"

	"github.com/decker502/loadinganim/pkg/host"
)

// Sketch is a user program drawn on the host canvas.
//
// Setup runs once on the loop goroutine before the first frame; it is where
// a sketch creates and starts its loading animation. Draw runs once per tick
// after setup has completed.
type Sketch interface {
	Setup(h *host.Host) error
	Draw(h *host.Host)
}

// Loader is implemented by sketches whose setup continues asynchronously,
// such as downloading or decoding large assets.
//
// Load runs on its own goroutine and must not touch the host. The loading
// animation keeps playing until Load returns. ctx is cancelled when the
// application closes.
type Loader interface {
	Load(ctx context.Context) error
}

// Readier is implemented by sketches that have setup work to finish on the
// loop goroutine once Load has returned. Ready runs before the host is
// marked as set up, so the loading animation never draws over it.
type Readier interface {
	Ready(h *host.Host)
}
