package loader

import (
	"time"

	"github.com/decker502/loadinganim/pkg/gfx"
	"github.com/decker502/loadinganim/pkg/input"
)

// Host is the drawing environment a Controller is bound to.
//
// The controller borrows the host: the host must outlive the controller's
// active loop. All methods are called on the host's loop goroutine.
type Host interface {
	// Surface returns the drawing surface the animation renders into.
	Surface() gfx.Surface
	// Events returns the event target pointer listeners are registered on.
	Events() *input.Target
	// AfterFunc runs fn on the host loop once d has elapsed.
	AfterFunc(d time.Duration, fn func()) (cancel func())
	// PointerPosition returns the pointer position in surface coordinates.
	PointerPosition() (x, y float64)
	// SetCursorVisible shows the default system cursor or hides it.
	SetCursorVisible(visible bool)
	// SetupDone reports whether the user's asynchronous setup has finished.
	// It is the only termination signal of the loading loop.
	SetupDone() bool
}
