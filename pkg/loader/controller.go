// Package loader shows a looping placeholder animation while a sketch's
// asynchronous setup is still running.
//
// A Controller is bound to a Host. Start registers two pointer listeners on
// the host's event target and runs the first tick; every tick reschedules
// itself through Host.AfterFunc until Host.SetupDone reports true. On each
// animating tick the surface is cleared and the three animation slots run
// in order: background, loading words, cursor.
//
// Typical use, from a sketch's Setup:
//
//	anim := h.NewLoadingAnimation()
//	anim.BackgroundAnimation = myBackground // optional
//	anim.Start(loader.Options{UseLogo: true, StartDelay: 30, Words: []string{"Loading..."}})
//
// A Controller is not safe for concurrent use; everything runs on the host
// loop goroutine.
package loader

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/loadinganim/pkg/config"
	"github.com/decker502/loadinganim/pkg/input"
	"github.com/decker502/loadinganim/pkg/utils"
)

// State is the phase of the display loop.
type State int

const (
	// StateIdle means Start has not been called yet.
	StateIdle State = iota
	// StateWaiting means the loop ticks but draws nothing (frame <= start delay).
	StateWaiting
	// StateAnimating means each tick clears the surface and runs the slots.
	StateAnimating
	// StateFinished is terminal: setup completed and the loop stopped.
	StateFinished
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateWaiting:
		return "waiting"
	case StateAnimating:
		return "animating"
	case StateFinished:
		return "finished"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Options are the parameters of Start.
type Options struct {
	// UseLogo lets the cursor animation follow the pointer.
	UseLogo bool
	// StartDelay is the number of ticks during which nothing is drawn.
	// Negative values count as zero.
	StartDelay int
	// Words are drawn one per line by the loading words animation.
	// An empty list draws nothing.
	Words []string
}

// DefaultOptions returns no logo, a 30 tick delay and a single placeholder word.
func DefaultOptions() Options {
	words := make([]string, len(config.DefaultLoadingWords))
	copy(words, config.DefaultLoadingWords)
	return Options{
		UseLogo:    false,
		StartDelay: config.DefaultStartDelay,
		Words:      words,
	}
}

// resetter is implemented by surfaces that can drop an unbalanced
// Push/Pop stack left behind by an aborted tick.
type resetter interface {
	Reset()
}

// Controller drives the loading animation of one host.
type Controller struct {
	host Host

	// BackgroundColor is used by the default background animation.
	BackgroundColor color.Color

	// Animation slots. Replace them before Start; a nil slot is skipped.
	BackgroundAnimation   Animation
	LoadingWordsAnimation Animation
	// CursorAnimation only runs when the logo is enabled and the pointer
	// has entered the surface and moved at least once.
	CursorAnimation Animation

	frameCount   int
	useLogo      bool
	startDelay   int
	loadingWords []string

	isPointerInside bool
	hasPointerMoved bool
	cursorHidden    bool

	state      State
	cancelTick func()
	removers   []func()
	err        error
}

// New creates a controller bound to h with the default animations.
func New(h Host) *Controller {
	c := &Controller{
		host:                  h,
		BackgroundColor:       utils.Gray(config.LoadingBackgroundGray),
		LoadingWordsAnimation: DrawLoadingWords,
		CursorAnimation:       DrawEmblemAtPointer,
		state:                 StateIdle,
	}
	c.BackgroundAnimation = c.drawBackground
	return c
}

// Start stores the options, registers the pointer listeners and runs the
// first tick immediately.
//
// Calling Start again while the loop is active resumes in place: listeners
// are registered afresh, options are replaced and the pending tick is
// rescheduled, but the frame count and the "pointer moved" latch are kept.
// Start after the loop finished is ignored.
func (c *Controller) Start(opts Options) {
	if c.state == StateFinished {
		log.Printf("[Loader] Start ignored: loading animation already finished")
		return
	}

	c.useLogo = opts.UseLogo
	c.startDelay = max(opts.StartDelay, 0)
	c.loadingWords = append([]string(nil), opts.Words...)

	c.removeListeners()
	c.addListeners()

	if c.cancelTick != nil {
		c.cancelTick()
		c.cancelTick = nil
	}
	if c.state == StateIdle {
		c.state = StateWaiting
	}

	log.Printf("[Loader] Started: logo=%v delay=%d words=%d", c.useLogo, c.startDelay, len(c.loadingWords))
	c.tick()
}

// tick is one iteration of the display loop.
func (c *Controller) tick() {
	c.cancelTick = nil

	if c.host.SetupDone() {
		c.finish()
		return
	}

	c.frameCount++
	if c.frameCount <= c.startDelay {
		c.state = StateWaiting
	} else {
		c.state = StateAnimating
		c.animate()
	}

	c.cancelTick = c.host.AfterFunc(config.TickInterval, c.tick)
}

// animate draws one frame. A panicking slot aborts the rest of this
// frame; the error is kept and the loop carries on with the next tick.
func (c *Controller) animate() {
	s := c.host.Surface()
	defer func() {
		if r := recover(); r != nil {
			c.err = fmt.Errorf("loading animation frame %d: %v", c.frameCount, r)
			log.Printf("[Loader] Animation aborted: %v", c.err)
			if rs, ok := s.(resetter); ok {
				rs.Reset()
			}
		}
	}()

	x, y := c.host.PointerPosition()
	f := Frame{
		Surface: s,
		Count:   c.frameCount,
		X:       x,
		Y:       y,
		Words:   c.loadingWords,
	}

	s.Clear()
	if c.BackgroundAnimation != nil {
		c.BackgroundAnimation(f)
	}
	if c.LoadingWordsAnimation != nil {
		c.LoadingWordsAnimation(f)
	}
	c.spinningLogo(f)
}

// spinningLogo runs the cursor slot once the pointer gating is satisfied.
func (c *Controller) spinningLogo(f Frame) {
	if !c.useLogo || !c.isPointerInside || !c.hasPointerMoved {
		return
	}
	if !c.cursorHidden {
		c.host.SetCursorVisible(false)
		c.cursorHidden = true
	}
	if c.CursorAnimation != nil {
		c.CursorAnimation(f)
	}
}

func (c *Controller) drawBackground(f Frame) {
	f.Surface.Background(c.BackgroundColor)
}

// finish enters the terminal state and restores the default cursor.
func (c *Controller) finish() {
	c.state = StateFinished
	c.removeListeners()
	c.host.SetCursorVisible(true)
	c.cursorHidden = false
	log.Printf("[Loader] Setup done, loading animation stopped after %d frames", c.frameCount)
}

func (c *Controller) addListeners() {
	ev := c.host.Events()

	c.removers = append(c.removers,
		ev.AddEventListener(input.PointerEnter, func(input.Event) {
			c.isPointerInside = true
		}, input.ListenerOptions{}),
		ev.AddEventListener(input.PointerLeave, func(input.Event) {
			c.isPointerInside = false
			// 隐藏光标只作用于画布内部
			if c.cursorHidden {
				c.host.SetCursorVisible(true)
				c.cursorHidden = false
			}
		}, input.ListenerOptions{}),
	)

	// 只在第一次移动时触发
	if !c.hasPointerMoved {
		c.removers = append(c.removers,
			ev.AddEventListener(input.PointerMove, func(input.Event) {
				c.hasPointerMoved = true
			}, input.ListenerOptions{Once: true}),
		)
	}
}

func (c *Controller) removeListeners() {
	for _, remove := range c.removers {
		remove()
	}
	c.removers = nil
}

// FrameCount returns the number of ticks since Start.
func (c *Controller) FrameCount() int {
	return c.frameCount
}

// State returns the current loop state.
func (c *Controller) State() State {
	return c.state
}

// UseLogo reports whether the cursor animation is enabled.
func (c *Controller) UseLogo() bool {
	return c.useLogo
}

// StartDelay returns the effective start delay in ticks.
func (c *Controller) StartDelay() int {
	return c.startDelay
}

// LoadingWords returns the words passed to Start.
func (c *Controller) LoadingWords() []string {
	return c.loadingWords
}

// PointerInside reports whether the pointer is over the surface.
func (c *Controller) PointerInside() bool {
	return c.isPointerInside
}

// PointerMoved reports whether the pointer has moved over the surface
// since Start. Once true it stays true.
func (c *Controller) PointerMoved() bool {
	return c.hasPointerMoved
}

// Err returns the error of the most recent aborted frame, if any.
func (c *Controller) Err() error {
	return c.err
}
