package scenes

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/decker502/loadinganim/pkg/game"
	"github.com/decker502/loadinganim/pkg/host"
	"github.com/hajimehoshi/ebiten/v2"
)

// LoadingScene is active while the sketch's asynchronous setup runs.
// The loading animation draws on the host canvas through scheduled ticks;
// this scene only waits for Load and shows the canvas.
type LoadingScene struct {
	host         *host.Host
	sketch       game.Sketch
	sceneManager *game.SceneManager

	cancel  context.CancelFunc
	result  chan error
	started time.Time
	done    bool
}

// NewLoadingScene creates the loading scene and starts the sketch's Load,
// if it has one, on a new goroutine.
func NewLoadingScene(ctx context.Context, h *host.Host, sketch game.Sketch, sm *game.SceneManager) *LoadingScene {
	ctx, cancel := context.WithCancel(ctx)
	s := &LoadingScene{
		host:         h,
		sketch:       sketch,
		sceneManager: sm,
		cancel:       cancel,
		started:      time.Now(),
	}

	if loader, ok := sketch.(game.Loader); ok {
		s.result = make(chan error, 1)
		go func() {
			s.result <- loader.Load(ctx)
		}()
		log.Printf("[LoadingScene] Waiting for %T to load", sketch)
	}
	return s
}

// Update checks whether Load has returned. A failed Load ends the game loop.
func (s *LoadingScene) Update(deltaTime float64) error {
	if s.done {
		return nil
	}

	if s.result != nil {
		select {
		case err := <-s.result:
			if err != nil {
				return fmt.Errorf("sketch load failed: %w", err)
			}
		default:
			return nil
		}
	}

	s.complete()
	return nil
}

// complete runs the sketch's Ready, marks setup done and hands over to the sketch scene.
func (s *LoadingScene) complete() {
	s.done = true

	if readier, ok := s.sketch.(game.Readier); ok {
		readier.Ready(s.host)
	}
	s.host.MarkSetupDone()
	log.Printf("[LoadingScene] Setup completed in %v", time.Since(s.started).Round(time.Millisecond))

	s.sceneManager.SwitchTo(NewSketchScene(s.host, s.sketch))
}

// Draw shows the host canvas.
func (s *LoadingScene) Draw(screen *ebiten.Image) {
	drawCanvas(screen, s.host)
}

// Close cancels a Load that is still running.
func (s *LoadingScene) Close() {
	s.cancel()
}

// drawCanvas copies the host canvas to the screen.
func drawCanvas(screen *ebiten.Image, h *host.Host) {
	img := h.Image()
	if img == nil {
		return
	}
	screen.DrawImage(img, nil)
}
