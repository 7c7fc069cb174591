package scenes

import (
	"github.com/decker502/loadinganim/pkg/game"
	"github.com/decker502/loadinganim/pkg/host"
	"github.com/hajimehoshi/ebiten/v2"
)

// SketchScene runs the sketch's Draw once per tick after setup completed.
type SketchScene struct {
	host   *host.Host
	sketch game.Sketch
	frames int
}

// NewSketchScene creates the scene for a sketch whose setup has completed.
func NewSketchScene(h *host.Host, sketch game.Sketch) *SketchScene {
	return &SketchScene{
		host:   h,
		sketch: sketch,
	}
}

// Update draws one frame of the sketch onto the host canvas.
func (s *SketchScene) Update(deltaTime float64) error {
	s.frames++
	s.sketch.Draw(s.host)
	return nil
}

// Draw shows the host canvas.
func (s *SketchScene) Draw(screen *ebiten.Image) {
	drawCanvas(screen, s.host)
}

// Frames returns how many times the sketch has been drawn.
func (s *SketchScene) Frames() int {
	return s.frames
}
