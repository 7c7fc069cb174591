package loader

import (
	"github.com/decker502/loadinganim/pkg/config"
	"github.com/decker502/loadinganim/pkg/gfx"
	"github.com/decker502/loadinganim/pkg/utils"
)

// EmblemVertices is the outline of the default spinning logo, an asterisk
// inside a 28x28 box centred at (LogoOrigin, LogoOrigin).
var EmblemVertices = []gfx.Point{
	{X: 16.909, Y: 10.259},
	{X: 25.442, Y: 7.683},
	{X: 27.118, Y: 12.839},
	{X: 18.62, Y: 15.738},
	{X: 23.895, Y: 23.218},
	{X: 19.448, Y: 26.443},
	{X: 13.895, Y: 19.095},
	{X: 8.487, Y: 26.25},
	{X: 4.169, Y: 22.961},
	{X: 9.444, Y: 15.738},
	{X: 0.88, Y: 12.647},
	{X: 2.558, Y: 7.487},
	{X: 11.156, Y: 10.258},
	{X: 11.156, Y: 1.364},
	{X: 16.91, Y: 1.364},
}

var emblemColor = utils.MustParseColor(config.LogoColor)

// EmblemAngle returns the emblem rotation in radians at the given frame.
func EmblemAngle(frame int) float64 {
	return utils.Radians(float64(frame) * config.LogoDegreesPerTick)
}

// DrawEmblem draws the spinning emblem centred at (x, y).
func DrawEmblem(s gfx.Surface, x, y float64, frame int) {
	s.Push()
	defer s.Pop()

	s.Translate(x, y)
	s.Scale(config.LogoScale)
	s.Rotate(EmblemAngle(frame))
	s.Translate(-config.LogoOrigin, -config.LogoOrigin)
	s.NoStroke()
	s.Fill(emblemColor)
	s.Polygon(EmblemVertices)
}
