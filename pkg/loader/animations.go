package loader

import (
	"math"

	"github.com/decker502/loadinganim/pkg/config"
	"github.com/decker502/loadinganim/pkg/gfx"
	"github.com/decker502/loadinganim/pkg/utils"
)

// Frame is what every animation slot receives on an animating tick.
type Frame struct {
	Surface gfx.Surface
	// Count is the controller's frame count, starting at 1 on the first tick.
	Count int
	// X, Y is the pointer position in surface coordinates.
	X, Y float64
	// Words are the loading words passed to Start.
	Words []string
}

// Animation renders one frame of a loading animation layer.
type Animation func(f Frame)

// WordBrightness returns the grey level of loading word line at frame.
// The result always lies in [LoadingWordsGrayMin, LoadingWordsGrayMax].
func WordBrightness(frame, line int) float64 {
	wave := math.Sin(float64(frame)*config.LoadingWordsWaveSpeed - float64(line)*config.LoadingWordsWavePhase)
	return utils.MapRange(wave, -1, 1, config.LoadingWordsGrayMin, config.LoadingWordsGrayMax)
}

// DrawLoadingWords draws one word per line, each line breathing between
// dark and light grey with a phase lag proportional to its index.
func DrawLoadingWords(f Frame) {
	s := f.Surface
	s.TextAlign(gfx.AlignLeft, gfx.AlignTop)
	s.TextSize(config.LoadingWordsFontSize)
	spacing := config.LoadingWordsFontSize * config.LoadingWordsLineSpacing

	for i, word := range f.Words {
		s.Fill(utils.Gray(WordBrightness(f.Count, i)))
		s.Text(word, config.LoadingWordsX, config.LoadingWordsY+float64(i)*spacing)
	}
}

// DrawEmblemAtPointer is the default cursor animation.
func DrawEmblemAtPointer(f Frame) {
	DrawEmblem(f.Surface, f.X, f.Y, f.Count)
}
