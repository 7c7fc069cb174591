package demos

import (
	"context"
	"image/color"
	"strings"

	"github.com/decker502/loadinganim/pkg/config"
	"github.com/decker502/loadinganim/pkg/gfx"
	"github.com/decker502/loadinganim/pkg/host"
	"github.com/decker502/loadinganim/pkg/loader"
	"github.com/decker502/loadinganim/pkg/utils"
)

// OverrideWords are the words of the override demo, one language each.
var OverrideWords = []string{
	"Loading...",
	"Cargando..",
	"로딩중...",
	"読み込み中...",
	"...يتم التحميل",
	"Laden...",
}

const (
	// typewriterTicksPerChar 每个字符出现所需的 tick 数
	typewriterTicksPerChar = 8

	// caretBlinkTicks 光标闪烁半周期
	caretBlinkTicks    = 30
	typewriterFontSize = 13

	triangleSize = 10
	ringRadius   = 100
	ringDiameter = 50
)

var (
	ringColor     = color.RGBA{R: 100, G: 200, B: 255, A: 255}
	triangleColor = utils.MustParseColor(config.LogoColor)
)

// OverrideDefaults is the override demo's config when no config file is
// found: the pointer logo is on and the words are OverrideWords.
func OverrideDefaults() *config.LoaderConfig {
	cfg := config.DefaultLoaderConfig()
	cfg.Window.Title = "Loading Animation (override)"
	cfg.Animation.UseLogo = true
	cfg.Animation.Words = append([]string(nil), OverrideWords...)
	return cfg
}

// Override replaces all three animation slots of the loading animation.
type Override struct {
	settings Settings
}

// NewOverride creates the override demo.
func NewOverride(settings Settings) *Override {
	return &Override{settings: settings}
}

func (o *Override) Setup(h *host.Host) error {
	anim := h.NewLoadingAnimation()
	anim.BackgroundAnimation = RingBackground
	anim.CursorAnimation = TriangleCursor
	anim.LoadingWordsAnimation = TypewriterWords
	anim.Start(o.settings.Options)
	return nil
}

func (o *Override) Load(ctx context.Context) error {
	return fakeLoad(ctx, o.settings.LoadDuration)
}

func (o *Override) Ready(h *host.Host) {
	drawPage(h.Surface())
}

func (o *Override) Draw(h *host.Host) {
	drawPointerCircle(h)
}

// RingBackground paints a dark background with a circle orbiting the centre.
func RingBackground(f loader.Frame) {
	s := f.Surface
	w, h := s.Size()

	s.Background(utils.Gray(20))
	s.Push()
	defer s.Pop()
	s.Translate(w/2, h/2)
	s.Rotate(float64(f.Count) / 2)
	s.NoFill()
	s.Stroke(ringColor)
	s.StrokeWeight(4)
	s.Ellipse(ringRadius, 0, ringDiameter, ringDiameter)
}

// TriangleCursor draws a spinning triangle at the pointer.
func TriangleCursor(f loader.Frame) {
	s := f.Surface

	s.Push()
	defer s.Pop()
	s.Translate(f.X, f.Y)
	s.Scale(1)
	s.Rotate(utils.Radians(float64(f.Count) * config.LogoDegreesPerTick))
	s.Fill(triangleColor)
	s.NoStroke()
	s.Polygon([]gfx.Point{
		{X: 0, Y: -triangleSize},
		{X: triangleSize * 0.866, Y: triangleSize / 2},
		{X: -triangleSize * 0.866, Y: triangleSize / 2},
	})
}

// TypewriterText returns the part of words typed after frame ticks and
// whether the blinking caret is shown.
func TypewriterText(words []string, frame int) (string, bool) {
	full := []rune(strings.Join(words, " "))
	n := min(max(frame/typewriterTicksPerChar, 0), len(full))
	caret := (frame/caretBlinkTicks)%2 == 0 && n < len(full)
	return string(full[:n]), caret
}

// TypewriterWords types the loading words out one character at a time.
func TypewriterWords(f loader.Frame) {
	s := f.Surface

	s.TextAlign(gfx.AlignLeft, gfx.AlignTop)
	s.TextSize(typewriterFontSize)
	s.Fill(utils.Gray(255))

	typed, caret := TypewriterText(f.Words, f.Count)
	s.Text(typed, config.LoadingWordsX, config.LoadingWordsY)
	if caret {
		s.Text("_", config.LoadingWordsX+s.TextWidth(typed), config.LoadingWordsY)
	}
}
