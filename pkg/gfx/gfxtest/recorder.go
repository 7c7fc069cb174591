// Package gfxtest provides a recording gfx.Surface for tests.
package gfxtest

import (
	"image/color"

	"github.com/decker502/loadinganim/pkg/gfx"
)

// Call is one recorded Surface method call.
type Call struct {
	Name  string
	Args  []float64
	Text  string
	Color color.Color
	// Frame is the recorder's Frame when the call was made.
	Frame int
}

// Recorder is a gfx.Surface that records every call instead of drawing.
// TextWidth reports CharWidth per byte.
type Recorder struct {
	Width     float64
	Height    float64
	CharWidth float64
	// Frame tags the calls that follow; tests bump it once per tick.
	Frame int

	Calls  []Call
	Depth  int
	Resets int
}

var _ gfx.Surface = (*Recorder)(nil)

// NewRecorder returns a recorder of the given size with 10px wide characters.
func NewRecorder(width, height float64) *Recorder {
	return &Recorder{Width: width, Height: height, CharWidth: 10}
}

func (r *Recorder) record(c Call) {
	c.Frame = r.Frame
	r.Calls = append(r.Calls, c)
}

func (r *Recorder) Size() (float64, float64) {
	return r.Width, r.Height
}

func (r *Recorder) Clear() {
	r.record(Call{Name: "clear"})
}

func (r *Recorder) Background(c color.Color) {
	r.record(Call{Name: "background", Color: c})
}

func (r *Recorder) Fill(c color.Color) {
	r.record(Call{Name: "fill", Color: c})
}

func (r *Recorder) NoFill() {
	r.record(Call{Name: "noFill"})
}

func (r *Recorder) Stroke(c color.Color) {
	r.record(Call{Name: "stroke", Color: c})
}

func (r *Recorder) NoStroke() {
	r.record(Call{Name: "noStroke"})
}

func (r *Recorder) StrokeWeight(w float64) {
	r.record(Call{Name: "strokeWeight", Args: []float64{w}})
}

func (r *Recorder) TextSize(size float64) {
	r.record(Call{Name: "textSize", Args: []float64{size}})
}

func (r *Recorder) TextAlign(h, v gfx.Align) {
	r.record(Call{Name: "textAlign", Args: []float64{float64(h), float64(v)}})
}

func (r *Recorder) Text(s string, x, y float64) {
	r.record(Call{Name: "text", Text: s, Args: []float64{x, y}})
}

func (r *Recorder) TextWidth(s string) float64 {
	return float64(len(s)) * r.CharWidth
}

func (r *Recorder) Push() {
	r.Depth++
	r.record(Call{Name: "push"})
}

func (r *Recorder) Pop() {
	r.Depth--
	r.record(Call{Name: "pop"})
}

func (r *Recorder) Translate(x, y float64) {
	r.record(Call{Name: "translate", Args: []float64{x, y}})
}

func (r *Recorder) Rotate(angle float64) {
	r.record(Call{Name: "rotate", Args: []float64{angle}})
}

func (r *Recorder) Scale(s float64) {
	r.record(Call{Name: "scale", Args: []float64{s}})
}

func (r *Recorder) Polygon(points []gfx.Point) {
	args := make([]float64, 0, 2*len(points))
	for _, p := range points {
		args = append(args, p.X, p.Y)
	}
	r.record(Call{Name: "polygon", Args: args})
}

func (r *Recorder) Ellipse(cx, cy, w, h float64) {
	r.record(Call{Name: "ellipse", Args: []float64{cx, cy, w, h}})
}

func (r *Recorder) Circle(cx, cy, d float64) {
	r.record(Call{Name: "circle", Args: []float64{cx, cy, d}})
}

// Reset drops any unbalanced Push.
func (r *Recorder) Reset() {
	r.Depth = 0
	r.Resets++
}

// Count returns how many calls named name were recorded.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Find returns the calls named name in order.
func (r *Recorder) Find(name string) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// At returns the calls tagged with frame in order.
func (r *Recorder) At(frame int) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Frame == frame {
			out = append(out, c)
		}
	}
	return out
}

// Names returns the names of all recorded calls in order.
func (r *Recorder) Names() []string {
	out := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		out[i] = c.Name
	}
	return out
}

// Forget drops the recorded calls but keeps the push depth.
func (r *Recorder) Forget() {
	r.Calls = nil
}
