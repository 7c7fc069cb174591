// Package gfx defines the immediate-mode 2-D drawing contract shared by the
// loading animation and the sketch host.
//
// The contract follows the classic sketchbook model: a persistent surface,
// a current style (fill, stroke, text) and a current transform, both saved
// and restored by Push/Pop.
package gfx

import "image/color"

// Point is a 2-D coordinate in surface space.
type Point struct {
	X float64
	Y float64
}

// Align selects how text is anchored at its draw position.
type Align int

const (
	// AlignLeft anchors text at its left edge (horizontal).
	AlignLeft Align = iota
	// AlignCenter anchors text at its horizontal centre.
	AlignCenter
	// AlignRight anchors text at its right edge.
	AlignRight
	// AlignTop anchors text at the top of its line box (vertical).
	AlignTop
	// AlignMiddle anchors text at the vertical centre of its line box.
	AlignMiddle
	// AlignBottom anchors text at the bottom of its line box.
	AlignBottom
	// AlignBaseline anchors text at its baseline.
	AlignBaseline
)

// Surface is a drawing surface with immediate-mode primitives.
//
// Coordinates passed to shape and text primitives go through the current
// transform. Background and Clear always cover the whole surface.
type Surface interface {
	// Size returns the surface size in pixels.
	Size() (width, height float64)

	// Clear makes every pixel transparent.
	Clear()
	// Background fills every pixel with c.
	Background(c color.Color)

	Fill(c color.Color)
	NoFill()
	Stroke(c color.Color)
	NoStroke()
	StrokeWeight(w float64)

	TextSize(size float64)
	TextAlign(horizontal, vertical Align)
	// Text draws s with the current fill colour.
	Text(s string, x, y float64)
	// TextWidth returns the advance width of s at the current text size.
	TextWidth(s string) float64

	// Push saves the current style and transform.
	Push()
	// Pop restores the most recently pushed style and transform.
	Pop()
	Translate(x, y float64)
	// Rotate rotates by angle radians, clockwise on screen.
	Rotate(angle float64)
	Scale(s float64)

	// Polygon draws a closed shape through points.
	Polygon(points []Point)
	// Ellipse draws an ellipse centred at (cx, cy) with the given diameters.
	Ellipse(cx, cy, w, h float64)
	// Circle draws a circle centred at (cx, cy) with diameter d.
	Circle(cx, cy, d float64)
}
