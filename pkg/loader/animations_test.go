package loader

import (
	"image/color"
	"math"
	"testing"

	"github.com/decker502/loadinganim/pkg/gfx"
	"github.com/decker502/loadinganim/pkg/gfx/gfxtest"
	"github.com/decker502/loadinganim/pkg/utils"
)

// TestWordBrightnessRange verifies every line stays within [50, 140].
func TestWordBrightnessRange(t *testing.T) {
	for line := 0; line < 8; line++ {
		for frame := 0; frame <= 5000; frame++ {
			b := WordBrightness(frame, line)
			if b < 50-1e-9 || b > 140+1e-9 {
				t.Fatalf("WordBrightness(%d, %d) = %f out of range", frame, line, b)
			}
		}
	}
}

// TestWordBrightnessContinuous verifies consecutive frames never jump.
// The wave moves at most 0.05 rad per frame, so the grey level moves at most 45*0.05.
func TestWordBrightnessContinuous(t *testing.T) {
	const maxStep = 45*0.05 + 1e-9
	for line := 0; line < 4; line++ {
		prev := WordBrightness(0, line)
		for frame := 1; frame <= 2000; frame++ {
			b := WordBrightness(frame, line)
			if math.Abs(b-prev) > maxStep {
				t.Fatalf("line %d jumped %f between frames %d and %d", line, b-prev, frame-1, frame)
			}
			prev = b
		}
	}
}

// TestWordBrightnessStagger verifies lines are phase-shifted by 0.5 rad.
func TestWordBrightnessStagger(t *testing.T) {
	// 第 0 行在 frame 10 的相位等于第 1 行在 frame 20 的相位
	if a, b := WordBrightness(10, 0), WordBrightness(20, 1); math.Abs(a-b) > 1e-9 {
		t.Errorf("Expected equal brightness for equal phase, got %f and %f", a, b)
	}
	if got := WordBrightness(0, 0); math.Abs(got-95) > 1e-9 {
		t.Errorf("Expected mid grey 95 at phase 0, got %f", got)
	}
}

// TestDrawLoadingWordsLayout verifies alignment, size, positions and colours.
func TestDrawLoadingWordsLayout(t *testing.T) {
	s := newTickSurface()
	DrawLoadingWords(Frame{Surface: s, Count: 40, Words: []string{"A", "B", "C"}})

	var texts []gfxtest.Call
	var fills []color.Color
	sawAlign, sawSize := false, false
	for _, call := range s.Calls {
		switch call.Name {
		case "text":
			texts = append(texts, call)
		case "fill":
			fills = append(fills, call.Color)
		case "textAlign":
			sawAlign = call.Args[0] == float64(gfx.AlignLeft) && call.Args[1] == float64(gfx.AlignTop)
		case "textSize":
			sawSize = call.Args[0] == 20
		}
	}

	if !sawAlign || !sawSize {
		t.Error("Expected left/top alignment and size 20")
	}
	if len(texts) != 3 || len(fills) != 3 {
		t.Fatalf("Expected 3 texts and fills, got %d and %d", len(texts), len(fills))
	}
	for i, call := range texts {
		wantY := 20 + float64(i)*28
		if call.Args[0] != 20 || math.Abs(call.Args[1]-wantY) > 1e-9 {
			t.Errorf("line %d drawn at (%.1f,%.1f), want (20,%.1f)", i, call.Args[0], call.Args[1], wantY)
		}
		if want := utils.Gray(WordBrightness(40, i)); fills[i] != want {
			t.Errorf("line %d fill %v, want %v", i, fills[i], want)
		}
	}
}

// TestDrawEmblemTransform verifies the emblem transform sequence and balance.
func TestDrawEmblemTransform(t *testing.T) {
	s := newTickSurface()
	DrawEmblem(s, 50, 60, 10)

	want := []string{"push", "translate", "scale", "rotate", "translate", "noStroke", "fill", "polygon", "pop"}
	got := s.names(0)
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("call %d = %s, want %s", i, got[i], want[i])
		}
	}
	if s.Depth != 0 {
		t.Errorf("Expected balanced push/pop, depth=%d", s.Depth)
	}

	calls := s.At(0)
	if calls[2].Args[0] != 0.75 {
		t.Errorf("Expected scale 0.75, got %v", calls[2].Args)
	}
	if math.Abs(calls[3].Args[0]-utils.Radians(65)) > 1e-12 {
		t.Errorf("Expected rotation of 65 degrees at frame 10, got %f rad", calls[3].Args[0])
	}
	if calls[4].Args[0] != -14 || calls[4].Args[1] != -14 {
		t.Errorf("Expected re-centre by (-14,-14), got %v", calls[4].Args)
	}
	if calls[6].Color != (color.RGBA{0xED, 0x22, 0x5D, 0xFF}) {
		t.Errorf("Unexpected emblem colour %v", calls[6].Color)
	}
	if len(calls[7].Args) != 2*len(EmblemVertices) {
		t.Errorf("Expected %d vertices, got %d coordinates", len(EmblemVertices), len(calls[7].Args))
	}
}

// TestEmblemAngleProportional verifies the rotation grows linearly with the frame count.
func TestEmblemAngleProportional(t *testing.T) {
	for _, frame := range []int{0, 1, 7, 100} {
		want := float64(frame) * 6.5 * math.Pi / 180
		if got := EmblemAngle(frame); math.Abs(got-want) > 1e-12 {
			t.Errorf("EmblemAngle(%d) = %f, want %f", frame, got, want)
		}
	}
}
