package canvas

import (
	"github.com/decker502/loadinganim/pkg/gfx"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

func (c *Canvas) TextSize(size float64) {
	if size > 0 {
		c.cur.style.textSize = size
	}
}

func (c *Canvas) TextAlign(horizontal, vertical gfx.Align) {
	c.cur.style.alignH = horizontal
	c.cur.style.alignV = vertical
}

func (c *Canvas) face() *text.GoTextFace {
	return &text.GoTextFace{
		Source:    c.source,
		Size:      c.cur.style.textSize,
		Direction: text.DirectionLeftToRight,
	}
}

// Text 以当前填充色绘制文字
func (c *Canvas) Text(s string, x, y float64) {
	if c.source == nil || s == "" || !c.cur.style.fillOn {
		return
	}

	face := c.face()
	op := &text.DrawOptions{}

	switch c.cur.style.alignH {
	case gfx.AlignCenter:
		op.LayoutOptions.PrimaryAlign = text.AlignCenter
	case gfx.AlignRight:
		op.LayoutOptions.PrimaryAlign = text.AlignEnd
	default:
		op.LayoutOptions.PrimaryAlign = text.AlignStart
	}

	switch c.cur.style.alignV {
	case gfx.AlignTop:
		op.LayoutOptions.SecondaryAlign = text.AlignStart
	case gfx.AlignMiddle:
		op.LayoutOptions.SecondaryAlign = text.AlignCenter
	case gfx.AlignBottom:
		op.LayoutOptions.SecondaryAlign = text.AlignEnd
	default:
		// 基线对齐：行框顶部位于基线之上 ascent 处
		op.LayoutOptions.SecondaryAlign = text.AlignStart
		y -= face.Metrics().HAscent
	}

	op.GeoM.Translate(x, y)
	op.GeoM.Concat(c.cur.geoM)
	op.ColorScale.ScaleWithColor(c.cur.style.fill)
	text.Draw(c.img, s, face, op)
}

// TextWidth 返回 s 在当前字号下的宽度
func (c *Canvas) TextWidth(s string) float64 {
	if c.source == nil || s == "" {
		return 0
	}
	w, _ := text.Measure(s, c.face(), 0)
	return w
}
