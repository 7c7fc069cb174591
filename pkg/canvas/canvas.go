// Package canvas implements gfx.Surface on a persistent ebiten offscreen image.
//
// The canvas keeps its pixels between frames, like a sketchbook page: what
// the loading animation or the sketch draws stays until it is cleared or
// painted over. The game's Draw blits the canvas to the screen.
package canvas

import (
	"image"
	"image/color"
	"math"

	"github.com/decker502/loadinganim/pkg/gfx"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var _ gfx.Surface = (*Canvas)(nil)

// ellipseSegments 椭圆近似使用的线段数
const ellipseSegments = 64

// style 当前绘制样式
type style struct {
	fill     color.Color
	fillOn   bool
	stroke   color.Color
	strokeOn bool
	weight   float64
	textSize float64
	alignH   gfx.Align
	alignV   gfx.Align
}

// state 可被 Push/Pop 保存的绘制状态
type state struct {
	style style
	geoM  ebiten.GeoM
}

func defaultState() state {
	return state{
		style: style{
			fill:     color.White,
			fillOn:   true,
			stroke:   color.Black,
			strokeOn: true,
			weight:   1,
			textSize: 12,
			alignH:   gfx.AlignLeft,
			alignV:   gfx.AlignBaseline,
		},
	}
}

// Canvas 基于 ebiten 离屏图像的绘制表面
//
// Canvas 不是并发安全的，只能在游戏循环线程上使用。
type Canvas struct {
	img    *ebiten.Image
	width  int
	height int
	source *text.GoTextFaceSource

	cur   state
	stack []state

	// whiteSubImage 用于 DrawTriangles 的纯白纹理，首次绘制时创建
	whiteSubImage *ebiten.Image
}

// New 创建指定尺寸的画布
// source 为 nil 时 Text 不绘制任何内容，TextWidth 返回 0
func New(width, height int, source *text.GoTextFaceSource) *Canvas {
	return &Canvas{
		img:    ebiten.NewImage(width, height),
		width:  width,
		height: height,
		source: source,
		cur:    defaultState(),
	}
}

// Image 返回底层的离屏图像
func (c *Canvas) Image() *ebiten.Image {
	return c.img
}

// Size 实现 gfx.Surface
func (c *Canvas) Size() (float64, float64) {
	return float64(c.width), float64(c.height)
}

// Clear 实现 gfx.Surface
func (c *Canvas) Clear() {
	c.img.Clear()
}

// Background 实现 gfx.Surface
func (c *Canvas) Background(clr color.Color) {
	c.img.Fill(clr)
}

func (c *Canvas) Fill(clr color.Color) {
	c.cur.style.fill = clr
	c.cur.style.fillOn = true
}

func (c *Canvas) NoFill() {
	c.cur.style.fillOn = false
}

func (c *Canvas) Stroke(clr color.Color) {
	c.cur.style.stroke = clr
	c.cur.style.strokeOn = true
}

func (c *Canvas) NoStroke() {
	c.cur.style.strokeOn = false
}

func (c *Canvas) StrokeWeight(w float64) {
	c.cur.style.weight = w
}

// Push 保存当前样式与变换
func (c *Canvas) Push() {
	c.stack = append(c.stack, c.cur)
}

// Pop 恢复最近一次 Push 保存的状态；栈为空时不做任何事
func (c *Canvas) Pop() {
	if len(c.stack) == 0 {
		return
	}
	c.cur = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Reset 丢弃所有未配对的 Push，恢复到最外层的状态
func (c *Canvas) Reset() {
	if len(c.stack) > 0 {
		c.cur = c.stack[0]
	}
	c.stack = nil
}

// Depth 返回当前 Push 栈深度
func (c *Canvas) Depth() int {
	return len(c.stack)
}

// prepend 让 m 先于当前变换作用于后续坐标
func (c *Canvas) prepend(m ebiten.GeoM) {
	m.Concat(c.cur.geoM)
	c.cur.geoM = m
}

func (c *Canvas) Translate(x, y float64) {
	var m ebiten.GeoM
	m.Translate(x, y)
	c.prepend(m)
}

func (c *Canvas) Rotate(angle float64) {
	var m ebiten.GeoM
	m.Rotate(angle)
	c.prepend(m)
}

func (c *Canvas) Scale(s float64) {
	var m ebiten.GeoM
	m.Scale(s, s)
	c.prepend(m)
}

// scaleFactor 返回当前变换的平均缩放，用于描边宽度
func (c *Canvas) scaleFactor() float64 {
	a := c.cur.geoM.Element(0, 0)
	b := c.cur.geoM.Element(0, 1)
	cc := c.cur.geoM.Element(1, 0)
	d := c.cur.geoM.Element(1, 1)
	return math.Sqrt(math.Abs(a*d - b*cc))
}

// Polygon 实现 gfx.Surface
func (c *Canvas) Polygon(points []gfx.Point) {
	if len(points) < 2 {
		return
	}

	var path vector.Path
	for i, p := range points {
		x, y := c.cur.geoM.Apply(p.X, p.Y)
		if i == 0 {
			path.MoveTo(float32(x), float32(y))
		} else {
			path.LineTo(float32(x), float32(y))
		}
	}
	path.Close()

	c.drawPath(&path, len(points) >= 3)
}

// Ellipse 实现 gfx.Surface
func (c *Canvas) Ellipse(cx, cy, w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	points := make([]gfx.Point, ellipseSegments)
	for i := range points {
		a := 2 * math.Pi * float64(i) / ellipseSegments
		points[i] = gfx.Point{
			X: cx + math.Cos(a)*w/2,
			Y: cy + math.Sin(a)*h/2,
		}
	}
	c.Polygon(points)
}

// Circle 实现 gfx.Surface
func (c *Canvas) Circle(cx, cy, d float64) {
	c.Ellipse(cx, cy, d, d)
}

func (c *Canvas) drawPath(path *vector.Path, fillable bool) {
	st := c.cur.style

	if st.fillOn && fillable {
		vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
		c.drawTriangles(vs, is, st.fill, ebiten.FillRuleNonZero)
	}

	if st.strokeOn && st.weight > 0 {
		op := &vector.StrokeOptions{
			Width:    float32(st.weight * c.scaleFactor()),
			LineJoin: vector.LineJoinRound,
		}
		vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, op)
		c.drawTriangles(vs, is, st.stroke, ebiten.FillRuleFillAll)
	}
}

func (c *Canvas) drawTriangles(vs []ebiten.Vertex, is []uint16, clr color.Color, rule ebiten.FillRule) {
	if len(is) == 0 {
		return
	}
	if c.whiteSubImage == nil {
		white := ebiten.NewImage(3, 3)
		white.Fill(color.White)
		c.whiteSubImage = white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}

	// RGBA() 返回预乘 alpha 的分量
	r, g, b, a := clr.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}

	op := &ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
		AntiAlias:      true,
		FillRule:       rule,
	}
	c.img.DrawTriangles(vs, is, c.whiteSubImage, op)
}
