// Package host 提供加载动画与 sketch 运行所需的宿主环境
//
// Host 把 ebiten 画布、指针事件、定时队列和"setup 完成"标志组合在一起，
// 实现 loader.Host。所有方法只能在游戏循环线程上调用。
package host

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/decker502/loadinganim/pkg/canvas"
	"github.com/decker502/loadinganim/pkg/config"
	"github.com/decker502/loadinganim/pkg/gfx"
	"github.com/decker502/loadinganim/pkg/input"
	"github.com/decker502/loadinganim/pkg/loader"
	"github.com/decker502/loadinganim/pkg/schedule"
	"github.com/hajimehoshi/ebiten/v2"
)

// Options 宿主创建参数
type Options struct {
	// Width, Height 画布尺寸（像素）
	Width  int
	Height int
	// FontPath TTF/OTF 字体路径，为空时使用内置 Go Regular
	FontPath string
	// LoadingBackground 默认背景动画的颜色，nil 时使用加载动画的默认灰色
	LoadingBackground color.Color

	// Surface 替换 ebiten 画布（测试或无窗口运行时使用）
	Surface gfx.Surface
	// Pointer 指针位置来源，nil 时读取 ebiten 光标/触摸
	Pointer input.PointerSource
	// Now 定时队列使用的时钟，nil 时使用 time.Now
	Now func() time.Time
	// Cursor 设置系统光标可见性，nil 时使用 ebiten.SetCursorMode
	Cursor func(visible bool)
}

// Host 实现 loader.Host
type Host struct {
	surface gfx.Surface
	canvas  *canvas.Canvas
	width   int
	height  int

	events  *input.Target
	tracker *input.PointerTracker
	queue   *schedule.Queue
	cursor  func(visible bool)

	loadingBackground color.Color
	animation         *loader.Controller

	setupDone     bool
	cursorVisible bool
}

var _ loader.Host = (*Host)(nil)

// New 创建宿主
func New(opts Options) (*Host, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", opts.Width, opts.Height)
	}

	h := &Host{
		surface:           opts.Surface,
		width:             opts.Width,
		height:            opts.Height,
		events:            input.NewTarget(),
		queue:             schedule.NewQueue(opts.Now).WithTolerance(config.TickInterval / 2),
		cursor:            opts.Cursor,
		loadingBackground: opts.LoadingBackground,
		cursorVisible:     true,
	}
	h.tracker = input.NewPointerTracker(h.events, opts.Pointer)

	if h.surface == nil {
		source, err := canvas.LoadFontSource(opts.FontPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load font: %w", err)
		}
		h.canvas = canvas.New(opts.Width, opts.Height, source)
		h.surface = h.canvas
	}
	if h.cursor == nil {
		h.cursor = setEbitenCursor
	}

	log.Printf("[Host] Created %dx%d host", opts.Width, opts.Height)
	return h, nil
}

func setEbitenCursor(visible bool) {
	if visible {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
		return
	}
	ebiten.SetCursorMode(ebiten.CursorModeHidden)
}

// NewLoadingAnimation 创建绑定到本宿主的加载动画
// 返回的控制器尚未启动，调用方可以先替换动画槽位再调用 Start
func (h *Host) NewLoadingAnimation() *loader.Controller {
	anim := loader.New(h)
	if h.loadingBackground != nil {
		anim.BackgroundColor = h.loadingBackground
	}
	h.animation = anim
	return anim
}

// LoadingAnimation 返回最近一次创建的加载动画，没有时返回 nil
func (h *Host) LoadingAnimation() *loader.Controller {
	return h.animation
}

// Surface 实现 loader.Host
func (h *Host) Surface() gfx.Surface {
	return h.surface
}

// Image 返回 ebiten 画布图像；使用自定义 Surface 时返回 nil
func (h *Host) Image() *ebiten.Image {
	if h.canvas == nil {
		return nil
	}
	return h.canvas.Image()
}

// Size 返回画布尺寸
func (h *Host) Size() (width, height int) {
	return h.width, h.height
}

// Events 实现 loader.Host
func (h *Host) Events() *input.Target {
	return h.events
}

// AfterFunc 实现 loader.Host
func (h *Host) AfterFunc(d time.Duration, fn func()) (cancel func()) {
	return h.queue.AfterFunc(d, fn)
}

// PointerPosition 实现 loader.Host
func (h *Host) PointerPosition() (float64, float64) {
	x, y := h.tracker.Position()
	return float64(x), float64(y)
}

// PointerInside 返回指针是否在画布内
func (h *Host) PointerInside() bool {
	return h.tracker.Inside()
}

// SetCursorVisible 实现 loader.Host
func (h *Host) SetCursorVisible(visible bool) {
	if h.cursorVisible == visible {
		return
	}
	h.cursorVisible = visible
	h.cursor(visible)
}

// CursorVisible 返回系统光标当前是否可见
func (h *Host) CursorVisible() bool {
	return h.cursorVisible
}

// SetupDone 实现 loader.Host
func (h *Host) SetupDone() bool {
	return h.setupDone
}

// MarkSetupDone 标记 sketch 的 setup 已完成
// 加载动画在下一次 tick 时停止
func (h *Host) MarkSetupDone() {
	if h.setupDone {
		return
	}
	h.setupDone = true
	log.Printf("[Host] Setup marked done")
}

// Poll 读取指针状态并分发 enter/leave/move 事件（每帧一次）
func (h *Host) Poll() {
	h.tracker.Poll(h.width, h.height)
}

// Pump 运行所有到期的定时任务（每帧一次）
func (h *Host) Pump() {
	h.queue.RunDue()
}

// Pending 返回尚未执行的定时任务数量
func (h *Host) Pending() int {
	return h.queue.Len()
}
