package input

import (
	"github.com/decker502/loadinganim/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// PointerSource 提供当前帧的指针位置
//
// ok 为 false 表示当前没有可用的指针（窗口失去焦点且没有触摸）。
type PointerSource interface {
	PointerPosition() (x, y int, ok bool)
}

// EbitenSource 从 ebiten 读取指针位置
// 优先使用触摸位置（移动设备），其次使用鼠标位置（桌面设备）
// 只有触摸的平台上，没有手指按下即表示没有指针
type EbitenSource struct{}

// PointerPosition 实现 PointerSource
func (EbitenSource) PointerPosition() (int, int, bool) {
	// 首先检查触摸输入
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return x, y, true
	}
	if utils.TouchOnly() {
		return 0, 0, false
	}

	// 窗口失去焦点时，ebiten 保留最后的光标位置，视为指针已离开
	if !ebiten.IsFocused() {
		return 0, 0, false
	}

	x, y := ebiten.CursorPosition()
	return x, y, true
}

// PointerTracker 把逐帧轮询的指针位置转换为 enter/leave/move 事件
//
// 启动后的第一次观测只建立基准位置，不算作移动：
// 指针停在画布上不动时不会产生 PointerMove。
type PointerTracker struct {
	target *Target
	source PointerSource

	inside       bool
	primed       bool
	lastX, lastY int
}

// NewPointerTracker 创建指针跟踪器
// source 为 nil 时使用 EbitenSource
func NewPointerTracker(target *Target, source PointerSource) *PointerTracker {
	if source == nil {
		source = EbitenSource{}
	}
	return &PointerTracker{
		target: target,
		source: source,
	}
}

// Poll 读取一次指针状态并分发产生的事件（每帧调用一次）
// width, height 为绘制区域尺寸
func (pt *PointerTracker) Poll(width, height int) {
	x, y, ok := pt.source.PointerPosition()

	inside := ok && x >= 0 && y >= 0 && x < width && y < height
	moved := ok && pt.primed && (x != pt.lastX || y != pt.lastY)
	if ok {
		pt.lastX, pt.lastY = x, y
		pt.primed = true
	}

	ev := Event{X: float64(pt.lastX), Y: float64(pt.lastY)}

	switch {
	case inside && !pt.inside:
		pt.inside = true
		ev.Type = PointerEnter
		pt.target.Dispatch(ev)
	case !inside && pt.inside:
		pt.inside = false
		ev.Type = PointerLeave
		pt.target.Dispatch(ev)
	}

	if inside && moved {
		ev.Type = PointerMove
		pt.target.Dispatch(ev)
	}
}

// Position 返回最后一次观测到的指针位置
func (pt *PointerTracker) Position() (x, y int) {
	return pt.lastX, pt.lastY
}

// Inside 返回指针当前是否在绘制区域内
func (pt *PointerTracker) Inside() bool {
	return pt.inside
}
