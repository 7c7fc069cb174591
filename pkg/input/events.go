// Package input 提供指针输入的轮询与事件分发
//
// ebiten 只提供逐帧轮询的光标/触摸位置，本包把轮询结果转换为
// 进入（enter）、离开（leave）、移动（move）三类事件，并通过 Target
// 分发给已注册的监听器。
package input

// EventType 指针事件类型
type EventType int

const (
	// PointerEnter 指针进入绘制区域
	PointerEnter EventType = iota
	// PointerLeave 指针离开绘制区域
	PointerLeave
	// PointerMove 指针在绘制区域内移动
	PointerMove
)

// String returns the DOM-style name of the event type.
func (t EventType) String() string {
	switch t {
	case PointerEnter:
		return "pointerenter"
	case PointerLeave:
		return "pointerleave"
	case PointerMove:
		return "pointermove"
	default:
		return "unknown"
	}
}

// Event 一次指针事件
type Event struct {
	Type EventType
	// X, Y 事件发生时的指针位置（画布坐标）
	X, Y float64
}

// Listener 事件监听函数
type Listener func(ev Event)

// ListenerOptions 监听器注册选项
type ListenerOptions struct {
	// Once 为 true 时，监听器在第一次被调用后自动注销
	Once bool
}

type registration struct {
	listener Listener
	once     bool
	removed  bool
}

// Target 事件目标
//
// 与 DOM 的 EventTarget 类似：同一类型的监听器按注册顺序调用；
// 在分发过程中注册的监听器不会收到当前事件；在分发过程中注销的
// 监听器（尚未被调用时）也不会再被调用。
//
// Target 不是并发安全的，所有调用必须在游戏循环线程上进行。
type Target struct {
	listeners map[EventType][]*registration
}

// NewTarget 创建空的事件目标
func NewTarget() *Target {
	return &Target{
		listeners: make(map[EventType][]*registration),
	}
}

// AddEventListener 注册监听器
//
// 返回的 remove 函数用于注销该监听器，可重复调用。
func (t *Target) AddEventListener(typ EventType, fn Listener, opts ListenerOptions) (remove func()) {
	reg := &registration{listener: fn, once: opts.Once}
	t.listeners[typ] = append(t.listeners[typ], reg)
	return func() {
		t.remove(typ, reg)
	}
}

func (t *Target) remove(typ EventType, reg *registration) {
	if reg.removed {
		return
	}
	reg.removed = true

	regs := t.listeners[typ]
	for i, r := range regs {
		if r == reg {
			// 复制出新切片，避免影响正在进行的分发
			next := make([]*registration, 0, len(regs)-1)
			next = append(next, regs[:i]...)
			next = append(next, regs[i+1:]...)
			t.listeners[typ] = next
			return
		}
	}
}

// Dispatch 将事件分发给该类型的所有监听器
func (t *Target) Dispatch(ev Event) {
	// 快照：分发期间的注册/注销不改变本次遍历
	regs := t.listeners[ev.Type]
	for _, reg := range regs {
		if reg.removed {
			continue
		}
		if reg.once {
			t.remove(ev.Type, reg)
		}
		reg.listener(ev)
	}
}

// ListenerCount 返回某类型当前已注册的监听器数量
func (t *Target) ListenerCount(typ EventType) int {
	return len(t.listeners[typ])
}
