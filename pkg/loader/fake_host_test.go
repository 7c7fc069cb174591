package loader

import (
	"time"

	"github.com/decker502/loadinganim/pkg/config"
	"github.com/decker502/loadinganim/pkg/gfx"
	"github.com/decker502/loadinganim/pkg/gfx/gfxtest"
	"github.com/decker502/loadinganim/pkg/input"
	"github.com/decker502/loadinganim/pkg/schedule"
)

// tickSurface 以 tick 为 Frame 标记调用的 gfxtest.Recorder
type tickSurface struct {
	*gfxtest.Recorder
}

func newTickSurface() *tickSurface {
	return &tickSurface{Recorder: gfxtest.NewRecorder(400, 400)}
}

// count 统计某类调用在某个 tick 内的次数
func (s *tickSurface) count(tick int, name string) int {
	n := 0
	for _, c := range s.At(tick) {
		if c.Name == name {
			n++
		}
	}
	return n
}

// names 返回某个 tick 内调用名称序列
func (s *tickSurface) names(tick int) []string {
	var out []string
	for _, c := range s.At(tick) {
		out = append(out, c.Name)
	}
	return out
}

// fakeHost 手动驱动的 Host 实现
type fakeHost struct {
	surface       *tickSurface
	events        *input.Target
	queue         *schedule.Queue
	now           time.Time
	pointerX      float64
	pointerY      float64
	setupDone     bool
	cursorVisible bool
	cursorChanges []bool
}

func newFakeHost() *fakeHost {
	h := &fakeHost{
		surface:       newTickSurface(),
		events:        input.NewTarget(),
		now:           time.Unix(0, 0),
		cursorVisible: true,
	}
	h.queue = schedule.NewQueue(func() time.Time { return h.now }).WithTolerance(config.TickInterval / 2)
	return h
}

func (h *fakeHost) Surface() gfx.Surface { return h.surface }
func (h *fakeHost) Events() *input.Target { return h.events }
func (h *fakeHost) SetupDone() bool { return h.setupDone }
func (h *fakeHost) PointerPosition() (float64, float64) {
	return h.pointerX, h.pointerY
}

func (h *fakeHost) AfterFunc(d time.Duration, fn func()) func() {
	return h.queue.AfterFunc(d, fn)
}

func (h *fakeHost) SetCursorVisible(visible bool) {
	h.cursorVisible = visible
	h.cursorChanges = append(h.cursorChanges, visible)
}

// step 推进一个 tick 间隔并运行到期任务
// 返回本次运行的任务数
func (h *fakeHost) step() int {
	h.surface.Frame++
	h.now = h.now.Add(config.TickInterval)
	return h.queue.RunDue()
}

// stepN 推进 n 个 tick
func (h *fakeHost) stepN(n int) {
	for i := 0; i < n; i++ {
		h.step()
	}
}

// start 以 tick 1 记录 Start 中同步执行的第一帧
func (h *fakeHost) start(c *Controller, opts Options) {
	h.surface.Frame = 1
	c.Start(opts)
}

func (h *fakeHost) dispatch(typ input.EventType) {
	h.events.Dispatch(input.Event{Type: typ, X: h.pointerX, Y: h.pointerY})
}
