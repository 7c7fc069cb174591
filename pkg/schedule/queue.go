// Package schedule provides a single-threaded delayed task queue.
//
// A Queue never runs anything on its own: the owner pumps it once per game
// tick with RunDue, so every task runs on the game loop goroutine.
package schedule

import (
	"container/heap"
	"time"
)

type task struct {
	due   time.Time
	seq   uint64
	fn    func()
	done  bool
	index int
}

type taskHeap []*task

func (h taskHeap) Len() int { return len(h) }

func (h taskHeap) Less(i, j int) bool {
	if h[i].due.Equal(h[j].due) {
		return h[i].seq < h[j].seq
	}
	return h[i].due.Before(h[j].due)
}

func (h taskHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *taskHeap) Push(x any) {
	t := x.(*task)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}

// Queue holds tasks ordered by due time, then by scheduling order.
//
// Queue is not safe for concurrent use.
type Queue struct {
	now       func() time.Time
	tolerance time.Duration
	tasks     taskHeap
	seq       uint64
}

// NewQueue creates a queue reading time from now.
// A nil now uses time.Now.
func NewQueue(now func() time.Time) *Queue {
	if now == nil {
		now = time.Now
	}
	return &Queue{now: now}
}

// WithTolerance lets RunDue run tasks that fall due up to d after the pump.
//
// A queue pumped at a fixed frame rate should use half a frame: pumps that
// arrive a little early because of frame jitter then still run a task
// scheduled one frame ahead, instead of holding it for a whole extra frame.
func (q *Queue) WithTolerance(d time.Duration) *Queue {
	q.tolerance = max(d, 0)
	return q
}

// AfterFunc schedules fn to run on the first RunDue at or after d from now.
// The returned cancel func drops the task if it has not run yet.
func (q *Queue) AfterFunc(d time.Duration, fn func()) (cancel func()) {
	q.seq++
	t := &task{
		due: q.now().Add(d),
		seq: q.seq,
		fn:  fn,
	}
	heap.Push(&q.tasks, t)

	return func() {
		if t.done {
			return
		}
		t.done = true
		if t.index >= 0 {
			heap.Remove(&q.tasks, t.index)
		}
	}
}

// RunDue runs every task due by now plus the tolerance and returns how many ran.
//
// The due set is fixed when RunDue starts: tasks scheduled by a running
// task wait for the next RunDue even when their delay is zero, so a
// self-rescheduling task runs at most once per pump.
func (q *Queue) RunDue() int {
	now := q.now().Add(q.tolerance)

	var due []*task
	for q.tasks.Len() > 0 && !q.tasks[0].due.After(now) {
		due = append(due, heap.Pop(&q.tasks).(*task))
	}

	ran := 0
	for _, t := range due {
		// 可能被之前运行的任务取消
		if t.done {
			continue
		}
		t.done = true
		t.fn()
		ran++
	}
	return ran
}

// Len returns the number of pending tasks.
func (q *Queue) Len() int {
	return q.tasks.Len()
}
