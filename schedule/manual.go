package schedule

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Manual is a [Scheduler] driven by a virtual clock.
//
// Callbacks never run on their own; [Manual.Advance] moves the clock and runs
// every callback that has come due, in due-time order with ties broken by
// scheduling order. Callbacks run on the goroutine calling Advance, outside
// the scheduler's lock, so they may schedule further tasks.
//
// Intended for use in tests.
type Manual struct {
	mu    sync.Mutex
	now   time.Duration
	seq   uint64
	tasks []*manualTask
}

var _ Scheduler = (*Manual)(nil)

// NewManual returns a Manual scheduler with its clock at zero.
func NewManual() *Manual {
	return &Manual{}
}

// AfterFunc implements [Scheduler].
func (m *Manual) AfterFunc(d time.Duration, fn func()) Task {
	if d < 0 {
		d = 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	t := &manualTask{
		id:    uuid.NewString(),
		due:   m.now + d,
		seq:   m.seq,
		fn:    fn,
		owner: m,
	}
	m.tasks = append(m.tasks, t)
	return t
}

// Advance moves the clock forward by d and runs every task due by then.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now + d
	m.mu.Unlock()

	for {
		m.mu.Lock()
		next := m.popDue(target)
		if next == nil {
			m.now = target
			m.mu.Unlock()
			return
		}
		m.now = next.due
		m.mu.Unlock()

		next.fn()
	}
}

// Elapsed returns the virtual time since the scheduler was created.
func (m *Manual) Elapsed() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Pending returns the number of tasks that have neither run nor been stopped.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tasks)
}

// popDue removes and returns the earliest task due at or before target.
// Caller holds m.mu.
func (m *Manual) popDue(target time.Duration) *manualTask {
	idx := -1
	for i, t := range m.tasks {
		if t.due > target {
			continue
		}
		if idx == -1 || t.due < m.tasks[idx].due ||
			(t.due == m.tasks[idx].due && t.seq < m.tasks[idx].seq) {
			idx = i
		}
	}
	if idx == -1 {
		return nil
	}
	t := m.tasks[idx]
	m.tasks = append(m.tasks[:idx], m.tasks[idx+1:]...)
	return t
}

func (m *Manual) remove(target *manualTask) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, t := range m.tasks {
		if t == target {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return true
		}
	}
	return false
}

type manualTask struct {
	id    string
	due   time.Duration
	seq   uint64
	fn    func()
	owner *Manual
}

func (t *manualTask) ID() string { return t.id }

func (t *manualTask) Stop() bool { return t.owner.remove(t) }
