package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"selectkit/internal/selection"
)

// autoScrollMsg is delivered by tea.Tick for a running tick task.
type autoScrollMsg struct {
	id int
}

// tickScheduler runs selection tasks on the Bubble Tea loop. Ticks are
// queued as commands and collected with drain after each Update, so task
// callbacks run on the UI goroutine.
type tickScheduler struct {
	nextID  int
	tasks   map[int]*tickTask
	pending []tea.Cmd
}

type tickTask struct {
	s     *tickScheduler
	id    int
	every time.Duration
	fn    func()
}

func newTickScheduler() *tickScheduler {
	return &tickScheduler{tasks: make(map[int]*tickTask)}
}

// Every implements selection.Scheduler.
func (s *tickScheduler) Every(d time.Duration, fn func()) selection.Ticker {
	s.nextID++
	t := &tickTask{s: s, id: s.nextID, every: d, fn: fn}
	s.tasks[t.id] = t
	s.schedule(t)
	return t
}

func (s *tickScheduler) schedule(t *tickTask) {
	id := t.id
	s.pending = append(s.pending, tea.Tick(t.every, func(time.Time) tea.Msg {
		return autoScrollMsg{id: id}
	}))
}

// handle runs the task behind msg and queues its next tick. Ticks of
// stopped tasks are dropped.
func (s *tickScheduler) handle(msg autoScrollMsg) {
	t, ok := s.tasks[msg.id]
	if !ok {
		return
	}
	t.fn()
	if _, running := s.tasks[msg.id]; running {
		s.schedule(t)
	}
}

// drain returns the queued tick commands.
func (s *tickScheduler) drain() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}

// running reports the number of live tasks.
func (s *tickScheduler) running() int { return len(s.tasks) }

// Stop implements selection.Ticker.
func (t *tickTask) Stop() { delete(t.s.tasks, t.id) }
