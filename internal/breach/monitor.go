package breach

import (
	"context"
	"sync"
	"time"
)

// DefaultDebounce is the quiet period before a submitted credential is checked.
const DefaultDebounce = 300 * time.Millisecond

// Monitor tracks the breach state of the latest credential. Rapid submissions
// are coalesced, and a check that is superseded, disabled or closed has its
// context cancelled and its result discarded.
type Monitor struct {
	checker  Checker
	debounce time.Duration
	onChange func(Result)

	mu         sync.Mutex
	enabled    bool
	closed     bool
	seq        uint64
	timer      *time.Timer
	cancel     context.CancelFunc
	credential string
	current    Result
}

// NewMonitor creates an enabled Monitor. onChange, if non-nil, is called with
// every state transition in order. It runs while the Monitor's lock is held
// and must not call back into the Monitor.
func NewMonitor(checker Checker, debounce time.Duration, onChange func(Result)) *Monitor {
	return &Monitor{
		checker:  checker,
		debounce: debounce,
		onChange: onChange,
		enabled:  true,
	}
}

// Submit replaces the tracked credential. Any pending or in-flight check is
// abandoned. An empty credential or a disabled Monitor moves to StateIdle.
func (m *Monitor) Submit(credential string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}

	m.credential = credential
	m.scheduleLocked()
}

// SetEnabled toggles checking. Disabling cancels any pending check and
// moves to StateIdle. Enabling checks the tracked credential, if any.
func (m *Monitor) SetEnabled(enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed || m.enabled == enabled {
		return
	}

	m.enabled = enabled
	m.scheduleLocked()
}

// Result returns the current state.
func (m *Monitor) Result() Result {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Close cancels outstanding work. Later calls to Submit are ignored.
func (m *Monitor) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopLocked()
	m.seq++
	m.closed = true
}

// scheduleLocked abandons outstanding work and arms a debounced check of the
// tracked credential.
func (m *Monitor) scheduleLocked() {
	m.stopLocked()
	m.seq++
	if !m.enabled || m.credential == "" {
		m.setLocked(idle())
		return
	}

	seq, credential := m.seq, m.credential
	m.setLocked(checking())
	m.timer = time.AfterFunc(m.debounce, func() {
		m.run(seq, credential)
	})
}

func (m *Monitor) run(seq uint64, credential string) {
	m.mu.Lock()
	if seq != m.seq {
		m.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.mu.Unlock()

	res := m.checker.Check(ctx, credential)
	cancel()

	m.mu.Lock()
	defer m.mu.Unlock()
	if seq != m.seq {
		return
	}
	m.cancel = nil
	m.timer = nil
	m.setLocked(res)
}

func (m *Monitor) stopLocked() {
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

func (m *Monitor) setLocked(r Result) {
	m.current = r
	if m.onChange != nil {
		m.onChange(r)
	}
}
