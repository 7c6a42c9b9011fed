package orchestration

import "sync"

// StopSignal is a one-shot flag raised by the check loop when it is done and
// observed by the animation. It starts unset, becomes set exactly once, and
// never resets. Closing the channel orders the writer's Set before any read
// that observes it.
type StopSignal struct {
	once sync.Once
	ch   chan struct{}
}

// NewStopSignal returns an unset signal.
func NewStopSignal() *StopSignal {
	return &StopSignal{ch: make(chan struct{})}
}

// Set raises the signal. Calls after the first are no-ops.
func (s *StopSignal) Set() {
	s.once.Do(func() { close(s.ch) })
}

// Done returns a channel that is closed once the signal is set.
func (s *StopSignal) Done() <-chan struct{} {
	return s.ch
}

// IsSet polls the signal without blocking.
func (s *StopSignal) IsSet() bool {
	select {
	case <-s.ch:
		return true
	default:
		return false
	}
}
