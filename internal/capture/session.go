package capture

import "sync"

// State is the lifecycle phase of a capture session
type State string

const (
	StateIdle      State = "idle"
	StateCapturing State = "capturing"
	StateSucceeded State = "succeeded"
	StateFailed    State = "failed"
)

// Session serializes captures within one process: only a single capture
// may be in flight, and each run ends in exactly one terminal state.
// A finished session can begin a new capture; a running one cannot.
type Session struct {
	mu    sync.Mutex
	state State
	err   error
}

// NewSession returns an idle session
func NewSession() *Session {
	return &Session{state: StateIdle}
}

// Begin moves the session into the capturing state
func (s *Session) Begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateCapturing {
		return ErrCaptureInFlight
	}
	s.state = StateCapturing
	s.err = nil
	return nil
}

// Succeed marks the running capture as completed
func (s *Session) Succeed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateCapturing {
		s.state = StateSucceeded
	}
}

// Fail marks the running capture as failed and records the cause
func (s *Session) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateCapturing {
		s.state = StateFailed
		s.err = err
	}
}

// State returns the current lifecycle phase
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Err returns the cause recorded by the last failed capture, if any
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
