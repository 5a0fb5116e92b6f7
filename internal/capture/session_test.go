package capture

import (
	"errors"
	"testing"
)

func TestSession_SingleFlight(t *testing.T) {
	s := NewSession()
	if s.State() != StateIdle {
		t.Fatalf("new session state = %s, want idle", s.State())
	}

	if err := s.Begin(); err != nil {
		t.Fatalf("first Begin failed: %v", err)
	}
	if err := s.Begin(); !errors.Is(err, ErrCaptureInFlight) {
		t.Fatalf("second Begin = %v, want ErrCaptureInFlight", err)
	}

	s.Succeed()
	if s.State() != StateSucceeded {
		t.Errorf("state after Succeed = %s", s.State())
	}

	// A finished session accepts the next capture.
	if err := s.Begin(); err != nil {
		t.Errorf("Begin after success failed: %v", err)
	}
}

func TestSession_FailRecordsCause(t *testing.T) {
	s := NewSession()
	if err := s.Begin(); err != nil {
		t.Fatal(err)
	}

	cause := errors.New("boom")
	s.Fail(cause)

	if s.State() != StateFailed {
		t.Errorf("state after Fail = %s", s.State())
	}
	if !errors.Is(s.Err(), cause) {
		t.Errorf("Err() = %v, want recorded cause", s.Err())
	}

	if err := s.Begin(); err != nil {
		t.Errorf("Begin after failure failed: %v", err)
	}
	if s.Err() != nil {
		t.Error("Begin should clear the previous cause")
	}
}

func TestSession_TerminalStatesExclusive(t *testing.T) {
	s := NewSession()
	if err := s.Begin(); err != nil {
		t.Fatal(err)
	}
	s.Succeed()
	s.Fail(errors.New("late failure"))

	if s.State() != StateSucceeded {
		t.Errorf("a finished session must not flip terminal states, got %s", s.State())
	}
	if s.Err() != nil {
		t.Error("no cause should be recorded after success")
	}
}
