package manager

import (
	"time"
)

// State is the session lifecycle. Ended is terminal.
type State int

const (
	Running State = iota
	Ended
)

func (s State) String() string {
	if s == Ended {
		return "ended"
	}
	return "running"
}

// EndReason records why a session stopped
type EndReason int

const (
	NotEnded EndReason = iota
	HitWall
	Aborted
)

func (r EndReason) String() string {
	switch r {
	case HitWall:
		return "wall"
	case Aborted:
		return "aborted"
	default:
		return "none"
	}
}

type StateManager struct {
	state     State
	reason    EndReason
	score     int
	ticks     int
	startTime time.Time
	endTime   time.Time
	now       func() time.Time
}

func NewStateManager(now func() time.Time) *StateManager {
	if now == nil {
		now = time.Now
	}
	return &StateManager{
		state:     Running,
		startTime: now(),
		now:       now,
	}
}

func (sm *StateManager) State() State {
	return sm.state
}

func (sm *StateManager) Running() bool {
	return sm.state == Running
}

// End moves the session to Ended. Later calls keep the first reason.
func (sm *StateManager) End(reason EndReason) bool {
	if sm.state == Ended {
		return false
	}
	sm.state = Ended
	sm.reason = reason
	sm.endTime = sm.now()
	return true
}

func (sm *StateManager) Reason() EndReason {
	return sm.reason
}

// AddPoint bumps the score by one. Score never decreases.
func (sm *StateManager) AddPoint() int {
	sm.score++
	return sm.score
}

func (sm *StateManager) GetScore() int {
	return sm.score
}

func (sm *StateManager) Tick() int {
	sm.ticks++
	return sm.ticks
}

func (sm *StateManager) Ticks() int {
	return sm.ticks
}

// Elapsed is the session duration, frozen once the session has ended
func (sm *StateManager) Elapsed() time.Duration {
	if sm.state == Ended {
		return sm.endTime.Sub(sm.startTime)
	}
	return sm.now().Sub(sm.startTime)
}
