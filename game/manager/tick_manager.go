package manager

import "time"

// TickManager converts variable frame times into a fixed number of update
// ticks. Leftover time carries into the next frame.
type TickManager struct {
	interval time.Duration
	acc      time.Duration
	maxSteps int
}

func NewTickManager(ticksPerSecond int) *TickManager {
	if ticksPerSecond <= 0 {
		ticksPerSecond = 1
	}
	return &TickManager{
		interval: time.Second / time.Duration(ticksPerSecond),
		maxSteps: 4,
	}
}

func (tm *TickManager) Interval() time.Duration {
	return tm.interval
}

// Advance adds a frame's duration and returns how many updates are due.
// A long stall (window drag, debugger) yields at most maxSteps updates and
// drops the rest so the snake does not jump across the board.
func (tm *TickManager) Advance(frame time.Duration) int {
	if frame < 0 {
		frame = 0
	}
	tm.acc += frame
	steps := int(tm.acc / tm.interval)
	tm.acc -= time.Duration(steps) * tm.interval
	if steps > tm.maxSteps {
		steps = tm.maxSteps
		tm.acc = 0
	}
	return steps
}

func (tm *TickManager) Reset() {
	tm.acc = 0
}
