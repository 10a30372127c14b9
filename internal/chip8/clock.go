package chip8

import "time"

const (
	// DefaultCPUHz is the default CPU tick rate.
	DefaultCPUHz = 400
	timerHz      = 60
)

// ClockDriver runs two independent fixed-timestep rate limiters off a single
// monotonic time source: a configurable-rate CPU tick and a fixed 60Hz timer
// tick. The two are decoupled -- missing a CPU tick never skews the timer
// tick and vice versa, because each is compared against its own accumulator
// rather than derived from the other.
type ClockDriver struct {
	cpuPeriod   time.Duration
	timerPeriod time.Duration

	lastCPU   time.Time
	lastTimer time.Time
	started   bool
}

// NewClockDriver returns a ClockDriver ticking the CPU at cpuHz (falling
// back to DefaultCPUHz if cpuHz <= 0) and timers at a fixed 60Hz.
func NewClockDriver(cpuHz int) *ClockDriver {
	if cpuHz <= 0 {
		cpuHz = DefaultCPUHz
	}
	return &ClockDriver{
		cpuPeriod:   time.Second / time.Duration(cpuHz),
		timerPeriod: time.Second / time.Duration(timerHz),
	}
}

// Advance fires zero or one CPU step and zero-or-more timer ticks against vm,
// based on elapsed time since the previous call. The CPU tick is capped to
// at most one Step per call, even if several CPU periods elapsed, so a
// stalled host never causes a burst of catch-up instructions; the timer
// tick instead loops to catch up fully, since spec S6-style wall-clock
// jumps must still decay the timers by the right amount. The very first
// call only seeds the accumulators and performs no work.
func (c *ClockDriver) Advance(now time.Time, vm *VM) error {
	if !c.started {
		c.lastCPU = now
		c.lastTimer = now
		c.started = true
		return nil
	}

	var stepErr error
	if now.Sub(c.lastCPU) >= c.cpuPeriod {
		c.lastCPU = c.lastCPU.Add(c.cpuPeriod)
		if err := vm.Step(); err != nil {
			stepErr = err
		}
	}

	for now.Sub(c.lastTimer) >= c.timerPeriod {
		c.lastTimer = c.lastTimer.Add(c.timerPeriod)
		vm.tickTimers()
	}

	return stepErr
}
