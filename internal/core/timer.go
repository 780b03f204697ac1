package core

import "time"

// FixedStep helps run simulation updates at a steady ticks-per-second rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	if tps <= 0 {
		tps = 60
	}
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Step returns the duration of one tick.
func (f *FixedStep) Step() time.Duration { return f.step }

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}

// FrameDivider emits one logical tick every n render frames so the
// simulation speed does not follow the display refresh rate.
type FrameDivider struct {
	every   int
	counter int
}

// NewFrameDivider returns a divider that fires on every n-th frame.
func NewFrameDivider(n int) *FrameDivider {
	d := &FrameDivider{}
	d.SetEvery(n)
	return d
}

// SetEvery changes the number of frames per tick. Values below one are
// treated as one.
func (d *FrameDivider) SetEvery(n int) {
	if n < 1 {
		n = 1
	}
	d.every = n
	if d.counter >= n {
		d.counter = 0
	}
}

// Every returns the number of frames per tick.
func (d *FrameDivider) Every() int { return d.every }

// Frame records one render frame and reports whether a tick is due.
func (d *FrameDivider) Frame() bool {
	d.counter++
	if d.counter >= d.every {
		d.counter = 0
		return true
	}
	return false
}

// Reset drops any partially counted frames.
func (d *FrameDivider) Reset() { d.counter = 0 }
