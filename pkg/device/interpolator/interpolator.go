// Package interpolator reconstructs a fast-tick reference stream from
// the sparse triplets the host delivers every loadTimeInterval.
package interpolator

import coremath "github.com/mcx/dcservo/pkg/core/math"

// Triplet is a single device-side reference sample: position, velocity
// and feed-forward, in device units.
type Triplet struct {
	Pos, Vel, Feed float32
}

// Clock abstracts the device's microsecond timebase so tests can drive
// it deterministically; firmware wires this to a free-running hardware
// counter.
type Clock interface {
	NowMicros() int64
}

// Interpolator holds the three-triplet window (previous, current,
// next) and linearly interpolates between the last two on every
// control tick. It is safe to call LoadNew from a different execution
// context than GetNext (e.g. a UART receive ISR vs. the control-loop
// ISR) as long as both are serialized against each other by the
// caller disabling interrupts around the window swap, matching the
// device's single-core cooperative model.
type Interpolator struct {
	clock Clock

	t [3]Triplet

	lastLoadTimestamp int64
	lastGetTimestamp  int64

	loadTimeInterval    int64 // microseconds, nominal spacing between loadNew calls
	invertedLoadInterval float32
	getTimeInterval     int64 // microseconds, control tick period

	midPointTimeOffset int64 // microseconds, signed phase trim

	loadCount     int
	timingInvalid bool
}

// New returns an Interpolator with the defaults from DCServo.h:
// 12ms host cadence, 1.2ms control tick.
func New(clock Clock) *Interpolator {
	r := &Interpolator{clock: clock}
	r.SetLoadTimeInterval(12000)
	r.SetGetTimeInterval(1200)
	r.resetLocked()
	return r
}

// SetLoadTimeInterval reconfigures the nominal spacing between host
// updates and recomputes the cached inverse.
func (r *Interpolator) SetLoadTimeInterval(us int64) {
	r.loadTimeInterval = us
	r.invertedLoadInterval = 1.0 / float32(us)
}

// SetGetTimeInterval reconfigures the control-loop tick period.
func (r *Interpolator) SetGetTimeInterval(us int64) {
	r.getTimeInterval = us
}

// LoadNew slides the three-triplet window and stamps the arrival time.
// After two consecutive loads the timing becomes valid and GetNext
// starts interpolating instead of holding.
func (r *Interpolator) LoadNew(pos, vel, feed float32) {
	r.t[0] = r.t[1]
	r.t[1] = r.t[2]
	r.t[2] = Triplet{Pos: pos, Vel: vel, Feed: feed}

	r.lastLoadTimestamp = r.clock.NowMicros()

	if r.loadCount < 2 {
		r.loadCount++
		if r.loadCount == 2 {
			r.timingInvalid = false
		}
	}
}

// ResetTiming marks the reference source as stale. Called by the
// control loop when it knows the host link is down (e.g. on disable).
func (r *Interpolator) ResetTiming() {
	r.resetLocked()
}

func (r *Interpolator) resetLocked() {
	r.timingInvalid = true
	r.loadCount = 0
	r.lastLoadTimestamp = 0
	r.lastGetTimestamp = 0
}

// UpdateTiming must be called once per control tick, before GetNext.
// It is a no-op while timing is invalid.
func (r *Interpolator) UpdateTiming() {
	if r.timingInvalid {
		return
	}
	r.lastGetTimestamp = r.clock.NowMicros()
}

// TimingInvalid reports whether the window has not yet received two
// loads since the last reset.
func (r *Interpolator) TimingInvalid() bool {
	return r.timingInvalid
}

// LastLoadTimestamp returns the microsecond timestamp of the most
// recent LoadNew call, for staleness detection by the control loop.
func (r *Interpolator) LastLoadTimestamp() int64 {
	return r.lastLoadTimestamp
}

// GetNext returns the interpolated (pos, vel, feed) for the current
// tick. While timing is invalid it returns t[1] unchanged (a constant
// hold), per invariant (ii). It also holds t[1] once more than two
// load intervals have passed since the last LoadNew, so a stale
// reference source is never extrapolated.
func (r *Interpolator) GetNext() (pos, vel, feed float32) {
	if r.timingInvalid || r.lastGetTimestamp-r.lastLoadTimestamp > 2*r.loadTimeInterval {
		return r.t[1].Pos, r.t[1].Vel, r.t[1].Feed
	}

	elapsed := r.lastGetTimestamp - r.lastLoadTimestamp + r.midPointTimeOffset
	f := float32(elapsed) * r.invertedLoadInterval
	f = coremath.Clamp(f, 0, 1)

	pos = r.t[1].Pos + f*(r.t[2].Pos-r.t[1].Pos)
	vel = r.t[1].Vel + f*(r.t[2].Vel-r.t[1].Vel)
	feed = r.t[1].Feed + f*(r.t[2].Feed-r.t[1].Feed)
	return
}

// SetMidPointTimeOffset trims the interpolation window's phase to
// center the control loop's sampling between host arrivals.
func (r *Interpolator) SetMidPointTimeOffset(us int64) {
	r.midPointTimeOffset = us
}
