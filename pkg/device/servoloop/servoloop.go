// Package servoloop implements the per-joint ServoControlLoop: the
// state-feedback control pass that runs on the main control tick,
// combining the Kalman estimate, the interpolated reference and
// optional dual-encoder backlash compensation into a single control
// signal dispatched to a CurrentSink.
package servoloop

import (
	"github.com/mcx/dcservo/pkg/device/currentsink"
	"github.com/mcx/dcservo/pkg/device/encoder"
	"github.com/mcx/dcservo/pkg/device/estimator"
	"github.com/mcx/dcservo/pkg/device/interpolator"
	coremath "github.com/mcx/dcservo/pkg/core/math"
)

// State is the control loop's lifecycle: Disabled holds the actuator
// at zero output; OpenLoop drives the manual PWM value directly; the
// two ClosedLoop states run the state-feedback math and differ in
// whether the output encoder feeds backlash compensation.
type State int

const (
	Disabled State = iota
	OpenLoop
	ClosedLoopMainOnly
	ClosedLoopWithBacklash
)

// Gains is the L gain vector from DCServo.h: L[0] position-loop P,
// L[1] velocity-loop P, L[2] velocity-loop I, L[3] anti-windup,
// L[4] backlash-loop I.
type Gains [5]float32

// Loop is one joint's ServoControlLoop. It is constructed once at
// boot (the original's process-wide DCServo singleton); the singleton
// lifetime itself is owned by the firmware's main, not by this type.
type Loop struct {
	mainEncoder   encoder.Source
	outputEncoder encoder.Source // nil if this joint has no dual encoder
	sink          currentsink.Sink
	ref           *interpolator.Interpolator
	obs           *estimator.Observer

	gains Gains
	dt    float32 // control tick period, seconds

	state              State
	onlyUseMainEncoder bool
	pwmOpenLoopMode    bool

	rawMainPos             float32
	rawOutputPos           float32
	outputPosOffset        float32
	initialOutputPosOffset float32

	ivel             float32
	lastControlSignal float32
	current           float32
	pwmControlSignal  float32
	uLimitDiff        float32

	estPos, estVel, controlError float32

	uMin, uMax float32

	staleLoadCycles  int
	staleThresholdCycles int
}

// Config seeds a Loop's fixed parameters.
type Config struct {
	MainEncoder   encoder.Source
	OutputEncoder encoder.Source // nil for single-encoder joints
	Sink          currentsink.Sink
	Ref           *interpolator.Interpolator
	Observer      *estimator.Observer
	Gains         Gains
	Dt            float32 // seconds, default 1/833
	UMin, UMax    float32
}

// New builds a Disabled Loop. Call Enable to bring it into a running
// state.
func New(cfg Config) *Loop {
	dt := cfg.Dt
	if dt == 0 {
		dt = 1.0 / 833.0
	}
	return &Loop{
		mainEncoder:   cfg.MainEncoder,
		outputEncoder: cfg.OutputEncoder,
		sink:          cfg.Sink,
		ref:           cfg.Ref,
		obs:           cfg.Observer,
		gains:         cfg.Gains,
		dt:            dt,
		uMin:          cfg.UMin,
		uMax:          cfg.UMax,
		state:         Disabled,
		// 3 missed loads at 12ms cadence is the staleness watchdog
		// threshold spec.md §4.3 describes.
		staleThresholdCycles: 3,
	}
}

// State reports the current lifecycle state.
func (l *Loop) State() State {
	return l.state
}

// Enable transitions Disabled -> OpenLoop/ClosedLoop* (selected by the
// loop's current openLoopMode/onlyUseMainEncoder flags), performing
// the bumpless handover spec.md §4.3 requires: seed
// initialOutputPosOffset from the live encoder difference, reset the
// integrator and anti-windup term, and reset the interpolator's
// timing so stale references are not replayed.
func (l *Loop) Enable(enabled bool) {
	if !enabled {
		if l.state != Disabled {
			l.sink.Drive(0)
			l.state = Disabled
		}
		return
	}

	if l.state != Disabled {
		return
	}

	mainPos := l.mainEncoder.Sample()
	l.rawMainPos = mainPos
	if l.outputEncoder != nil && !l.onlyUseMainEncoder {
		l.rawOutputPos = l.outputEncoder.Sample()
		l.initialOutputPosOffset = l.rawOutputPos - l.rawMainPos
		l.outputPosOffset = l.initialOutputPosOffset
	}

	l.ivel = 0
	l.uLimitDiff = 0
	l.ref.ResetTiming()

	switch {
	case l.pwmOpenLoopMode:
		l.state = OpenLoop
	case l.outputEncoder != nil && !l.onlyUseMainEncoder:
		l.state = ClosedLoopWithBacklash
	default:
		l.state = ClosedLoopMainOnly
	}
}

// OpenLoopMode selects open-loop PWM control instead of the
// state-feedback path. pwm, when active, is the manually driven duty
// cycle used by recordCurrentAndPwmBehaviour-style CLI modes.
func (l *Loop) OpenLoopMode(active bool, pwm float32) {
	l.pwmOpenLoopMode = active
	l.pwmControlSignal = pwm
	if l.state != Disabled {
		if active {
			l.state = OpenLoop
		} else if l.outputEncoder != nil && !l.onlyUseMainEncoder {
			l.state = ClosedLoopWithBacklash
		} else {
			l.state = ClosedLoopMainOnly
		}
	}
}

// OnlyUseMainEncoder toggles backlash compensation off even when a
// dual encoder is present, e.g. during initial bring-up.
func (l *Loop) OnlyUseMainEncoder(only bool) {
	l.onlyUseMainEncoder = only
	if l.state == ClosedLoopWithBacklash && only {
		l.state = ClosedLoopMainOnly
	} else if l.state == ClosedLoopMainOnly && !only && l.outputEncoder != nil {
		l.state = ClosedLoopWithBacklash
	}
}

// LoadNewReference feeds a fresh host triplet into the interpolator
// and clears the staleness counter.
func (l *Loop) LoadNewReference(pos, vel, feed float32) {
	l.ref.LoadNew(pos, vel, feed)
	l.staleLoadCycles = 0
}

// Stale reports whether the host has not refreshed the reference for
// longer than the watchdog threshold (3 load intervals).
func (l *Loop) Stale() bool {
	return l.staleLoadCycles >= l.staleThresholdCycles
}

// Tick runs exactly one control pass, per spec.md §4.3's numbered
// sequence. It must be called once per control tick; the caller
// (firmware main, or a test harness) owns the timer.
func (l *Loop) Tick() {
	if l.state == Disabled {
		return
	}

	// 1. Sample main encoder.
	l.rawMainPos = l.mainEncoder.Sample()

	// 2. Sample output encoder if dual-encoder backlash compensation
	// is active.
	if l.state == ClosedLoopWithBacklash {
		l.rawOutputPos = l.outputEncoder.Sample()
	}

	// 3. Advance the reference interpolator.
	l.ref.UpdateTiming()
	refPos, refVel, refFF := l.ref.GetNext()

	if l.state == OpenLoop {
		if l.pwmOpenLoopMode {
			l.sink.DrivePWM(l.pwmControlSignal)
		}
		return
	}

	// 4. Advance Kalman observer with the previous tick's control
	// signal and this tick's measurement (unwrapped by the caller's
	// choice of measuredPosition convention: here the raw angle is
	// already continuous because Sample() is expected to return an
	// unwrapped angle for this joint's travel range).
	estPos, estVel, estLoad := l.obs.Advance(l.rawMainPos, l.lastControlSignal)

	l.estPos, l.estVel = estPos, estVel

	// 5. Backlash compensation: drive outputPosOffset toward the
	// measured motor/output deadband, then fold it into the reference
	// so the output shaft, not the motor, tracks the target (spec.md
	// §4.3 step 10).
	if l.state == ClosedLoopWithBacklash {
		l.outputPosOffset += l.gains[4] * (l.rawOutputPos - l.rawMainPos - l.outputPosOffset)
	}

	// 6. Position error (motor side), reference corrected by the
	// output-shaft offset.
	e := (refPos - l.outputPosOffset) - estPos
	l.controlError = e

	// 7. Velocity setpoint: P position loop.
	vSet := refVel + l.gains[0]*e

	// 8. Velocity error.
	eV := vSet - estVel

	// 9. Integral with anti-windup: subtract the previous cycle's
	// clamp overshoot before integrating this cycle's velocity error.
	l.ivel += (l.gains[2]*eV - l.gains[3]*l.uLimitDiff) * l.dt

	// 10. Raw control signal: feed-forward + P-velocity + integrator -
	// observed disturbance.
	u := refFF + l.gains[1]*eV + l.ivel - estLoad

	// 11. Clamp to the sink's limits and record the anti-windup term
	// for next cycle.
	clamped := coremath.Clamp(u, l.uMin, l.uMax)
	l.uLimitDiff = clamped - u
	l.lastControlSignal = clamped
	l.current = clamped

	// 12. Dispatch.
	l.sink.Drive(clamped)
}

// Telemetry returns the values a firmware main reports back to the
// host each cycle: estimated position/velocity, position error (motor
// side), and the current control signal, in device-tick units (the
// caller's transport encoding, not SI — that conversion is
// JointCommunicator's job on the host side).
func (l *Loop) Telemetry() (pos, vel, controlError, current, signal float32) {
	return l.estPos, l.estVel, l.controlError, l.current, l.lastControlSignal
}

// AdvanceStaleCounter is called once per host cycle interval (not per
// control tick) by the firmware's slower housekeeping timer to detect
// a dead host link; Tick itself never advances it, matching spec.md's
// "watchdog condition" being keyed to loadTimeInterval, not the
// control tick.
func (l *Loop) AdvanceStaleCounter() {
	l.staleLoadCycles++
	if l.Stale() && l.state != Disabled {
		// Hold: never exceed the last control signal, per spec.md's
		// failure semantics. The control loop continues running but
		// LoadNewReference has stopped refreshing the window, so
		// GetNext will already be holding t[1] once the interpolator
		// itself notices (ResetTiming is not called here: the
		// interpolator's own 2x-interval staleness is a distinct,
		// finer-grained signal than this coarser watchdog).
	}
}
