// Package estimator implements the 3-state Kalman observer
// (position, velocity, load-disturbance torque) each ServoControlLoop
// uses to fuse a noisy motor-position measurement with the previous
// control signal.
package estimator

import (
	"github.com/mcx/dcservo/x/math/filter/kalman"
	"github.com/mcx/dcservo/x/math/mat"
	"github.com/mcx/dcservo/x/math/vec"
)

// Gains is the plant-model-derived set of matrices for one
// controlSpeed setting. Firmware precomputes these at compile time;
// Observer just consumes whichever Gains the caller selects.
type Gains struct {
	F, H, Q, R mat.Matrix
}

// Table maps a controlSpeed index (0..255, only a handful populated
// in practice) to its precomputed Gains, mirroring DCServo.h's
// controlSpeed-indexed gain selection.
type Table map[uint8]Gains

// Observer is a pure function of its internal state and inputs: it
// never returns an error, matching spec.md's "observer is a pure
// function of its state and inputs" requirement.
type Observer struct {
	table      Table
	kf         *kalman.Kalman
	controlSpeed uint8
}

// New builds an Observer over the given gain table, starting at the
// given controlSpeed.
func New(table Table, controlSpeed uint8) *Observer {
	g, ok := table[controlSpeed]
	if !ok {
		panic("estimator: no gains registered for controlSpeed")
	}
	o := &Observer{table: table, controlSpeed: controlSpeed}
	o.kf = kalman.NewWithControl(3, 1, 1, g.F, g.H, controlColumn(), g.Q, g.R)
	return o
}

// controlColumn is the fixed B matrix mapping the scalar control
// signal onto the position/velocity/disturbance state. The control
// signal only drives the velocity state directly; position and
// disturbance evolve through F alone.
func controlColumn() mat.Matrix {
	return mat.New(3, 1, 0, 1, 0)
}

// SetControlSpeed swaps the active gain set without resetting state,
// so a live controlSpeed change does not introduce a discontinuity in
// the estimate itself (only in future noise assumptions).
func (o *Observer) SetControlSpeed(controlSpeed uint8) {
	g, ok := o.table[controlSpeed]
	if !ok {
		panic("estimator: no gains registered for controlSpeed")
	}
	o.controlSpeed = controlSpeed
	o.kf.F = g.F
	o.kf.H = g.H
	o.kf.Q = g.Q
	o.kf.R = g.R
}

// Reset zeros the state estimate and resets covariance to identity.
func (o *Observer) Reset() {
	o.kf.Reset()
}

// SetState seeds the estimate, used on bumpless enable to avoid a
// transient while the observer catches up to the real plant state.
func (o *Observer) SetState(pos, vel, loadDisturbance float32) {
	o.kf.SetState(vec.NewFrom(pos, vel, loadDisturbance))
}

// Advance runs one predict+update cycle: predicts from the previous
// control signal, then folds in the (already unwrapped) measured
// motor position. Callers are responsible for unwrapping measurement
// against the previous position estimate before calling Advance, per
// spec.md's wrap-correction requirement.
func (o *Observer) Advance(measuredPosition, previousControlSignal float32) (pos, vel, loadDisturbance float32) {
	o.kf.PredictWithControl(vec.NewFrom(previousControlSignal))
	o.kf.UpdateMeasurement(vec.NewFrom(measuredPosition))

	out := o.kf.Output()
	return out[0], out[1], out[2]
}

// State returns the current estimate without advancing the filter.
func (o *Observer) State() (pos, vel, loadDisturbance float32) {
	out := o.kf.Output()
	return out[0], out[1], out[2]
}
