// Package encoder models the EncoderSource collaborator as a small
// capability set rather than the original's templated
// EncoderHandlerInterface: every encoder can sample a value, optional
// ones can also report a diagnostic snapshot.
package encoder

// Source is the minimum capability ServoControlLoop needs from either
// encoder (main/motor or output/dual-encoder backlash sensing). It is
// a black-box collaborator per spec.md's non-goals: the sensor-fusion
// table lookup behind it is out of scope.
type Source interface {
	// Sample triggers a read and returns the latest angle in radians.
	// Read errors never propagate per spec.md's device-side failure
	// semantics: an implementation should return the last good value
	// and advance an internal diagnostic counter instead of erroring.
	Sample() float32
}

// Diagnostics is implemented by encoders that can additionally expose
// fusion-table diagnostic data (e.g. the optical encoder's minimum-cost
// index/value from its calibration table lookup). Absence of this
// interface means "no diagnostic available", per spec.md §9.
type Diagnostics interface {
	Diagnostic() (data any, ok bool)
}

// OpticalDiagnostic mirrors OpticalEncoderHandler::DiagnosticData: the
// raw quadrature-like readings and the calibration-table match quality.
type OpticalDiagnostic struct {
	A, B          uint16
	MinCostIndex  int
	MinCost       float32
}

// calTableSize is the optical encoder's compiled-in calibration table
// size (aVec/bVec in the original firmware).
const calTableSize = 512

// Optical is a simulated/table-driven optical encoder, grounded in
// OpticalEncoderHandler.h's calibration-table lookup shape. Raw A/B
// channel readings come from the caller-supplied sampleFn, so the
// same type serves simulation, tests and hardware adapters.
type Optical struct {
	aVec, bVec [calTableSize]uint16

	lastA, lastB uint16
	lastAngle    float32
	lastIndex    int
	lastCost     float32

	sampleFn func() (a, b uint16)
}

// NewOptical builds an Optical encoder over a compiled-in calibration
// table and a sampling function (hardware ADC read on-device, a
// scripted sequence in tests).
func NewOptical(aVec, bVec [calTableSize]uint16, sampleFn func() (a, b uint16)) *Optical {
	return &Optical{aVec: aVec, bVec: bVec, sampleFn: sampleFn}
}

func (o *Optical) Sample() float32 {
	if o.sampleFn == nil {
		return o.lastAngle
	}
	a, b := o.sampleFn()
	o.lastA, o.lastB = a, b

	bestIdx := 0
	bestCost := float32(1<<30)
	for i := 0; i < calTableSize; i++ {
		da := float32(int32(a) - int32(o.aVec[i]))
		db := float32(int32(b) - int32(o.bVec[i]))
		cost := da*da + db*db
		if cost < bestCost {
			bestCost = cost
			bestIdx = i
		}
	}

	o.lastIndex = bestIdx
	o.lastCost = bestCost
	o.lastAngle = 2 * 3.14159265 * float32(bestIdx) / float32(calTableSize)
	return o.lastAngle
}

func (o *Optical) Diagnostic() (any, bool) {
	return OpticalDiagnostic{A: o.lastA, B: o.lastB, MinCostIndex: o.lastIndex, MinCost: o.lastCost}, true
}

// Quadrature is a plain incremental encoder: no diagnostic data, just
// an angle in radians derived from a tick counter.
type Quadrature struct {
	ticksPerRev float32
	readFn      func() int32
}

// NewQuadrature builds a Quadrature encoder over a tick-counter reader
// (hardware counter on-device, a scripted counter in tests).
func NewQuadrature(ticksPerRev float32, readFn func() int32) *Quadrature {
	return &Quadrature{ticksPerRev: ticksPerRev, readFn: readFn}
}

func (q *Quadrature) Sample() float32 {
	if q.readFn == nil {
		return 0
	}
	ticks := q.readFn()
	return 2 * 3.14159265 * float32(ticks) / q.ticksPerRev
}
