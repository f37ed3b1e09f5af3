package main

import (
	"github.com/mcx/dcservo/pkg/device/estimator"
	"github.com/mcx/dcservo/x/math/mat"
)

// controlTickSeconds is the device's fixed control-loop period: 1.2ms,
// matching interpolator.New's default getTimeInterval (1200us) and
// DCServo.h's compiled-in tick rate.
const controlTickSeconds = 0.0012

// defaultControlSpeed is the only entry DefaultGainsTable populates.
// DCServo.h supports swapping controlSpeed at runtime to retune the
// observer for a different expected load; nothing in SPEC_FULL.md
// exercises that beyond the single nominal speed, so only one row is
// populated here. A calibration tool can register additional rows
// against the same estimator.Table before handing it to estimator.New.
const defaultControlSpeed uint8 = 50

// DefaultGainsTable builds the constant-velocity-plus-load-disturbance
// plant model estimator.Observer expects, grounded directly in
// estimator_test.go's testTable() helper: position advances by
// velocity*dt, velocity and the unmodeled load disturbance are held
// constant between updates, and only position is measured.
func DefaultGainsTable() estimator.Table {
	dt := float32(controlTickSeconds)
	F := mat.New(3, 3,
		1, dt, 0,
		0, 1, 0,
		0, 0, 1,
	)
	H := mat.New(1, 3, 1, 0, 0)
	Q := mat.New(3, 3,
		0.001, 0, 0,
		0, 0.001, 0,
		0, 0, 0.0001,
	)
	R := mat.New(1, 1, 0.01)

	return estimator.Table{
		defaultControlSpeed: {F: F, H: H, Q: Q, R: R},
	}
}
