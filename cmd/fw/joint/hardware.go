package main

import (
	coremath "github.com/mcx/dcservo/pkg/core/math"
	"github.com/mcx/dcservo/x/devices"
	hwencoder "github.com/mcx/dcservo/x/devices/encoder"
)

// quadratureSource adapts x/devices/encoder.Device's tick counter
// (the teacher's own portable quadrature decoder, shared with
// main_xiao.go's real board and a host-buildable Linux GPIO target)
// into the radians-valued encoder.Source servoloop.Loop expects.
type quadratureSource struct {
	dev *hwencoder.Device
}

func (q *quadratureSource) Sample() float32 {
	return 2 * 3.14159265 * float32(q.dev.Position()) / float32(q.dev.CountsPerRevolution())
}

// pwmSink adapts a devices.PWM channel into currentsink.Sink: the
// signed control signal is mapped onto a [0,1] duty cycle centered at
// 0.5, the shape an H-bridge driver expects (0.5 = zero current, 0/1 =
// full reverse/forward).
type pwmSink struct {
	pwm  devices.PWM
	uMax float32
}

func (s *pwmSink) Drive(signal float32) {
	duty := 0.5 + 0.5*coremath.Clamp(signal/s.uMax, -1, 1)
	_ = s.pwm.Set(duty)
}

func (s *pwmSink) DrivePWM(pwm float32) {
	s.Drive(pwm)
}
