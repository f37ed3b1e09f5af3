// Package currentsink models the CurrentSink collaborator: a
// black-box actuator that accepts either a target current (closed
// loop) or a raw PWM duty cycle (open loop).
package currentsink

// Sink is the minimum capability ServoControlLoop needs to dispatch
// its computed control signal. Internals (PWM frequency, current
// sense feedback) are out of scope per spec.md's non-goals.
type Sink interface {
	// Drive sets a target current in the sink's native units.
	Drive(signal float32)
	// DrivePWM sets a raw PWM duty cycle, used in open-loop/PWM mode.
	DrivePWM(pwm float32)
}

// Recording is a Sink that remembers the last value it was driven
// with, for use in tests and in the CLI's record* modes where the
// host needs to observe what the device would have applied.
type Recording struct {
	LastSignal float32
	LastPWM    float32
	PWMMode    bool
}

func (r *Recording) Drive(signal float32) {
	r.LastSignal = signal
	r.PWMMode = false
}

func (r *Recording) DrivePWM(pwm float32) {
	r.LastPWM = pwm
	r.PWMMode = true
}
