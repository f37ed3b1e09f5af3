// Package dcerr defines the error kinds shared by the device and host
// sides of the servo controller.
package dcerr

import "errors"

var (
	// ErrInvalidArgument is returned for out-of-range caller input, e.g.
	// a playback speed greater than 1.0.
	ErrInvalidArgument = errors.New("dcerr: invalid argument")
	// ErrUnreachable is returned when inverse kinematics cannot find a
	// joint-space solution for a requested Cartesian pose.
	ErrUnreachable = errors.New("dcerr: pose unreachable")
	// ErrCommunicationLost is returned once a joint fails to acknowledge
	// within one scheduler cycle.
	ErrCommunicationLost = errors.New("dcerr: communication lost")
	// ErrDeviceNotReady is returned when an operation is attempted before
	// a joint's handshake has completed.
	ErrDeviceNotReady = errors.New("dcerr: device not ready")
	// ErrInvariantViolation marks a programmer error; callers should treat
	// it as fatal rather than retry.
	ErrInvariantViolation = errors.New("dcerr: invariant violation")
)
