// Command joint is the device-side firmware for one DOF: it decodes
// JointCommunicator's wire frames, drives a ServoControlLoop on a
// fixed control tick, and replies with telemetry, per spec.md §4 and
// §6. Hardware bindings live behind two thin, build-tagged main()
// files (main_xiao.go for the real board, main.go for a host-buildable
// simulation), matching the teacher's own linux/tinygo split.
package main

import (
	"context"
	"encoding/binary"
	"math"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/mcx/dcservo/pkg/device/servoloop"
	"github.com/mcx/dcservo/pkg/host/joint"
	"github.com/mcx/dcservo/pkg/transport"
)

// Joint composes one joint's device-side stack end to end.
type Joint struct {
	nodeID      byte
	ch          transport.Channel
	loop        *servoloop.Loop
	log         zerolog.Logger
	controlTick time.Duration
}

// NewJoint wires an already-constructed servoloop.Loop to a transport
// Channel. The loop is enabled immediately: the original firmware
// runs its control pass continuously from boot, holding position zero
// until the host sends its first reference.
func NewJoint(nodeID byte, ch transport.Channel, loop *servoloop.Loop, controlTick time.Duration, log zerolog.Logger) *Joint {
	loop.Enable(true)
	return &Joint{nodeID: nodeID, ch: ch, loop: loop, controlTick: controlTick, log: log}
}

// Run drives the control tick and the transport pump concurrently
// until ctx is cancelled or the channel errors out. TinyGo's
// cooperative goroutine scheduler makes this the idiomatic stand-in
// for the original's ISR-driven control loop plus a UART receive
// loop.
func (j *Joint) Run(ctx context.Context) error {
	go j.controlLoop(ctx)
	return j.commLoop(ctx)
}

func (j *Joint) controlLoop(ctx context.Context) {
	ticker := time.NewTicker(j.controlTick)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			j.loop.Tick()
		}
	}
}

func (j *Joint) commLoop(ctx context.Context) error {
	for {
		frame, err := j.ch.Receive(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			j.log.Warn().Err(err).Msg("receive failed")
			continue
		}
		if frame.NodeID != j.nodeID {
			continue
		}
		if err := j.handle(frame); err != nil {
			j.log.Warn().Err(err).Msg("frame handling failed")
		}
	}
}

// handle decodes exactly the opcodes JointCommunicator.transmit emits
// and always replies with a telemetry frame, mirroring the
// request/reply cadence JointCommunicator.Run expects once per host
// cycle.
func (j *Joint) handle(frame transport.Frame) error {
	switch frame.Opcode {
	case joint.OpSetReference:
		if err := j.handleSetReference(frame.Data); err != nil {
			return err
		}
	case joint.OpSetOpenLoop:
		if err := j.handleSetOpenLoop(frame.Data); err != nil {
			return err
		}
	case joint.OpQueryPosition:
		// No state change; the reply below carries the position.
	default:
		return errors.Errorf("joint: unknown opcode %d", frame.Opcode)
	}
	return j.sendTelemetry()
}

func (j *Joint) handleSetReference(data []byte) error {
	if len(data) < 8 {
		return errors.New("joint: short reference frame")
	}
	pos := math.Float32frombits(binary.BigEndian.Uint32(data[0:4]))
	vel := int16(binary.BigEndian.Uint16(data[4:6]))
	feed := int16(binary.BigEndian.Uint16(data[6:8]))
	j.loop.LoadNewReference(pos, float32(vel), float32(feed))
	return nil
}

func (j *Joint) handleSetOpenLoop(data []byte) error {
	if len(data) < 3 {
		return errors.New("joint: short open-loop frame")
	}
	pwm := int16(binary.BigEndian.Uint16(data[0:2]))
	active := data[2] != 0
	j.loop.OpenLoopMode(active, float32(pwm))
	return nil
}

func (j *Joint) sendTelemetry() error {
	pos, vel, controlError, current, signal := j.loop.Telemetry()

	payload := make([]byte, 20)
	binary.BigEndian.PutUint32(payload[0:4], math.Float32bits(pos))
	binary.BigEndian.PutUint32(payload[4:8], math.Float32bits(vel))
	binary.BigEndian.PutUint32(payload[8:12], math.Float32bits(controlError))
	binary.BigEndian.PutUint32(payload[12:16], math.Float32bits(current))
	binary.BigEndian.PutUint32(payload[16:20], math.Float32bits(signal))

	return j.ch.SendTo(j.nodeID, joint.OpTelemetry, payload)
}
