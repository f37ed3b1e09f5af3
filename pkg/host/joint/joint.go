// Package joint implements JointCommunicator: the host-side per-joint
// state machine that sends references and reads telemetry over a
// shared transport.Channel, and the SI-units <-> device-ticks affine
// transform from spec.md §6.
package joint

import (
	"context"
	"encoding/binary"
	"math"
	"time"

	b58 "github.com/mr-tron/base58/base58"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/mcx/dcservo/pkg/dcerr"
	"github.com/mcx/dcservo/pkg/transport"
)

// Opcodes interpreted by both sides of the wire. JointCommunicator is
// the sole interpreter of these, per spec.md §6.
const (
	OpSetReference byte = iota + 1
	OpSetOpenLoop
	OpTelemetry
	OpQueryPosition
)

// handshakeState is the per-joint bring-up state from spec.md §3.
type handshakeState int

const (
	DiscoveringOffset handshakeState = iota
	InitPending
	Ready
)

// Spec is the per-joint affine transform and node addressing. Default
// values for all 6 joints are grounded in the original firmware's
// real calibration constants (DefaultSpecs below).
type Spec struct {
	NodeID byte

	Scale                  float32 // SI units per device tick
	Offset                 float32
	PositionReferenceOffset float32

	UScale float32 // SI feed-forward/current to device ticks
}

// DefaultSpecs mirrors original_source/MasterCommunication/src/main.cpp's
// six dcServoArray[i].setOffsetAndScaling(scale, offset, positionReferenceOffset)
// calls verbatim: joints 0-2 are the 4096-tick rotary encoder joints
// (each with its own gear-ratio-derived home offset), joints 3-5 are
// the lead-screw joints addressed in steps (pi/2000 per step, one of
// them, node 5, wired with an inverted sign for the opposite
// mechanical winding direction).
var DefaultSpecs = [6]Spec{
	{NodeID: 1, Scale: 2 * math.Pi / 4096.0, Offset: 302.75 / 4096.0 * 2 * math.Pi, PositionReferenceOffset: 0, UScale: 1},
	{NodeID: 2, Scale: 2 * math.Pi / 4096.0, Offset: (733.75 - 2048) / 4096.0 * 2 * math.Pi, PositionReferenceOffset: math.Pi / 2, UScale: 1},
	{NodeID: 3, Scale: 2 * math.Pi / 4096.0, Offset: 656.25 / 4096.0 * 2 * math.Pi, PositionReferenceOffset: math.Pi / 2, UScale: 1},
	{NodeID: 4, Scale: 1.0 * math.Pi / 2000, Offset: -(4.0 / 25.0), PositionReferenceOffset: 0, UScale: 1},
	{NodeID: 5, Scale: -1.0 * math.Pi / 2000, Offset: 2.0 / 25.0, PositionReferenceOffset: 0, UScale: 1},
	{NodeID: 6, Scale: 1.0 * math.Pi / 2000, Offset: -(1.0 / 25.0), PositionReferenceOffset: 0, UScale: 1},
}

// Telemetry is the most recently received device sample.
type Telemetry struct {
	Position      float32
	Velocity      float32
	ControlError  float32
	Current       float32
	ControlSignal float32
}

// Communicator is one joint's host-side endpoint.
type Communicator struct {
	ch   transport.Channel
	spec Spec
	log  zerolog.Logger

	state handshakeState

	pendingRef   *referencePacket
	pendingOpen  *openLoopPacket

	last         Telemetry
	opticalData  []byte
	commOK       bool
	lastRecvTime time.Time
}

type referencePacket struct {
	pos          float32
	vel, feedFwd int16
}

type openLoopPacket struct {
	pwm    int16
	active bool
}

// New builds a Communicator over the given channel and affine spec.
func New(ch transport.Channel, spec Spec, log zerolog.Logger) *Communicator {
	sessionID := b58.Encode([]byte{spec.NodeID})
	return &Communicator{
		ch:     ch,
		spec:   spec,
		state:  DiscoveringOffset,
		commOK: true,
		log:    log.With().Str("joint", sessionID).Logger(),
	}
}

// SetOffsetAndScaling reconfigures the affine transform, e.g. once the
// true gear ratio is known from a calibration run.
func (c *Communicator) SetOffsetAndScaling(scale, offset, positionReferenceOffset float32) {
	c.spec.Scale = scale
	c.spec.Offset = offset
	c.spec.PositionReferenceOffset = positionReferenceOffset
}

// SetReference queues a reference triplet for the next run() pump,
// encoding SI units into device ticks per spec.md §6, the inverse of
// GetPosition's affine transform:
// pos_ticks = (pos_SI + offset)/scale - positionReferenceOffset,
// vel_ticks/u_ticks clamped to int16.
func (c *Communicator) SetReference(posSI, velSI, uSI float32) {
	posTicks := (posSI+c.spec.Offset)/c.spec.Scale - c.spec.PositionReferenceOffset
	velTicks := clampInt16(velSI / c.spec.Scale)
	uTicks := clampInt16(uSI * c.spec.UScale)
	c.pendingRef = &referencePacket{pos: posTicks, vel: velTicks, feedFwd: uTicks}
}

// SetOpenLoopControlSignal queues an open-loop PWM command.
func (c *Communicator) SetOpenLoopControlSignal(pwm float32, active bool) {
	c.pendingOpen = &openLoopPacket{pwm: clampInt16(pwm), active: active}
}

// IsInitComplete reports whether the handshake has reached Ready.
func (c *Communicator) IsInitComplete() bool {
	return c.state == Ready
}

// IsCommunicationOk reports whether the joint acknowledged within the
// last scheduler cycle.
func (c *Communicator) IsCommunicationOk() bool {
	return c.commOK
}

// GetPosition returns the most recently received sample in SI units.
// Between run() calls this is stable, per spec.md §4.4's guarantee.
// The per-joint calibration Offset (main.cpp's setOffsetAndScaling
// second argument, already expressed in SI units) is subtracted after
// scaling, matching the firmware's own home-position correction.
func (c *Communicator) GetPosition() float32 {
	return (c.last.Position+c.spec.PositionReferenceOffset)*c.spec.Scale - c.spec.Offset
}

func (c *Communicator) GetVelocity() float32      { return c.last.Velocity * c.spec.Scale }
func (c *Communicator) GetControlError() float32  { return c.last.ControlError * c.spec.Scale }
func (c *Communicator) GetCurrent() float32       { return c.last.Current / c.spec.UScale }
func (c *Communicator) GetControlSignal() float32 { return c.last.ControlSignal / c.spec.UScale }

// GetOpticalEncoderChannelData returns the last raw diagnostic blob,
// if the device included one in its telemetry frame.
func (c *Communicator) GetOpticalEncoderChannelData() []byte {
	return c.opticalData
}

// Run is the message pump: transmit any pending command, receive any
// pending telemetry, and advance the handshake. It must be called
// once per scheduler cycle, serialized by the caller (RobotScheduler)
// so no locking is needed here, per spec.md §5.
func (c *Communicator) Run(ctx context.Context) error {
	if err := c.transmit(); err != nil {
		c.commOK = false
		return errors.Wrap(dcerr.ErrCommunicationLost, err.Error())
	}

	recvCtx, cancel := context.WithTimeout(ctx, 12*time.Millisecond)
	defer cancel()

	frame, err := c.ch.Receive(recvCtx)
	if err != nil {
		c.commOK = false
		return errors.Wrap(dcerr.ErrCommunicationLost, err.Error())
	}

	c.commOK = true
	c.lastRecvTime = time.Now()

	switch frame.Opcode {
	case OpTelemetry:
		c.decodeTelemetry(frame.Data)
		c.advanceHandshake()
	default:
		c.log.Warn().Uint8("opcode", frame.Opcode).Msg("unexpected opcode")
	}

	return nil
}

func (c *Communicator) advanceHandshake() {
	switch c.state {
	case DiscoveringOffset:
		// Seed the logical reference offset from the device's current
		// absolute position so the first SetReference is bumpless,
		// per spec.md §4.4's init sequence step (b).
		c.spec.PositionReferenceOffset = -c.last.Position
		c.state = InitPending
	case InitPending:
		c.state = Ready
	}
}

func (c *Communicator) transmit() error {
	if c.pendingRef != nil {
		payload := make([]byte, 8)
		binary.BigEndian.PutUint32(payload[0:4], math.Float32bits(c.pendingRef.pos))
		binary.BigEndian.PutUint16(payload[4:6], uint16(c.pendingRef.vel))
		binary.BigEndian.PutUint16(payload[6:8], uint16(c.pendingRef.feedFwd))
		if err := c.ch.SendTo(c.spec.NodeID, OpSetReference, payload); err != nil {
			return err
		}
		c.pendingRef = nil
	}

	if c.pendingOpen != nil {
		payload := make([]byte, 3)
		binary.BigEndian.PutUint16(payload[0:2], uint16(c.pendingOpen.pwm))
		if c.pendingOpen.active {
			payload[2] = 1
		}
		if err := c.ch.SendTo(c.spec.NodeID, OpSetOpenLoop, payload); err != nil {
			return err
		}
		c.pendingOpen = nil
	}

	if c.state != Ready {
		if err := c.ch.SendTo(c.spec.NodeID, OpQueryPosition, nil); err != nil {
			return err
		}
	}

	return nil
}

func (c *Communicator) decodeTelemetry(data []byte) {
	if len(data) < 20 {
		return
	}
	c.last.Position = math.Float32frombits(binary.BigEndian.Uint32(data[0:4]))
	c.last.Velocity = math.Float32frombits(binary.BigEndian.Uint32(data[4:8]))
	c.last.ControlError = math.Float32frombits(binary.BigEndian.Uint32(data[8:12]))
	c.last.Current = math.Float32frombits(binary.BigEndian.Uint32(data[12:16]))
	c.last.ControlSignal = math.Float32frombits(binary.BigEndian.Uint32(data[16:20]))
	if len(data) > 20 {
		c.opticalData = data[20:]
	}
}

func clampInt16(v float32) int16 {
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}
	return int16(v)
}
