package joint

import (
	"context"
	"encoding/binary"
	"math"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcx/dcservo/pkg/transport"
)

// fakeDevice answers every query/reference frame with a telemetry
// frame carrying a fixed position, simulating the device side of the
// handshake without a real firmware binary.
func fakeDevice(t *testing.T, ch transport.Channel, position float32) {
	t.Helper()
	go func() {
		for {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			_, err := ch.Receive(ctx)
			cancel()
			if err != nil {
				return
			}

			payload := make([]byte, 20)
			binary.BigEndian.PutUint32(payload[0:4], math.Float32bits(position))
			if err := ch.SendTo(1, OpTelemetry, payload); err != nil {
				return
			}
		}
	}()
}

func TestHandshakeReachesReady(t *testing.T) {
	hostCh, devCh := transport.NewSimChannelPair()
	defer hostCh.Close()
	defer devCh.Close()

	fakeDevice(t, devCh, 42)

	c := New(hostCh, DefaultSpecs[0], zerolog.Nop())
	require.False(t, c.IsInitComplete())

	for i := 0; i < 3 && !c.IsInitComplete(); i++ {
		require.NoError(t, c.Run(context.Background()))
	}

	assert.True(t, c.IsInitComplete())
}

func TestSetReferenceEncodesAffineTransform(t *testing.T) {
	hostCh, devCh := transport.NewSimChannelPair()
	defer hostCh.Close()
	defer devCh.Close()

	spec := Spec{NodeID: 1, Scale: 0.001, Offset: 0, PositionReferenceOffset: 0, UScale: 1}
	c := New(hostCh, spec, zerolog.Nop())
	c.SetReference(1.0, 0, 0)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = c.Run(ctx)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	frame, err := devCh.Receive(ctx)
	require.NoError(t, err)
	assert.Equal(t, OpSetReference, frame.Opcode)

	posTicks := math.Float32frombits(binary.BigEndian.Uint32(frame.Data[0:4]))
	assert.InDelta(t, 1000.0, posTicks, 0.01)
}

// TestSetReferenceEncodesAffineTransformWithOffset exercises the full
// affine transform with a non-zero calibration Offset and
// PositionReferenceOffset, the case TestSetReferenceEncodesAffineTransform's
// all-zero Spec never caught.
func TestSetReferenceEncodesAffineTransformWithOffset(t *testing.T) {
	hostCh, devCh := transport.NewSimChannelPair()
	defer hostCh.Close()
	defer devCh.Close()

	spec := Spec{NodeID: 1, Scale: 0.001, Offset: 0.5, PositionReferenceOffset: 10, UScale: 1}
	c := New(hostCh, spec, zerolog.Nop())
	c.SetReference(1.0, 0, 0)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = c.Run(ctx)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	frame, err := devCh.Receive(ctx)
	require.NoError(t, err)
	assert.Equal(t, OpSetReference, frame.Opcode)

	posTicks := math.Float32frombits(binary.BigEndian.Uint32(frame.Data[0:4]))
	// (1.0 + 0.5)/0.001 - 10 = 1490
	assert.InDelta(t, 1490.0, posTicks, 0.01)
}

// TestGetPositionAppliesOffset confirms Offset is folded into
// GetPosition as the inverse of SetReference's transform, rather than
// being dead Spec state.
func TestGetPositionAppliesOffset(t *testing.T) {
	hostCh, devCh := transport.NewSimChannelPair()
	defer hostCh.Close()
	defer devCh.Close()

	spec := Spec{NodeID: 1, Scale: 0.001, Offset: 0.5, PositionReferenceOffset: 10, UScale: 1}
	c := New(hostCh, spec, zerolog.Nop())
	c.last.Position = 1490

	// (1490 + 10) * 0.001 - 0.5 = 1.0
	assert.InDelta(t, 1.0, c.GetPosition(), 0.001)
}
