package estimator

import (
	"testing"

	"github.com/mcx/dcservo/x/math/mat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTable() Table {
	// A simple constant-velocity plant model at a 1.2ms tick: position
	// integrates velocity, velocity and disturbance are held by F.
	dt := float32(0.0012)
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
	return Table{50: {F: F, H: H, Q: Q, R: R}}
}

func TestAdvanceTracksConstantPosition(t *testing.T) {
	obs := New(testTable(), 50)

	var pos float32
	for i := 0; i < 50; i++ {
		pos, _, _ = obs.Advance(1.0, 0)
	}

	assert.InDelta(t, 1.0, pos, 0.1)
}

func TestSetControlSpeedRequiresRegisteredGains(t *testing.T) {
	obs := New(testTable(), 50)
	require.Panics(t, func() { obs.SetControlSpeed(99) })
}

func TestNewPanicsOnMissingGains(t *testing.T) {
	require.Panics(t, func() { New(testTable(), 1) })
}

func TestResetZeroesState(t *testing.T) {
	obs := New(testTable(), 50)
	obs.SetState(5, 1, 0.2)
	pos, vel, load := obs.State()
	assert.Equal(t, float32(5), pos)
	assert.Equal(t, float32(1), vel)
	assert.Equal(t, float32(0.2), load)

	obs.Reset()
	pos, vel, load = obs.State()
	assert.Equal(t, float32(0), pos)
	assert.Equal(t, float32(0), vel)
	assert.Equal(t, float32(0), load)
}
