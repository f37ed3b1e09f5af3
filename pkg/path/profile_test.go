package path

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcx/dcservo/pkg/coordinate"
)

func TestJerkLimitedJointPathReachesTarget(t *testing.T) {
	seg := JerkLimitedJointPath{
		Target:          coordinate.JointSpaceCoordinate{1, 0, 0, 0, 0, 0},
		MaxVelocity:     [coordinate.DOF]float32{2, 2, 2, 2, 2, 2},
		MaxAcceleration: [coordinate.DOF]float32{5, 5, 5, 5, 5, 5},
		Jerk:            [coordinate.DOF]float32{20, 20, 20, 20, 20, 20},
	}

	items, to, err := seg.Generate(coordinate.JointSpaceCoordinate{}, 0.001)
	require.NoError(t, err)
	require.NotEmpty(t, items)
	assert.InDelta(t, 1.0, to[0], 1e-3)
	assert.InDelta(t, 1.0, items[len(items)-1].P[0], 1e-3)
}

func TestJerkLimitedJointPathZeroJerkFailsToSettle(t *testing.T) {
	seg := JerkLimitedJointPath{
		Target:          coordinate.JointSpaceCoordinate{1, 0, 0, 0, 0, 0},
		MaxVelocity:     [coordinate.DOF]float32{2, 2, 2, 2, 2, 2},
		MaxAcceleration: [coordinate.DOF]float32{5, 5, 5, 5, 5, 5},
		Jerk:            [coordinate.DOF]float32{0, 0, 0, 0, 0, 0},
	}

	_, _, err := seg.Generate(coordinate.JointSpaceCoordinate{}, 0.001)
	assert.Error(t, err)
}
