package coordinate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcx/dcservo/pkg/core/math/vec"
)

// fakeKinematics is a minimal kinematics.Kinematics double laid out
// exactly like dh.DenavitHartenberg: a 7-element Effector
// [x,y,z,qx,qy,qz,qw]. It lets KinematicsTransform be exercised
// without depending on a real DH chain's numerical solve.
type fakeKinematics struct {
	params vec.Vector
	eff    vec.Vector
	fwdOK  bool
	invOK  bool
}

func (f *fakeKinematics) DOF() int            { return DOF }
func (f *fakeKinematics) Params() vec.Vector  { return f.params }
func (f *fakeKinematics) Effector() vec.Vector { return f.eff }
func (f *fakeKinematics) Forward() bool       { return f.fwdOK }
func (f *fakeKinematics) Inverse() bool       { return f.invOK }

func newFakeKinematics() *fakeKinematics {
	return &fakeKinematics{
		params: vec.New(DOF),
		eff:    vec.New(7),
		fwdOK:  true,
		invOK:  true,
	}
}

type fixedTransform struct {
	fwd    CartesianCoordinate
	fwdOK  bool
	inv    JointSpaceCoordinate
	invOK  bool
}

func (f fixedTransform) Forward(JointSpaceCoordinate) (CartesianCoordinate, bool) {
	return f.fwd, f.fwdOK
}

func (f fixedTransform) Inverse(CartesianCoordinate) (JointSpaceCoordinate, bool) {
	return f.inv, f.invOK
}

func TestToCartesianSucceeds(t *testing.T) {
	tr := fixedTransform{fwd: CartesianCoordinate{X: 1}, fwdOK: true}
	c, err := ToCartesian(tr, JointSpaceCoordinate{})
	assert.NoError(t, err)
	assert.Equal(t, float32(1), c.X)
}

func TestToJointSpaceFailsUnreachable(t *testing.T) {
	tr := fixedTransform{invOK: false}
	_, err := ToJointSpace(tr, CartesianCoordinate{})
	assert.ErrorContains(t, err, "unreachable")
}

// TestKinematicsTransformForwardReadsFullQuaternion confirms Forward
// pulls qx,qy,qz,qw out of Effector's [3:7] slice, not XYZW()'s
// [0:4] window (which would read x,y,z,qx instead).
func TestKinematicsTransformForwardReadsFullQuaternion(t *testing.T) {
	k := newFakeKinematics()
	k.eff.CopyFrom(0, vec.NewFrom(1, 2, 3))
	k.eff.CopyFrom(3, vec.NewFrom(0.1, 0.2, 0.3, 0.9))

	tr := KinematicsTransform{K: k}
	c, ok := tr.Forward(JointSpaceCoordinate{})
	require.True(t, ok)
	assert.InDelta(t, 1, c.X, 1e-6)
	assert.InDelta(t, 2, c.Y, 1e-6)
	assert.InDelta(t, 3, c.Z, 1e-6)
	assert.InDelta(t, 0.1, c.Qx, 1e-6)
	assert.InDelta(t, 0.2, c.Qy, 1e-6)
	assert.InDelta(t, 0.3, c.Qz, 1e-6)
	assert.InDelta(t, 0.9, c.Qw, 1e-6)
}

// TestKinematicsTransformInverseWritesFullQuaternion confirms Inverse
// writes the translation into Effector[0:3] and the full quaternion
// into Effector[3:7], rather than truncating to a 4-element CopyFrom
// that drops Qx,Qy,Qz and corrupts the translation slot.
func TestKinematicsTransformInverseWritesFullQuaternion(t *testing.T) {
	k := newFakeKinematics()
	tr := KinematicsTransform{K: k}

	_, ok := tr.Inverse(CartesianCoordinate{X: 1, Y: 2, Z: 3, Qx: 0.1, Qy: 0.2, Qz: 0.3, Qw: 0.9})
	require.True(t, ok)

	x, y, z := k.eff.XYZ()
	qx, qy, qz, qw := k.eff.Slice(3, 7).XYZW()
	assert.InDelta(t, 1, x, 1e-6)
	assert.InDelta(t, 2, y, 1e-6)
	assert.InDelta(t, 3, z, 1e-6)
	assert.InDelta(t, 0.1, qx, 1e-6)
	assert.InDelta(t, 0.2, qy, 1e-6)
	assert.InDelta(t, 0.3, qz, 1e-6)
	assert.InDelta(t, 0.9, qw, 1e-6)
}

func TestTrajectoryItemInterpolate(t *testing.T) {
	a := TrajectoryItem{}
	b := TrajectoryItem{}
	b.P[0] = 1
	got := a.Interpolate(b, 0.5)
	assert.InDelta(t, 0.5, got.P[0], 1e-6)
}
