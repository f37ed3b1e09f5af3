// Package coordinate implements spec.md §4.7: joint-space/Cartesian
// coordinate types and their conversion through an injected
// PoseTransform (the kinematics black-box collaborator).
package coordinate

import (
	"github.com/pkg/errors"

	"github.com/mcx/dcservo/pkg/core/math/vec"
	"github.com/mcx/dcservo/pkg/dcerr"
	"github.com/mcx/dcservo/pkg/robot/kinematics"
)

// DOF is the manipulator's degree-of-freedom count for this robot.
const DOF = 6

// TrajectoryItem is one pull from a PathSource: a full joint-space
// position/velocity/feed-forward sample, N=6 for this robot, per
// spec.md §3.
type TrajectoryItem struct {
	P, V, U [DOF]float32
}

// Interpolate returns the linear interpolation between t and other at
// fraction f, used by the sampler and deviation limiters.
func (t TrajectoryItem) Interpolate(other TrajectoryItem, f float32) TrajectoryItem {
	var out TrajectoryItem
	for i := 0; i < DOF; i++ {
		out.P[i] = t.P[i] + f*(other.P[i]-t.P[i])
		out.V[i] = t.V[i] + f*(other.V[i]-t.V[i])
		out.U[i] = t.U[i] + f*(other.U[i]-t.U[i])
	}
	return out
}

// JointSpaceCoordinate is a 6-DOF joint angle vector.
type JointSpaceCoordinate [DOF]float32

// CartesianCoordinate is a 6D pose: 3D position plus an orientation
// quaternion's vector part and scalar packed as XYZW (matching the
// teacher's vec.Vector XYZW() convention for pose representation).
type CartesianCoordinate struct {
	X, Y, Z          float32
	Qx, Qy, Qz, Qw   float32
}

// PoseTransform is the forward/inverse kinematics collaborator,
// wrapping the teacher's kinematics.Kinematics interface. It is a
// black-box per spec.md's non-goals: this package only specifies the
// boundary, not the numerical IK/FK solver behind it.
type PoseTransform interface {
	Forward(j JointSpaceCoordinate) (CartesianCoordinate, bool)
	Inverse(c CartesianCoordinate) (JointSpaceCoordinate, bool)
}

// KinematicsTransform adapts a kinematics.Kinematics (e.g.
// dh.DenavitHartenberg) into a PoseTransform.
type KinematicsTransform struct {
	K kinematics.Kinematics
}

func (k KinematicsTransform) Forward(j JointSpaceCoordinate) (CartesianCoordinate, bool) {
	params := k.K.Params()
	if params.Len() != DOF {
		return CartesianCoordinate{}, false
	}
	for i := 0; i < DOF; i++ {
		params[i] = j[i]
	}
	if !k.K.Forward() {
		return CartesianCoordinate{}, false
	}
	// Effector is the 7-element [x,y,z,qx,qy,qz,qw] layout
	// dh.DenavitHartenberg.Forward produces (pkg/robot/kinematics/dh),
	// not a 4-vector: XYZW() on the full Effector would read
	// [x,y,z,qx], not the quaternion.
	eff := k.K.Effector()
	x, y, z := eff.XYZ()
	qx, qy, qz, qw := eff.Slice(3, 7).XYZW()
	return CartesianCoordinate{X: x, Y: y, Z: z, Qx: qx, Qy: qy, Qz: qz, Qw: qw}, true
}

func (k KinematicsTransform) Inverse(c CartesianCoordinate) (JointSpaceCoordinate, bool) {
	eff := k.K.Effector()
	eff.CopyFrom(0, vec.NewFrom(c.X, c.Y, c.Z))
	eff.CopyFrom(3, vec.NewFrom(c.Qx, c.Qy, c.Qz, c.Qw))
	if !k.K.Inverse() {
		return JointSpaceCoordinate{}, false
	}
	params := k.K.Params()
	var out JointSpaceCoordinate
	for i := 0; i < DOF && i < params.Len(); i++ {
		out[i] = params[i]
	}
	return out, true
}

// ToCartesian converts joint space to Cartesian, failing with
// dcerr.ErrUnreachable only in the Inverse direction — Forward is
// total on joints per spec.md §4.7.
func ToCartesian(t PoseTransform, j JointSpaceCoordinate) (CartesianCoordinate, error) {
	c, ok := t.Forward(j)
	if !ok {
		return CartesianCoordinate{}, errors.Wrap(dcerr.ErrInvariantViolation, "coordinate: forward kinematics failed")
	}
	return c, nil
}

// ToJointSpace converts Cartesian to joint space, failing with
// dcerr.ErrUnreachable when no IK solution exists.
func ToJointSpace(t PoseTransform, c CartesianCoordinate) (JointSpaceCoordinate, error) {
	j, ok := t.Inverse(c)
	if !ok {
		return JointSpaceCoordinate{}, errors.Wrap(dcerr.ErrUnreachable, "coordinate: no inverse kinematics solution")
	}
	return j, nil
}
