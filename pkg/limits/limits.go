// Package limits implements the VelocityLimiter,
// JointSpaceDeviationLimiter and CartesianSpaceDeviationLimiter
// path-builder collaborators from spec.md §4.7, grounded in
// original_source/MasterCommunication/src/main.cpp's createPath()
// (VelocityLimiter(magnitude), VelocityLimiter(magnitude, mask).add(),
// JointSpaceDeviationLimiter(max), CartesianSpaceDeviationLimiter(max)).
package limits

import (
	"math"

	"github.com/chewxy/math32"

	"github.com/mcx/dcservo/pkg/coordinate"
)

// DOF mirrors coordinate.DOF: this robot is fixed at 6 joints.
const DOF = coordinate.DOF

// constraint is one (magnitude, direction-mask) pair. direction need
// not be a unit vector: main.cpp passes {1,1,1,0,0,0}-style component
// masks rather than normalized directions, selecting which components
// a given magnitude bound applies to.
type constraint struct {
	magnitude float32
	direction [DOF]float32
}

// allOnes is the direction mask for an isotropic constraint: the bound
// applies to the vector's full Euclidean norm.
var allOnes = [DOF]float32{1, 1, 1, 1, 1, 1}

// VelocityLimiter is a list of (magnitude, direction-mask) constraints
// combined as the minimum of projected limits, per spec.md §4.7.
type VelocityLimiter struct {
	constraints []constraint
}

// NewVelocityLimiter builds an isotropic limiter: magnitude bounds the
// vector's full Euclidean norm, matching main.cpp's
// `VelocityLimiter(3.0)` single-argument form.
func NewVelocityLimiter(magnitude float32) *VelocityLimiter {
	return &VelocityLimiter{constraints: []constraint{{magnitude: magnitude, direction: allOnes}}}
}

// NewMaskedVelocityLimiter builds a limiter whose first constraint
// only bounds the components selected by direction, matching
// main.cpp's `VelocityLimiter(0.1, {1,1,1,0,0,0})` form.
func NewMaskedVelocityLimiter(magnitude float32, direction [DOF]float32) *VelocityLimiter {
	return &VelocityLimiter{constraints: []constraint{{magnitude: magnitude, direction: direction}}}
}

// Add extends the constraint set, matching main.cpp's
// `cartesianVelocityLimiter.add(0.4, {0,0,0,1,1,1})`.
func (l *VelocityLimiter) Add(magnitude float32, direction [DOF]float32) {
	l.constraints = append(l.constraints, constraint{magnitude: magnitude, direction: direction})
}

// Limit scales v down, if necessary, so that every constraint's
// masked projection stays within its magnitude. The overall scale
// factor is the minimum across constraints: tightening any one
// constraint never loosens another.
func (l *VelocityLimiter) Limit(v [DOF]float32) [DOF]float32 {
	scale := float32(1.0)
	for _, c := range l.constraints {
		var sumSqr float32
		for i := 0; i < DOF; i++ {
			p := v[i] * c.direction[i]
			sumSqr += p * p
		}
		projected := math32.Sqrt(sumSqr)
		if projected <= c.magnitude || projected == 0 {
			continue
		}
		if s := c.magnitude / projected; s < scale {
			scale = s
		}
	}
	var out [DOF]float32
	for i := 0; i < DOF; i++ {
		out[i] = v[i] * scale
	}
	return out
}

// MaxDeviation caps the allowed deviation, in joint space, between a
// planned path segment's linear interpolation and the segment's
// actual midpoint; used by the path builder to decide whether to
// subdivide a segment. Passing math.MaxFloat32 disables subdivision,
// matching main.cpp's `JointSpaceDeviationLimiter(max)`.
type JointSpaceDeviationLimiter struct {
	max float32
}

// NewJointSpaceDeviationLimiter builds a limiter with the given
// threshold. Use math.MaxFloat32 to disable subdivision entirely.
func NewJointSpaceDeviationLimiter(max float32) *JointSpaceDeviationLimiter {
	return &JointSpaceDeviationLimiter{max: max}
}

// ExceedsLimit reports whether actualMid deviates from
// interpolatedMid by more than the configured threshold, in any
// single joint component.
func (l *JointSpaceDeviationLimiter) ExceedsLimit(interpolatedMid, actualMid coordinate.JointSpaceCoordinate) bool {
	for i := 0; i < DOF; i++ {
		if math32.Abs(actualMid[i]-interpolatedMid[i]) > l.max {
			return true
		}
	}
	return false
}

// CartesianSpaceDeviationLimiter is the Cartesian-space analogue of
// JointSpaceDeviationLimiter. It supports per-group thresholds via
// Add, exactly like VelocityLimiter, matching main.cpp's
// `deviationLimiterCartesian->add(0.01, {0,0,0,1,1,1})` (translation
// capped at the constructor's threshold, rotation capped separately).
type CartesianSpaceDeviationLimiter struct {
	constraints []cartesianConstraint
}

type cartesianConstraint struct {
	max       float32
	direction [6]float32
}

// NewCartesianSpaceDeviationLimiter builds a limiter whose first
// constraint applies to the translation components (position XYZ);
// orientation is only bounded by constraints added with Add. Use
// math.MaxFloat32 to disable subdivision.
func NewCartesianSpaceDeviationLimiter(max float32) *CartesianSpaceDeviationLimiter {
	return &CartesianSpaceDeviationLimiter{constraints: []cartesianConstraint{{max: max, direction: [6]float32{1, 1, 1, 0, 0, 0}}}}
}

// Add extends the constraint set with a component-masked threshold.
func (l *CartesianSpaceDeviationLimiter) Add(max float32, direction [6]float32) {
	l.constraints = append(l.constraints, cartesianConstraint{max: max, direction: direction})
}

func cartesianDelta(a, b coordinate.CartesianCoordinate) [6]float32 {
	return [6]float32{
		b.X - a.X, b.Y - a.Y, b.Z - a.Z,
		b.Qx - a.Qx, b.Qy - a.Qy, b.Qz - a.Qz,
	}
}

// ExceedsLimit reports whether actualMid deviates from
// interpolatedMid by more than any constraint's masked threshold.
func (l *CartesianSpaceDeviationLimiter) ExceedsLimit(interpolatedMid, actualMid coordinate.CartesianCoordinate) bool {
	delta := cartesianDelta(interpolatedMid, actualMid)
	for _, c := range l.constraints {
		var sumSqr float32
		for i := 0; i < 6; i++ {
			p := delta[i] * c.direction[i]
			sumSqr += p * p
		}
		if math32.Sqrt(sumSqr) > c.max {
			return true
		}
	}
	return false
}

// MaxFloat32 re-exports math.MaxFloat32 for callers building an
// "effectively disabled" deviation limiter, matching main.cpp's
// `std::numeric_limits<double>::max()` idiom.
const MaxFloat32 = math.MaxFloat32
