// Package path implements PathSource and PathAndMoveBuilder: a lazy
// sequence of TrajectoryItems chained from linear joint-space and
// Cartesian-space moves, grounded in
// original_source/MasterCommunication/src/main.cpp's createPath() and
// its JointSpaceLinearPath/CartesianSpaceLinearPath/
// PathAndMoveBuilder collaborators. spec.md §1 treats path geometry
// generation as an out-of-scope black box (`PathSource`); this package
// is the example builder SPEC_FULL.md §11 asks for, not a general
// motion-planning library.
package path

import (
	"github.com/chewxy/math32"
	"github.com/pkg/errors"

	"github.com/mcx/dcservo/pkg/coordinate"
	"github.com/mcx/dcservo/pkg/limits"
)

// maxSubdivisionDepth bounds CartesianSpaceLinearPath's recursive
// bisection, matching main.cpp's implicit assumption that a deviation
// limiter converges quickly for any reasonable path.
const maxSubdivisionDepth = 6

// Segment generates the TrajectoryItems needed to move from the
// current joint-space position to the segment's target, sampled dt
// apart, returning the joint-space position it ends at so the next
// segment can chain from it.
type Segment interface {
	Generate(from coordinate.JointSpaceCoordinate, dt float32) ([]coordinate.TrajectoryItem, coordinate.JointSpaceCoordinate, error)
}

func sub6(a, b [6]float32) [6]float32 {
	var out [6]float32
	for i := range out {
		out[i] = b[i] - a[i]
	}
	return out
}

func norm6(v [6]float32) float32 {
	var sumSqr float32
	for _, c := range v {
		sumSqr += c * c
	}
	return math32.Sqrt(sumSqr)
}

func lerpJoint(a, b coordinate.JointSpaceCoordinate, t float32) coordinate.JointSpaceCoordinate {
	var out coordinate.JointSpaceCoordinate
	for i := range out {
		out[i] = a[i] + t*(b[i]-a[i])
	}
	return out
}

func cartesianVector(c coordinate.CartesianCoordinate) [6]float32 {
	return [6]float32{c.X, c.Y, c.Z, c.Qx, c.Qy, c.Qz}
}

func lerpCartesian(a, b coordinate.CartesianCoordinate, t float32) coordinate.CartesianCoordinate {
	return coordinate.CartesianCoordinate{
		X:  a.X + t*(b.X-a.X),
		Y:  a.Y + t*(b.Y-a.Y),
		Z:  a.Z + t*(b.Z-a.Z),
		Qx: a.Qx + t*(b.Qx-a.Qx),
		Qy: a.Qy + t*(b.Qy-a.Qy),
		Qz: a.Qz + t*(b.Qz-a.Qz),
		Qw: a.Qw + t*(b.Qw-a.Qw),
	}
}

// linearSteps generates the actual P/V waypoints for a straight
// joint-space move from `from` to `to` at maxSpeed, which callers
// take as the norm of a unit direction passed through
// (*limits.VelocityLimiter).Limit.
func linearSteps(from, to coordinate.JointSpaceCoordinate, maxSpeed, dt float32) []coordinate.TrajectoryItem {
	delta := sub6(from, to)
	distance := norm6(delta)
	if distance == 0 {
		return nil
	}
	if maxSpeed <= 0 {
		maxSpeed = distance // degenerate limiter: cover the move in one dt
	}
	duration := distance / maxSpeed
	steps := int(math32.Ceil(duration / dt))
	if steps < 1 {
		steps = 1
	}

	var velocity coordinate.JointSpaceCoordinate
	for i := range velocity {
		velocity[i] = (to[i] - from[i]) / duration
	}

	items := make([]coordinate.TrajectoryItem, 0, steps)
	for s := 1; s <= steps; s++ {
		t := float32(s) / float32(steps)
		var item coordinate.TrajectoryItem
		item.P = lerpJoint(from, to, t)
		item.V = velocity
		items = append(items, item)
	}
	return items
}

// JointSpaceLinearPath is a straight-line move in joint space at the
// constant speed Fwd allows. Bwd is accepted to mirror main.cpp's
// call signature but is not read: the move has no separate
// deceleration phase. Dev is likewise unused for pure joint-space
// moves, since a linear interpolation never deviates from itself.
type JointSpaceLinearPath struct {
	Target   coordinate.JointSpaceCoordinate
	Fwd, Bwd *limits.VelocityLimiter
	Dev      *limits.JointSpaceDeviationLimiter
}

func (p JointSpaceLinearPath) Generate(from coordinate.JointSpaceCoordinate, dt float32) ([]coordinate.TrajectoryItem, coordinate.JointSpaceCoordinate, error) {
	delta := sub6(from, p.Target)
	distance := norm6(delta)
	if distance == 0 {
		return nil, p.Target, nil
	}
	direction := delta
	for i := range direction {
		direction[i] /= distance
	}
	maxSpeed := norm6(p.Fwd.Limit(direction))
	items := linearSteps(from, p.Target, maxSpeed, dt)
	return items, p.Target, nil
}

// CartesianSpaceLinearPath is a straight-line move in Cartesian space,
// realised in joint space via an injected coordinate.PoseTransform. It
// recursively bisects the segment when the actual joint-space-
// interpolated midpoint's Cartesian pose deviates from the straight
// Cartesian line by more than Dev allows, matching main.cpp's use of
// CartesianSpaceDeviationLimiter to keep multi-joint interpolation
// visually straight. As with JointSpaceLinearPath, only Fwd bounds the
// speed; Bwd is not read.
type CartesianSpaceLinearPath struct {
	Target    coordinate.CartesianCoordinate
	Fwd, Bwd  *limits.VelocityLimiter
	Dev       *limits.CartesianSpaceDeviationLimiter
	Transform coordinate.PoseTransform
}

func (p CartesianSpaceLinearPath) Generate(from coordinate.JointSpaceCoordinate, dt float32) ([]coordinate.TrajectoryItem, coordinate.JointSpaceCoordinate, error) {
	fromCart, err := coordinate.ToCartesian(p.Transform, from)
	if err != nil {
		return nil, from, err
	}
	return p.generate(from, fromCart, p.Target, dt, 0)
}

func (p CartesianSpaceLinearPath) generate(fromJoint coordinate.JointSpaceCoordinate, fromCart, targetCart coordinate.CartesianCoordinate, dt float32, depth int) ([]coordinate.TrajectoryItem, coordinate.JointSpaceCoordinate, error) {
	toJoint, err := coordinate.ToJointSpace(p.Transform, targetCart)
	if err != nil {
		return nil, fromJoint, err
	}

	if depth < maxSubdivisionDepth {
		midCartLinear := lerpCartesian(fromCart, targetCart, 0.5)
		midJointLinear := lerpJoint(fromJoint, toJoint, 0.5)
		actualMidCart, err := coordinate.ToCartesian(p.Transform, midJointLinear)
		if err == nil && p.Dev.ExceedsLimit(midCartLinear, actualMidCart) {
			firstItems, midJoint, err := p.generate(fromJoint, fromCart, midCartLinear, dt, depth+1)
			if err != nil {
				return nil, fromJoint, err
			}
			midCartActual, err := coordinate.ToCartesian(p.Transform, midJoint)
			if err != nil {
				return nil, fromJoint, err
			}
			secondItems, toJointActual, err := p.generate(midJoint, midCartActual, targetCart, dt, depth+1)
			if err != nil {
				return nil, fromJoint, err
			}
			return append(firstItems, secondItems...), toJointActual, nil
		}
	}

	direction := sub6(cartesianVector(fromCart), cartesianVector(targetCart))
	distance := norm6(direction)
	var maxSpeed float32
	if distance > 0 {
		for i := range direction {
			direction[i] /= distance
		}
		maxSpeed = norm6(p.Fwd.Limit(direction))
	}
	items := linearSteps(fromJoint, toJoint, maxSpeed, dt)
	return items, toJoint, nil
}

// PathAndMoveBuilder chains Segments into a single lazy PathSource,
// grounded in main.cpp's PathAndMoveBuilder::append/createPath.
type PathAndMoveBuilder struct {
	segments []Segment
	lastErr  error
}

// Append adds a segment to the end of the builder's chain and returns
// the builder, so calls compose the way main.cpp's createPath() does.
func (b *PathAndMoveBuilder) Append(seg Segment) *PathAndMoveBuilder {
	b.segments = append(b.segments, seg)
	return b
}

// Build realises the chain into a sampler.Producer-compatible lazy
// sequence (func() (coordinate.TrajectoryItem, bool)), starting from
// start. Each segment is only materialised once the previous one is
// exhausted, so a long chain never holds more than one segment's
// waypoints in memory at a time.
func (b *PathAndMoveBuilder) Build(start coordinate.JointSpaceCoordinate, dt float32) func() (coordinate.TrajectoryItem, bool) {
	segIdx := 0
	var pending []coordinate.TrajectoryItem
	pendingIdx := 0
	cur := start

	return func() (coordinate.TrajectoryItem, bool) {
		for {
			if b.lastErr != nil {
				return coordinate.TrajectoryItem{}, false
			}
			if pendingIdx < len(pending) {
				item := pending[pendingIdx]
				pendingIdx++
				return item, true
			}
			if segIdx >= len(b.segments) {
				return coordinate.TrajectoryItem{}, false
			}
			items, to, err := b.segments[segIdx].Generate(cur, dt)
			segIdx++
			if err != nil {
				b.lastErr = errors.Wrap(err, "path: segment generation failed")
				return coordinate.TrajectoryItem{}, false
			}
			cur = to
			pending = items
			pendingIdx = 0
		}
	}
}

// Err returns the first segment-generation error Build's producer
// encountered, or nil if the chain has not failed. Callers that need
// to distinguish "end of trajectory" from "unreachable target" should
// check this after the producer returns ok == false.
func (b *PathAndMoveBuilder) Err() error {
	return b.lastErr
}
