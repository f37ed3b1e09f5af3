package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/chewxy/math32"
	"github.com/rs/zerolog"

	"github.com/mcx/dcservo/pkg/coordinate"
	"github.com/mcx/dcservo/pkg/host/sampler"
	"github.com/mcx/dcservo/pkg/host/scheduler"
	"github.com/mcx/dcservo/pkg/limits"
	"github.com/mcx/dcservo/pkg/path"
	"github.com/mcx/dcservo/pkg/robot/kinematics/dh"
)

// defaultArmTransform builds an illustrative 6-DOF revolute DH chain
// for play-path's demo trajectory. spec.md treats the kinematics
// solver as an injected black box (coordinate.PoseTransform); the
// exact link geometry here is demonstrative only, not a specific
// robot's measured dimensions.
func defaultArmTransform() coordinate.PoseTransform {
	k := dh.New(1e-4, 50,
		dh.Config{Min: -math32.Pi, Max: math32.Pi, Alpha: math32.Pi / 2, D: 0.10, Index: 0},
		dh.Config{Min: -math32.Pi, Max: math32.Pi, R: 0.30, Index: 0},
		dh.Config{Min: -math32.Pi, Max: math32.Pi, Alpha: math32.Pi / 2, Index: 0},
		dh.Config{Min: -math32.Pi, Max: math32.Pi, Alpha: -math32.Pi / 2, D: 0.25, Index: 0},
		dh.Config{Min: -math32.Pi, Max: math32.Pi, Alpha: math32.Pi / 2, Index: 0},
		dh.Config{Min: -math32.Pi, Max: math32.Pi, D: 0.08, Index: 0},
	)
	return coordinate.KinematicsTransform{K: k}
}

// createPath builds the example chain main.cpp's createPath()
// assembles: an isotropic joint-space velocity limiter and a linear
// move out to targetJoint followed by a linear move back to start.
//
// main.cpp also chains a CartesianSpaceLinearPath segment using the
// robot's IK; this demo does not, because the teacher's own
// dh.DenavitHartenberg.Inverse() is an unconditional stub (always
// returns false), so any CartesianSpaceLinearPath built on it would
// fail path generation on its first segment. CartesianSpaceLinearPath
// itself is still exercised, with a working fake transform, by
// pkg/path's own tests.
func createPath(start, targetJoint coordinate.JointSpaceCoordinate) *path.PathAndMoveBuilder {
	fwd := limits.NewVelocityLimiter(3.0)
	bwd := limits.NewVelocityLimiter(3.0)
	dev := limits.NewJointSpaceDeviationLimiter(limits.MaxFloat32)

	var b path.PathAndMoveBuilder
	b.Append(path.JointSpaceLinearPath{
		Target: targetJoint,
		Fwd:    fwd,
		Bwd:    bwd,
		Dev:    dev,
	}).Append(path.JointSpaceLinearPath{
		Target: start,
		Fwd:    fwd,
		Bwd:    bwd,
		Dev:    dev,
	})
	return &b
}

// runPlayPath samples a built path at the scheduler's cycle rate and
// streams it to every joint until the trajectory is exhausted or
// communication fails, grounded directly in main.cpp's playPath().
func runPlayPath(ctx context.Context, log zerolog.Logger, args []string) error {
	fs := flag.NewFlagSet("play-path", flag.ExitOnError)
	configPath := fs.String("config", "", "path to a robot config YAML file")
	port := fs.String("port", "", "serial device, overrides config")
	baud := fs.Int("baud", 0, "baud rate, overrides config")
	playbackSpeed := fs.Float64("speed", 1.0, "playback speed, must be <= 1.0")
	inputDt := fs.Float64("input-dt", 0.01, "path's sample spacing, seconds")
	fs.Parse(args)

	r, ch, err := openRobot(ctx, log, *configPath, *port, *baud)
	if err != nil {
		return err
	}
	defer ch.Close()

	var start coordinate.JointSpaceCoordinate
	for i := 0; i < r.NumJoints() && i < coordinate.DOF; i++ {
		start[i] = r.CurrentPosition(i)
	}

	targetJoint := start
	targetJoint[0] += 0.2

	transform := defaultArmTransform()
	if pose, err := coordinate.ToCartesian(transform, start); err == nil {
		log.Info().Float32("x", pose.X).Float32("y", pose.Y).Float32("z", pose.Z).Msg("start pose")
	}

	builder := createPath(start, targetJoint)
	producer := builder.Build(start, float32(*inputDt))

	s, err := sampler.New(producer, float32(*inputDt), float32(*playbackSpeed))
	if err != nil {
		return err
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var t float64
	r.SetHandlerFunctions(
		func(dt time.Duration, r *scheduler.Robot) {
			s.Increment(float32(dt.Seconds()) * float32(*playbackSpeed))
			item := s.GetSample()
			for i := 0; i < r.NumJoints() && i < coordinate.DOF; i++ {
				r.Joint(i).SetReference(item.P[i], item.V[i], item.U[i])
			}
		},
		func(dt time.Duration, r *scheduler.Robot) {
			t += dt.Seconds()
			fmt.Printf("t:%.3f", t)
			for i := 0; i < r.NumJoints(); i++ {
				fmt.Printf(" p%d:%.4f", i, r.Joint(i).GetPosition())
			}
			fmt.Println()

			commOK := true
			for i := 0; i < r.NumJoints(); i++ {
				commOK = commOK && r.Joint(i).IsCommunicationOk()
			}
			if s.ReachedEnd() || !commOK {
				if err := builder.Err(); err != nil {
					log.Warn().Err(err).Msg("path build failed")
				}
				cancel()
			}
		},
	)

	go r.Run(runCtx)
	<-r.Done()
	r.RemoveHandlerFunctions()

	return builder.Err()
}
