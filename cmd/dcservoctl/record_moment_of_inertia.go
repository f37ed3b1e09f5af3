package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/mcx/dcservo/pkg/host/scheduler"
)

// runRecordMomentOfInertia drives one joint through a sinusoidal
// position reference (the rest held at their start position) and
// reports position/velocity/control-signal/acceleration each cycle,
// grounded directly in main.cpp's recordeMomentOfInertia: amp*(1-cos)
// position, its derivative for velocity/acceleration, run for
// ceil(15*freq)/freq seconds.
func runRecordMomentOfInertia(ctx context.Context, log zerolog.Logger, args []string) error {
	fs := flag.NewFlagSet("record-moment-of-inertia", flag.ExitOnError)
	configPath := fs.String("config", "", "path to a robot config YAML file")
	port := fs.String("port", "", "serial device, overrides config")
	baud := fs.Int("baud", 0, "baud rate, overrides config")
	jointIdx := fs.Int("joint", 0, "joint index to drive")
	amp := fs.Float64("amp", 0.05, "sinusoid amplitude, radians")
	freq := fs.Float64("freq", 4.0, "sinusoid frequency, Hz")
	fs.Parse(args)

	r, ch, err := openRobot(ctx, log, *configPath, *port, *baud)
	if err != nil {
		return err
	}
	defer ch.Close()

	i := *jointIdx
	startPos := make([]float32, r.NumJoints())
	for j := 0; j < r.NumJoints(); j++ {
		startPos[j] = r.CurrentPosition(j)
	}

	var t float64
	freqScaling := *freq * 2 * math.Pi
	var pos, vel, acc float64

	r.SetHandlerFunctions(
		func(dt time.Duration, r *scheduler.Robot) {
			t += dt.Seconds()
			pos = float64(startPos[i]) + *amp*(1-math.Cos(t*freqScaling))
			vel = *amp * math.Sin(t*freqScaling) * freqScaling
			acc = *amp * math.Cos(t*freqScaling) * freqScaling * freqScaling

			for j := 0; j < r.NumJoints(); j++ {
				if j == i {
					r.Joint(j).SetReference(float32(pos), float32(vel), 0)
				} else {
					r.Joint(j).SetReference(startPos[j], 0, 0)
				}
			}
		},
		func(time.Duration, *scheduler.Robot) {
			joint := r.Joint(i)
			fmt.Printf("t:%.3f p:%.5f v:%.5f u:%.5f acc:%.5f\n",
				t, joint.GetPosition(), joint.GetVelocity(), joint.GetControlSignal(), acc)
		},
	)

	runTime := time.Duration(math.Ceil(15**freq) / *freq * float64(time.Second))
	runFor(ctx, r, runTime)
	return nil
}
