package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/mcx/dcservo/pkg/host/scheduler"
)

// runRecordCurrentPWM steps one joint through a fixed open-loop PWM
// sequence, one step per second, grounded directly in main.cpp's
// recordeCurrentAndPwmBehaviour's pwmTestVec: {p/4,0,-p/4,0, 2p/4,0,
// -2p/4,0, 3p/4,0,-3p/4,0, p,0,-p,0}.
func runRecordCurrentPWM(ctx context.Context, log zerolog.Logger, args []string) error {
	fs := flag.NewFlagSet("record-current-pwm", flag.ExitOnError)
	configPath := fs.String("config", "", "path to a robot config YAML file")
	port := fs.String("port", "", "serial device, overrides config")
	baud := fs.Int("baud", 0, "baud rate, overrides config")
	jointIdx := fs.Int("joint", 0, "joint index to drive")
	pwm := fs.Float64("pwm", 200.0, "peak open-loop PWM signal")
	fs.Parse(args)

	r, ch, err := openRobot(ctx, log, *configPath, *port, *baud)
	if err != nil {
		return err
	}
	defer ch.Close()

	i := *jointIdx
	quarter := *pwm / 4.0
	steps := []float64{
		quarter, 0, -quarter, 0,
		2 * quarter, 0, -2 * quarter, 0,
		3 * quarter, 0, -3 * quarter, 0,
		4 * quarter, 0, -4 * quarter, 0,
	}

	start := time.Now()
	r.SetHandlerFunctions(
		func(time.Duration, *scheduler.Robot) {
			idx := int(time.Since(start).Seconds())
			var p float64
			if idx < len(steps) {
				p = steps[idx]
			}
			r.Joint(i).SetOpenLoopControlSignal(float32(p), true)
		},
		func(time.Duration, *scheduler.Robot) {
			joint := r.Joint(i)
			fmt.Printf("t:%.3f p:%.5f v:%.5f u:%.5f\n",
				time.Since(start).Seconds(), joint.GetPosition(), joint.GetVelocity(), joint.GetControlSignal())
		},
	)

	runFor(ctx, r, time.Duration(len(steps))*time.Second)
	return nil
}
