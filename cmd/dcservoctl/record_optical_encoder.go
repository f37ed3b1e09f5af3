package main

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/mcx/dcservo/pkg/host/scheduler"
)

// runRecordOpticalEncoder drives one joint open-loop at a fixed PWM
// and streams its raw optical-diagnostic bytes for the given
// duration, grounded in main.cpp's recordeOpticalEncoderData: a
// calibration-table fit is out of scope (spec.md's sensor-fusion
// non-goal), so this only captures the raw frames a later offline fit
// would consume.
func runRecordOpticalEncoder(ctx context.Context, log zerolog.Logger, args []string) error {
	fs := flag.NewFlagSet("record-optical-encoder", flag.ExitOnError)
	configPath := fs.String("config", "", "path to a robot config YAML file")
	port := fs.String("port", "", "serial device, overrides config")
	baud := fs.Int("baud", 0, "baud rate, overrides config")
	jointIdx := fs.Int("joint", 0, "joint index to drive")
	pwm := fs.Float64("pwm", 13.0, "open-loop PWM signal to apply")
	duration := fs.Duration("duration", 100*time.Second, "how long to record")
	fs.Parse(args)

	r, ch, err := openRobot(ctx, log, *configPath, *port, *baud)
	if err != nil {
		return err
	}
	defer ch.Close()

	i := *jointIdx
	start := time.Now()
	r.SetHandlerFunctions(
		func(time.Duration, *scheduler.Robot) {
			r.Joint(i).SetOpenLoopControlSignal(float32(*pwm), true)
		},
		func(time.Duration, *scheduler.Robot) {
			data := r.Joint(i).GetOpticalEncoderChannelData()
			fmt.Printf("t:%.3f data:%s\n", time.Since(start).Seconds(), hex.EncodeToString(data))
		},
	)

	runFor(ctx, r, *duration)
	return nil
}
