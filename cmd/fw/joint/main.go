//go:build !tinygo

// Simulation entrypoint: runs the same Joint wiring as main_xiao.go
// against an in-process SimChannel and a first-order simulated motor
// instead of real hardware, so the device-side stack can be exercised
// without a board, mirroring the teacher's own preference for testing
// against real interfaces (here, the real Channel/servoloop code)
// rather than mocks.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"time"

	"github.com/mcx/dcservo/pkg/device/estimator"
	"github.com/mcx/dcservo/pkg/device/interpolator"
	"github.com/mcx/dcservo/pkg/device/servoloop"
	"github.com/mcx/dcservo/pkg/host/joint"
	"github.com/mcx/dcservo/pkg/logger"
	"github.com/mcx/dcservo/pkg/transport"
)

// simPlant is a second-order simulated motor: the commanded signal is
// integrated into velocity and velocity into position (a double
// integrator), giving the control loop something non-trivial to
// converge against. It implements both
// encoder.Source (Sample) and currentsink.Sink (Drive/DrivePWM).
type simPlant struct {
	pos, vel float32
	dt       float32
}

func (p *simPlant) Drive(signal float32) { p.vel += signal * p.dt; p.pos += p.vel * p.dt }
func (p *simPlant) DrivePWM(pwm float32) { p.Drive(pwm * 0.1) }
func (p *simPlant) Sample() float32      { return p.pos }

type simClock struct{ start time.Time }

func (c *simClock) NowMicros() int64 { return time.Since(c.start).Microseconds() }

func main() {
	nodeID := flag.Int("node", int(joint.DefaultSpecs[0].NodeID), "node id to answer as")
	target := flag.Float64("target", 1.0, "reference position (radians) to command once the handshake completes")
	flag.Parse()

	log := logger.Log.With().Str("cmd", "fw-joint-sim").Logger()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	hostCh, devCh := transport.NewSimChannelPair()
	defer hostCh.Close()
	defer devCh.Close()

	plant := &simPlant{dt: float32(controlTickSeconds)}
	ref := interpolator.New(&simClock{start: time.Now()})
	obs := estimator.New(DefaultGainsTable(), defaultControlSpeed)

	loop := servoloop.New(servoloop.Config{
		MainEncoder: plant,
		Sink:        plant,
		Ref:         ref,
		Observer:    obs,
		Gains:       servoloop.Gains{2, 2, 0.5, 0.5, 0.1},
		Dt:          float32(controlTickSeconds),
		UMin:        -10,
		UMax:        10,
	})

	spec := joint.DefaultSpecs[0]
	spec.NodeID = byte(*nodeID)
	hostComm := joint.New(hostCh, spec, log)

	go func() {
		ticker := time.NewTicker(12 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := hostComm.Run(ctx); err != nil {
					continue
				}
				if hostComm.IsInitComplete() {
					hostComm.SetReference(float32(*target), 0, 0)
					log.Info().Float32("position", hostComm.GetPosition()).Msg("tick")
				}
			}
		}
	}()

	dev := NewJoint(spec.NodeID, devCh, loop, time.Duration(controlTickSeconds*float32(time.Second)), log)
	if err := dev.Run(ctx); err != nil && ctx.Err() == nil {
		log.Error().Err(err).Msg("device run failed")
	}
}
