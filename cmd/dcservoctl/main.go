// Command dcservoctl is the host-side CLI: four bring-up and
// calibration modes grounded directly in
// original_source/MasterCommunication/src/main.cpp's mode functions,
// reusing cmd/clients/manipulator/main.go's flag-based argument
// parsing idiom.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"

	"github.com/mcx/dcservo/config"
	"github.com/mcx/dcservo/pkg/host/joint"
	"github.com/mcx/dcservo/pkg/host/scheduler"
	"github.com/mcx/dcservo/pkg/logger"
	"github.com/mcx/dcservo/pkg/transport"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	log := logger.Log.With().Str("cmd", "dcservoctl").Logger()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	mode := os.Args[1]
	args := os.Args[2:]

	var err error
	switch mode {
	case "record-optical-encoder":
		err = runRecordOpticalEncoder(ctx, log, args)
	case "record-moment-of-inertia":
		err = runRecordMomentOfInertia(ctx, log, args)
	case "record-current-pwm":
		err = runRecordCurrentPWM(ctx, log, args)
	case "play-path":
		err = runPlayPath(ctx, log, args)
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: dcservoctl <mode> [flags]")
	fmt.Fprintln(os.Stderr, "  modes: record-optical-encoder, record-moment-of-inertia, record-current-pwm, play-path")
}

// openRobot loads the configuration, opens the serial transport, and
// blocks until every joint's handshake reaches Ready, matching
// main.cpp's Robot constructor loop.
func openRobot(ctx context.Context, log zerolog.Logger, configPath, port string, baud int) (*scheduler.Robot, *transport.SerialChannel, error) {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, nil, err
		}
		cfg = loaded
	}
	if port != "" {
		cfg.SerialPort = port
	}
	if baud != 0 {
		cfg.Baud = baud
	}

	ch, err := transport.OpenSerial(cfg.SerialPort, cfg.Baud)
	if err != nil {
		return nil, nil, err
	}

	joints := make([]*joint.Communicator, 0, len(cfg.Joints))
	for _, spec := range cfg.Specs() {
		joints = append(joints, joint.New(ch, spec, log))
	}

	r := scheduler.New(joints, cfg.CycleTime, log)
	if err := r.WaitForInit(ctx); err != nil {
		ch.Close()
		return nil, nil, err
	}

	return r, ch, nil
}

// runFor runs the scheduler for the given duration then tears down
// its handler functions, the shared tail of every recording mode.
func runFor(ctx context.Context, r *scheduler.Robot, d time.Duration) {
	runCtx, cancel := context.WithTimeout(ctx, d)
	defer cancel()

	go r.Run(runCtx)
	<-r.Done()
	r.RemoveHandlerFunctions()
}
