// Package scheduler implements RobotScheduler: the fixed-cycle host
// worker that fans out references to N JointCommunicators and reads
// back telemetry, grounded in
// original_source/MasterCommunication/src/main.cpp's Robot::run().
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/mcx/dcservo/pkg/host/joint"
)

// DefaultCycleTime matches the device's loadTimeInterval (12ms).
const DefaultCycleTime = 12 * time.Millisecond

// SendHandler populates each joint's reference for the upcoming cycle.
type SendHandler func(cycleTime time.Duration, r *Robot)

// RecvHandler observes telemetry collected during the cycle just run.
// Per SPEC_FULL.md §12, currentPosition reflects *post-dispatch*
// values: this tick's run() has already executed for every joint by
// the time RecvHandler is invoked.
type RecvHandler func(cycleTime time.Duration, r *Robot)

func noopSend(time.Duration, *Robot) {}
func noopRecv(time.Duration, *Robot) {}

type handlerPair struct {
	send SendHandler
	recv RecvHandler
}

// Robot owns N JointCommunicators and the single worker goroutine
// that drives them at a fixed cycle time.
type Robot struct {
	joints    []*joint.Communicator
	cycleTime time.Duration
	log       zerolog.Logger

	handlerMu sync.Mutex
	handlers  handlerPair

	currentPositionMu sync.RWMutex
	currentPosition   []float32

	doneCh      chan struct{}
	shuttingDown bool
	shutdownMu   sync.Mutex

	cyclesBehindLogged bool
}

// New builds a Robot over the given joints. Callers should spin
// WaitForInit before Start, matching spec.md §4.6's handshake gate.
func New(joints []*joint.Communicator, cycleTime time.Duration, log zerolog.Logger) *Robot {
	if cycleTime == 0 {
		cycleTime = DefaultCycleTime
	}
	return &Robot{
		joints:          joints,
		cycleTime:       cycleTime,
		log:             log,
		handlers:        handlerPair{send: noopSend, recv: noopRecv},
		currentPosition: make([]float32, len(joints)),
		doneCh:          make(chan struct{}),
	}
}

// WaitForInit repeatedly calls Run on every joint's Communicator
// until all report IsInitComplete, matching main.cpp's constructor
// loop (`while(any_of(...!isInitComplete()))`).
func (r *Robot) WaitForInit(ctx context.Context) error {
	for {
		allReady := true
		for _, j := range r.joints {
			if !j.IsInitComplete() {
				if err := j.Run(ctx); err != nil {
					r.log.Warn().Err(err).Msg("joint init run failed, retrying")
				}
				allReady = false
			}
		}
		if allReady {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(r.cycleTime):
		}
	}
}

// SetHandlerFunctions atomically replaces both handlers.
func (r *Robot) SetHandlerFunctions(send SendHandler, recv RecvHandler) {
	r.handlerMu.Lock()
	defer r.handlerMu.Unlock()
	r.handlers = handlerPair{send: send, recv: recv}
}

// RemoveHandlerFunctions installs no-ops for both handlers, e.g. after
// a communication failure tears down playback.
func (r *Robot) RemoveHandlerFunctions() {
	r.SetHandlerFunctions(noopSend, noopRecv)
}

// Joint returns the i'th joint's Communicator, for handlers to call
// SetReference/GetPosition/etc.
func (r *Robot) Joint(i int) *joint.Communicator {
	return r.joints[i]
}

// NumJoints returns the joint count.
func (r *Robot) NumJoints() int {
	return len(r.joints)
}

// CurrentPosition returns the i'th joint's position as materialised
// during the most recently completed cycle.
func (r *Robot) CurrentPosition(i int) float32 {
	r.currentPositionMu.RLock()
	defer r.currentPositionMu.RUnlock()
	return r.currentPosition[i]
}

// Run drives the fixed-cycle loop until the context is cancelled or
// Shutdown is called. It blocks; callers run it in its own goroutine
// and wait on Done().
func (r *Robot) Run(ctx context.Context) {
	defer close(r.doneCh)

	deadline := time.Now().Add(r.cycleTime)
	for {
		if r.isShuttingDown() {
			return
		}

		now := time.Now()
		if now.Before(deadline) {
			select {
			case <-ctx.Done():
				return
			case <-time.After(deadline.Sub(now)):
			}
		} else if deadline.Add(r.cycleTime).Before(now) {
			// More than one cycle behind: catch up without sleeping,
			// but log it, per spec.md §4.6's "never runs more than one
			// cycle behind without logging".
			if !r.cyclesBehindLogged {
				r.log.Warn().Msg("scheduler missed more than one cycle, catching up")
				r.cyclesBehindLogged = true
			}
		} else {
			r.cyclesBehindLogged = false
		}
		deadline = deadline.Add(r.cycleTime)

		r.handlerMu.Lock()
		handlers := r.handlers
		r.handlerMu.Unlock()

		handlers.send(r.cycleTime, r)

		for _, j := range r.joints {
			if err := j.Run(ctx); err != nil {
				r.log.Debug().Err(err).Msg("joint run failed this cycle")
			}
		}

		r.currentPositionMu.Lock()
		for i, j := range r.joints {
			r.currentPosition[i] = j.GetPosition()
		}
		r.currentPositionMu.Unlock()

		handlers.recv(r.cycleTime, r)
	}
}

// Shutdown sets the shutdown flag; the running worker observes it at
// the top of its next cycle and returns. Idempotent.
func (r *Robot) Shutdown() {
	r.shutdownMu.Lock()
	r.shuttingDown = true
	r.shutdownMu.Unlock()
}

func (r *Robot) isShuttingDown() bool {
	r.shutdownMu.Lock()
	defer r.shutdownMu.Unlock()
	return r.shuttingDown
}

// Done returns a channel closed once Run has returned.
func (r *Robot) Done() <-chan struct{} {
	return r.doneCh
}
