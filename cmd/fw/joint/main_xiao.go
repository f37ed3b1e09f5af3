//go:build sam && xiao

package main

//go:generate tinygo flash -target=xiao -tags logless

import (
	"context"
	"machine"
	"time"

	"github.com/rs/zerolog"

	"github.com/mcx/dcservo/pkg/device/estimator"
	"github.com/mcx/dcservo/pkg/device/interpolator"
	"github.com/mcx/dcservo/pkg/device/servoloop"
	"github.com/mcx/dcservo/pkg/host/joint"
	"github.com/mcx/dcservo/pkg/transport"
	hwencoder "github.com/mcx/dcservo/x/devices/encoder"
	"github.com/mcx/dcservo/x/devices/xiao"
)

var (
	uart = machine.Serial
	tx   = machine.UART_TX_PIN
	rx   = machine.UART_RX_PIN

	encoderPinA machine.Pin = machine.D2
	encoderPinB machine.Pin = machine.D3
	motorPWMPin machine.Pin = machine.D8

	uMax float32 = 10
)

func blink(led machine.Pin, t time.Duration) {
	for {
		time.Sleep(t)
		led.Set(!led.Get())
	}
}

// boardClock wraps the runtime's microsecond clock as an
// interpolator.Clock.
type boardClock struct{}

func (boardClock) NowMicros() int64 { return time.Now().UnixMicro() }

func main() {
	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	uart.Configure(machine.UARTConfig{TX: tx, RX: rx})

	encoderPinA.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	encoderPinB.Configure(machine.PinConfig{Mode: machine.PinInputPullup})

	enc := hwencoder.New(encoderPinA, encoderPinB, hwencoder.DefaultConfig())
	if err := enc.Configure(); err != nil {
		blink(led, 200*time.Millisecond)
		return
	}

	pwmDev := xiao.NewPWMDevice()
	if err := pwmDev.Configure(20000); err != nil {
		blink(led, 200*time.Millisecond)
		return
	}
	pwmCh, err := pwmDev.Channel(motorPWMPin)
	if err != nil {
		blink(led, 200*time.Millisecond)
		return
	}

	spec := joint.DefaultSpecs[0]
	ch := transport.NewStreamChannel(uart)

	loop := servoloop.New(servoloop.Config{
		MainEncoder: &quadratureSource{dev: enc},
		Sink:        &pwmSink{pwm: pwmCh, uMax: uMax},
		Ref:         interpolator.New(boardClock{}),
		Observer:    estimator.New(DefaultGainsTable(), defaultControlSpeed),
		Gains:       servoloop.Gains{2, 2, 0.5, 0.5, 0.1},
		Dt:          float32(controlTickSeconds),
		UMin:        -uMax,
		UMax:        uMax,
	})

	j := NewJoint(spec.NodeID, ch, loop, time.Duration(controlTickSeconds*float32(time.Second)), zerolog.Nop())

	defer blink(led, 1500*time.Millisecond)
	if err := j.Run(context.Background()); err != nil {
		blink(led, 50*time.Millisecond)
	}
}
