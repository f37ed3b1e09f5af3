//go:build !tinygo

package transport

import (
	"bufio"
	"context"
	"io"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/tarm/serial"
)

// SerialChannel is a Channel backed by a real serial port via
// tarm/serial, the teacher's own (indirect) serial dependency.
type SerialChannel struct {
	port *serial.Port
	r    *bufio.Reader

	writeMu sync.Mutex
}

// OpenSerial opens the named device at the given baud rate. spec.md
// §6 requires 115200+ baud and length-prefixed framing with CRC,
// both satisfied by this Channel.
func OpenSerial(device string, baud int) (*SerialChannel, error) {
	cfg := &serial.Config{Name: device, Baud: baud, ReadTimeout: time.Second}
	port, err := serial.OpenPort(cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "transport: opening %s", device)
	}
	return &SerialChannel{port: port, r: bufio.NewReaderSize(port, 256)}, nil
}

func (c *SerialChannel) SendTo(nodeID, opcode byte, payload []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	buf := Encode(Frame{NodeID: nodeID, Opcode: opcode, Data: payload})
	for len(buf) > 0 {
		n, err := c.port.Write(buf)
		if err != nil {
			return errors.Wrap(err, "transport: serial write")
		}
		buf = buf[n:]
	}
	return nil
}

func (c *SerialChannel) Receive(ctx context.Context) (Frame, error) {
	type result struct {
		f   Frame
		err error
	}
	done := make(chan result, 1)
	go func() {
		f, err := Decode(c.r)
		done <- result{f, err}
	}()

	select {
	case <-ctx.Done():
		return Frame{}, ctx.Err()
	case res := <-done:
		return res.f, res.err
	}
}

func (c *SerialChannel) Close() error {
	return c.port.Close()
}

// SimChannel is an in-process Channel over a pair of pipes, used by
// host-side tests to stand in for a real serial link without any
// actual hardware, following the teacher's own preference for testing
// against real interfaces rather than mocks.
type SimChannel struct {
	w io.WriteCloser
	r *bufio.Reader
	c io.Closer
}

// NewSimChannelPair returns two SimChannels wired back to back: frames
// sent on one arrive on the other.
func NewSimChannelPair() (a, b *SimChannel) {
	r1, w1 := io.Pipe()
	r2, w2 := io.Pipe()
	a = &SimChannel{w: w2, r: bufio.NewReaderSize(r1, 256), c: r1}
	b = &SimChannel{w: w1, r: bufio.NewReaderSize(r2, 256), c: r2}
	return
}

func (c *SimChannel) SendTo(nodeID, opcode byte, payload []byte) error {
	buf := Encode(Frame{NodeID: nodeID, Opcode: opcode, Data: payload})
	_, err := c.w.Write(buf)
	return err
}

func (c *SimChannel) Receive(ctx context.Context) (Frame, error) {
	type result struct {
		f   Frame
		err error
	}
	done := make(chan result, 1)
	go func() {
		f, err := Decode(c.r)
		done <- result{f, err}
	}()

	select {
	case <-ctx.Done():
		return Frame{}, ctx.Err()
	case res := <-done:
		return res.f, res.err
	}
}

func (c *SimChannel) Close() error {
	_ = c.w.Close()
	return c.c.Close()
}
