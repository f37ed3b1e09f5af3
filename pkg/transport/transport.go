// Package transport implements the Channel collaborator: a
// magic-number, length-prefixed, CRC-checked framing over a serial
// link (or an in-process pipe for tests), in the same shape as the
// teacher's pkg/robot/transport package but without a protobuf
// dependency — payloads are opaque byte slices the caller (joint
// package) encodes/decodes itself with encoding/binary.
package transport

import (
	"context"
	"encoding/binary"
	"hash/crc32"
	"io"

	"github.com/pkg/errors"
)

// Magic identifies the start of a frame on the wire.
const Magic uint32 = 0xBADAB00A

const headerSize = 4 + 1 + 1 + 4 + 4 // magic, nodeID, opcode, length, crc

// Frame is one decoded packet: the node id (1..6, a joint), an opcode
// the JointCommunicator interprets, and the payload.
type Frame struct {
	NodeID byte
	Opcode byte
	Data   []byte
}

// Channel is the wire abstraction JointCommunicator consumes. Two
// concrete implementations exist: SerialChannel (tarm/serial) and
// SimChannel (io.Pipe), matching spec.md §6's "serial transport and
// an in-process simulator".
type Channel interface {
	SendTo(nodeID byte, opcode byte, payload []byte) error
	Receive(ctx context.Context) (Frame, error)
	Close() error
}

// Encode serializes a Frame into the wire format: magic, node id,
// opcode, payload length, payload, CRC32 (IEEE) of the payload.
func Encode(f Frame) []byte {
	buf := make([]byte, headerSize+len(f.Data))
	binary.BigEndian.PutUint32(buf[0:4], Magic)
	buf[4] = f.NodeID
	buf[5] = f.Opcode
	binary.BigEndian.PutUint32(buf[6:10], uint32(len(f.Data)))
	n := copy(buf[10:], f.Data)
	crc := crc32.ChecksumIEEE(f.Data)
	binary.BigEndian.PutUint32(buf[10+n:], crc)
	return buf
}

// Decode reads exactly one frame from r, validating the magic number
// and CRC. It blocks until a full frame (or a read error) arrives.
func Decode(r io.Reader) (Frame, error) {
	var hdr [10]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return Frame{}, err
	}

	magic := binary.BigEndian.Uint32(hdr[0:4])
	if magic != Magic {
		return Frame{}, errors.New("transport: bad magic")
	}

	nodeID := hdr[4]
	opcode := hdr[5]
	length := binary.BigEndian.Uint32(hdr[6:10])

	body := make([]byte, length+4)
	if _, err := io.ReadFull(r, body); err != nil {
		return Frame{}, errors.Wrap(err, "transport: reading payload")
	}

	data := body[:length]
	wantCRC := binary.BigEndian.Uint32(body[length:])
	gotCRC := crc32.ChecksumIEEE(data)
	if gotCRC != wantCRC {
		return Frame{}, errors.New("transport: crc mismatch")
	}

	return Frame{NodeID: nodeID, Opcode: opcode, Data: data}, nil
}
