// Package wire implements the length-prefixed protobuf framing used on
// collector connections. Every frame is a 4-byte big-endian length followed
// by one marshaled Envelope; the only exception is the collector's initial
// Descriptor, which uses the same length prefix but precedes the first
// Envelope.
package wire

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/sys/unix"
	"google.golang.org/protobuf/proto"

	tkmpb "github.com/anpopa/taskmonitor/proto"
)

// Status is the outcome of a non-blocking read attempt.
type Status int

const (
	StatusOk Status = iota
	// StatusAgain means no complete frame is buffered yet; retry on the
	// next readable wake.
	StatusAgain
	StatusEOF
	StatusError
)

const lenPrefixSize = 4

// maxFrameSize bounds a single frame. A peer announcing a larger frame is
// treated as a protocol error and disconnected.
const maxFrameSize = 1 << 20

// EnvelopeReader incrementally decodes frames from a non-blocking fd. It
// keeps partial frames buffered across calls, so one reader must own the
// read side of the descriptor.
type EnvelopeReader struct {
	fd  int
	buf []byte
}

func NewEnvelopeReader(fd int) *EnvelopeReader {
	return &EnvelopeReader{fd: fd}
}

// Next decodes the next frame into env. StatusAgain means the caller should
// return to the loop and retry when the fd is readable again. StatusEOF and
// StatusError both mean the connection is finished.
func (r *EnvelopeReader) Next(env *tkmpb.Envelope) Status {
	for {
		if st, ok := r.tryDecode(env); ok {
			return st
		}

		var chunk [4096]byte
		n, err := unix.Read(r.fd, chunk[:])
		if err != nil {
			if err == unix.EAGAIN || err == unix.EWOULDBLOCK || err == unix.EINTR {
				return StatusAgain
			}
			return StatusError
		}
		if n == 0 {
			return StatusEOF
		}
		r.buf = append(r.buf, chunk[:n]...)
	}
}

// tryDecode attempts to consume one complete frame from the buffer. The
// bool reports whether a definitive status was reached.
func (r *EnvelopeReader) tryDecode(env *tkmpb.Envelope) (Status, bool) {
	if len(r.buf) < lenPrefixSize {
		return StatusAgain, false
	}
	frameLen := int(binary.BigEndian.Uint32(r.buf[:lenPrefixSize]))
	if frameLen <= 0 || frameLen > maxFrameSize {
		return StatusError, true
	}
	if len(r.buf) < lenPrefixSize+frameLen {
		return StatusAgain, false
	}
	payload := r.buf[lenPrefixSize : lenPrefixSize+frameLen]
	if err := proto.Unmarshal(payload, env); err != nil {
		return StatusError, true
	}
	r.buf = r.buf[lenPrefixSize+frameLen:]
	return StatusOk, true
}

// EnvelopeWriter frames and writes messages. Send performs a single write
// syscall per frame; a short write is reported as failure and the session
// is expected to be torn down by its owner.
type EnvelopeWriter struct {
	fd int
}

func NewEnvelopeWriter(fd int) *EnvelopeWriter {
	return &EnvelopeWriter{fd: fd}
}

func (w *EnvelopeWriter) Send(msg proto.Message) bool {
	frame, err := Frame(msg)
	if err != nil {
		return false
	}
	n, err := unix.Write(w.fd, frame)
	if err != nil || n != len(frame) {
		return false
	}
	return true
}

// Frame marshals msg and prepends the length prefix.
func Frame(msg proto.Message) ([]byte, error) {
	payload, err := proto.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("wire: marshal: %w", err)
	}
	if len(payload) > maxFrameSize {
		return nil, fmt.Errorf("wire: frame too large: %d bytes", len(payload))
	}
	frame := make([]byte, lenPrefixSize+len(payload))
	binary.BigEndian.PutUint32(frame, uint32(len(payload)))
	copy(frame[lenPrefixSize:], payload)
	return frame, nil
}

// ReadDescriptor reads the collector's initial Descriptor frame from a
// blocking fd. The caller is expected to have set a receive timeout on the
// socket; a timeout surfaces here as a read error.
func ReadDescriptor(fd int) (*tkmpb.Descriptor, error) {
	var prefix [lenPrefixSize]byte
	if err := readFull(fd, prefix[:]); err != nil {
		return nil, fmt.Errorf("wire: read descriptor length: %w", err)
	}
	frameLen := int(binary.BigEndian.Uint32(prefix[:]))
	if frameLen <= 0 || frameLen > maxFrameSize {
		return nil, fmt.Errorf("wire: descriptor length %d out of range", frameLen)
	}
	payload := make([]byte, frameLen)
	if err := readFull(fd, payload); err != nil {
		return nil, fmt.Errorf("wire: read descriptor payload: %w", err)
	}
	var desc tkmpb.Descriptor
	if err := proto.Unmarshal(payload, &desc); err != nil {
		return nil, fmt.Errorf("wire: unmarshal descriptor: %w", err)
	}
	return &desc, nil
}

func readFull(fd int, buf []byte) error {
	off := 0
	for off < len(buf) {
		n, err := unix.Read(fd, buf[off:])
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return err
		}
		if n == 0 {
			return fmt.Errorf("unexpected end of stream")
		}
		off += n
	}
	return nil
}
