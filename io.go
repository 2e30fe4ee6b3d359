// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tifftags

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
)

// streamReader is a wrapper around a ReadSeeker that provides methods to read binary data.
// Note that this is not thread safe.
type streamReader struct {
	r         io.ReadSeeker
	byteOrder binary.ByteOrder

	buf []byte

	readErr error
}

func newStreamReader(r io.ReadSeeker, byteOrder binary.ByteOrder) *streamReader {
	return &streamReader{
		r:         r,
		byteOrder: byteOrder,
	}
}

func (e *streamReader) allocateBuf(length int) {
	if length > cap(e.buf) {
		e.buf = make([]byte, length)
	}
}

func (e *streamReader) pos() int64 {
	n, err := e.r.Seek(0, io.SeekCurrent)
	if err != nil {
		return -1
	}
	return n
}

func (e *streamReader) read2() uint16 {
	const n = 2
	e.readNIntoBuf(n)
	return e.byteOrder.Uint16(e.buf[:n])
}

func (e *streamReader) read4() uint32 {
	const n = 4
	e.readNIntoBuf(n)
	return e.byteOrder.Uint32(e.buf[:n])
}

func (e *streamReader) read8() uint64 {
	const n = 8
	e.readNIntoBuf(n)
	return e.byteOrder.Uint64(e.buf[:n])
}

// readUint reads an unsigned integer of width 2, 4 or 8 bytes.
func (e *streamReader) readUint(width uint64) uint64 {
	switch width {
	case 2:
		return uint64(e.read2())
	case 4:
		return uint64(e.read4())
	default:
		return e.read8()
	}
}

// readBytesVolatile reads a slice of bytes from the stream
// which is not guaranteed to be valid after the next read.
func (e *streamReader) readBytesVolatile(n int) []byte {
	e.readNIntoBuf(n)
	return e.buf[:n]
}

// readBlock reads n bytes into a newly allocated slice.
// The slice grows with the bytes actually read, so a bogus n in a corrupt
// file fails with a truncation error instead of a huge allocation.
func (e *streamReader) readBlock(n uint64) []byte {
	if n == 0 {
		return []byte{}
	}
	pos := e.pos()
	if n > math.MaxInt64 {
		e.stop(&TruncatedSourceError{Pos: pos, Want: n, Err: io.ErrUnexpectedEOF})
	}
	var buff bytes.Buffer
	if n <= 4096 {
		buff.Grow(int(n))
	}
	copied, err := io.CopyN(&buff, e.r, int64(n))
	if err != nil || uint64(copied) != n {
		if err == nil || isEOF(err) {
			err = io.ErrUnexpectedEOF
			e.stop(&TruncatedSourceError{Pos: pos, Want: n, Err: err})
		}
		e.stop(err)
	}
	return buff.Bytes()
}

func (e *streamReader) readNIntoBuf(n int) {
	e.allocateBuf(n)
	pos := e.pos()
	if _, err := io.ReadFull(e.r, e.buf[:n]); err != nil {
		if isEOF(err) {
			err = &TruncatedSourceError{Pos: pos, Want: uint64(n), Err: err}
		}
		e.stop(err)
	}
}

// seekAbsolute moves the read cursor to offset pos from the start of the source.
func (e *streamReader) seekAbsolute(pos uint64) {
	if err := seekAbsolute(e.r, pos); err != nil {
		e.stop(err)
	}
}

// seekAbsolute seeks s to pos. io.Seeker only takes signed offsets,
// so positions past math.MaxInt64 are reached by relative steps of at
// most math.MaxInt64 each.
func seekAbsolute(s io.Seeker, pos uint64) error {
	first := min(pos, math.MaxInt64)
	if _, err := s.Seek(int64(first), io.SeekStart); err != nil {
		return &SeekError{Pos: pos, Err: err}
	}
	for rem := pos - first; rem > 0; {
		step := min(rem, math.MaxInt64)
		if _, err := s.Seek(int64(step), io.SeekCurrent); err != nil {
			return &SeekError{Pos: pos, Err: err}
		}
		rem -= step
	}
	return nil
}

func (e *streamReader) stop(err error) {
	if err != nil {
		e.readErr = err
	}
	panic(errStop)
}

// reversed returns a reversed copy of b.
func reversed(b []byte) []byte {
	r := make([]byte, len(b))
	for i, c := range b {
		r[len(b)-1-i] = c
	}
	return r
}
