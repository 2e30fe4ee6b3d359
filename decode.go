// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tifftags

import (
	"encoding/binary"
	"io"
	"math"
	"math/bits"
	"strings"

	"golang.org/x/text/encoding"
)

// decodeCount returns the number of elements to decode for a tag and whether
// that is fewer than declared.
//
// The GeoTIFF structures and ASCII values are always decoded in full,
// other values are capped at limit elements.
func decodeCount(category Category, typ DataType, count, limit uint64) (uint64, bool) {
	if !typ.IsKnown() {
		return 0, false
	}
	if category.IsStructured() || typ == TypeASCII || count <= limit {
		return count, false
	}
	return limit, true
}

// readValues reads n elements of typ at the current position.
// Unknown types read nothing and return nil.
func (d *dirDecoder) readValues(typ DataType, n uint64) Value {
	if !typ.IsKnown() {
		return nil
	}
	hi, size := bits.Mul64(uint64(typ.Size()), n)
	if hi != 0 {
		d.stop(&TruncatedSourceError{Pos: d.pos(), Want: math.MaxUint64, Err: io.ErrUnexpectedEOF})
	}
	return d.values.convertValues(typ, d.readBlock(size))
}

// valueDecoder converts raw value bytes into a Value.
type valueDecoder struct {
	byteOrder         binary.ByteOrder
	reverseTextBlocks bool
	charset           encoding.Encoding
	warnf             func(string, ...any)
}

// convertValues converts b, len(b) being a multiple of typ's size.
// Byte order is applied per element.
func (v valueDecoder) convertValues(typ DataType, b []byte) Value {
	order := v.byteOrder

	switch typ {
	case TypeByte:
		return Bytes(b)
	case TypeASCII:
		return ASCII(v.decodeText(v.textBlock(b)))
	case TypeShort:
		vals := make(Shorts, len(b)/2)
		for i := range vals {
			vals[i] = order.Uint16(b[i*2:])
		}
		return vals
	case TypeLong:
		vals := make(Longs, len(b)/4)
		for i := range vals {
			vals[i] = order.Uint32(b[i*4:])
		}
		return vals
	case TypeRational:
		vals := make(Rationals, len(b)/8)
		for i := range vals {
			vals[i] = NewRat(order.Uint32(b[i*8:]), order.Uint32(b[i*8+4:]))
		}
		return vals
	case TypeSByte:
		vals := make(SBytes, len(b))
		for i, c := range b {
			vals[i] = int8(c)
		}
		return vals
	case TypeUndefined:
		return Undefined(v.textBlock(b))
	case TypeSShort:
		vals := make(SShorts, len(b)/2)
		for i := range vals {
			vals[i] = int16(order.Uint16(b[i*2:]))
		}
		return vals
	case TypeSLong:
		vals := make(SLongs, len(b)/4)
		for i := range vals {
			vals[i] = int32(order.Uint32(b[i*4:]))
		}
		return vals
	case TypeSRational:
		vals := make(SRationals, len(b)/8)
		for i := range vals {
			vals[i] = NewRat(int32(order.Uint32(b[i*8:])), int32(order.Uint32(b[i*8+4:])))
		}
		return vals
	case TypeFloat:
		vals := make(Floats, len(b)/4)
		for i := range vals {
			vals[i] = math.Float32frombits(order.Uint32(b[i*4:]))
		}
		return vals
	case TypeDouble:
		vals := make(Doubles, len(b)/8)
		for i := range vals {
			vals[i] = math.Float64frombits(order.Uint64(b[i*8:]))
		}
		return vals
	default:
		return nil
	}
}

// textBlock returns the bytes of an ASCII or UNDEFINED value,
// reversed as a whole in big-endian files if reverseTextBlocks is set.
func (v valueDecoder) textBlock(b []byte) []byte {
	if v.reverseTextBlocks && v.byteOrder == binary.BigEndian {
		return reversed(b)
	}
	return b
}

func (v valueDecoder) decodeText(b []byte) string {
	if v.charset != nil {
		s, err := v.charset.NewDecoder().Bytes(b)
		if err == nil {
			return string(s)
		}
		v.warnf("failed to decode ASCII value with charset: %v", err)
	}
	return asciiString(b)
}

// asciiString maps each byte to one character, bytes outside 7-bit ASCII
// become '?'.
func asciiString(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, c := range b {
		if c > 0x7f {
			c = '?'
		}
		sb.WriteByte(c)
	}
	return sb.String()
}
