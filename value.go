// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tifftags

import (
	"math"
	"strconv"
	"unicode/utf8"
)

// Value is a decoded tag value.
// It is one of Bytes, ASCII, Shorts, Longs, Rationals, SBytes, Undefined,
// SShorts, SLongs, SRationals, Floats or Doubles.
type Value interface {
	// DataType returns the TIFF type the value was decoded from.
	DataType() DataType

	// Len returns the number of decoded elements.
	Len() int

	// ElemString formats element i for display.
	ElemString(i int) string

	isValue()
}

type (
	// Bytes holds BYTE values.
	Bytes []uint8
	// ASCII holds an ASCII value, one character per declared element.
	ASCII string
	// Shorts holds SHORT values.
	Shorts []uint16
	// Longs holds LONG values.
	Longs []uint32
	// Rationals holds RATIONAL values.
	Rationals []Rat[uint32]
	// SBytes holds SBYTE values.
	SBytes []int8
	// Undefined holds UNDEFINED values as raw bytes.
	Undefined []byte
	// SShorts holds SSHORT values.
	SShorts []int16
	// SLongs holds SLONG values.
	SLongs []int32
	// SRationals holds SRATIONAL values.
	SRationals []Rat[int32]
	// Floats holds FLOAT values.
	Floats []float32
	// Doubles holds DOUBLE values.
	Doubles []float64
)

func (Bytes) DataType() DataType      { return TypeByte }
func (ASCII) DataType() DataType      { return TypeASCII }
func (Shorts) DataType() DataType     { return TypeShort }
func (Longs) DataType() DataType      { return TypeLong }
func (Rationals) DataType() DataType  { return TypeRational }
func (SBytes) DataType() DataType     { return TypeSByte }
func (Undefined) DataType() DataType  { return TypeUndefined }
func (SShorts) DataType() DataType    { return TypeSShort }
func (SLongs) DataType() DataType     { return TypeSLong }
func (SRationals) DataType() DataType { return TypeSRational }
func (Floats) DataType() DataType     { return TypeFloat }
func (Doubles) DataType() DataType    { return TypeDouble }

func (v Bytes) Len() int      { return len(v) }
func (v ASCII) Len() int      { return utf8.RuneCountInString(string(v)) }
func (v Shorts) Len() int     { return len(v) }
func (v Longs) Len() int      { return len(v) }
func (v Rationals) Len() int  { return len(v) }
func (v SBytes) Len() int     { return len(v) }
func (v Undefined) Len() int  { return len(v) }
func (v SShorts) Len() int    { return len(v) }
func (v SLongs) Len() int     { return len(v) }
func (v SRationals) Len() int { return len(v) }
func (v Floats) Len() int     { return len(v) }
func (v Doubles) Len() int    { return len(v) }

func (v Bytes) ElemString(i int) string { return strconv.FormatUint(uint64(v[i]), 10) }

func (v ASCII) ElemString(i int) string { return string([]rune(string(v))[i]) }

func (v Shorts) ElemString(i int) string { return strconv.FormatUint(uint64(v[i]), 10) }

func (v Longs) ElemString(i int) string { return strconv.FormatUint(uint64(v[i]), 10) }

func (v Rationals) ElemString(i int) string { return formatFloat(v[i].Float64(), 64) }

func (v SBytes) ElemString(i int) string { return strconv.FormatInt(int64(v[i]), 10) }

func (v Undefined) ElemString(i int) string { return strconv.FormatUint(uint64(v[i]), 10) }

func (v SShorts) ElemString(i int) string { return strconv.FormatInt(int64(v[i]), 10) }

func (v SLongs) ElemString(i int) string { return strconv.FormatInt(int64(v[i]), 10) }

func (v SRationals) ElemString(i int) string { return formatFloat(v[i].Float64(), 64) }

func (v Floats) ElemString(i int) string { return formatFloat(float64(v[i]), 32) }

func (v Doubles) ElemString(i int) string { return formatFloat(v[i], 64) }

func (Bytes) isValue()      {}
func (ASCII) isValue()      {}
func (Shorts) isValue()     {}
func (Longs) isValue()      {}
func (Rationals) isValue()  {}
func (SBytes) isValue()     {}
func (Undefined) isValue()  {}
func (SShorts) isValue()    {}
func (SLongs) isValue()     {}
func (SRationals) isValue() {}
func (Floats) isValue()     {}
func (Doubles) isValue()    {}

// formatFloat uses plain notation for the magnitudes found in map
// coordinates and resolutions, and exponent notation outside.
func formatFloat(f float64, bitSize int) string {
	if a := math.Abs(f); f == 0 || (a >= 1e-4 && a < 1e15) {
		return strconv.FormatFloat(f, 'f', -1, bitSize)
	}
	return strconv.FormatFloat(f, 'g', -1, bitSize)
}

// Strings formats all elements of v for display.
// A nil Value gives a nil slice.
func Strings(v Value) []string {
	if v == nil {
		return nil
	}
	ss := make([]string, v.Len())
	if a, ok := v.(ASCII); ok {
		for i, r := range []rune(string(a)) {
			ss[i] = string(r)
		}
		return ss
	}
	for i := range ss {
		ss[i] = v.ElemString(i)
	}
	return ss
}
