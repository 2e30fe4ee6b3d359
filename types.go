// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tifftags

// DataType is the on-disk type code of a tag value.
//
//go:generate stringer -type=DataType -trimprefix=Type
type DataType uint16

const (
	TypeByte      DataType = 1
	TypeASCII     DataType = 2
	TypeShort     DataType = 3
	TypeLong      DataType = 4
	TypeRational  DataType = 5
	TypeSByte     DataType = 6
	TypeUndefined DataType = 7
	TypeSShort    DataType = 8
	TypeSLong     DataType = 9
	TypeSRational DataType = 10
	TypeFloat     DataType = 11
	TypeDouble    DataType = 12
)

// Size in bytes of each type.
var dataTypeSize = [...]uint32{
	TypeByte:      1,
	TypeASCII:     1,
	TypeShort:     2,
	TypeLong:      4,
	TypeRational:  8,
	TypeSByte:     1,
	TypeUndefined: 1,
	TypeSShort:    2,
	TypeSLong:     4,
	TypeSRational: 8,
	TypeFloat:     4,
	TypeDouble:    8,
}

// Size returns the size in bytes of one element of t,
// or 0 if t is not a known type.
func (t DataType) Size() uint32 {
	if int(t) >= len(dataTypeSize) {
		return 0
	}
	return dataTypeSize[t]
}

// IsKnown reports whether t is one of the twelve TIFF 6.0 types.
func (t DataType) IsKnown() bool {
	return t.Size() != 0
}

// Variant is the TIFF flavour, classic TIFF or BigTIFF.
//
//go:generate stringer -type=Variant -trimprefix=Variant
type Variant int

const (
	// VariantClassic uses 32-bit offsets, 2 byte entry counts and 12 byte entries.
	VariantClassic Variant = iota
	// VariantBig uses 64-bit offsets, 8 byte entry counts and 20 byte entries.
	VariantBig
)

// layout holds the field widths of a variant.
type layout struct {
	headerOffsetPos uint64 // where the first IFD offset is stored
	offsetWidth     uint64
	countWidth      uint64 // width of the IFD entry count
	entrySize       uint64
	entryCountWidth uint64 // width of the count field inside an entry
	dataWidth       uint64 // width of the inline data/offset field
}

var (
	layoutClassic = layout{headerOffsetPos: 4, offsetWidth: 4, countWidth: 2, entrySize: 12, entryCountWidth: 4, dataWidth: 4}
	layoutBig     = layout{headerOffsetPos: 8, offsetWidth: 8, countWidth: 8, entrySize: 20, entryCountWidth: 8, dataWidth: 8}
)

func (v Variant) layout() layout {
	if v == VariantBig {
		return layoutBig
	}
	return layoutClassic
}
