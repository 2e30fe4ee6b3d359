// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tifftags

import (
	"encoding/binary"
)

const (
	markerLittleEndian = 'I'
	markerBigEndian    = 'M'

	versionClassic = 42
	versionBig     = 43

	// The offset size declared in a BigTIFF header.
	bigOffsetByteSize = 8
)

// detectHeader determines byte order and variant from the first 4 bytes of a file.
//
// The byte order marker may sit in either of the first two bytes.
// The version is read from byte 2 in little-endian files and from
// byte 3 in big-endian files, where the two version bytes are swapped.
func detectHeader(b [4]byte) (binary.ByteOrder, Variant, error) {
	var (
		order   binary.ByteOrder
		version byte
	)

	switch {
	case b[0] == markerLittleEndian || b[1] == markerLittleEndian:
		order = binary.LittleEndian
		version = b[2]
	case b[0] == markerBigEndian || b[1] == markerBigEndian:
		order = binary.BigEndian
		version = b[3]
	default:
		return nil, 0, newFormatErrorf("unsupported magic/version: % x", b[:])
	}

	switch version {
	case versionClassic:
		return order, VariantClassic, nil
	case versionBig:
		return order, VariantBig, nil
	default:
		return nil, 0, newFormatErrorf("unsupported magic/version: % x", b[:])
	}
}

// checkBigHeader validates the BigTIFF specific header fields following the
// version: a 2 byte offset size, which should be 8, and 2 reserved bytes.
// A mismatch is reported as a warning only.
func (d *dirDecoder) checkBigHeader() {
	d.seekAbsolute(4)
	if size := d.read2(); size != bigOffsetByteSize {
		d.opts.Warnf("BigTIFF header declares offset byte size %d, expected %d", size, bigOffsetByteSize)
	}
}
