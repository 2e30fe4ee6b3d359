// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tifftags_test

import (
	"encoding/binary"
	"math"

	"github.com/bep/tifftags"
)

// entry is an IFD entry to write.
type entry struct {
	id    uint16
	typ   tifftags.DataType
	count uint64
	// data is the value in file byte order.
	// It is stored inline if it fits the data field, else after the IFD.
	data []byte
	// field, if set, is written as the data field as is and data is ignored.
	field []byte
}

// fileBuilder writes synthetic TIFF and BigTIFF files.
type fileBuilder struct {
	order   binary.ByteOrder
	variant tifftags.Variant
	ifds    [][]entry

	// bigOffsetSize overrides the offset byte size in a BigTIFF header.
	bigOffsetSize uint16
	// loop makes the last IFD point back to the first.
	loop bool
}

func newBuilder(order binary.ByteOrder, variant tifftags.Variant) *fileBuilder {
	return &fileBuilder{order: order, variant: variant}
}

func (b *fileBuilder) ifd(entries ...entry) *fileBuilder {
	b.ifds = append(b.ifds, entries)
	return b
}

func (b *fileBuilder) big() bool {
	return b.variant == tifftags.VariantBig
}

func (b *fileBuilder) widths() (countWidth, entrySize, entryCountWidth, dataWidth, offsetWidth int) {
	if b.big() {
		return 8, 20, 8, 8, 8
	}
	return 2, 12, 4, 4, 4
}

func (b *fileBuilder) putUint(dst []byte, width int, v uint64) {
	switch width {
	case 2:
		b.order.PutUint16(dst, uint16(v))
	case 4:
		b.order.PutUint32(dst, uint32(v))
	default:
		b.order.PutUint64(dst, v)
	}
}

func (b *fileBuilder) Bytes() []byte {
	countWidth, entrySize, entryCountWidth, dataWidth, offsetWidth := b.widths()

	var buf []byte
	version := byte(42)
	if b.big() {
		version = 43
	}
	if b.order == binary.LittleEndian {
		buf = append(buf, 'I', 'I', version, 0)
	} else {
		buf = append(buf, 'M', 'M', 0, version)
	}

	if b.big() {
		size := b.bigOffsetSize
		if size == 0 {
			size = 8
		}
		extra := make([]byte, 12)
		b.order.PutUint16(extra, size)
		buf = append(buf, extra...)
	} else {
		buf = append(buf, make([]byte, 4)...)
	}

	pointerPos := len(buf) - offsetWidth
	var firstIFD int

	for i, entries := range b.ifds {
		ifdPos := len(buf)
		if i == 0 {
			firstIFD = ifdPos
		}
		b.putUint(buf[pointerPos:], offsetWidth, uint64(ifdPos))

		ifdSize := countWidth + len(entries)*entrySize + offsetWidth
		dataPos := ifdPos + ifdSize

		ifd := make([]byte, ifdSize)
		b.putUint(ifd, countWidth, uint64(len(entries)))

		var data []byte
		for j, e := range entries {
			p := countWidth + j*entrySize
			b.order.PutUint16(ifd[p:], e.id)
			b.order.PutUint16(ifd[p+2:], uint16(e.typ))
			b.putUint(ifd[p+4:], entryCountWidth, e.count)
			field := ifd[p+4+entryCountWidth : p+4+entryCountWidth+dataWidth]
			switch {
			case e.field != nil:
				copy(field, e.field)
			case len(e.data) <= dataWidth:
				copy(field, e.data)
			default:
				b.putUint(field, dataWidth, uint64(dataPos+len(data)))
				data = append(data, e.data...)
			}
		}

		buf = append(buf, ifd...)
		buf = append(buf, data...)
		pointerPos = ifdPos + ifdSize - offsetWidth
	}

	if b.loop && len(b.ifds) > 0 {
		b.putUint(buf[pointerPos:], offsetWidth, uint64(firstIFD))
	}

	return buf
}

// offsetField encodes an absolute offset as a data field.
func (b *fileBuilder) offsetField(offset uint64) []byte {
	_, _, _, dataWidth, _ := b.widths()
	field := make([]byte, dataWidth)
	b.putUint(field, dataWidth, offset)
	return field
}

func (b *fileBuilder) shorts(id uint16, vals ...uint16) entry {
	data := make([]byte, 2*len(vals))
	for i, v := range vals {
		b.order.PutUint16(data[i*2:], v)
	}
	return entry{id: id, typ: tifftags.TypeShort, count: uint64(len(vals)), data: data}
}

func (b *fileBuilder) longs(id uint16, vals ...uint32) entry {
	data := make([]byte, 4*len(vals))
	for i, v := range vals {
		b.order.PutUint32(data[i*4:], v)
	}
	return entry{id: id, typ: tifftags.TypeLong, count: uint64(len(vals)), data: data}
}

func (b *fileBuilder) rationals(id uint16, typ tifftags.DataType, pairs ...uint32) entry {
	data := make([]byte, 4*len(pairs))
	for i, v := range pairs {
		b.order.PutUint32(data[i*4:], v)
	}
	return entry{id: id, typ: typ, count: uint64(len(pairs) / 2), data: data}
}

func (b *fileBuilder) doubles(id uint16, vals ...float64) entry {
	data := make([]byte, 8*len(vals))
	for i, v := range vals {
		b.order.PutUint64(data[i*8:], math.Float64bits(v))
	}
	return entry{id: id, typ: tifftags.TypeDouble, count: uint64(len(vals)), data: data}
}

func ascii(id uint16, s string) entry {
	return entry{id: id, typ: tifftags.TypeASCII, count: uint64(len(s)), data: []byte(s)}
}

func bytesEntry(id uint16, typ tifftags.DataType, vals ...byte) entry {
	return entry{id: id, typ: typ, count: uint64(len(vals)), data: vals}
}
