// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tifftags

import (
	"math/bits"
)

// dirDecoder walks the image file directories of a TIFF or BigTIFF file.
type dirDecoder struct {
	*streamReader
	opts Options

	layout layout
	values valueDecoder

	result DecodeResult
}

func (d *dirDecoder) decode() error {
	d.seekAbsolute(0)
	var header [4]byte
	copy(header[:], d.readBytesVolatile(len(header)))

	order, variant, err := detectHeader(header)
	if err != nil {
		return err
	}

	d.byteOrder = order
	d.layout = variant.layout()
	d.values = valueDecoder{
		byteOrder:         order,
		reverseTextBlocks: d.opts.ReverseTextBlocks,
		charset:           d.opts.Charset,
		warnf:             d.opts.Warnf,
	}
	d.result.ByteOrder = order
	d.result.Variant = variant

	if variant == VariantBig {
		d.checkBigHeader()
	}

	d.seekAbsolute(d.layout.headerOffsetPos)
	ifdOffset := d.readUint(d.layout.offsetWidth)

	visited := make(map[uint64]bool)
	for ifd := 0; ; ifd++ {
		visited[ifdOffset] = true

		next, err := d.decodeTags(ifd, ifdOffset)
		if err != nil {
			return err
		}

		if !d.opts.FollowIFDChain || next == 0 {
			return nil
		}
		if visited[next] {
			d.opts.Warnf("IFD%d points back to the IFD at offset %d, stopping", ifd, next)
			return nil
		}
		ifdOffset = next
	}
}

// decodeTags decodes all entries of the IFD at ifdOffset.
// When following the IFD chain it returns the offset of the next IFD, 0 if none.
//
// An IFD is an entry count followed by fixed size entries and, last,
// the next IFD offset. The entry count and offsets are 2/4 bytes wide
// in classic TIFF and 8/8 bytes wide in BigTIFF.
func (d *dirDecoder) decodeTags(ifd int, ifdOffset uint64) (uint64, error) {
	l := d.layout

	d.seekAbsolute(ifdOffset)
	numTags := d.readUint(l.countWidth)
	entriesPos := ifdOffset + l.countWidth

	for i := uint64(0); i < numTags; i++ {
		entryPos := entriesPos + i*l.entrySize
		d.seekAbsolute(entryPos)

		tagInfo := d.decodeTag(ifd, entryPos)
		d.result.Tags = append(d.result.Tags, tagInfo)

		if err := d.opts.HandleTag(tagInfo); err != nil {
			return 0, err
		}
	}

	if !d.opts.FollowIFDChain {
		return 0, nil
	}

	d.seekAbsolute(entriesPos + numTags*l.entrySize)
	return d.readUint(l.offsetWidth), nil
}

// A classic TIFF tag is represented in 12 bytes:
//   - 2 bytes for the tag ID
//   - 2 bytes for the data type
//   - 4 bytes for the number of data values of the specified type
//   - 4 bytes for the value itself, if it fits, otherwise for an offset to
//     where the value may be found.
//
// A BigTIFF tag is 20 bytes, with 8 bytes for both the count and the value.
func (d *dirDecoder) decodeTag(ifd int, entryPos uint64) TagInfo {
	l := d.layout

	tagID := d.read2()
	dataType := DataType(d.read2())
	count := d.readUint(l.entryCountWidth)
	category := d.opts.Catalog.Lookup(tagID)

	tagInfo := TagInfo{
		IFD:      ifd,
		ID:       tagID,
		Category: category,
		DataType: dataType,
		Count:    count,
	}

	if fitsInline(dataType, count, l.dataWidth) {
		tagInfo.Inline = true
		tagInfo.ValueOffset = entryPos + 4 + l.entryCountWidth
	} else {
		tagInfo.ValueOffset = d.readUint(l.offsetWidth)
		d.seekAbsolute(tagInfo.ValueOffset)
	}

	n, truncated := decodeCount(category, dataType, count, d.opts.DisplayLimit)
	tagInfo.Value = d.readValues(dataType, n)
	tagInfo.Truncated = truncated

	return tagInfo
}

// fitsInline reports whether count elements of typ fit in a data field of width bytes.
func fitsInline(typ DataType, count, width uint64) bool {
	hi, size := bits.Mul64(uint64(typ.Size()), count)
	return hi == 0 && size <= width
}
