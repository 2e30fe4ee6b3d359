// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tifftags

import (
	"encoding/binary"
	"math"
	"testing"

	qt "github.com/frankban/quicktest"
	"golang.org/x/text/encoding/charmap"
)

func TestDetectHeader(t *testing.T) {
	c := qt.New(t)

	for _, test := range []struct {
		header  [4]byte
		order   binary.ByteOrder
		variant Variant
	}{
		{[4]byte{0x49, 0x49, 0x2a, 0x00}, binary.LittleEndian, VariantClassic},
		{[4]byte{0x4d, 0x4d, 0x00, 0x2a}, binary.BigEndian, VariantClassic},
		{[4]byte{0x49, 0x49, 0x2b, 0x00}, binary.LittleEndian, VariantBig},
		{[4]byte{0x4d, 0x4d, 0x00, 0x2b}, binary.BigEndian, VariantBig},
		// The marker is accepted in either of the first two bytes.
		{[4]byte{0x00, 0x49, 0x2a, 0x00}, binary.LittleEndian, VariantClassic},
		{[4]byte{0x4d, 0x00, 0x00, 0x2a}, binary.BigEndian, VariantClassic},
	} {
		order, variant, err := detectHeader(test.header)
		c.Assert(err, qt.IsNil, qt.Commentf("% x", test.header))
		c.Assert(order, qt.Equals, test.order)
		c.Assert(variant, qt.Equals, test.variant)
	}

	for _, header := range [][4]byte{
		{0x00, 0x00, 0x2a, 0x00},
		{'X', 'X', 0x2a, 0x00},
		{0x49, 0x49, 0x2c, 0x00},
		// Big-endian reads the version from the last byte.
		{0x4d, 0x4d, 0x2a, 0x00},
		{0x49, 0x49, 0x00, 0x2a},
	} {
		_, _, err := detectHeader(header)
		c.Assert(IsFormatError(err), qt.IsTrue, qt.Commentf("% x", header))
		c.Assert(err, qt.ErrorMatches, "tifftags: unsupported magic/version.*")
	}
}

func TestFitsInline(t *testing.T) {
	c := qt.New(t)

	c.Assert(fitsInline(TypeShort, 2, 4), qt.IsTrue)
	c.Assert(fitsInline(TypeShort, 3, 4), qt.IsFalse)
	c.Assert(fitsInline(TypeShort, 3, 8), qt.IsTrue)
	c.Assert(fitsInline(TypeRational, 1, 4), qt.IsFalse)
	c.Assert(fitsInline(TypeRational, 1, 8), qt.IsTrue)
	c.Assert(fitsInline(TypeASCII, 4, 4), qt.IsTrue)
	c.Assert(fitsInline(TypeASCII, 5, 4), qt.IsFalse)
	c.Assert(fitsInline(TypeLong, 0, 4), qt.IsTrue)

	// Unknown types have no size and never point elsewhere.
	c.Assert(fitsInline(DataType(99), math.MaxUint64, 4), qt.IsTrue)

	// The size product overflows 64 bits.
	c.Assert(fitsInline(TypeLong, 1<<62, 8), qt.IsFalse)
	c.Assert(fitsInline(TypeDouble, math.MaxUint64, 8), qt.IsFalse)
}

func TestDecodeCount(t *testing.T) {
	c := qt.New(t)

	const limit = DefaultDisplayLimit

	n, truncated := decodeCount("StripOffsets", TypeLong, 15, limit)
	c.Assert(n, qt.Equals, uint64(10))
	c.Assert(truncated, qt.IsTrue)

	n, truncated = decodeCount("StripOffsets", TypeLong, 10, limit)
	c.Assert(n, qt.Equals, uint64(10))
	c.Assert(truncated, qt.IsFalse)

	n, truncated = decodeCount("ImageDescription", TypeASCII, 15, limit)
	c.Assert(n, qt.Equals, uint64(15))
	c.Assert(truncated, qt.IsFalse)

	for _, category := range []Category{CategoryModelTransformation, CategoryGeoKeyDirectory, CategoryGeoDoubleParams, CategoryGeoASCIIParams} {
		n, truncated = decodeCount(category, TypeShort, 40, limit)
		c.Assert(n, qt.Equals, uint64(40))
		c.Assert(truncated, qt.IsFalse)
	}

	n, truncated = decodeCount(CategoryUnknown, TypeByte, 15, limit)
	c.Assert(n, qt.Equals, uint64(10))
	c.Assert(truncated, qt.IsTrue)

	n, truncated = decodeCount(CategoryUnknown, DataType(0), 15, limit)
	c.Assert(n, qt.Equals, uint64(0))
	c.Assert(truncated, qt.IsFalse)

	n, truncated = decodeCount("StripOffsets", TypeLong, 15, 3)
	c.Assert(n, qt.Equals, uint64(3))
	c.Assert(truncated, qt.IsTrue)
}

func TestConvertValues(t *testing.T) {
	c := qt.New(t)

	le := valueDecoder{byteOrder: binary.LittleEndian}
	be := valueDecoder{byteOrder: binary.BigEndian}

	c.Run("Rational", func(c *qt.C) {
		v := le.convertValues(TypeRational, []byte{1, 0, 0, 0, 2, 0, 0, 0}).(Rationals)
		c.Assert(v, qt.HasLen, 1)
		c.Assert(v[0].Float64(), qt.Equals, 0.5)

		v = be.convertValues(TypeRational, []byte{0, 0, 0, 1, 0, 0, 0, 2}).(Rationals)
		c.Assert(v[0].Float64(), qt.Equals, 0.5)
	})

	c.Run("SRational", func(c *qt.C) {
		v := le.convertValues(TypeSRational, []byte{0xff, 0xff, 0xff, 0xff, 2, 0, 0, 0}).(SRationals)
		c.Assert(v[0].Num(), qt.Equals, int32(-1))
		c.Assert(v[0].Float64(), qt.Equals, -0.5)

		v = be.convertValues(TypeSRational, []byte{0xff, 0xff, 0xff, 0xff, 0, 0, 0, 2}).(SRationals)
		c.Assert(v[0].Float64(), qt.Equals, -0.5)
	})

	c.Run("Zero denominator", func(c *qt.C) {
		v := le.convertValues(TypeRational, []byte{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}).(Rationals)
		c.Assert(math.IsInf(v[0].Float64(), 1), qt.IsTrue)
		c.Assert(math.IsNaN(v[1].Float64()), qt.IsTrue)
	})

	c.Run("Signed", func(c *qt.C) {
		c.Assert(le.convertValues(TypeSByte, []byte{0xff, 0x7f}), qt.DeepEquals, SBytes{-1, 127})
		c.Assert(le.convertValues(TypeSShort, []byte{0xfe, 0xff}), qt.DeepEquals, SShorts{-2})
		c.Assert(be.convertValues(TypeSLong, []byte{0xff, 0xff, 0xff, 0xfd}), qt.DeepEquals, SLongs{-3})
	})

	c.Run("Floats", func(c *qt.C) {
		b := make([]byte, 12)
		binary.BigEndian.PutUint32(b, math.Float32bits(1.5))
		binary.BigEndian.PutUint64(b[4:], math.Float64bits(-2.25))
		c.Assert(be.convertValues(TypeFloat, b[:4]), qt.DeepEquals, Floats{1.5})
		c.Assert(be.convertValues(TypeDouble, b[4:]), qt.DeepEquals, Doubles{-2.25})
	})

	c.Run("Unknown", func(c *qt.C) {
		c.Assert(le.convertValues(DataType(13), []byte{1, 2}), qt.IsNil)
	})
}

func TestConvertText(t *testing.T) {
	c := qt.New(t)

	text := []byte("abc\x00")

	c.Run("Byte order invariant", func(c *qt.C) {
		for _, order := range []binary.ByteOrder{binary.LittleEndian, binary.BigEndian} {
			v := valueDecoder{byteOrder: order}
			c.Assert(v.convertValues(TypeASCII, text), qt.Equals, Value(ASCII("abc\x00")))
			c.Assert(v.convertValues(TypeUndefined, text), qt.DeepEquals, Value(Undefined("abc\x00")))
		}
	})

	c.Run("Reverse text blocks", func(c *qt.C) {
		be := valueDecoder{byteOrder: binary.BigEndian, reverseTextBlocks: true}
		c.Assert(be.convertValues(TypeASCII, text), qt.Equals, Value(ASCII("\x00cba")))
		c.Assert(be.convertValues(TypeUndefined, []byte{1, 2, 3}), qt.DeepEquals, Value(Undefined{3, 2, 1}))
		// Numbers are still reversed per element.
		c.Assert(be.convertValues(TypeShort, []byte{0, 1, 0, 2}), qt.DeepEquals, Value(Shorts{1, 2}))
		c.Assert(text, qt.DeepEquals, []byte("abc\x00"))

		le := valueDecoder{byteOrder: binary.LittleEndian, reverseTextBlocks: true}
		c.Assert(le.convertValues(TypeASCII, text), qt.Equals, Value(ASCII("abc\x00")))
	})

	c.Run("Non ASCII", func(c *qt.C) {
		v := valueDecoder{byteOrder: binary.LittleEndian}
		c.Assert(v.convertValues(TypeASCII, []byte("caf\xe9")), qt.Equals, Value(ASCII("caf?")))
		c.Assert(asciiString([]byte{0x7f, 0x80, 0xff}), qt.Equals, "\x7f??")
	})

	c.Run("Charset", func(c *qt.C) {
		v := valueDecoder{byteOrder: binary.LittleEndian, charset: charmap.ISO8859_1}
		got := v.convertValues(TypeASCII, []byte("caf\xe9"))
		c.Assert(got, qt.Equals, Value(ASCII("café")))
		c.Assert(got.Len(), qt.Equals, 4)
	})
}
