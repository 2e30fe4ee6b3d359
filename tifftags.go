// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

// Package tifftags decodes the tag directory of TIFF and BigTIFF files.
package tifftags

import (
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/text/encoding"
)

// DefaultDisplayLimit is the number of elements decoded for array values
// when Options.DisplayLimit is not set.
const DefaultDisplayLimit = 10

// DecodeResult contains the result of a Decode operation.
type DecodeResult struct {
	// ByteOrder is the byte order of the file.
	ByteOrder binary.ByteOrder
	// Variant is classic TIFF or BigTIFF.
	Variant Variant
	// Tags holds the decoded tags in directory order.
	Tags []TagInfo
}

// TagInfo contains information about a decoded tag.
type TagInfo struct {
	// IFD is the index of the directory in the IFD chain, 0 for the first.
	IFD int
	// ID is the numeric tag id.
	ID uint16
	// Category is the catalog label for ID.
	Category Category
	// DataType is the declared type code, which may be unknown.
	DataType DataType
	// Count is the declared number of elements.
	Count uint64
	// Value is nil if DataType is unknown.
	Value Value
	// Truncated is set when only the first elements were decoded,
	// see Options.DisplayLimit.
	Truncated bool
	// Inline is set when the value was stored in the entry itself.
	Inline bool
	// ValueOffset is the absolute position the value was read from.
	ValueOffset uint64
}

// HandleTagFunc is the function that is called for each tag.
type HandleTagFunc func(info TagInfo) error

// Options contains the options for the Decode function.
type Options struct {
	// The Reader (typically a *os.File) to read the tag directory from.
	R io.ReadSeeker

	// Catalog maps tag ids to categories.
	// If not set, DefaultCatalog is used.
	Catalog Catalog

	// The function to call for each tag.
	// Return ErrStopWalking to stop without error.
	HandleTag HandleTagFunc

	// Warnf will be called for each warning.
	Warnf func(string, ...any)

	// FollowIFDChain makes Decode walk all directories linked from the first one.
	// By default only the first IFD is read.
	FollowIFDChain bool

	// ReverseTextBlocks reverses whole ASCII and UNDEFINED values in
	// big-endian files. This matches a legacy tool that treated text blocks
	// as numbers; it scrambles the text and is off by default.
	ReverseTextBlocks bool

	// Charset is used to decode ASCII values.
	// If not set, bytes above 0x7f are replaced with '?'.
	Charset encoding.Encoding

	// DisplayLimit is the maximum number of elements decoded for non-ASCII
	// values outside the GeoTIFF structures. The remaining elements are never read.
	// Zero means DefaultDisplayLimit (10), so at least one element is always
	// decoded for a non-empty value.
	DisplayLimit uint64
}

// Decode reads the tag directory from opts.R.
func Decode(opts Options) (result DecodeResult, err error) {
	var base *dirDecoder

	errFinal := func(err2 error) error {
		if err2 == errStop || err2 == nil {
			if base != nil {
				err2 = base.readErr
			}
		}

		if err2 == ErrStopWalking {
			return nil
		}

		return err2
	}

	defer func() {
		if r := recover(); r != nil {
			if errp, ok := r.(error); ok {
				err = errp
			} else {
				err = fmt.Errorf("unknown panic: %v", r)
			}
		}
		err = errFinal(err)
		if base != nil && err == nil {
			result = base.result
		}
	}()

	if opts.R == nil {
		return result, fmt.Errorf("no reader provided")
	}
	if opts.Catalog == nil {
		opts.Catalog = DefaultCatalog
	}
	if opts.HandleTag == nil {
		opts.HandleTag = func(TagInfo) error { return nil }
	}
	if opts.Warnf == nil {
		opts.Warnf = func(string, ...any) {}
	}
	if opts.DisplayLimit == 0 {
		opts.DisplayLimit = DefaultDisplayLimit
	}

	base = &dirDecoder{
		streamReader: newStreamReader(opts.R, binary.LittleEndian),
		opts:         opts,
	}

	err = base.decode()

	return
}
