// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/bep/tifftags"
)

const (
	banner = "TIFF TAG Extractor v.1.0.0\n=========================="

	// Values of these are printed as rows of rowWidth elements.
	rowWidth = 4
)

func printBanner(w io.Writer) {
	fmt.Fprintln(w, banner)
}

// printText writes one line per tag.
func printText(w io.Writer, filename string, result tifftags.DecodeResult) {
	fmt.Fprintf(w, "\nInput File : %s\n", filename)
	fmt.Fprintf(w, "Type : %s / %s\n", variantName(result.Variant), byteOrderName(result.ByteOrder))

	ifd := 0
	for _, tag := range result.Tags {
		if tag.IFD != ifd {
			ifd = tag.IFD
			fmt.Fprintf(w, "IFD%d\n", ifd)
		}
		fmt.Fprintf(w, " * %5d - %-30s : %s\n", tag.ID, tag.Category, formatValue(tag))
	}
}

// formatValue formats the value of tag without a trailing newline.
func formatValue(tag tifftags.TagInfo) string {
	if tag.Value == nil {
		return ""
	}

	if a, ok := tag.Value.(tifftags.ASCII); ok {
		return strings.TrimRight(string(a), "\x00")
	}

	vals := tifftags.Strings(tag.Value)

	switch tag.Category {
	case tifftags.CategoryModelTransformation, tifftags.CategoryGeoKeyDirectory:
		var sb strings.Builder
		for i := 0; i < len(vals); i += rowWidth {
			end := min(i+rowWidth, len(vals))
			sb.WriteString("\n\t")
			sb.WriteString(strings.Join(vals[i:end], "\t"))
		}
		return sb.String()
	}

	s := strings.Join(vals, ", ")
	if tag.Truncated {
		s += fmt.Sprintf("...(%d items)", tag.Count)
	}
	return s
}

func variantName(v tifftags.Variant) string {
	if v == tifftags.VariantBig {
		return "BigTiff"
	}
	return "Tiff"
}

func byteOrderName(order binary.ByteOrder) string {
	if order == binary.ByteOrder(binary.BigEndian) {
		return "Big Endian"
	}
	return "Little Endian"
}

type jsonFile struct {
	File      string    `json:"file"`
	Variant   string    `json:"variant"`
	ByteOrder string    `json:"byteOrder"`
	Tags      []jsonTag `json:"tags"`
}

type jsonTag struct {
	IFD       int    `json:"ifd"`
	ID        uint16 `json:"id"`
	Category  string `json:"category"`
	Type      string `json:"type"`
	Count     uint64 `json:"count"`
	Value     any    `json:"value"`
	Truncated bool   `json:"truncated,omitempty"`
	Inline    bool   `json:"inline"`
	Offset    uint64 `json:"offset"`
}

// printJSON writes result as an indented JSON object.
func printJSON(w io.Writer, filename string, result tifftags.DecodeResult) error {
	f := jsonFile{
		File:      filename,
		Variant:   result.Variant.String(),
		ByteOrder: byteOrderName(result.ByteOrder),
		Tags:      make([]jsonTag, len(result.Tags)),
	}

	for i, tag := range result.Tags {
		value, err := jsonValue(tag.Value)
		if err != nil {
			return err
		}
		f.Tags[i] = jsonTag{
			IFD:       tag.IFD,
			ID:        tag.ID,
			Category:  string(tag.Category),
			Type:      tag.DataType.String(),
			Count:     tag.Count,
			Value:     value,
			Truncated: tag.Truncated,
			Inline:    tag.Inline,
			Offset:    tag.ValueOffset,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(f)
}

// jsonValue returns ASCII values as strings and rationals as their
// "num/den" pairs. Other values become arrays of formatted elements.
func jsonValue(v tifftags.Value) (any, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case tifftags.ASCII:
		return strings.TrimRight(string(v), "\x00"), nil
	case tifftags.Rationals:
		return marshalRats[uint32](v)
	case tifftags.SRationals:
		return marshalRats[int32](v)
	default:
		return tifftags.Strings(v), nil
	}
}

func marshalRats[T int32 | uint32](rats []tifftags.Rat[T]) ([]string, error) {
	ss := make([]string, len(rats))
	for i, r := range rats {
		b, err := r.MarshalText()
		if err != nil {
			return nil, err
		}
		ss[i] = string(b)
	}
	return ss, nil
}
