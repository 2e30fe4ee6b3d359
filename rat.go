// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tifftags

import (
	"encoding"
	"strconv"
)

// Rat is a RATIONAL or SRATIONAL element as stored in the file.
// The pair is neither reduced nor validated, a zero denominator included.
type Rat[T int32 | uint32] interface {
	Num() T
	Den() T

	// Float64 returns num/den using IEEE division,
	// so a zero denominator gives +Inf, -Inf or NaN.
	Float64() float64

	// String returns "num/den", or num alone if den is 1.
	String() string

	// MarshalText always writes "num/den".
	encoding.TextMarshaler
}

// NewRat returns the rational num/den as given.
func NewRat[T int32 | uint32](num, den T) Rat[T] {
	return rat[T]{num: num, den: den}
}

type rat[T int32 | uint32] struct {
	num T
	den T
}

func (r rat[T]) Num() T { return r.num }
func (r rat[T]) Den() T { return r.den }

func (r rat[T]) Float64() float64 {
	return float64(r.num) / float64(r.den)
}

func (r rat[T]) String() string {
	if r.den == 1 {
		return strconv.FormatInt(int64(r.num), 10)
	}
	return string(r.appendPair(nil))
}

func (r rat[T]) MarshalText() ([]byte, error) {
	return r.appendPair(nil), nil
}

func (r rat[T]) appendPair(b []byte) []byte {
	b = strconv.AppendInt(b, int64(r.num), 10)
	b = append(b, '/')
	return strconv.AppendInt(b, int64(r.den), 10)
}
