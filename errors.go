// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tifftags

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrStopWalking is a sentinel error to signal that the walk should stop.
	ErrStopWalking = fmt.Errorf("stop walking")

	// Internal error to signal that we should stop any further processing.
	errStop = fmt.Errorf("stop")
)

// FormatError is returned when the source is not a TIFF or BigTIFF file
// we know how to walk.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return "tifftags: " + e.Reason
}

func newFormatErrorf(format string, args ...any) error {
	return &FormatError{Reason: fmt.Sprintf(format, args...)}
}

// SeekError is returned when a position could not be applied to the source.
type SeekError struct {
	Pos uint64
	Err error
}

func (e *SeekError) Error() string {
	return fmt.Sprintf("tifftags: seek to %d: %v", e.Pos, e.Err)
}

func (e *SeekError) Unwrap() error {
	return e.Err
}

// TruncatedSourceError is returned when the source ended before a read
// could be satisfied.
type TruncatedSourceError struct {
	// Pos is the absolute position of the failed read, -1 if unknown.
	Pos int64
	// Want is the number of bytes requested.
	Want uint64
	Err  error
}

func (e *TruncatedSourceError) Error() string {
	return fmt.Sprintf("tifftags: truncated source: reading %d bytes at %d: %v", e.Want, e.Pos, e.Err)
}

func (e *TruncatedSourceError) Unwrap() error {
	return e.Err
}

// IsFormatError reports whether err is or wraps a *FormatError.
func IsFormatError(err error) bool {
	var e *FormatError
	return errors.As(err, &e)
}

// IsSeekError reports whether err is or wraps a *SeekError.
func IsSeekError(err error) bool {
	var e *SeekError
	return errors.As(err, &e)
}

// IsTruncated reports whether err is or wraps a *TruncatedSourceError.
func IsTruncated(err error) bool {
	var e *TruncatedSourceError
	return errors.As(err, &e)
}

func isEOF(err error) bool {
	return err == io.EOF || err == io.ErrUnexpectedEOF
}
