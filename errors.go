// SPDX-License-Identifier: MIT
// Copyright (c) 2013-2018 Devin Acker

package exhal

import stderrors "errors"

// Sentinel errors for decoding and encoding. Wrapped with positional context
// via github.com/pkg/errors before being returned; match with errors.Is.
var (
	// ErrTruncatedInput is returned when an opcode's operand exceeds the
	// available compressed bytes.
	ErrTruncatedInput = stderrors.New("exhal: truncated input")
	// ErrOutputOverflow is returned when a decoded operation would write
	// past the 65,536-byte output cap.
	ErrOutputOverflow = stderrors.New("exhal: output would exceed 65536 bytes")
	// ErrBadBackref is returned when a forward/rotated back-reference reads
	// a source position not yet written, or a reverse back-reference's
	// offset is less than length-1.
	ErrBadBackref = stderrors.New("exhal: invalid back-reference")
	// ErrEncodeOverflow is returned when compressed output would exceed
	// 65,536 bytes.
	ErrEncodeOverflow = stderrors.New("exhal: compressed output would exceed 65536 bytes")
	// ErrInputTooLarge is returned when Encode or Decode is given more than
	// 65,536 bytes of input.
	ErrInputTooLarge = stderrors.New("exhal: input exceeds 65536 bytes")
)
