// SPDX-License-Identifier: MIT
// Copyright (c) 2013-2018 Devin Acker

package exhal

// EncodeOptions configures Encode.
type EncodeOptions struct {
	// Fast skips sequence-RLE and the rotated/reverse back-reference
	// searches, trading compression ratio for speed.
	Fast bool
	// Optimal selects the shortest-path packing strategy instead of the
	// greedy one.
	Optimal bool
}

// DefaultEncodeOptions returns options for greedy, full-search encoding.
func DefaultEncodeOptions() *EncodeOptions {
	return &EncodeOptions{}
}

// DecodeStats reports diagnostic counters collected while decoding.
type DecodeStats struct {
	// MethodUse counts how many times each opcode method (0-6) was
	// dispatched. A quirk method-7 opcode (see decode.go) increments
	// MethodUse[4], matching the historical decoder's aliasing bug.
	MethodUse [7]int
	// BytesConsumed is the number of compressed input bytes read, including
	// the terminator.
	BytesConsumed int
}
