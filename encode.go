// SPDX-License-Identifier: MIT
// Copyright (c) 2013-2018 Devin Acker

package exhal

import "github.com/pkg/errors"

// Encode compresses input per the HAL wire format (spec §4.4/§4.5). It
// fails with ErrInputTooLarge if len(input) exceeds 65,536, and with
// ErrEncodeOverflow if the compressed output would exceed 65,536 bytes.
//
// opts selects the packing strategy (Optimal: shortest-path, else greedy)
// and whether to skip sequence-RLE and the rotated/reverse back-reference
// searches (Fast).
func Encode(input []byte, opts *EncodeOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultEncodeOptions()
	}
	if len(input) > dataSize {
		return nil, errors.Wrapf(ErrInputTooLarge, "input is %d bytes", len(input))
	}
	if len(input) == 0 {
		return []byte{opEnd}, nil
	}

	idx := buildTupleIndex(input)
	var out []byte
	var err error
	if opts.Optimal {
		out, err = packOptimal(input, idx, opts.Fast)
	} else {
		out, err = packGreedy(input, idx, opts.Fast)
	}
	if err != nil {
		return nil, errors.Wrap(err, "pack")
	}
	return out, nil
}
